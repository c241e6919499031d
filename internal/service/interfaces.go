package service

import (
	"context"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/samber/mo"
)

// Draft is a recurrence being edited against a reference date. Recurrence
// is absent while recurrence is disabled.
type Draft struct {
	ID         string
	Reference  time.Time
	Recurrence mo.Option[domain.Recurrence]
	UpdatedAt  time.Time
}

// RecurrenceEditor owns drafts and applies events to them one at a time, so
// each transition observes the result of the previous one.
type RecurrenceEditor interface {
	Open(ctx context.Context, reference time.Time, suggestion mo.Option[domain.Suggestion]) (*Draft, error)
	Apply(ctx context.Context, id string, ev recurrence.Event) (*Draft, error)
	Get(ctx context.Context, id string) (*Draft, error)
	Disable(ctx context.Context, id string) (*Draft, error)
	Close(ctx context.Context, id string) error

	MonthlyOptions(ctx context.Context, id string) ([]domain.MonthlyAnchor, error)
	TimeSlots(ctx context.Context, id string) ([]time.Time, error)
	Preview(ctx context.Context, id string, limit int) ([]time.Time, error)
}

type ActionCatalog interface {
	List(ctx context.Context) ([]domain.Action, error)
	Suggestion(ctx context.Context, name string) (mo.Option[domain.Suggestion], error)
}
