package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

type recurrenceEditor struct {
	rule     recurrence.Rule
	observer UseCaseObserver
	now      func() time.Time

	mu     sync.Mutex
	drafts map[string]*Draft
}

func NewRecurrenceEditor(rule recurrence.Rule, observers ...UseCaseObserver) RecurrenceEditor {
	return &recurrenceEditor{
		rule:     rule,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
		drafts:   make(map[string]*Draft),
	}
}

func (s *recurrenceEditor) Open(ctx context.Context, reference time.Time, suggestion mo.Option[domain.Suggestion]) (draft *Draft, err error) {
	id := uuid.New().String()
	defer s.observe(ctx, "open", id, time.Now(), &err, map[string]any{"suggested": suggestion.IsPresent()})

	rec, err := s.rule.Next(mo.None[domain.Recurrence](), recurrence.Enable{Suggestion: suggestion}, reference)
	if err != nil {
		return nil, err
	}

	d := &Draft{
		ID:         id,
		Reference:  reference,
		Recurrence: mo.Some(rec),
		UpdatedAt:  s.now().UTC(),
	}

	s.mu.Lock()
	s.drafts[id] = d
	s.mu.Unlock()

	return copyDraft(d), nil
}

func (s *recurrenceEditor) Apply(ctx context.Context, id string, ev recurrence.Event) (draft *Draft, err error) {
	defer s.observe(ctx, "apply", id, time.Now(), &err, map[string]any{"event": ev.EventName()})

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrDraftNotFound)
	}

	rec, err := s.rule.Next(d.Recurrence, ev, d.Reference)
	if err != nil {
		return nil, err
	}

	d.Recurrence = mo.Some(rec)
	if move, ok := ev.(recurrence.ChangeReferenceDate); ok {
		d.Reference = move.Date
	}
	d.UpdatedAt = s.now().UTC()

	return copyDraft(d), nil
}

func (s *recurrenceEditor) Get(ctx context.Context, id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrDraftNotFound)
	}
	return copyDraft(d), nil
}

func (s *recurrenceEditor) Disable(ctx context.Context, id string) (draft *Draft, err error) {
	defer s.observe(ctx, "disable", id, time.Now(), &err, nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return nil, fmt.Errorf("draft %s: %w", id, domain.ErrDraftNotFound)
	}
	d.Recurrence = mo.None[domain.Recurrence]()
	d.UpdatedAt = s.now().UTC()
	return copyDraft(d), nil
}

func (s *recurrenceEditor) Close(ctx context.Context, id string) (err error) {
	defer s.observe(ctx, "close", id, time.Now(), &err, nil)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[id]; !ok {
		return fmt.Errorf("draft %s: %w", id, domain.ErrDraftNotFound)
	}
	delete(s.drafts, id)
	return nil
}

func (s *recurrenceEditor) MonthlyOptions(ctx context.Context, id string) ([]domain.MonthlyAnchor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return recurrence.MonthlyAnchors(d.Reference), nil
}

func (s *recurrenceEditor) TimeSlots(ctx context.Context, id string) ([]time.Time, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return recurrence.DailySlots(d.Reference, s.rule.SlotMinutes), nil
}

func (s *recurrenceEditor) Preview(ctx context.Context, id string, limit int) ([]time.Time, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec, ok := d.Recurrence.Get()
	if !ok {
		return nil, fmt.Errorf("preview: %w", domain.ErrNoRecurrence)
	}
	return recurrence.Occurrences(rec, d.Reference, limit)
}

func (s *recurrenceEditor) observe(ctx context.Context, name, id string, startedAt time.Time, errp *error, fields map[string]any) {
	err := *errp
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		DraftID:   id,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

// copyDraft detaches the returned draft from the editor's copy.
func copyDraft(d *Draft) *Draft {
	out := *d
	if rec, ok := d.Recurrence.Get(); ok {
		out.Recurrence = mo.Some(rec.Clone())
	}
	return &out
}
