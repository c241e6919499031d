package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/samber/mo"
)

type actionCatalog struct {
	actions map[string]domain.Action
}

// NewActionCatalog indexes actions by case-insensitive name. Later entries
// replace earlier ones with the same name.
func NewActionCatalog(actions ...domain.Action) ActionCatalog {
	c := &actionCatalog{actions: make(map[string]domain.Action, len(actions))}
	for _, a := range actions {
		c.actions[catalogKey(a.Name)] = a
	}
	return c
}

func (c *actionCatalog) List(ctx context.Context) ([]domain.Action, error) {
	out := make([]domain.Action, 0, len(c.actions))
	for _, a := range c.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// Suggestion returns the action's suggested frequency, absent when it has none.
func (c *actionCatalog) Suggestion(ctx context.Context, name string) (mo.Option[domain.Suggestion], error) {
	a, ok := c.actions[catalogKey(name)]
	if !ok {
		return mo.None[domain.Suggestion](), fmt.Errorf("action %q: %w", name, domain.ErrUnknownAction)
	}
	if a.Suggested == nil {
		return mo.None[domain.Suggestion](), nil
	}
	return mo.Some(*a.Suggested), nil
}

func catalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
