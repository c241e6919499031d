package contract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/careminder/internal/domain"
)

// SuggestionPayload is the upstream "suggested frequency" object. Only the
// unit and interval are used; on, on_type and special are carried through.
type SuggestionPayload struct {
	Frequency     *int   `json:"frequency"`
	FrequencyType string `json:"frequency_type" validate:"required,oneof=day week month year"`
	On            []any  `json:"on"`
	OnType        string `json:"on_type,omitempty" validate:"omitempty,oneof=day week month year"`
	Special       bool   `json:"special"`
}

// ToSuggestion validates p. A missing frequency means every 1 unit.
func (p SuggestionPayload) ToSuggestion() (domain.Suggestion, error) {
	if err := ValidatePayload(p); err != nil {
		return domain.Suggestion{}, err
	}
	interval := max(domain.IntFromPtrWithDefault(1, p.Frequency), 1)
	return domain.Suggestion{Unit: domain.Unit(p.FrequencyType), Interval: interval}, nil
}

// ParseSuggestion decodes a suggestion from its JSON text.
func ParseSuggestion(data []byte) (domain.Suggestion, error) {
	var p SuggestionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Suggestion{}, fmt.Errorf("decoding suggestion: %w", err)
	}
	return p.ToSuggestion()
}

// ActionPayload mirrors the action schema shared with the backend.
type ActionPayload struct {
	ID                    *int               `json:"id,omitempty"`
	Category              string             `json:"category" validate:"required"`
	Name                  string             `json:"name" validate:"required"`
	SuggestedFrequency    *SuggestionPayload `json:"suggested_frequency"`
	EstimatedStartingCost *float64           `json:"estimated_starting_cost"`
	EstimatedEndingCost   *float64           `json:"estimated_ending_cost"`
}

func (p ActionPayload) ToAction() (domain.Action, error) {
	if err := ValidatePayload(p); err != nil {
		return domain.Action{}, err
	}
	a := domain.Action{
		Name:                  p.Name,
		Category:              p.Category,
		EstimatedStartingCost: p.EstimatedStartingCost,
		EstimatedEndingCost:   p.EstimatedEndingCost,
	}
	if p.SuggestedFrequency != nil {
		s, err := p.SuggestedFrequency.ToSuggestion()
		if err != nil {
			return domain.Action{}, fmt.Errorf("action %q: %w", p.Name, err)
		}
		a.Suggested = &s
	}
	return a, nil
}

// LoadActions reads a JSON array of actions from path.
func LoadActions(path string) ([]domain.Action, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading actions file: %w", err)
	}
	var payloads []ActionPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing actions file: %w", err)
	}
	actions := make([]domain.Action, 0, len(payloads))
	for i, p := range payloads {
		a, err := p.ToAction()
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		actions = append(actions, a)
	}
	return actions, nil
}
