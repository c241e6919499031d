package contract

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRecurrence_SetsOnlyUnitField(t *testing.T) {
	ref := testutil.Date(2024, time.January, 26, 9, 0)
	p := FromRecurrence(testutil.NewTestRecurrence(ref, testutil.WithInterval(2), testutil.WithMonthly(domain.LastWeekday(time.Friday))))

	assert.Equal(t, 2, p.Frequency)
	assert.Equal(t, "month", p.FrequencyType)
	assert.Nil(t, p.OnDay)
	assert.Nil(t, p.OnWeek)
	require.NotNil(t, p.OnMonth)
	assert.Equal(t, "last_weekday", p.OnMonth.Kind)
	assert.Equal(t, 6, *p.OnMonth.WeekNumber)
	assert.Equal(t, 5, *p.OnMonth.WeekDay)
	assert.Equal(t, "Monthly on last Friday", p.OnMonth.Title)
}

func TestFrequencyPayload_JSONShape(t *testing.T) {
	ref := testutil.Date(2024, time.January, 1, 9, 0)
	rec := testutil.NewTestRecurrence(ref,
		testutil.WithWeekdays(time.Monday, time.Wednesday),
		testutil.WithEndDate(testutil.Date(2024, time.June, 30, 0, 0)),
	)

	data, err := json.Marshal(FromRecurrence(rec))
	require.NoError(t, err)
	assert.JSONEq(t, `{"frequency":1,"frequency_type":"week","on_week":[1,3],"end_date":"2024-06-30T00:00:00Z"}`, string(data))

	back, err := DecodeFrequency(strings.NewReader(string(data)))
	require.NoError(t, err)
	got, err := back.ToRecurrence()
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestToRecurrence_LegacyMonthlyShapes(t *testing.T) {
	tests := []struct {
		name string
		json string
		want domain.MonthlyAnchor
	}{
		{"day", `{"title":"Monthly on 15th day","day":15}`, domain.DayOfMonth(15)},
		{"last day", `{"title":"Last day of the month","day":31}`, domain.LastDayOfMonth()},
		{"nth weekday", `{"title":"Monthly on 2nd Tuesday","weekNumber":2,"weekDay":2}`, domain.NthWeekday(2, time.Tuesday)},
		{"last weekday", `{"title":"Monthly on last Friday","weekNumber":6,"weekDay":5}`, domain.LastWeekday(time.Friday)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"frequency":1,"frequency_type":"month","on_month":` + tt.json + `,"end_date":"2025-01-01T00:00:00Z"}`
			p, err := DecodeFrequency(strings.NewReader(body))
			require.NoError(t, err)
			rec, err := p.ToRecurrence()
			require.NoError(t, err)
			assert.Equal(t, domain.MonthAnchors{Option: tt.want}, rec.Anchors)
		})
	}
}

func TestToRecurrence_AcceptsUntilAlias(t *testing.T) {
	body := `{"frequency":3,"frequency_type":"year","until":"2030-01-01T00:00:00Z"}`
	p, err := DecodeFrequency(strings.NewReader(body))
	require.NoError(t, err)

	rec, err := p.ToRecurrence()
	require.NoError(t, err)
	assert.Equal(t, domain.UnitYear, rec.Unit())
	assert.Equal(t, 2030, rec.EndDate.Year())
}

func TestToRecurrence_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"zero frequency", `{"frequency":0,"frequency_type":"week","on_week":[1],"end_date":"2025-01-01T00:00:00Z"}`, "frequency"},
		{"hour unit", `{"frequency":1,"frequency_type":"hour","end_date":"2025-01-01T00:00:00Z"}`, "frequency_type"},
		{"missing weekdays", `{"frequency":1,"frequency_type":"week","end_date":"2025-01-01T00:00:00Z"}`, "on_week"},
		{"weekday range", `{"frequency":1,"frequency_type":"week","on_week":[7],"end_date":"2025-01-01T00:00:00Z"}`, "on_week"},
		{"missing end", `{"frequency":1,"frequency_type":"year"}`, "end_date"},
		{"stray field", `{"frequency":1,"frequency_type":"year","on_week":[1],"end_date":"2025-01-01T00:00:00Z"}`, "on_week"},
		{"missing month", `{"frequency":1,"frequency_type":"month","end_date":"2025-01-01T00:00:00Z"}`, "on_month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeFrequency(strings.NewReader(tt.body))
			require.NoError(t, err)
			_, err = p.ToRecurrence()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDecodeFrequency_UnknownField(t *testing.T) {
	_, err := DecodeFrequency(strings.NewReader(`{"frequency":1,"bogus":true}`))
	assert.Error(t, err)
}

func TestParseSuggestion(t *testing.T) {
	s, err := ParseSuggestion([]byte(`{"frequency":null,"frequency_type":"day","on":[],"on_type":"day","special":false}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Suggestion{Unit: domain.UnitDay, Interval: 1}, s)

	s, err = ParseSuggestion([]byte(`{"frequency":2,"frequency_type":"month","on":[]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.Suggestion{Unit: domain.UnitMonth, Interval: 2}, s)

	_, err = ParseSuggestion([]byte(`{"frequency":2,"frequency_type":"fortnight"}`))
	assert.Error(t, err)
}

func TestLoadActions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":1,"category":"home","name":"Water plants","suggested_frequency":{"frequency":3,"frequency_type":"day","on":[],"special":false},"estimated_starting_cost":null,"estimated_ending_cost":null},
		{"category":"health","name":"Dentist","suggested_frequency":null,"estimated_starting_cost":50,"estimated_ending_cost":120}
	]`), 0o600))

	actions, err := LoadActions(path)
	require.NoError(t, err)
	require.Len(t, actions, 2)
	assert.Equal(t, "Water plants", actions[0].Name)
	require.NotNil(t, actions[0].Suggested)
	assert.Equal(t, domain.Suggestion{Unit: domain.UnitDay, Interval: 3}, *actions[0].Suggested)
	assert.Nil(t, actions[1].Suggested)
	assert.Equal(t, 120.0, *actions[1].EstimatedEndingCost)
}

func TestLoadActions_RequiresName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actions.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"category":"home","name":""}]`), 0o600))

	_, err := LoadActions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "actions[0]")
}
