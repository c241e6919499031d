package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
	"github.com/alexanderramin/careminder/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDraft(t *testing.T, app *App, ref time.Time) (editorFixture, context.Context) {
	t.Helper()
	ctx := context.Background()
	d, err := app.Editor.Open(ctx, ref, mo.None[domain.Suggestion]())
	require.NoError(t, err)
	slots, err := app.Editor.TimeSlots(ctx, d.ID)
	require.NoError(t, err)
	opts, err := app.Editor.MonthlyOptions(ctx, d.ID)
	require.NoError(t, err)
	return editorFixture{draftID: d.ID, slots: slots, opts: opts}, ctx
}

type editorFixture struct {
	draftID string
	slots   []time.Time
	opts    []domain.MonthlyAnchor
}

func TestChoicesFromDraft_PrefillsWeekly(t *testing.T) {
	app := testApp(t)
	fx, ctx := openDraft(t, app, time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC))
	d, err := app.Editor.Get(ctx, fx.draftID)
	require.NoError(t, err)

	c := choicesFromDraft(d, fx.opts)
	assert.True(t, c.Enabled)
	assert.Equal(t, domain.UnitWeek, c.Unit)
	assert.Equal(t, "1", c.Interval)
	assert.Equal(t, []time.Weekday{time.Tuesday}, c.Weekdays)
	assert.Equal(t, "2025-03-26", c.Until)
}

func TestApplyChoices_Weekly(t *testing.T) {
	app := testApp(t)
	fx, ctx := openDraft(t, app, time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC))
	d, err := app.Editor.Get(ctx, fx.draftID)
	require.NoError(t, err)

	got, err := applyChoices(ctx, app, d, fx.slots, fx.opts, editorChoices{
		Enabled:  true,
		Unit:     domain.UnitWeek,
		Interval: "3",
		Weekdays: []time.Weekday{time.Monday, time.Thursday},
		Until:    "2024-09-30",
	})
	require.NoError(t, err)

	rec := got.Recurrence.MustGet()
	assert.Equal(t, 3, rec.Interval)
	assert.Equal(t, domain.WeekAnchors{Days: []time.Weekday{time.Monday, time.Thursday}}, rec.Anchors)
	assert.Equal(t, "2024-09-30", rec.EndDate.Format(time.DateOnly))
}

func TestApplyChoices_DailyTimes(t *testing.T) {
	app := testApp(t)
	ref := time.Date(2024, time.March, 26, 21, 0, 0, 0, time.UTC)
	fx, ctx := openDraft(t, app, ref)
	d, err := app.Editor.Get(ctx, fx.draftID)
	require.NoError(t, err)

	got, err := applyChoices(ctx, app, d, fx.slots, fx.opts, editorChoices{
		Enabled:  true,
		Unit:     domain.UnitDay,
		Interval: "1",
		Times:    []time.Time{fx.slots[2]},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DayAnchors{Times: []time.Time{ref, fx.slots[2]}}, got.Recurrence.MustGet().Anchors)
}

func TestApplyChoices_MonthlyOption(t *testing.T) {
	app := testApp(t)
	fx, ctx := openDraft(t, app, time.Date(2024, time.January, 26, 9, 0, 0, 0, time.UTC))
	d, err := app.Editor.Get(ctx, fx.draftID)
	require.NoError(t, err)

	got, err := applyChoices(ctx, app, d, fx.slots, fx.opts, editorChoices{
		Enabled:  true,
		Unit:     domain.UnitMonth,
		Interval: "1",
		Monthly:  1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MonthAnchors{Option: domain.NthWeekday(4, time.Friday)}, got.Recurrence.MustGet().Anchors)
}

func TestApplyChoices_Disabled(t *testing.T) {
	app := testApp(t)
	fx, ctx := openDraft(t, app, time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC))
	d, err := app.Editor.Get(ctx, fx.draftID)
	require.NoError(t, err)

	got, err := applyChoices(ctx, app, d, fx.slots, fx.opts, editorChoices{Enabled: false})
	require.NoError(t, err)
	assert.True(t, got.Recurrence.IsAbsent())
}

func TestApplyChoices_BadInterval(t *testing.T) {
	app := testApp(t)
	fx, ctx := openDraft(t, app, time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC))
	d, err := app.Editor.Get(ctx, fx.draftID)
	require.NoError(t, err)

	_, err = applyChoices(ctx, app, d, fx.slots, fx.opts, editorChoices{Enabled: true, Unit: domain.UnitWeek, Interval: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEditorModel_EscCancels(t *testing.T) {
	ref := time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC)
	c := editorChoices{Enabled: true, Unit: domain.UnitWeek, Interval: "1", Weekdays: []time.Weekday{time.Tuesday}}
	m := newEditorModel(newEditorForm(recurrence.DailySlots(ref, 60), recurrence.MonthlyAnchors(ref), &c))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.True(t, next.(*editorModel).cancelled)
}

func TestValidateInterval(t *testing.T) {
	assert.NoError(t, validateInterval("1"))
	assert.NoError(t, validateInterval("999"))
	assert.Error(t, validateInterval("0"))
	assert.Error(t, validateInterval("1000"))
	assert.Error(t, validateInterval(""))
}

func TestEditorModel_CancelKeysStopTheProgram(t *testing.T) {
	ref := time.Date(2024, time.March, 26, 9, 0, 0, 0, time.UTC)

	for _, k := range []string{"esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			c := editorChoices{Enabled: true, Unit: domain.UnitWeek, Interval: "1", Weekdays: []time.Weekday{time.Tuesday}}
			model := newEditorModel(newEditorForm(recurrence.DailySlots(ref, 60), recurrence.MonthlyAnchors(ref), &c))
			drv := teatest.New(t, model, 80, 24)

			assert.Contains(t, drv.View(), "Repeat this reminder?")
			drv.Press(k)

			assert.True(t, drv.Quitting)
			assert.True(t, drv.Model.(*editorModel).cancelled)
			assert.Empty(t, drv.View())
		})
	}
}
