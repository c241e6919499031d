package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/careminder/internal/domain"
	"github.com/alexanderramin/careminder/internal/recurrence"
)

// FormatMonthlyOptions lists the monthly rules available for ref, numbered
// the way `plan --monthly` expects them.
func FormatMonthlyOptions(ref time.Time, opts []domain.MonthlyAnchor) string {
	rows := make([][]string, 0, len(opts))
	for i, o := range opts {
		rows = append(rows, []string{strconv.Itoa(i), o.Label(), StyleDim.Render(string(o.Kind))})
	}

	var b strings.Builder
	b.WriteString(Header("Monthly options for " + ref.Format("Mon 2006-01-02")))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"#", "RULE", "KIND"}, rows))
	return b.String()
}

// FormatSlots renders the selectable start times for a daily recurrence.
// The first slot is the reference time itself.
func FormatSlots(slots []time.Time) string {
	if len(slots) == 0 {
		return Dim("No time slots.") + "\n"
	}
	ref := slots[0]
	rows := make([][]string, 0, len(slots))
	for i, s := range slots {
		note := ""
		switch {
		case i == 0:
			note = StyleGreen.Render("start")
		case s.Day() != ref.Day():
			note = StyleDim.Render("next day")
		}
		rows = append(rows, []string{recurrence.SlotLabel(s), s.Format("15:04"), note})
	}

	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Time slots from %s", ref.Format("2006-01-02 15:04"))))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"SLOT", "24H", ""}, rows))
	return b.String()
}

// FormatRecurrence renders a recurrence summary box with an optional
// occurrence preview.
func FormatRecurrence(ref time.Time, rec domain.Recurrence, preview []time.Time) string {
	var lines []string
	lines = append(lines,
		KeyValue("Status", UnitBadge(rec.Unit())),
		KeyValue("Rule", Bold(recurrence.Describe(rec))),
		KeyValue("Reference", ref.Format("Mon 2006-01-02 15:04")),
		KeyValue("Ends", fmt.Sprintf("%s %s", rec.EndDate.Format(time.DateOnly), Dim("("+RelativeDay(rec.EndDate, ref)+")"))),
	)

	body := strings.Join(lines, "\n")
	if len(preview) > 0 {
		rows := make([][]string, 0, len(preview))
		for i, t := range preview {
			rows = append(rows, []string{strconv.Itoa(i + 1), t.Format("Mon 2006-01-02"), t.Format("15:04")})
		}
		body += "\n\n" + RenderTable([]string{"#", "DATE", "TIME"}, rows)
	}
	return RenderBox("Recurrence", body) + "\n"
}

// FormatDisabled is shown when a draft has recurrence switched off.
func FormatDisabled(ref time.Time) string {
	return RenderBox("Recurrence", KeyValue("Status", UnitBadge(""))+"\n"+KeyValue("Reference", ref.Format("Mon 2006-01-02"))) + "\n"
}

// FormatActions renders the action catalog grouped by category.
func FormatActions(actions []domain.Action) string {
	if len(actions) == 0 {
		return Dim("No actions configured.") + "\n"
	}
	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		suggested := Dim("-")
		if a.Suggested != nil {
			suggested = fmt.Sprintf("every %d %s", a.Suggested.Interval, strings.ToLower(a.Suggested.Unit.Title(a.Suggested.Interval)))
		}
		rows = append(rows, []string{a.Category, a.Name, suggested, formatCost(a.EstimatedStartingCost, a.EstimatedEndingCost)})
	}
	return RenderTable([]string{"CATEGORY", "ACTION", "SUGGESTED", "COST"}, rows)
}

func formatCost(start, end *float64) string {
	switch {
	case start == nil && end == nil:
		return Dim("-")
	case end == nil:
		return fmt.Sprintf("%.2f", *start)
	case start == nil:
		return fmt.Sprintf("%.2f", *end)
	default:
		return fmt.Sprintf("%.2f-%.2f", *start, *end)
	}
}
