package theme

import "covdelta/internal/domain"

// Delta renders a delta annotation for the terminal diagnostic stream.
func Delta(d domain.MetricDelta) string {
	if d.Color == domain.ColorRed {
		return regressedStyle.Render(d.Annotation())
	}
	return improvedStyle.Render(d.Annotation())
}

// Fraction renders a coverage fraction, green when everything countable
// is covered.
func Fraction(f domain.Fraction) string {
	if f.Full() {
		return improvedStyle.Render(f.String())
	}
	return regressedStyle.Render(f.String())
}

// Checkbox renders a checklist item for the terminal.
func Checkbox(item domain.ChecklistItem) string {
	if item.Present {
		return improvedStyle.Render("✓ " + item.Name)
	}
	return regressedStyle.Render("✗ " + item.Name)
}

// Failure renders a failing file name for the terminal.
func Failure(file string) string {
	return regressedStyle.Render(file)
}

// Trend renders a history trend arrow.
func Trend(t domain.TrendDirection) string {
	switch t {
	case domain.TrendUp:
		return improvedStyle.Render("↑")
	case domain.TrendDown:
		return regressedStyle.Render("↓")
	}
	return mutedStyle.Render("→")
}
