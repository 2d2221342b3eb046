package report

import (
	"fmt"
	"strings"

	"covdelta/internal/domain"
)

// tableHeader is the fixed five-column summary header.
const tableHeader = "| Package | Statements | Branches | Functions | Lines |\n| --- | --- | --- | --- | --- |"

// FormatTable renders the summary rows as a Markdown table. Each coverage
// cell shows the fraction with the delta annotation on its own line,
// colored through a math span, the only inline color GitHub renders.
// An empty row set renders as an empty table.
func FormatTable(rows []domain.ReportRow, baseURL string) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(tableHeader)
	for _, row := range rows {
		b.WriteString("\n| ")
		b.WriteString(packageCell(row.Package, baseURL))
		for _, m := range domain.Metrics {
			b.WriteString(" | ")
			b.WriteString(metricCell(row.Coverage.Metric(m), row.Delta.Metric(m)))
		}
		b.WriteString(" |")
	}
	return b.String()
}

// packageCell links the package to its published report when a store is
// configured.
func packageCell(pkg, baseURL string) string {
	if baseURL == "" {
		return pkg
	}
	return fmt.Sprintf("[%s](%s/%s/)", pkg, strings.TrimRight(baseURL, "/"), pkg)
}

func metricCell(f domain.Fraction, d domain.MetricDelta) string {
	// Literal % terminates a math span; escape it
	annotation := strings.ReplaceAll(d.Annotation(), "%", `\%`)
	return fmt.Sprintf(`%s<br>$\color{%s}{%s}$`, f, d.Color, annotation)
}

// FormatChecklist renders required-file checks as Markdown checkboxes,
// one section per package, preserving item order.
func FormatChecklist(checklists []domain.PackageChecklist) string {
	var b strings.Builder
	for i, checklist := range checklists {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "### %s\n", checklist.Package)
		for _, item := range checklist.Items {
			mark := " "
			if item.Present {
				mark = "x"
			}
			fmt.Fprintf(&b, "\n- [%s] %s", mark, item.Name)
		}
	}
	return b.String()
}
