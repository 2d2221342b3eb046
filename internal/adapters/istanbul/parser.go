package istanbul

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"covdelta/internal/domain"
	"covdelta/internal/ports"
)

// summaryPattern matches one "NN% Label covered/total" block of an
// istanbul HTML summary. Quote style varies between report versions.
var summaryPattern = regexp.MustCompile(
	`<span class=['"]strong['"]>[^<]*</span>\s*` +
		`<span class=['"]quiet['"]>(Statements|Branches|Functions|Lines)</span>\s*` +
		`<span class=['"]fraction['"]>(\d+)/(\d+)</span>`)

// Parser extracts coverage fractions from istanbul-style HTML reports.
type Parser struct{}

// Verify interface compliance at compile time
var _ ports.ReportParser = (*Parser)(nil)

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads a report and returns its four coverage fractions. The
// report must contain exactly one fraction per metric, in the order
// statements, branches, functions, lines; anything else is malformed.
func (p *Parser) Parse(r io.Reader) (domain.CoverageReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.CoverageReport{}, fmt.Errorf("failed to read report: %w", err)
	}

	matches := summaryPattern.FindAllStringSubmatch(string(data), -1)
	if len(matches) != len(domain.Metrics) {
		return domain.CoverageReport{}, fmt.Errorf("%w: expected %d metrics, found %d",
			domain.ErrMalformedReport, len(domain.Metrics), len(matches))
	}

	var report domain.CoverageReport
	for i, metric := range domain.Metrics {
		label := matches[i][1]
		if label != metric.String() {
			return domain.CoverageReport{}, fmt.Errorf("%w: expected %s at position %d, found %s",
				domain.ErrMalformedReport, metric, i, label)
		}

		covered, err := strconv.Atoi(matches[i][2])
		if err != nil {
			return domain.CoverageReport{}, fmt.Errorf("%w: bad covered count for %s", domain.ErrMalformedReport, metric)
		}
		total, err := strconv.Atoi(matches[i][3])
		if err != nil {
			return domain.CoverageReport{}, fmt.Errorf("%w: bad total count for %s", domain.ErrMalformedReport, metric)
		}
		if covered > total {
			return domain.CoverageReport{}, fmt.Errorf("%w: %s covered %d exceeds total %d",
				domain.ErrMalformedReport, metric, covered, total)
		}

		report.SetMetric(metric, domain.Fraction{Covered: covered, Total: total})
	}

	return report, nil
}

// ParseFile parses the report at path.
func (p *Parser) ParseFile(path string) (domain.CoverageReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.CoverageReport{}, fmt.Errorf("failed to open report %s: %w", path, err)
	}
	defer f.Close()

	report, err := p.Parse(f)
	if err != nil {
		return domain.CoverageReport{}, fmt.Errorf("report %s: %w", path, err)
	}
	return report, nil
}
