package baseline

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"covdelta/internal/domain"
	"covdelta/internal/logging"
	"covdelta/internal/ports"
)

const fetchTimeout = 10 * time.Second

// HTTPStore reads published baseline reports from an HTTP-addressable
// store keyed by package identifier.
type HTTPStore struct {
	baseURL string
	client  *http.Client
	parser  ports.ReportParser
}

// Verify interface compliance at compile time
var _ ports.BaselineStore = (*HTTPStore)(nil)

// NewHTTPStore creates a store reading from baseURL. An empty baseURL
// means no store is configured; every fetch reports "no baseline".
func NewHTTPStore(baseURL string, parser ports.ReportParser) *HTTPStore {
	return &HTTPStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: fetchTimeout},
		parser:  parser,
	}
}

// Fetch returns the published report for pkg, or (nil, nil) when no
// usable baseline exists. Network failures, missing resources, and
// unparseable responses all mean "no baseline"; none of them abort a run.
func (s *HTTPStore) Fetch(ctx context.Context, pkg string) (*domain.CoverageReport, error) {
	if s.baseURL == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/%s/index.html", s.baseURL, pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logging.Logger.Debug("Failed to build baseline request", "url", url, "error", err)
		return nil, nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logging.Logger.Debug("Baseline fetch failed", "url", url, "error", err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logging.Logger.Debug("No baseline published", "url", url, "status", resp.StatusCode)
		return nil, nil
	}

	report, err := s.parser.Parse(resp.Body)
	if err != nil {
		logging.Logger.Debug("Baseline report unparseable", "url", url, "error", err)
		return nil, nil
	}

	logging.Logger.Debug("Fetched baseline", "package", pkg,
		"statements", report.Statements.String(), "lines", report.Lines.String())
	return &report, nil
}
