package tadotools

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
	"github.com/clambin/tado"
)

// GetInstrumentedTadoClient returns a Tadoº API client that records its calls in m.
func GetInstrumentedTadoClient(username, password, secret string, m metrics.RequestMetrics) (*tado.APIClient, error) {
	c, err := tado.New(username, password, secret)
	if err != nil {
		return nil, fmt.Errorf("tado: %w", err)
	}
	c.HTTPClient = &http.Client{Transport: instrumentedRoundTripper(c.HTTPClient.Transport, m)}
	return c, nil
}

func instrumentedRoundTripper(next http.RoundTripper, m metrics.RequestMetrics) http.RoundTripper {
	return roundtripper.New(
		roundtripper.WithRequestMetrics(m),
		roundtripper.WithRoundTripper(next),
	)
}

// NewRequestMetrics records the number & duration of calls to the Tadoº API. All calls for the home are reported
// under /api/v2/homes, so the home & zone IDs don't end up in the metric labels.
func NewRequestMetrics(namespace, subsystem string) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace: namespace,
		Subsystem: subsystem,
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			const homePath = "/api/v2/homes"
			path := request.URL.Path
			if path == "" {
				path = "/"
			}
			if strings.HasPrefix(path, homePath) {
				path = homePath
			}
			return request.Method, path, strconv.Itoa(code)
		},
	})
}
