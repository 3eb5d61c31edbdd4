package nest

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/clambin/go-common/http/metrics"
	"github.com/clambin/go-common/http/roundtripper"
)

const thermostatsPath = "/devices/thermostats"

// NewRequestMetrics records the number & duration of calls to the Nest API. Calls for a single thermostat are
// reported under /devices/thermostats, so the device IDs don't end up in the metric labels.
func NewRequestMetrics(namespace, subsystem string) metrics.RequestMetrics {
	return metrics.NewRequestMetrics(metrics.Options{
		Namespace: namespace,
		Subsystem: subsystem,
		LabelValues: func(request *http.Request, code int) (string, string, string) {
			path := request.URL.Path
			if path == "" {
				path = "/"
			}
			if strings.HasPrefix(path, thermostatsPath) {
				path = thermostatsPath
			}
			return request.Method, path, strconv.Itoa(code)
		},
	})
}

// InstrumentedRoundTripper returns an http.RoundTripper that records the calls made through next.
// If next is nil, http.DefaultTransport is used.
func InstrumentedRoundTripper(next http.RoundTripper, m metrics.RequestMetrics) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return roundtripper.New(
		roundtripper.WithRequestMetrics(m),
		roundtripper.WithRoundTripper(next),
	)
}
