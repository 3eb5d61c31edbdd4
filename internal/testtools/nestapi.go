// Package testtools provides a fake Nest API server for tests.
package testtools

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

// NestAPI emulates the parts of the Nest REST API used by the alarm: reading all devices & structures, and setting
// a thermostat's target temperature. Requests without the expected bearer token are rejected.
type NestAPI struct {
	*httptest.Server
	Token       string
	lock        sync.Mutex
	thermostats map[string]map[string]any
	structures  map[string]map[string]any
}

func NewNestAPI(token string) *NestAPI {
	n := NestAPI{
		Token:       token,
		thermostats: make(map[string]map[string]any),
		structures:  make(map[string]map[string]any),
	}
	n.Server = httptest.NewServer(http.HandlerFunc(n.handle))
	return &n
}

// SetThermostat adds (or replaces) a thermostat. fields use the API's field names, e.g. "ambient_temperature_f".
func (n *NestAPI) SetThermostat(id string, fields map[string]any) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.thermostats[id] = fields
}

func (n *NestAPI) SetStructure(id string, fields map[string]any) {
	n.lock.Lock()
	defer n.lock.Unlock()
	n.structures[id] = fields
}

// Thermostat returns the current fields of a thermostat.
func (n *NestAPI) Thermostat(id string) map[string]any {
	n.lock.Lock()
	defer n.lock.Unlock()
	return n.thermostats[id]
}

func (n *NestAPI) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+n.Token {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}

	n.lock.Lock()
	defer n.lock.Unlock()

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"devices":    map[string]any{"thermostats": n.thermostats},
			"structures": n.structures,
		})
	case r.Method == http.MethodPut && strings.HasPrefix(r.URL.Path, "/devices/thermostats/"):
		n.setField(w, r)
	default:
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
	}
}

func (n *NestAPI) setField(w http.ResponseWriter, r *http.Request) {
	id, field, ok := strings.Cut(strings.TrimPrefix(r.URL.Path, "/devices/thermostats/"), "/")
	t, found := n.thermostats[id]
	if !ok || !found {
		http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
		return
	}
	body, _ := io.ReadAll(r.Body)
	value, err := strconv.ParseFloat(string(body), 64)
	if err != nil {
		http.Error(w, `{"error":"invalid value"}`, http.StatusBadRequest)
		return
	}
	t[field] = value
	_, _ = w.Write(body)
}
