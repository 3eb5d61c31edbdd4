// Package nest implements a client for the Nest developer REST API.
package nest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/clambin/nest-alarm/internal/thermostat"
)

const DefaultURL = "https://developer-api.nest.com"

// ErrNoToken is returned when no access token has been stored yet, i.e. the user hasn't logged in.
var ErrNoToken = errors.New("token not set")

var _ thermostat.Client = &Client{}

// TokenSource returns the Nest access token, if one is available.
type TokenSource interface {
	Token() (string, bool)
}

// Client reads thermostat & structure data from the Nest API and sets a thermostat's target temperature.
type Client struct {
	URL        string
	Tokens     TokenSource
	HTTPClient *http.Client
}

// New returns a Client for the API at apiURL. If rt is nil, http.DefaultTransport is used.
//
// The Nest API redirects requests to the Firebase host serving the account. Go's http client drops the Authorization
// header when following a redirect to a different host, so New's client adds it again.
func New(apiURL string, tokens TokenSource, rt http.RoundTripper) *Client {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &Client{
		URL:    apiURL,
		Tokens: tokens,
		HTTPClient: &http.Client{
			Transport:     rt,
			Timeout:       30 * time.Second,
			CheckRedirect: keepAuthorization,
		},
	}
}

func keepAuthorization(req *http.Request, via []*http.Request) error {
	if len(via) >= 10 {
		return errors.New("stopped after 10 redirects")
	}
	if auth := via[0].Header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	return nil
}

type apiData struct {
	Devices struct {
		Thermostats map[string]thermostat.ThermostatStatus `json:"thermostats"`
	} `json:"devices"`
	Structures map[string]thermostat.StructureStatus `json:"structures"`
}

// GetSnapshot returns all thermostats and structures of the account.
func (c *Client) GetSnapshot(ctx context.Context) (thermostat.Snapshot, error) {
	var data apiData
	if err := c.call(ctx, http.MethodGet, "/", nil, &data); err != nil {
		return thermostat.Snapshot{}, err
	}
	snapshot := thermostat.Snapshot{
		Thermostats: make(map[string]thermostat.ThermostatStatus, len(data.Devices.Thermostats)),
		Structures:  make(map[string]thermostat.StructureStatus, len(data.Structures)),
	}
	for id, t := range data.Devices.Thermostats {
		// device_id doesn't always match the path ID of the device. Use the path ID, as that's what the API expects.
		t.DeviceID = id
		snapshot.Thermostats[id] = t
	}
	for id, s := range data.Structures {
		s.StructureID = id
		snapshot.Structures[id] = s
	}
	return snapshot, nil
}

// SetTargetTemperature sets the target temperature of the thermostat with the provided device ID.
func (c *Client) SetTargetTemperature(ctx context.Context, deviceID string, temperatureF float64) error {
	body := strconv.FormatFloat(temperatureF, 'f', -1, 64)
	return c.call(ctx, http.MethodPut, "/devices/thermostats/"+url.PathEscape(deviceID)+"/target_temperature_f", bytes.NewBufferString(body), nil)
}

func (c *Client) call(ctx context.Context, method, path string, body io.Reader, response any) error {
	token, ok := c.Tokens.Token()
	if !ok {
		return ErrNoToken
	}

	target, err := url.JoinPath(c.URL, path)
	if err != nil {
		return fmt.Errorf("nest: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("nest: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("nest: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("nest: %s %s: %s: %s", method, path, resp.Status, bytes.TrimSpace(msg))
	}

	if response != nil {
		if err = json.NewDecoder(resp.Body).Decode(response); err != nil {
			return fmt.Errorf("nest: decode: %w", err)
		}
	}
	return nil
}
