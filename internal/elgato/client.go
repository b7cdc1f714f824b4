package elgato

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"
)

// DefaultPort is the fixed port of the Elgato accessory API.
const DefaultPort = 9123

// defaultTimeout bounds every request so an unreachable light cannot
// stall the reconciliation loop past one cycle.
const defaultTimeout = 2 * time.Second

// Validation bounds of the light parameters, enforced client-side so a
// bad request never reaches the device.
const (
	MinBrightness  = 0
	MaxBrightness  = 100
	MinTemperature = 143
	MaxTemperature = 344
)

// ErrOutOfRange is returned when a requested brightness or temperature
// falls outside the device's accepted range.
var ErrOutOfRange = errors.New("light parameter out of range")

// Client talks to the accessory API of individual lights. The zero
// value is not usable; construct with New.
type Client struct {
	http *http.Client
	port int
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithPort overrides the accessory API port, used by tests to point
// the client at an httptest server.
func WithPort(port int) Option {
	return func(c *Client) { c.port = port }
}

// New creates a client with the default 2s timeout.
func New(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{Timeout: defaultTimeout},
		port: DefaultPort,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccessoryInfo fetches the device identity from addr. This is the
// "peer info" call the reconciler uses to turn a discovered address
// into a resolved device.
func (c *Client) AccessoryInfo(ctx context.Context, addr string) (DeviceInfo, error) {
	var info DeviceInfo
	if err := c.getJSON(ctx, addr, "/elgato/accessory-info", &info); err != nil {
		return DeviceInfo{}, fmt.Errorf("accessory info for %s: %w", addr, err)
	}
	info.Address = addr
	return info, nil
}

// Lights fetches the current state of the first light element.
func (c *Client) Lights(ctx context.Context, addr string) (LightState, error) {
	var payload lightsPayload
	if err := c.getJSON(ctx, addr, "/elgato/lights", &payload); err != nil {
		return LightState{}, fmt.Errorf("get lights for %s: %w", addr, err)
	}
	if len(payload.Lights) == 0 {
		return LightState{}, fmt.Errorf("get lights for %s: no lights in response", addr)
	}
	return payload.Lights[0], nil
}

// SetLights applies brightness and temperature to the light at addr.
// Temperature 0 means "leave unchanged" and is omitted from the
// request. The on flag is derived from brightness, matching how the
// physical dial behaves.
func (c *Client) SetLights(ctx context.Context, addr string, brightness, temperature int) (LightState, error) {
	if brightness < MinBrightness || brightness > MaxBrightness {
		return LightState{}, fmt.Errorf("%w: brightness %d not in %d..%d",
			ErrOutOfRange, brightness, MinBrightness, MaxBrightness)
	}
	if temperature != 0 && (temperature < MinTemperature || temperature > MaxTemperature) {
		return LightState{}, fmt.Errorf("%w: temperature %d not in %d..%d",
			ErrOutOfRange, temperature, MinTemperature, MaxTemperature)
	}

	state := LightState{Brightness: brightness, Temperature: temperature}
	if brightness > 0 {
		state.On = 1
	}
	req := lightsPayload{NumberOfLights: 1, Lights: []LightState{state}}

	var resp lightsPayload
	if err := c.putJSON(ctx, addr, "/elgato/lights", req, &resp); err != nil {
		return LightState{}, fmt.Errorf("set lights for %s: %w", addr, err)
	}
	if len(resp.Lights) == 0 {
		return LightState{}, fmt.Errorf("set lights for %s: no lights in response", addr)
	}
	return resp.Lights[0], nil
}

// SetDisplayName renames the device at addr.
func (c *Client) SetDisplayName(ctx context.Context, addr, name string) error {
	if name == "" {
		return errors.New("set display name: name must be non-empty")
	}
	if err := c.putJSON(ctx, addr, "/elgato/accessory-info", displayNamePayload{DisplayName: name}, nil); err != nil {
		return fmt.Errorf("set display name for %s: %w", addr, err)
	}
	return nil
}

func (c *Client) url(addr, path string) string {
	return "http://" + net.JoinHostPort(addr, strconv.Itoa(c.port)) + path
}

func (c *Client) getJSON(ctx context.Context, addr, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(addr, path), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) putJSON(ctx context.Context, addr, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.url(addr, path), bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if out == nil {
		_, err = io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
