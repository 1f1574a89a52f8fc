// Package client implements the simulated sensor device: a persisted JSON
// configuration, a random-walk sensor and the loop that ships readings to
// the API.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
)

const (
	TransportHTTP = "http"
	TransportMQTT = "mqtt"
)

// Config is the on-disk client configuration. UpdateInterval is in seconds
// and may be fractional.
type Config struct {
	ServerURL      string  `json:"server_url"`
	DeviceID       int64   `json:"device_id"`
	UpdateInterval float64 `json:"update_interval"`
	SimulationMode bool    `json:"simulation_mode"`
	Transport      string  `json:"transport,omitempty"`
	MQTTBroker     string  `json:"mqtt_broker,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		ServerURL:      "http://localhost:8000",
		DeviceID:       1,
		UpdateInterval: 5,
		SimulationMode: true,
	}
}

// ConfigManager owns one config file. Every change rewrites the whole file;
// keys the client does not know are written back unchanged.
type ConfigManager struct {
	path   string
	Config Config
	extra  map[string]json.RawMessage
}

// LoadConfig reads path, creating it with DefaultConfig when it does not
// exist yet.
func LoadConfig(path string) (*ConfigManager, error) {
	m := &ConfigManager{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		m.Config = DefaultConfig()
		if err := m.Save(); err != nil {
			return nil, err
		}
		return m, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &m.Config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &m.extra); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range knownKeys() {
		delete(m.extra, key)
	}
	return m, nil
}

// knownKeys lists the json names of Config's fields.
func knownKeys() []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0])
	}
	return keys
}

func (m *ConfigManager) Path() string { return m.path }

func (m *ConfigManager) Save() error {
	if dir := filepath.Dir(m.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.Marshal(m.Config)
	if err != nil {
		return err
	}
	out := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	for k, v := range m.extra {
		out[k] = v
	}

	data, err = json.MarshalIndent(out, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0644)
}

// UpdateSetting parses value for key, applies it and saves the file.
func (m *ConfigManager) UpdateSetting(key, value string) error {
	next := m.Config
	switch key {
	case "server_url":
		next.ServerURL = value
	case "device_id":
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("device_id must be an integer: %w", err)
		}
		next.DeviceID = id
	case "update_interval":
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("update_interval must be a positive number of seconds, got %q", value)
		}
		next.UpdateInterval = n
	case "simulation_mode":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("simulation_mode must be a boolean: %w", err)
		}
		next.SimulationMode = b
	case "transport":
		if value != TransportHTTP && value != TransportMQTT {
			return fmt.Errorf("transport must be %q or %q, got %q", TransportHTTP, TransportMQTT, value)
		}
		next.Transport = value
	case "mqtt_broker":
		next.MQTTBroker = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	m.Config = next
	return m.Save()
}
