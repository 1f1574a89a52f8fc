package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// DefaultCO2Level is reported with every reading; the simulated device has
// no CO2 sensor.
const DefaultCO2Level = 400.0

// DefaultMQTTTopic is the topic cmd/ingestor subscribes to.
const DefaultMQTTTopic = "smartclimate/measurements"

type Reading struct {
	DeviceID    int64   `json:"device_id"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	CO2Level    float64 `json:"co2_level"`
}

// Sender delivers one reading. The returned map is the decoded server
// response, when the transport has one.
type Sender interface {
	Send(ctx context.Context, r Reading) (map[string]interface{}, error)
}

// StatusError is returned when the API answers with anything but 200.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server responded %d: %s", e.Code, e.Body)
}

// HTTPSender posts readings to {server_url}/measurements/. Requests carry no
// timeout; a hung server stalls the loop until it answers.
type HTTPSender struct {
	client *resty.Client
}

func NewHTTPSender(serverURL string) *HTTPSender {
	return &HTTPSender{
		client: resty.New().
			SetBaseURL(serverURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (s *HTTPSender) Send(ctx context.Context, r Reading) (map[string]interface{}, error) {
	var out map[string]interface{}
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(r).
		SetResult(&out).
		Post("/measurements/")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, &StatusError{Code: resp.StatusCode(), Body: resp.String()}
	}
	return out, nil
}

// MQTTSender publishes readings for cmd/ingestor instead of calling the API.
type MQTTSender struct {
	client mqtt.Client
	topic  string
}

func NewMQTTSender(broker, clientID, topic string) (*MQTTSender, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true)
	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &MQTTSender{client: c, topic: topic}, nil
}

func (s *MQTTSender) Send(_ context.Context, r Reading) (map[string]interface{}, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	token := s.client.Publish(s.topic, 1, false, payload)
	token.Wait()
	return nil, token.Error()
}

func (s *MQTTSender) Close() { s.client.Disconnect(250) }

// Client reads the sensor and ships a reading every interval until its
// context is cancelled.
type Client struct {
	deviceID int64
	interval time.Duration
	sensor   *Sensor
	sender   Sender
}

func New(cfg Config, sensor *Sensor, sender Sender) *Client {
	return &Client{
		deviceID: cfg.DeviceID,
		interval: time.Duration(cfg.UpdateInterval * float64(time.Second)),
		sensor:   sensor,
		sender:   sender,
	}
}

// Run sends readings until ctx is done. Delivery failures are logged and the
// next tick retries.
func (c *Client) Run(ctx context.Context) error {
	log.Info().Int64("device_id", c.deviceID).Dur("interval", c.interval).Msg("client started")

	for {
		c.sendOnce(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("client stopped")
			return nil
		case <-time.After(c.interval):
		}
	}
}

func (c *Client) sendOnce(ctx context.Context) {
	temp, hum := c.sensor.Read()
	r := Reading{
		DeviceID:    c.deviceID,
		Temperature: temp,
		Humidity:    hum,
		CO2Level:    DefaultCO2Level,
	}

	resp, err := c.sender.Send(ctx, r)
	if err != nil {
		log.Error().Err(err).Interface("payload", r).Msg("failed to send measurement")
		return
	}
	log.Info().Interface("payload", r).Interface("response", resp).Msg("measurement sent")
}
