package client

import (
	"math"
	"math/rand"
	"time"
)

const (
	initialTemperature = 20.0
	initialHumidity    = 50.0
)

// Sensor produces a bounded random walk of temperature and humidity.
type Sensor struct {
	temp float64
	hum  float64
	rnd  *rand.Rand
}

// NewSensor returns a sensor seeded at 20.0°C and 50% humidity. A nil rnd
// uses a time-seeded source.
func NewSensor(rnd *rand.Rand) *Sensor {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sensor{temp: initialTemperature, hum: initialHumidity, rnd: rnd}
}

// Read advances the walk one step and returns both values rounded to two
// decimals. The internal state keeps full precision.
func (s *Sensor) Read() (temperature, humidity float64) {
	s.temp = clamp(s.temp+s.uniform(-0.5, 0.5), -10, 40)
	s.hum = clamp(s.hum+s.uniform(-1, 1), 0, 100)
	return round2(s.temp), round2(s.hum)
}

func (s *Sensor) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rnd.Float64()
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
