package client

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSensor_Deterministic(t *testing.T) {
	a := NewSensor(rand.New(rand.NewSource(7)))
	b := NewSensor(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		ta, ha := a.Read()
		tb, hb := b.Read()
		assert.Equal(t, ta, tb)
		assert.Equal(t, ha, hb)
	}
}

func TestSensor_StepSizeAndRounding(t *testing.T) {
	s := NewSensor(rand.New(rand.NewSource(1)))

	prevT, prevH := s.temp, s.hum
	for i := 0; i < 200; i++ {
		temp, hum := s.Read()

		assert.LessOrEqual(t, math.Abs(s.temp-prevT), 0.5)
		assert.LessOrEqual(t, math.Abs(s.hum-prevH), 1.0)
		assert.Equal(t, math.Round(temp*100)/100, temp)
		assert.Equal(t, math.Round(hum*100)/100, hum)
		prevT, prevH = s.temp, s.hum
	}
}

func TestSensor_Clamped(t *testing.T) {
	s := NewSensor(rand.New(rand.NewSource(3)))

	s.temp, s.hum = 39.9, 99.5
	for i := 0; i < 500; i++ {
		temp, hum := s.Read()
		assert.LessOrEqual(t, temp, 40.0)
		assert.GreaterOrEqual(t, temp, -10.0)
		assert.LessOrEqual(t, hum, 100.0)
		assert.GreaterOrEqual(t, hum, 0.0)
	}

	s.temp, s.hum = -9.9, 0.5
	for i := 0; i < 500; i++ {
		temp, hum := s.Read()
		assert.GreaterOrEqual(t, temp, -10.0)
		assert.GreaterOrEqual(t, hum, 0.0)
	}
}

func TestSensor_StartsNearSeed(t *testing.T) {
	s := NewSensor(nil)

	temp, hum := s.Read()
	assert.InDelta(t, 20.0, temp, 0.51)
	assert.InDelta(t, 50.0, hum, 1.01)
}
