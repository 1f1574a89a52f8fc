package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/database"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/testinfra"
)

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []domain.Alert
	err    error
}

func (n *recordingNotifier) NotifyAlert(_ context.Context, a domain.Alert) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, a)
	return n.err
}

type fixture struct {
	store    *database.Store
	svcs     *Services
	notifier *recordingNotifier
	clock    *time.Time
	owner    domain.User
	home     domain.Home
	room     domain.Room
	device   domain.Device
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	f := &fixture{
		store:    testinfra.NewStore(t),
		notifier: &recordingNotifier{},
		clock:    &now,
	}
	f.svcs = New(f.store, Options{
		Notifier: f.notifier,
		Now:      func() time.Time { return *f.clock },
	})

	var err error
	f.owner, err = f.svcs.Users.Create(ctx, domain.UserCreate{Username: "owner", Email: "owner@example.com", Password: "secret1"})
	require.NoError(t, err)
	f.home, err = f.svcs.Homes.Create(ctx, domain.HomeCreate{Name: "Flat", Address: "Main st 1", OwnerID: f.owner.ID})
	require.NoError(t, err)
	f.room, err = f.svcs.Homes.CreateRoom(ctx, domain.RoomCreate{Name: "Kitchen", HomeID: f.home.ID})
	require.NoError(t, err)
	f.device, err = f.svcs.Devices.Create(ctx, domain.DeviceCreate{
		Name: "Sensor", DeviceType: "climate", MACAddress: "AA:BB:CC:00:00:01", RoomID: f.room.ID,
	})
	require.NoError(t, err)
	return f
}

func (f *fixture) advance(d time.Duration) {
	*f.clock = f.clock.Add(d)
}

func (f *fixture) ingest(t *testing.T, deviceID int64, temp *float64) domain.Measurement {
	t.Helper()
	m, err := f.svcs.Measurements.Ingest(context.Background(), domain.MeasurementCreate{
		DeviceID: &deviceID, Temperature: temp, Humidity: ptr(45.0), CO2Level: ptr(400.0),
	}, SourceHTTP)
	require.NoError(t, err)
	return m
}

func ptr(v float64) *float64 { return &v }

func id(v int64) *int64 { return &v }

func errIs(target error) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, _ ...interface{}) bool {
		return assert.True(t, errors.Is(err, target), "expected %v, got %v", target, err)
	}
}
