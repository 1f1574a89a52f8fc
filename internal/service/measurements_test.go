package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
)

func TestIngest_HighTemperatureRaisesOneAlert(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	m := f.ingest(t, f.device.ID, ptr(30.0))
	assert.NotZero(t, m.ID)

	alerts, err := f.svcs.Devices.Alerts(ctx, f.device.ID)
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domain.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, f.device.ID, alerts[0].DeviceID)
	assert.Contains(t, alerts[0].Message, "30.00")
	assert.Contains(t, alerts[0].Message, "28.00")
	assert.False(t, alerts[0].IsResolved)

	require.Len(t, f.notifier.alerts, 1)
	assert.Equal(t, alerts[0].ID, f.notifier.alerts[0].ID)
}

func TestIngest_NormalTemperatureRaisesNothing(t *testing.T) {
	f := newFixture(t)

	f.ingest(t, f.device.ID, ptr(25.0))
	f.ingest(t, f.device.ID, ptr(28.0)) // equal to the limit is not above it

	alerts, err := f.svcs.Devices.Alerts(context.Background(), f.device.ID)
	require.NoError(t, err)
	assert.Empty(t, alerts)
	assert.Empty(t, f.notifier.alerts)
}

func TestIngest_NoTemperatureRaisesNothing(t *testing.T) {
	f := newFixture(t)

	f.ingest(t, f.device.ID, nil)

	alerts, err := f.svcs.Devices.Alerts(context.Background(), f.device.ID)
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestIngest_MaxTempSetting(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setting   string
		temp      float64
		wantAlert bool
	}{
		{name: "lower limit triggers", setting: "20", temp: 25.0, wantAlert: true},
		{name: "higher limit suppresses", setting: "35.5", temp: 30.0, wantAlert: false},
		{name: "unparseable falls back to default", setting: "hot", temp: 30.0, wantAlert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.svcs.Admin.UpsertSetting(ctx, f.owner.ID, domain.SettingUpsert{Key: domain.SettingMaxTemp, Value: tt.setting})
			require.NoError(t, err)

			f.ingest(t, f.device.ID, ptr(tt.temp))

			alerts, err := f.svcs.Devices.Alerts(ctx, f.device.ID)
			require.NoError(t, err)
			if tt.wantAlert {
				assert.Len(t, alerts, 1)
			} else {
				assert.Empty(t, alerts)
			}
		})
	}
}

func TestIngest_MarksDeviceOnline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	before, err := f.svcs.Devices.Get(ctx, f.device.ID)
	require.NoError(t, err)
	assert.False(t, before.IsOnline)

	f.advance(5 * time.Minute)
	f.ingest(t, f.device.ID, ptr(21.5))

	after, err := f.svcs.Devices.Get(ctx, f.device.ID)
	require.NoError(t, err)
	assert.True(t, after.IsOnline)
	assert.True(t, after.LastSeen.After(before.LastSeen), "last_seen %v should advance past %v", after.LastSeen, before.LastSeen)
}

func TestIngest_UnknownDeviceStillStored(t *testing.T) {
	for _, deviceID := range []int64{4242, 0, -5} {
		f := newFixture(t)
		ctx := context.Background()

		m, err := f.svcs.Measurements.Ingest(ctx, domain.MeasurementCreate{DeviceID: id(deviceID), Temperature: ptr(35.0)}, SourceHTTP)
		require.NoError(t, err, "device %d", deviceID)
		assert.NotZero(t, m.ID)
		assert.Equal(t, deviceID, m.DeviceID)

		stored, err := f.svcs.Repos.ListMeasurementsByDevice(ctx, deviceID, 10)
		require.NoError(t, err)
		require.Len(t, stored, 1, "device %d", deviceID)
		assert.Equal(t, m.ID, stored[0].ID)
		assert.Empty(t, f.notifier.alerts)
	}
}

func TestIngest_MissingDeviceID(t *testing.T) {
	f := newFixture(t)

	_, err := f.svcs.Measurements.Ingest(context.Background(), domain.MeasurementCreate{Temperature: ptr(21.0)}, SourceHTTP)
	assert.Error(t, err)
}

func TestIngest_NotifierFailureIsNotSurfaced(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = assert.AnError

	f.ingest(t, f.device.ID, ptr(31.0))

	alerts, err := f.svcs.Devices.Alerts(context.Background(), f.device.ID)
	require.NoError(t, err)
	assert.Len(t, alerts, 1)
}

func TestFromMQTT(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	payload := []byte(`{"device_id": 1, "temperature": 22.5, "humidity": 40.1, "co2_level": 400.0}`)
	require.NoError(t, f.svcs.Measurements.FromMQTT(ctx, "smartclimate/measurements", payload))

	items, err := f.svcs.Devices.Measurements(ctx, f.device.ID, 10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.InDelta(t, 22.5, *items[0].Temperature, 1e-9)

	assert.Error(t, f.svcs.Measurements.FromMQTT(ctx, "t", []byte(`not json`)))
	assert.Error(t, f.svcs.Measurements.FromMQTT(ctx, "t", []byte(`{"temperature": 20}`)))
}

type recordingMirror struct {
	got []domain.Measurement
	err error
}

func (m *recordingMirror) MirrorMeasurement(_ context.Context, in domain.Measurement) error {
	m.got = append(m.got, in)
	return m.err
}

func TestIngest_Mirror(t *testing.T) {
	f := newFixture(t)
	mirror := &recordingMirror{err: assert.AnError}
	f.svcs.Measurements.mirror = mirror

	m := f.ingest(t, f.device.ID, ptr(22.0))
	f.ingest(t, 4242, ptr(22.0))

	require.Len(t, mirror.got, 2)
	assert.Equal(t, m.ID, mirror.got[0].ID)
	assert.Equal(t, int64(4242), mirror.got[1].DeviceID)
}
