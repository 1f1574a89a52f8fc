package service

import (
	"context"
	"time"

	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/database"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/domain"
	"github.com/ANIKETSHETTY47/smart-climate-monitoring-system/internal/repository"
)

// DefaultMaxTemp is the alert threshold used when no MAX_TEMP setting exists.
const DefaultMaxTemp = 28.0

// AlertNotifier fans a stored alert out to an external channel.
type AlertNotifier interface {
	NotifyAlert(ctx context.Context, alert domain.Alert) error
}

// AuditArchiver stores a snapshot of audit logs outside the database.
type AuditArchiver interface {
	ArchiveAuditLogs(ctx context.Context, logs []domain.AuditLog) (key, url string, err error)
}

// MeasurementMirror copies stored readings to a secondary store.
type MeasurementMirror interface {
	MirrorMeasurement(ctx context.Context, m domain.Measurement) error
}

type Options struct {
	DefaultMaxTemp float64
	Notifier       AlertNotifier
	Archiver       AuditArchiver
	Mirror         MeasurementMirror
	// Now is overridable for tests.
	Now func() time.Time
}

type Services struct {
	Repos        *repository.Repos
	Users        *UserService
	Homes        *HomeService
	Devices      *DeviceService
	Measurements *MeasurementService
	Alerts       *AlertService
	Admin        *AdminService
}

func New(store *database.Store, opts Options) *Services {
	if opts.DefaultMaxTemp == 0 {
		opts.DefaultMaxTemp = DefaultMaxTemp
	}
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}

	repos := repository.New(store.DB)
	b := base{store: store, repos: repos, now: opts.Now}
	alerts := &AlertService{base: b, notifier: opts.Notifier, defaultMaxTemp: opts.DefaultMaxTemp}
	return &Services{
		Repos:        repos,
		Users:        &UserService{base: b},
		Homes:        &HomeService{base: b},
		Devices:      &DeviceService{base: b},
		Measurements: &MeasurementService{base: b, alerts: alerts, mirror: opts.Mirror},
		Alerts:       alerts,
		Admin:        &AdminService{base: b, archiver: opts.Archiver},
	}
}

type base struct {
	store *database.Store
	repos *repository.Repos
	now   func() time.Time
}

func (b base) audit(ctx context.Context, r *repository.Repos, userID int64, action, details string) error {
	entry := domain.AuditLog{UserID: userID, Action: action, Timestamp: b.now()}
	if details != "" {
		entry.Details = &details
	}
	return r.AppendAuditLog(ctx, &entry)
}
