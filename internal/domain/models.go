package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	SeverityHigh = "HIGH"

	SettingMaxTemp = "MAX_TEMP"
)

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	IsBlocked    bool      `db:"is_blocked" json:"is_blocked"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	Homes        []Home    `db:"-" json:"homes"`
}

type Home struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Address   string    `db:"address" json:"address"`
	OwnerID   int64     `db:"owner_id" json:"owner_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	Rooms     []Room    `db:"-" json:"rooms"`
}

type Room struct {
	ID      int64    `db:"id" json:"id"`
	Name    string   `db:"name" json:"name"`
	Floor   int      `db:"floor" json:"floor"`
	AreaSqm *float64 `db:"area_sqm" json:"area_sqm"`
	HomeID  int64    `db:"home_id" json:"home_id"`
}

type Device struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	DeviceType string    `db:"device_type" json:"device_type"`
	MACAddress string    `db:"mac_address" json:"mac_address"`
	IsOnline   bool      `db:"is_online" json:"is_online"`
	LastSeen   time.Time `db:"last_seen" json:"last_seen"`
	RoomID     int64     `db:"room_id" json:"room_id"`
}

// Measurement is one reading from a device. Every sensor value is optional.
type Measurement struct {
	ID          int64     `db:"id" json:"id"`
	DeviceID    int64     `db:"device_id" json:"device_id"`
	Temperature *float64  `db:"temperature" json:"temperature"`
	Humidity    *float64  `db:"humidity" json:"humidity"`
	CO2Level    *float64  `db:"co2_level" json:"co2_level"`
	PowerUsage  *float64  `db:"power_usage" json:"power_usage,omitempty"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
}

type Alert struct {
	ID         int64     `db:"id" json:"id"`
	DeviceID   int64     `db:"device_id" json:"device_id"`
	Severity   string    `db:"severity" json:"severity"`
	Message    string    `db:"message" json:"message"`
	IsResolved bool      `db:"is_resolved" json:"is_resolved"`
	Timestamp  time.Time `db:"timestamp" json:"timestamp"`
}

type AuditLog struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Action    string    `db:"action" json:"action"`
	Details   *string   `db:"details" json:"details"`
	Timestamp time.Time `db:"timestamp" json:"timestamp"`
}

type SystemSetting struct {
	ID          int64   `db:"id" json:"id"`
	Key         string  `db:"key" json:"key"`
	Value       string  `db:"value" json:"value"`
	Description *string `db:"description" json:"description"`
}

type HomeStatistics struct {
	HomeName     string `json:"home_name"`
	TotalRooms   int64  `json:"total_rooms"`
	TotalDevices int64  `json:"total_devices"`
	ActiveAlerts int64  `json:"active_alerts"`
}

// HomeAnalytics averages are nil when the home has no readings for that value.
type HomeAnalytics struct {
	HomeID         int64    `json:"home_id"`
	AvgTemperature *float64 `json:"avg_temperature"`
	AvgHumidity    *float64 `json:"avg_humidity"`
}
