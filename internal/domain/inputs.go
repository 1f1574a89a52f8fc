package domain

// Create and update payloads accepted by the API. Validation tags are
// enforced at the transport layer.

type UserCreate struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type UserUpdate struct {
	IsBlocked *bool   `json:"is_blocked"`
	Role      *string `json:"role" validate:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type HomeCreate struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	OwnerID int64  `json:"owner_id" validate:"required,gt=0"`
}

type RoomCreate struct {
	Name    string   `json:"name" validate:"required"`
	Floor   *int     `json:"floor"`
	AreaSqm *float64 `json:"area_sqm" validate:"omitempty,gte=0"`
	HomeID  int64    `json:"home_id" validate:"required,gt=0"`
}

type DeviceCreate struct {
	Name       string `json:"name" validate:"required"`
	DeviceType string `json:"device_type" validate:"required"`
	MACAddress string `json:"mac_address" validate:"required"`
	RoomID     int64  `json:"room_id" validate:"required,gt=0"`
}

// MeasurementCreate.DeviceID is a pointer so only a missing key is rejected;
// any integer, zero included, is accepted.
type MeasurementCreate struct {
	DeviceID    *int64   `json:"device_id" validate:"required"`
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	CO2Level    *float64 `json:"co2_level"`
	PowerUsage  *float64 `json:"power_usage"`
}

type AlertCreate struct {
	Severity string `json:"severity" validate:"required"`
	Message  string `json:"message" validate:"required"`
	DeviceID int64  `json:"device_id" validate:"required,gt=0"`
}

type SettingUpsert struct {
	Key         string  `json:"key" validate:"required,max=100"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}
