package model

// VehicleStatus uses the server's Portuguese vocabulary verbatim; the
// client never translates server-owned enums.
type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "Disponível"
	VehicleInUse       VehicleStatus = "Em uso"
	VehicleMaintenance VehicleStatus = "Em manutenção"
)

// Vehicle mirrors the vehicle payload returned by the API.
type Vehicle struct {
	ID                  int64         `json:"id"`
	Brand               string        `json:"brand"`
	Model               string        `json:"model"`
	Year                int           `json:"year"`
	Status              VehicleStatus `json:"status"`
	PhotoURL            *string       `json:"photo_url,omitempty"`
	LicensePlate        *string       `json:"license_plate,omitempty"`
	Identifier          *string       `json:"identifier,omitempty"`
	TelemetryDeviceID   *string       `json:"telemetry_device_id,omitempty"`
	CurrentKm           float64       `json:"current_km"`
	CurrentEngineHours  *float64      `json:"current_engine_hours,omitempty"`
	LastLatitude        *float64      `json:"last_latitude,omitempty"`
	LastLongitude       *float64      `json:"last_longitude,omitempty"`
	NextMaintenanceDate *string       `json:"next_maintenance_date,omitempty"`
	NextMaintenanceKm   *float64      `json:"next_maintenance_km,omitempty"`
	MaintenanceNotes    *string       `json:"maintenance_notes,omitempty"`
	AxleConfiguration   *string       `json:"axle_configuration,omitempty"`
}

// VehicleCreate is the payload for POST /vehicles/.
type VehicleCreate struct {
	Brand              string        `json:"brand"`
	Model              string        `json:"model"`
	Year               int           `json:"year"`
	LicensePlate       *string       `json:"license_plate,omitempty"`
	Identifier         *string       `json:"identifier,omitempty"`
	Status             VehicleStatus `json:"status"`
	CurrentKm          float64       `json:"current_km"`
	CurrentEngineHours *float64      `json:"current_engine_hours,omitempty"`
}

// VehicleUpdate is the payload for PUT /vehicles/{id}; all fields
// optional.
type VehicleUpdate struct {
	Brand              *string        `json:"brand,omitempty"`
	Model              *string        `json:"model,omitempty"`
	Year               *int           `json:"year,omitempty"`
	LicensePlate       *string        `json:"license_plate,omitempty"`
	Identifier         *string        `json:"identifier,omitempty"`
	Status             *VehicleStatus `json:"status,omitempty"`
	CurrentKm          *float64       `json:"current_km,omitempty"`
	CurrentEngineHours *float64       `json:"current_engine_hours,omitempty"`
}

// PaginatedVehicles mirrors the paginated GET /vehicles/ response.
type PaginatedVehicles struct {
	Vehicles   []Vehicle `json:"vehicles"`
	TotalItems int       `json:"total_items"`
}

// AxleConfigUpdate is the payload for PATCH /vehicles/{id}/axle-config.
type AxleConfigUpdate struct {
	AxleConfiguration string `json:"axle_configuration"`
}
