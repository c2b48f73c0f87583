package model

// VehicleTire is a tire installed at a position on a vehicle's axle
// layout.
type VehicleTire struct {
	ID                 int64    `json:"id"`
	PartID             int64    `json:"part_id"`
	VehicleID          int64    `json:"vehicle_id"`
	PositionCode       string   `json:"position_code"`
	InstallationDate   string   `json:"installation_date"`
	InstallKm          float64  `json:"install_km"`
	IsActive           bool     `json:"is_active"`
	InstallEngineHours *float64 `json:"install_engine_hours"`
	Part               Part     `json:"part"`
}

// TireLayout mirrors GET /tires/vehicles/{id}/tires: the vehicle's axle
// configuration plus the tires currently mounted on it.
type TireLayout struct {
	VehicleID         int64         `json:"vehicle_id"`
	AxleConfiguration *string       `json:"axle_configuration"`
	Tires             []VehicleTire `json:"tires"`
}

// TireInstall is the payload for POST /tires/vehicles/{id}/tires.
type TireInstall struct {
	PartID             int64    `json:"part_id"`
	PositionCode       string   `json:"position_code"`
	InstallKm          float64  `json:"install_km"`
	InstallEngineHours *float64 `json:"install_engine_hours,omitempty"`
}

// TireRemoval is the payload for PUT /tires/tires/{id}/remove.
type TireRemoval struct {
	RemovalKm          float64  `json:"removal_km"`
	RemovalEngineHours *float64 `json:"removal_engine_hours,omitempty"`
}

// VehicleTireHistory is one entry of a vehicle's removed-tire history.
type VehicleTireHistory struct {
	ID               int64    `json:"id"`
	Part             Part     `json:"part"`
	InstallKm        float64  `json:"install_km"`
	RemovalKm        *float64 `json:"removal_km"`
	PositionCode     string   `json:"position_code"`
	InstallationDate string   `json:"installation_date"`
	RemovalDate      *string  `json:"removal_date"`
	KmRun            float64  `json:"km_run"`
}
