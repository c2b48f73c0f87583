package model

// FuelVerification is the fraud-screening status of a fuel log.
type FuelVerification string

const (
	FuelPending    FuelVerification = "PENDING"
	FuelVerified   FuelVerification = "VERIFIED"
	FuelSuspicious FuelVerification = "SUSPICIOUS"
	FuelUnverified FuelVerification = "UNVERIFIED"
)

// FuelSource records whether a log was typed in by a driver or synced
// from a fuel-card provider.
type FuelSource string

const (
	FuelManual      FuelSource = "MANUAL"
	FuelIntegration FuelSource = "INTEGRATION"
)

// FuelLog mirrors a refueling record.
type FuelLog struct {
	ID                 int64            `json:"id"`
	Odometer           float64          `json:"odometer"`
	Liters             float64          `json:"liters"`
	TotalCost          float64          `json:"total_cost"`
	VehicleID          int64            `json:"vehicle_id"`
	UserID             int64            `json:"user_id"`
	ReceiptPhotoURL    *string          `json:"receipt_photo_url"`
	Timestamp          string           `json:"timestamp"`
	VerificationStatus FuelVerification `json:"verification_status"`
	ProviderName       *string          `json:"provider_name"`
	GasStationName     *string          `json:"gas_station_name"`
	Source             FuelSource       `json:"source"`
	User               User             `json:"user"`
	Vehicle            Vehicle          `json:"vehicle"`
}

// FuelLogCreate is the payload for POST /fuel-logs/.
type FuelLogCreate struct {
	VehicleID       int64   `json:"vehicle_id"`
	Odometer        float64 `json:"odometer"`
	Liters          float64 `json:"liters"`
	TotalCost       float64 `json:"total_cost"`
	ReceiptPhotoURL *string `json:"receipt_photo_url,omitempty"`
}

// FuelLogUpdate is the payload for PUT /fuel-logs/{id}.
type FuelLogUpdate struct {
	VehicleID       *int64   `json:"vehicle_id,omitempty"`
	Odometer        *float64 `json:"odometer,omitempty"`
	Liters          *float64 `json:"liters,omitempty"`
	TotalCost       *float64 `json:"total_cost,omitempty"`
	ReceiptPhotoURL *string  `json:"receipt_photo_url,omitempty"`
}
