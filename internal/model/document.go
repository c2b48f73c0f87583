package model

// Document is an expiring document attached to a vehicle or driver.
type Document struct {
	ID           int64   `json:"id"`
	DocumentType string  `json:"document_type"`
	ExpiryDate   string  `json:"expiry_date"`
	Notes        *string `json:"notes"`
	FileURL      string  `json:"file_url"`
	VehicleID    *int64  `json:"vehicle_id"`
	DriverID     *int64  `json:"driver_id"`
}
