package model

// FineStatus is the traffic fine lifecycle.
type FineStatus string

const (
	FinePending   FineStatus = "Pendente"
	FinePaid      FineStatus = "Paga"
	FineAppealing FineStatus = "Em Recurso"
	FineCancelled FineStatus = "Cancelada"
)

// Fine mirrors a traffic fine record.
type Fine struct {
	ID             int64      `json:"id"`
	Description    string     `json:"description"`
	InfractionCode *string    `json:"infraction_code"`
	Date           string     `json:"date"`
	Value          float64    `json:"value"`
	Status         FineStatus `json:"status"`
	VehicleID      int64      `json:"vehicle_id"`
	DriverID       *int64     `json:"driver_id"`
	Vehicle        *Vehicle   `json:"vehicle,omitempty"`
	Driver         *User      `json:"driver,omitempty"`
}

// FineCreate is the payload for POST /fines/.
type FineCreate struct {
	Description    string     `json:"description"`
	Date           string     `json:"date"`
	Value          float64    `json:"value"`
	Status         FineStatus `json:"status"`
	VehicleID      int64      `json:"vehicle_id"`
	DriverID       *int64     `json:"driver_id,omitempty"`
	InfractionCode *string    `json:"infraction_code,omitempty"`
}

// FineUpdate is the payload for PUT /fines/{id}; all fields optional.
type FineUpdate struct {
	Description    *string     `json:"description,omitempty"`
	Date           *string     `json:"date,omitempty"`
	Value          *float64    `json:"value,omitempty"`
	Status         *FineStatus `json:"status,omitempty"`
	VehicleID      *int64      `json:"vehicle_id,omitempty"`
	DriverID       *int64      `json:"driver_id,omitempty"`
	InfractionCode *string     `json:"infraction_code,omitempty"`
}
