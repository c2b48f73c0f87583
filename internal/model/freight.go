package model

// FreightStatus is the freight order lifecycle as the server names it.
type FreightStatus string

const (
	FreightOpen      FreightStatus = "Aberta"
	FreightAssigned  FreightStatus = "Atribuída"
	FreightInTransit FreightStatus = "Em Trânsito"
	FreightDelivered FreightStatus = "Entregue"
	FreightCancelled FreightStatus = "Cancelado"
)

// StopPointType marks a stop as pickup or delivery.
type StopPointType string

const (
	StopPickup   StopPointType = "Coleta"
	StopDelivery StopPointType = "Entrega"
)

// StopPointStatus tracks a single stop's progress.
type StopPointStatus string

const (
	StopPending StopPointStatus = "Pendente"
	StopDone    StopPointStatus = "Concluído"
)

// StopPoint is one ordered stop of a freight order.
type StopPoint struct {
	ID                int64           `json:"id"`
	SequenceOrder     int             `json:"sequence_order"`
	Type              StopPointType   `json:"type"`
	Status            StopPointStatus `json:"status"`
	Address           string          `json:"address"`
	CargoDescription  *string         `json:"cargo_description"`
	ScheduledTime     string          `json:"scheduled_time"`
	ActualArrivalTime *string         `json:"actual_arrival_time"`
}

// StopPointCreate is a stop in a freight order creation payload.
type StopPointCreate struct {
	SequenceOrder    int           `json:"sequence_order"`
	Type             StopPointType `json:"type"`
	Address          string        `json:"address"`
	CargoDescription *string       `json:"cargo_description,omitempty"`
	ScheduledTime    string        `json:"scheduled_time"`
}

// FreightOrder mirrors a freight order with its ordered stops.
type FreightOrder struct {
	ID                 int64         `json:"id"`
	Status             FreightStatus `json:"status"`
	Description        *string       `json:"description"`
	ScheduledStartTime *string       `json:"scheduled_start_time"`
	ScheduledEndTime   *string       `json:"scheduled_end_time"`
	Client             Client        `json:"client"`
	Vehicle            *Vehicle      `json:"vehicle"`
	Driver             *User         `json:"driver"`
	Journeys           []Journey     `json:"journeys,omitempty"`
	StopPoints         []StopPoint   `json:"stop_points"`
}

// FreightOrderCreate is the payload for POST /freight-orders/.
type FreightOrderCreate struct {
	ClientID    int64             `json:"client_id"`
	Description *string           `json:"description,omitempty"`
	StopPoints  []StopPointCreate `json:"stop_points"`
}

// FreightOrderUpdate is the payload for PUT /freight-orders/{id}.
type FreightOrderUpdate struct {
	Description *string        `json:"description,omitempty"`
	Status      *FreightStatus `json:"status,omitempty"`
	VehicleID   *int64         `json:"vehicle_id,omitempty"`
	DriverID    *int64         `json:"driver_id,omitempty"`
}

// FreightOrderClaim assigns an open order to the calling driver.
type FreightOrderClaim struct {
	VehicleID int64 `json:"vehicle_id"`
}

// CompleteStopPayload closes a stop, tying it to the journey leg that
// served it.
type CompleteStopPayload struct {
	JourneyID  int64   `json:"journey_id"`
	EndMileage float64 `json:"end_mileage"`
}
