package model

// JourneyType distinguishes fixed-destination trips from free roaming.
type JourneyType string

const (
	JourneySpecificDestination JourneyType = "specific_destination"
	JourneyFreeRoam            JourneyType = "free_roam"
)

// Journey mirrors a journey/operation record. Distance is tracked in
// kilometers or engine hours depending on the organization's sector.
type Journey struct {
	ID                 int64       `json:"id"`
	StartTime          string      `json:"start_time"`
	EndTime            *string     `json:"end_time"`
	StartMileage       float64     `json:"start_mileage"`
	EndMileage         *float64    `json:"end_mileage"`
	IsActive           bool        `json:"is_active"`
	TripType           JourneyType `json:"trip_type"`
	DestinationAddress *string     `json:"destination_address,omitempty"`
	TripDescription    *string     `json:"trip_description,omitempty"`
	StartEngineHours   *float64    `json:"start_engine_hours"`
	EndEngineHours     *float64    `json:"end_engine_hours"`
	Vehicle            Vehicle     `json:"vehicle"`
	Driver             User        `json:"driver"`
	OrganizationID     int64       `json:"organization_id"`
	Implement          *Implement  `json:"implement,omitempty"`
}

// JourneyCreate is the payload for POST /journeys/start.
type JourneyCreate struct {
	VehicleID               int64       `json:"vehicle_id"`
	TripType                JourneyType `json:"trip_type"`
	DestinationAddress      string      `json:"destination_address,omitempty"`
	TripDescription         string      `json:"trip_description,omitempty"`
	ImplementID             *int64      `json:"implement_id,omitempty"`
	StartMileage            *float64    `json:"start_mileage,omitempty"`
	StartEngineHours        *float64    `json:"start_engine_hours,omitempty"`
	DestinationCEP          string      `json:"destination_cep,omitempty"`
	DestinationStreet       string      `json:"destination_street,omitempty"`
	DestinationNumber       string      `json:"destination_number,omitempty"`
	DestinationNeighborhood string      `json:"destination_neighborhood,omitempty"`
	DestinationCity         string      `json:"destination_city,omitempty"`
	DestinationState        string      `json:"destination_state,omitempty"`
}

// JourneyUpdate closes a journey via PUT /journeys/{id}/end.
type JourneyUpdate struct {
	EndMileage     *float64 `json:"end_mileage,omitempty"`
	EndEngineHours *float64 `json:"end_engine_hours,omitempty"`
}

// JourneyEndResponse is the /journeys/{id}/end payload: the closed
// journey plus the vehicle with its updated odometer and status.
type JourneyEndResponse struct {
	Journey Journey `json:"journey"`
	Vehicle Vehicle `json:"vehicle"`
}
