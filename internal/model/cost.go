package model

// VehicleCost is one cost entry attributed to a vehicle.
type VehicleCost struct {
	ID        int64   `json:"id"`
	VehicleID int64   `json:"vehicle_id"`
	CostType  string  `json:"cost_type"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	Notes     *string `json:"notes,omitempty"`
}

// VehicleCostCreate is the payload for POST /vehicles/{id}/costs/.
type VehicleCostCreate struct {
	CostType string  `json:"cost_type"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Notes    *string `json:"notes,omitempty"`
}
