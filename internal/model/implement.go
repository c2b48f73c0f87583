package model

// ImplementStatus is controlled by the server; the client only filters
// on it.
type ImplementStatus string

const (
	ImplementAvailable   ImplementStatus = "available"
	ImplementInUse       ImplementStatus = "in_use"
	ImplementMaintenance ImplementStatus = "maintenance"
)

// Implement is an attachable piece of agricultural equipment (plow,
// planter) that can ride along on a journey.
type Implement struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Year       int             `json:"year"`
	Identifier *string         `json:"identifier"`
	Type       *string         `json:"type"`
	Status     ImplementStatus `json:"status"`
}

// ImplementCreate is the payload for POST /implements/. Status is
// server-assigned.
type ImplementCreate struct {
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Identifier *string `json:"identifier,omitempty"`
	Type       *string `json:"type,omitempty"`
}

// ImplementUpdate is the payload for PUT /implements/{id}.
type ImplementUpdate struct {
	Name       *string          `json:"name,omitempty"`
	Brand      *string          `json:"brand,omitempty"`
	Model      *string          `json:"model,omitempty"`
	Year       *int             `json:"year,omitempty"`
	Identifier *string          `json:"identifier,omitempty"`
	Type       *string          `json:"type,omitempty"`
	Status     *ImplementStatus `json:"status,omitempty"`
}
