package model

// Organization is the admin-facing organization record, including the
// nested user list used to tell demo accounts from active ones.
type Organization struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sector *string `json:"sector"`
	Users  []User  `json:"users,omitempty"`
}

// OrganizationNested is the organization embedded in a user payload,
// carrying the per-resource usage limits demo quotas are checked
// against.
type OrganizationNested struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Sector            *string `json:"sector"`
	VehicleLimit      int     `json:"vehicle_limit"`
	DriverLimit       int     `json:"driver_limit"`
	FreightOrderLimit int     `json:"freight_order_limit"`
	MaintenanceLimit  int     `json:"maintenance_limit"`
}

// OrganizationUpdate is the payload for PUT /admin/organizations/{id}.
type OrganizationUpdate struct {
	Name   *string `json:"name,omitempty"`
	Sector *string `json:"sector,omitempty"`
}

// DemoStats mirrors GET /dashboard/demo-stats: live resource counts
// against the demo plan limits.
type DemoStats struct {
	VehicleCount int `json:"vehicle_count"`
	VehicleLimit int `json:"vehicle_limit"`
	DriverCount  int `json:"driver_count"`
	DriverLimit  int `json:"driver_limit"`
	JourneyCount int `json:"journey_count"`
	JourneyLimit int `json:"journey_limit"`
}
