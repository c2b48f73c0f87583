package model

// Role is the server-side user role vocabulary.
type Role string

const (
	RoleActiveClient Role = "cliente_ativo"
	RoleDemoClient   Role = "cliente_demo"
	RoleDriver       Role = "driver"
)

// User mirrors the user payload returned by the API. The client caches
// it read-mostly; the server owns the record.
type User struct {
	ID                int64               `json:"id"`
	FullName          string              `json:"full_name"`
	Email             string              `json:"email"`
	EmployeeID        string              `json:"employee_id"`
	Role              Role                `json:"role"`
	IsActive          bool                `json:"is_active"`
	IsSuperuser       bool                `json:"is_superuser"`
	AvatarURL         *string             `json:"avatar_url"`
	NotifyInApp       bool                `json:"notify_in_app"`
	NotifyByEmail     bool                `json:"notify_by_email"`
	NotificationEmail *string             `json:"notification_email"`
	Organization      *OrganizationNested `json:"organization"`
}

// Sector returns the user's organization sector, empty when the user
// has no organization or the organization has no sector set.
func (u User) Sector() string {
	if u.Organization == nil || u.Organization.Sector == nil {
		return ""
	}
	return *u.Organization.Sector
}

// UserCreate is the payload for POST /users/.
type UserCreate struct {
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Password   string  `json:"password,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	EmployeeID string  `json:"employee_id,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// UserUpdate is the payload for PUT /users/{id}; all fields optional.
type UserUpdate struct {
	FullName   *string `json:"full_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *Role   `json:"role,omitempty"`
	Password   *string `json:"password,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	EmployeeID *string `json:"employee_id,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
}

// NotificationPrefsUpdate updates the current user's notification
// preferences via PUT /users/me/preferences.
type NotificationPrefsUpdate struct {
	NotifyInApp   bool `json:"notify_in_app"`
	NotifyByEmail bool `json:"notify_by_email"`
}

// PerformanceByVehicle is one row of a user's per-vehicle usage.
type PerformanceByVehicle struct {
	VehicleInfo string  `json:"vehicle_info"`
	Value       float64 `json:"value"`
}

// UserStats mirrors GET /users/{id}/stats.
type UserStats struct {
	TotalJourneys            int                    `json:"total_journeys"`
	MaintenanceRequestsCount int                    `json:"maintenance_requests_count"`
	PrimaryMetricLabel       string                 `json:"primary_metric_label"`
	PrimaryMetricValue       float64                `json:"primary_metric_value"`
	PrimaryMetricUnit        string                 `json:"primary_metric_unit"`
	PerformanceByVehicle     []PerformanceByVehicle `json:"performance_by_vehicle"`
	AvgKmPerLiter            *float64               `json:"avg_km_per_liter,omitempty"`
	AvgCostPerKm             *float64               `json:"avg_cost_per_km,omitempty"`
	FleetAvgKmPerLiter       *float64               `json:"fleet_avg_km_per_liter,omitempty"`
}

// TokenData is the login response: a bearer token plus the profile of
// the user it belongs to.
type TokenData struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}
