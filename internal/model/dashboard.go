package model

// KPI is the manager dashboard's fleet headcount block.
type KPI struct {
	TotalVehicles       int `json:"total_vehicles"`
	AvailableVehicles   int `json:"available_vehicles"`
	InUseVehicles       int `json:"in_use_vehicles"`
	MaintenanceVehicles int `json:"maintenance_vehicles"`
}

// KPIEfficiency aggregates fleet-wide efficiency figures.
type KPIEfficiency struct {
	CostPerKm       float64 `json:"cost_per_km"`
	UtilizationRate float64 `json:"utilization_rate"`
}

// CostByCategory is one slice of the cost breakdown chart data.
type CostByCategory struct {
	CostType    string  `json:"cost_type"`
	TotalAmount float64 `json:"total_amount"`
}

// KmPerDay is one point of the distance-per-day series.
type KmPerDay struct {
	Date    string  `json:"date"`
	TotalKm float64 `json:"total_km"`
}

// PodiumDriver is a top-ranked driver on the manager dashboard.
type PodiumDriver struct {
	FullName           string  `json:"full_name"`
	AvatarURL          *string `json:"avatar_url"`
	PrimaryMetricValue float64 `json:"primary_metric_value"`
}

// AlertSummary is a recent alert row.
type AlertSummary struct {
	ID       int64  `json:"id"`
	Icon     string `json:"icon"`
	Color    string `json:"color"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Time     string `json:"time"`
}

// UpcomingMaintenance is a vehicle with maintenance due soon.
type UpcomingMaintenance struct {
	VehicleInfo string   `json:"vehicle_info"`
	DueDate     *string  `json:"due_date"`
	DueKm       *float64 `json:"due_km"`
}

// GoalStatus is the organization's active goal progress.
type GoalStatus struct {
	Title        string  `json:"title"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit"`
}

// ManagerDashboard mirrors GET /dashboard/manager.
type ManagerDashboard struct {
	KPIs                 KPI                   `json:"kpis"`
	EfficiencyKPIs       KPIEfficiency         `json:"efficiency_kpis"`
	CostsByCategory      []CostByCategory      `json:"costs_by_category"`
	KmPerDayLast30Days   []KmPerDay            `json:"km_per_day_last_30_days"`
	PodiumDrivers        []PodiumDriver        `json:"podium_drivers"`
	RecentAlerts         []AlertSummary        `json:"recent_alerts"`
	UpcomingMaintenances []UpcomingMaintenance `json:"upcoming_maintenances"`
	ActiveGoal           *GoalStatus           `json:"active_goal"`
}

// DriverMetrics is the driver dashboard's personal figures block.
type DriverMetrics struct {
	Distance       float64 `json:"distance"`
	Hours          float64 `json:"hours"`
	FuelEfficiency float64 `json:"fuel_efficiency"`
	Alerts         int     `json:"alerts"`
}

// DriverRankEntry positions the driver among peers.
type DriverRankEntry struct {
	Rank          int     `json:"rank"`
	Name          string  `json:"name"`
	Metric        float64 `json:"metric"`
	IsCurrentUser bool    `json:"is_current_user"`
}

// AchievementStatus is one gamification badge.
type AchievementStatus struct {
	Title    string `json:"title"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
}

// DriverDashboard mirrors GET /dashboard/driver.
type DriverDashboard struct {
	Metrics        DriverMetrics       `json:"metrics"`
	RankingContext []DriverRankEntry   `json:"ranking_context"`
	Achievements   []AchievementStatus `json:"achievements"`
}

// VehiclePosition is a GPS fix for the live map, polled in the
// background.
type VehiclePosition struct {
	ID           int64   `json:"id"`
	LicensePlate *string `json:"license_plate"`
	Identifier   *string `json:"identifier"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Status       string  `json:"status"`
}
