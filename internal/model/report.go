package model

// ReportRequest is the shared body of the report-generation endpoints.
type ReportRequest struct {
	VehicleID *int64 `json:"vehicle_id,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// VehicleReportPerformance summarizes a vehicle's movement over the
// report period.
type VehicleReportPerformance struct {
	TotalDistanceKm    float64 `json:"total_distance_km"`
	TotalFuelLiters    float64 `json:"total_fuel_liters"`
	AverageConsumption float64 `json:"average_consumption"`
}

// VehicleReportFinancial summarizes a vehicle's spending over the
// report period.
type VehicleReportFinancial struct {
	TotalCosts      float64            `json:"total_costs"`
	CostPerKm       float64            `json:"cost_per_km"`
	CostsByCategory map[string]float64 `json:"costs_by_category"`
}

// VehicleConsolidatedReport mirrors POST /reports/vehicle-consolidated.
type VehicleConsolidatedReport struct {
	VehicleID          int64                    `json:"vehicle_id"`
	VehicleIdentifier  string                   `json:"vehicle_identifier"`
	VehicleModel       string                   `json:"vehicle_model"`
	ReportPeriodStart  string                   `json:"report_period_start"`
	ReportPeriodEnd    string                   `json:"report_period_end"`
	GeneratedAt        string                   `json:"generated_at"`
	PerformanceSummary VehicleReportPerformance `json:"performance_summary"`
	FinancialSummary   VehicleReportFinancial   `json:"financial_summary"`
	CostsDetailed      []VehicleCost            `json:"costs_detailed"`
	FuelLogsDetailed   []FuelLog                `json:"fuel_logs_detailed"`
	MaintenanceDetail  []MaintenanceRequest     `json:"maintenance_detailed"`
}

// DriverPerformanceEntry is one driver's row of the performance report.
type DriverPerformanceEntry struct {
	DriverID            int64   `json:"driver_id"`
	DriverName          string  `json:"driver_name"`
	TotalJourneys       int     `json:"total_journeys"`
	TotalDistanceKm     float64 `json:"total_distance_km"`
	TotalFuelLiters     float64 `json:"total_fuel_liters"`
	AverageConsumption  float64 `json:"average_consumption"`
	TotalFuelCost       float64 `json:"total_fuel_cost"`
	CostPerKm           float64 `json:"cost_per_km"`
	MaintenanceRequests int     `json:"maintenance_requests"`
}

// DriverPerformanceReport mirrors POST /reports/driver-performance.
type DriverPerformanceReport struct {
	ReportPeriodStart  string                   `json:"report_period_start"`
	ReportPeriodEnd    string                   `json:"report_period_end"`
	GeneratedAt        string                   `json:"generated_at"`
	DriversPerformance []DriverPerformanceEntry `json:"drivers_performance"`
}

// FleetReportSummary totals the whole fleet over the report period.
type FleetReportSummary struct {
	TotalCost         float64 `json:"total_cost"`
	TotalDistanceKm   float64 `json:"total_distance_km"`
	OverallCostPerKm  float64 `json:"overall_cost_per_km"`
}

// VehicleRankingEntry ranks a vehicle by a named metric.
type VehicleRankingEntry struct {
	VehicleID         int64   `json:"vehicle_id"`
	VehicleIdentifier string  `json:"vehicle_identifier"`
	Value             float64 `json:"value"`
	Unit              string  `json:"unit"`
}

// FleetManagementReport mirrors POST /reports/fleet-management.
type FleetManagementReport struct {
	ReportPeriodStart          string                `json:"report_period_start"`
	ReportPeriodEnd            string                `json:"report_period_end"`
	GeneratedAt                string                `json:"generated_at"`
	Summary                    FleetReportSummary    `json:"summary"`
	CostsByCategory            map[string]float64    `json:"costs_by_category"`
	TopMostExpensiveVehicles   []VehicleRankingEntry `json:"top_5_most_expensive_vehicles"`
	TopHighestCostPerKm        []VehicleRankingEntry `json:"top_5_highest_cost_per_km_vehicles"`
	TopMostEfficientVehicles   []VehicleRankingEntry `json:"top_5_most_efficient_vehicles"`
	TopLeastEfficientVehicles  []VehicleRankingEntry `json:"top_5_least_efficient_vehicles"`
}
