package dto

// DateRange keys are camelCase on the wire; the admin dashboard endpoints
// predate the snake_case convention and were never migrated.
type DateRange struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// Monetary analytics figures are cents end to end.
type RevenueDataPoint struct {
	Date          string  `json:"date"`
	Revenue       int     `json:"revenue"`
	Orders        int     `json:"orders"`
	AvgOrderValue int     `json:"avgOrderValue"`
	Growth        float64 `json:"growth"`
}

type CustomerAnalytics struct {
	TotalCustomers        int     `json:"totalCustomers"`
	NewCustomers          int     `json:"newCustomers"`
	ReturningCustomers    int     `json:"returningCustomers"`
	CustomerRetentionRate float64 `json:"customerRetentionRate"`
	AverageLifetimeValue  int     `json:"averageLifetimeValue"`
}

type ProductAnalytics struct {
	TopProducts         []map[string]interface{} `json:"topProducts"`
	CategoryPerformance []map[string]interface{} `json:"categoryPerformance"`
	InventoryTurns      float64                  `json:"inventoryTurns"`
}

type GeographicAnalytics struct {
	SalesByRegion    []map[string]interface{} `json:"salesByRegion"`
	TopCities        []map[string]interface{} `json:"topCities"`
	CountryBreakdown []map[string]interface{} `json:"countryBreakdown"`
}
