package model

// Stock level labels, always reported in this order.
const (
	StockOutOfStock = "out of stock"
	StockLow        = "low stock"
	StockNormal     = "normal stock"
)

// NoRoleLabel groups employees whose role is NULL or empty.
const NoRoleLabel = "no role"

type CategoryCount struct {
	Category string `json:"category"`
	Total    int64  `json:"total"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Total int64  `json:"total"`
}

type StockBucket struct {
	Status string `json:"status"`
	Total  int64  `json:"total"`
}

// StockLevels is the single source for both the stock_status buckets and
// the scalar counts of a StatsReport.
type StockLevels struct {
	OutOfStock int64
	Low        int64
	Normal     int64
}

func (s StockLevels) Total() int64 {
	return s.OutOfStock + s.Low + s.Normal
}

// StatsReport is computed on every request and never stored.
type StatsReport struct {
	TotalProducts      int64           `json:"total_products"`
	TotalEmployees     int64           `json:"total_employees"`
	ProductsByCategory []CategoryCount `json:"products_by_category"`
	EmployeesByRole    []RoleCount     `json:"employees_by_role"`
	StockStatus        []StockBucket   `json:"stock_status"`
	DistinctCategories int64           `json:"distinct_categories"`
	OutOfStockCount    int64           `json:"out_of_stock_count"`
	LowStockCount      int64           `json:"low_stock_count"`
	NormalStockCount   int64           `json:"normal_stock_count"`
}

// NewStatsReport assembles a report. The three stock buckets and the three
// scalar counts are both derived from levels.
func NewStatsReport(
	totalProducts, totalEmployees int64,
	byCategory []CategoryCount,
	byRole []RoleCount,
	levels StockLevels,
	distinctCategories int64,
) *StatsReport {
	if byCategory == nil {
		byCategory = []CategoryCount{}
	}
	if byRole == nil {
		byRole = []RoleCount{}
	}

	return &StatsReport{
		TotalProducts:      totalProducts,
		TotalEmployees:     totalEmployees,
		ProductsByCategory: byCategory,
		EmployeesByRole:    byRole,
		StockStatus: []StockBucket{
			{Status: StockOutOfStock, Total: levels.OutOfStock},
			{Status: StockLow, Total: levels.Low},
			{Status: StockNormal, Total: levels.Normal},
		},
		DistinctCategories: distinctCategories,
		OutOfStockCount:    levels.OutOfStock,
		LowStockCount:      levels.Low,
		NormalStockCount:   levels.Normal,
	}
}
