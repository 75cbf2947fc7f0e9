package repository

import (
	"context"
	"fmt"

	"github.com/devanap/fabrismart-full/internal/database"
	"github.com/devanap/fabrismart-full/internal/model"
)

type StatsRepository struct {
	db *database.Database
}

func NewStatsRepository(db *database.Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// Ties in the grouped counts are broken by the group key ascending.
const (
	countProductsStmt  = `SELECT COUNT(*) AS total FROM products`
	countEmployeesStmt = `SELECT COUNT(*) AS total FROM employees`

	productsByCategoryStmt = `
		SELECT category, COUNT(*) AS total
		FROM products
		GROUP BY category
		ORDER BY total DESC, category ASC`

	employeesByRoleStmt = `
		SELECT
			CASE WHEN role IS NULL OR role = '' THEN '` + model.NoRoleLabel + `' ELSE role END AS role_label,
			COUNT(*) AS total
		FROM employees
		GROUP BY 1
		ORDER BY 2 DESC, 1 ASC`

	stockLevelsStmt = `
		SELECT
			COUNT(CASE WHEN quantity = 0 THEN 1 END) AS out_of_stock,
			COUNT(CASE WHEN quantity > 0 AND quantity < 10 THEN 1 END) AS low_stock,
			COUNT(CASE WHEN quantity >= 10 THEN 1 END) AS normal_stock
		FROM products`

	distinctCategoriesStmt = `SELECT COUNT(DISTINCT category) AS total FROM products`
)

// Report computes every statistic inside one read snapshot, so the
// numbers agree with each other even while writes continue.
func (r *StatsRepository) Report(ctx context.Context) (*model.StatsReport, error) {
	var (
		totalProducts, totalEmployees, distinctCategories int64

		byCategory []model.CategoryCount
		byRole     []model.RoleCount
		levels     model.StockLevels
	)

	err := r.db.Snapshot(ctx, func(q database.Querier) error {
		var err error

		if totalProducts, err = countOne(ctx, q, countProductsStmt); err != nil {
			return fmt.Errorf("counting products: %w", err)
		}
		if totalEmployees, err = countOne(ctx, q, countEmployeesStmt); err != nil {
			return fmt.Errorf("counting employees: %w", err)
		}

		records, err := q.Query(ctx, productsByCategoryStmt)
		if err != nil {
			return fmt.Errorf("grouping products by category: %w", err)
		}
		byCategory = make([]model.CategoryCount, 0, len(records))
		for _, rec := range records {
			byCategory = append(byCategory, model.CategoryCount{
				Category: rec.String("category"),
				Total:    rec.Int64("total"),
			})
		}

		records, err = q.Query(ctx, employeesByRoleStmt)
		if err != nil {
			return fmt.Errorf("grouping employees by role: %w", err)
		}
		byRole = make([]model.RoleCount, 0, len(records))
		for _, rec := range records {
			byRole = append(byRole, model.RoleCount{
				Role:  rec.String("role_label"),
				Total: rec.Int64("total"),
			})
		}

		records, err = q.Query(ctx, stockLevelsStmt)
		if err != nil {
			return fmt.Errorf("bucketing stock levels: %w", err)
		}
		if len(records) > 0 {
			levels = model.StockLevels{
				OutOfStock: records[0].Int64("out_of_stock"),
				Low:        records[0].Int64("low_stock"),
				Normal:     records[0].Int64("normal_stock"),
			}
		}

		if distinctCategories, err = countOne(ctx, q, distinctCategoriesStmt); err != nil {
			return fmt.Errorf("counting categories: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return model.NewStatsReport(totalProducts, totalEmployees, byCategory, byRole, levels, distinctCategories), nil
}

func countOne(ctx context.Context, q database.Querier, stmt string) (int64, error) {
	records, err := q.Query(ctx, stmt)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	return records[0].Int64("total"), nil
}
