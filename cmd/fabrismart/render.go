package main

import (
	"io"

	"github.com/devanap/fabrismart-full/internal/model"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderStats prints the report as three tables: totals, products per
// category and employees per role. Group order is the report's order.
func renderStats(w io.Writer, r *model.StatsReport) {
	summary := newTable(w, "Summary", table.Row{"Metric", "Value"})
	summary.AppendRows([]table.Row{
		{"Products", r.TotalProducts},
		{"Employees", r.TotalEmployees},
		{"Categories", r.DistinctCategories},
	})
	summary.AppendSeparator()
	for _, bucket := range r.StockStatus {
		summary.AppendRow(table.Row{bucket.Status, bucket.Total})
	}
	summary.Render()

	categories := newTable(w, "Products by category", table.Row{"Category", "Total"})
	for _, c := range r.ProductsByCategory {
		categories.AppendRow(table.Row{c.Category, c.Total})
	}
	categories.Render()

	roles := newTable(w, "Employees by role", table.Row{"Role", "Total"})
	for _, role := range r.EmployeesByRole {
		roles.AppendRow(table.Row{role.Role, role.Total})
	}
	roles.Render()
}

func newTable(w io.Writer, title string, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	return t
}
