package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/devanap/fabrismart-full/internal/model"
)

func TestRenderStats(t *testing.T) {
	report := model.NewStatsReport(
		6, 3,
		[]model.CategoryCount{{Category: "Electronics", Total: 3}, {Category: "Clothing", Total: 2}, {Category: "Food", Total: 1}},
		[]model.RoleCount{{Role: "Manager", Total: 1}, {Role: model.NoRoleLabel, Total: 2}},
		model.StockLevels{OutOfStock: 1, Low: 2, Normal: 3},
		3,
	)

	var buf bytes.Buffer
	renderStats(&buf, report)
	// Titles and headers may be re-cased by the table style.
	out := strings.ToLower(buf.String())

	for _, want := range []string{
		"summary", "products by category", "employees by role",
		"electronics", "clothing", "food",
		"manager", "no role",
		"out of stock", "low stock", "normal stock",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q:\n%s", want, out)
		}
	}

	// Categories keep the report's order.
	if strings.Index(out, "electronics") > strings.Index(out, "clothing") {
		t.Error("Electronics should be listed before Clothing")
	}
}

func TestRenderStatsEmpty(t *testing.T) {
	report := model.NewStatsReport(0, 0, nil, nil, model.StockLevels{}, 0)

	var buf bytes.Buffer
	renderStats(&buf, report)

	if !strings.Contains(buf.String(), "out of stock") {
		t.Fatalf("empty report must still list every stock bucket:\n%s", buf.String())
	}
}
