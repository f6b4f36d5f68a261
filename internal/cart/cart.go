// Copyright (c) 2026 Foodgram
//
// Package cart implements the shopping cart: a per-user ledger of recipes
// plus the consolidated shopping list derived from it.
package cart

import (
	"fmt"
	"sort"
	"strings"
)

// Item is a recipe membership entry as returned by ledger mutations. The
// compact shape mirrors what list cards need.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int64  `json:"cooking_time"`
}

// Row is one ingredient usage pulled from a carted recipe, pre-aggregation.
type Row struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}

// Line is a consolidated shopping list entry.
type Line struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}

// Aggregate merges ingredient rows across recipes. Rows merge on the
// (name, measurement unit) pair rather than the catalog id: the dataset
// carries distinct rows for the same name under different units, and those
// must stay separate, while equal name and unit sums regardless of which
// catalog row a recipe referenced. Output is sorted by name, then unit.
func Aggregate(rows []Row) []Line {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]int64, len(rows))
	for _, row := range rows {
		totals[key{row.Name, row.MeasurementUnit}] += row.Amount
	}

	lines := make([]Line, 0, len(totals))
	for k, amount := range totals {
		lines = append(lines, Line{Name: k.name, MeasurementUnit: k.unit, Amount: amount})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].MeasurementUnit < lines[j].MeasurementUnit
	})

	return lines
}

// Render formats the consolidated list as the plain text download body.
func Render(lines []Line) []byte {
	var builder strings.Builder
	builder.WriteString("Shopping list\n\n")
	for _, line := range lines {
		fmt.Fprintf(&builder, "- %s (%s): %d\n", line.Name, line.MeasurementUnit, line.Amount)
	}
	return []byte(builder.String())
}
