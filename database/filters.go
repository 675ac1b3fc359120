package database

import (
	"strings"

	"aptlist/models"
)

// cleanStr trims whitespace and any leading/trailing quote characters from
// a filter value, so `"A101"` and A101 match the same rows.
func cleanStr(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, `'"`)
	s = strings.TrimRight(s, `'"`)
	return s
}

// BuildApartmentFilters translates a list query into WHERE conditions.
// The order of conditions is fixed: unitNumber, unitName, projectName,
// bedrooms, bathrooms, minPrice, maxPrice, minArea, maxArea. Zero and
// empty values produce no condition (see models.ListQuery).
func BuildApartmentFilters(q models.ListQuery) *QueryBuilder {
	qb := NewQueryBuilder()

	if q.UnitNumber != "" {
		qb.AddContains(columnUnitNumber, cleanStr(q.UnitNumber))
	}
	if q.UnitName != "" {
		qb.AddContains(columnName, cleanStr(q.UnitName))
	}
	if q.ProjectName != "" {
		qb.AddProjectNameContains(cleanStr(q.ProjectName))
	}
	if q.Bedrooms != 0 {
		qb.AddEquals(columnBedrooms, q.Bedrooms)
	}
	if q.Bathrooms != 0 {
		qb.AddEquals(columnBathrooms, q.Bathrooms)
	}
	if q.MinPrice != 0 {
		qb.AddAtLeast(columnPrice, q.MinPrice)
	}
	if q.MaxPrice != 0 {
		qb.AddAtMost(columnPrice, q.MaxPrice)
	}
	if q.MinArea != 0 {
		qb.AddAtLeast(columnArea, q.MinArea)
	}
	if q.MaxArea != 0 {
		qb.AddAtMost(columnArea, q.MaxArea)
	}

	return qb
}
