package database

import (
	"testing"

	"aptlist/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildApartmentFilters_Empty(t *testing.T) {
	qb := BuildApartmentFilters(models.ListQuery{})

	assert.Equal(t, "", qb.WhereClause())
	assert.Empty(t, qb.Args())
}

func TestBuildApartmentFilters_AllProvided(t *testing.T) {
	qb := BuildApartmentFilters(models.ListQuery{
		UnitName:    "Lagoon",
		UnitNumber:  "D4",
		ProjectName: "Marassi",
		Bedrooms:    2,
		Bathrooms:   3,
		MinPrice:    1000000,
		MaxPrice:    9000000,
		MinArea:     80,
		MaxArea:     200,
	})

	// One condition per filter, in fixed order.
	assert.Equal(t,
		"WHERE unit_number ILIKE $1"+
			" AND name ILIKE $2"+
			" AND project_id IN (SELECT id FROM projects WHERE name ILIKE $3)"+
			" AND bedrooms = $4"+
			" AND bathrooms = $5"+
			" AND price >= $6"+
			" AND price <= $7"+
			" AND area >= $8"+
			" AND area <= $9",
		qb.WhereClause())
	assert.Equal(t, []interface{}{
		"%D4%", "%Lagoon%", "%Marassi%",
		2.0, 3.0, 1000000.0, 9000000.0, 80.0, 200.0,
	}, qb.Args())
}

func TestBuildApartmentFilters_PartialSelection(t *testing.T) {
	qb := BuildApartmentFilters(models.ListQuery{
		ProjectName: "Sodic",
		MinPrice:    500000,
	})

	assert.Equal(t,
		"WHERE project_id IN (SELECT id FROM projects WHERE name ILIKE $1) AND price >= $2",
		qb.WhereClause())
	assert.Len(t, qb.Args(), 2)
}

func TestBuildApartmentFilters_ZeroTreatedAsAbsent(t *testing.T) {
	// A numeric filter of 0 is indistinguishable from an omitted one.
	qb := BuildApartmentFilters(models.ListQuery{
		Bedrooms: 0,
		MinPrice: 0,
	})

	assert.Equal(t, "", qb.WhereClause())
}

func TestCleanStr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "A101", "A101"},
		{"whitespace", "  A101  ", "A101"},
		{"double quotes", `"A101"`, "A101"},
		{"single quotes", "'A101'", "A101"},
		{"stacked quotes", `"'A101'"`, "A101"},
		{"inner quote kept", `A"101`, `A"101`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanStr(tt.input))
		})
	}
}
