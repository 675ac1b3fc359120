package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryBuilder_AddEquals(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddEquals("bedrooms", 2.0)

	assert.Equal(t, "WHERE bedrooms = $1", qb.WhereClause())
	assert.Equal(t, []interface{}{2.0}, qb.Args())
	assert.Equal(t, 2, qb.NextArgNum())
}

func TestQueryBuilder_AddContains(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddContains("name", "lagoon")

	assert.Equal(t, "WHERE name ILIKE $1", qb.WhereClause())
	assert.Equal(t, []interface{}{"%lagoon%"}, qb.Args())
}

func TestQueryBuilder_AddRange(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddAtLeast("price", 1000000.0)
	qb.AddAtMost("price", 9000000.0)

	assert.Equal(t, "WHERE price >= $1 AND price <= $2", qb.WhereClause())
	assert.Equal(t, []interface{}{1000000.0, 9000000.0}, qb.Args())
	assert.Equal(t, 3, qb.NextArgNum())
}

func TestQueryBuilder_AddProjectNameContains(t *testing.T) {
	qb := NewQueryBuilder()

	qb.AddProjectNameContains("marassi")

	assert.Equal(t, "WHERE project_id IN (SELECT id FROM projects WHERE name ILIKE $1)", qb.WhereClause())
	assert.Equal(t, []interface{}{"%marassi%"}, qb.Args())
}

func TestQueryBuilder_WhereClause_Empty(t *testing.T) {
	qb := NewQueryBuilder()

	assert.Equal(t, "", qb.WhereClause())
	assert.Empty(t, qb.Args())
	assert.Equal(t, 1, qb.NextArgNum())
}
