package database

import (
	"fmt"
	"strings"
)

// QueryBuilder accumulates parameterized WHERE conditions joined with AND.
// Conditions keep the order in which they were added.
type QueryBuilder struct {
	conditions []string
	args       []interface{}
	argCount   int
}

func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{
		conditions: []string{},
		args:       []interface{}{},
		argCount:   1,
	}
}

// AddEquals adds an exact-match condition.
func (qb *QueryBuilder) AddEquals(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s = $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddContains adds a case-insensitive substring match on column.
func (qb *QueryBuilder) AddContains(column, value string) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s ILIKE $%d", column, qb.argCount))
	qb.args = append(qb.args, "%"+value+"%")
	qb.argCount++
}

// AddAtLeast adds a column >= value condition.
func (qb *QueryBuilder) AddAtLeast(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s >= $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddAtMost adds a column <= value condition.
func (qb *QueryBuilder) AddAtMost(column string, value interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf("%s <= $%d", column, qb.argCount))
	qb.args = append(qb.args, value)
	qb.argCount++
}

// AddProjectNameContains adds a case-insensitive substring match on the
// owning project's name, expressed as a subquery on project_id.
func (qb *QueryBuilder) AddProjectNameContains(value string) {
	qb.conditions = append(qb.conditions,
		fmt.Sprintf("%s IN (SELECT %s FROM projects WHERE %s ILIKE $%d)",
			columnProjectID, columnID, columnName, qb.argCount))
	qb.args = append(qb.args, "%"+value+"%")
	qb.argCount++
}

// WhereClause renders the accumulated conditions. Empty when no conditions
// were added, so the query matches every row.
func (qb *QueryBuilder) WhereClause() string {
	if len(qb.conditions) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(qb.conditions, " AND ")
}

func (qb *QueryBuilder) Args() []interface{} {
	return qb.args
}

func (qb *QueryBuilder) NextArgNum() int {
	return qb.argCount
}
