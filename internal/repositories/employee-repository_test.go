package repositories

import (
	"testing"

	"employee-portal/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEmployeeWhere_SearchAndFilters(t *testing.T) {
	filter := types.Filter{
		Search: "ivanov",
		Filter: map[string]interface{}{
			"role":       "Employee",
			"manager_id": "3",
		},
	}

	query, args, err := applyEmployeeWhere(
		psql.Select("COUNT(id)").From(employeeTable), filter,
	).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "ILIKE")
	assert.Contains(t, query, "$1")
	assert.Contains(t, query, "role =")
	assert.Contains(t, query, "manager_id =")
	assert.Contains(t, args, "%ivanov%")
	assert.Contains(t, args, "Employee")
}

func TestApplyEmployeeWhere_UnknownFilterKeyIgnored(t *testing.T) {
	filter := types.Filter{
		Filter: map[string]interface{}{
			"password":          "x",
			"id; DROP TABLE --": "1",
		},
	}

	query, args, err := applyEmployeeWhere(
		psql.Select(employeeSelectFields...).From(employeeTable), filter,
	).ToSql()
	require.NoError(t, err)

	assert.NotContains(t, query, "password =")
	assert.NotContains(t, query, "DROP TABLE")
	assert.Empty(t, args)
}
