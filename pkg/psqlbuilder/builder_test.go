package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("reservations").
		Where(squirrel.Eq{"cabin_id": 7}).
		Where(squirrel.Lt{"check_in": "2025-07-01"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM reservations WHERE cabin_id = $1 AND check_in < $2", query)
	assert.Equal(t, []interface{}{7, "2025-07-01"}, args)
}

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, _, err := Update("payments").
		Set("status", "CAPTURED").
		Where(squirrel.Eq{"id": 1}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE payments SET status = $1 WHERE id = $2", query)
}
