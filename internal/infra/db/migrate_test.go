package db_test

import (
	"context"
	"testing"

	infraDB "github.com/ai-solution/site-backend/internal/infra/db"
	"github.com/ai-solution/site-backend/internal/testinfra"
	"github.com/stretchr/testify/require"
)

// The bootstrap already ran once when testinfra brought the database up, so
// each Migrate call here is a repeat run against an initialized schema.
func TestMigrateRepeatable(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, infraDB.Migrate(ctx, testinfra.Pool))
	require.NoError(t, infraDB.Migrate(ctx, testinfra.Pool))

	var admins int
	err := testinfra.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins WHERE email = $1`, "admin@example.com").Scan(&admins)
	require.NoError(t, err)
	require.Equal(t, 1, admins)
}
