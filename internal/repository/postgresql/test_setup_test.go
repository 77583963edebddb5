package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuankiet2005-art/CSW303-Project/internal/pkg/database"
	"github.com/tuankiet2005-art/CSW303-Project/internal/repository/postgresql"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// testDatabase connects once per test binary and applies the schema.
// Tests are skipped when TEST_DATABASE_URL is not set.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr != nil {
			return
		}
		testDBErr = testDB.Migrate(context.Background(), postgresql.Schema)
	})
	require.NoError(t, testDBErr)

	return testDB
}

func truncateAllTables(t *testing.T, ctx context.Context) {
	t.Helper()

	tx, err := testDB.BeginTx(ctx)
	require.NoError(t, err)
	defer tx.Rollback(ctx)

	tables := []string{
		"advance_requests",
		"leave_requests",
		"monthly_salaries",
		"users",
	}

	for _, table := range tables {
		_, err := tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}

	require.NoError(t, tx.Commit(ctx))
}
