package postgres

import (
	"context"
	"errors"
	"io"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_Embedded(t *testing.T) {
	content, err := migrationFS.ReadFile("migrations/0001_init.sql")
	require.NoError(t, err)

	for _, table := range []string{"instances", "policies", "wallet_users", "claims", "balances", "transfers", "audit_logs"} {
		assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
	assert.Contains(t, string(content), ownerConstraint)

	widen, err := migrationFS.ReadFile("migrations/0002_uint256_amounts.sql")
	require.NoError(t, err)
	for _, column := range []string{"collateral_amount", "premium_amount", "balance", "amount"} {
		assert.Contains(t, string(widen), "ALTER COLUMN "+column+" TYPE NUMERIC(78, 0)")
	}
}

func TestApplyMigrations(t *testing.T) {
	mock := newMock(t)
	fsys := fstest.MapFS{
		"m/0001_a.sql": {Data: []byte("CREATE TABLE a (id INT)")},
		"m/0002_b.sql": {Data: []byte("CREATE TABLE b (id INT)")},
		"m/README.md":  {Data: []byte("ignored")},
	}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("0001_a.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	mock.ExpectQuery("SELECT EXISTS").WithArgs("0002_b.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE b").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("0002_b.sql").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := applyMigrations(context.Background(), mock, fsys, "m", zerolog.New(io.Discard))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyMigrations_ExecError(t *testing.T) {
	mock := newMock(t)
	fsys := fstest.MapFS{"m/0001_a.sql": {Data: []byte("CREATE TABLE a (id INT)")}}

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("0001_a.sql").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	err := applyMigrations(context.Background(), mock, fsys, "m", zerolog.New(io.Discard))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0001_a.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}
