package postgres

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var (
	testVerifier = common.HexToAddress("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
	testOwner    = common.HexToAddress("0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2")
	testRef      = common.HexToAddress("0x4B20993Bc481177ec7E8f571ceCaE8A9e22C02db")
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

// beginTx expects and opens a transaction on mock.
func beginTx(t *testing.T, mock pgxmock.PgxPoolIface) pgx.Tx {
	t.Helper()
	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)
	return tx
}
