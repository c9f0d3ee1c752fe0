package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewops/crewops-backend-go/internal/pkg/database"
)

// stubTx satisfies pgx.Tx through the embedded interface; only identity
// matters here.
type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_SelectsAmbientTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}

	q := GetQuerier(withTx(context.Background(), tx), db)

	require.IsType(t, stubTx{}, q)
	assert.Equal(t, tx, q)
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}

	q := GetQuerier(context.Background(), db)

	_, isTx := q.(pgx.Tx)
	assert.False(t, isTx)
}

// A call already inside a transaction must join it, not open a nested one.
// db here has no pool, so any attempt to begin a fresh transaction would
// panic and fail the test.
func TestWithTransaction_JoinsAmbientTransaction(t *testing.T) {
	db := &database.DB{}
	tx := stubTx{}
	ctx := withTx(context.Background(), tx)

	var seen database.Querier
	err := WithTransaction(ctx, db, func(ctx context.Context) error {
		seen = GetQuerier(ctx, db)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, tx, seen)
}
