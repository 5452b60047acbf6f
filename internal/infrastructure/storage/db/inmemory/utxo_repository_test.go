package inmemory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reeflabs/reef/internal/core/domain"
	"github.com/reeflabs/reef/internal/infrastructure/storage/db/inmemory"
)

var ctx = context.Background()

func TestUtxoRepository(t *testing.T) {
	t.Parallel()

	repoManager := inmemory.NewRepoManager()
	repo := repoManager.UtxoRepository()

	asset := domain.AssetKey{PolicyID: "policy1", AssetName: "asset1"}
	utxos := []*domain.Utxo{
		{
			UtxoKey: domain.UtxoKey{TxHash: "hash1", TxIndex: 0},
			Value:   domain.NewValue(1000).WithAsset(asset, 10),
		},
		{
			UtxoKey: domain.UtxoKey{TxHash: "hash1", TxIndex: 1},
			Value:   domain.NewValue(2000),
		},
	}

	count, err := repo.AddUtxos(ctx, utxos)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	count, err = repo.AddUtxos(ctx, utxos)
	require.NoError(t, err)
	require.Zero(t, count)

	all, err := repo.GetAllUtxos(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	found, err := repo.GetUtxosByKey(ctx, []domain.UtxoKey{
		{TxHash: "hash1", TxIndex: 0},
	})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.True(t, found[0].Value.Equal(utxos[0].Value))

	balance, err := repo.GetBalance(ctx)
	require.NoError(t, err)
	require.True(t, balance.Equal(domain.SumUtxos(utxos)))

	count, err = repo.DeleteUtxos(ctx, []domain.UtxoKey{
		{TxHash: "hash1", TxIndex: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	repoManager.Reset()

	all, err = repo.GetAllUtxos(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
