package application_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reeflabs/reef/internal/core/application"
	"github.com/reeflabs/reef/internal/core/domain"
	af_selector "github.com/reeflabs/reef/internal/infrastructure/coin-selector/asset-first"
	"github.com/reeflabs/reef/internal/infrastructure/storage/db/inmemory"
)

var (
	ctx = context.Background()

	// Inputs and outputs of the reference selection scenario: tx1 supplies
	// both required assets, tx2 tops up the lovelace shortfall.
	testInputs = application.Utxos{
		newTestUtxo("tx0", 0, "100000",
			newTestAsset("policy1", "asset1", "2000"),
			newTestAsset("policy2", "asset2", "2000"),
			newTestAsset("policy3", "asset3", "1000"),
			newTestAsset("policy4", "asset4", "1000"),
		),
		newTestUtxo("tx1", 0, "1000",
			newTestAsset("policy1", "asset1", "2000"),
			newTestAsset("policy2", "asset2", "1000"),
		),
		newTestUtxo("tx2", 0, "10000"),
		newTestUtxo("tx3", 0, "10000",
			newTestAsset("policy2", "asset2", "1000"),
		),
	}
	testOutputs = application.Utxos{
		newTestOutput("10000",
			newTestAsset("policy1", "asset1", "1000"),
			newTestAsset("policy2", "asset2", "1000"),
		),
	}
)

func TestSumUtxos(t *testing.T) {
	t.Parallel()

	svc := application.NewUtxoService(inmemory.NewRepoManager())

	total, err := svc.SumUtxos(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, total.Lovelace.Sign())
	require.Empty(t, total.Assets)

	// 2^64 lovelace, past any fixed-width integer.
	utxos := application.Utxos{
		newTestOutput("18446744073709551616",
			newTestAsset("policy1", "asset1", "1000"),
		),
		newTestOutput("1",
			newTestAsset("policy1", "asset1", "500"),
		),
	}
	total, err = svc.SumUtxos(ctx, utxos)
	require.NoError(t, err)
	require.Equal(t, "18446744073709551617", total.Lovelace.String())
	require.Len(t, total.Assets, 1)
	require.Equal(t, "1500", total.Assets[0].Quantity.String())
}

func TestValidation(t *testing.T) {
	t.Parallel()

	svc := application.NewUtxoService(inmemory.NewRepoManager())

	tests := []struct {
		name        string
		utxos       application.Utxos
		expectedErr error
	}{
		{
			name: "negative lovelace",
			utxos: application.Utxos{
				newTestUtxo("tx0", 0, "-1"),
			},
			expectedErr: application.ErrNegativeLovelace,
		},
		{
			name: "negative asset quantity",
			utxos: application.Utxos{
				newTestUtxo("tx0", 0, "1000",
					newTestAsset("policy1", "asset1", "-5"),
				),
			},
			expectedErr: application.ErrNegativeQuantity,
		},
		{
			name: "duplicated asset",
			utxos: application.Utxos{
				newTestUtxo("tx0", 0, "1000",
					newTestAsset("policy1", "asset1", "5"),
					newTestAsset("policy1", "asset1", "10"),
				),
			},
			expectedErr: application.ErrDuplicatedAsset,
		},
		{
			name: "input without id",
			utxos: application.Utxos{
				newTestOutput("1000"),
			},
			expectedErr: application.ErrMissingUtxoID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SelectUtxos(
				ctx, tt.utxos, testOutputs, nil,
				application.CoinSelectionStrategyAssetFirst,
			)
			require.ErrorIs(t, err, tt.expectedErr)

			_, err = svc.AddUtxos(ctx, tt.utxos)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestSelectUtxos(t *testing.T) {
	t.Parallel()

	svc := application.NewUtxoService(inmemory.NewRepoManager())

	result, err := svc.SelectUtxos(
		ctx, testInputs, testOutputs, nil,
		application.CoinSelectionStrategyAssetFirst,
	)
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Selected, 2)
	require.Equal(t, "tx1", result.Selected[0].ID.Hash)
	require.Equal(t, "tx2", result.Selected[1].ID.Hash)
	require.Len(t, result.Unselected, 2)
	require.Equal(t, "tx0", result.Unselected[0].ID.Hash)
	require.Equal(t, "tx3", result.Unselected[1].ID.Hash)

	require.Equal(t, "1000", result.Excess.Lovelace.String())
	require.Nil(t, result.Excess.ID)
	require.Len(t, result.Excess.Assets, 2)
	require.Equal(t, "policy1", result.Excess.Assets[0].PolicyID)
	require.Equal(t, "1000", result.Excess.Assets[0].Quantity.String())
	require.Equal(t, "policy2", result.Excess.Assets[1].PolicyID)
	require.Zero(t, result.Excess.Assets[1].Quantity.Sign())
}

func TestSelectUtxosNotEnoughFunds(t *testing.T) {
	t.Parallel()

	svc := application.NewUtxoService(inmemory.NewRepoManager())

	_, err := svc.SelectUtxos(
		ctx, nil, testOutputs, nil,
		application.CoinSelectionStrategyAssetFirst,
	)
	require.ErrorIs(t, err, af_selector.ErrTargetAmountNotReached)
}

func TestAddListRemoveBalance(t *testing.T) {
	t.Parallel()

	svc := application.NewUtxoService(inmemory.NewRepoManager())

	count, err := svc.AddUtxos(ctx, testInputs)
	require.NoError(t, err)
	require.Equal(t, len(testInputs), count)

	// Duplicates are skipped.
	count, err = svc.AddUtxos(ctx, testInputs)
	require.NoError(t, err)
	require.Zero(t, count)

	utxos, err := svc.ListUtxos(ctx)
	require.NoError(t, err)
	require.Len(t, utxos, len(testInputs))

	balance, err := svc.GetBalance(ctx)
	require.NoError(t, err)
	require.Equal(t, "121000", balance.Lovelace.String())
	require.Len(t, balance.Assets, 4)

	count, err = svc.RemoveUtxos(ctx, []application.UtxoID{
		{Hash: "tx2", Index: 0},
		{Hash: "unknown", Index: 9},
	})
	require.NoError(t, err)
	require.Equal(t, 1, count)

	utxos, err = svc.ListUtxos(ctx)
	require.NoError(t, err)
	require.Len(t, utxos, len(testInputs)-1)
}

func TestSelectWalletUtxos(t *testing.T) {
	t.Parallel()

	svc := application.NewUtxoService(inmemory.NewRepoManager())

	_, err := svc.AddUtxos(ctx, testInputs)
	require.NoError(t, err)

	result, err := svc.SelectWalletUtxos(
		ctx, testOutputs, nil, application.CoinSelectionStrategyAssetFirst,
	)
	require.NoError(t, err)
	require.NotEmpty(t, result.Selected)
	require.Len(
		t, append(result.Selected, result.Unselected...), len(testInputs),
	)

	// The selection covers the target in every dimension.
	total := domain.ZeroValue()
	for _, u := range result.Selected {
		total = total.Add(u.Value())
	}
	target := domain.ZeroValue()
	for _, out := range testOutputs {
		target = target.Add(out.Value())
	}
	require.True(t, total.Dominates(target))
	require.True(t, total.Subtract(target).Equal(result.Excess.Value()))
}

func TestUtxoServiceWithFailingRepo(t *testing.T) {
	t.Parallel()

	expectedErr := fmt.Errorf("something went wrong")

	utxoRepo := new(mockUtxoRepository)
	utxoRepo.On("GetAllUtxos", mock.Anything).Return(nil, expectedErr)
	utxoRepo.On("GetBalance", mock.Anything).Return(domain.Value{}, expectedErr)

	repoManager := new(mockRepoManager)
	repoManager.On("UtxoRepository").Return(utxoRepo)

	svc := application.NewUtxoService(repoManager)

	_, err := svc.ListUtxos(ctx)
	require.ErrorIs(t, err, expectedErr)

	_, err = svc.GetBalance(ctx)
	require.ErrorIs(t, err, expectedErr)

	_, err = svc.SelectWalletUtxos(
		ctx, testOutputs, nil, application.CoinSelectionStrategyAssetFirst,
	)
	require.ErrorIs(t, err, expectedErr)
}

func TestUtxoJSONRoundTrip(t *testing.T) {
	t.Parallel()

	payload := `[
		{
			"id": {"hash": "tx1", "index": 3},
			"lovelace": 18446744073709551616,
			"assets": [
				{"policyId": "policy1", "assetName": "asset1", "quantity": 1000}
			]
		}
	]`

	var utxos application.Utxos
	require.NoError(t, json.Unmarshal([]byte(payload), &utxos))
	require.Len(t, utxos, 1)
	require.Equal(t, "tx1", utxos[0].ID.Hash)
	require.Equal(t, uint32(3), utxos[0].ID.Index)

	expected, _ := new(big.Int).SetString("18446744073709551616", 10)
	require.Zero(t, utxos[0].Lovelace.Cmp(expected))

	buf, err := json.Marshal(utxos)
	require.NoError(t, err)
	require.Contains(t, string(buf), `"lovelace":18446744073709551616`)
	require.Contains(t, string(buf), `"policyId":"policy1"`)
}

func newTestUtxo(
	hash string, index uint32, lovelace string, assets ...application.Asset,
) application.Utxo {
	utxo := newTestOutput(lovelace, assets...)
	utxo.ID = &application.UtxoID{Hash: hash, Index: index}
	return utxo
}

func newTestOutput(
	lovelace string, assets ...application.Asset,
) application.Utxo {
	amount, _ := new(big.Int).SetString(lovelace, 10)
	return application.Utxo{Lovelace: amount, Assets: assets}
}

func newTestAsset(policy, name, quantity string) application.Asset {
	qty, _ := new(big.Int).SetString(quantity, 10)
	return application.Asset{
		PolicyID: policy, AssetName: name, Quantity: qty,
	}
}
