package application_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reeflabs/reef/internal/core/domain"
)

// ports.RepoManager
type mockRepoManager struct {
	mock.Mock
}

func (m *mockRepoManager) UtxoRepository() domain.UtxoRepository {
	args := m.Called()
	return args.Get(0).(domain.UtxoRepository)
}

func (m *mockRepoManager) Reset() {
	m.Called()
}

func (m *mockRepoManager) Close() {
	m.Called()
}

// domain.UtxoRepository
type mockUtxoRepository struct {
	mock.Mock
}

func (m *mockUtxoRepository) AddUtxos(
	ctx context.Context, utxos []*domain.Utxo,
) (int, error) {
	args := m.Called(ctx, utxos)
	return args.Int(0), args.Error(1)
}

func (m *mockUtxoRepository) GetUtxosByKey(
	ctx context.Context, utxoKeys []domain.UtxoKey,
) ([]*domain.Utxo, error) {
	args := m.Called(ctx, utxoKeys)

	var utxos []*domain.Utxo
	if res := args.Get(0); res != nil {
		utxos = res.([]*domain.Utxo)
	}
	return utxos, args.Error(1)
}

func (m *mockUtxoRepository) GetAllUtxos(
	ctx context.Context,
) ([]*domain.Utxo, error) {
	args := m.Called(ctx)

	var utxos []*domain.Utxo
	if res := args.Get(0); res != nil {
		utxos = res.([]*domain.Utxo)
	}
	return utxos, args.Error(1)
}

func (m *mockUtxoRepository) GetBalance(
	ctx context.Context,
) (domain.Value, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Value), args.Error(1)
}

func (m *mockUtxoRepository) DeleteUtxos(
	ctx context.Context, utxoKeys []domain.UtxoKey,
) (int, error) {
	args := m.Called(ctx, utxoKeys)
	return args.Int(0), args.Error(1)
}
