package inmemory

import (
	"context"
	"sync"

	"github.com/reeflabs/reef/internal/core/domain"
)

type utxoInmemoryStore struct {
	utxos map[domain.UtxoKey]*domain.Utxo
	lock  *sync.RWMutex
}

type utxoRepository struct {
	store *utxoInmemoryStore
}

func NewUtxoRepository() domain.UtxoRepository {
	return newUtxoRepository()
}

func newUtxoRepository() *utxoRepository {
	return &utxoRepository{
		store: &utxoInmemoryStore{
			utxos: make(map[domain.UtxoKey]*domain.Utxo),
			lock:  &sync.RWMutex{},
		},
	}
}

func (r *utxoRepository) AddUtxos(
	_ context.Context, utxos []*domain.Utxo,
) (int, error) {
	r.store.lock.Lock()
	defer r.store.lock.Unlock()

	count := 0
	for _, u := range utxos {
		if _, ok := r.store.utxos[u.Key()]; ok {
			continue
		}
		r.store.utxos[u.Key()] = u
		count++
	}
	return count, nil
}

func (r *utxoRepository) GetUtxosByKey(
	_ context.Context, utxoKeys []domain.UtxoKey,
) ([]*domain.Utxo, error) {
	r.store.lock.RLock()
	defer r.store.lock.RUnlock()

	utxos := make([]*domain.Utxo, 0, len(utxoKeys))
	for _, key := range utxoKeys {
		u, ok := r.store.utxos[key]
		if !ok {
			continue
		}
		utxos = append(utxos, u)
	}
	return utxos, nil
}

func (r *utxoRepository) GetAllUtxos(_ context.Context) ([]*domain.Utxo, error) {
	r.store.lock.RLock()
	defer r.store.lock.RUnlock()

	utxos := make([]*domain.Utxo, 0, len(r.store.utxos))
	for _, u := range r.store.utxos {
		utxos = append(utxos, u)
	}
	return utxos, nil
}

func (r *utxoRepository) GetBalance(ctx context.Context) (domain.Value, error) {
	utxos, _ := r.GetAllUtxos(ctx)
	return domain.SumUtxos(utxos), nil
}

func (r *utxoRepository) DeleteUtxos(
	_ context.Context, utxoKeys []domain.UtxoKey,
) (int, error) {
	r.store.lock.Lock()
	defer r.store.lock.Unlock()

	count := 0
	for _, key := range utxoKeys {
		if _, ok := r.store.utxos[key]; !ok {
			continue
		}
		delete(r.store.utxos, key)
		count++
	}
	return count, nil
}

func (r *utxoRepository) reset() {
	r.store.lock.Lock()
	defer r.store.lock.Unlock()

	r.store.utxos = make(map[domain.UtxoKey]*domain.Utxo)
}
