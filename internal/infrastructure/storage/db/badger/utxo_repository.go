package dbbadger

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/reeflabs/reef/internal/core/domain"
)

type utxoRepository struct {
	store *badgerhold.Store

	log func(format string, a ...interface{})
}

func NewUtxoRepository(store *badgerhold.Store) domain.UtxoRepository {
	return newUtxoRepository(store)
}

func newUtxoRepository(store *badgerhold.Store) *utxoRepository {
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("utxo repository: %s", format)
		log.Debugf(format, a...)
	}
	return &utxoRepository{store, logFn}
}

func (r *utxoRepository) AddUtxos(
	ctx context.Context, utxos []*domain.Utxo,
) (int, error) {
	count := 0
	for _, u := range utxos {
		done, err := r.insertUtxo(u)
		if err != nil {
			return -1, err
		}
		if done {
			count++
		}
	}

	if count > 0 {
		r.log("added %d utxo(s)", count)
	}
	return count, nil
}

func (r *utxoRepository) GetUtxosByKey(
	ctx context.Context, utxoKeys []domain.UtxoKey,
) ([]*domain.Utxo, error) {
	utxos := make([]*domain.Utxo, 0, len(utxoKeys))
	for _, key := range utxoKeys {
		query := badgerhold.Where("TxHash").Eq(key.TxHash).
			And("TxIndex").Eq(key.TxIndex)
		foundUtxos, err := r.findUtxos(query)
		if err != nil {
			return nil, err
		}
		if len(foundUtxos) > 0 {
			utxos = append(utxos, foundUtxos[0])
		}
	}

	return utxos, nil
}

func (r *utxoRepository) GetAllUtxos(ctx context.Context) ([]*domain.Utxo, error) {
	return r.findUtxos(nil)
}

func (r *utxoRepository) GetBalance(ctx context.Context) (domain.Value, error) {
	utxos, err := r.findUtxos(nil)
	if err != nil {
		return domain.Value{}, err
	}
	return domain.SumUtxos(utxos), nil
}

func (r *utxoRepository) DeleteUtxos(
	ctx context.Context, utxoKeys []domain.UtxoKey,
) (int, error) {
	count := 0
	for _, key := range utxoKeys {
		done, err := r.deleteUtxo(key)
		if err != nil {
			return -1, err
		}
		if done {
			count++
		}
	}

	if count > 0 {
		r.log("removed %d utxo(s)", count)
	}
	return count, nil
}

func (r *utxoRepository) findUtxos(query *badgerhold.Query) ([]*domain.Utxo, error) {
	var list []domain.Utxo
	if err := r.store.Find(&list, query); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	utxos := make([]*domain.Utxo, 0, len(list))
	for i := range list {
		u := &list[i]
		utxos = append(utxos, u)
	}
	return utxos, nil
}

func (r *utxoRepository) insertUtxo(utxo *domain.Utxo) (bool, error) {
	if err := r.store.Insert(utxo.Key().String(), *utxo); err != nil {
		if err == badgerhold.ErrKeyExists {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *utxoRepository) deleteUtxo(key domain.UtxoKey) (bool, error) {
	query := badgerhold.Where("TxHash").Eq(key.TxHash).
		And("TxIndex").Eq(key.TxIndex)

	utxos, err := r.findUtxos(query)
	if err != nil {
		return false, err
	}
	if len(utxos) <= 0 {
		return false, nil
	}

	if err := r.store.Delete(key.String(), domain.Utxo{}); err != nil {
		return false, err
	}
	return true, nil
}

func (r *utxoRepository) reset() {
	r.store.Badger().DropAll()
}

func (r *utxoRepository) close() {
	r.store.Close()
}
