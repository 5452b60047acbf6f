package domain

import "context"

// UtxoRepository is the abstraction for any kind of persistent storage of the
// local set of candidate utxos.
type UtxoRepository interface {
	// AddUtxos persists the given utxos by preventing duplicates and returns
	// how many have been effectively added.
	AddUtxos(ctx context.Context, utxos []*Utxo) (int, error)
	// GetUtxosByKey returns the utxos identified by the given keys, skipping
	// those not found.
	GetUtxosByKey(ctx context.Context, utxoKeys []UtxoKey) ([]*Utxo, error)
	// GetAllUtxos returns the whole utxo set.
	GetAllUtxos(ctx context.Context) ([]*Utxo, error)
	// GetBalance returns the total value of the whole utxo set.
	GetBalance(ctx context.Context) (Value, error)
	// DeleteUtxos removes the utxos identified by the given keys from the
	// store and returns how many have been effectively removed.
	DeleteUtxos(ctx context.Context, utxoKeys []UtxoKey) (int, error)
}
