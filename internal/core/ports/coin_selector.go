package ports

import "github.com/reeflabs/reef/internal/core/domain"

// CoinSelector is the abstraction for any kind of service intended to return
// a subset of the given utxos covering the target value in every dimension,
// based on a specific strategy.
type CoinSelector interface {
	// SelectUtxos partitions the given utxos into selected and unselected
	// ones so that the sum of the selected, plus the initial surplus,
	// dominates the target value, and computes the resulting excess.
	SelectUtxos(
		utxos []*domain.Utxo, target, surplus domain.Value,
	) (*domain.SelectionResult, error)
}
