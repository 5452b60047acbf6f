package application

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/reeflabs/reef/internal/core/domain"
	"github.com/reeflabs/reef/internal/core/ports"
)

// UtxoService is responsible for operations related to the utxo set:
//   - Aggregate a list of utxos into their total multi-asset value.
//   - Select a subset of utxos covering a list of target outputs across every
//     asset dimension, either from a caller-provided list or from the stored
//     utxo set, and compute the excess destined to become change.
//   - Manage the stored utxo set (add, list, remove, balance).
//
// Utxos and outputs crossing the boundary are validated upfront: negative
// quantities, duplicated asset keys within the same utxo and inputs missing
// the reference to their generating transaction are rejected before reaching
// the selection engine. Running out of funds during selection is not an
// exceptional outcome, it's reported with the selector's
// ErrTargetAmountNotReached for the caller to branch on.
type UtxoService struct {
	repoManager ports.RepoManager

	log func(format string, a ...interface{})
}

func NewUtxoService(repoManager ports.RepoManager) *UtxoService {
	logFn := func(format string, a ...interface{}) {
		format = fmt.Sprintf("utxo service: %s", format)
		log.Debugf(format, a...)
	}
	return &UtxoService{repoManager, logFn}
}

// SumUtxos returns the total value of the given utxos. The result does not
// depend on their ordering.
func (s *UtxoService) SumUtxos(
	_ context.Context, utxos Utxos,
) (*Utxo, error) {
	if err := utxos.Validate(false); err != nil {
		return nil, err
	}

	total := newValueInfo(domain.SumUtxos(utxos.toDomain()))
	return &total, nil
}

// SelectUtxos runs coin selection over the given inputs so that the selected
// ones, plus the initial surplus if any, cover the total value of the given
// outputs.
func (s *UtxoService) SelectUtxos(
	_ context.Context, inputs, outputs Utxos, surplus *Utxo, strategy int,
) (*SelectionResult, error) {
	if err := inputs.Validate(true); err != nil {
		return nil, err
	}
	return s.selectUtxos(inputs.toDomain(), outputs, surplus, strategy)
}

// SelectWalletUtxos runs coin selection like SelectUtxos, but over the stored
// utxo set.
func (s *UtxoService) SelectWalletUtxos(
	ctx context.Context, outputs Utxos, surplus *Utxo, strategy int,
) (*SelectionResult, error) {
	utxos, err := s.repoManager.UtxoRepository().GetAllUtxos(ctx)
	if err != nil {
		return nil, err
	}
	return s.selectUtxos(utxos, outputs, surplus, strategy)
}

// AddUtxos validates and persists the given utxos, returning how many have
// been effectively added.
func (s *UtxoService) AddUtxos(ctx context.Context, utxos Utxos) (int, error) {
	if err := utxos.Validate(true); err != nil {
		return -1, err
	}

	count, err := s.repoManager.UtxoRepository().AddUtxos(ctx, utxos.toDomain())
	if err != nil {
		return -1, err
	}
	if count > 0 {
		s.log("added %d utxo(s)", count)
	}
	return count, nil
}

// ListUtxos returns the whole stored utxo set.
func (s *UtxoService) ListUtxos(ctx context.Context) ([]Utxo, error) {
	utxos, err := s.repoManager.UtxoRepository().GetAllUtxos(ctx)
	if err != nil {
		return nil, err
	}
	return newUtxoList(utxos), nil
}

// RemoveUtxos removes the utxos identified by the given ids from the store,
// returning how many have been effectively removed.
func (s *UtxoService) RemoveUtxos(
	ctx context.Context, ids []UtxoID,
) (int, error) {
	keys := make([]domain.UtxoKey, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, domain.UtxoKey{TxHash: id.Hash, TxIndex: id.Index})
	}

	count, err := s.repoManager.UtxoRepository().DeleteUtxos(ctx, keys)
	if err != nil {
		return -1, err
	}
	if count > 0 {
		s.log("removed %d utxo(s)", count)
	}
	return count, nil
}

// GetBalance returns the total value of the stored utxo set.
func (s *UtxoService) GetBalance(ctx context.Context) (*Utxo, error) {
	balance, err := s.repoManager.UtxoRepository().GetBalance(ctx)
	if err != nil {
		return nil, err
	}

	info := newValueInfo(balance)
	return &info, nil
}

func (s *UtxoService) selectUtxos(
	inputs []*domain.Utxo, outputs Utxos, surplus *Utxo, strategy int,
) (*SelectionResult, error) {
	if err := outputs.Validate(false); err != nil {
		return nil, err
	}

	initialSurplus := domain.ZeroValue()
	if surplus != nil {
		if err := surplus.Validate(); err != nil {
			return nil, err
		}
		initialSurplus = surplus.Value()
	}

	target := domain.SumUtxos(outputs.toDomain())

	coinSelector := DefaultCoinSelector
	if factory, ok := coinSelectorByType[strategy]; ok {
		coinSelector = factory()
	}

	result, err := coinSelector.SelectUtxos(inputs, target, initialSurplus)
	if err != nil {
		return nil, err
	}

	s.log("selected %d of %d utxo(s)", len(result.Selected), len(inputs))
	return newSelectionResult(result), nil
}
