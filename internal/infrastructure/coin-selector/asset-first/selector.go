package assetfirst_selector

import (
	"fmt"

	"github.com/reeflabs/reef/internal/core/domain"
	"github.com/reeflabs/reef/internal/core/ports"
)

var (
	ErrTargetAmountNotReached = fmt.Errorf("not found enough utxos to cover target amount")
)

type selector struct{}

func NewAssetFirstCoinSelector() ports.CoinSelector {
	return &selector{}
}

// SelectUtxos greedily moves utxos from the pool to the selected list until
// their total value, plus the initial surplus, dominates the target.
// Utxos carrying a still-outstanding asset are always preferred over pure
// lovelace ones, so that a scarce asset is never left stranded behind an
// oversized lovelace utxo picked first.
func (s *selector) SelectUtxos(
	utxos []*domain.Utxo, target, surplus domain.Value,
) (*domain.SelectionResult, error) {
	have := surplus.Copy()
	pool := make([]*domain.Utxo, len(utxos))
	copy(pool, utxos)

	selected := make([]*domain.Utxo, 0, len(utxos))
	for !have.Dominates(target) {
		remaining := target.Remaining(have)
		best := bestCandidate(pool, remaining)
		if best < 0 {
			return nil, ErrTargetAmountNotReached
		}

		utxo := pool[best]
		pool = append(pool[:best], pool[best+1:]...)
		selected = append(selected, utxo)
		have = have.Add(utxo.Value)
	}

	return &domain.SelectionResult{
		Selected:   selected,
		Unselected: pool,
		Excess:     have.Subtract(target),
	}, nil
}

// bestCandidate returns the index of the top-ranked utxo of the pool, or -1
// if none of them contributes to the remaining requirement.
// Ranking: utxos covering more distinct outstanding asset dimensions come
// first, then utxos carrying fewer assets outside the outstanding set, then
// the original input order.
func bestCandidate(pool []*domain.Utxo, remaining domain.Value) int {
	best := -1
	bestCovered, bestExtraneous := 0, 0
	for i, utxo := range pool {
		covered, extraneous := rankAssets(utxo.Value, remaining)
		if covered == 0 && !contributesLovelace(utxo.Value, remaining) {
			continue
		}
		if best < 0 || covered > bestCovered ||
			(covered == bestCovered && extraneous < bestExtraneous) {
			best, bestCovered, bestExtraneous = i, covered, extraneous
		}
	}
	return best
}

// rankAssets counts the outstanding asset dimensions the given value covers
// and the asset dimensions it carries outside the outstanding set.
func rankAssets(value, remaining domain.Value) (covered, extraneous int) {
	for key, qty := range value.Assets {
		if qty == nil || qty.Sign() <= 0 {
			continue
		}
		if outstanding, ok := remaining.Assets[key]; ok && outstanding.Sign() > 0 {
			covered++
		} else {
			extraneous++
		}
	}
	return
}

func contributesLovelace(value, remaining domain.Value) bool {
	if remaining.Lovelace == nil || remaining.Lovelace.Sign() <= 0 {
		return false
	}
	return value.Lovelace != nil && value.Lovelace.Sign() > 0
}
