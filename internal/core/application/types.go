package application

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/reeflabs/reef/internal/core/domain"
	"github.com/reeflabs/reef/internal/core/ports"
	af_selector "github.com/reeflabs/reef/internal/infrastructure/coin-selector/asset-first"
)

const (
	CoinSelectionStrategyAssetFirst = iota
)

var (
	coinSelectorByType = map[int]CoinSelectorFactory{
		CoinSelectionStrategyAssetFirst: af_selector.NewAssetFirstCoinSelector,
	}

	DefaultCoinSelector = af_selector.NewAssetFirstCoinSelector()
)

type CoinSelectorFactory func() ports.CoinSelector

// UtxoID references the transaction output a utxo originates from.
type UtxoID struct {
	Hash  string `json:"hash"`
	Index uint32 `json:"index"`
}

// Asset is the boundary representation of an asset quantity.
type Asset struct {
	PolicyID  string   `json:"policyId"`
	AssetName string   `json:"assetName"`
	Quantity  *big.Int `json:"quantity"`
}

// Utxo is the boundary representation of both spendable inputs (id set) and
// target output specifications (id omitted). Amounts are arbitrary-precision
// integers, they round-trip losslessly through JSON.
type Utxo struct {
	ID       *UtxoID  `json:"id,omitempty"`
	Lovelace *big.Int `json:"lovelace"`
	Assets   []Asset  `json:"assets"`
}

// Validate makes sure all quantities are non-negative and that no asset
// appears twice within the utxo.
func (u Utxo) Validate() error {
	if u.Lovelace != nil && u.Lovelace.Sign() < 0 {
		return ErrNegativeLovelace
	}
	seen := make(map[domain.AssetKey]struct{})
	for _, asset := range u.Assets {
		if asset.Quantity != nil && asset.Quantity.Sign() < 0 {
			return fmt.Errorf("%w: %s.%s", ErrNegativeQuantity, asset.PolicyID, asset.AssetName)
		}
		key := domain.AssetKey{
			PolicyID: asset.PolicyID, AssetName: asset.AssetName,
		}
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatedAsset, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Value converts the boundary representation into a domain value vector.
func (u Utxo) Value() domain.Value {
	value := domain.ZeroValue()
	if u.Lovelace != nil {
		value.Lovelace.Set(u.Lovelace)
	}
	for _, asset := range u.Assets {
		if asset.Quantity == nil {
			continue
		}
		key := domain.AssetKey{
			PolicyID: asset.PolicyID, AssetName: asset.AssetName,
		}
		value.Assets[key] = new(big.Int).Set(asset.Quantity)
	}
	return value
}

func (u Utxo) toDomain() *domain.Utxo {
	utxo := &domain.Utxo{Value: u.Value()}
	if u.ID != nil {
		utxo.UtxoKey = domain.UtxoKey{TxHash: u.ID.Hash, TxIndex: u.ID.Index}
	}
	return utxo
}

type Utxos []Utxo

// Validate validates every utxo of the list, also making sure each one
// carries the reference to its generating transaction when requireID is set.
func (u Utxos) Validate(requireID bool) error {
	for _, utxo := range u {
		if requireID && utxo.ID == nil {
			return ErrMissingUtxoID
		}
		if err := utxo.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (u Utxos) toDomain() []*domain.Utxo {
	list := make([]*domain.Utxo, 0, len(u))
	for _, utxo := range u {
		list = append(list, utxo.toDomain())
	}
	return list
}

// SelectionResult is the boundary representation of a successful selection.
type SelectionResult struct {
	Selected   []Utxo `json:"selected"`
	Unselected []Utxo `json:"unselected"`
	Excess     Utxo   `json:"excess"`
}

func newSelectionResult(result *domain.SelectionResult) *SelectionResult {
	return &SelectionResult{
		Selected:   newUtxoList(result.Selected),
		Unselected: newUtxoList(result.Unselected),
		Excess:     newValueInfo(result.Excess),
	}
}

func newUtxoList(utxos []*domain.Utxo) []Utxo {
	list := make([]Utxo, 0, len(utxos))
	for _, u := range utxos {
		list = append(list, newUtxoInfo(u))
	}
	return list
}

func newUtxoInfo(utxo *domain.Utxo) Utxo {
	info := newValueInfo(utxo.Value)
	info.ID = &UtxoID{Hash: utxo.TxHash, Index: utxo.TxIndex}
	return info
}

func newValueInfo(value domain.Value) Utxo {
	assets := make([]Asset, 0, len(value.Assets))
	for key, qty := range value.Assets {
		assets = append(assets, Asset{
			PolicyID:  key.PolicyID,
			AssetName: key.AssetName,
			Quantity:  new(big.Int).Set(qty),
		})
	}
	// Asset entries have no canonical ordering in the domain, sort them to
	// make the boundary representation deterministic.
	sort.Slice(assets, func(i, j int) bool {
		if assets[i].PolicyID != assets[j].PolicyID {
			return assets[i].PolicyID < assets[j].PolicyID
		}
		return assets[i].AssetName < assets[j].AssetName
	})

	lovelace := new(big.Int)
	if value.Lovelace != nil {
		lovelace.Set(value.Lovelace)
	}
	return Utxo{Lovelace: lovelace, Assets: assets}
}
