package domain

import (
	"fmt"
	"math/big"
)

// AssetKey identifies a native asset class by its minting policy and name.
type AssetKey struct {
	PolicyID  string
	AssetName string
}

func (k AssetKey) String() string {
	return fmt.Sprintf("%s.%s", k.PolicyID, k.AssetName)
}

// Value is a multi-asset value vector: an amount of the chain's native
// currency (lovelace) plus any number of asset quantities keyed by
// (policy, name). Quantities are arbitrary-precision and never negative.
// A missing asset key is equivalent to a zero quantity.
//
// All operations are pure: they return new Values and never mutate their
// receiver or arguments.
type Value struct {
	Lovelace *big.Int
	Assets   map[AssetKey]*big.Int
}

// ZeroValue returns the identity element for Add.
func ZeroValue() Value {
	return Value{Lovelace: new(big.Int), Assets: make(map[AssetKey]*big.Int)}
}

// NewValue returns a value holding the given amount of lovelace and no assets.
func NewValue(lovelace uint64) Value {
	value := ZeroValue()
	value.Lovelace.SetUint64(lovelace)
	return value
}

// WithAsset returns a copy of the value with the quantity of the given asset
// replaced.
func (v Value) WithAsset(key AssetKey, quantity uint64) Value {
	res := v.Copy()
	res.Assets[key] = new(big.Int).SetUint64(quantity)
	return res
}

// Copy returns a deep copy of the value.
func (v Value) Copy() Value {
	res := ZeroValue()
	res.Lovelace.Set(v.lovelace())
	for key, qty := range v.Assets {
		if qty != nil {
			res.Assets[key] = new(big.Int).Set(qty)
		}
	}
	return res
}

// AssetQuantity returns the quantity of the given asset, zero if missing.
func (v Value) AssetQuantity(key AssetKey) *big.Int {
	if qty, ok := v.Assets[key]; ok && qty != nil {
		return new(big.Int).Set(qty)
	}
	return new(big.Int)
}

// Add returns the componentwise sum of the two values.
func (v Value) Add(other Value) Value {
	res := v.Copy()
	res.Lovelace.Add(res.Lovelace, other.lovelace())
	for key, qty := range other.Assets {
		if qty == nil {
			continue
		}
		if cur, ok := res.Assets[key]; ok {
			cur.Add(cur, qty)
		} else {
			res.Assets[key] = new(big.Int).Set(qty)
		}
	}
	return res
}

// Subtract returns the componentwise difference between the two values.
// It must be called only when v dominates other. Feasibility is checked with
// Dominates, never by subtracting.
func (v Value) Subtract(other Value) Value {
	res := v.Copy()
	res.Lovelace.Sub(res.Lovelace, other.lovelace())
	for key, qty := range other.Assets {
		if qty == nil || qty.Sign() == 0 {
			continue
		}
		cur, ok := res.Assets[key]
		if !ok {
			cur = new(big.Int)
			res.Assets[key] = cur
		}
		cur.Sub(cur, qty)
	}
	return res
}

// Dominates returns whether v covers other in every dimension, that is at
// least as much lovelace and at least the quantity of every positive asset
// of other.
func (v Value) Dominates(other Value) bool {
	if v.lovelace().Cmp(other.lovelace()) < 0 {
		return false
	}
	for key, qty := range other.Assets {
		if qty == nil || qty.Sign() <= 0 {
			continue
		}
		cur, ok := v.Assets[key]
		if !ok || cur == nil || cur.Cmp(qty) < 0 {
			return false
		}
	}
	return true
}

// Equal returns whether the two values are componentwise equal, treating
// missing and zero quantities alike.
func (v Value) Equal(other Value) bool {
	return v.Dominates(other) && other.Dominates(v)
}

// IsZero returns whether every component of the value is zero.
func (v Value) IsZero() bool {
	if v.lovelace().Sign() != 0 {
		return false
	}
	for _, qty := range v.Assets {
		if qty != nil && qty.Sign() != 0 {
			return false
		}
	}
	return true
}

// Remaining returns, per dimension, how much of the target value v is not yet
// covered by have: max(0, v_i - have_i). Dimensions have over-covers do not
// offset dimensions still outstanding.
func (v Value) Remaining(have Value) Value {
	res := ZeroValue()
	if diff := new(big.Int).Sub(v.lovelace(), have.lovelace()); diff.Sign() > 0 {
		res.Lovelace = diff
	}
	for key, qty := range v.Assets {
		if qty == nil || qty.Sign() <= 0 {
			continue
		}
		diff := new(big.Int).Sub(qty, have.AssetQuantity(key))
		if diff.Sign() > 0 {
			res.Assets[key] = diff
		}
	}
	return res
}

// SumValues folds the given values with Add starting from the zero value.
// The result does not depend on the ordering of the list.
func SumValues(values ...Value) Value {
	total := ZeroValue()
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func (v Value) lovelace() *big.Int {
	if v.Lovelace == nil {
		return new(big.Int)
	}
	return v.Lovelace
}
