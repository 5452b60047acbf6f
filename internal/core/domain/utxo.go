package domain

import "fmt"

// UtxoKey represents the key of an Utxo, composed by the hash of the
// transaction that created it and the index of the output within it.
type UtxoKey struct {
	TxHash  string
	TxIndex uint32
}

func (k UtxoKey) String() string {
	return fmt.Sprintf("{%s: %d}", k.TxHash, k.TxIndex)
}

// Utxo is a spendable input candidate: the reference to the transaction
// output that created it plus the multi-asset value it carries.
type Utxo struct {
	UtxoKey
	Value Value
}

// Key returns the UtxoKey of the current utxo.
func (u *Utxo) Key() UtxoKey {
	return u.UtxoKey
}

// SelectionResult is the outcome of a successful coin selection: the inputs
// chosen to cover the target, the untouched ones in their original relative
// order, and the leftover value destined to become a change output.
type SelectionResult struct {
	Selected   []*Utxo
	Unselected []*Utxo
	Excess     Value
}

// SumUtxos returns the total value carried by the given utxos. An empty list
// yields the zero value and the result does not depend on the ordering of
// the list.
func SumUtxos(utxos []*Utxo) Value {
	total := ZeroValue()
	for _, u := range utxos {
		total = total.Add(u.Value)
	}
	return total
}
