package application

import "fmt"

var (
	ErrMissingUtxoID = fmt.Errorf(
		"inputs must reference the transaction output they originate from",
	)
	ErrNegativeLovelace = fmt.Errorf("lovelace amount must not be negative")
	ErrNegativeQuantity = fmt.Errorf("asset quantity must not be negative")
	ErrDuplicatedAsset  = fmt.Errorf(
		"utxo must not contain more than one entry for the same asset",
	)
)
