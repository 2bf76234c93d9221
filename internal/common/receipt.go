package common

import (
	"github.com/holiman/uint256"
)

type RawReceipt = map[string]interface{}

// ReceiptRecord is the normalized form of one transaction receipt.
// GasCost is gasUsed * effectiveGasPrice in wei.
type ReceiptRecord struct {
	Sender      string
	BlockNumber uint64
	TxnIndex    uint64
	TxnHash     string
	Status      uint64
	GasCost     *uint256.Int
}

// CostEntry is the total gas cost paid by one sender across the scanned range.
type CostEntry struct {
	Sender       string
	TotalGasCost *uint256.Int
}
