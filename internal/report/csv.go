package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/thirdweb-dev/safecosts/internal/common"
)

var (
	ledgerHeader = []string{"sender", "block_number", "txn_index", "txn_hash", "status", "gas_cost"}
	costsHeader  = []string{"sender", "gas_cost"}
)

// WriteLedgerCSV writes one row per receipt, in the order given.
func WriteLedgerCSV(w io.Writer, ledger []common.ReceiptRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ledgerHeader); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}
	for _, receipt := range ledger {
		row := []string{
			receipt.Sender,
			strconv.FormatUint(receipt.BlockNumber, 10),
			strconv.FormatUint(receipt.TxnIndex, 10),
			receipt.TxnHash,
			strconv.FormatUint(receipt.Status, 10),
			weiString(receipt),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write ledger row for %s: %w", receipt.TxnHash, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCostsCSV writes one row per sender, in the order given.
func WriteCostsCSV(w io.Writer, costs []common.CostEntry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(costsHeader); err != nil {
		return fmt.Errorf("failed to write costs header: %w", err)
	}
	for _, entry := range costs {
		total := "0"
		if entry.TotalGasCost != nil {
			total = entry.TotalGasCost.Dec()
		}
		if err := writer.Write([]string{entry.Sender, total}); err != nil {
			return fmt.Errorf("failed to write cost row for %s: %w", entry.Sender, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func weiString(receipt common.ReceiptRecord) string {
	if receipt.GasCost == nil {
		return "0"
	}
	return receipt.GasCost.Dec()
}
