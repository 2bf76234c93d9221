package report

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

// LedgerRow is the parquet layout of a receipt. The gas cost does not fit
// any parquet integer type so it is stored as a decimal string of wei.
type LedgerRow struct {
	Sender      string `parquet:"sender"`
	BlockNumber uint64 `parquet:"block_number"`
	TxnIndex    uint64 `parquet:"txn_index"`
	TxnHash     string `parquet:"txn_hash"`
	Status      uint64 `parquet:"status"`
	GasCost     string `parquet:"gas_cost"`
}

var writerOptions = []parquet.WriterOption{
	parquet.Compression(&parquet.Zstd),
	parquet.DataPageStatistics(true),
	parquet.PageBufferSize(1 * 1024 * 1024),
}

func WriteLedgerParquet(w io.Writer, ledger []common.ReceiptRecord) error {
	rows := make([]LedgerRow, 0, len(ledger))
	for _, receipt := range ledger {
		rows = append(rows, LedgerRow{
			Sender:      receipt.Sender,
			BlockNumber: receipt.BlockNumber,
			TxnIndex:    receipt.TxnIndex,
			TxnHash:     receipt.TxnHash,
			Status:      receipt.Status,
			GasCost:     weiString(receipt),
		})
	}

	writer := parquet.NewGenericWriter[LedgerRow](w, writerOptions...)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write parquet data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
