package receipts

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/safecosts/internal/common"
	"github.com/thirdweb-dev/safecosts/internal/metrics"
	"github.com/thirdweb-dev/safecosts/internal/rpc"
)

type Resolver struct {
	rpc rpc.IRPCClient
}

func NewResolver(rpc rpc.IRPCClient) *Resolver {
	return &Resolver{rpc: rpc}
}

// Resolve looks up all receipts in one batch and returns them in input order.
// Any failed, missing or mismatched entry fails the whole batch; no receipt is ever dropped.
func (r *Resolver) Resolve(ctx context.Context, txHashes []string) ([]common.ReceiptRecord, error) {
	if len(txHashes) == 0 {
		return []common.ReceiptRecord{}, nil
	}

	start := time.Now()
	results := r.rpc.GetTransactionReceipts(ctx, txHashes)
	metrics.ReceiptBatchDuration.Observe(time.Since(start).Seconds())

	if len(results) != len(txHashes) {
		metrics.RPCFailures.WithLabelValues("eth_getTransactionReceipt").Inc()
		return nil, fmt.Errorf("%w: requested %d receipts, received %d", common.ErrReceiptResolution, len(txHashes), len(results))
	}

	receipts := make([]common.ReceiptRecord, 0, len(results))
	for i, result := range results {
		if result.Error != nil {
			metrics.RPCFailures.WithLabelValues("eth_getTransactionReceipt").Inc()
			return nil, fmt.Errorf("%w: receipt for %s: %v", common.ErrReceiptResolution, txHashes[i], result.Error)
		}
		if !strings.EqualFold(result.Data.TxnHash, txHashes[i]) {
			return nil, fmt.Errorf("%w: requested receipt for %s, received %s", common.ErrReceiptResolution, txHashes[i], result.Data.TxnHash)
		}
		receipts = append(receipts, result.Data)
	}

	metrics.ReceiptsResolved.Add(float64(len(receipts)))
	log.Debug().Int("tx_count", len(receipts)).Dur("elapsed", time.Since(start)).Msg("Resolved receipts")
	return receipts, nil
}
