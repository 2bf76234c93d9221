package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/safecosts/internal/common"
	"github.com/thirdweb-dev/safecosts/internal/metrics"
	"github.com/thirdweb-dev/safecosts/internal/rpc"
)

// Scanner finds transactions that made a plain call with one of the target selectors
// to one of the watched recipient addresses.
type Scanner struct {
	rpc         rpc.IRPCClient
	toAddresses []string
	selectors   *common.Set[string]
}

func NewScanner(rpc rpc.IRPCClient, toAddresses []string, selectors []string) (*Scanner, error) {
	if len(selectors) == 0 {
		return nil, fmt.Errorf("%w: at least one selector is required", common.ErrInvalidArgument)
	}
	resolved := common.NewSet[string]()
	for _, value := range selectors {
		selector, err := common.ResolveSelector(value)
		if err != nil {
			return nil, err
		}
		resolved.Add(selector)
	}
	return &Scanner{
		rpc:         rpc,
		toAddresses: toAddresses,
		selectors:   resolved,
	}, nil
}

func (s *Scanner) Selectors() []string {
	return s.selectors.List()
}

// Scan fetches the traces of one window and returns the distinct eligible
// transaction hashes in the order they were first seen.
func (s *Scanner) Scan(ctx context.Context, window common.BlockWindow) ([]string, error) {
	start := time.Now()
	traces, err := s.rpc.TraceFilter(ctx, window, s.toAddresses)
	metrics.TraceFilterDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RPCFailures.WithLabelValues("trace_filter").Inc()
		return nil, fmt.Errorf("%w: trace_filter for blocks %s: %v", common.ErrFetchFailure, window, err)
	}

	txHashes := s.EligibleTxHashes(traces)

	metrics.WindowsScanned.Inc()
	metrics.TracesFetched.Add(float64(len(traces)))
	metrics.EligibleTransactions.Add(float64(len(txHashes)))
	metrics.LastScannedBlock.Set(float64(window.ToBlock))

	log.Debug().
		Uint64("from_block", window.FromBlock).
		Uint64("to_block", window.ToBlock).
		Int("trace_count", len(traces)).
		Int("tx_count", len(txHashes)).
		Msg("Scanned window")
	return txHashes, nil
}

// EligibleTxHashes projects matching traces to their transaction hash. A transaction
// with several matching internal calls is reported once.
func (s *Scanner) EligibleTxHashes(traces []common.Trace) []string {
	txHashes := common.NewSet[string]()
	for _, trace := range traces {
		if s.IsEligible(trace) && trace.TransactionHash != "" {
			txHashes.Add(trace.TransactionHash)
		}
	}
	return txHashes.List()
}

func (s *Scanner) IsEligible(trace common.Trace) bool {
	return trace.IsPlainCall() && s.selectors.Contains(trace.Selector())
}
