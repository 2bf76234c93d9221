package orchestrator

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/safecosts/configs"
	"github.com/thirdweb-dev/safecosts/internal/aggregator"
	"github.com/thirdweb-dev/safecosts/internal/common"
	"github.com/thirdweb-dev/safecosts/internal/metrics"
	"github.com/thirdweb-dev/safecosts/internal/receipts"
	"github.com/thirdweb-dev/safecosts/internal/report"
	"github.com/thirdweb-dev/safecosts/internal/rpc"
	"github.com/thirdweb-dev/safecosts/internal/scanner"
	"github.com/thirdweb-dev/safecosts/internal/worker"
)

type Orchestrator struct {
	rpc                   rpc.IRPCClient
	scanner               *scanner.Scanner
	resolver              *receipts.Resolver
	writer                *report.Writer
	blocksPerRequest      int64
	traceParallelCalls    int
	receiptsParallelCalls int
}

type Result struct {
	StartBlock uint64
	EndBlock   uint64
	Windows    int
	Ledger     []common.ReceiptRecord
	Costs      []common.CostEntry
	Files      []string
}

func NewOrchestrator(rpc rpc.IRPCClient, toAddresses []string, writer *report.Writer) (*Orchestrator, error) {
	if len(toAddresses) == 0 {
		return nil, fmt.Errorf("%w: at least one recipient address is required", common.ErrInvalidArgument)
	}
	s, err := scanner.NewScanner(rpc, toAddresses, config.Cfg.Scan.Selectors)
	if err != nil {
		return nil, err
	}

	blocksPerRequest := config.Cfg.RPC.Traces.BlocksPerRequest
	if blocksPerRequest == 0 {
		blocksPerRequest = config.DEFAULT_BLOCKS_PER_REQUEST
	}

	return &Orchestrator{
		rpc:                   rpc,
		scanner:               s,
		resolver:              receipts.NewResolver(rpc),
		writer:                writer,
		blocksPerRequest:      int64(blocksPerRequest),
		traceParallelCalls:    config.Cfg.RPC.Traces.ParallelCalls,
		receiptsParallelCalls: config.Cfg.RPC.Receipts.ParallelCalls,
	}, nil
}

// Run scans [startBlock, head] and writes the reports. Reports are only written
// when every window was scanned and every receipt resolved.
func (o *Orchestrator) Run(ctx context.Context, startBlock uint64) (*Result, error) {
	head, err := o.rpc.GetLatestBlockNumber(ctx)
	if err != nil {
		metrics.RPCFailures.WithLabelValues("eth_blockNumber").Inc()
		return nil, fmt.Errorf("%w: failed to get latest block number: %v", common.ErrFetchFailure, err)
	}

	windows, err := common.Partition(startBlock, head, o.blocksPerRequest)
	if err != nil {
		return nil, err
	}
	if startBlock > head {
		log.Warn().Uint64("start_block", startBlock).Uint64("head", head).Msg("Start block is ahead of the chain head, nothing to scan")
	}

	log.Info().
		Uint64("from_block", startBlock).
		Uint64("to_block", head).
		Int("windows", len(windows)).
		Strs("selectors", o.scanner.Selectors()).
		Msg("Starting scan")

	start := time.Now()
	collected, err := o.collect(ctx, windows)
	if err != nil {
		return nil, err
	}

	if err := aggregator.CheckUnique(collected); err != nil {
		return nil, err
	}
	ledger, costs := aggregator.Aggregate(collected)

	total := aggregator.TotalGasCost(ledger)
	metrics.SendersRanked.Set(float64(len(costs)))
	if ether, err := strconv.ParseFloat(common.FormatEther(total), 64); err == nil {
		metrics.TotalGasCostEther.Set(ether)
	}

	result := &Result{
		StartBlock: startBlock,
		EndBlock:   head,
		Windows:    len(windows),
		Ledger:     ledger,
		Costs:      costs,
	}

	if o.writer != nil {
		files, err := o.writer.Write(ctx, report.Report{
			StartBlock: startBlock,
			EndBlock:   head,
			Ledger:     ledger,
			Costs:      costs,
		})
		if err != nil {
			return nil, err
		}
		result.Files = files
	}

	log.Info().
		Int("tx_count", len(ledger)).
		Int("senders", len(costs)).
		Str("total_gas_cost", common.FormatEther(total)).
		Dur("elapsed", time.Since(start)).
		Msg("Scan complete")
	return result, nil
}

// collect runs one trace task per window and, as each window completes, one receipt
// task for its eligible hashes. The first failure cancels all outstanding work.
func (o *Orchestrator) collect(ctx context.Context, windows []common.BlockWindow) ([]common.ReceiptRecord, error) {
	scheduler := worker.NewScheduler(ctx)
	defer scheduler.Close()

	traceWave := worker.NewWave[common.BlockWindow, []string](scheduler, o.traceParallelCalls)
	receiptWave := worker.NewWave[common.BlockWindow, []common.ReceiptRecord](scheduler, o.receiptsParallelCalls)

	for _, window := range windows {
		traceWave.Submit(window, o.scanner.Scan)
	}
	traceWave.Seal()

	scanned := 0
	for completion := range traceWave.AsCompleted() {
		scanned++
		txHashes := completion.Value
		log.Info().
			Uint64("from_block", completion.Key.FromBlock).
			Uint64("to_block", completion.Key.ToBlock).
			Int("tx_count", len(txHashes)).
			Msgf("traces %d/%d", scanned, len(windows))

		receiptWave.Submit(completion.Key, func(ctx context.Context, _ common.BlockWindow) ([]common.ReceiptRecord, error) {
			return o.resolver.Resolve(ctx, txHashes)
		})
	}
	receiptWave.Seal()

	collected := make([]common.ReceiptRecord, 0)
	resolved := 0
	for completion := range receiptWave.AsCompleted() {
		resolved++
		collected = append(collected, completion.Value...)
		log.Info().
			Uint64("from_block", completion.Key.FromBlock).
			Uint64("to_block", completion.Key.ToBlock).
			Int("tx_count", len(completion.Value)).
			Msgf("receipts %d/%d", resolved, receiptWave.Submitted())
	}

	if err := scheduler.Err(); err != nil {
		log.Error().Err(err).Msg("Scan aborted")
		return nil, err
	}
	return collected, nil
}
