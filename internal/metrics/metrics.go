package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scanner Metrics
var (
	WindowsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_windows_scanned_total",
		Help: "The total number of block windows scanned with trace_filter",
	})

	TracesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_traces_fetched_total",
		Help: "The total number of traces returned by trace_filter",
	})

	EligibleTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scanner_eligible_transactions_total",
		Help: "The total number of distinct transactions with a matching call",
	})

	LastScannedBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scanner_last_scanned_block",
		Help: "The upper block of the most recently completed window",
	})

	TraceFilterDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scanner_trace_filter_duration_seconds",
		Help:    "Time taken by a single trace_filter request",
		Buckets: prometheus.DefBuckets,
	})
)

// Receipt Resolver Metrics
var (
	ReceiptsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "receipts_resolved_total",
		Help: "The total number of receipts resolved",
	})

	ReceiptBatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "receipts_batch_duration_seconds",
		Help:    "Time taken by a single eth_getTransactionReceipt batch",
		Buckets: prometheus.DefBuckets,
	})
)

// RPC Metrics
var (
	RPCFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpc_failures_total",
		Help: "The total number of failed RPC requests by method",
	}, []string{"method"})
)

// Aggregator Metrics
var (
	SendersRanked = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aggregator_senders_ranked",
		Help: "The number of distinct senders in the cost ranking",
	})

	TotalGasCostEther = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "aggregator_total_gas_cost_ether",
		Help: "The total gas cost over all resolved receipts, in ether",
	})
)
