package rpc

import (
	"context"
	"fmt"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	config "github.com/thirdweb-dev/safecosts/configs"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

type GetReceiptsResult struct {
	TxHash string
	Error  error
	Data   common.ReceiptRecord
}

type IRPCClient interface {
	TraceFilter(ctx context.Context, window common.BlockWindow, toAddresses []string) ([]common.Trace, error)
	GetTransactionReceipts(ctx context.Context, txHashes []string) []GetReceiptsResult
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	GetURL() string
	Close()
}

type Client struct {
	RPCClient *gethRpc.Client
	EthClient *ethclient.Client
	url       string
}

func Initialize(ctx context.Context) (IRPCClient, error) {
	return InitializeWithURL(ctx, config.Cfg.RPC.URL, config.Cfg.RPC.Timeout)
}

// InitializeWithURL dials the node. Every HTTP request, batches included, is bounded by timeout.
func InitializeWithURL(ctx context.Context, url string, timeout time.Duration) (IRPCClient, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: RPC url is not set", common.ErrInvalidArgument)
	}
	parsed, err := neturl.Parse(url)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed RPC url: %v", common.ErrInvalidArgument, err)
	}
	switch parsed.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("%w: unsupported RPC url scheme %q", common.ErrInvalidArgument, parsed.Scheme)
	}
	log.Debug().Str("url", url).Str("transport", parsed.Scheme).Dur("timeout", timeout).Msg("Initializing RPC")

	options := []gethRpc.ClientOption{}
	if timeout > 0 {
		options = append(options, gethRpc.WithHTTPClient(&http.Client{Timeout: timeout}))
	}
	rpcClient, err := gethRpc.DialOptions(ctx, url, options...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to dial RPC: %v", common.ErrFetchFailure, err)
	}

	ethClient := ethclient.NewClient(rpcClient)

	return &Client{
		RPCClient: rpcClient,
		EthClient: ethClient,
		url:       url,
	}, nil
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.RPCClient.Close()
	rpc.EthClient.Close()
}

// TraceFilter returns every trace in the window whose recipient is one of toAddresses.
// No sender filter is applied.
func (rpc *Client) TraceFilter(ctx context.Context, window common.BlockWindow, toAddresses []string) ([]common.Trace, error) {
	var result common.RawTraces
	if err := rpc.RPCClient.CallContext(ctx, &result, "trace_filter", TraceFilterParams(window, toAddresses)...); err != nil {
		return nil, err
	}
	return SerializeTraces(result), nil
}

// GetTransactionReceipts resolves all hashes in a single JSON-RPC batch. Results are in request order.
func (rpc *Client) GetTransactionReceipts(ctx context.Context, txHashes []string) []GetReceiptsResult {
	receipts := RPCFetchSingleBatch[string, common.RawReceipt](rpc, ctx, txHashes, "eth_getTransactionReceipt", GetTransactionReceiptParams)
	return SerializeReceipts(receipts)
}

func (rpc *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	return rpc.EthClient.BlockNumber(ctx)
}
