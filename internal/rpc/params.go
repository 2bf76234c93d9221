package rpc

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

func TraceFilterParams(window common.BlockWindow, toAddresses []string) []interface{} {
	return []interface{}{map[string]interface{}{
		"fromBlock":   hexutil.EncodeUint64(window.FromBlock),
		"toBlock":     hexutil.EncodeUint64(window.ToBlock),
		"fromAddress": nil,
		"toAddress":   toAddresses,
	}}
}

func GetTransactionReceiptParams(txHash string) []interface{} {
	return []interface{}{txHash}
}
