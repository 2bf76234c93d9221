package rpc

import (
	"fmt"
	"strconv"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

func SerializeTraces(traces common.RawTraces) []common.Trace {
	serializedTraces := make([]common.Trace, 0, len(traces))
	for _, trace := range traces {
		serializedTraces = append(serializedTraces, serializeTrace(trace))
	}
	return serializedTraces
}

func serializeTrace(trace map[string]interface{}) common.Trace {
	action, _ := trace["action"].(map[string]interface{})
	return common.Trace{
		BlockNumber:      numberToUint64(trace["blockNumber"]),
		TransactionHash:  strings.ToLower(interfaceToString(trace["transactionHash"])),
		TransactionIndex: numberToUint64(trace["transactionPosition"]),
		TraceType:        interfaceToString(trace["type"]),
		CallType:         interfaceToString(action["callType"]),
		FromAddress:      interfaceToString(action["from"]),
		ToAddress:        interfaceToString(action["to"]),
		Input:            interfaceToString(action["input"]),
		Error:            interfaceToString(trace["error"]),
	}
}

func SerializeReceipts(receipts []RPCFetchBatchResult[string, common.RawReceipt]) []GetReceiptsResult {
	results := make([]GetReceiptsResult, 0, len(receipts))
	for _, rawReceipt := range receipts {
		result := GetReceiptsResult{TxHash: rawReceipt.Key}
		if rawReceipt.Error != nil {
			result.Error = rawReceipt.Error
			results = append(results, result)
			continue
		}
		if rawReceipt.Result == nil {
			log.Warn().Str("tx_hash", rawReceipt.Key).Msg("Received a nil receipt result")
			result.Error = fmt.Errorf("received a nil receipt result from RPC")
			results = append(results, result)
			continue
		}

		receipt, err := serializeReceipt(rawReceipt.Result)
		if err != nil {
			result.Error = err
		} else {
			result.Data = receipt
		}
		results = append(results, result)
	}
	return results
}

func serializeReceipt(receipt common.RawReceipt) (common.ReceiptRecord, error) {
	from := interfaceToString(receipt["from"])
	if !gethCommon.IsHexAddress(from) {
		return common.ReceiptRecord{}, fmt.Errorf("invalid receipt field from: %q", from)
	}
	txHash := interfaceToString(receipt["transactionHash"])
	if len(txHash) != 66 || !strings.HasPrefix(txHash, "0x") {
		return common.ReceiptRecord{}, fmt.Errorf("invalid receipt field transactionHash: %q", txHash)
	}
	blockNumber, err := hexFieldToUint64(receipt, "blockNumber")
	if err != nil {
		return common.ReceiptRecord{}, err
	}
	txIndex, err := hexFieldToUint64(receipt, "transactionIndex")
	if err != nil {
		return common.ReceiptRecord{}, err
	}
	status, err := hexFieldToUint64(receipt, "status")
	if err != nil {
		return common.ReceiptRecord{}, err
	}
	gasUsed, err := hexFieldToUint256(receipt, "gasUsed")
	if err != nil {
		return common.ReceiptRecord{}, err
	}
	effectiveGasPrice, err := hexFieldToUint256(receipt, "effectiveGasPrice")
	if err != nil {
		return common.ReceiptRecord{}, err
	}
	gasCost, overflow := new(uint256.Int).MulOverflow(gasUsed, effectiveGasPrice)
	if overflow {
		return common.ReceiptRecord{}, fmt.Errorf("gas cost overflows uint256 for %s", txHash)
	}

	return common.ReceiptRecord{
		Sender:      gethCommon.HexToAddress(from).Hex(),
		BlockNumber: blockNumber,
		TxnIndex:    txIndex,
		TxnHash:     strings.ToLower(txHash),
		Status:      status,
		GasCost:     gasCost,
	}, nil
}

func hexFieldToUint64(raw map[string]interface{}, field string) (uint64, error) {
	value, err := hexutil.DecodeUint64(interfaceToString(raw[field]))
	if err != nil {
		return 0, fmt.Errorf("invalid receipt field %s: %v", field, err)
	}
	return value, nil
}

func hexFieldToUint256(raw map[string]interface{}, field string) (*uint256.Int, error) {
	value, err := uint256.FromHex(interfaceToString(raw[field]))
	if err != nil {
		return nil, fmt.Errorf("invalid receipt field %s: %v", field, err)
	}
	return value, nil
}

// trace_filter reports blockNumber and transactionPosition as JSON numbers, some clients use hex strings
func numberToUint64(value interface{}) uint64 {
	switch v := value.(type) {
	case float64:
		return uint64(v)
	case string:
		if strings.HasPrefix(v, "0x") {
			n, _ := strconv.ParseUint(v[2:], 16, 64)
			return n
		}
		n, _ := strconv.ParseUint(v, 10, 64)
		return n
	}
	return 0
}

func interfaceToString(value interface{}) string {
	if value == nil {
		return ""
	}
	res, ok := value.(string)
	if !ok {
		return ""
	}
	return res
}
