package rpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/safecosts/internal/common"
)

func validRawReceipt() common.RawReceipt {
	return common.RawReceipt{
		"transactionHash":   "0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		"from":              "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
		"blockNumber":       "0x12d687",
		"transactionIndex":  "0x4",
		"status":            "0x0",
		"gasUsed":           "0x30d40",
		"effectiveGasPrice": "0x4a817c800",
	}
}

func TestSerializeReceipt(t *testing.T) {
	receipt, err := serializeReceipt(validRawReceipt())
	require.NoError(t, err)

	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", receipt.Sender)
	assert.Equal(t, uint64(1234567), receipt.BlockNumber)
	assert.Equal(t, uint64(4), receipt.TxnIndex)
	assert.Equal(t, hashA, receipt.TxnHash)
	assert.Equal(t, uint64(0), receipt.Status)
	// 200000 gas * 20 gwei
	assert.Equal(t, "4000000000000000", receipt.GasCost.Dec())
}

func TestSerializeReceipt_MalformedFields(t *testing.T) {
	tests := []struct {
		field string
		value interface{}
	}{
		{"from", "not-an-address"},
		{"from", nil},
		{"transactionHash", "0x1234"},
		{"blockNumber", nil},
		{"blockNumber", "12"},
		{"transactionIndex", float64(4)},
		{"status", nil},
		{"gasUsed", "0xzz"},
		{"effectiveGasPrice", nil},
	}

	for _, tt := range tests {
		raw := validRawReceipt()
		if tt.value == nil {
			delete(raw, tt.field)
		} else {
			raw[tt.field] = tt.value
		}
		_, err := serializeReceipt(raw)
		assert.Error(t, err, "%s=%v", tt.field, tt.value)
	}
}

func TestSerializeReceipts_PropagatesErrors(t *testing.T) {
	failure := errors.New("batch element failed")
	results := SerializeReceipts([]RPCFetchBatchResult[string, common.RawReceipt]{
		{Key: hashA, Result: validRawReceipt()},
		{Key: hashB, Error: failure},
		{Key: hashC},
	})

	require.Len(t, results, 3)
	assert.NoError(t, results[0].Error)
	assert.Equal(t, hashA, results[0].TxHash)
	assert.ErrorIs(t, results[1].Error, failure)
	assert.Error(t, results[2].Error)
}

func TestSerializeTraces_ToleratesMissingAction(t *testing.T) {
	traces := SerializeTraces(common.RawTraces{
		{"type": "reward", "blockNumber": "0x10"},
		{"type": "call", "transactionPosition": "7", "action": "unexpected"},
	})

	require.Len(t, traces, 2)
	assert.Equal(t, "reward", traces[0].TraceType)
	assert.Equal(t, uint64(16), traces[0].BlockNumber)
	assert.Equal(t, "", traces[1].CallType)
	assert.Equal(t, uint64(7), traces[1].TransactionIndex)
}
