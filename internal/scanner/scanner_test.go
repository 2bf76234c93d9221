package scanner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/safecosts/internal/common"
	"github.com/thirdweb-dev/safecosts/test/mocks"
)

var watched = []string{"0xd9db270c1b5e3bd161e8c8503c55ceabee709552"}

func call(txHash string, callType string, input string) common.Trace {
	return common.Trace{TraceType: "call", CallType: callType, Input: input, TransactionHash: txHash}
}

func TestScan_FiltersMatchingCalls(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	window := common.BlockWindow{FromBlock: 0, ToBlock: 99_999}

	mockRPC.On("TraceFilter", mock.Anything, window, watched).Return([]common.Trace{
		call("0xaa", "call", "0x6a761202ff"),
		call("0xbb", "call", "0xdeadbeef"),
	}, nil)

	scanner, err := NewScanner(mockRPC, watched, []string{"0x6a761202"})
	require.NoError(t, err)

	txHashes, err := scanner.Scan(context.Background(), window)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xaa"}, txHashes)
}

func TestScan_ExcludesNonPlainCalls(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	window := common.BlockWindow{FromBlock: 10, ToBlock: 20}

	mockRPC.On("TraceFilter", mock.Anything, window, watched).Return([]common.Trace{
		call("0x01", "delegatecall", "0x6a761202"),
		call("0x02", "staticcall", "0x6a761202"),
		{TraceType: "create", Input: "0x6a761202", TransactionHash: "0x03"},
		{TraceType: "suicide", TransactionHash: "0x04"},
		call("0x05", "call", "0x6a7612"),
		call("0x06", "call", "0x6A761202abcd"),
	}, nil)

	scanner, err := NewScanner(mockRPC, watched, []string{"0x6a761202"})
	require.NoError(t, err)

	txHashes, err := scanner.Scan(context.Background(), window)
	require.NoError(t, err)
	assert.Equal(t, []string{"0x06"}, txHashes)
}

func TestScan_DedupesTransactions(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	window := common.BlockWindow{FromBlock: 1, ToBlock: 2}

	mockRPC.On("TraceFilter", mock.Anything, window, watched).Return([]common.Trace{
		call("0xcc", "call", "0x6a761202"),
		call("0xaa", "call", "0x6a761202"),
		call("0xcc", "call", "0x6a761202"),
	}, nil)

	scanner, err := NewScanner(mockRPC, watched, []string{"0x6a761202"})
	require.NoError(t, err)

	txHashes, err := scanner.Scan(context.Background(), window)
	require.NoError(t, err)
	assert.Equal(t, []string{"0xcc", "0xaa"}, txHashes)
}

func TestScan_NonMatchingSelectorYieldsNothing(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	window := common.BlockWindow{FromBlock: 1, ToBlock: 2}

	mockRPC.On("TraceFilter", mock.Anything, window, watched).Return([]common.Trace{
		call("0xaa", "call", "0x6a761202ff"),
		call("0xbb", "call", "0xdeadbeef"),
	}, nil)

	scanner, err := NewScanner(mockRPC, watched, []string{"0x12345678"})
	require.NoError(t, err)

	txHashes, err := scanner.Scan(context.Background(), window)
	require.NoError(t, err)
	assert.Empty(t, txHashes)
}

func TestScan_MultipleSelectors(t *testing.T) {
	scanner, err := NewScanner(nil, watched, []string{"0x6a761202", "transfer(address,uint256)"})
	require.NoError(t, err)
	assert.Equal(t, []string{"0x6a761202", "0xa9059cbb"}, scanner.Selectors())

	txHashes := scanner.EligibleTxHashes([]common.Trace{
		call("0xaa", "call", "0xa9059cbb00"),
		call("0xbb", "call", "0x6a76120200"),
		call("0xcc", "call", "0x095ea7b300"),
	})
	assert.Equal(t, []string{"0xaa", "0xbb"}, txHashes)
}

func TestScan_FetchFailure(t *testing.T) {
	mockRPC := mocks.NewMockIRPCClient(t)
	window := common.BlockWindow{FromBlock: 1, ToBlock: 2}
	mockRPC.On("TraceFilter", mock.Anything, window, watched).Return(nil, errors.New("connection refused"))

	scanner, err := NewScanner(mockRPC, watched, []string{"0x6a761202"})
	require.NoError(t, err)

	txHashes, err := scanner.Scan(context.Background(), window)
	assert.Nil(t, txHashes)
	assert.ErrorIs(t, err, common.ErrFetchFailure)
	assert.ErrorContains(t, err, "connection refused")
}

func TestNewScanner_InvalidSelectors(t *testing.T) {
	_, err := NewScanner(nil, watched, nil)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = NewScanner(nil, watched, []string{"0x12"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	// a mistyped parameter type must not silently become a selector that matches nothing
	_, err = NewScanner(nil, watched, []string{"execTransaction(address,uint256,bytes,uint8,uint256,uint256,uint256,address,address,byte)"})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}
