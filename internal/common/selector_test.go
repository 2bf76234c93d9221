package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSelector_Hex(t *testing.T) {
	selector, err := ResolveSelector("0x6A761202")
	require.NoError(t, err)
	assert.Equal(t, "0x6a761202", selector)
}

func TestResolveSelector_Signature(t *testing.T) {
	tests := []struct {
		signature string
		expected  string
	}{
		{"transfer(address,uint256)", "0xa9059cbb"},
		{"transfer(address to, uint256 amount)", "0xa9059cbb"},
		{"approve(address _spender, uint256 _value)", "0x095ea7b3"},
		{"transfer(address to, uint amount)", "0xa9059cbb"},
		{
			"execTransaction(address to, uint256 value, bytes calldata data, uint8 operation, uint256 safeTxGas, uint256 baseGas, uint256 gasPrice, address gasToken, address refundReceiver, bytes memory signatures)",
			"0x6a761202",
		},
	}

	for _, tt := range tests {
		selector, err := ResolveSelector(tt.signature)
		require.NoError(t, err, tt.signature)
		assert.Equal(t, tt.expected, selector, tt.signature)
	}
}

func TestResolveSelector_Invalid(t *testing.T) {
	for _, value := range []string{
		"",
		"0x6a76",
		"6a761202",
		"0xzzzzzzzz",
		"transfer(address",
		"transfer(address,,uint256)",
		"foo(notatype)",
		"transfer(address to, bytes33 data)",
		"transfer(adress,uint256)",
		"submit((uint256 a, notatype b)[] items)",
		"transfer(address to amount)",
	} {
		_, err := ResolveSelector(value)
		assert.ErrorIs(t, err, ErrInvalidArgument, value)
	}
}

func TestConstructFunctionABI(t *testing.T) {
	tests := []struct {
		signature string
		sig       string
	}{
		{"allocatedWithdrawal((bytes a,uint256 b, address c)[] _withdrawals, bool flag)", "allocatedWithdrawal((bytes,uint256,address)[],bool)"},
		{"pair((uint256,address) p, (bool,(uint8,bytes32)) nested)", "pair((uint256,address),(bool,(uint8,bytes32)))"},
		{"pay(address payable to, string memory note)", "pay(address,string)"},
		{"batch(uint[] amounts, int[2] deltas)", "batch(uint256[],int256[2])"},
		{"noArgs()", "noArgs()"},
	}
	for _, tt := range tests {
		method, err := ConstructFunctionABI(tt.signature)
		require.NoError(t, err, tt.signature)
		assert.Equal(t, tt.sig, method.Sig, tt.signature)
		assert.Len(t, method.ID, 4)
	}
}
