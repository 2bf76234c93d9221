package common

import (
	"strings"

	"github.com/holiman/uint256"
)

const weiDecimals = 18

var weiPerEther = uint256.NewInt(1_000_000_000_000_000_000)

// FormatEther renders a wei amount as an exact decimal ether string with trailing
// fractional zeros trimmed, e.g. 1500000000000000000 -> "1.5".
func FormatEther(wei *uint256.Int) string {
	if wei == nil {
		return "0"
	}
	quo, rem := new(uint256.Int), new(uint256.Int)
	quo.DivMod(wei, weiPerEther, rem)
	if rem.IsZero() {
		return quo.Dec()
	}
	frac := rem.Dec()
	frac = strings.Repeat("0", weiDecimals-len(frac)) + frac
	return quo.Dec() + "." + strings.TrimRight(frac, "0")
}
