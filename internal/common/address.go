package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	gethCommon "github.com/ethereum/go-ethereum/common"
)

// ParseAddresses reads one hex address per line. Blank lines and surrounding
// whitespace are ignored and repeated addresses are kept once. Addresses are
// returned lowercased, in file order.
func ParseAddresses(r io.Reader) ([]string, error) {
	addresses := NewSet[string]()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		value := strings.TrimSpace(scanner.Text())
		if value == "" {
			continue
		}
		if !gethCommon.IsHexAddress(value) {
			return nil, fmt.Errorf("%w: line %d: %q is not an address", ErrInvalidArgument, line, value)
		}
		addresses.Add(strings.ToLower(gethCommon.HexToAddress(value).Hex()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read addresses: %v", ErrInvalidArgument, err)
	}
	if addresses.Size() == 0 {
		return nil, fmt.Errorf("%w: no addresses found", ErrInvalidArgument)
	}
	return addresses.List(), nil
}

func ReadAddressFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open address file: %v", ErrInvalidArgument, err)
	}
	defer file.Close()
	return ParseAddresses(file)
}
