package common

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	hexSelectorRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{8}$`)
	signatureRegex   = regexp.MustCompile(`^(\w+)\((.*)\)$`)
)

// keywords allowed between a parameter type and its name
var paramModifiers = map[string]bool{
	"memory":   true,
	"calldata": true,
	"storage":  true,
	"payable":  true,
	"indexed":  true,
}

// ResolveSelector accepts either a 0x-prefixed 4-byte selector or a Solidity function
// signature such as "transfer(address to, uint256 amount)" and returns the lowercased selector.
// Every parameter type of a signature must be a valid ABI type.
func ResolveSelector(value string) (string, error) {
	value = strings.TrimSpace(value)
	if hexSelectorRegex.MatchString(value) {
		return strings.ToLower(value), nil
	}
	method, err := ConstructFunctionABI(value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid selector or function signature %q: %v", ErrInvalidArgument, value, err)
	}
	return hexutil.Encode(method.ID), nil
}

func ConstructFunctionABI(signature string) (*abi.Method, error) {
	matches := signatureRegex.FindStringSubmatch(strings.TrimSpace(signature))
	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid function signature format")
	}

	functionName := matches[1]
	params := matches[2]

	inputs, err := parseParamsToAbiArguments(params)
	if err != nil {
		return nil, fmt.Errorf("failed to parse params to abi arguments '%s': %v", params, err)
	}

	function := abi.NewMethod(functionName, functionName, abi.Function, "", false, false, inputs, nil)
	return &function, nil
}

func parseParamsToAbiArguments(params string) (abi.Arguments, error) {
	components, err := marshalParamArguments(params, "")
	if err != nil {
		return nil, err
	}
	inputs := make(abi.Arguments, 0, len(components))
	for _, component := range components {
		argType, err := abi.NewType(component.Type, component.InternalType, component.Components)
		if err != nil {
			return nil, fmt.Errorf("failed to parse type '%s': %v", component.Type, err)
		}
		inputs = append(inputs, abi.Argument{Name: component.Name, Type: argType})
	}
	return inputs, nil
}

func marshalParamArguments(params string, namePrefix string) ([]abi.ArgumentMarshaling, error) {
	paramList, err := splitParams(params)
	if err != nil {
		return nil, err
	}
	components := make([]abi.ArgumentMarshaling, 0, len(paramList))
	for idx, param := range paramList {
		component, err := marshalParamArgument(param, fmt.Sprintf("%s%d", namePrefix, idx))
		if err != nil {
			return nil, fmt.Errorf("failed to parse param '%s': %v", param, err)
		}
		components = append(components, component)
	}
	return components, nil
}

func marshalParamArgument(param string, fallbackName string) (abi.ArgumentMarshaling, error) {
	if param == "" {
		return abi.ArgumentMarshaling{}, fmt.Errorf("empty parameter")
	}
	if !isTuple(param) {
		tokens := strings.Fields(param)
		name, err := argName(tokens[1:], fallbackName)
		if err != nil {
			return abi.ArgumentMarshaling{}, err
		}
		return abi.ArgumentMarshaling{Name: name, Type: normalizeType(tokens[0])}, nil
	}

	// tuple: "(type a, type b)[] name"
	closeIdx := matchingParen(param)
	if closeIdx == -1 {
		return abi.ArgumentMarshaling{}, fmt.Errorf("invalid tuple format")
	}
	components, err := marshalParamArguments(param[1:closeIdx], "field")
	if err != nil {
		return abi.ArgumentMarshaling{}, err
	}
	rest := strings.Fields(param[closeIdx+1:])
	typ := "tuple"
	if len(rest) > 0 && strings.HasPrefix(rest[0], "[") {
		typ += rest[0]
		rest = rest[1:]
	}
	name, err := argName(rest, fallbackName)
	if err != nil {
		return abi.ArgumentMarshaling{}, err
	}
	return abi.ArgumentMarshaling{Name: name, Type: typ, Components: components}, nil
}

func argName(tokens []string, fallbackName string) (string, error) {
	var names []string
	for _, token := range tokens {
		if !paramModifiers[token] {
			names = append(names, token)
		}
	}
	switch len(names) {
	case 0:
		return fallbackName, nil
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("unexpected tokens %v", names)
	}
}

// normalizeType expands the uint and int aliases, which have no ABI encoding of their own.
func normalizeType(typ string) string {
	base, suffix := typ, ""
	if i := strings.Index(typ, "["); i != -1 {
		base, suffix = typ[:i], typ[i:]
	}
	if base == "uint" || base == "int" {
		base += "256"
	}
	return base + suffix
}

func isTuple(param string) bool {
	return strings.HasPrefix(param, "(")
}

func matchingParen(param string) int {
	depth := 0
	for i, r := range param {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitParams splits on top-level commas; nested tuple lists stay intact.
func splitParams(params string) ([]string, error) {
	var result []string
	depth := 0
	start := 0
	for i, r := range params {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case ',':
			if depth == 0 {
				result = append(result, strings.TrimSpace(params[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced parentheses")
	}
	if last := strings.TrimSpace(params[start:]); last != "" || len(result) > 0 {
		result = append(result, last)
	}
	return result, nil
}
