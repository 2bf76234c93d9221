package common

import "strings"

type RawTraces = []map[string]interface{}

type Trace struct {
	BlockNumber      uint64
	TransactionHash  string
	TransactionIndex uint64
	TraceType        string
	CallType         string
	FromAddress      string
	ToAddress        string
	Input            string
	Error            string
}

const (
	TraceTypeCall = "call"
	CallTypeCall  = "call"
)

// IsPlainCall reports whether the trace is a CALL frame, excluding create, suicide,
// reward and delegatecall/staticcall frames.
func (t Trace) IsPlainCall() bool {
	return t.TraceType == TraceTypeCall && t.CallType == CallTypeCall
}

// Selector returns the lowercased 0x-prefixed 4-byte function selector of the call input,
// or an empty string when the input is too short to carry one.
func (t Trace) Selector() string {
	if len(t.Input) < 10 {
		return ""
	}
	return strings.ToLower(t.Input[:10])
}
