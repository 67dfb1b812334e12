// SPDX-License-Identifier: MIT

package normalize

import (
	"strconv"
	"strings"
)

// Method selects one of the supported transforms. It implements
// encoding.TextMarshaler/TextUnmarshaler so pipeline configs can name it.
type Method int

const (
	// MethodCPM is counts-per-million.
	MethodCPM Method = iota
	// MethodLog2CPM is log2(CPM + pseudocount).
	MethodLog2CPM
)

const opParseMethod = "ParseMethod"

var methodNames = [...]string{
	MethodCPM:     "cpm",
	MethodLog2CPM: "log2cpm",
}

// String returns the canonical lower-case name, or "Method(n)" for unknown values.
func (m Method) String() string {
	if m >= 0 && int(m) < len(methodNames) {
		return methodNames[m]
	}

	return "Method(" + strconv.Itoa(int(m)) + ")"
}

// ParseMethod resolves a name case-insensitively, ignoring surrounding space.
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, known := range methodNames {
		if name == known {
			return Method(i), nil
		}
	}

	return 0, normalizeErrorf(opParseMethod, ErrUnknownMethod)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(methodNames) {
		return nil, normalizeErrorf("MarshalText", ErrUnknownMethod)
	}

	return []byte(methodNames[m]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
