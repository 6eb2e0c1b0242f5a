// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"strings"
)

// Method selects how two vectorized RDMs are compared.
// The zero value is not a valid Method.
type Method int

const (
	// Spearman rank correlation with a two-sided p-value.
	Spearman Method = iota + 1

	// Pearson linear correlation with a two-sided p-value.
	Pearson

	// Kendall tau-b rank correlation with a two-sided p-value.
	Kendall

	// Similarity is cosine similarity rescaled to [0,1] as 0.5+0.5·cos.
	Similarity

	// Distance is the Euclidean norm of the difference.
	Distance
)

var methodNames = map[Method]string{
	Spearman:   "spearman",
	Pearson:    "pearson",
	Kendall:    "kendall",
	Similarity: "similarity",
	Distance:   "distance",
}

// Methods lists every valid Method in declaration order.
func Methods() []Method {
	return []Method{Spearman, Pearson, Kendall, Similarity, Distance}
}

// ParseMethod maps a case-insensitive name to its Method.
// Errors: ErrUnknownMethod.
func ParseMethod(s string) (Method, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for m, n := range methodNames {
		if n == name {
			return m, nil
		}
	}

	return 0, compareErrorf(fmt.Sprintf("ParseMethod(%q)", s), ErrUnknownMethod)
}

// Valid reports whether m is one of the declared methods.
func (m Method) Valid() bool {
	_, ok := methodNames[m]

	return ok
}

// IsCorrelation reports whether m yields a (coefficient, p-value) pair.
// Similarity and Distance fill only the first result slot.
func (m Method) IsCorrelation() bool {
	return m == Spearman || m == Pearson || m == Kendall
}

// String returns the lowercase method name.
func (m Method) String() string {
	if n, ok := methodNames[m]; ok {
		return n
	}

	return fmt.Sprintf("unknown(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, compareErrorf("MarshalText", ErrUnknownMethod)
	}

	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Method can be
// decoded straight from configuration.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed

	return nil
}
