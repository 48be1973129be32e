package e2etests

import (
	"encoding/json"
	"strings"
)

// Normalizer rewrites command output so it does not depend on where the
// sandbox lives.
type Normalizer struct {
	sandbox string
}

// NewNormalizer creates a Normalizer for one sandbox.
func NewNormalizer(sandbox string) *Normalizer {
	return &Normalizer{sandbox: sandbox}
}

// NormalizeText replaces the sandbox path with $SANDBOX.
func (n *Normalizer) NormalizeText(s string) string {
	if n.sandbox == "" {
		return s
	}
	return strings.ReplaceAll(s, n.sandbox, "$SANDBOX")
}

// NormalizeJSON pretty-prints JSON with sorted keys. Invalid JSON is returned
// as normalized text so the mismatch shows up in the diff.
func (n *Normalizer) NormalizeJSON(input []byte) string {
	var v interface{}
	if err := json.Unmarshal(input, &v); err != nil {
		return n.NormalizeText(string(input))
	}
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return n.NormalizeText(string(input))
	}
	return n.NormalizeText(string(pretty))
}
