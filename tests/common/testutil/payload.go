//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a JSON payload before it is sent.
type Mutation func(map[string]any)

// Payload turns a request DTO into its JSON object form and applies muts,
// so tests can send bodies the DTO type could not express.
func Payload(t *testing.T, dto any, muts ...Mutation) map[string]any {
	t.Helper()
	raw, err := json.Marshal(dto)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}
