//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to a map.
type Mutation func(m map[string]any)

// DtoMap flattens v through its JSON tags and applies muts in order.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		if mut != nil {
			mut(m)
		}
	}
	return m
}

// Field sets key to value, or removes key when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
