// internal/api/types/response_test.go
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginatedResponse(t *testing.T) {
	t.Run("WrapsPage", func(t *testing.T) {
		resp := NewPaginatedResponse([]string{"a", "b"}, 10, 20, 42)

		assert.Equal(t, []string{"a", "b"}, resp.Data)
		assert.Equal(t, 10, resp.Limit)
		assert.Equal(t, 20, resp.Offset)
		assert.Equal(t, int64(42), resp.TotalCount)
	})

	t.Run("NilPageSerializesAsEmptyArray", func(t *testing.T) {
		resp := NewPaginatedResponse[string](nil, 10, 0, 0)

		out, err := json.Marshal(resp)
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":[],"limit":10,"offset":0,"total_count":0}`, string(out))
	})
}
