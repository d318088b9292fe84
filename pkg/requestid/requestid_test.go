package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auroraair/formkit/pkg/requestid"
)

func serve(t *testing.T, incoming string) (header, inContext string) {
	t.Helper()
	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inContext = requestid.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Header().Get(requestid.Header), inContext
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates an id", func(t *testing.T) {
		t.Parallel()
		header, ctxID := serve(t, "")
		_, err := uuid.Parse(header)
		require.NoError(t, err)
		assert.Equal(t, header, ctxID)
	})

	t.Run("keeps a valid id", func(t *testing.T) {
		t.Parallel()
		header, ctxID := serve(t, "req_42-abc")
		assert.Equal(t, "req_42-abc", header)
		assert.Equal(t, "req_42-abc", ctxID)
	})

	t.Run("replaces unsafe ids", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"<script>", "a b", strings.Repeat("x", 129)} {
			header, _ := serve(t, bad)
			assert.NotEqual(t, bad, header)
			assert.True(t, requestid.Valid(header))
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := requestid.LoggerExtractor()
	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "abc"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
