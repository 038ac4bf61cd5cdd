package extra_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/extra"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestURL(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("accepts http and https by default", func(t *testing.T) {
		for _, raw := range []string{"http://example.com", "https://example.com/a?b=c#d"} {
			out, err := extra.URL(extra.URLConfig{}).Validate(ctx, raw)
			require.NoError(t, err)
			assert.Equal(t, raw, out)
		}
	})

	t.Run("rejects other schemes", func(t *testing.T) {
		for _, raw := range []string{"ftp://example.com", "example.com/path", "javascript:alert(1)"} {
			_, err := extra.URL(extra.URLConfig{}).Validate(ctx, raw)
			assert.Equal(t, "url.schema", failureKey(t, err), raw)
		}
	})

	t.Run("fills in defaults", func(t *testing.T) {
		v := extra.URL(extra.URLConfig{
			Schemes:       []string{"", "http", "https"},
			DefaultScheme: "https",
			DefaultHost:   "example.com",
		})
		out, err := v.Validate(ctx, "/docs/intro")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs/intro", out)
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err := extra.URL(extra.URLConfig{}).Validate(ctx, "http://[::1")
		assert.Equal(t, "url.format", failureKey(t, err))

		_, err = extra.URL(extra.URLConfig{}).Validate(ctx, validator.Missing)
		assert.Equal(t, "url.format", failureKey(t, err))
	})

	t.Run("existence check rejects other schemes", func(t *testing.T) {
		assert.PanicsWithError(t, `validator url: invalid configuration: existence check not supported for scheme "ftp"`, func() {
			extra.URL(extra.URLConfig{Schemes: []string{"ftp"}, CheckExists: true})
		})
	})
}

func TestURLCheckExists(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var (
		mu      sync.Mutex
		methods []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		methods = append(methods, r.Method)
		mu.Unlock()
		switch r.URL.Path {
		case "/ok":
			w.WriteHeader(http.StatusOK)
		case "/moved":
			http.Redirect(w, r, "/ok", http.StatusFound)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	v := extra.URL(extra.URLConfig{CheckExists: true, Client: srv.Client()})

	t.Run("existing page", func(t *testing.T) {
		out, err := v.Validate(ctx, srv.URL+"/ok")
		require.NoError(t, err)
		assert.Equal(t, srv.URL+"/ok", out)
	})

	t.Run("redirects are followed", func(t *testing.T) {
		_, err := v.Validate(ctx, srv.URL+"/moved")
		require.NoError(t, err)
	})

	t.Run("missing page", func(t *testing.T) {
		_, err := v.Validate(ctx, srv.URL+"/gone")
		assert.Equal(t, "url.not_exists", failureKey(t, err))
		inv, _ := validator.AsInvalid(err)
		assert.Equal(t, http.StatusNotFound, inv.Params["status"])
	})

	t.Run("unreachable host", func(t *testing.T) {
		closed := httptest.NewServer(http.NotFoundHandler())
		addr := closed.URL
		closed.Close()

		_, err := v.Validate(ctx, addr+"/ok")
		assert.Equal(t, "url.http_error", failureKey(t, err))
	})

	t.Run("cancelled context aborts", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := v.Validate(cancelled, srv.URL+"/ok")
		require.ErrorIs(t, err, context.Canceled)
	})

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, methods, http.MethodHead)
	assert.NotContains(t, methods, http.MethodGet)
}
