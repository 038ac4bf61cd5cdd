package extra

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// DefaultURLTimeout bounds existence checks made with the default client.
const DefaultURLTimeout = 10 * time.Second

// URLConfig configures URL.
type URLConfig struct {
	// Schemes lists the accepted schemes. Defaults to http and https. Add
	// "" to accept URLs without a scheme.
	Schemes []string
	// DefaultScheme is filled in for accepted URLs without a scheme.
	DefaultScheme string
	// DefaultHost is filled in for URLs without a host.
	DefaultHost string
	// CheckExists sends a HEAD request and requires a 2xx or 3xx status.
	// Only http and https schemes may be accepted then.
	CheckExists bool
	// Client sends existence checks. Defaults to a client with
	// DefaultURLTimeout.
	Client *http.Client
}

// URL parses a URL, checks its scheme and returns it in normalized form,
// with the default scheme and host filled in.
func URL(cfg URLConfig, opts ...validator.Option) validator.Validator {
	schemes := cfg.Schemes
	if len(schemes) == 0 {
		schemes = []string{"http", "https"}
	}
	if cfg.CheckExists {
		for _, scheme := range schemes {
			if scheme != "http" && scheme != "https" {
				panic(&validator.ConfigError{
					Validator: "url",
					Err:       fmt.Errorf("existence check not supported for scheme %q", scheme),
				})
			}
		}
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultURLTimeout}
	}

	s := validator.NewSettings(opts...)
	return validator.Func(func(ctx context.Context, value any) (any, error) {
		str, ok := value.(string)
		if !ok {
			return nil, s.Fail(ctx, "url.format", "Invalid URL.", nil)
		}
		u, err := url.Parse(str)
		if err != nil {
			return nil, s.Fail(ctx, "url.format", "Invalid URL.", nil).WithCause(err)
		}
		if !slices.Contains(schemes, u.Scheme) {
			return nil, s.Fail(ctx, "url.schema", "URL scheme not allowed.", map[string]any{"scheme": u.Scheme})
		}
		if u.Scheme == "" && cfg.DefaultScheme != "" {
			u.Scheme = cfg.DefaultScheme
		}
		if u.Host == "" && cfg.DefaultHost != "" {
			u.Host = cfg.DefaultHost
		}
		normalized := u.String()

		if cfg.CheckExists {
			if err := checkExists(ctx, client, normalized); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				var status statusError
				if errors.As(err, &status) {
					return nil, s.Fail(ctx, "url.not_exists", "URL does not exist.",
						map[string]any{"status": int(status)})
				}
				return nil, s.Fail(ctx, "url.http_error", "Could not reach URL.", nil).WithCause(err)
			}
		}
		return normalized, nil
	})
}

type statusError int

func (e statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", int(e))
}

func checkExists(ctx context.Context, client *http.Client, target string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return statusError(resp.StatusCode)
	}
	return nil
}
