package extra

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

var (
	usernameRegex = regexp.MustCompile(`^[^ \t\n\r@<>()]+$`)
	domainRegex   = regexp.MustCompile(`(?i)^[a-z0-9][a-z0-9.\-_]*\.[a-z]+$`)
)

// Resolver looks up the DNS records EmailWithDNS needs. *net.Resolver
// implements it.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// Email checks the syntax of an email address. The value is returned
// unchanged.
func Email(opts ...validator.Option) validator.Validator {
	return email(nil, opts)
}

// EmailWithDNS is like Email, but also requires the domain to have MX
// records, or address records when there are none. A nil resolver uses
// net.DefaultResolver. Lookup failures fail with key "email.socket_error",
// a domain without records with "email.domain_error".
func EmailWithDNS(resolver Resolver, opts ...validator.Option) validator.Validator {
	if resolver == nil {
		resolver = net.DefaultResolver
	}
	return email(resolver, opts)
}

func email(resolver Resolver, opts []validator.Option) validator.Validator {
	s := validator.NewSettings(opts...)
	return validator.Func(func(ctx context.Context, value any) (any, error) {
		str, ok := value.(string)
		if !ok {
			return nil, s.Fail(ctx, "email.format", "Invalid email address format.", nil)
		}
		username, domain, found := strings.Cut(str, "@")
		if !found {
			return nil, s.Fail(ctx, "email.format", "Invalid email address format.", nil)
		}
		if !usernameRegex.MatchString(username) {
			return nil, s.Fail(ctx, "email.username", "Invalid email username.", nil)
		}
		if !domainRegex.MatchString(domain) {
			return nil, s.Fail(ctx, "email.domain", "Invalid email domain.", nil)
		}

		if resolver != nil {
			if err := lookupDomain(ctx, resolver, domain); err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				if errors.Is(err, ErrNoRecords) {
					return nil, s.Fail(ctx, "email.domain_error", "No such domain.",
						map[string]any{"domain": domain}).WithCause(err)
				}
				return nil, s.Fail(ctx, "email.socket_error", "Could not verify the email domain.",
					map[string]any{"domain": domain}).WithCause(err)
			}
		}
		return value, nil
	})
}

func lookupDomain(ctx context.Context, resolver Resolver, domain string) error {
	mx, err := resolver.LookupMX(ctx, domain)
	if err != nil && !isNotFound(err) {
		return err
	}
	if len(mx) > 0 {
		return nil
	}

	hosts, err := resolver.LookupHost(ctx, domain)
	if err != nil && !isNotFound(err) {
		return err
	}
	if len(hosts) == 0 {
		return ErrNoRecords
	}
	return nil
}

func isNotFound(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr) && dnsErr.IsNotFound
}
