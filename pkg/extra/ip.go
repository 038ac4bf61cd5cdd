package extra

import (
	"context"
	"net/netip"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// IP accepts dotted-decimal IPv4 addresses such as "192.168.0.1". Octets
// with leading zeros are rejected.
func IP(opts ...validator.Option) validator.Validator {
	return ipValidator(func(addr netip.Addr) bool { return addr.Is4() }, opts)
}

// AnyIP accepts IPv4 and IPv6 addresses.
func AnyIP(opts ...validator.Option) validator.Validator {
	return ipValidator(func(netip.Addr) bool { return true }, opts)
}

func ipValidator(accept func(netip.Addr) bool, opts []validator.Option) validator.Validator {
	s := validator.NewSettings(opts...)
	return validator.Func(func(ctx context.Context, value any) (any, error) {
		if str, ok := value.(string); ok {
			if addr, err := netip.ParseAddr(str); err == nil && addr.Zone() == "" && accept(addr) {
				return value, nil
			}
		}
		return nil, s.Fail(ctx, "ip", "Invalid IP address.", nil)
	})
}
