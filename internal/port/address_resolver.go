package port

import "context"

// AddressResolver looks up the registered address of a company. A miss,
// including any provider failure, is reported as ok == false and never as an
// error: the caller falls back to manual entry.
type AddressResolver interface {
	Resolve(ctx context.Context, companyName string) (address string, ok bool)
}

// AddressResolverFunc adapts a function to AddressResolver.
type AddressResolverFunc func(ctx context.Context, companyName string) (string, bool)

// Resolve calls f.
func (f AddressResolverFunc) Resolve(ctx context.Context, companyName string) (string, bool) {
	return f(ctx, companyName)
}
