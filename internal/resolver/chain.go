package resolver

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"ndagen/internal/port"
)

// Chain tries resolvers in order and returns the first non-empty address.
// It implements port.AddressResolver.
type Chain struct {
	resolvers []port.AddressResolver
	names     []string
	logger    *zap.Logger
}

// NewChain creates a Chain from an ordered list of resolvers and their names.
func NewChain(resolvers []port.AddressResolver, names []string, logger *zap.Logger) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{
		resolvers: resolvers,
		names:     names,
		logger:    logger.Named("resolver"),
	}
}

// Names returns the resolver names in lookup order.
func (c *Chain) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Chain) Resolve(ctx context.Context, companyName string) (string, bool) {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return "", false
	}

	for i, r := range c.resolvers {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("lookup abandoned", zap.String("company", name), zap.Error(err))
			return "", false
		}
		addr, ok := r.Resolve(ctx, name)
		addr = strings.TrimSpace(addr)
		if ok && addr != "" {
			c.logger.Info("address resolved",
				zap.String("company", name),
				zap.String("resolver", c.nameAt(i)))
			return addr, true
		}
		c.logger.Debug("resolver miss", zap.String("company", name), zap.String("resolver", c.nameAt(i)))
	}
	return "", false
}

func (c *Chain) nameAt(i int) string {
	if i < len(c.names) {
		return c.names[i]
	}
	return "unnamed"
}
