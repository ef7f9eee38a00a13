package resolver

import (
	"fmt"

	"go.uber.org/zap"

	"ndagen/internal/config"
	"ndagen/internal/port"
	"ndagen/internal/resolver/amap"
	"ndagen/internal/resolver/directory"
)

// Build assembles the lookup chain from configuration: the local directory
// first when configured, then the online place search when a key is set.
// The returned directory is nil when none is configured.
func Build(cfg *config.Config, logger *zap.Logger) (*Chain, *directory.Directory, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		resolvers []port.AddressResolver
		names     []string
		dir       *directory.Directory
	)

	switch {
	case cfg.Directory.Path != "":
		d, err := directory.Load(cfg.Directory.Path, cfg.Directory.Sheet)
		if err != nil {
			return nil, nil, fmt.Errorf("loading company directory: %w", err)
		}
		logger.Info("company directory loaded", zap.String("path", cfg.Directory.Path), zap.Int("entries", d.Len()))
		dir = d
	case cfg.Directory.Demo:
		dir = directory.New(directory.DemoEntries())
		logger.Info("using demo company directory", zap.Int("entries", dir.Len()))
	}
	if dir != nil {
		resolvers = append(resolvers, dir)
		names = append(names, "directory")
	}

	if cfg.Amap.APIKey != "" {
		resolvers = append(resolvers, amap.NewResolver(&cfg.Amap, logger))
		names = append(names, "amap")
	} else {
		logger.Warn("NDAGEN_AMAP_KEY not set; online address lookup disabled")
	}

	return NewChain(resolvers, names, logger), dir, nil
}
