package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"ndagen/internal/resolver"
)

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve COMPANY...",
		Short: "Look up registered addresses without generating anything",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chain, _, err := resolver.Build(cfg, logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(chain.Names()) == 0 {
				fmt.Fprintln(out, "no resolvers configured; set NDAGEN_AMAP_KEY or NDAGEN_DIRECTORY_PATH")
			}

			for _, name := range args {
				ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
				addr, ok := chain.Resolve(ctx, name)
				cancel()
				if !ok {
					addr = "(not found)"
				}
				fmt.Fprintf(out, "%s\t%s\n", strings.TrimSpace(name), addr)
			}
			return nil
		},
	}
	return cmd
}
