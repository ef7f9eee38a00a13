package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndagen/internal/resolver/directory"
)

func directoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "directory",
		Short: "Manage the known-company workbook",
	}
	cmd.AddCommand(directoryInitCmd(), directoryListCmd())
	return cmd
}

func directoryInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init FILE",
		Short: "Write a workbook seeded with the demo companies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := directory.DemoEntries()
			if err := directory.Save(args[0], entries); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d companies to %s\n", len(entries), args[0])
			return nil
		},
	}
}

func directoryListCmd() *cobra.Command {
	var sheet string
	cmd := &cobra.Command{
		Use:   "list [FILE]",
		Short: "Print the companies of a workbook (default NDAGEN_DIRECTORY_PATH)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfg.Directory.Path
			if len(args) == 1 {
				path = args[0]
			}
			if sheet == "" {
				sheet = cfg.Directory.Sheet
			}

			var dir *directory.Directory
			if path == "" {
				dir = directory.New(directory.DemoEntries())
			} else {
				loaded, err := directory.Load(path, sheet)
				if err != nil {
					return err
				}
				dir = loaded
			}

			out := cmd.OutOrStdout()
			for _, e := range dir.Entries() {
				fmt.Fprintf(out, "%s\t%s\n", e.Name, e.Address)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name (default: first sheet)")
	return cmd
}
