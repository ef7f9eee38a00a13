package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ndagen/internal/service"
)

func checkTemplateCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "check-template",
		Short: "Show where placeholders occur in the template",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			storage, err := objectStorage(ctx)
			if err != nil {
				return err
			}
			svc, err := service.InspectTemplate(ctx, &cfg.Template, &cfg.S3, storage)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			status := svc.Status()
			fmt.Fprintf(out, "template: %s (%.1f KB)\n", status.Source, status.SizeKB)
			if status.ModifiedAt != nil {
				fmt.Fprintf(out, "modified: %s\n", status.ModifiedAt.Format("2006-01-02 15:04"))
			}
			for _, p := range cfg.Template.Placeholders() {
				mark := "missing"
				if status.Placeholders[p] {
					mark = "ok"
				}
				fmt.Fprintf(out, "  [%s] %s\n", mark, p)
			}

			report := svc.Locate(text)
			fmt.Fprintf(out, "\nsearching for: %s\n", report.Target)
			if report.Found {
				for _, m := range report.Matches {
					fmt.Fprintf(out, "  paragraph %d: %s\n", m.Index+1, m.Text)
				}
			} else {
				fmt.Fprintln(out, "  not found; first paragraphs:")
				for i, p := range report.Preview {
					fmt.Fprintf(out, "  %d: %s\n", i+1, p)
				}
			}

			if !status.PlaceholdersReady {
				return fmt.Errorf("template %s is missing required placeholders", status.Source)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "text to search for (default: the company name placeholder)")
	return cmd
}
