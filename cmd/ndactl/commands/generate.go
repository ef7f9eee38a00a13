package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ndagen/internal/domain"
	"ndagen/internal/repository/memory"
	"ndagen/internal/resolver"
	"ndagen/internal/service"
)

func generateCmd() *cobra.Command {
	var (
		company  string
		address  string
		outDir   string
		noLookup bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Fill the template for one company and write the .docx",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			storage, err := objectStorage(ctx)
			if err != nil {
				return err
			}
			templates, err := service.LoadTemplateService(ctx, &cfg.Template, &cfg.S3, storage)
			if err != nil {
				return err
			}
			chain, _, err := resolver.Build(cfg, logger)
			if err != nil {
				return err
			}
			if noLookup {
				cfg.Flow.AddressMode = domain.AddressModeManual
			}

			repo := memory.NewSessionRepo(0, 0)
			defer repo.Close()
			sessions := service.NewSessionService(repo, templates, chain, cfg, logger)

			view, err := sessions.Create(ctx)
			if err != nil {
				return err
			}
			view, err = sessions.SetCompanyName(ctx, view.ID, company)
			if err != nil {
				return err
			}
			if address != "" {
				if view, err = sessions.SetAddress(ctx, view.ID, address); err != nil {
					return err
				}
			}
			if !view.Ready {
				return errors.New("no address found for this company; pass --address")
			}

			doc, err := sessions.Generate(ctx, view.ID)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(outDir, doc.FileName)
			if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "company: %s\n", view.CompanyName)
			fmt.Fprintf(out, "address: %s (%s)\n", view.Address, view.AddressSource)
			fmt.Fprintf(out, "written: %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&company, "company", "c", "", "company name")
	cmd.Flags().StringVarP(&address, "address", "a", "", "registered address (skips confirmation of the looked-up one)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&noLookup, "no-lookup", false, "do not look the address up")
	_ = cmd.MarkFlagRequired("company")
	return cmd
}
