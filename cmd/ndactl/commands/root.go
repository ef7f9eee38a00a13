// Package commands implements the ndactl operator CLI.
package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ndagen/internal/config"
	"ndagen/internal/logging"
	"ndagen/internal/port"
	s3storage "ndagen/internal/storage/s3"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	templatePath string
	verbose      bool
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ndactl",
		Short:         "Operator tools for the agreement generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			if templatePath != "" {
				loaded.Template.Path = templatePath
				loaded.Template.S3Key = ""
			}
			if !verbose {
				loaded.Log.Level = "warn"
			}
			l, err := logging.New(loaded.Log)
			if err != nil {
				return err
			}
			cfg, logger = loaded, l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&templatePath, "template", "", "local template path (overrides NDAGEN_TEMPLATE_PATH and the S3 key)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at the configured level instead of warn")

	root.AddCommand(
		checkTemplateCmd(),
		generateCmd(),
		publishTemplateCmd(),
		resolveCmd(),
		directoryCmd(),
	)
	return root
}

// objectStorage returns the S3 client when the template lives in a bucket,
// or nil when it is a local file.
func objectStorage(ctx context.Context) (port.ObjectStorage, error) {
	if !cfg.S3.Enabled(&cfg.Template) {
		return nil, nil
	}
	return s3storage.NewS3Client(ctx, &cfg.S3)
}

// requireBucket returns an S3 client for commands that only make sense with
// object storage configured.
func requireBucket(ctx context.Context) (port.ObjectStorage, error) {
	if cfg.S3.Bucket == "" {
		return nil, errors.New("NDAGEN_S3_BUCKET is not set")
	}
	storage, err := s3storage.NewS3Client(ctx, &cfg.S3)
	if err != nil {
		return nil, fmt.Errorf("initializing S3 client: %w", err)
	}
	return storage, nil
}
