package commands

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"ndagen/internal/docx"
	"ndagen/internal/domain"
	"ndagen/internal/port"
)

func publishTemplateCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "publish-template FILE",
		Short: "Validate a local template and upload it to the configured bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if key == "" {
				key = cfg.Template.S3Key
			}
			if key == "" {
				return fmt.Errorf("no object key: pass --key or set NDAGEN_TEMPLATE_S3_KEY")
			}

			tpl, err := docx.Load(args[0], cfg.Template.Placeholders()...)
			if err != nil {
				return err
			}
			storage, err := requireBucket(ctx)
			if err != nil {
				return err
			}

			data := tpl.Bytes()
			out, err := storage.Upload(ctx, port.UploadInput{
				Bucket:      cfg.S3.Bucket,
				Key:         key,
				Body:        bytes.NewReader(data),
				ContentType: domain.DocxContentType,
				Size:        int64(len(data)),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %s to s3://%s/%s (%s)\n", args[0], cfg.S3.Bucket, key, out.Location)
			return nil
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "object key (default NDAGEN_TEMPLATE_S3_KEY)")
	return cmd
}
