package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fadilmartias/useresume-gateway/internal/util"
)

func newEncodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode <path>",
		Short: "Base64 encode a local document for the file field of a parse call",
		Long: `Check a local PDF or DOCX and print it base64 encoded on stdout.

PDFs are opened locally to count pages before anything is uploaded.
Documents over 4MB are rejected; send those by file_url instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, info, err := util.EncodeDocument(args[0])
			if err != nil {
				return err
			}
			opts.logger.Info().
				Str("format", info.Format).
				Int("pages", info.Pages).
				Int("bytes", info.SizeBytes).
				Msg("document ready")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return err
		},
	}
}
