package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fadilmartias/useresume-gateway/internal/errors"
	"github.com/fadilmartias/useresume-gateway/internal/response"
	"github.com/fadilmartias/useresume-gateway/internal/usecase"
	"github.com/fadilmartias/useresume-gateway/internal/util"
)

var errOperationFailed = errors.New("operation failed")

func newCallCmd(opts *rootOptions) *cobra.Command {
	var (
		input    string
		document string
	)
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Run one tool with a JSON payload",
		Long: `Run one tool and print its result envelope.

The payload is read from --input (a file, or - for stdin). For parse tools,
--document encodes a local PDF or DOCX into the file field.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tool, ok := usecase.Lookup(args[0])
			if !ok {
				return errors.WithHintf(errors.Newf("unknown tool %q", args[0]),
					"run 'useresume tools' to list them")
			}
			raw, err := readPayload(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}
			if document != "" {
				if raw, err = attachDocument(opts, raw, document); err != nil {
					return err
				}
			}
			uc, err := opts.usecase()
			if err != nil {
				return err
			}
			return printEnvelope(cmd, tool.Handler(uc)(context.Background(), raw))
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "JSON payload file, or - for stdin")
	cmd.Flags().StringVar(&document, "document", "", "Local document to send as base64 (parse tools)")
	return cmd
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <run-id>",
		Short: "Check the status of a run (free)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := json.Marshal(map[string]string{"run_id": args[0]})
			if err != nil {
				return err
			}
			uc, err := opts.usecase()
			if err != nil {
				return err
			}
			return printEnvelope(cmd, uc.GetRunStatus(context.Background(), raw))
		},
	}
}

func readPayload(stdin io.Reader, input string) (json.RawMessage, error) {
	switch input {
	case "":
		return json.RawMessage("{}"), nil
	case "-":
		b, err := io.ReadAll(stdin)
		return b, errors.Wrap(err, "read stdin")
	}
	b, err := os.ReadFile(input)
	return b, errors.Wrapf(err, "read %s", input)
}

func attachDocument(opts *rootOptions, raw json.RawMessage, path string) (json.RawMessage, error) {
	encoded, info, err := util.EncodeDocument(path)
	if err != nil {
		return nil, err
	}
	opts.logger.Info().Str("path", info.Path).Str("format", info.Format).Int("pages", info.Pages).Int("bytes", info.SizeBytes).Msg("document attached")

	payload := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return nil, errors.Wrap(err, "payload must be a JSON object to attach a document")
		}
	}
	payload["file"] = encoded
	return json.Marshal(payload)
}

func printEnvelope(cmd *cobra.Command, env response.Envelope) error {
	out, err := json.MarshalIndent(json.RawMessage(env.JSON()), "", "  ")
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(append(out, '\n')); err != nil {
		return err
	}
	if !env.Success {
		return errOperationFailed
	}
	return nil
}
