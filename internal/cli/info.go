package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ryo246912/gh-pr-review/internal/ui"
)

func NewInfoCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info <pr-url-or-number>",
		Short: "Fetch PR metadata, changed files and existing reviews",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd.Context())
			if err != nil {
				return err
			}
			if format == "" {
				format = app.Config.Output.Format
			}
			if format != "json" && format != "text" {
				return fmt.Errorf("invalid --format %q; must be json or text", format)
			}

			r, err := resolveRef(args[0])
			if err != nil {
				return err
			}
			log.Debug("resolved reference", "ref", r.String())

			svc, err := newService()
			if err != nil {
				return err
			}
			info, err := svc.PRInfo(r)
			if err != nil {
				return err
			}

			if format == "text" {
				fmt.Fprint(cmd.OutOrStdout(), ui.RenderInfo(info))
				return nil
			}
			encoded, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode PR info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: json or text")
	return cmd
}
