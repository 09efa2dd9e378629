package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func NewDiffCmd() *cobra.Command {
	var filePath string

	cmd := &cobra.Command{
		Use:   "diff <pr-url-or-number>",
		Short: "Fetch the unified diff for a PR, optionally scoped to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := resolveRef(args[0])
			if err != nil {
				return err
			}
			log.Debug("resolved reference", "ref", r.String(), "file", filePath)

			svc, err := newService()
			if err != nil {
				return err
			}
			diffText, err := svc.PRDiff(r, filePath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), diffText)
			return nil
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Only show hunks touching this path")
	return cmd
}
