package cmd

import (
	"fmt"

	"github.com/oarkflow/clipboard"
	"github.com/spf13/cobra"
)

var copyToClipboard = clipboard.WriteAll

func newGenerateCmd(a *app) *cobra.Command {
	var copyPassword bool

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Generate a password and print it",
		Example: "  passfile generate\n  passfile generate --copy",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp := a.service.Generate()
			fmt.Fprintln(cmd.OutOrStdout(), resp.Password)

			if copyPassword {
				if err := copyToClipboard(resp.Password); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				infof(cmd.ErrOrStderr(), "Password copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyPassword, "copy", false, "Also copy the password to the clipboard")
	return cmd
}
