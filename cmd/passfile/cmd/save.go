package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passfile/passfile-go/internal/model"
	"github.com/passfile/passfile-go/internal/status"
)

func newSaveCmd(a *app) *cobra.Command {
	var dir, password string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a password to a timestamped file in a folder",
		Long: "Save a password to <dir>/password_<yyyyMMdd_HHmmss>.txt.\n" +
			"A new password is generated when --password is omitted.",
		Example: "  passfile save --dir ~/passwords\n  passfile save --dir /tmp/out --password 'aZ3!kLp9Q@2x'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = a.cfg.OutputDir
			}
			if !cmd.Flags().Changed("password") {
				password = a.service.Generate().Password
				fmt.Fprintln(cmd.OutOrStdout(), password)
			}

			resp, err := a.service.Save(model.SaveRequest{Directory: dir, Password: password})
			if err != nil {
				errorf(cmd.ErrOrStderr(), status.Message(err))
				return errReported
			}

			successf(cmd.ErrOrStderr(), "%s", status.Saved(bold.Sprint(resp.Path)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Folder to save the password file in (default $PASSFILE_OUTPUT_DIR)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password to save instead of generating one")
	return cmd
}
