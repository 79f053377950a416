package cmd

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/passfile/passfile-go/internal/config"
	"github.com/passfile/passfile-go/internal/logger"
	"github.com/passfile/passfile-go/internal/repository"
	"github.com/passfile/passfile-go/internal/service"
)

// errReported marks an error whose message was already shown to the user.
var errReported = errors.New("reported")

type app struct {
	cfg     config.Config
	service *service.PasswordService
	debug   bool
}

// NewRootCmd builds the passfile command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "passfile",
		Short:         "Generate a random password and save it to a timestamped file",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil {
				slog.Debug("no .env file found, using environment variables")
			}

			a.cfg = config.Load()
			level, err := a.cfg.Level()
			if err != nil {
				return err
			}
			if a.debug {
				level = slog.LevelDebug
			}
			logger.Initialize(a.cfg.IsProduction(), level)

			a.service = service.NewPasswordService(repository.NewFileRepository())
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		newGenerateCmd(a),
		newSaveCmd(a),
		newServeCmd(a),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			errorf(root.ErrOrStderr(), err.Error())
		}
		os.Exit(1)
	}
}
