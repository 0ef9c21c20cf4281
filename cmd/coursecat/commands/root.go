package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"coursecat/internal/app"
	"coursecat/internal/config"
	"coursecat/internal/domain"
	"coursecat/internal/logger"
)

var (
	envFile  string
	logLevel string
	appCtx   *app.App
)

// closeTimeout bounds how long Execute waits for pending mutations on exit.
const closeTimeout = 5 * time.Second

func Execute() error {
	err := newRootCmd().ExecuteContext(context.Background())
	if appCtx != nil {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if cerr := appCtx.Close(ctx); cerr != nil {
			appCtx.Log.Warn("close: %v", cerr)
		}
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "coursecat",
		Short:        "In-memory course catalog, enrollments and assignment submissions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return nil
			}
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log := logger.New(logger.Config{Level: logger.ParseLevel(cfg.LogLevel), Output: os.Stderr})
			logger.SetDefault(log)

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}
			appCtx = a
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env", "", "env file to load (default .env)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override COURSECAT_LOG_LEVEL (debug, info, warn, error)")

	root.AddCommand(
		coursesCmd(),
		createCmd(),
		deleteCmd(),
		enrollCmd(),
		unenrollCmd(),
		enrolledCmd(),
		submitCmd(),
		submissionsCmd(),
		statsCmd(),
		dashboardCmd(),
		exportCmd(),
		importCmd(),
		receiptCmd(),
		shellCmd(),
	)
	return root
}

func parseID(s string) (domain.CourseID, error) {
	id, err := domain.ParseCourseID(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid course id %q", s)
	}
	return id, nil
}
