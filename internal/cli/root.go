package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/Aut-Labs/nova-showcase/internal/adapters/progress"
	"github.com/Aut-Labs/nova-showcase/internal/app"
	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/config"
	domainconfig "github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
	// sinkKey is the context key for the progress sink
	sinkKey contextKey = "sink"

	// annotationNoTimeout marks commands that wait on the user or on the clock
	annotationNoTimeout = "nova/no-timeout"
)

// session holds what PersistentPreRunE set up so it can be released after the command
type session struct {
	cleanup func()
	cancel  context.CancelFunc
	sink    progress.Sink
}

func (s *session) close() {
	if s.sink != nil {
		s.sink.Stop()
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.cleanup != nil {
		s.cleanup()
		s.cleanup = nil
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nova",
		Short: "Browse Nova onboarding quests and apply from the terminal",
		Long: `nova shows Novas (DAOs), their onboarding quests and tasks, tells you
whether your account can apply, and drives apply, withdraw and task
submission against the Aut onboarding API.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot := config.FindProjectRoot()
			v := config.SetupViper(projectRoot, cmd)

			s.sink = newProgressSink(v)

			appInstance, cleanup, err := app.InitApp(v, s.sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			s.cleanup = cleanup

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			ctx = context.WithValue(ctx, sinkKey, s.sink)

			if appInstance.Config.Timeout > 0 && cmd.Annotations[annotationNoTimeout] == "" {
				ctx, s.cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}

			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			s.close()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: table, json or yaml")
	rootCmd.PersistentFlags().String("account", "", "Account address (defaults to the configured account)")
	rootCmd.PersistentFlags().String("api-url", "", "Onboarding API base URL")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the local response cache")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for remote calls (e.g. 30s, 2m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "quest",
		Title: "Quest Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{NewNovasCmd(), NewShowCmd(), NewStatusCmd()} {
		c.GroupID = "main"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewApplyCmd(), NewWithdrawCmd(), NewTasksCmd(), NewTaskCmd(), NewWatchCmd()} {
		c.GroupID = "quest"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewConfigCmd(), NewCacheCmd()} {
		c.GroupID = "management"
		rootCmd.AddCommand(c)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	s := &session{}
	rootCmd := newRootCmd(s)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	// PersistentPostRun is skipped when RunE fails
	s.close()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w (raise it with --timeout)", err)
		}
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		return 1
	}
	return 0
}

// newProgressSink picks the progress sink before the runtime config exists
func newProgressSink(v *viper.Viper) progress.Sink {
	return progress.NewSink(&domainconfig.RuntimeConfig{
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Output:         v.GetString("output"),
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// stopProgress ends any running spinner before output or prompts
func stopProgress(cmd *cobra.Command) {
	if sink, ok := cmd.Context().Value(sinkKey).(progress.Sink); ok {
		sink.Stop()
	}
}

// useColor reports whether human output should be colored
func useColor(a *app.App) bool {
	return !a.Config.NonInteractive
}

// structured writes v as JSON or YAML when requested. It reports whether it did.
func structured(cmd *cobra.Command, a *app.App, v any) (bool, error) {
	if !a.Config.StructuredOutput() {
		return false, nil
	}
	stopProgress(cmd)
	format := a.Config.Output
	if a.Config.JSON {
		format = "json"
	}
	return true, render.Structured(cmd.OutOrStdout(), format, v)
}
