package cli

import (
	"context"

	"github.com/Aut-Labs/nova-showcase/internal/app"
	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// configOutput is the structured form of every config subcommand
type configOutput struct {
	Path    string              `json:"path" yaml:"path"`
	Exists  bool                `json:"exists" yaml:"exists"`
	Key     string              `json:"key,omitempty" yaml:"key,omitempty"`
	Value   string              `json:"value,omitempty" yaml:"value,omitempty"`
	Removed string              `json:"removed,omitempty" yaml:"removed,omitempty"`
	Config  *config.LocalConfig `json:"config,omitempty" yaml:"config,omitempty"`
}

// configAction runs one config use case and reports both renderings of its result
type configAction func(ctx context.Context, a *app.App, args []string) (configOutput, func(*render.ConfigRenderer) error, error)

func runConfigAction(action configAction) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := getApp(cmd)
		if err != nil {
			return err
		}
		out, human, err := action(cmd.Context(), a, args)
		if err != nil {
			return err
		}
		if done, err := structured(cmd, a, out); done {
			return err
		}
		return human(render.NewConfigRenderer(cmd.OutOrStdout()))
	}
}

func showConfigAction(ctx context.Context, a *app.App, _ []string) (configOutput, func(*render.ConfigRenderer) error, error) {
	result, err := a.ShowConfig.Run(ctx)
	if err != nil {
		return configOutput{}, nil, err
	}
	out := configOutput{Path: result.ConfigPath, Exists: result.Exists, Config: result.Config}
	return out, func(r *render.ConfigRenderer) error { return r.RenderConfig(result) }, nil
}

// NewConfigCmd creates the config command. Without a subcommand it shows the config.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the local account and API settings",
		Long: `The local config lives in .nova/config.local.json and holds the account
used for quest actions and an optional API URL. Flags and NOVA_*
environment variables win over it.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runConfigAction(showConfigAction),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:          "show",
			Short:        "Show the local config and the effective settings",
			Args:         cobra.NoArgs,
			SilenceUsage: true,
			RunE:         runConfigAction(showConfigAction),
		},
		NewConfigSetCmd(),
		NewConfigRemoveCmd(),
	)

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set account or api-url",
		Example: `  nova config set account 0x1234567890abcdef1234567890abcdef12345678
  nova config set api https://api.aut.id/api`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: runConfigAction(func(ctx context.Context, a *app.App, args []string) (configOutput, func(*render.ConfigRenderer) error, error) {
			result, err := a.SetConfig.Run(ctx, usecase.SetConfigParams{Key: args[0], Value: args[1]})
			if err != nil {
				return configOutput{}, nil, err
			}
			out := configOutput{Path: result.ConfigPath, Exists: true, Key: string(result.Key), Value: result.Value, Config: result.UpdatedConfig}
			return out, func(r *render.ConfigRenderer) error { return r.RenderSet(result) }, nil
		}),
	}
}

// NewConfigRemoveCmd creates the config remove subcommand.
// Removing the account also drops the selected quest.
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "remove <key>",
		Short:        "Remove account or api-url",
		Example:      `  nova config remove account`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: runConfigAction(func(ctx context.Context, a *app.App, args []string) (configOutput, func(*render.ConfigRenderer) error, error) {
			result, err := a.RemoveConfig.Run(ctx, usecase.RemoveConfigParams{Key: args[0]})
			if err != nil {
				return configOutput{}, nil, err
			}
			out := configOutput{Path: result.ConfigPath, Exists: true, Key: string(result.Key), Removed: result.RemovedValue, Config: result.UpdatedConfig}
			return out, func(r *render.ConfigRenderer) error { return r.RenderRemove(result) }, nil
		}),
	}
}
