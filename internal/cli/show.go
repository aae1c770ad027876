package cli

import (
	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var (
		withTasks  bool
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "show [dao-address]",
		Short: "Show a Nova with its quests",
		Long: `Show a Nova, its quests and what you can do on each of them.

Each quest shows one action: Withdraw when you have applied to it,
Apply when you may apply, or a disabled Apply with the reason.

Without an address you pick a nova interactively.`,
		Example: `  nova show 0x1234567890abcdef1234567890abcdef12345678
  nova show 0x1234567890abcdef1234567890abcdef12345678 --tasks`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			dao, _, err := selectNova(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.ShowNova.Run(cmd.Context(), usecase.ShowNovaParams{
				DaoAddress:   dao,
				IncludeTasks: withTasks,
				ActiveOnly:   activeOnly,
			})
			if err != nil {
				return err
			}

			renderer := render.NewNovaRenderer(cmd.OutOrStdout(), useColor(app))
			if done, err := structured(cmd, app, renderer.Details(result)); done {
				return err
			}

			stopProgress(cmd)
			return renderer.RenderNova(result)
		},
	}

	cmd.Flags().BoolVar(&withTasks, "tasks", false, "Also list the nova's community tasks")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only show active quests")

	return cmd
}
