package cli

import (
	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// NewCacheCmd creates the cache command group
func NewCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached state",
		Long: `Manage cached state.

nova keeps two caches: the applied-quest entry stored by the onboarding
API for your account, and a local cache of API responses in .nova/cache.db.`,
	}

	cmd.AddCommand(newCacheClearCmd())
	return cmd
}

func newCacheClearCmd() *cobra.Command {
	var appliedOnly bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Evict the applied-quest entry and cached responses",
		Example: `  nova cache clear
  nova cache clear --applied-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ClearCache.Run(cmd.Context(), usecase.ClearCacheParams{AppliedOnly: appliedOnly})
			if err != nil {
				return err
			}

			if done, err := structured(cmd, app, result); done {
				return err
			}

			stopProgress(cmd)
			return render.NewStatusRenderer(cmd.OutOrStdout(), useColor(app)).RenderClearCache(result, appliedOnly)
		},
	}

	cmd.Flags().BoolVar(&appliedOnly, "applied-only", false, "Only evict the applied-quest entry")

	return cmd
}
