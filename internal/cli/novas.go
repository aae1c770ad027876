package cli

import (
	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNovasCmd creates the novas command
func NewNovasCmd() *cobra.Command {
	var (
		market    int
		archetype int
		search    string
	)

	cmd := &cobra.Command{
		Use:     "novas",
		Aliases: []string{"ls", "list"},
		Short:   "List Novas",
		Long: `List Novas ordered by prestige.

Markets: 1 Open-Source & Infra, 2 DeFi & Payments, 3 ReFi & Governance
Archetypes: 1 Size, 2 Reputation, 3 Conviction, 4 Performance, 5 Growth`,
		Example: `  # List all novas
  nova novas

  # DeFi novas whose name contains "swap"
  nova novas --market 2 --search swap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNovas.Run(cmd.Context(), usecase.ListNovasParams{
				Market:    market,
				Archetype: archetype,
				Search:    search,
			})
			if err != nil {
				return err
			}

			renderer := render.NewNovasRenderer(cmd.OutOrStdout(), useColor(app))
			if done, err := structured(cmd, app, renderer.Items(result)); done {
				return err
			}

			stopProgress(cmd)
			return renderer.RenderList(result)
		},
	}

	cmd.Flags().IntVar(&market, "market", 0, "Filter by market id")
	cmd.Flags().IntVar(&archetype, "archetype", 0, "Filter by archetype id")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name (case-insensitive substring)")

	return cmd
}
