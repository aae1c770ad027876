package cli

import (
	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// NewApplyCmd creates the apply command
func NewApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply [dao-address] [quest-id]",
		Short: "Apply for a quest",
		Long: `Apply the configured account for a quest.

An account can apply to one quest at a time. Applying requires that the
member phase has started and the quest has not ended; admins of a nova
can not apply to its quests.

Missing arguments are asked for interactively.`,
		Example: `  nova apply 0x1234567890abcdef1234567890abcdef12345678 2`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			dao, questID, err := selectQuest(cmd, app, args)
			if err != nil {
				return err
			}

			result, err := app.ApplyForQuest.Run(cmd.Context(), usecase.ApplyForQuestParams{
				DaoAddress: dao,
				QuestID:    questID,
			})
			if err != nil {
				return err
			}

			if done, err := structured(cmd, app, result.Applied); done {
				return err
			}

			stopProgress(cmd)
			return render.NewQuestActionRenderer(cmd.OutOrStdout(), useColor(app)).RenderApply(result)
		},
	}
}
