package cli

import (
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// withdrawOutput is the structured form of a withdrawal
type withdrawOutput struct {
	QuestID   int    `json:"questId" yaml:"questId"`
	Withdrawn bool   `json:"withdrawn" yaml:"withdrawn"`
	Cancelled bool   `json:"cancelled" yaml:"cancelled"`
	Warning   string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// NewWithdrawCmd creates the withdraw command
func NewWithdrawCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "withdraw [dao-address quest-id]",
		Short: "Withdraw from the quest you applied to",
		Long: `Withdraw the configured account from a quest.

Without arguments the quest you currently applied to is used.
You are asked to confirm unless --yes is given.`,
		Example: `  nova withdraw
  nova withdraw 0x1234567890abcdef1234567890abcdef12345678 2 --yes`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return cobra.ExactArgs(2)(cmd, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.WithdrawFromQuestParams{SkipConfirm: yes || app.Config.NonInteractive}
			if len(args) == 2 {
				if params.DaoAddress, err = parseAddress("dao", args[0]); err != nil {
					return err
				}
				if params.QuestID, err = parseID("quest", args[1]); err != nil {
					return err
				}
			} else {
				status, err := app.Status.Run(cmd.Context())
				if err != nil {
					return err
				}
				if status.Applied == nil {
					return domain.ErrNotApplied
				}
				if status.Nova == nil {
					return fmt.Errorf("failed to resolve the applied quest: %w", status.LookupErr)
				}
				params.DaoAddress = status.Applied.DaoAddress
				params.QuestID = status.Applied.QuestID
			}

			// The confirmation prompt must not fight the spinner
			stopProgress(cmd)

			result, err := app.WithdrawFromQuest.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := withdrawOutput{QuestID: params.QuestID, Withdrawn: result.Withdrawn, Cancelled: result.Cancelled}
			if result.CleanupErr != nil {
				out.Warning = result.CleanupErr.Error()
			}
			if done, err := structured(cmd, app, out); done {
				return err
			}

			stopProgress(cmd)
			return render.NewQuestActionRenderer(cmd.OutOrStdout(), useColor(app)).RenderWithdraw(result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
