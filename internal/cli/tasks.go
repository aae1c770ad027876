package cli

import (
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// tasksOutput is the structured form of a quest's tasks
type tasksOutput struct {
	QuestID     int                `json:"questId" yaml:"questId"`
	CanSubmit   bool               `json:"canSubmit" yaml:"canSubmit"`
	Eligibility domain.Eligibility `json:"eligibility" yaml:"eligibility"`
	Tasks       []models.Task      `json:"tasks" yaml:"tasks"`
}

// NewTasksCmd creates the tasks command
func NewTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks [dao-address] [quest-id]",
		Short: "List the onboarding tasks of a quest",
		Long: `List the onboarding tasks of a quest with their status.

Tasks can be submitted once you applied to the quest and it has started.`,
		Example: `  nova tasks 0x1234567890abcdef1234567890abcdef12345678 2`,
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

			result, err := app.ListQuestTasks.Run(cmd.Context(), usecase.ListQuestTasksParams{
				DaoAddress: dao,
				QuestID:    questID,
			})
			if err != nil {
				return err
			}

			out := tasksOutput{
				QuestID:     result.Quest.QuestID,
				CanSubmit:   result.CanSubmit,
				Eligibility: result.Eligibility,
				Tasks:       result.Tasks,
			}
			if out.Tasks == nil {
				out.Tasks = []models.Task{}
			}
			if done, err := structured(cmd, app, out); done {
				return err
			}

			stopProgress(cmd)
			return render.NewTasksRenderer(cmd.OutOrStdout(), useColor(app)).RenderTasks(result)
		},
	}
}

// NewTaskCmd creates the task command group
func NewTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Submit onboarding tasks",
	}

	cmd.AddCommand(newTaskJoinDiscordCmd())
	return cmd
}

func newTaskJoinDiscordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join-discord <dao-address> <quest-id> <task-id>",
		Short: "Submit a join-discord task",
		Long: `Submit a join-discord task.

Join the server with the invite shown, then authorize nova with Discord
in the browser so membership can be verified. The authorization redirect
is received on a local port (oauth.discord.redirect_port in nova.toml).`,
		Annotations: map[string]string{annotationNoTimeout: "true"},
		Args:        cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.JoinDiscordTaskParams{}
			if params.DaoAddress, err = parseAddress("dao", args[0]); err != nil {
				return err
			}
			if params.QuestID, err = parseID("quest", args[1]); err != nil {
				return err
			}
			if params.TaskID, err = parseID("task", args[2]); err != nil {
				return err
			}

			target, err := app.SubmitJoinDiscordTask.Resolve(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewQuestActionRenderer(cmd.ErrOrStderr(), useColor(app))
			stopProgress(cmd)
			if err := renderer.RenderJoinDiscordTarget(target); err != nil {
				return err
			}
			if app.Config.NonInteractive {
				return fmt.Errorf("discord authorization needs a browser and can not run in non-interactive mode")
			}

			result, err := app.SubmitJoinDiscordTask.Submit(cmd.Context(), target)
			if err != nil {
				return err
			}

			if done, err := structured(cmd, app, map[string]any{
				"taskId":    target.Task.TaskID,
				"submitted": result.Submitted,
				"cancelled": result.Cancelled,
			}); done {
				return err
			}

			stopProgress(cmd)
			return render.NewQuestActionRenderer(cmd.OutOrStdout(), useColor(app)).RenderJoinDiscord(result)
		},
	}
}
