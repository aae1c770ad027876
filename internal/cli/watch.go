package cli

import (
	"fmt"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/spf13/cobra"
)

// watchOutput is the structured form of a finished watch
type watchOutput struct {
	QuestID  int    `json:"questId" yaml:"questId"`
	Started  bool   `json:"started" yaml:"started"`
	QuestURL string `json:"questUrl" yaml:"questUrl"`
}

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dao-address] [quest-id]",
		Short: "Count down to a quest start",
		Long: `Show a live countdown to the start of a quest and reveal the link to the
quest once it starts. A quest that already started is revealed at once.

The countdown is computed once when it begins.`,
		Example:     `  nova watch 0x1234567890abcdef1234567890abcdef12345678 2`,
		Annotations: map[string]string{annotationNoTimeout: "true"},
		Args:        cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			dao, questID, err := selectQuest(cmd, app, args)
			if err != nil {
				return err
			}

			params, err := app.WatchQuestStart.Load(cmd.Context(), usecase.WatchTarget{DaoAddress: dao, QuestID: questID})
			if err != nil {
				return err
			}
			stopProgress(cmd)

			if !params.Quest.HasStartDate() {
				return fmt.Errorf("quest #%d has no start date", questID)
			}

			reveal := app.WatchQuestStart.Start(cmd.Context(), *params)
			defer reveal.Stop()

			var started bool
			if app.Config.NonInteractive || app.Config.StructuredOutput() {
				select {
				case <-reveal.Done():
					started = true
				case <-cmd.Context().Done():
				}
			} else {
				if started, err = RunCountdown(reveal, time.Now); err != nil {
					return err
				}
			}

			out := watchOutput{QuestID: questID, Started: started, QuestURL: reveal.QuestURL}
			if done, err := structured(cmd, app, out); done {
				return err
			}
			if !started {
				return nil
			}
			if app.Config.NonInteractive {
				fmt.Fprintln(cmd.OutOrStdout(), render.FormatSuccess("Quest started: "+reveal.QuestURL))
			}
			return nil
		},
	}
}
