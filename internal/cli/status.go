package cli

import (
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/cli/render"
	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/spf13/cobra"
)

// statusOutput is the structured form of the status command
type statusOutput struct {
	Account     string               `json:"account" yaml:"account"`
	AuthPresent bool                 `json:"authPresent" yaml:"authPresent"`
	AuthExpired bool                 `json:"authExpired" yaml:"authExpired"`
	AuthExpires *time.Time           `json:"authExpiresAt,omitempty" yaml:"authExpiresAt,omitempty"`
	Applied     *models.AppliedQuest `json:"applied,omitempty" yaml:"applied,omitempty"`
	NovaName    string               `json:"nova,omitempty" yaml:"nova,omitempty"`
	QuestName   string               `json:"quest,omitempty" yaml:"quest,omitempty"`
	Eligibility *domain.Eligibility  `json:"eligibility,omitempty" yaml:"eligibility,omitempty"`
	LookupError string               `json:"lookupError,omitempty" yaml:"lookupError,omitempty"`
}

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the configured account and the quest it applied to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.Status.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := statusOutput{
				Account:     result.Account.Hex(),
				Applied:     result.Applied,
				Eligibility: result.Eligibility,
			}
			if result.Auth != nil {
				out.AuthPresent = result.Auth.Present
				out.AuthExpired = result.Auth.Expired
				if !result.Auth.ExpiresAt.IsZero() {
					out.AuthExpires = &result.Auth.ExpiresAt
				}
			}
			if result.Nova != nil {
				out.NovaName = result.Nova.Name
			}
			if result.Quest != nil {
				out.QuestName = result.Quest.Metadata.Name
			}
			if result.LookupErr != nil {
				out.LookupError = result.LookupErr.Error()
			}
			if done, err := structured(cmd, app, out); done {
				return err
			}

			stopProgress(cmd)
			return render.NewStatusRenderer(cmd.OutOrStdout(), useColor(app)).RenderStatus(result)
		},
	}
}
