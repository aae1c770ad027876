package render

import (
	"fmt"
	"io"

	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// QuestActionRenderer renders the outcome of quest mutations
type QuestActionRenderer struct {
	palette
	out io.Writer
}

// NewQuestActionRenderer creates a new quest action renderer
func NewQuestActionRenderer(out io.Writer, color bool) *QuestActionRenderer {
	return &QuestActionRenderer{
		palette: palette{out: out, color: color},
		out:     out,
	}
}

// RenderApply renders a successful application
func (r *QuestActionRenderer) RenderApply(result *usecase.ApplyForQuestResult) error {
	app := result.Application
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Applied for quest #%d %s", app.QuestID, app.Metadata.Name)))
	r.field("Onboarding", app.OnboardingQuestAddress.Hex())
	r.field("DAO", app.DaoAddress.Hex())
	return nil
}

// RenderWithdraw renders a withdrawal. Cleanup failures are shown as warnings.
func (r *QuestActionRenderer) RenderWithdraw(result *usecase.WithdrawResult) error {
	if result.Cancelled {
		fmt.Fprintln(r.out, r.muted("Withdrawal cancelled"))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Withdrew from quest #%d %s", result.Quest.QuestID, result.Quest.Metadata.Name)))
	if result.CleanupErr != nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("local state could not be fully cleared: %v", result.CleanupErr)))
	}
	return nil
}

// RenderJoinDiscordTarget shows the invite before authorization starts
func (r *QuestActionRenderer) RenderJoinDiscordTarget(target *usecase.JoinDiscordTarget) error {
	r.section(fmt.Sprintf("#%d %s", target.Task.TaskID, target.Task.Metadata.Name))
	if target.InviteURL != "" {
		r.field("Invite", r.link(target.InviteURL))
		fmt.Fprintln(r.out, r.muted("Join the server, then authorize with Discord to verify membership."))
	}
	return nil
}

// RenderJoinDiscord renders the outcome of a join-discord submission
func (r *QuestActionRenderer) RenderJoinDiscord(result *usecase.SubmitJoinDiscordResult) error {
	switch {
	case result.Cancelled:
		fmt.Fprintln(r.out, r.muted("Authorization cancelled, nothing was submitted"))
	case result.Submitted:
		fmt.Fprintln(r.out, FormatSuccess("You successfully submitted the task!"))
	}
	return nil
}
