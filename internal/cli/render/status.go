package render

import (
	"fmt"
	"io"

	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
)

// StatusRenderer renders the account status
type StatusRenderer struct {
	palette
	out io.Writer
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer, color bool) *StatusRenderer {
	return &StatusRenderer{
		palette: palette{out: out, color: color},
		out:     out,
	}
}

// RenderStatus renders the account, its auth token and its applied quest
func (r *StatusRenderer) RenderStatus(result *usecase.StatusResult) error {
	r.section("Account")
	r.field("Address", r.paint(addressStyle, result.Account.Hex()))

	switch auth := result.Auth; {
	case auth == nil || !auth.Present:
		r.field("Auth", r.muted("no token (set NOVA_AUTH_TOKEN)"))
	case auth.Expired:
		r.field("Auth", r.bad("expired "+FormatDate(auth.ExpiresAt)))
	case auth.ExpiresAt.IsZero():
		r.field("Auth", r.ok("token present"))
	default:
		r.field("Auth", r.ok("valid until "+FormatDate(auth.ExpiresAt)))
	}
	if auth := result.Auth; auth != nil && auth.Account != (common.Address{}) && auth.Account != result.Account {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("auth token belongs to %s", result.Auth.Account.Hex())))
	}

	fmt.Fprintln(r.out)
	r.section("Applied quest")
	if result.Applied == nil {
		fmt.Fprintln(r.out, r.muted("Not applied to any quest"))
		return nil
	}

	r.field("Quest", fmt.Sprintf("#%d", result.Applied.QuestID))
	r.field("Onboarding", result.Applied.OnboardingQuestAddress.Hex())
	r.field("DAO", result.Applied.DaoAddress.Hex())

	if result.LookupErr != nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("could not load quest details: %v", result.LookupErr)))
		return nil
	}
	r.field("Nova", result.Nova.Name)
	r.field("Name", result.Quest.Metadata.Name)
	r.field("Role", result.Nova.RoleName(result.Quest.Role))
	if e := result.Eligibility; e != nil {
		state := r.warn("upcoming")
		switch {
		case e.HasQuestEnded:
			state = r.muted("ended")
		case e.HasQuestStarted:
			state = r.ok("ongoing")
		}
		r.field("State", state)
	}
	return nil
}

// RenderClearCache renders the result of clearing caches
func (r *StatusRenderer) RenderClearCache(result *usecase.ClearCacheResult, appliedOnly bool) error {
	if result.AppliedEvicted {
		fmt.Fprintln(r.out, FormatSuccess("Evicted applied quest entry"))
	}
	if appliedOnly {
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Cleared %d cached responses", result.ResponsesCleared)))
	return nil
}
