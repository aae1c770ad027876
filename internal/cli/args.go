package cli

import (
	"fmt"
	"strconv"

	"github.com/Aut-Labs/nova-showcase/internal/app"
	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// parseAddress parses a hex account or contract address
func parseAddress(what, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidAddress, what, s)
	}
	return common.HexToAddress(s), nil
}

// parseID parses a non-negative quest or task id
func parseID(what, s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, s)
	}
	return id, nil
}

// selectNova returns the nova named by args[0], or asks the user to pick one
func selectNova(cmd *cobra.Command, a *app.App, args []string) (common.Address, *models.Nova, error) {
	if len(args) > 0 {
		dao, err := parseAddress("dao", args[0])
		return dao, nil, err
	}
	if a.Config.NonInteractive {
		return common.Address{}, nil, fmt.Errorf("a dao address is required in non-interactive mode")
	}

	listed, err := a.ListNovas.Run(cmd.Context(), usecase.ListNovasParams{})
	if err != nil {
		return common.Address{}, nil, err
	}
	stopProgress(cmd)

	novas := lo.Map(listed.Novas, func(s usecase.NovaSummary, _ int) *models.Nova { return s.Nova })
	nova, err := a.Selector.SelectNova(cmd.Context(), novas, "Select a nova")
	if err != nil {
		return common.Address{}, nil, err
	}
	return nova.DaoAddress, nova, nil
}

// selectQuest resolves dao and quest id from args, prompting for whichever is missing
func selectQuest(cmd *cobra.Command, a *app.App, args []string) (common.Address, int, error) {
	dao, nova, err := selectNova(cmd, a, args)
	if err != nil {
		return common.Address{}, 0, err
	}
	if len(args) > 1 {
		questID, err := parseID("quest", args[1])
		return dao, questID, err
	}
	if a.Config.NonInteractive {
		return common.Address{}, 0, fmt.Errorf("a quest id is required in non-interactive mode")
	}

	if nova == nil {
		shown, err := a.ShowNova.Run(cmd.Context(), usecase.ShowNovaParams{DaoAddress: dao})
		if err != nil {
			return common.Address{}, 0, err
		}
		nova = shown.Nova
	}
	stopProgress(cmd)

	quest, err := a.Selector.SelectQuest(cmd.Context(), nova, "Select a quest")
	if err != nil {
		return common.Address{}, 0, err
	}
	return dao, quest.QuestID, nil
}
