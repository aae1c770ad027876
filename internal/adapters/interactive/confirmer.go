package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// ConfirmerAdapter asks for confirmation with a y/N prompt
type ConfirmerAdapter struct {
	config *config.RuntimeConfig
}

// NewConfirmerAdapter creates a new confirmer adapter
func NewConfirmerAdapter(cfg *config.RuntimeConfig) *ConfirmerAdapter {
	return &ConfirmerAdapter{config: cfg}
}

// Confirm shows title and waits for the user to accept confirmLabel.
// Declining or aborting the prompt is a plain "no".
func (c *ConfirmerAdapter) Confirm(ctx context.Context, title, confirmLabel string) (bool, error) {
	if c.config.NonInteractive {
		return false, fmt.Errorf("confirmation required; pass --yes in non-interactive mode")
	}

	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s %s", title, color.New(color.FgRed).Sprintf("[%s]", confirmLabel)),
		IsConfirm: true,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

var _ usecase.Confirmer = (*ConfirmerAdapter)(nil)
