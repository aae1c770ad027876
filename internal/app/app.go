package app

import (
	"log/slog"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Shared dependencies
	Selector usecase.InteractiveSelector

	// Use cases
	ListNovas             *usecase.ListNovas
	ShowNova              *usecase.ShowNova
	ApplyForQuest         *usecase.ApplyForQuest
	WithdrawFromQuest     *usecase.WithdrawFromQuest
	WatchQuestStart       *usecase.WatchQuestStart
	ListQuestTasks        *usecase.ListQuestTasks
	SubmitJoinDiscordTask *usecase.SubmitJoinDiscordTask
	Status                *usecase.Status
	ClearCache            *usecase.ClearCache
	ShowConfig            *usecase.ShowConfig
	SetConfig             *usecase.SetConfig
	RemoveConfig          *usecase.RemoveConfig
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	selector usecase.InteractiveSelector,
	listNovas *usecase.ListNovas,
	showNova *usecase.ShowNova,
	applyForQuest *usecase.ApplyForQuest,
	withdrawFromQuest *usecase.WithdrawFromQuest,
	watchQuestStart *usecase.WatchQuestStart,
	listQuestTasks *usecase.ListQuestTasks,
	submitJoinDiscordTask *usecase.SubmitJoinDiscordTask,
	status *usecase.Status,
	clearCache *usecase.ClearCache,
	showConfig *usecase.ShowConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
) (*App, error) {
	return &App{
		Config:                cfg,
		Logger:                log,
		Selector:              selector,
		ListNovas:             listNovas,
		ShowNova:              showNova,
		ApplyForQuest:         applyForQuest,
		WithdrawFromQuest:     withdrawFromQuest,
		WatchQuestStart:       watchQuestStart,
		ListQuestTasks:        listQuestTasks,
		SubmitJoinDiscordTask: submitJoinDiscordTask,
		Status:                status,
		ClearCache:            clearCache,
		ShowConfig:            showConfig,
		SetConfig:             setConfig,
		RemoveConfig:          removeConfig,
	}, nil
}
