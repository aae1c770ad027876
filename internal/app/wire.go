//go:build wireinject
// +build wireinject

package app

import (
	"github.com/Aut-Labs/nova-showcase/internal/adapters"
	"github.com/Aut-Labs/nova-showcase/internal/config"
	"github.com/Aut-Labs/nova-showcase/internal/logging"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewEligibilityResolver,
		usecase.NewListNovas,
		usecase.NewShowNova,
		usecase.NewApplyForQuest,
		usecase.NewWithdrawFromQuest,
		usecase.NewWatchQuestStart,
		usecase.NewListQuestTasks,
		usecase.NewSubmitJoinDiscordTask,
		usecase.NewStatus,
		usecase.NewClearCache,
		usecase.NewShowConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,

		// App
		NewApp,
	)
	return nil, nil, nil
}
