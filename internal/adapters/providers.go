package adapters

import (
	"log/slog"
	"os"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/adapters/api"
	"github.com/Aut-Labs/nova-showcase/internal/adapters/auth"
	"github.com/Aut-Labs/nova-showcase/internal/adapters/cache"
	"github.com/Aut-Labs/nova-showcase/internal/adapters/countdown"
	"github.com/Aut-Labs/nova-showcase/internal/adapters/fs"
	"github.com/Aut-Labs/nova-showcase/internal/adapters/interactive"
	"github.com/Aut-Labs/nova-showcase/internal/adapters/oauth"
	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/google/wire"
)

// ProvideClock provides the wall clock
func ProvideClock() usecase.Clock {
	return time.Now
}

// ProvideDiscordAuthorizer provides the Discord OAuth flow, prompting on stderr
func ProvideDiscordAuthorizer(cfg *config.RuntimeConfig, log *slog.Logger) *oauth.DiscordAuthorizer {
	return oauth.NewDiscordAuthorizer(cfg, os.Stderr, log)
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigRepository), new(*fs.LocalConfigStoreAdapter)),

	fs.NewSelectionListenerAdapter,
	wire.Bind(new(usecase.QuestSelectionListener), new(*fs.SelectionListenerAdapter)),
)

// APISet provides the remote onboarding API implementations
var APISet = wire.NewSet(
	api.NewClient,

	api.NewNovaRepositoryAdapter,
	wire.Bind(new(usecase.NovaRepository), new(*api.NovaRepositoryAdapter)),

	api.NewOnboardingClientAdapter,
	wire.Bind(new(usecase.OnboardingClient), new(*api.OnboardingClientAdapter)),

	api.NewPhasesCacheAdapter,
	wire.Bind(new(usecase.PhasesCache), new(*api.PhasesCacheAdapter)),
)

// CacheSet provides the local response cache
var CacheSet = wire.NewSet(
	cache.Provide,
)

// AuthSet provides token inspection and OAuth flows
var AuthSet = wire.NewSet(
	auth.NewTokenInspector,
	wire.Bind(new(usecase.AuthInspector), new(*auth.TokenInspector)),

	ProvideDiscordAuthorizer,
	wire.Bind(new(usecase.OAuthProvider), new(*oauth.DiscordAuthorizer)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),

	interactive.NewConfirmerAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmerAdapter)),
)

// TimeSet provides the clock and timer scheduling
var TimeSet = wire.NewSet(
	ProvideClock,

	countdown.NewTimerScheduler,
	wire.Bind(new(usecase.Scheduler), new(*countdown.TimerScheduler)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	APISet,
	CacheSet,
	AuthSet,
	InteractiveSet,
	TimeSet,
)
