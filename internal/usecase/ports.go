package usecase

import (
	"context"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// NovaRepository reads Novas and their community tasks
type NovaRepository interface {
	ListNovas(ctx context.Context) ([]*models.Nova, error)
	GetNova(ctx context.Context, daoAddress common.Address) (*models.Nova, error)
	ListNovaTasks(ctx context.Context, daoAddress common.Address) ([]*models.NovaTask, error)
}

// PhasesCache holds the quest each account has applied to.
// GetAppliedQuest returns (nil, nil) when the account has no entry.
type PhasesCache interface {
	GetAppliedQuest(ctx context.Context, account common.Address) (*models.AppliedQuest, error)
	SaveAppliedQuest(ctx context.Context, account common.Address, entry *models.AppliedQuest) error
	DeleteAppliedQuest(ctx context.Context, account common.Address) error
}

// JoinDiscordSubmission is the payload of a join-discord task submission
type JoinDiscordSubmission struct {
	UserAddress             common.Address
	Task                    *models.Task
	BearerToken             string
	OnboardingPluginAddress common.Address
}

// OnboardingClient performs the remote onboarding mutations and task queries
type OnboardingClient interface {
	ApplyForQuest(ctx context.Context, account common.Address, application *models.QuestApplication) error
	WithdrawFromQuest(ctx context.Context, onboardingQuestAddress common.Address, questID int) error
	ListQuestTasks(ctx context.Context, account common.Address, onboardingQuestAddress common.Address, questID int) (*models.QuestTasks, error)
	SubmitJoinDiscordTask(ctx context.Context, submission JoinDiscordSubmission) error
}

// QuestSelectionListener is told which quest the user is applying for.
// A nil application clears the selection.
type QuestSelectionListener interface {
	OnApplyForQuest(ctx context.Context, application *models.QuestApplication) error
}

// InteractiveSelector lets the user pick a nova or quest
type InteractiveSelector interface {
	SelectNova(ctx context.Context, novas []*models.Nova, prompt string) (*models.Nova, error)
	SelectQuest(ctx context.Context, nova *models.Nova, prompt string) (*models.Quest, error)
}

// Confirmer asks the user to confirm a destructive action
type Confirmer interface {
	Confirm(ctx context.Context, title, confirmLabel string) (bool, error)
}

// OAuthToken is the result of a completed authorization
type OAuthToken struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

// OAuthProvider runs an interactive OAuth2 authorization.
// It returns ErrOAuthCancelled when the user abandons the flow.
type OAuthProvider interface {
	Authorize(ctx context.Context) (*OAuthToken, error)
}

// Scheduler runs fn once after delay. The returned func cancels the pending call.
type Scheduler interface {
	AfterFunc(delay time.Duration, fn func()) (cancel func())
}

// ResponseCache stores raw API responses with a TTL, grouped by tag
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error
	InvalidateTag(ctx context.Context, tag string) error
	Clear(ctx context.Context) (int, error)
}

// AuthSession describes the configured bearer token
type AuthSession struct {
	Present   bool
	Subject   string
	Account   common.Address
	ExpiresAt time.Time
	Expired   bool
}

// AuthInspector decodes the configured bearer token without verifying it
type AuthInspector interface {
	Inspect(token string) (*AuthSession, error)
}

// LocalConfigRepository manages local configuration persistence
type LocalConfigRepository interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Clock returns the current time
type Clock func() time.Time
