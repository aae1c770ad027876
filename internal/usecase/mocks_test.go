package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/Aut-Labs/nova-showcase/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

var (
	adminAddr      = common.HexToAddress("0x1111111111111111111111111111111111111111")
	accountAddr    = common.HexToAddress("0x2222222222222222222222222222222222222222")
	onboardingAddr = common.HexToAddress("0x3333333333333333333333333333333333333333")
	daoAddr        = common.HexToAddress("0x4444444444444444444444444444444444444444")
)

// fixed "now" for every test in this package
var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testClock() time.Time { return testNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		Account:     accountAddr,
		ShowcaseURL: "https://showcase.test",
		IPFSGateway: "https://ipfs.test/ipfs",
		MemberPhases: config.MemberPhasesConfig{
			PhaseOneStartDate: testNow.Add(-24 * time.Hour),
		},
	}
}

func testNova(quests ...models.Quest) *models.Nova {
	return &models.Nova{
		Name:                   "Aut Labs",
		Admin:                  adminAddr,
		DaoAddress:             daoAddr,
		OnboardingQuestAddress: onboardingAddr,
		Properties: models.NovaProperties{
			Quests: quests,
			Roles: []models.Role{
				{ID: 1, RoleName: "Builder"},
			},
		},
	}
}

func questStarting(id int, start time.Time, days float64) models.Quest {
	return models.Quest{
		QuestID:        id,
		StartDate:      models.NewDate(start),
		DurationInDays: days,
		Active:         true,
		Role:           1,
		Metadata:       models.QuestMetadata{Name: "Quest"},
	}
}

// MockNovaRepository is a mock implementation of NovaRepository
type MockNovaRepository struct {
	mock.Mock
}

func (m *MockNovaRepository) ListNovas(ctx context.Context) ([]*models.Nova, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Nova), args.Error(1)
}

func (m *MockNovaRepository) GetNova(ctx context.Context, daoAddress common.Address) (*models.Nova, error) {
	args := m.Called(ctx, daoAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Nova), args.Error(1)
}

func (m *MockNovaRepository) ListNovaTasks(ctx context.Context, daoAddress common.Address) ([]*models.NovaTask, error) {
	args := m.Called(ctx, daoAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.NovaTask), args.Error(1)
}

// MockOnboardingClient is a mock implementation of OnboardingClient
type MockOnboardingClient struct {
	mock.Mock
}

func (m *MockOnboardingClient) ApplyForQuest(ctx context.Context, account common.Address, application *models.QuestApplication) error {
	return m.Called(ctx, account, application).Error(0)
}

func (m *MockOnboardingClient) WithdrawFromQuest(ctx context.Context, onboardingQuestAddress common.Address, questID int) error {
	return m.Called(ctx, onboardingQuestAddress, questID).Error(0)
}

func (m *MockOnboardingClient) ListQuestTasks(ctx context.Context, account common.Address, onboardingQuestAddress common.Address, questID int) (*models.QuestTasks, error) {
	args := m.Called(ctx, account, onboardingQuestAddress, questID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.QuestTasks), args.Error(1)
}

func (m *MockOnboardingClient) SubmitJoinDiscordTask(ctx context.Context, submission usecase.JoinDiscordSubmission) error {
	return m.Called(ctx, submission).Error(0)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, title, confirmLabel string) (bool, error) {
	args := m.Called(ctx, title, confirmLabel)
	return args.Bool(0), args.Error(1)
}

// MockOAuthProvider is a mock implementation of OAuthProvider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) Authorize(ctx context.Context) (*usecase.OAuthToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.OAuthToken), args.Error(1)
}

// MockResponseCache is a mock implementation of ResponseCache
type MockResponseCache struct {
	mock.Mock
}

func (m *MockResponseCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockResponseCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	return m.Called(ctx, key, value, ttl, tags).Error(0)
}

func (m *MockResponseCache) InvalidateTag(ctx context.Context, tag string) error {
	return m.Called(ctx, tag).Error(0)
}

func (m *MockResponseCache) Clear(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockAuthInspector is a mock implementation of AuthInspector
type MockAuthInspector struct {
	mock.Mock
}

func (m *MockAuthInspector) Inspect(token string) (*usecase.AuthSession, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.AuthSession), args.Error(1)
}

// memoryPhasesCache keeps applied quests in memory
type memoryPhasesCache struct {
	mu        sync.Mutex
	entries   map[common.Address]*models.AppliedQuest
	deleteErr error
}

func newMemoryPhasesCache() *memoryPhasesCache {
	return &memoryPhasesCache{entries: map[common.Address]*models.AppliedQuest{}}
}

func (c *memoryPhasesCache) GetAppliedQuest(_ context.Context, account common.Address) (*models.AppliedQuest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries[account], nil
}

func (c *memoryPhasesCache) SaveAppliedQuest(_ context.Context, account common.Address, entry *models.AppliedQuest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[account] = entry
	return nil
}

func (c *memoryPhasesCache) DeleteAppliedQuest(_ context.Context, account common.Address) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deleteErr != nil {
		return c.deleteErr
	}
	delete(c.entries, account)
	return nil
}

// recordingListener records every selection it is handed
type recordingListener struct {
	calls []*models.QuestApplication
	err   error
}

func (l *recordingListener) OnApplyForQuest(_ context.Context, application *models.QuestApplication) error {
	l.calls = append(l.calls, application)
	return l.err
}

// manualScheduler records scheduled callbacks and fires them on demand
type manualScheduler struct {
	mu        sync.Mutex
	delays    []time.Duration
	fns       []func()
	cancelled int
}

func (s *manualScheduler) AfterFunc(delay time.Duration, fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, delay)
	s.fns = append(s.fns, fn)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.cancelled++
	}
}

func (s *manualScheduler) fireAll() {
	s.mu.Lock()
	fns := append([]func(){}, s.fns...)
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// memoryConfigStore is an in-memory LocalConfigRepository
type memoryConfigStore struct {
	cfg    *config.LocalConfig
	exists bool
}

func (s *memoryConfigStore) Exists() bool { return s.exists }

func (s *memoryConfigStore) Load(context.Context) (*config.LocalConfig, error) {
	if s.cfg == nil {
		return config.DefaultLocalConfig(), nil
	}
	copied := *s.cfg
	return &copied, nil
}

func (s *memoryConfigStore) Save(_ context.Context, cfg *config.LocalConfig) error {
	s.cfg = cfg
	s.exists = true
	return nil
}

func (s *memoryConfigStore) GetPath() string { return "/tmp/project/.nova/config.local.json" }
