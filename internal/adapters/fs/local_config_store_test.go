package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Aut-Labs/nova-showcase/internal/domain/config"
	"github.com/Aut-Labs/nova-showcase/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalConfigStoreAdapter {
	t.Helper()
	return NewLocalConfigStoreAdapter(&config.RuntimeConfig{DataDir: filepath.Join(t.TempDir(), ".nova")})
}

func TestLocalConfigStoreAdapter(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads defaults", func(t *testing.T) {
		store := newTestStore(t)

		assert.False(t, store.Exists())
		cfg, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultLocalConfig(), cfg)
	})

	t.Run("save then load", func(t *testing.T) {
		store := newTestStore(t)
		saved := &config.LocalConfig{Account: "0x2222222222222222222222222222222222222222", APIURL: "https://api.test"}

		require.NoError(t, store.Save(ctx, saved))
		assert.True(t, store.Exists())

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, saved, loaded)

		raw, err := os.ReadFile(store.GetPath())
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"api_url": "https://api.test"`)
	})

	t.Run("corrupt file", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.MkdirAll(filepath.Dir(store.GetPath()), 0755))
		require.NoError(t, os.WriteFile(store.GetPath(), []byte("{"), 0644))

		_, err := store.Load(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestSelectionListenerAdapter(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	require.NoError(t, store.Save(ctx, &config.LocalConfig{Account: "0x2222222222222222222222222222222222222222"}))
	listener := NewSelectionListenerAdapter(store)

	application := &models.QuestApplication{
		Quest:                  models.Quest{QuestID: 7},
		OnboardingQuestAddress: common.HexToAddress("0x3333333333333333333333333333333333333333"),
		DaoAddress:             common.HexToAddress("0x4444444444444444444444444444444444444444"),
	}
	require.NoError(t, listener.OnApplyForQuest(ctx, application))

	cfg, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg.SelectedQuest)
	assert.Equal(t, 7, cfg.SelectedQuest.QuestID)
	assert.Equal(t, application.DaoAddress.Hex(), cfg.SelectedQuest.DaoAddress)
	// Unrelated settings survive
	assert.Equal(t, "0x2222222222222222222222222222222222222222", cfg.Account)

	require.NoError(t, listener.OnApplyForQuest(ctx, nil))
	cfg, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cfg.SelectedQuest)
}
