package cli

import (
	"testing"

	"github.com/Aut-Labs/nova-showcase/internal/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := parseAddress("dao", "0x1111111111111111111111111111111111111111")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(testDao), addr)

	_, err = parseAddress("dao", "0x123")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestParseID(t *testing.T) {
	id, err := parseID("quest", "7")
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	for _, bad := range []string{"", "-1", "seven", "1.5"} {
		_, err := parseID("quest", bad)
		assert.Error(t, err, bad)
	}
}
