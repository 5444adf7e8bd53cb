package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The interactive surface itself is exercised in internal/tui; these
// cover the loading path shared with available.

func TestExplore_MissingSnapshot(t *testing.T) {
	out, err := runSpendable(t, "explore", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, out, "opening snapshot")
}

func TestExplore_RefusesInvalidSnapshot(t *testing.T) {
	path := writeSnapshot(t, `{
  "accounts": [
    {"id": "", "name": "Ghost", "balance": 1, "accountType": "checking", "isEnabled": true}
  ]
}`)

	out, err := runSpendable(t, "explore", path)
	require.Error(t, err)
	assert.Contains(t, out, "account [Ghost]: blank id")
}
