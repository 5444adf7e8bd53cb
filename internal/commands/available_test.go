package commands_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "spendable-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "spendable")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/spendable")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runSpendable(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

const exportDoc = `{
  "accounts": [
    {"id": "a1", "name": "Checking", "balance": 1000, "accountType": "checking", "isEnabled": true},
    {"id": "c1", "name": "Visa", "balance": -250, "accountType": "credit_card", "isEnabled": true}
  ],
  "budgets": [
    {"id": "b1", "name": "Groceries", "budgeted": 300, "spent": 220, "remaining": 80, "isExpense": true}
  ],
  "goals": [],
  "plannedIncome": 2000,
  "actualIncome": 0,
  "stashBalancesTotal": 0,
  "leftToBudget": 0
}`

func writeSnapshot(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestAvailable_Report(t *testing.T) {
	path := writeSnapshot(t, exportDoc)

	out, err := runSpendable(t, "available", path)
	require.NoError(t, err, out)

	assert.Contains(t, out, "Available to allocate: $670.00 (healthy)")
	assert.Contains(t, out, "Checking")
	assert.Contains(t, out, "Visa")
	assert.Contains(t, out, "Groceries")
}

func TestAvailable_JSON(t *testing.T) {
	path := writeSnapshot(t, exportDoc)

	out, err := runSpendable(t, "available", path, "--json")
	require.NoError(t, err, out)

	var res struct {
		Available int64 `json:"available"`
		Breakdown struct {
			Cash          int64 `json:"cash"`
			CreditCards   int64 `json:"creditCards"`
			UnspentBudget int64 `json:"unspentBudget"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, int64(670), res.Available)
	assert.Equal(t, int64(1000), res.Breakdown.Cash)
	assert.Equal(t, int64(250), res.Breakdown.CreditCards)
	assert.Equal(t, int64(80), res.Breakdown.UnspentBudget)
}

func TestAvailable_BufferFlag(t *testing.T) {
	path := writeSnapshot(t, exportDoc)

	out, err := runSpendable(t, "available", path, "--buffer", "99.5")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Available to allocate: $570.00")
	assert.Contains(t, out, "Buffer")
}

func TestAvailable_ExpectedIncomeFlag(t *testing.T) {
	path := writeSnapshot(t, exportDoc)

	out, err := runSpendable(t, "available", path, "--expected-income")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Available to allocate: $2,670.00")
	assert.Contains(t, out, "Expected income")
}

func TestAvailable_AccountSelection(t *testing.T) {
	doc := `{
  "accounts": [
    {"id": "a1", "name": "Checking", "balance": 1000, "accountType": "checking", "isEnabled": true},
    {"id": "a2", "name": "Savings", "balance": 500, "accountType": "savings", "isEnabled": true}
  ]
}`
	path := writeSnapshot(t, doc)

	// Omitted flag means every enabled cash account.
	out, err := runSpendable(t, "available", path)
	require.NoError(t, err, out)
	assert.Contains(t, out, "$1,500.00 (healthy)")

	out, err = runSpendable(t, "available", path, "--accounts", "a1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "$1,000.00 (healthy)")

	// Present but empty means no cash at all.
	out, err = runSpendable(t, "available", path, "--accounts=")
	require.NoError(t, err, out)
	assert.Contains(t, out, "$0.00 (zero)")
}

func TestAvailable_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	snapPath := filepath.Join(dir, "snapshot.json")
	require.NoError(t, os.WriteFile(snapPath, []byte(exportDoc), 0o644))

	cfgDoc := "options:\n  buffer: 100\nthresholds:\n  low: 100\ncurrency: USD\n"
	cfgPath := filepath.Join(dir, "spendable.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgDoc), 0o644))

	out, err := runSpendable(t, "available", snapPath, "--config", cfgPath)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Available to allocate: $570.00")

	// A flag that was actually given still beats the configured default.
	out, err = runSpendable(t, "available", snapPath, "--config", cfgPath, "--buffer", "0")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Available to allocate: $670.00")
}

func TestAvailable_RefusesInvalidSnapshot(t *testing.T) {
	doc := `{
  "accounts": [
    {"id": "a1", "name": "One", "balance": 1, "accountType": "checking", "isEnabled": true},
    {"id": "a1", "name": "Two", "balance": 2, "accountType": "checking", "isEnabled": true}
  ]
}`
	path := writeSnapshot(t, doc)

	out, err := runSpendable(t, "available", path)
	require.Error(t, err)
	assert.Contains(t, out, "account [a1]: duplicate id")
	assert.Contains(t, out, "failed validation")
}

func TestAvailable_MissingSnapshot(t *testing.T) {
	out, err := runSpendable(t, "available", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, out, "opening snapshot")
}

func TestAvailable_MissingExplicitConfig(t *testing.T) {
	path := writeSnapshot(t, exportDoc)

	out, err := runSpendable(t, "available", path, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "reading config")
}
