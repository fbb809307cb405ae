package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestMergeJSONConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.json", `{"store_driver":"redis","SHIPPING_FEE":500,"admin_auto_login":false,"nested":{"x":1}}`)

	out := map[string]string{}
	require.NoError(t, mergeJSONConfig(path, out))
	assert.Equal(t, map[string]string{
		"STORE_DRIVER":     "redis",
		"SHIPPING_FEE":     "500",
		"ADMIN_AUTO_LOGIN": "false",
	}, out)

	bad := writeFile(t, dir, "bad.json", `{`)
	assert.Error(t, mergeJSONConfig(bad, out))
}

func TestMergeDotEnv(t *testing.T) {
	path := writeFile(t, t.TempDir(), ".env", `
# comment
STORE_PATH="/var/lib/pitstore"
tax_rate = 0.18
NOEQUALS
=novalue
`)

	out := map[string]string{}
	require.NoError(t, mergeDotEnv(path, out))
	assert.Equal(t, map[string]string{
		"STORE_PATH": "/var/lib/pitstore",
		"TAX_RATE":   "0.18",
	}, out)
}

func TestMergeEnvironKeepsKnownPrefixes(t *testing.T) {
	out := map[string]string{}
	mergeEnviron([]string{"HOME=/root", "PAYMENT_DELAY=0s", "STORE_PREFIX=", "broken"}, out)
	assert.Equal(t, map[string]string{"PAYMENT_DELAY": "0s", "STORE_PREFIX": ""}, out)
}

// reload replaces the process configuration for one test. Load runs first so
// its one-time read cannot clobber the test's values later.
func reload(t *testing.T, jsonPath, envPath string) {
	t.Helper()
	_ = Load()
	require.NoError(t, loadFromFiles(jsonPath, envPath))
	t.Cleanup(func() { require.NoError(t, loadFromFiles("missing.json", "missing.env")) })
}

func TestLayering(t *testing.T) {
	dir := t.TempDir()
	jsonPath := writeFile(t, dir, "app.json", `{"STORE_DRIVER":"sql","COD_CHARGE":"100"}`)
	envPath := writeFile(t, dir, ".env", "STORE_DRIVER=memory\nPAYMENT_SUCCESS_RATE=2\n")

	reload(t, jsonPath, envPath)

	assert.Equal(t, "memory", StoreDriver(), ".env wins over app.json")
	assert.Equal(t, int64(100), CODCharge())
	assert.Equal(t, 0.9, PaymentSuccessRate(), "out of range falls back")
	assert.Equal(t, int64(829), ShippingFee())
	assert.Equal(t, "f1_", StorePrefix())
}

func TestAccessorsFallBackOnBadInput(t *testing.T) {
	reload(t, "missing.json", "missing.env")

	Set("STORE_DRIVER", "floppy")
	Set("TAX_RATE", "eight percent")
	Set("PAYMENT_DELAY", "soon")
	Set("ADMIN_AUTO_LOGIN", "maybe")
	Set("DB_DRIVER", "postgres")

	assert.Equal(t, "file", StoreDriver())
	assert.Equal(t, "0.08", TaxRate())
	assert.Equal(t, 2*time.Second, PaymentDelay())
	assert.True(t, AdminAutoLogin())
	assert.Contains(t, DatabaseDSN(), "dbname=pitstore")

	Set("STORE_PREFIX", "")
	assert.Equal(t, "", StorePrefix(), "an explicit empty prefix is kept")
	assert.Equal(t, "fallback", Get("NOT_SET", "fallback"))
}
