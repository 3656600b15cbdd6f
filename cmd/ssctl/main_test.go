package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"solarsavers/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cli struct {
	dir string
}

func newCLI(t *testing.T) *cli {
	t.Helper()

	return &cli{dir: t.TempDir()}
}

// config runs every invocation against the fixtures and one storage directory,
// the way repeated shell commands share state.
func (c *cli) config() (*config.Config, error) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "error"
	cfg.DataSource.Mode = config.DataSourceFixture
	cfg.Storage.Driver = config.StorageFile
	cfg.Storage.Dir = filepath.Join(c.dir, "state")
	cfg.Cart.CompareLimit = 4
	cfg.QRCode = &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}

	return cfg, nil
}

func (c *cli) run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, c.config)

	return code, stdout.String(), stderr.String()
}

func TestRun_UsageErrors(t *testing.T) {
	c := newCLI(t)

	code, _, stderr := c.run(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "Usage: ssctl")

	code, _, _ = c.run(t, "teleport")
	assert.Equal(t, exitUsage, code)

	code, _, stderr = c.run(t, "login", "-email", "admin@solarsavers.com")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: ssctl login")

	code, _, _ = c.run(t, "cart", "add")
	assert.Equal(t, exitUsage, code)

	code, _, _ = c.run(t, "cart", "list", "-bogus")
	assert.Equal(t, exitUsage, code)
}

func TestRun_LoginPersistsAcrossInvocations(t *testing.T) {
	c := newCLI(t)

	code, _, stderr := c.run(t, "login", "-email", "customer@solarsavers.com", "-password", "wrong")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Invalid email or password")

	code, stdout, _ := c.run(t, "login", "-email", "customer@solarsavers.com", "-password", "demo123")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Signed in as John Customer (customer)")

	code, stdout, _ = c.run(t, "whoami")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "customer@solarsavers.com")

	code, _, _ = c.run(t, "logout")
	require.Equal(t, exitOK, code)

	_, stdout, _ = c.run(t, "whoami")
	assert.Contains(t, stdout, "Not signed in")
}

func TestRun_CartPersistsAcrossInvocations(t *testing.T) {
	c := newCLI(t)

	code, _, _ := c.run(t, "cart", "add", "-id", "1", "-qty", "2")
	require.Equal(t, exitOK, code)
	c.run(t, "cart", "add", "-id", "1")

	code, stdout, _ := c.run(t, "cart", "list")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Solar Panel 400W Monocrystalline")
	assert.Contains(t, stdout, "Items: 3  Total: 897.00")

	code, _, stderr := c.run(t, "cart", "add", "-id", "missing")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Product not found")
}

func TestRun_Products(t *testing.T) {
	c := newCLI(t)

	code, stdout, _ := c.run(t, "products", "-q", "tesla", "-sort", "price")

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Price ↑")
	assert.Contains(t, stdout, "Lithium Battery Storage 10kWh")
	assert.NotContains(t, stdout, "SunPower")
}

func TestRun_CheckoutNeedsSignIn(t *testing.T) {
	c := newCLI(t)

	code, _, stderr := c.run(t, "checkout", "-address", "1 Sun St", "-city", "Pune", "-state", "MH", "-pincode", "411001", "-phone", "99")

	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "Error:")
}

func TestRun_Receipt(t *testing.T) {
	c := newCLI(t)
	path := filepath.Join(c.dir, "receipt.png")

	code, stdout, _ := c.run(t, "receipt", "-order", "ORD-001", "-out", path)

	require.Equal(t, exitOK, code)
	assert.Contains(t, stdout, path)

	png, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
