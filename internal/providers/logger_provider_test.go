package providers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"urlchecker/internal/structures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogTypeByRequestType_POST(t *testing.T) {
	assert.Equal(t, TypePost, GetLogTypeByRequestType("POST"))
}

func TestGetLogTypeByRequestType_GET(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("GET"))
}

func TestGetLogTypeByRequestType_Other(t *testing.T) {
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("PUT"))
	assert.Equal(t, TypeGet, GetLogTypeByRequestType("DELETE"))
}

func TestTypeEnum_String(t *testing.T) {
	assert.Equal(t, "scan", TypeScan.String())
	assert.Equal(t, "storage", TypeStorage.String())
	assert.Equal(t, "app", TypeEnum(99).String())
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   dir,
		},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Infof(TypeApp, "test message")
	logger.Debugf(TypeGet, "get message")
	logger.Warnf(TypePost, "post message")
	logger.Infof(TypeScan, "scanned %s", "http://example.com")

	for _, name := range []string{"app", "get", "post", "scan", "storage"} {
		_, err := os.Stat(filepath.Join(dir, name+".log"))
		assert.NoError(t, err, name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "scan.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "scanned http://example.com")
	assert.Contains(t, string(data), `"type":"scan"`)
}

func TestNewLogProvider_LevelFilters(t *testing.T) {
	dir := t.TempDir()
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "warn", Mode: 0644, Dir: dir},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	logger.Infof(TypeApp, "hidden")
	logger.Errorf(TypeApp, "visible")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "visible")
}

func TestNewLogProvider_CreatesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "info", Mode: 0644, Dir: dir},
	}

	logger, err := NewLogProvider(conf)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(filepath.Join(dir, "app.log"))
	assert.NoError(t, err)
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	// a regular file where the directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	conf := &structures.Config{
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   filepath.Join(blocker, "logs"),
		},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	conf := &structures.Config{
		Logger: structures.LoggerConfig{Level: "loud", Mode: 0644, Dir: t.TempDir()},
	}

	_, err := NewLogProvider(conf)
	assert.Error(t, err)
}
