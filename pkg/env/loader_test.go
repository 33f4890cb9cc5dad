package env_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/envkit/pkg/env"
	"github.com/dmitrymomot/envkit/pkg/kind"
	"github.com/dmitrymomot/envkit/pkg/logger"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	src := env.NewMapSource(map[string]string{"APP_NAME": "preset"})
	e := env.New(env.WithSource(src))

	require.True(t, e.LoadFile("testdata/.env"))

	name, err := e.GetString("APP_NAME")
	require.NoError(t, err)
	assert.Equal(t, "preset", name, "existing variables are not overridden")

	port, err := e.GetInt("APP_PORT")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)

	secret, err := e.GetString("APP_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t value", secret)

	hosts, err := e.GetList("APP_HOSTS", kind.String)
	require.NoError(t, err)
	assert.Equal(t, []any{"a.example.com;b.example.com"}, hosts)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	e := newEnv(nil)
	assert.False(t, e.LoadFile("testdata/does-not-exist.env"))

	err := e.LoadFiles("testdata/does-not-exist.env")
	require.ErrorIs(t, err, env.ErrLoadingFile)
}

func TestLoadFile_DefaultPath(t *testing.T) {
	t.Parallel()

	e := newEnv(map[string]string{"ENVKIT_DOTENV_PATH": "testdata/.env"})
	assert.Equal(t, "testdata/.env", e.Settings().DotenvPath)

	require.True(t, e.LoadFile(""))

	debug, err := e.GetBool("APP_DEBUG")
	require.NoError(t, err)
	assert.True(t, debug)
}

func TestLoadFiles_LaterFileWins(t *testing.T) {
	t.Parallel()

	e := newEnv(nil)
	require.NoError(t, e.LoadFiles("testdata/.env", "testdata/.env.local"))

	port, err := e.GetInt("APP_PORT")
	require.NoError(t, err)
	assert.Equal(t, int64(9090), port)

	region, err := e.GetString("APP_REGION")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", region)

	name, err := e.GetString("APP_NAME")
	require.NoError(t, err)
	assert.Equal(t, "envkit", name)
}

func TestOverloadFiles(t *testing.T) {
	t.Parallel()

	e := newEnv(map[string]string{"APP_PORT": "1"})
	require.NoError(t, e.OverloadFiles("testdata/.env"))

	port, err := e.GetInt("APP_PORT")
	require.NoError(t, err)
	assert.Equal(t, int64(8080), port)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	vars, err := env.ReadFile("testdata/.env.local")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"APP_PORT": "9090", "APP_REGION": "eu-west-1"}, vars)

	_, err = env.ReadFile("testdata/missing.env")
	require.ErrorIs(t, err, env.ErrLoadingFile)
}

func TestLoadUserFile(t *testing.T) {
	// Registered first so it runs after t.Setenv restores the variable.
	t.Cleanup(xdg.Reload)

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()

	appDir := filepath.Join(dir, "envkit-test")
	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, ".env"), []byte("USER_LEVEL=3\n"), 0o600))

	var logs bytes.Buffer
	e := newEnv(nil, env.WithLogger(logger.New(
		logger.WithOutput(&logs), logger.WithLevel(slog.LevelDebug), logger.WithTextFormatter(),
	)))
	require.True(t, e.LoadUserFile("envkit-test"))
	assert.Contains(t, logs.String(), "path="+filepath.Join(appDir, ".env"))

	level, err := e.GetInt("USER_LEVEL")
	require.NoError(t, err)
	assert.Equal(t, int64(3), level)

	assert.False(t, e.LoadUserFile("envkit-missing-app"))
}

func TestPackageLevelLoadFile(t *testing.T) {
	for _, name := range []string{"APP_PORT", "APP_REGION"} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}

	require.True(t, env.LoadFile("testdata/.env.local"))
	assert.Equal(t, "eu-west-1", os.Getenv("APP_REGION"))
	assert.Equal(t, "9090", os.Getenv("APP_PORT"))
}
