package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap/zapcore"

	"github.com/rlch/movies"
)

const testDataset = "../../dialects/memory/testdata/movies.yaml"

// runApp runs the CLI with args and returns its output and error without
// exiting the test binary on cli.Exit.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(t.Context(), append([]string{"movies"}, args...))

	return out.String(), err
}

func TestCheck_Memory(t *testing.T) {
	out, err := runApp(t, "--dialect", "memory", "--dataset", testDataset, "check")
	require.NoError(t, err)

	assert.Contains(t, out, "connect")
	assert.Contains(t, out, "3 nodes, 2 links")
	assert.Contains(t, out, "4 movies")
}

func TestCheck_UnknownDialect(t *testing.T) {
	out, err := runApp(t, "--dialect", "bogus", "check")
	require.Error(t, err)

	assert.Contains(t, out, "unknown dialect")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dialect: memory
port: 9000
log_level: debug
connection:
  uri: neo4j://from-file:7687
  database: filedb
`), 0o600))

	t.Setenv("NEO4J_DATABASE", "envdb")
	t.Setenv("PORT", "9100")

	var got *movies.Config

	app := newApp()
	serve := app.Command("serve")
	serve.Action = func(_ context.Context, cmd *cli.Command) error {
		var err error
		got, err = loadConfig(cmd)

		return err
	}

	err := app.Run(t.Context(), []string{"movies", "--config", path, "--uri", "bolt://from-flag:7687", "serve"})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "memory", got.Dialect)
	assert.Equal(t, "bolt://from-flag:7687", got.Connection.URI)
	assert.Equal(t, "envdb", got.Connection.Database)
	assert.Equal(t, movies.DefaultUsername, got.Connection.Username)
	assert.Equal(t, 9100, got.Port)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("warn")
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = newLogger("loud")
	assert.Error(t, err)
}
