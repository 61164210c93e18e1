package movies_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rlch/movies"
)

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "movies.yaml")

	writeFile(t, path, `
dialect: memory
dataset: data/movies.yaml
port: 9090
connection:
  uri: neo4j://localhost:7687
  database: neo4j
`)

	cfg, err := movies.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile() error = %v", err)
	}

	want := &movies.Config{
		Dialect: "memory",
		Dataset: filepath.Join(dir, "data", "movies.yaml"),
		Port:    9090,
		Connection: movies.DialectConfig{
			URI:      "neo4j://localhost:7687",
			Username: movies.DefaultUsername,
			Password: movies.DefaultPassword,
			Database: "neo4j",
			Version:  movies.DefaultVersion,
		},
		LogLevel: movies.DefaultLogLevel,
	}

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("LoadConfigFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "movies.yaml")
	writeFile(t, path, "port: [not, a, port]\n")

	if _, err := movies.LoadConfigFile(path); err == nil {
		t.Error("LoadConfigFile() error = nil, want error")
	}
}

func TestFindConfig_WalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")

	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, ".movies.yaml")
	writeFile(t, path, "port: 1\n")

	got, err := movies.FindConfig(nested)
	if err != nil {
		t.Fatalf("FindConfig() error = %v", err)
	}

	if got != path {
		t.Errorf("FindConfig() = %q, want %q", got, path)
	}
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// A config higher up the real filesystem would be picked up, so only
	// assert when none exists.
	if _, err := movies.FindConfig(dir); !errors.Is(err, movies.ErrConfigNotFound) {
		t.Skip("a movies config exists above the temp dir")
	}

	cfg, err := movies.LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if diff := cmp.Diff(movies.DefaultConfig(), cfg); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
