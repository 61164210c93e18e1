package movies_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/rlch/movies"
	"github.com/rlch/movies/dialects/memory"
)

func TestNewDialect_Unknown(t *testing.T) {
	t.Parallel()

	_, err := movies.NewDialect("postgres", movies.DialectConfig{})
	if !errors.Is(err, movies.ErrUnknownDialect) {
		t.Errorf("NewDialect() error = %v, want ErrUnknownDialect", err)
	}
}

func TestNewDialect_Memory(t *testing.T) {
	t.Parallel()

	if !slices.Contains(movies.RegisteredDialects(), "memory") {
		t.Fatal("memory dialect not registered")
	}

	store, err := movies.NewDialect("memory", movies.DialectConfig{})
	if err != nil {
		t.Fatalf("NewDialect() error = %v", err)
	}

	defer func() { _ = store.Close() }()

	if _, ok := store.(*memory.Store); !ok {
		t.Errorf("NewDialect() = %T, want *memory.Store", store)
	}
}
