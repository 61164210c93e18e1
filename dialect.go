package movies

import (
	"context"
	"fmt"
	"sort"
)

// Store defines the operations the HTTP layer needs from a movie graph backend.
type Store interface {
	// Name returns the dialect identifier (e.g., "cypher", "memory").
	Name() string

	// Graph returns the actor/movie view of at most limit movies.
	// limit is bound as the query's $limit parameter without further checks,
	// so a non-integer value fails inside the backend.
	Graph(ctx context.Context, limit any) (*GraphView, error)

	// Search returns movies whose title contains q, ignoring case.
	Search(ctx context.Context, q string) ([]Movie, error)

	// Movie returns the movie with exactly this title and its cast.
	// It returns ErrMovieNotFound when no movie matches.
	Movie(ctx context.Context, title string) (*MovieDetail, error)

	// Vote adds one vote to the movie and reports how many properties the
	// write set: 1 when the movie exists, 0 otherwise.
	Vote(ctx context.Context, title string) (int, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}

// DialectFactory creates a Store from connection configuration.
type DialectFactory func(cfg DialectConfig) (Store, error)

// DialectConfig holds connection settings for a dialect.
type DialectConfig struct {
	// Connection URI (e.g., "neo4j://localhost:7687")
	URI string `yaml:"uri,omitempty"`

	// Optional credentials (if not in URI)
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`

	// Target database name. Ignored by servers that only have one.
	Database string `yaml:"database,omitempty"`

	// Server major version, e.g. "4" or "5". Neo4j 3 has no named databases.
	Version string `yaml:"version,omitempty"`

	// Dialect-specific options
	Options map[string]any `yaml:"options,omitempty"`
}

var dialects = make(map[string]DialectFactory)

// RegisterDialect registers a dialect factory by name.
func RegisterDialect(name string, factory DialectFactory) {
	dialects[name] = factory
}

// NewDialect creates a store by dialect name.
func NewDialect(name string, cfg DialectConfig) (Store, error) { //nolint:ireturn
	factory, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, name)
	}

	return factory(cfg)
}

// RegisteredDialects returns the names of all registered dialects, sorted.
func RegisteredDialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
