// Package cypher provides the movies store backed by Neo4j.
package cypher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/rlch/movies"
)

//nolint:gochecknoinits // Dialect self-registration pattern
func init() {
	movies.RegisterDialect("cypher", New)
}

// Queries are constant; every user supplied value is bound as a parameter.
const (
	graphQuery = `MATCH (m:Movie)<-[:ACTED_IN]-(a:Person)
RETURN m.title AS movie, collect(a.name) AS cast
LIMIT $limit`

	searchQuery = `MATCH (movie:Movie)
WHERE toLower(movie.title) CONTAINS toLower($title)
RETURN movie`

	movieQuery = `MATCH (movie:Movie {title: $title})
OPTIONAL MATCH (movie)<-[r]-(person:Person)
RETURN movie.title AS title, collect([person.name, type(r), r.roles]) AS cast
LIMIT 1`

	voteQuery = `MATCH (m:Movie {title: $title})
SET m.votes = coalesce(m.votes, 0) + 1`
)

// Store implements movies.Store for Cypher queries against Neo4j.
type Store struct {
	driver neo4j.DriverWithContext
	db     string
}

// New creates a new Cypher store from the given configuration.
func New(cfg movies.DialectConfig) (movies.Store, error) { //nolint:ireturn // Factory returns interface per Dialect pattern
	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth)
	if err != nil {
		return nil, fmt.Errorf("cypher: failed to create driver: %w", err)
	}

	s := &Store{
		driver: driver,
	}

	// Neo4j 3 has a single, unnamed database.
	if !strings.HasPrefix(cfg.Version, "3") {
		s.db = cfg.Database
	}

	// Verify connectivity
	ctx := context.Background()

	err = driver.VerifyConnectivity(ctx)
	if err != nil {
		_ = driver.Close(ctx)

		return nil, fmt.Errorf("cypher: failed to connect: %w", err)
	}

	return s, nil
}

// Name returns the dialect identifier.
func (s *Store) Name() string {
	return "cypher"
}

// Graph returns the movie/actor view of at most limit movies.
func (s *Store) Graph(ctx context.Context, limit any) (*movies.GraphView, error) {
	records, err := s.collect(ctx, neo4j.AccessModeRead, graphQuery, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}

	g := movies.NewGraphView()

	for _, record := range records {
		title, _ := get[string](record, "movie")
		names, _ := get[[]any](record, "cast")

		cast := make([]string, 0, len(names))
		for _, name := range names {
			if n, ok := name.(string); ok {
				cast = append(cast, n)
			}
		}

		g.AddMovie(title, cast)
	}

	return g, nil
}

// Search returns movies whose title contains q, ignoring case.
func (s *Store) Search(ctx context.Context, q string) ([]movies.Movie, error) {
	records, err := s.collect(ctx, neo4j.AccessModeRead, searchQuery, map[string]any{"title": q})
	if err != nil {
		return nil, err
	}

	result := make([]movies.Movie, 0, len(records))

	for _, record := range records {
		node, ok := get[dbtype.Node](record, "movie")
		if !ok {
			continue
		}

		result = append(result, movieFromProps(node.Props))
	}

	return result, nil
}

// Movie returns the movie with exactly this title and everyone related to it.
func (s *Store) Movie(ctx context.Context, title string) (*movies.MovieDetail, error) {
	records, err := s.collect(ctx, neo4j.AccessModeRead, movieQuery, map[string]any{"title": title})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, movies.ErrMovieNotFound
	}

	record := records[0]
	detail := &movies.MovieDetail{Cast: []movies.CastMember{}}
	detail.Title, _ = get[string](record, "title")

	rows, _ := get[[]any](record, "cast")
	for _, row := range rows {
		if member, ok := castFromRow(row); ok {
			detail.Cast = append(detail.Cast, member)
		}
	}

	return detail, nil
}

// Vote adds one vote to the movie and returns the number of properties set.
func (s *Store) Vote(ctx context.Context, title string) (int, error) {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, voteQuery, map[string]any{"title": title})
	if err != nil {
		return 0, fmt.Errorf("cypher: query execution failed: %w", err)
	}

	summary, err := result.Consume(ctx)
	if err != nil {
		return 0, fmt.Errorf("cypher: failed to consume result: %w", err)
	}

	return summary.Counters().PropertiesSet(), nil
}

// Ping verifies that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	err := s.driver.VerifyConnectivity(ctx)
	if err != nil {
		return fmt.Errorf("cypher: failed to connect: %w", err)
	}

	return nil
}

// Close releases the driver and its connection pool.
func (s *Store) Close() error {
	if s.driver == nil {
		return nil
	}

	err := s.driver.Close(context.Background())
	if err != nil {
		return fmt.Errorf("cypher: failed to close driver: %w", err)
	}

	return nil
}

func (s *Store) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext { //nolint:ireturn
	cfg := neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: s.db,
	}

	return s.driver.NewSession(ctx, cfg)
}

// collect runs query as an auto-commit transaction in a fresh session and
// returns all records. The session is closed before returning.
func (s *Store) collect(ctx context.Context, mode neo4j.AccessMode, query string, params map[string]any) ([]*neo4j.Record, error) {
	session := s.session(ctx, mode)
	defer func() { _ = session.Close(ctx) }()

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("cypher: query execution failed: %w", err)
	}

	records, err := result.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("cypher: failed to collect results: %w", err)
	}

	return records, nil
}

// get returns the record value for key when present and of type T.
func get[T any](record *neo4j.Record, key string) (T, bool) {
	var zero T

	raw, ok := record.Get(key)
	if !ok {
		return zero, false
	}

	v, ok := raw.(T)
	if !ok {
		return zero, false
	}

	return v, true
}

// movieFromProps maps Movie node properties onto movies.Movie.
func movieFromProps(props map[string]any) movies.Movie {
	m := movies.Movie{
		ID:       plain(props["id"]),
		Summary:  stringProp(props, "summary"),
		Released: plain(props["released"]),
		Duration: plain(props["duration"]),
		Rated:    stringProp(props, "rated"),
		Tagline:  stringProp(props, "tagline"),
	}

	m.Title, _ = props["title"].(string)

	switch votes := props["votes"].(type) {
	case int64:
		m.Votes = votes
	case float64:
		m.Votes = int64(votes)
	}

	return m
}

// castFromRow converts a [name, type, roles] triple. Rows produced by the
// optional match for a movie without relationships carry a null name and
// are dropped.
func castFromRow(row any) (movies.CastMember, bool) {
	values, ok := row.([]any)
	if !ok || len(values) != 3 {
		return movies.CastMember{}, false
	}

	name, ok := values[0].(string)
	if !ok {
		return movies.CastMember{}, false
	}

	relType, _ := values[1].(string)

	member := movies.CastMember{
		Name: name,
		Job:  movies.JobFromType(relType),
	}

	if roles, ok := values[2].([]any); ok {
		member.Role = make([]string, 0, len(roles))
		for _, r := range roles {
			if role, ok := r.(string); ok {
				member.Role = append(member.Role, role)
			}
		}
	}

	return member, true
}

func stringProp(props map[string]any, key string) *string {
	if v, ok := props[key].(string); ok {
		return &v
	}

	return nil
}

// plain converts driver temporal values into JSON friendly strings.
func plain(v any) any {
	switch t := v.(type) {
	case dbtype.Date:
		return t.Time().Format(time.DateOnly)
	case dbtype.LocalDateTime:
		return t.Time().Format("2006-01-02T15:04:05")
	case dbtype.LocalTime:
		return t.Time().Format(time.TimeOnly)
	case time.Time:
		return t.Format(time.RFC3339)
	case dbtype.Duration:
		return t.String()
	default:
		return v
	}
}

// Ensure Store implements movies.Store.
var _ movies.Store = (*Store)(nil)
