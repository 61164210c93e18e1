// Package memory provides an in-process movies store.
//
// It answers the same questions as the cypher dialect over a small graph
// held in maps, loaded from a YAML dataset or built with AddMovie,
// AddPerson and Relate. It is used for offline demos and tests.
package memory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/rlch/movies"
)

//nolint:gochecknoinits // Dialect self-registration pattern
func init() {
	movies.RegisterDialect("memory", New)
}

// Dataset is the YAML document loaded by the memory dialect.
type Dataset struct {
	Movies        []MovieRecord        `yaml:"movies"`
	People        []string             `yaml:"people"`
	Relationships []RelationshipRecord `yaml:"relationships"`
}

// MovieRecord holds the properties of a Movie node.
type MovieRecord struct {
	ID       string `yaml:"id,omitempty"`
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary,omitempty"`
	Released any    `yaml:"released,omitempty"`
	Duration any    `yaml:"duration,omitempty"`
	Rated    string `yaml:"rated,omitempty"`
	Tagline  string `yaml:"tagline,omitempty"`
	Votes    int64  `yaml:"votes,omitempty"`
}

// RelationshipRecord is a typed edge from a person to a movie.
type RelationshipRecord struct {
	Person string   `yaml:"person"`
	Type   string   `yaml:"type"`
	Movie  string   `yaml:"movie"`
	Roles  []string `yaml:"roles,omitempty"`
}

// Store implements movies.Store over an in-memory graph.
type Store struct {
	mu     sync.RWMutex
	movies []*MovieRecord
	byName map[string]*MovieRecord
	people map[string]bool
	rels   []RelationshipRecord
}

// New creates a store, loading the dataset named by the "dataset" option
// when present.
func New(cfg movies.DialectConfig) (movies.Store, error) { //nolint:ireturn // Factory returns interface per Dialect pattern
	s := NewStore()

	path, _ := cfg.Options["dataset"].(string)
	if path == "" {
		return s, nil
	}

	ds, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}

	err = s.Load(ds)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byName: make(map[string]*MovieRecord),
		people: make(map[string]bool),
	}
}

// LoadDataset reads a YAML dataset from path.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("memory: failed to read dataset: %w", err)
	}

	var ds Dataset

	err = yaml.Unmarshal(data, &ds)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to parse dataset %s: %w", path, err)
	}

	return &ds, nil
}

// Load adds every movie, person and relationship of ds to the store.
func (s *Store) Load(ds *Dataset) error {
	for _, m := range ds.Movies {
		s.AddMovie(m)
	}

	for _, p := range ds.People {
		s.AddPerson(p)
	}

	for _, r := range ds.Relationships {
		err := s.Relate(r.Person, r.Type, r.Movie, r.Roles...)
		if err != nil {
			return err
		}
	}

	return nil
}

// AddMovie adds a movie node. Titles are unique; a later movie with the
// same title replaces the earlier one's properties.
func (s *Store) AddMovie(m MovieRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byName[m.Title]; ok {
		*existing = m

		return
	}

	rec := m
	s.movies = append(s.movies, &rec)
	s.byName[m.Title] = &rec
}

// AddPerson adds a person node.
func (s *Store) AddPerson(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.people[name] = true
}

// Relate connects a person to a movie with a typed relationship. The person
// is created if needed; the movie must exist.
func (s *Store) Relate(person, relType, title string, roles ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byName[title]; !ok {
		return fmt.Errorf("memory: relate %s to %q: %w", person, title, movies.ErrMovieNotFound)
	}

	s.people[person] = true
	s.rels = append(s.rels, RelationshipRecord{
		Person: person,
		Type:   relType,
		Movie:  title,
		Roles:  roles,
	})

	return nil
}

// Name returns the dialect identifier.
func (s *Store) Name() string {
	return "memory"
}

// Graph groups ACTED_IN relationships by movie, in movie insertion order,
// and returns at most limit movies.
func (s *Store) Graph(_ context.Context, limit any) (*movies.GraphView, error) {
	n, err := toLimit(limit)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g := movies.NewGraphView()

	for _, m := range s.movies {
		if n == 0 {
			break
		}

		var cast []string

		for _, r := range s.rels {
			if r.Movie == m.Title && r.Type == "ACTED_IN" {
				cast = append(cast, r.Person)
			}
		}

		if len(cast) == 0 {
			continue
		}

		g.AddMovie(m.Title, cast)
		n--
	}

	return g, nil
}

// Search returns movies whose title contains q, ignoring case.
func (s *Store) Search(_ context.Context, q string) ([]movies.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q)
	result := []movies.Movie{}

	for _, m := range s.movies {
		if strings.Contains(strings.ToLower(m.Title), needle) {
			result = append(result, m.movie())
		}
	}

	return result, nil
}

// Movie returns the movie with exactly this title and its cast.
func (s *Store) Movie(_ context.Context, title string) (*movies.MovieDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byName[title]
	if !ok {
		return nil, movies.ErrMovieNotFound
	}

	detail := &movies.MovieDetail{Title: m.Title, Cast: []movies.CastMember{}}

	for _, r := range s.rels {
		if r.Movie != title {
			continue
		}

		detail.Cast = append(detail.Cast, movies.CastMember{
			Name: r.Person,
			Job:  movies.JobFromType(r.Type),
			Role: r.Roles,
		})
	}

	return detail, nil
}

// Vote adds one vote to the movie.
func (s *Store) Vote(_ context.Context, title string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.byName[title]
	if !ok {
		return 0, nil
	}

	m.Votes++

	return 1, nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func (m *MovieRecord) movie() movies.Movie {
	out := movies.Movie{
		Title:    m.Title,
		Released: m.Released,
		Duration: m.Duration,
		Summary:  optional(m.Summary),
		Rated:    optional(m.Rated),
		Tagline:  optional(m.Tagline),
		Votes:    m.Votes,
	}

	if m.ID != "" {
		out.ID = m.ID
	}

	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

// toLimit accepts the integer kinds a database would accept for LIMIT.
func toLimit(v any) (int64, error) {
	var n int64

	switch l := v.(type) {
	case int:
		n = int64(l)
	case int32:
		n = int64(l)
	case int64:
		n = l
	default:
		return 0, fmt.Errorf("memory: %w: got %T", movies.ErrInvalidLimit, v)
	}

	if n < 0 {
		return 0, fmt.Errorf("memory: %w: got %d", movies.ErrInvalidLimit, n)
	}

	return n, nil
}

// Ensure Store implements movies.Store.
var _ movies.Store = (*Store)(nil)
