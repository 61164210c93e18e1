// Package movies serves a small movie/actor graph over HTTP.
//
// The root package holds the domain types shared by the store dialects
// (dialects/cypher, dialects/memory) and the HTTP server.
package movies

import "strings"

// Movie is a Movie node as returned by search. Properties missing on the
// node are nil and encode as JSON null; Votes defaults to 0.
type Movie struct {
	ID       any     `json:"id"`
	Title    string  `json:"title"`
	Summary  *string `json:"summary"`
	Released any     `json:"released"`
	Duration any     `json:"duration"`
	Rated    *string `json:"rated"`
	Tagline  *string `json:"tagline"`
	Votes    int64   `json:"votes"`
}

// CastMember is one person attached to a movie by a relationship.
type CastMember struct {
	Name string `json:"name"`
	// Job is derived from the relationship type, see JobFromType.
	Job string `json:"job"`
	// Role holds the relationship's roles, nil when it has none.
	Role []string `json:"role"`
}

// MovieDetail is a movie title with its cast.
type MovieDetail struct {
	Title string       `json:"title"`
	Cast  []CastMember `json:"cast"`
}

// JobFromType derives a job name from a relationship type: the lowercased
// token before the first underscore ("ACTED_IN" -> "acted").
func JobFromType(relType string) string {
	job, _, _ := strings.Cut(strings.ToLower(relType), "_")

	return job
}
