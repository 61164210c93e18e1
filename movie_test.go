package movies_test

import (
	"encoding/json"
	"testing"

	"github.com/rlch/movies"
)

func TestJobFromType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		relType string
		want    string
	}{
		{"ACTED_IN", "acted"},
		{"DIRECTED", "directed"},
		{"PRODUCED", "produced"},
		{"WROTE", "wrote"},
		{"REVIEWED_BY_CRITIC", "reviewed"},
		{"_LEADING", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.relType, func(t *testing.T) {
			t.Parallel()

			if got := movies.JobFromType(tt.relType); got != tt.want {
				t.Errorf("JobFromType(%q) = %q, want %q", tt.relType, got, tt.want)
			}
		})
	}
}

func TestMovieDetail_JSON(t *testing.T) {
	t.Parallel()

	detail := movies.MovieDetail{
		Title: "Test Film",
		Cast: []movies.CastMember{
			{Name: "Ann", Job: movies.JobFromType("ACTED_IN"), Role: []string{"Lead"}},
			{Name: "Bob", Job: movies.JobFromType("DIRECTED")},
		},
	}

	data, err := json.Marshal(detail)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"title":"Test Film","cast":[{"name":"Ann","job":"acted","role":["Lead"]},` +
		`{"name":"Bob","job":"directed","role":null}]}`
	if got := string(data); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestMovie_JSONMissingProperties(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(movies.Movie{Title: "Untitled"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"id":null,"title":"Untitled","summary":null,"released":null,"duration":null,` +
		`"rated":null,"tagline":null,"votes":0}`
	if got := string(data); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}
