package movies

import "errors"

var (
	// ErrMovieNotFound is returned when no movie has the requested title.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrUnknownDialect is returned by NewDialect for unregistered names.
	ErrUnknownDialect = errors.New("unknown dialect")

	// ErrConfigNotFound is returned when no config file exists up to the root.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidLimit is returned by stores that validate the graph limit themselves.
	ErrInvalidLimit = errors.New("limit must be a non-negative integer")
)
