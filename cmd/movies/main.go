// Package main provides the movies CLI: the HTTP server and a connectivity check.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	// Register dialects.
	_ "github.com/rlch/movies/dialects/cypher"
	_ "github.com/rlch/movies/dialects/memory"
)

var version = "dev"

func main() {
	err := newApp().Run(context.Background(), os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "movies",
		Version: version,
		Usage:   "Neo4j movie graph web service",
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			serveCommand(),
			checkCommand(),
		},
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to movies.yaml (default: nearest movies.yaml above the working directory)",
			Sources: cli.EnvVars("MOVIES_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "dialect",
			Aliases: []string{"d"},
			Usage:   "store dialect (cypher, memory)",
			Sources: cli.EnvVars("MOVIES_DIALECT"),
		},
		&cli.StringFlag{
			Name:    "uri",
			Usage:   "database connection URI",
			Sources: cli.EnvVars("NEO4J_URI"),
		},
		&cli.StringFlag{
			Name:    "username",
			Aliases: []string{"u"},
			Usage:   "database username",
			Sources: cli.EnvVars("NEO4J_USER"),
		},
		&cli.StringFlag{
			Name:    "password",
			Aliases: []string{"p"},
			Usage:   "database password",
			Sources: cli.EnvVars("NEO4J_PASSWORD"),
		},
		&cli.StringFlag{
			Name:    "database",
			Usage:   "database name",
			Sources: cli.EnvVars("NEO4J_DATABASE"),
		},
		&cli.StringFlag{
			Name:    "neo4j-version",
			Usage:   "Neo4j server major version; 3 disables database selection",
			Sources: cli.EnvVars("NEO4J_VERSION"),
		},
		&cli.StringFlag{
			Name:    "dataset",
			Usage:   "YAML dataset for the memory dialect",
			Sources: cli.EnvVars("MOVIES_DATASET"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level (debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
	}
}
