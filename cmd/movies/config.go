package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/rlch/movies"
)

// loadConfig resolves settings with precedence flag > env > file > default.
func loadConfig(cmd *cli.Command) (*movies.Config, error) {
	var (
		cfg *movies.Config
		err error
	)

	if path := cmd.String("config"); path != "" {
		cfg, err = movies.LoadConfigFile(path)
	} else {
		cfg, err = movies.LoadConfig(".")
	}

	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	override := func(name string, dst *string) {
		if cmd.IsSet(name) {
			*dst = cmd.String(name)
		}
	}

	override("dialect", &cfg.Dialect)
	override("uri", &cfg.Connection.URI)
	override("username", &cfg.Connection.Username)
	override("password", &cfg.Connection.Password)
	override("database", &cfg.Connection.Database)
	override("neo4j-version", &cfg.Connection.Version)
	override("dataset", &cfg.Dataset)
	override("log-level", &cfg.LogLevel)

	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}

	return cfg, nil
}

// openStore creates the configured store.
func openStore(cfg *movies.Config) (movies.Store, error) { //nolint:ireturn
	conn := cfg.Connection
	if cfg.Dataset != "" {
		options := make(map[string]any, len(conn.Options)+1)
		for k, v := range conn.Options {
			options[k] = v
		}

		options["dataset"] = cfg.Dataset
		conn.Options = options
	}

	store, err := movies.NewDialect(cfg.Dialect, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	return store, nil
}

// pingStore checks connectivity once, for commands that report on it.
func pingStore(ctx context.Context, store movies.Store) error {
	err := store.Ping(ctx)
	if err != nil {
		return fmt.Errorf("%s store unreachable: %w", store.Name(), err)
	}

	return nil
}
