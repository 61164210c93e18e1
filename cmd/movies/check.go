package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/rlch/movies"
)

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Check that the configured store is reachable and answers queries",
		Action: runCheck,
	}
}

// checkStep is one line of the check report.
type checkStep struct {
	name string
	run  func(ctx context.Context, store movies.Store) (string, error)
}

var checkSteps = []checkStep{
	{
		name: "connect",
		run: func(ctx context.Context, store movies.Store) (string, error) {
			return store.Name(), pingStore(ctx, store)
		},
	},
	{
		name: "graph",
		run: func(ctx context.Context, store movies.Store) (string, error) {
			g, err := store.Graph(ctx, int64(1))
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("%d nodes, %d links", len(g.Nodes), len(g.Links)), nil
		},
	},
	{
		name: "search",
		run: func(ctx context.Context, store movies.Store) (string, error) {
			found, err := store.Search(ctx, "")
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("%d movies", len(found)), nil
		},
	},
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	st := defaultStyles()

	fmt.Fprintf(out, "%s %s\n", st.Bold.Render("movies check"), st.Dim.Render(cfg.Dialect+" "+cfg.Connection.URI))

	store, err := openStore(cfg)
	if err != nil {
		report(out, st, "open", "", 0, err)

		return cli.Exit("", 1)
	}

	defer func() { _ = store.Close() }()

	failed := false

	for _, step := range checkSteps {
		start := time.Now()
		detail, err := step.run(ctx, store)
		report(out, st, step.name, detail, time.Since(start), err)

		if err != nil {
			failed = true
		}
	}

	if failed {
		return cli.Exit("", 1)
	}

	return nil
}

func report(out io.Writer, st *styles, name, detail string, took time.Duration, err error) {
	if err != nil {
		fmt.Fprintf(out, "%s %-8s %s\n", st.Fail.Render(st.SymbolFail), name, err)

		return
	}

	fmt.Fprintf(out, "%s %-8s %s %s\n", st.Pass.Render(st.SymbolPass), name, detail,
		st.Dim.Render(took.Round(time.Millisecond).String()))
}
