package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/vladislavdragonenkov/webshop/internal/auth"
	"github.com/vladislavdragonenkov/webshop/internal/fixtures"
	"github.com/vladislavdragonenkov/webshop/internal/storage/postgres"
)

const defaultTimeout = 30 * time.Second

var errUsage = errors.New("usage: migrate [-dsn DSN] [-steps N] [-dataset NAME] up|down|status|reload|datasets")

type options struct {
	command string
	dsn     string
	steps   int
	dataset string
	cost    int
}

func parseArgs(args []string, lookup func(string) (string, bool)) (options, error) {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var opts options
	fs.StringVar(&opts.dsn, "dsn", "", "PostgreSQL DSN (fallback: WEBSHOP_POSTGRES_DSN)")
	fs.IntVar(&opts.steps, "steps", 0, "number of migrations to apply/rollback (0=all for up, 1 for down)")
	fs.StringVar(&opts.dataset, "dataset", fixtures.DefaultDataset, "fixture dataset for reload")
	fs.IntVar(&opts.cost, "bcrypt-cost", bcrypt.DefaultCost, "bcrypt cost for fixture passwords")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	if fs.NArg() != 1 {
		return options{}, errUsage
	}
	opts.command = strings.ToLower(strings.TrimSpace(fs.Arg(0)))

	switch opts.command {
	case "up", "down", "status", "reload", "datasets":
	default:
		return options{}, fmt.Errorf("%w: unsupported command %q", errUsage, opts.command)
	}

	if strings.TrimSpace(opts.dsn) == "" {
		if v, ok := lookup("WEBSHOP_POSTGRES_DSN"); ok {
			opts.dsn = strings.TrimSpace(v)
		}
	}
	if opts.dsn == "" && opts.command != "datasets" {
		return options{}, errors.New("WEBSHOP_POSTGRES_DSN (or -dsn) is required")
	}
	if opts.command == "down" && opts.steps <= 0 {
		opts.steps = 1
	}
	return opts, nil
}

func run(ctx context.Context, opts options, out io.Writer) error {
	if opts.command == "datasets" {
		for _, name := range fixtures.Names() {
			_, _ = fmt.Fprintln(out, name)
		}
		return nil
	}

	store, err := postgres.Open(ctx, opts.dsn)
	if err != nil {
		return fmt.Errorf("open postgres store: %w", err)
	}
	defer store.Close()

	switch opts.command {
	case "up":
		if err := store.MigrateUp(ctx, opts.steps); err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
	case "down":
		if err := store.MigrateDown(ctx, opts.steps); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
	case "reload":
		reloader := fixtures.NewReloader(store, auth.NewBcryptHasher(opts.cost))
		if err := reloader.ReloadFixtures(ctx, opts.dataset); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "reload ok: dataset=%s\n", opts.dataset)
		return nil
	}

	state, err := store.MigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("migration status: %w", err)
	}
	_, _ = fmt.Fprintf(out, "%s ok: version=%d applied=%d pending=%d\n", opts.command, state.Version, state.Applied, len(state.Pending))
	for _, m := range state.Pending {
		_, _ = fmt.Fprintf(out, "  pending %04d_%s\n", m.Version, m.Name)
	}
	return nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.LookupEnv)
	if err != nil {
		fail(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := run(ctx, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func fail(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
