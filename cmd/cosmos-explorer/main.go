// Package main is the entry point for the Cosmos DB CLI explorer.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"github.com/docdbtools/cosmos-explorer/internal/config"
	"github.com/docdbtools/cosmos-explorer/internal/dispatch"
	"github.com/docdbtools/cosmos-explorer/internal/infrastructure/docdb/cosmos"
	"github.com/docdbtools/cosmos-explorer/internal/render"
)

// Exit codes. The initial connection check failing aborts with
// ExitConnect before any command is accepted; command-level transport
// failures are rendered as diagnostics and do not change the exit code.
const (
	ExitOK      = 0
	ExitConnect = 1
	ExitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cosmos-explorer", flag.ContinueOnError)
	fs.SetInterspersed(false)
	endpoint := fs.String("endpoint", "", "Cosmos DB account endpoint URL")
	key := fs.String("key", "", "Cosmos DB account key")
	userAgent := fs.String("user-agent", "", "Custom User-Agent string or preset name")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}
	if *endpoint != "" {
		cfg.Cosmos.Endpoint = *endpoint
	}
	if *key != "" {
		cfg.Cosmos.Key = *key
	}
	if *userAgent != "" {
		cfg.Cosmos.UserAgent = *userAgent
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	setupLogging(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fs.Usage()
		return ExitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return ExitUsage
	}

	surface := render.NewConsole()

	ua, isPreset := config.ResolveUserAgent(cfg.Cosmos.UserAgent)
	switch {
	case cfg.Cosmos.UserAgent == "":
		surface.Infof("Using default User-Agent (%s)", config.DefaultUserAgentPreset)
	case isPreset:
		surface.Infof("Using preset User-Agent: %s", cfg.Cosmos.UserAgent)
	default:
		surface.Infof("Using custom User-Agent: %s", cfg.Cosmos.UserAgent)
	}

	client, err := cosmos.NewClient(&cosmos.ClientConfig{
		Endpoint:  cfg.Cosmos.Endpoint,
		Key:       cfg.Cosmos.Key,
		UserAgent: ua,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := dispatch.New(client, surface)
	return dispatchCommand(ctx, rest[0], rest[1:], client, d, surface)
}

// dispatchCommand validates the subcommand's arguments before any
// network-facing call, then connects and runs it.
func dispatchCommand(ctx context.Context, name string, args []string, client *cosmos.Client, d *dispatch.Dispatcher, surface render.Surface) int {
	switch name {
	case "databases":
		if len(args) != 0 {
			return usageError("databases")
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		d.Databases(ctx)

	case "containers":
		if len(args) != 1 {
			return usageError("containers <database_id>")
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		d.Containers(ctx, args[0])

	case "count":
		if len(args) != 2 {
			return usageError("count <database_id> <container_id>")
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		d.Count(ctx, args[0], args[1])

	case "recent":
		fs := flag.NewFlagSet("recent", flag.ContinueOnError)
		limit := fs.IntP("limit", "l", dispatch.DefaultRecentLimit, "Number of recent documents to retrieve")
		tsField := fs.StringP("timestamp-field", "t", dispatch.DefaultTimestampField, "Field to use for sorting by time")
		if err := fs.Parse(args); err != nil {
			return usageError("recent <database_id> <container_id> [--limit N] [--timestamp-field F]")
		}
		pos := fs.Args()
		if len(pos) != 2 || *limit <= 0 {
			return usageError("recent <database_id> <container_id> [--limit N] [--timestamp-field F]")
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		d.Recent(ctx, pos[0], pos[1], *limit, *tsField)

	case "query":
		fs := flag.NewFlagSet("query", flag.ContinueOnError)
		text := fs.StringP("query", "q", "", "Custom SQL query to execute")
		limit := fs.IntP("limit", "l", dispatch.DefaultFetchLimit, "Maximum number of items to display")
		maxItems := fs.Int("max-items", dispatch.DefaultFetchLimit, "Maximum number of items to fetch")
		all := fs.BoolP("all", "a", false, "Fetch up to 1000 documents (overrides --max-items)")
		if err := fs.Parse(args); err != nil {
			return usageError("query <database_id> <container_id> [--query TEXT] [--limit N] [--max-items N] [--all]")
		}
		pos := fs.Args()
		if len(pos) != 2 || *limit <= 0 || *maxItems <= 0 {
			return usageError("query <database_id> <container_id> [--query TEXT] [--limit N] [--max-items N] [--all]")
		}
		fetch := *maxItems
		if *all {
			fetch = dispatch.AllFetchLimit
			surface.Warnf("Fetching up to %d documents", dispatch.AllFetchLimit)
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		d.Query(ctx, pos[0], pos[1], *text, fetch, *limit)

	case "get":
		if len(args) != 4 {
			return usageError("get <database_id> <container_id> <item_id> <partition_key>")
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		d.Get(ctx, args[0], args[1], args[2], args[3])

	case "interactive":
		if len(args) != 0 {
			return usageError("interactive")
		}
		if !connect(ctx, client, surface) {
			return ExitConnect
		}
		reader := dispatch.NewLinerReader()
		defer reader.Close()
		dispatch.NewREPL(d, reader, surface).Run(ctx)

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage(os.Stderr, nil)
		return ExitUsage
	}

	return ExitOK
}

// connect performs the initial connection check. Both one-shot and
// interactive modes abort before accepting any command when it fails.
func connect(ctx context.Context, client *cosmos.Client, surface render.Surface) bool {
	surface.Infof("Connecting to Cosmos DB...")
	if err := client.Connect(ctx); err != nil {
		surface.Errorf("Connection failed: %v", err)
		return false
	}
	surface.Infof("Connected to Cosmos DB successfully")
	return true
}

func usageError(usage string) int {
	fmt.Fprintf(os.Stderr, "Usage: cosmos-explorer %s\n", usage)
	return ExitUsage
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, `Cosmos DB CLI Explorer - explore databases, containers and documents.

Usage: cosmos-explorer [global flags] <command> [args]

Commands:
  databases                                     List all databases
  containers <database_id>                      List containers in a database
  count <database_id> <container_id>            Count documents in a container
  recent <database_id> <container_id>           Get the most recent documents
  query <database_id> <container_id>            Execute a SQL query
  get <db> <container> <item_id> <pk>           Get a specific item
  interactive                                   Start interactive mode

Credentials may also be supplied via COSMOS_ENDPOINT / COSMOS_KEY
environment variables or a .env file.
`)
	if fs != nil {
		fmt.Fprintf(w, "\nGlobal flags:\n%s", fs.FlagUsages())
	}
}
