package dispatch

import (
	"context"
	"strconv"
	"strings"
)

// command declares one interactive command: its name, argument arity
// range and handler. Tokenizing on whitespace and rejoining free-form
// SQL with single spaces is lossy (consecutive spaces and quoting are
// not preserved); that is a documented limitation of the line grammar.
type command struct {
	name    string
	minArgs int
	maxArgs int // -1 means variadic
	usage   string
	run     func(d *Dispatcher, ctx context.Context, args []string)
}

var commands = []command{
	{
		name:    "databases",
		minArgs: 0,
		maxArgs: 0,
		usage:   "databases",
		run: func(d *Dispatcher, ctx context.Context, _ []string) {
			d.Databases(ctx)
		},
	},
	{
		name:    "containers",
		minArgs: 1,
		maxArgs: 1,
		usage:   "containers <database_id>",
		run: func(d *Dispatcher, ctx context.Context, args []string) {
			d.Containers(ctx, args[0])
		},
	},
	{
		name:    "count",
		minArgs: 2,
		maxArgs: 2,
		usage:   "count <database_id> <container_id>",
		run: func(d *Dispatcher, ctx context.Context, args []string) {
			d.Count(ctx, args[0], args[1])
		},
	},
	{
		name:    "recent",
		minArgs: 2,
		maxArgs: 3,
		usage:   "recent <database_id> <container_id> [limit]",
		run: func(d *Dispatcher, ctx context.Context, args []string) {
			limit := DefaultRecentLimit
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil || n <= 0 {
					d.surface.Usage("recent <database_id> <container_id> [limit]")
					return
				}
				limit = n
			}
			d.Recent(ctx, args[0], args[1], limit, DefaultTimestampField)
		},
	},
	{
		name:    "query",
		minArgs: 2,
		maxArgs: -1,
		usage:   "query <database_id> <container_id> [sql_query] [--all]",
		run: func(d *Dispatcher, ctx context.Context, args []string) {
			maxItems := DefaultFetchLimit
			args, all := stripFlag(args, "--all")
			if all {
				maxItems = AllFetchLimit
				d.surface.Warnf("Fetching up to %d documents", AllFetchLimit)
			}
			text := ""
			if len(args) > 2 {
				text = strings.Join(args[2:], " ")
			}
			d.Query(ctx, args[0], args[1], text, maxItems, interactiveDisplayLimit)
		},
	},
	{
		name:    "get",
		minArgs: 4,
		maxArgs: 4,
		usage:   "get <database_id> <container_id> <item_id> <partition_key>",
		run: func(d *Dispatcher, ctx context.Context, args []string) {
			d.Get(ctx, args[0], args[1], args[2], args[3])
		},
	},
	{
		name:    "help",
		minArgs: 0,
		maxArgs: 0,
		usage:   "help",
		run: func(d *Dispatcher, _ context.Context, _ []string) {
			d.surface.Help(helpText)
		},
	},
	{
		name:    "history",
		minArgs: 0,
		maxArgs: 0,
		usage:   "history",
		run: func(d *Dispatcher, _ context.Context, _ []string) {
			d.surface.History(d.history)
		},
	},
	{
		name:    "clear",
		minArgs: 0,
		maxArgs: 0,
		usage:   "clear",
		run: func(d *Dispatcher, _ context.Context, _ []string) {
			d.surface.Clear()
			d.surface.Banner()
		},
	},
}

const helpText = `Available commands:
  databases                           - List all databases
  containers <database_id>            - List containers in database
  count <database_id> <container_id>  - Count documents in container
  recent <database_id> <container_id> [limit] - Get most recent documents
  query <db> <container> [sql]        - Execute query (default: first 10 documents)
  query <db> <container> --all        - Get up to 1000 documents
  get <db> <container> <id> <pk>      - Get specific item
  history                             - Show command history
  clear                               - Clear screen
  help                                - Show this help
  exit/quit/q                         - Exit interactive mode`

// Execute runs one interactive line and reports whether the session
// should terminate. Malformed input never reaches the transport: arity
// is validated first, and unknown commands only produce a diagnostic.
func (d *Dispatcher) Execute(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	d.history = append(d.history, line)

	tokens := strings.Fields(line)
	name := strings.ToLower(tokens[0])

	switch name {
	case "exit", "quit", "q":
		return true
	}

	cmd, ok := lookup(name)
	if !ok {
		d.surface.Errorf("Unknown command: %s", line)
		d.surface.Infof("Type 'help' for available commands.")
		return false
	}

	args := tokens[1:]
	// --all does not count toward arity; it is filtered before the SQL
	// text is reconstructed.
	arity := len(args)
	if cmd.name == "query" {
		stripped, _ := stripFlag(args, "--all")
		arity = len(stripped)
	}
	if arity < cmd.minArgs || (cmd.maxArgs >= 0 && arity > cmd.maxArgs) {
		d.surface.Usage(cmd.usage)
		return false
	}

	cmd.run(d, ctx, args)
	return false
}

func lookup(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

// stripFlag removes every occurrence of flag from args and reports
// whether it was present.
func stripFlag(args []string, flag string) ([]string, bool) {
	out := make([]string, 0, len(args))
	found := false
	for _, a := range args {
		if a == flag {
			found = true
			continue
		}
		out = append(out, a)
	}
	return out, found
}
