// Package render defines the output surface the dispatcher draws on.
// The dispatcher receives a Surface by injection so it can be exercised
// in tests without a real terminal.
package render

import (
	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

// DatabaseRow is one row of the database summary table. Containers holds
// a formatted count, or "?" when the count could not be retrieved.
type DatabaseRow struct {
	ID         string
	Containers string
	ResourceID string
}

// ContainerRow is one row of the container summary table. Documents
// holds a formatted count, or "?" when the count could not be retrieved.
type ContainerRow struct {
	ID            string
	Documents     string
	PartitionKeys string
	ResourceID    string
}

// Surface renders typed results for the user.
type Surface interface {
	// Databases renders the database summary table.
	Databases(rows []DatabaseRow)

	// Containers renders the container summary table for a database.
	Containers(databaseID string, rows []ContainerRow)

	// Documents renders up to limit documents as pretty-printed JSON.
	Documents(docs []docdb.Document, limit int)

	// Item renders a single fetched document.
	Item(itemID string, doc docdb.Document)

	// ItemNotFound renders the expected, non-error outcome of a point
	// read that matched nothing.
	ItemNotFound(itemID string)

	// Count renders a document count with thousands separators.
	Count(containerID string, n int64)

	// CountEmpty renders the distinct empty-container outcome.
	CountEmpty(containerID string)

	// CountUnavailable renders a count retrieval failure.
	CountUnavailable(containerID string)

	// Infof, Warnf and Errorf render free-form diagnostics.
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Usage renders a usage diagnostic for a malformed command.
	Usage(text string)

	// Help renders the interactive command summary.
	Help(text string)

	// History renders the session's command history.
	History(lines []string)

	// Clear clears the screen.
	Clear()

	// Banner renders the interactive mode banner.
	Banner()
}
