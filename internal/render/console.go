package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

// Console is the terminal implementation of Surface.
type Console struct {
	out io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	dim    *color.Color
}

// NewConsole creates a Console writing to stdout.
func NewConsole() *Console {
	return NewConsoleWriter(os.Stdout)
}

// NewConsoleWriter creates a Console writing to w.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{
		out:    w,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
		dim:    color.New(color.Faint),
	}
}

var _ Surface = (*Console)(nil)

// Databases renders the database summary table.
func (c *Console) Databases(rows []DatabaseRow) {
	if len(rows) == 0 {
		c.yellow.Fprintln(c.out, "No databases found")
		return
	}

	c.cyan.Fprintln(c.out, "Cosmos DB Databases")
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Database ID", "Containers", "Resource ID"})
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append([]string{row.ID, row.Containers, row.ResourceID})
	}
	table.Render()
}

// Containers renders the container summary table for a database.
func (c *Console) Containers(databaseID string, rows []ContainerRow) {
	if len(rows) == 0 {
		c.yellow.Fprintf(c.out, "No containers found in database '%s'\n", databaseID)
		return
	}

	c.cyan.Fprintf(c.out, "Containers in '%s'\n", databaseID)
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Container ID", "Documents", "Partition Key", "Resource ID"})
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append([]string{row.ID, row.Documents, row.PartitionKeys, row.ResourceID})
	}
	table.Render()
}

// Documents renders up to limit documents as pretty-printed JSON.
func (c *Console) Documents(docs []docdb.Document, limit int) {
	if len(docs) == 0 {
		c.yellow.Fprintln(c.out, "No items found")
		return
	}

	shown := len(docs)
	if limit < shown {
		shown = limit
	}
	c.green.Fprintf(c.out, "Found %d items (showing first %d)\n", len(docs), shown)

	for i, doc := range docs[:shown] {
		id := doc.ID()
		if id == "" {
			id = "Unknown"
		}
		c.cyan.Fprintf(c.out, "--- Item %d - ID: %s ---\n", i+1, id)
		c.writeJSON(doc)
		fmt.Fprintln(c.out)
	}
}

// Item renders a single fetched document.
func (c *Console) Item(itemID string, doc docdb.Document) {
	c.cyan.Fprintf(c.out, "--- Item: %s ---\n", itemID)
	c.writeJSON(doc)
}

// ItemNotFound renders the not-found outcome of a point read.
func (c *Console) ItemNotFound(itemID string) {
	c.yellow.Fprintf(c.out, "Item not found: %s\n", itemID)
}

// Count renders a document count with thousands separators.
func (c *Console) Count(containerID string, n int64) {
	c.green.Fprintf(c.out, "Container '%s' contains %s documents\n", containerID, humanize.Comma(n))
}

// CountEmpty renders the distinct empty-container outcome.
func (c *Console) CountEmpty(containerID string) {
	c.yellow.Fprintf(c.out, "Container '%s' is empty (0 documents)\n", containerID)
}

// CountUnavailable renders a count retrieval failure.
func (c *Console) CountUnavailable(containerID string) {
	c.red.Fprintf(c.out, "Could not retrieve document count for '%s'\n", containerID)
}

// Infof renders an informational message.
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Warnf renders a warning.
func (c *Console) Warnf(format string, args ...any) {
	c.yellow.Fprintf(c.out, format+"\n", args...)
}

// Errorf renders an error message.
func (c *Console) Errorf(format string, args ...any) {
	c.red.Fprintf(c.out, format+"\n", args...)
}

// Usage renders a usage diagnostic.
func (c *Console) Usage(text string) {
	c.red.Fprintf(c.out, "Usage: %s\n", text)
}

// Help renders the interactive command summary.
func (c *Console) Help(text string) {
	fmt.Fprintln(c.out, text)
}

// History renders the session's command history.
func (c *Console) History(lines []string) {
	if len(lines) == 0 {
		c.yellow.Fprintln(c.out, "No commands in history")
		return
	}
	c.cyan.Fprintln(c.out, "Command History:")
	for i, line := range lines {
		fmt.Fprintf(c.out, "  %d: %s\n", i+1, line)
	}
}

// Clear clears the screen.
func (c *Console) Clear() {
	fmt.Fprint(c.out, "\033[2J\033[H")
}

// Banner renders the interactive mode banner.
func (c *Console) Banner() {
	c.green.Fprintln(c.out, "Interactive Cosmos DB Explorer")
	fmt.Fprintln(c.out, "Type 'help' for available commands or 'exit' to quit.")
	fmt.Fprintln(c.out)
}

// writeJSON pretty-prints a document. Values the service returned are
// already JSON; anything that fails to indent is written verbatim.
func (c *Console) writeJSON(doc docdb.Document) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc.JSON(), "", "  "); err != nil {
		fmt.Fprintln(c.out, string(doc.JSON()))
		return
	}
	fmt.Fprintln(c.out, buf.String())
}
