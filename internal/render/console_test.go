package render_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
	"github.com/docdbtools/cosmos-explorer/internal/render"
)

func newConsole(t *testing.T) (*render.Console, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return render.NewConsoleWriter(&buf), &buf
}

func TestConsole_CountUsesThousandsSeparators(t *testing.T) {
	c, buf := newConsole(t)

	c.Count("orders", 1234567)

	assert.Contains(t, buf.String(), "1,234,567")
	assert.Contains(t, buf.String(), "orders")
}

func TestConsole_CountEmptyIsDistinct(t *testing.T) {
	c, buf := newConsole(t)

	c.CountEmpty("orders")

	assert.Contains(t, buf.String(), "empty (0 documents)")
}

func TestConsole_CountUnavailable(t *testing.T) {
	c, buf := newConsole(t)

	c.CountUnavailable("orders")

	assert.Contains(t, buf.String(), "Could not retrieve document count")
}

func TestConsole_DatabasesEmpty(t *testing.T) {
	c, buf := newConsole(t)

	c.Databases(nil)

	assert.Contains(t, buf.String(), "No databases found")
}

func TestConsole_DatabasesTable(t *testing.T) {
	c, buf := newConsole(t)

	c.Databases([]render.DatabaseRow{
		{ID: "MyDB", Containers: "3", ResourceID: "rid-1"},
		{ID: "Other", Containers: "?", ResourceID: "rid-2"},
	})

	out := buf.String()
	assert.Contains(t, out, "MyDB")
	assert.Contains(t, out, "rid-1")
	assert.Contains(t, out, "?")
}

func TestConsole_ContainersEmptyNamesDatabase(t *testing.T) {
	c, buf := newConsole(t)

	c.Containers("MyDB", nil)

	assert.Contains(t, buf.String(), "No containers found in database 'MyDB'")
}

func TestConsole_DocumentsEmpty(t *testing.T) {
	c, buf := newConsole(t)

	c.Documents(nil, 10)

	assert.Contains(t, buf.String(), "No items found")
}

func TestConsole_DocumentsRespectsDisplayLimit(t *testing.T) {
	c, buf := newConsole(t)

	docs := []docdb.Document{
		docdb.NewDocument([]byte(`{"id":"first"}`)),
		docdb.NewDocument([]byte(`{"id":"second"}`)),
		docdb.NewDocument([]byte(`{"id":"third"}`)),
	}
	c.Documents(docs, 2)

	out := buf.String()
	assert.Contains(t, out, "Found 3 items (showing first 2)")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "third")
}

func TestConsole_DocumentsPrettyPrintsJSON(t *testing.T) {
	c, buf := newConsole(t)

	c.Documents([]docdb.Document{docdb.NewDocument([]byte(`{"id":"a","nested":{"k":"v"}}`))}, 10)

	assert.Contains(t, buf.String(), "\"nested\": {")
}

func TestConsole_DocumentWithoutID(t *testing.T) {
	c, buf := newConsole(t)

	c.Documents([]docdb.Document{docdb.NewDocument([]byte(`{"name":"x"}`))}, 10)

	assert.Contains(t, buf.String(), "ID: Unknown")
}

func TestConsole_ItemNotFound(t *testing.T) {
	c, buf := newConsole(t)

	c.ItemNotFound("item-42")

	assert.Contains(t, buf.String(), "Item not found: item-42")
}

func TestConsole_HistoryNumbersLines(t *testing.T) {
	c, buf := newConsole(t)

	c.History([]string{"databases", "count db c"})

	out := buf.String()
	assert.Contains(t, out, "1: databases")
	assert.Contains(t, out, "2: count db c")
}

func TestConsole_HistoryEmpty(t *testing.T) {
	c, buf := newConsole(t)

	c.History(nil)

	assert.Contains(t, buf.String(), "No commands in history")
}

func TestConsole_Banner(t *testing.T) {
	c, buf := newConsole(t)

	c.Banner()

	assert.Contains(t, buf.String(), "Interactive Cosmos DB Explorer")
}
