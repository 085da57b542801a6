// Package dispatch maps explorer commands to transport and render calls
// and owns the interactive read loop.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
	"github.com/docdbtools/cosmos-explorer/internal/render"
)

const (
	// DefaultQueryText is used when no SQL text is supplied.
	DefaultQueryText = "SELECT * FROM c"

	// countQueryText produces a single integer scalar.
	countQueryText = "SELECT VALUE COUNT(1) FROM c"

	// DefaultFetchLimit caps how many documents a plain query fetches.
	DefaultFetchLimit = 10

	// AllFetchLimit is the raised ceiling behind --all. It is a fixed
	// safety cap, not an unbounded fetch.
	AllFetchLimit = 1000

	// DefaultRecentLimit is how many recent documents to fetch when no
	// limit is given.
	DefaultRecentLimit = 10

	// DefaultTimestampField orders recent-document queries.
	DefaultTimestampField = "_ts"

	// interactiveDisplayLimit caps how many documents the interactive
	// loop prints regardless of how many were fetched.
	interactiveDisplayLimit = 10
)

// Dispatcher maps commands to adapter calls plus render calls. It is
// single-threaded; one command is in flight at a time.
type Dispatcher struct {
	client  docdb.Client
	surface render.Surface
	logger  zerolog.Logger
	history []string
}

// New creates a Dispatcher over the given client and render surface.
func New(client docdb.Client, surface render.Surface) *Dispatcher {
	return &Dispatcher{
		client:  client,
		surface: surface,
		logger:  log.Logger,
	}
}

// Databases lists all databases with a per-database container count.
// Each count is an independent sub-call: a failing row renders "?" and
// enumeration continues for all remaining rows.
func (d *Dispatcher) Databases(ctx context.Context) {
	dbs, err := d.client.ListDatabases(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("list databases failed")
		d.surface.Errorf("Error listing databases: %v", err)
		return
	}

	rows := make([]render.DatabaseRow, 0, len(dbs))
	for _, db := range dbs {
		count := "?"
		if containers, err := d.client.ListContainers(ctx, db.ID); err == nil {
			count = strconv.Itoa(len(containers))
		} else {
			d.logger.Warn().Err(err).Str("database", db.ID).Msg("container count failed")
		}
		rows = append(rows, render.DatabaseRow{
			ID:         db.ID,
			Containers: count,
			ResourceID: db.ResourceID,
		})
	}
	d.surface.Databases(rows)
}

// Containers lists the containers of a database with per-container
// document counts and partition key paths. Count failures are isolated
// per row.
func (d *Dispatcher) Containers(ctx context.Context, databaseID string) {
	containers, err := d.client.ListContainers(ctx, databaseID)
	if err != nil {
		d.logger.Error().Err(err).Str("database", databaseID).Msg("list containers failed")
		d.surface.Errorf("Error listing containers: %v", err)
		return
	}

	rows := make([]render.ContainerRow, 0, len(containers))
	for _, cont := range containers {
		count := "?"
		if n, err := d.countDocuments(ctx, databaseID, cont.ID); err == nil {
			count = humanize.Comma(n)
		} else {
			d.logger.Warn().Err(err).Str("container", cont.ID).Msg("document count failed")
		}

		pk := "None"
		if len(cont.PartitionKeyPaths) > 0 {
			pk = strings.Join(cont.PartitionKeyPaths, ", ")
		}

		rows = append(rows, render.ContainerRow{
			ID:            cont.ID,
			Documents:     count,
			PartitionKeys: pk,
			ResourceID:    cont.ResourceID,
		})
	}
	d.surface.Containers(databaseID, rows)
}

// Count reports the total number of documents in a container. An empty
// container is a distinct outcome from a retrieval failure.
func (d *Dispatcher) Count(ctx context.Context, databaseID, containerID string) {
	n, err := d.countDocuments(ctx, databaseID, containerID)
	if err != nil {
		d.logger.Error().Err(err).Str("container", containerID).Msg("count failed")
		d.surface.CountUnavailable(containerID)
		return
	}
	if n == 0 {
		d.surface.CountEmpty(containerID)
		return
	}
	d.surface.Count(containerID, n)
}

// Recent fetches the most recent documents ordered by a timestamp field
// descending.
func (d *Dispatcher) Recent(ctx context.Context, databaseID, containerID string, limit int, timestampField string) {
	query := fmt.Sprintf("SELECT * FROM c ORDER BY c.%s DESC", timestampField)
	d.surface.Infof("Getting %d most recent documents from %s/%s (ordered by %s descending)",
		limit, databaseID, containerID, timestampField)

	docs, err := d.client.QueryItems(ctx, docdb.QueryRequest{
		Database:  databaseID,
		Container: containerID,
		Text:      query,
		MaxItems:  limit,
	})
	if err != nil {
		d.logger.Error().Err(err).Str("container", containerID).Msg("recent query failed")
		d.surface.Errorf("Error executing query: %v", err)
		return
	}
	if len(docs) == 0 {
		d.surface.Warnf("No documents found or container is empty")
		return
	}
	d.surface.Documents(docs, limit)
}

// Query executes SQL text against a container, fetching up to maxItems
// documents and displaying up to displayLimit of them.
func (d *Dispatcher) Query(ctx context.Context, databaseID, containerID, text string, maxItems, displayLimit int) {
	if text == "" {
		text = DefaultQueryText
	}
	d.surface.Infof("Executing query on %s/%s: %s", databaseID, containerID, text)

	docs, err := d.client.QueryItems(ctx, docdb.QueryRequest{
		Database:  databaseID,
		Container: containerID,
		Text:      text,
		MaxItems:  maxItems,
	})
	if err != nil {
		d.logger.Error().Err(err).Str("container", containerID).Msg("query failed")
		d.surface.Errorf("Error executing query: %v", err)
		return
	}
	d.surface.Documents(docs, displayLimit)
}

// Get fetches a single document by id and partition key value. A missing
// document is an expected outcome with its own render path.
func (d *Dispatcher) Get(ctx context.Context, databaseID, containerID, itemID, partitionKey string) {
	doc, err := d.client.GetItem(ctx, databaseID, containerID, itemID, partitionKey)
	if err != nil {
		if errors.Is(err, docdb.ErrNotFound) {
			d.surface.ItemNotFound(itemID)
			return
		}
		d.logger.Error().Err(err).Str("item", itemID).Msg("read item failed")
		d.surface.Errorf("Error reading item: %v", err)
		return
	}
	d.surface.Item(itemID, doc)
}

// History returns the lines executed so far in this session.
func (d *Dispatcher) History() []string {
	return d.history
}

// countDocuments runs the scalar count query with a single-row ceiling.
func (d *Dispatcher) countDocuments(ctx context.Context, databaseID, containerID string) (int64, error) {
	docs, err := d.client.QueryItems(ctx, docdb.QueryRequest{
		Database:  databaseID,
		Container: containerID,
		Text:      countQueryText,
		MaxItems:  1,
	})
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, fmt.Errorf("count query returned no rows")
	}
	n, ok := docs[0].Int64()
	if !ok {
		return 0, fmt.Errorf("count query returned a non-integer value")
	}
	return n, nil
}
