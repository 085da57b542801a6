package cosmos

import (
	"context"
	"fmt"
	"math"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

// QueryItems executes a query in cross-partition mode and collects at
// most req.MaxItems documents. The cutoff counts returned rows and is
// enforced here, independent of the page size hint the SDK uses
// internally.
func (c *Client) QueryItems(ctx context.Context, req docdb.QueryRequest) ([]docdb.Document, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}
	if req.MaxItems <= 0 {
		return nil, fmt.Errorf("max items must be positive, got %d", req.MaxItems)
	}

	container, err := c.client.NewContainer(req.Database, req.Container)
	if err != nil {
		return nil, fmt.Errorf("invalid container %s/%s: %w", req.Database, req.Container, err)
	}

	opts := &azcosmos.QueryOptions{PageSizeHint: pageSizeHint(req.MaxItems)}

	// An empty partition key permits the query to span all partitions.
	pager := container.NewQueryItemsPager(req.Text, azcosmos.NewPartitionKey(), opts)

	c.logger.Debug().
		Str("database", req.Database).
		Str("container", req.Container).
		Int("max_items", req.MaxItems).
		Str("query", req.Text).
		Msg("executing query")

	var items []docdb.Document
	for pager.More() && len(items) < req.MaxItems {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query failed on %s/%s: %w", req.Database, req.Container, err)
		}
		items = appendLimited(items, page.Items, req.MaxItems)
	}
	return items, nil
}

// appendLimited copies raw result rows into dst, truncating at the
// ceiling rather than erroring when the transport yields more.
func appendLimited(dst []docdb.Document, raw [][]byte, max int) []docdb.Document {
	for _, r := range raw {
		if len(dst) >= max {
			break
		}
		dst = append(dst, docdb.NewDocument(r))
	}
	return dst
}

func pageSizeHint(maxItems int) int32 {
	if maxItems > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(maxItems)
}
