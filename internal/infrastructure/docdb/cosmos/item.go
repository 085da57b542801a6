package cosmos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

// GetItem reads a single document by id and partition key value. A 404
// from the service maps to docdb.ErrNotFound; every other failure is a
// transport error.
func (c *Client) GetItem(ctx context.Context, databaseID, containerID, itemID, partitionKey string) (docdb.Document, error) {
	if c.client == nil {
		return docdb.Document{}, fmt.Errorf("not connected")
	}

	container, err := c.client.NewContainer(databaseID, containerID)
	if err != nil {
		return docdb.Document{}, fmt.Errorf("invalid container %s/%s: %w", databaseID, containerID, err)
	}

	resp, err := container.ReadItem(ctx, azcosmos.NewPartitionKeyString(partitionKey), itemID, nil)
	if err != nil {
		if isNotFound(err) {
			return docdb.Document{}, docdb.ErrNotFound
		}
		return docdb.Document{}, fmt.Errorf("failed to read item %q: %w", itemID, err)
	}
	return docdb.NewDocument(resp.Value), nil
}

// isNotFound reports whether the error is an HTTP 404 from the service.
func isNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}
