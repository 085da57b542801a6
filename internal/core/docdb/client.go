// Package docdb defines the document database client interface.
package docdb

import (
	"context"
)

// Client defines the interface for a document database client. All
// operations are synchronous; the explorer never has more than one call
// in flight.
type Client interface {
	// Connect establishes a session and performs one cheap verification
	// call (enumerate databases, discard the result). A failure is
	// terminal for the invocation; there are no retries.
	Connect(ctx context.Context) error

	// ListDatabases enumerates the databases in the account.
	ListDatabases(ctx context.Context) ([]DatabaseRef, error)

	// ListContainers enumerates the containers in a database.
	ListContainers(ctx context.Context, databaseID string) ([]ContainerRef, error)

	// QueryItems executes a cross-partition query and returns at most
	// req.MaxItems documents.
	QueryItems(ctx context.Context, req QueryRequest) ([]Document, error)

	// GetItem reads a single document by id and partition key value.
	// A missing document is reported as ErrNotFound, distinct from a
	// transport failure.
	GetItem(ctx context.Context, databaseID, containerID, itemID, partitionKey string) (Document, error)
}
