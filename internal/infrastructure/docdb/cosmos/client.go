// Package cosmos provides the Azure Cosmos DB client implementation.
package cosmos

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

// Client implements the docdb.Client interface for Azure Cosmos DB.
// Connection settings are immutable after construction; the underlying
// SDK client is created by Connect and owned exclusively by this type.
type Client struct {
	endpoint  string
	key       string
	userAgent string
	logger    zerolog.Logger

	client *azcosmos.Client
}

// ClientConfig holds Cosmos DB connection configuration.
type ClientConfig struct {
	Endpoint string
	Key      string
	// UserAgent, when set, is sent as the application id on every
	// request.
	UserAgent string
}

// NewClient creates a new Cosmos DB client. No connection is made until
// Connect is called.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.Endpoint == "" {
		return nil, fmt.Errorf("cosmos endpoint is required")
	}
	if config.Key == "" {
		return nil, fmt.Errorf("cosmos account key is required")
	}

	return &Client{
		endpoint:  config.Endpoint,
		key:       config.Key,
		userAgent: config.UserAgent,
		logger:    log.Logger,
	}, nil
}

var _ docdb.Client = (*Client)(nil)

// Connect builds the SDK client and verifies the session with a single
// database enumeration, discarding the result. There are no retries; a
// failure is terminal for the invocation and the caller decides whether
// to abort the process.
func (c *Client) Connect(ctx context.Context) error {
	cred, err := azcosmos.NewKeyCredential(c.key)
	if err != nil {
		return fmt.Errorf("invalid account key: %w", err)
	}

	opts := &azcosmos.ClientOptions{}
	if c.userAgent != "" {
		opts.Telemetry = policy.TelemetryOptions{ApplicationID: c.userAgent}
	}

	client, err := azcosmos.NewClientWithKey(c.endpoint, cred, opts)
	if err != nil {
		return fmt.Errorf("failed to create cosmos client: %w", err)
	}

	// Verify connection by listing databases
	pager := client.NewQueryDatabasesPager("SELECT * FROM root r", nil)
	if pager.More() {
		if _, err := pager.NextPage(ctx); err != nil {
			return fmt.Errorf("connection check failed: %w", err)
		}
	}

	c.client = client
	c.logger.Debug().Str("endpoint", c.endpoint).Msg("connected to cosmos db")
	return nil
}

// ListDatabases enumerates the databases in the account.
func (c *Client) ListDatabases(ctx context.Context) ([]docdb.DatabaseRef, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	var refs []docdb.DatabaseRef
	pager := c.client.NewQueryDatabasesPager("SELECT * FROM root r", nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list databases: %w", err)
		}
		for _, db := range page.Databases {
			refs = append(refs, docdb.DatabaseRef{
				ID:         db.ID,
				ResourceID: db.ResourceID,
			})
		}
	}
	return refs, nil
}

// ListContainers enumerates the containers in a database.
func (c *Client) ListContainers(ctx context.Context, databaseID string) ([]docdb.ContainerRef, error) {
	if c.client == nil {
		return nil, fmt.Errorf("not connected")
	}

	database, err := c.client.NewDatabase(databaseID)
	if err != nil {
		return nil, fmt.Errorf("invalid database id %q: %w", databaseID, err)
	}

	var refs []docdb.ContainerRef
	pager := database.NewQueryContainersPager("SELECT * FROM root r", nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list containers in %q: %w", databaseID, err)
		}
		for _, cont := range page.Containers {
			refs = append(refs, docdb.ContainerRef{
				ID:                cont.ID,
				ResourceID:        cont.ResourceID,
				PartitionKeyPaths: cont.PartitionKeyDefinition.Paths,
			})
		}
	}
	return refs, nil
}
