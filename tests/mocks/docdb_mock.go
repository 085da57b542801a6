// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

// MockClient is a mock implementation of docdb.Client.
type MockClient struct {
	mock.Mock
}

var _ docdb.Client = (*MockClient)(nil)

// Connect establishes the session.
func (m *MockClient) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ListDatabases enumerates databases.
func (m *MockClient) ListDatabases(ctx context.Context) ([]docdb.DatabaseRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docdb.DatabaseRef), args.Error(1)
}

// ListContainers enumerates containers in a database.
func (m *MockClient) ListContainers(ctx context.Context, databaseID string) ([]docdb.ContainerRef, error) {
	args := m.Called(ctx, databaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docdb.ContainerRef), args.Error(1)
}

// QueryItems executes a query.
func (m *MockClient) QueryItems(ctx context.Context, req docdb.QueryRequest) ([]docdb.Document, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]docdb.Document), args.Error(1)
}

// GetItem reads a single document.
func (m *MockClient) GetItem(ctx context.Context, databaseID, containerID, itemID, partitionKey string) (docdb.Document, error) {
	args := m.Called(ctx, databaseID, containerID, itemID, partitionKey)
	return args.Get(0).(docdb.Document), args.Error(1)
}
