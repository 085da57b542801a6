package cosmos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
)

func rawItems(n int) [][]byte {
	items := make([][]byte, n)
	for i := range items {
		items[i] = []byte(fmt.Sprintf(`{"id":"item-%d"}`, i))
	}
	return items
}

func TestNewClient_RequiresConfig(t *testing.T) {
	_, err := NewClient(nil)
	require.Error(t, err)
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient(&ClientConfig{Key: "secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint")
}

func TestNewClient_RequiresKey(t *testing.T) {
	_, err := NewClient(&ClientConfig{Endpoint: "https://acct.documents.azure.com:443/"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key")
}

func TestNewClient_DoesNotDial(t *testing.T) {
	client, err := NewClient(&ClientConfig{
		Endpoint: "https://acct.documents.azure.com:443/",
		Key:      "secret",
	})
	require.NoError(t, err)
	assert.Nil(t, client.client)
}

func TestOperations_RequireConnect(t *testing.T) {
	client, err := NewClient(&ClientConfig{
		Endpoint: "https://acct.documents.azure.com:443/",
		Key:      "secret",
	})
	require.NoError(t, err)

	ctx := context.Background()

	_, err = client.ListDatabases(ctx)
	assert.Error(t, err)

	_, err = client.ListContainers(ctx, "db")
	assert.Error(t, err)

	_, err = client.QueryItems(ctx, docdb.QueryRequest{Database: "db", Container: "c", Text: "SELECT * FROM c", MaxItems: 1})
	assert.Error(t, err)

	_, err = client.GetItem(ctx, "db", "c", "id", "pk")
	assert.Error(t, err)
}

func TestAppendLimited_TruncatesAtCeiling(t *testing.T) {
	docs := appendLimited(nil, rawItems(25), 10)

	assert.Len(t, docs, 10)
	assert.Equal(t, "item-0", docs[0].ID())
	assert.Equal(t, "item-9", docs[9].ID())
}

func TestAppendLimited_UnderCeiling(t *testing.T) {
	docs := appendLimited(nil, rawItems(3), 10)

	assert.Len(t, docs, 3)
}

func TestAppendLimited_AcrossPages(t *testing.T) {
	// Two pages of 6 against a ceiling of 10: the second page is cut.
	docs := appendLimited(nil, rawItems(6), 10)
	docs = appendLimited(docs, rawItems(6), 10)

	assert.Len(t, docs, 10)
}

func TestAppendLimited_CeilingOfOne(t *testing.T) {
	docs := appendLimited(nil, [][]byte{[]byte(`42`), []byte(`43`)}, 1)

	require.Len(t, docs, 1)
	n, ok := docs[0].Int64()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)
}

func TestQueryItems_RejectsNonPositiveMaxItems(t *testing.T) {
	client, err := NewClient(&ClientConfig{
		Endpoint: "https://acct.documents.azure.com:443/",
		Key:      "secret",
	})
	require.NoError(t, err)

	_, err = client.QueryItems(context.Background(), docdb.QueryRequest{
		Database:  "db",
		Container: "c",
		Text:      "SELECT * FROM c",
		MaxItems:  0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max items")
}

func TestIsNotFound_404(t *testing.T) {
	err := &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "NotFound"}

	assert.True(t, isNotFound(err))
}

func TestIsNotFound_WrappedError(t *testing.T) {
	inner := &azcore.ResponseError{StatusCode: http.StatusNotFound}
	err := fmt.Errorf("read failed: %w", inner)

	assert.True(t, isNotFound(err))
}

func TestIsNotFound_OtherStatus(t *testing.T) {
	err := &azcore.ResponseError{StatusCode: http.StatusUnauthorized}

	assert.False(t, isNotFound(err))
}

func TestIsNotFound_PlainError(t *testing.T) {
	assert.False(t, isNotFound(errors.New("boom")))
}

func TestPageSizeHint_ClampsToInt32(t *testing.T) {
	assert.Equal(t, int32(10), pageSizeHint(10))
	assert.Equal(t, int32(math.MaxInt32), pageSizeHint(math.MaxInt))
}
