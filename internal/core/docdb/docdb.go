// Package docdb defines the document database interface the explorer
// talks to, together with the read-only projections it returns.
package docdb

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotFound reports that a point read matched no document. It is an
// expected outcome, not a transport failure, and callers are expected to
// test for it with errors.Is.
var ErrNotFound = errors.New("docdb: item not found")

// DatabaseRef is a read-only projection of a database. Refs are fetched
// on demand and never cached across commands.
type DatabaseRef struct {
	ID         string
	ResourceID string
}

// ContainerRef is a read-only projection of a container.
type ContainerRef struct {
	ID                string
	ResourceID        string
	PartitionKeyPaths []string
}

// QueryRequest describes one query invocation. MaxItems is a hard ceiling
// on the number of returned documents, enforced by the client regardless
// of how many the transport would yield.
type QueryRequest struct {
	Database  string
	Container string
	Text      string
	MaxItems  int
}

// Document is a single query result. Cosmos SQL can project bare values
// (SELECT VALUE ...), so a document is any JSON value, not always an
// object.
type Document struct {
	raw json.RawMessage
}

// NewDocument wraps a raw JSON value.
func NewDocument(raw []byte) Document {
	return Document{raw: json.RawMessage(raw)}
}

// JSON returns the raw JSON encoding of the document.
func (d Document) JSON() []byte {
	return d.raw
}

// Fields decodes the document as an object. The second return is false
// when the document is a bare value or malformed JSON.
func (d Document) Fields() (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal(d.raw, &m); err != nil {
		return nil, false
	}
	return m, true
}

// ID returns the document's "id" field, or the empty string when the
// document is not an object or carries no id.
func (d Document) ID() string {
	m, ok := d.Fields()
	if !ok {
		return ""
	}
	id, _ := m["id"].(string)
	return id
}

// Int64 decodes the document as an integer scalar, as produced by
// SELECT VALUE COUNT(1) queries.
func (d Document) Int64() (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(d.raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}
