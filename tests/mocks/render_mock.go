package mocks

import (
	"fmt"

	"github.com/docdbtools/cosmos-explorer/internal/core/docdb"
	"github.com/docdbtools/cosmos-explorer/internal/render"
)

// SurfaceRecorder is a render.Surface that records every call so tests
// can assert on what the dispatcher rendered without a real terminal.
type SurfaceRecorder struct {
	DatabaseRows  []render.DatabaseRow
	ContainerDB   string
	ContainerRows []render.ContainerRow

	Docs      []docdb.Document
	DocsLimit int

	ItemID     string
	ItemDoc    docdb.Document
	NotFoundID string

	CountID       string
	CountN        int64
	EmptyID       string
	UnavailableID string

	Infos  []string
	Warns  []string
	Errors []string
	Usages []string

	HelpTexts    []string
	HistoryLines []string
	Clears       int
	Banners      int
}

var _ render.Surface = (*SurfaceRecorder)(nil)

// Databases records the database summary rows.
func (s *SurfaceRecorder) Databases(rows []render.DatabaseRow) {
	s.DatabaseRows = rows
}

// Containers records the container summary rows.
func (s *SurfaceRecorder) Containers(databaseID string, rows []render.ContainerRow) {
	s.ContainerDB = databaseID
	s.ContainerRows = rows
}

// Documents records a document listing.
func (s *SurfaceRecorder) Documents(docs []docdb.Document, limit int) {
	s.Docs = docs
	s.DocsLimit = limit
}

// Item records a fetched document.
func (s *SurfaceRecorder) Item(itemID string, doc docdb.Document) {
	s.ItemID = itemID
	s.ItemDoc = doc
}

// ItemNotFound records a not-found outcome.
func (s *SurfaceRecorder) ItemNotFound(itemID string) {
	s.NotFoundID = itemID
}

// Count records a document count.
func (s *SurfaceRecorder) Count(containerID string, n int64) {
	s.CountID = containerID
	s.CountN = n
}

// CountEmpty records an empty-container outcome.
func (s *SurfaceRecorder) CountEmpty(containerID string) {
	s.EmptyID = containerID
}

// CountUnavailable records a count retrieval failure.
func (s *SurfaceRecorder) CountUnavailable(containerID string) {
	s.UnavailableID = containerID
}

// Infof records an informational message.
func (s *SurfaceRecorder) Infof(format string, args ...any) {
	s.Infos = append(s.Infos, fmt.Sprintf(format, args...))
}

// Warnf records a warning.
func (s *SurfaceRecorder) Warnf(format string, args ...any) {
	s.Warns = append(s.Warns, fmt.Sprintf(format, args...))
}

// Errorf records an error message.
func (s *SurfaceRecorder) Errorf(format string, args ...any) {
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

// Usage records a usage diagnostic.
func (s *SurfaceRecorder) Usage(text string) {
	s.Usages = append(s.Usages, text)
}

// Help records the help text.
func (s *SurfaceRecorder) Help(text string) {
	s.HelpTexts = append(s.HelpTexts, text)
}

// History records the history listing.
func (s *SurfaceRecorder) History(lines []string) {
	s.HistoryLines = lines
}

// Clear records a screen clear.
func (s *SurfaceRecorder) Clear() {
	s.Clears++
}

// Banner records a banner render.
func (s *SurfaceRecorder) Banner() {
	s.Banners++
}
