package ingest

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Tracker remembers which sources were already ingested, so re-running the
// pipeline over the same report folder does not double-count trades.
//
// It is an explicit collaborator: the core ledger has no deduplication
// logic and will happily double-count a record fed twice. The cmd
// application injects a Tracker into the pipeline; tests may inject an
// empty one.
type Tracker struct {
	seen map[string]bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]bool)}
}

// Seen reports whether the source was already ingested.
func (t *Tracker) Seen(source string) bool { return t.seen[source] }

// Mark records the source as ingested.
func (t *Tracker) Mark(source string) { t.seen[source] = true }

// DecodeTracker reads a tracker from its persisted form: one source
// identifier per line, blank lines skipped.
func DecodeTracker(r io.Reader) (*Tracker, error) {
	t := NewTracker()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		source := strings.TrimSpace(scanner.Text())
		if source == "" {
			continue
		}
		t.seen[source] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read tracker: %w", err)
	}
	return t, nil
}

// EncodeTracker writes the tracker in its persisted form, sorted for a
// stable file.
func EncodeTracker(w io.Writer, t *Tracker) error {
	sources := make([]string, 0, len(t.seen))
	for source := range t.seen {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	for _, source := range sources {
		if _, err := fmt.Fprintln(w, source); err != nil {
			return fmt.Errorf("cannot write tracker: %w", err)
		}
	}
	return nil
}
