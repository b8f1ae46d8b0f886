// Package find implements incremental regular-expression search restricted
// to a set of spans of one snapshot.
package find

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/logger"
	"github.com/bethropolis/tidehx/internal/types"
	"github.com/bethropolis/tidehx/internal/utils"
)

// Options configures a search session.
type Options struct {
	Snapshot buffer.Snapshot
	// Domain restricts matching. Empty means the whole document.
	Domain []types.Span
	// Start is the caret offset the session began at.
	Start     int
	SelectAll bool
	Timeout   time.Duration
	// Cache is optional. A private cache is created when nil.
	Cache *PatternCache
}

// Engine holds the query and the matches of one search session.
type Engine struct {
	opts    Options
	query   string
	matches []types.Span
	err     error
}

// New starts a session with an empty query.
func New(opts Options) *Engine {
	if len(opts.Domain) == 0 {
		opts.Domain = []types.Span{{Start: 0, End: opts.Snapshot.Len()}}
	}
	if opts.Cache == nil {
		opts.Cache = NewPatternCache()
	}
	return &Engine{opts: opts}
}

// Start returns the caret offset the session began at.
func (e *Engine) Start() int { return e.opts.Start }

// SelectAll reports whether every match should become a selection.
func (e *Engine) SelectAll() bool { return e.opts.SelectAll }

// Query returns the current query.
func (e *Engine) Query() string { return e.query }

// Matches returns the non-empty matches in document order.
func (e *Engine) Matches() []types.Span { return e.matches }

// Err returns the compile or match error of the current query, if any.
func (e *Engine) Err() error { return e.err }

// Append adds r to the query and recomputes the matches. Control
// characters are ignored.
func (e *Engine) Append(r rune) {
	if unicode.IsControl(r) {
		return
	}
	e.SetQuery(e.query + string(r))
}

// Backspace drops the last character of the query. It reports false when
// the query was already empty.
func (e *Engine) Backspace() bool {
	if e.query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(e.query)
	e.SetQuery(e.query[:len(e.query)-size])
	return true
}

// SetQuery replaces the query and recomputes the matches.
func (e *Engine) SetQuery(q string) {
	e.query = q
	e.matches = nil
	e.err = nil
	if q == "" {
		return
	}
	re, err := e.opts.Cache.Compile(q, e.opts.Timeout)
	if err != nil {
		e.err = fmt.Errorf("invalid pattern '%s': %w", q, err)
		logger.DebugTagf("search", "Search: %v", e.err)
		return
	}
	for _, span := range e.opts.Domain {
		text := e.opts.Snapshot.Text(span)
		runes := utils.RuneByteOffsets(text)
		m, err := re.FindStringMatch(text)
		for m != nil && err == nil {
			if m.Length > 0 {
				e.matches = append(e.matches, types.Span{
					Start: span.Start + runes[m.Index],
					End:   span.Start + runes[m.Index+m.Length],
				})
			}
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			e.err = fmt.Errorf("search '%s': %w", q, err)
			logger.Warnf("Search: %v", e.err)
			e.matches = nil
			return
		}
	}
	sort.SliceStable(e.matches, func(i, j int) bool { return e.matches[i].Start < e.matches[j].Start })
	logger.DebugTagf("search", "Search: '%s' matched %d times", q, len(e.matches))
}

// Primary returns the first match at or after the start offset, wrapping
// to the first match overall.
func (e *Engine) Primary() (types.Span, bool) {
	if len(e.matches) == 0 {
		return types.Span{}, false
	}
	for _, m := range e.matches {
		if m.Start >= e.opts.Start {
			return m, true
		}
	}
	return e.matches[0], true
}

// PrimaryIndex returns the index of Primary within Matches, or -1.
func (e *Engine) PrimaryIndex() int {
	p, ok := e.Primary()
	if !ok {
		return -1
	}
	for i, m := range e.matches {
		if m == p {
			return i
		}
	}
	return -1
}

// Next returns the match after from, or before it when forward is false.
// The search wraps around the document.
func (e *Engine) Next(from int, forward bool) (types.Span, bool) {
	if len(e.matches) == 0 {
		return types.Span{}, false
	}
	if forward {
		for _, m := range e.matches {
			if m.Start > from {
				return m, true
			}
		}
		return e.matches[0], true
	}
	for i := len(e.matches) - 1; i >= 0; i-- {
		if e.matches[i].Start < from {
			return e.matches[i], true
		}
	}
	return e.matches[len(e.matches)-1], true
}

// Rebind reruns the current query over the whole of snap. Any domain the
// engine was created with is dropped, so a search that was restricted to the
// selections matches across the full document afterwards. Used by n and N
// once the session has ended.
func (e *Engine) Rebind(snap buffer.Snapshot) {
	e.opts.Snapshot = snap
	e.opts.Domain = []types.Span{{Start: 0, End: snap.Len()}}
	e.SetQuery(e.query)
}

// Describe renders the query for the status line.
func (e *Engine) Describe() string {
	var b strings.Builder
	b.WriteString(e.query)
	switch {
	case e.err != nil:
		b.WriteString(" [invalid]")
	case e.query != "":
		fmt.Fprintf(&b, " [%d]", len(e.matches))
	}
	return b.String()
}
