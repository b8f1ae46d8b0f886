// Package cursor converts between byte offsets and tab-expanded visual columns
// and keeps a viewport scrolled around the primary caret.
package cursor

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidehx/internal/buffer"
	"github.com/bethropolis/tidehx/internal/types"
)

// advance returns the visual column after a cluster drawn at col.
func advance(cluster string, col, tabWidth int) int {
	if cluster == "\t" {
		return col + tabWidth - col%tabWidth
	}
	w := uniseg.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return col + w
}

// ExpandedOffset returns the visual width of text with tabs rounded up to
// the next multiple of tabWidth.
func ExpandedOffset(text string, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	col := 0
	state := -1
	var cluster string
	for text != "" {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		col = advance(cluster, col, tabWidth)
	}
	return col
}

// VisualColumn returns the visual column of p on its line, virtual space included.
func VisualColumn(snap buffer.Snapshot, p types.Position, tabWidth int) int {
	line := snap.LineFromOffset(p.Offset)
	return ExpandedOffset(snap.Text(types.Span{Start: line.Start, End: p.Offset}), tabWidth) + p.Virtual
}

// PointAtVisualOffset returns the position on line at visual column visual.
// A tab straddling the column leaves the position in front of it. Columns
// past the line's end become virtual space.
func PointAtVisualOffset(snap buffer.Snapshot, line buffer.Line, visual, tabWidth int) types.Position {
	if tabWidth < 1 {
		tabWidth = 1
	}
	rest := snap.Text(line.Extent())
	off := 0
	col := 0
	state := -1
	var cluster string
	for rest != "" && col < visual {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		col = advance(cluster, col, tabWidth)
		if col <= visual {
			off += len(cluster)
		}
	}
	virtual := visual - col
	if virtual < 0 {
		virtual = 0
	}
	return types.Position{Offset: line.Start + off, Virtual: virtual}
}
