// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidehx/internal/core"
	"github.com/bethropolis/tidehx/internal/core/cursor"
	"github.com/bethropolis/tidehx/internal/types"
)

const statusBarHeight = 1

// View draws one editor into the area above the status line.
type View struct {
	Editor    *core.Editor
	Viewport  *cursor.Viewport
	Styles    Styles
	ScrollOff int
	// Matches returns the live search matches to highlight. Optional.
	Matches func() []types.Span

	bar  bool
	left int // First visible visual column
}

// NewView creates a view over ed and installs its viewport on the editor.
func NewView(ed *core.Editor, styles Styles, scrollOff int) *View {
	v := &View{Editor: ed, Viewport: &cursor.Viewport{}, Styles: styles, ScrollOff: scrollOff}
	ed.SetViewport(v.Viewport)
	return v
}

// SetBarCaret switches the primary caret between a bar and a block.
func (v *View) SetBarCaret(bar bool) { v.bar = bar }

// BarCaret reports whether the bar caret is active.
func (v *View) BarCaret() bool { return v.bar }

func gutterWidth(lineCount, width int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	w := int(math.Log10(float64(lineCount))) + 2
	if w >= width {
		return 0
	}
	return w
}

// scroll keeps the primary active point on screen.
func (v *View) scroll(textWidth int) {
	snap := v.Editor.Snapshot()
	active := v.Editor.Selections().Primary().Active
	v.Viewport.ScrollTo(snap.LineFromOffset(active.Offset).Number, v.ScrollOff)

	col := cursor.VisualColumn(snap, active, v.Editor.TabWidth())
	if col < v.left {
		v.left = col
	} else if textWidth > 0 && col >= v.left+textWidth {
		v.left = col - textWidth + 1
	}
}

// cellStyle picks the style of the byte at off. Selections win over
// search matches.
func (v *View) cellStyle(off int, sels []types.Selection, primary int, matches []types.Span) tcell.Style {
	for i, s := range sels {
		if s.Span().Contains(off) {
			if i == primary {
				return v.Styles.PrimarySelection
			}
			return v.Styles.Selection
		}
	}
	for _, m := range matches {
		if m.Contains(off) {
			return v.Styles.SearchMatch
		}
	}
	return v.Styles.Default
}

// Draw renders the visible lines, the gutter and the carets.
func (v *View) Draw(t *TUI) {
	s := t.screen
	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	snap := v.Editor.Snapshot()
	tabWidth := v.Editor.TabWidth()
	gutter := gutterWidth(snap.LineCount(), width)
	textWidth := width - gutter
	v.Viewport.SetHeight(viewHeight)
	v.scroll(textWidth)

	sels := v.Editor.Selections().All()
	primary := v.Editor.Selections().PrimaryIndex()
	var matches []types.Span
	if v.Matches != nil {
		matches = v.Matches()
	}
	activeLine := snap.LineFromOffset(sels[primary].Active.Offset).Number

	for screenY := 0; screenY < viewHeight; screenY++ {
		for x := 0; x < width; x++ {
			s.SetContent(x, screenY, ' ', nil, v.Styles.Default)
		}
		lineIdx := v.Viewport.Top() + screenY
		if lineIdx >= snap.LineCount() {
			continue
		}
		if gutter > 0 {
			style := v.Styles.LineNumber
			if lineIdx == activeLine {
				style = style.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", gutter-1, lineIdx+1) {
				s.SetContent(i, screenY, r, nil, style)
			}
		}

		line := snap.Line(lineIdx)
		rest := snap.Text(line.Extent())
		off := line.Start
		col := 0
		state := -1
		var cluster string
		for rest != "" {
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			w := uniseg.StringWidth(cluster)
			if cluster == "\t" {
				w = tabWidth - col%tabWidth
			}
			style := v.cellStyle(off, sels, primary, matches)
			for cw := 0; cw < w; cw++ {
				x := col + cw - v.left
				if x < 0 || x >= textWidth {
					continue
				}
				r, comb := ' ', []rune(nil)
				if cw == 0 && cluster != "\t" {
					runes := []rune(cluster)
					r, comb = runes[0], runes[1:]
				}
				s.SetContent(gutter+x, screenY, r, comb, style)
			}
			col += w
			off += len(cluster)
			if col-v.left >= textWidth {
				break
			}
		}
	}

	v.drawCarets(s, sels, primary, gutter, textWidth, viewHeight)
}

// drawCarets shows the terminal cursor at the primary active point and
// paints secondary active points.
func (v *View) drawCarets(s tcell.Screen, sels []types.Selection, primary, gutter, textWidth, viewHeight int) {
	snap := v.Editor.Snapshot()
	place := func(p types.Position) (int, int, bool) {
		y := snap.LineFromOffset(p.Offset).Number - v.Viewport.Top()
		x := cursor.VisualColumn(snap, p, v.Editor.TabWidth()) - v.left
		if y < 0 || y >= viewHeight || x < 0 || x >= textWidth {
			return 0, 0, false
		}
		return gutter + x, y, true
	}

	for i, sel := range sels {
		if i == primary {
			continue
		}
		if x, y, ok := place(sel.Active); ok {
			r, comb, _, _ := s.GetContent(x, y)
			s.SetContent(x, y, r, comb, v.Styles.SecondaryCaret)
		}
	}

	if v.bar {
		s.SetCursorStyle(tcell.CursorStyleSteadyBar)
	} else {
		s.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	}
	if x, y, ok := place(sels[primary].Active); ok {
		s.ShowCursor(x, y)
	} else {
		s.HideCursor()
	}
}
