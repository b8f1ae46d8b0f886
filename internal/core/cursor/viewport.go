package cursor

// Viewport tracks the first visible line and the visible height of a view.
type Viewport struct {
	top    int
	height int
}

// SetHeight updates the number of visible text lines.
func (v *Viewport) SetHeight(height int) {
	if height < 0 {
		height = 0
	}
	v.height = height
}

// Top returns the first visible line.
func (v *Viewport) Top() int { return v.top }

// Height returns the number of visible lines.
func (v *Viewport) Height() int { return v.height }

// VisibleLines returns the first and last visible line numbers, clamped to lineCount.
func (v *Viewport) VisibleLines(lineCount int) (first, last int) {
	first = v.top
	last = v.top + v.height - 1
	if last >= lineCount {
		last = lineCount - 1
	}
	if last < first {
		last = first
	}
	return first, last
}

// ScrollTo keeps line visible with scrollOff lines of context where possible.
func (v *Viewport) ScrollTo(line, scrollOff int) {
	if v.height <= 0 {
		return
	}
	if scrollOff*2 >= v.height {
		scrollOff = (v.height - 1) / 2
	}
	if line < v.top+scrollOff {
		v.top = line - scrollOff
	} else if line >= v.top+v.height-scrollOff {
		v.top = line - v.height + scrollOff + 1
	}
	if v.top < 0 {
		v.top = 0
	}
}
