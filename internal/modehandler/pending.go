package modehandler

import "fmt"

// PendingInput is the partial state of a multi-key command. Exactly one
// variant is held at a time.
type PendingInput interface {
	fmt.Stringer
	pending()
}

// Idle means no command is in progress.
type Idle struct{}

// AwaitingCount holds a numeric prefix typed so far.
type AwaitingCount struct{ N int }

// AwaitingTrieContinuation means a proper prefix of a bound sequence was
// typed. Count is the numeric prefix typed before it, if any.
type AwaitingTrieContinuation struct{ Count int }

// SurroundOp selects what a surround character is used for.
type SurroundOp int

const (
	SurroundAdd SurroundOp = iota
	SurroundDelete
)

// AwaitingSurroundChar waits for the delimiter to add or delete.
type AwaitingSurroundChar struct{ Op SurroundOp }

// AwaitingReplaceFrom waits for the delimiter to replace.
type AwaitingReplaceFrom struct{}

// AwaitingReplaceTo waits for the replacement of From.
type AwaitingReplaceTo struct{ From rune }

// AwaitingObjectChar waits for the delimiter of a text object.
type AwaitingObjectChar struct{ Around bool }

func (Idle) pending()                     {}
func (AwaitingCount) pending()            {}
func (AwaitingTrieContinuation) pending() {}
func (AwaitingSurroundChar) pending()     {}
func (AwaitingReplaceFrom) pending()      {}
func (AwaitingReplaceTo) pending()        {}
func (AwaitingObjectChar) pending()       {}

func (Idle) String() string            { return "" }
func (p AwaitingCount) String() string { return fmt.Sprintf("%d", p.N) }

func (p AwaitingTrieContinuation) String() string {
	if p.Count > 0 {
		return fmt.Sprintf("%d…", p.Count)
	}
	return "…"
}

func (p AwaitingSurroundChar) String() string {
	if p.Op == SurroundDelete {
		return "delete surround"
	}
	return "surround"
}

func (AwaitingReplaceFrom) String() string { return "replace" }
func (p AwaitingReplaceTo) String() string { return fmt.Sprintf("replace %c with", p.From) }
func (p AwaitingObjectChar) String() string {
	if p.Around {
		return "around"
	}
	return "inside"
}

// MaxCount caps a numeric prefix. Digits past it are ignored.
const MaxCount = 100000

// withDigit appends the decimal digit r to n, saturating at MaxCount.
func withDigit(n int, r rune) int {
	n = n*10 + int(r-'0')
	if n > MaxCount {
		return MaxCount
	}
	return n
}

// countOf returns the numeric prefix carried by p, or 0.
func countOf(p PendingInput) int {
	switch v := p.(type) {
	case AwaitingCount:
		return v.N
	case AwaitingTrieContinuation:
		return v.Count
	}
	return 0
}
