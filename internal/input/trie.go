// internal/input/trie.go
package input

// Result is the outcome of feeding one key to a Trie.
type Result int

const (
	NoMatch Result = iota
	Pending
	Matched
)

func (r Result) String() string {
	switch r {
	case Pending:
		return "Pending"
	case Matched:
		return "Matched"
	default:
		return "NoMatch"
	}
}

type node[H any] struct {
	children map[rune]*node[H]
	handler  H
	bound    bool
}

// Trie resolves key sequences to handlers one key at a time. It remembers
// the prefix typed so far between calls.
type Trie[H any] struct {
	root *node[H]
	cur  *node[H]
}

// NewTrie creates an empty trie.
func NewTrie[H any]() *Trie[H] {
	root := &node[H]{}
	return &Trie[H]{root: root, cur: root}
}

// Add binds seq to h. Binding a sequence again replaces its handler. The
// empty sequence is ignored.
func (t *Trie[H]) Add(seq string, h H) {
	if seq == "" {
		return
	}
	n := t.root
	for _, r := range seq {
		if n.children == nil {
			n.children = make(map[rune]*node[H])
		}
		child, ok := n.children[r]
		if !ok {
			child = &node[H]{}
			n.children[r] = child
		}
		n = child
	}
	n.handler = h
	n.bound = true
}

// TryAdvance walks one key from the pending prefix. A bound node matches and
// resets the trie, an unbound one keeps the prefix pending, and a missing
// child resets the trie and reports NoMatch.
func (t *Trie[H]) TryAdvance(r rune) (Result, H) {
	var zero H
	child, ok := t.cur.children[r]
	if !ok {
		t.cur = t.root
		return NoMatch, zero
	}
	if child.bound {
		t.cur = t.root
		return Matched, child.handler
	}
	t.cur = child
	return Pending, zero
}

// Reset drops any pending prefix.
func (t *Trie[H]) Reset() { t.cur = t.root }

// Pending reports whether a proper prefix has been typed.
func (t *Trie[H]) Pending() bool { return t.cur != t.root }
