// internal/input/action.go
package input

// Command identifies a modal editing command bound in a mode's key table.
type Command int

const (
	CmdUnknown Command = iota

	// --- Motions ---
	CmdMoveLeft
	CmdMoveRight
	CmdMoveDown
	CmdMoveUp
	CmdWordForward
	CmdBigWordForward
	CmdWordBackward
	CmdBigWordBackward

	// --- Insert entry ---
	CmdInsert
	CmdAppend
	CmdOpenBelow
	CmdOpenAbove

	// --- Selection and editing ---
	CmdLinewise
	CmdYank
	CmdDelete
	CmdChange
	CmdPaste
	CmdAddCaretBelow
	CmdAddCaretAbove
	CmdClearSecondary
	CmdUndo
	CmdRedo

	// --- Mode entry ---
	CmdVisual
	CmdGoto
	CmdMatch
	CmdSearch    // Select the primary match only
	CmdSearchAll // Select every match
	CmdSearchNext
	CmdSearchPrev

	// --- Visual mode ---
	CmdExtendLeft
	CmdExtendRight
	CmdExtendDown
	CmdExtendUp
	CmdExtendWordForward
	CmdExtendBigWordForward
	CmdExtendWordBackward
	CmdExtendBigWordBackward
	CmdExitVisual

	// --- Goto mode ---
	CmdGotoLine
	CmdGotoFileEnd
	CmdGotoLineStart
	CmdGotoLineEnd
	CmdGotoFirstNonWhitespace
	CmdGotoViewTop
	CmdGotoViewCenter
	CmdGotoViewBottom
	CmdGotoFile

	// --- Match mode ---
	CmdMatchBracket
	CmdSurroundAdd
	CmdSurroundReplace
	CmdSurroundDelete
	CmdSelectAround
	CmdSelectInside
)

var commandNames = map[Command]string{
	CmdMoveLeft:               "move_left",
	CmdMoveRight:              "move_right",
	CmdMoveDown:               "move_down",
	CmdMoveUp:                 "move_up",
	CmdWordForward:            "word_forward",
	CmdBigWordForward:         "big_word_forward",
	CmdWordBackward:           "word_backward",
	CmdBigWordBackward:        "big_word_backward",
	CmdInsert:                 "insert",
	CmdAppend:                 "append",
	CmdOpenBelow:              "open_below",
	CmdOpenAbove:              "open_above",
	CmdLinewise:               "extend_line",
	CmdYank:                   "yank",
	CmdDelete:                 "delete",
	CmdChange:                 "change",
	CmdPaste:                  "paste",
	CmdAddCaretBelow:          "add_caret_below",
	CmdAddCaretAbove:          "add_caret_above",
	CmdClearSecondary:         "clear_secondary",
	CmdUndo:                   "undo",
	CmdRedo:                   "redo",
	CmdVisual:                 "visual",
	CmdGoto:                   "goto",
	CmdMatch:                  "match",
	CmdSearch:                 "search",
	CmdSearchAll:              "search_all",
	CmdSearchNext:             "search_next",
	CmdSearchPrev:             "search_prev",
	CmdExtendLeft:             "extend_left",
	CmdExtendRight:            "extend_right",
	CmdExtendDown:             "extend_down",
	CmdExtendUp:               "extend_up",
	CmdExtendWordForward:      "extend_word_forward",
	CmdExtendBigWordForward:   "extend_big_word_forward",
	CmdExtendWordBackward:     "extend_word_backward",
	CmdExtendBigWordBackward:  "extend_big_word_backward",
	CmdExitVisual:             "exit_visual",
	CmdGotoLine:               "goto_line",
	CmdGotoFileEnd:            "goto_file_end",
	CmdGotoLineStart:          "goto_line_start",
	CmdGotoLineEnd:            "goto_line_end",
	CmdGotoFirstNonWhitespace: "goto_first_nonwhitespace",
	CmdGotoViewTop:            "goto_view_top",
	CmdGotoViewCenter:         "goto_view_center",
	CmdGotoViewBottom:         "goto_view_bottom",
	CmdGotoFile:               "goto_file",
	CmdMatchBracket:           "match_bracket",
	CmdSurroundAdd:            "surround_add",
	CmdSurroundReplace:        "surround_replace",
	CmdSurroundDelete:         "surround_delete",
	CmdSelectAround:           "select_around",
	CmdSelectInside:           "select_inside",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Binding pairs a key sequence with the command it runs.
type Binding struct {
	Keys    string
	Command Command
}

// NormalBindings is the Normal mode key table.
var NormalBindings = []Binding{
	{"h", CmdMoveLeft}, {"l", CmdMoveRight}, {"j", CmdMoveDown}, {"k", CmdMoveUp},
	{"w", CmdWordForward}, {"W", CmdBigWordForward}, {"b", CmdWordBackward}, {"B", CmdBigWordBackward},
	{"i", CmdInsert}, {"a", CmdAppend}, {"o", CmdOpenBelow}, {"O", CmdOpenAbove},
	{"x", CmdLinewise}, {"y", CmdYank}, {"d", CmdDelete}, {"c", CmdChange}, {"p", CmdPaste},
	{"C", CmdAddCaretBelow}, {"K", CmdAddCaretAbove}, {",", CmdClearSecondary},
	{"u", CmdUndo}, {"U", CmdRedo},
	{"v", CmdVisual}, {"g", CmdGoto}, {"m", CmdMatch},
	{"/", CmdSearch}, {"s", CmdSearchAll}, {"n", CmdSearchNext}, {"N", CmdSearchPrev},
}

// VisualBindings is the Visual mode key table.
var VisualBindings = []Binding{
	{"h", CmdExtendLeft}, {"l", CmdExtendRight}, {"j", CmdExtendDown}, {"k", CmdExtendUp},
	{"w", CmdExtendWordForward}, {"W", CmdExtendBigWordForward},
	{"b", CmdExtendWordBackward}, {"B", CmdExtendBigWordBackward},
	{"x", CmdLinewise}, {"y", CmdYank}, {"d", CmdDelete}, {"c", CmdChange},
	{"v", CmdExitVisual},
}

// GotoBindings is the Goto mode key table.
var GotoBindings = []Binding{
	{"g", CmdGotoLine}, {"e", CmdGotoFileEnd},
	{"h", CmdGotoLineStart}, {"l", CmdGotoLineEnd}, {"s", CmdGotoFirstNonWhitespace},
	{"t", CmdGotoViewTop}, {"c", CmdGotoViewCenter}, {"b", CmdGotoViewBottom},
	{"j", CmdMoveDown}, {"k", CmdMoveUp}, {"f", CmdGotoFile},
}

// MatchBindings is the Match mode key table.
var MatchBindings = []Binding{
	{"m", CmdMatchBracket}, {"s", CmdSurroundAdd}, {"r", CmdSurroundReplace},
	{"d", CmdSurroundDelete}, {"a", CmdSelectAround}, {"i", CmdSelectInside},
}

// BuildTrie loads bindings into a new trie.
func BuildTrie(bindings []Binding) *Trie[Command] {
	t := NewTrie[Command]()
	for _, b := range bindings {
		t.Add(b.Keys, b.Command)
	}
	return t
}
