package boards

import (
	"maps"
	"slices"
)

// ItemKind discriminates the shapes a boards list item can take.
type ItemKind int

const (
	// KindPlain is a detected port with no board or exactly one discovered board.
	KindPlain ItemKind = iota
	// KindMulti is a detected port with at least two discovered boards.
	KindMulti
	// KindManuallySelected is a port without a single discovered board whose
	// board comes from the history.
	KindManuallySelected
	// KindBoardOverridden is a port with one discovered board that the user
	// replaced with another one.
	KindBoardOverridden
)

func (k ItemKind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindMulti:
		return "multi"
	case KindManuallySelected:
		return string(ManuallySelected)
	case KindBoardOverridden:
		return string(BoardOverridden)
	}
	return "unknown"
}

// InferenceType tells where an inferred board comes from.
type InferenceType string

const (
	// ManuallySelected is a board picked by the user for a port no single
	// board was discovered for.
	ManuallySelected InferenceType = "manually-selected"
	// BoardOverridden is a board picked by the user instead of the discovered one.
	BoardOverridden InferenceType = "board-overridden"
)

// Item is the classified view of one detected port. Items are only built by
// the classifier, which keeps the payload consistent with the kind:
//
//   - KindPlain: optional discovered board.
//   - KindMulti: two or more sorted candidates.
//   - KindManuallySelected: inferred board, plus the candidates when the port
//     was ambiguous.
//   - KindBoardOverridden: discovered board and inferred board.
type Item struct {
	kind     ItemKind
	port     Port
	board    *BoardIdentifier
	boards   []BoardIdentifier
	inferred *BoardIdentifier
}

// Kind returns the item discriminant.
func (i Item) Kind() ItemKind { return i.kind }

// Port returns the detected port. Its properties are a copy.
func (i Item) Port() Port { return clonePort(i.port) }

// Board returns the single discovered board, nil when there is none.
func (i Item) Board() *BoardIdentifier { return cloneBoard(i.board) }

// Boards returns the discovered candidates of an ambiguous port.
func (i Item) Boards() []BoardIdentifier { return slices.Clone(i.boards) }

// InferredBoard returns the board taken from the history, nil when not inferred.
func (i Item) InferredBoard() *BoardIdentifier { return cloneBoard(i.inferred) }

// InferenceType returns the inference type of an inferred item.
func (i Item) InferenceType() (InferenceType, bool) {
	switch i.kind {
	case KindManuallySelected:
		return ManuallySelected, true
	case KindBoardOverridden:
		return BoardOverridden, true
	}
	return "", false
}

// IsMulti reports whether the port has several discovered candidates. This
// holds for manually selected items built from an ambiguous port too.
func (i Item) IsMulti() bool { return len(i.boards) > 1 }

// IsInferred reports whether the item carries a board from the history.
func (i Item) IsInferred() bool { return i.inferred != nil }

// ResolvedBoard returns the inferred board if any, otherwise the discovered one.
func (i Item) ResolvedBoard() *BoardIdentifier {
	if i.inferred != nil {
		return cloneBoard(i.inferred)
	}
	return cloneBoard(i.board)
}

// UniqueBoardName returns the name shared by all candidates of an ambiguous item.
func (i Item) UniqueBoardName() (string, bool) {
	if !i.IsMulti() {
		return "", false
	}
	return uniqueBoardName(i.boards)
}

func (i Item) resolved() *BoardIdentifier {
	if i.inferred != nil {
		return i.inferred
	}
	return i.board
}

func uniqueBoardName(boards []BoardIdentifier) (string, bool) {
	if len(boards) == 0 {
		return "", false
	}
	name := boards[0].Name
	for _, board := range boards[1:] {
		if board.Name != name {
			return "", false
		}
	}
	return name, name != ""
}

func cloneBoard(board *BoardIdentifier) *BoardIdentifier {
	if board == nil {
		return nil
	}
	c := *board
	return &c
}

func clonePort(port Port) Port {
	port.Properties = maps.Clone(port.Properties)
	return port
}

// CreateBoardsListItem classifies a detected port with the default options.
func CreateBoardsListItem(detected DetectedPort, history BoardsListHistory) Item {
	return defaultOptions.ClassifyPort(detected, history)
}

// ClassifyPort turns a detected port into an item. The candidates are sorted
// first so that picking the first one is deterministic. A history entry
// always wins over an ambiguous discovery, even when it is not one of the
// candidates, and overrides a single discovered board only when it is a
// different board.
func (o Options) ClassifyPort(detected DetectedPort, history BoardsListHistory) Item {
	candidates := slices.Clone(detected.Boards)
	slices.SortStableFunc(candidates, func(a, b BoardIdentifier) int {
		return o.CompareBoards(&a, &b)
	})

	item := Item{kind: KindPlain, port: detected.Port}
	var inferred *BoardIdentifier
	if board, ok := history[CreatePortKey(detected.Port)]; ok {
		inferred = &board
	}

	switch len(candidates) {
	case 0:
		if inferred != nil {
			item.kind = KindManuallySelected
			item.inferred = inferred
		}
	case 1:
		item.board = &candidates[0]
		if inferred != nil && !BoardIdentifierEquals(item.board, inferred) {
			item.kind = KindBoardOverridden
			item.inferred = inferred
		}
	default:
		item.kind = KindMulti
		item.boards = candidates
		if inferred != nil {
			item.kind = KindManuallySelected
			item.inferred = inferred
		}
	}
	return item
}

func plainItem(port Port, board BoardIdentifier) Item {
	return Item{kind: KindPlain, port: port, board: &board}
}
