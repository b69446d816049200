package boards

import "encoding/json"

// ActionType identifies what an item action does when triggered.
type ActionType string

const (
	// SelectBoardsConfigType selects a board+port pair right away.
	SelectBoardsConfigType ActionType = "select-boards-config"
	// EditBoardsConfigType opens the board selection with prefilled values.
	EditBoardsConfigType ActionType = "edit-boards-config"
)

// Action is implemented by SelectAction and EditAction.
type Action interface {
	Type() ActionType
}

// SelectParams is a fully defined board+port selection.
type SelectParams struct {
	SelectedBoard BoardIdentifier `json:"selectedBoard"`
	SelectedPort  PortIdentifier  `json:"selectedPort"`
}

// SelectAction selects the board on the port.
type SelectAction struct {
	Params SelectParams
}

// Type implements Action.
func (SelectAction) Type() ActionType { return SelectBoardsConfigType }

// MarshalJSON renders the action with its type discriminant.
func (a SelectAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.View())
}

// EditParams prefills the board selection.
type EditParams struct {
	PortToSelect  *PortIdentifier   `json:"portToSelect,omitempty"`
	BoardToSelect *BoardIdentifier  `json:"boardToSelect,omitempty"`
	Query         string            `json:"query"`
	SearchSet     []BoardIdentifier `json:"searchSet,omitempty"`
}

// EditAction lets the user pick the board for the port.
type EditAction struct {
	Params EditParams
}

// Type implements Action.
func (EditAction) Type() ActionType { return EditBoardsConfigType }

// MarshalJSON renders the action with its type discriminant.
func (a EditAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.View())
}

// OtherActions are the secondary actions of an item. Only inferred items have any.
type OtherActions struct {
	Edit   *EditAction
	Revert *SelectAction
}

func newSelectAction(board BoardIdentifier, port Port) SelectAction {
	return SelectAction{Params: SelectParams{
		SelectedBoard: board,
		SelectedPort:  port.Identifier(),
	}}
}

func newEditAction(item Item) EditAction {
	port := item.port.Identifier()
	params := EditParams{PortToSelect: &port}
	switch {
	case item.IsMulti():
		params.Query, _ = item.UniqueBoardName()
		params.SearchSet = item.Boards()
	case item.inferred != nil:
		params.Query = item.inferred.Name
	case item.board != nil:
		params.Query = item.board.Name
	}
	return EditAction{Params: params}
}

// defaultAction selects the inferred board, then the discovered board, and
// falls back to editing when no single board can be resolved.
func defaultAction(item Item) Action {
	if item.inferred != nil {
		return newSelectAction(*item.inferred, item.port)
	}
	if item.board != nil {
		return newSelectAction(*item.board, item.port)
	}
	return newEditAction(item)
}

// otherActions offers editing for inferred items, and reverting to the
// discovered board for overridden ones.
func otherActions(item Item) OtherActions {
	if !item.IsInferred() {
		return OtherActions{}
	}
	edit := newEditAction(item)
	actions := OtherActions{Edit: &edit}
	if item.kind == KindBoardOverridden {
		revert := newSelectAction(*item.board, item.port)
		actions.Revert = &revert
	}
	return actions
}
