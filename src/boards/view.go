package boards

import "encoding/json"

// ActionParams is the wire form of both action kinds.
type ActionParams struct {
	SelectedBoard *BoardIdentifier  `json:"selectedBoard,omitempty" yaml:"selectedBoard,omitempty"`
	SelectedPort  *PortIdentifier   `json:"selectedPort,omitempty" yaml:"selectedPort,omitempty"`
	PortToSelect  *PortIdentifier   `json:"portToSelect,omitempty" yaml:"portToSelect,omitempty"`
	BoardToSelect *BoardIdentifier  `json:"boardToSelect,omitempty" yaml:"boardToSelect,omitempty"`
	Query         *string           `json:"query,omitempty" yaml:"query,omitempty"`
	SearchSet     []BoardIdentifier `json:"searchSet,omitempty" yaml:"searchSet,omitempty"`
}

// ActionView is the plain-data form of an Action.
type ActionView struct {
	Type   ActionType   `json:"type" yaml:"type"`
	Params ActionParams `json:"params" yaml:"params"`
}

// View returns the wire form of the action.
func (a SelectAction) View() ActionView {
	board, port := a.Params.SelectedBoard, a.Params.SelectedPort
	return ActionView{
		Type:   SelectBoardsConfigType,
		Params: ActionParams{SelectedBoard: &board, SelectedPort: &port},
	}
}

// View returns the wire form of the action.
func (a EditAction) View() ActionView {
	query := a.Params.Query
	return ActionView{
		Type: EditBoardsConfigType,
		Params: ActionParams{
			PortToSelect:  a.Params.PortToSelect,
			BoardToSelect: a.Params.BoardToSelect,
			Query:         &query,
			SearchSet:     a.Params.SearchSet,
		},
	}
}

// OtherActionsView is the plain-data form of OtherActions.
type OtherActionsView struct {
	Edit   *ActionView `json:"edit,omitempty" yaml:"edit,omitempty"`
	Revert *ActionView `json:"revert,omitempty" yaml:"revert,omitempty"`
}

// ItemView is the plain-data form of a ListItem.
type ItemView struct {
	Kind          string            `json:"kind" yaml:"kind"`
	Port          Port              `json:"port" yaml:"port"`
	Board         *BoardIdentifier  `json:"board,omitempty" yaml:"board,omitempty"`
	Boards        []BoardIdentifier `json:"boards,omitempty" yaml:"boards,omitempty"`
	InferredBoard *BoardIdentifier  `json:"inferredBoard,omitempty" yaml:"inferredBoard,omitempty"`
	Type          InferenceType     `json:"type,omitempty" yaml:"type,omitempty"`
	Labels        ItemLabels        `json:"labels" yaml:"labels"`
	DefaultAction ActionView        `json:"defaultAction" yaml:"defaultAction"`
	OtherActions  OtherActionsView  `json:"otherActions" yaml:"otherActions"`
}

// View returns the wire form of the item.
func (i ListItem) View() ItemView {
	view := ItemView{
		Kind:          i.kind.String(),
		Port:          i.Port(),
		Board:         i.Board(),
		Boards:        i.Boards(),
		InferredBoard: i.InferredBoard(),
		Labels:        i.Labels,
	}
	view.Type, _ = i.InferenceType()
	switch action := i.DefaultAction.(type) {
	case SelectAction:
		view.DefaultAction = action.View()
	case EditAction:
		view.DefaultAction = action.View()
	}
	if i.OtherActions.Edit != nil {
		edit := i.OtherActions.Edit.View()
		view.OtherActions.Edit = &edit
	}
	if i.OtherActions.Revert != nil {
		revert := i.OtherActions.Revert.View()
		view.OtherActions.Revert = &revert
	}
	return view
}

// MarshalJSON renders the item in its wire form.
func (i ListItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.View())
}

// ListView is the plain-data form of a List, as served over HTTP.
type ListView struct {
	Labels          ListLabels          `json:"labels" yaml:"labels"`
	Items           []ItemView          `json:"items" yaml:"items"`
	Boards          []BoardWithPort     `json:"boards" yaml:"boards"`
	BoardsConfig    BoardsConfig        `json:"boardsConfig" yaml:"boardsConfig"`
	SelectedIndex   int                 `json:"selectedIndex" yaml:"selectedIndex"`
	Ports           PortList            `json:"ports" yaml:"ports"`
	PortsByProtocol map[string]PortList `json:"portsByProtocol" yaml:"portsByProtocol"`
}

// View returns the wire form of the list.
func (l *List) View() ListView {
	items := make([]ItemView, 0, len(l.Items))
	for _, item := range l.Items {
		items = append(items, item.View())
	}
	pairs := l.Boards
	if pairs == nil {
		pairs = []BoardWithPort{}
	}
	return ListView{
		Labels:          l.Labels,
		Items:           items,
		Boards:          pairs,
		BoardsConfig:    l.BoardsConfig,
		SelectedIndex:   l.SelectedIndex,
		Ports:           l.Ports(nil),
		PortsByProtocol: l.PortsGroupedByProtocol(),
	}
}
