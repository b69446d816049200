package boards

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ListItem is an item together with everything the UI needs to show it.
type ListItem struct {
	Item
	Labels        ItemLabels
	DefaultAction Action
	OtherActions  OtherActions
}

// BoardWithPort is one resolved board on a port.
type BoardWithPort struct {
	Port  Port            `json:"port" yaml:"port"`
	Board BoardIdentifier `json:"board" yaml:"board"`
}

// List inverts the 1..* port to boards mapping of a discovery snapshot into
// 1..1 board+port pairs, sorted for display.
type List struct {
	// Items holds every detected port, sorted.
	Items []ListItem
	// Boards holds one entry per resolved board of each item: the discovered
	// board, the inferred board, and every candidate of an ambiguous port.
	Boards []BoardWithPort
	// BoardsConfig is the selection the list was built with.
	BoardsConfig BoardsConfig
	// SelectedIndex is the index of the item matching BoardsConfig, or -1.
	SelectedIndex int
	Labels        ListLabels

	detectedPorts DetectedPorts
	history       BoardsListHistory
	allPorts      []DetectedPort
}

// Builder creates boards lists with a fixed set of options.
type Builder struct {
	opts Options
}

// NewBuilder returns a builder using opts.
func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Options returns the options of the builder.
func (b *Builder) Options() Options {
	return b.opts
}

// CreateBoardsList builds a list with the default options.
func CreateBoardsList(detected DetectedPorts, cfg BoardsConfig, history BoardsListHistory) *List {
	return NewBuilder(defaultOptions).Build(detected, cfg, history)
}

// MustCreateBoardsList validates the inputs and builds the list with the
// default options. It panics on invalid input.
func MustCreateBoardsList(detected DetectedPorts, cfg BoardsConfig, history BoardsListHistory) *List {
	if err := ValidateInput(detected, cfg, history); err != nil {
		panic(fmt.Sprintf("boards: %v", err))
	}
	return CreateBoardsList(detected, cfg, history)
}

// Build classifies every detected port, sorts the items and resolves the
// selection. It never fails: absence and ambiguity end up as data.
func (b *Builder) Build(detected DetectedPorts, cfg BoardsConfig, history BoardsListHistory) *List {
	o := b.opts
	items := make([]ListItem, 0, detected.Len())
	for _, port := range detected.Values() {
		item := o.ClassifyPort(port, history)
		items = append(items, ListItem{
			Item:          item,
			Labels:        o.itemLabels(item),
			DefaultAction: defaultAction(item),
			OtherActions:  otherActions(item),
		})
	}
	slices.SortStableFunc(items, func(left, right ListItem) int {
		return o.CompareItems(left.Item, right.Item)
	})

	selectedIndex := findSelectedIndex(cfg, items)
	allPorts := collectPorts(items, detected)
	return &List{
		Items:         items,
		Boards:        o.collectBoards(items),
		BoardsConfig:  cfg,
		SelectedIndex: selectedIndex,
		Labels:        o.listLabels(cfg, allPorts, selectedIndex >= 0),
		detectedPorts: detected,
		history:       history,
		allPorts:      allPorts,
	}
}

// SelectedItem returns the item matching the selection.
func (l *List) SelectedItem() (ListItem, bool) {
	if l.SelectedIndex < 0 || l.SelectedIndex >= len(l.Items) {
		return ListItem{}, false
	}
	return l.Items[l.SelectedIndex], true
}

// findSelectedIndex looks for the exact board+port match of a defined config
// among the discovered boards first, then among the inferred ones.
func findSelectedIndex(cfg BoardsConfig, items []ListItem) int {
	if !IsDefinedBoardsConfig(cfg) {
		return -1
	}
	portKey := CreatePortKey(*cfg.SelectedPort)
	for i, item := range items {
		if item.board == nil {
			continue
		}
		if CreatePortKey(item.port) == portKey && BoardIdentifierEquals(item.board, cfg.SelectedBoard) {
			return i
		}
	}
	for i, item := range items {
		if item.inferred == nil {
			continue
		}
		if CreatePortKey(item.port) == portKey && BoardIdentifierEquals(item.inferred, cfg.SelectedBoard) {
			return i
		}
	}
	return -1
}

func (o Options) collectBoards(items []ListItem) []BoardWithPort {
	var result []BoardWithPort
	for _, item := range items {
		var pairs []Item
		board := item.resolved()
		if board != nil {
			pairs = append(pairs, plainItem(item.port, *board))
		}
		for _, candidate := range item.boards {
			if !BoardIdentifierEquals(board, &candidate) {
				pairs = append(pairs, plainItem(item.port, candidate))
			}
		}
		slices.SortStableFunc(pairs, o.CompareItems)
		for _, pair := range pairs {
			result = append(result, BoardWithPort{Port: pair.Port(), Board: *pair.board})
		}
	}
	return result
}

// collectPorts returns the detected ports in item order, once per port key.
// Items whose key is not in the snapshot are skipped.
func collectPorts(items []ListItem, detected DetectedPorts) []DetectedPort {
	var ports []DetectedPort
	visited := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := CreatePortKey(item.port)
		if _, ok := visited[key]; ok {
			continue
		}
		visited[key] = struct{}{}
		if port, ok := detected.Get(key); ok {
			port.Port = clonePort(port.Port)
			port.Boards = slices.Clone(port.Boards)
			ports = append(ports, port)
		}
	}
	return ports
}

type debugState struct {
	Labels        ListLabels        `json:"labels"`
	DetectedPorts DetectedPorts     `json:"detectedPorts"`
	BoardsConfig  BoardsConfig      `json:"boardsConfig"`
	Items         []ListItem        `json:"items"`
	SelectedIndex int               `json:"selectedIndex"`
	History       BoardsListHistory `json:"history"`
}

// String dumps the complete state of the list as indented JSON for debugging.
func (l *List) String() string {
	history := l.history
	if history == nil {
		history = BoardsListHistory{}
	}
	items := l.Items
	if items == nil {
		items = []ListItem{}
	}
	data, err := json.MarshalIndent(debugState{
		Labels:        l.Labels,
		DetectedPorts: l.detectedPorts,
		BoardsConfig:  l.BoardsConfig,
		Items:         items,
		SelectedIndex: l.SelectedIndex,
		History:       history,
	}, "", "  ")
	if err != nil {
		return fmt.Sprintf("boards list: %v", err)
	}
	return string(data)
}
