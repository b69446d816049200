package boards

// ItemLabels is what the UI shows for one item.
type ItemLabels struct {
	BoardLabel         string `json:"boardLabel" yaml:"boardLabel"`
	BoardLabelWithFQBN string `json:"boardLabelWithFqbn" yaml:"boardLabelWithFqbn"`
	PortLabel          string `json:"portLabel" yaml:"portLabel"`
	PortProtocol       string `json:"portProtocol" yaml:"portProtocol"`
	Tooltip            string `json:"tooltip" yaml:"tooltip"`
}

// ListLabels is what the UI shows for the whole list.
type ListLabels struct {
	BoardLabel string `json:"boardLabel" yaml:"boardLabel"`
	// PortProtocol is only set when a board is selected too.
	PortProtocol string `json:"portProtocol,omitempty" yaml:"portProtocol,omitempty"`
	Tooltip      string `json:"tooltip" yaml:"tooltip"`
	// Selected is true when the selection matches one of the items.
	Selected bool `json:"selected" yaml:"selected"`
}

func (o Options) itemLabels(item Item) ItemLabels {
	board := item.resolved()
	if board == nil && item.IsMulti() {
		name, ok := item.UniqueBoardName()
		if !ok {
			name = o.Labels.UnconfirmedBoard
		}
		board = &BoardIdentifier{Name: name}
	}

	boardLabel := o.Labels.Unknown
	if board != nil {
		boardLabel = board.Name
	}
	boardLabelWithFQBN := boardLabel
	if board != nil && board.FQBN != "" {
		boardLabelWithFQBN += " (" + board.FQBN + ")"
	}
	return ItemLabels{
		BoardLabel:         boardLabel,
		BoardLabelWithFQBN: boardLabelWithFQBN,
		PortLabel:          item.port.Address,
		PortProtocol:       item.port.Protocol,
		Tooltip:            boardLabelWithFQBN + "\n" + item.port.Address,
	}
}

func (o Options) listLabels(cfg BoardsConfig, allPorts []DetectedPort, selected bool) ListLabels {
	board, port := cfg.SelectedBoard, cfg.SelectedPort

	boardLabel := o.Labels.SelectBoard
	if board != nil && board.Name != "" {
		boardLabel = board.Name
	}

	var tooltip string
	if board == nil && port == nil {
		tooltip = o.Labels.SelectBoard
	} else {
		if board != nil {
			tooltip = BoardIdentifierLabel(*board, true)
		}
		if port != nil {
			if tooltip != "" {
				tooltip += "\n"
			}
			tooltip += port.Address
			if FindMatchingPortIndex(port, allPorts) < 0 {
				tooltip += " " + o.Labels.NotConnected
			}
		}
	}

	labels := ListLabels{
		BoardLabel: boardLabel,
		Tooltip:    tooltip,
		Selected:   selected,
	}
	if board != nil && port != nil {
		labels.PortProtocol = port.Protocol
	}
	return labels
}
