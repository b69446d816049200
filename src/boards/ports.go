package boards

// PortList is a projection of the detected ports. MatchingIndex is the index
// of the selected port within Ports, or -1.
type PortList struct {
	Ports         []DetectedPort `json:"ports" yaml:"ports"`
	MatchingIndex int            `json:"matchingIndex" yaml:"matchingIndex"`
}

// Ports returns the detected ports in item order, filtered by predicate when
// it is not nil. The matching index refers to the filtered slice.
func (l *List) Ports(predicate func(DetectedPort) bool) PortList {
	return filterPorts(l.allPorts, l.BoardsConfig.SelectedPort, predicate)
}

// PortsGroupedByProtocol partitions all ports by protocol. Each group carries
// its own matching index; groups without the selected port have -1.
func (l *List) PortsGroupedByProtocol() map[string]PortList {
	all := filterPorts(l.allPorts, l.BoardsConfig.SelectedPort, nil)
	groups := make(map[string]PortList)
	for _, port := range all.Ports {
		group, ok := groups[port.Port.Protocol]
		if !ok {
			group.MatchingIndex = -1
		}
		group.Ports = append(group.Ports, port)
		groups[port.Port.Protocol] = group
	}

	if all.MatchingIndex >= 0 {
		match := all.Ports[all.MatchingIndex]
		group := groups[match.Port.Protocol]
		group.MatchingIndex = FindMatchingPortIndex(l.BoardsConfig.SelectedPort, group.Ports)
		groups[match.Port.Protocol] = group
	}
	return groups
}

func filterPorts(all []DetectedPort, selected *PortIdentifier, predicate func(DetectedPort) bool) PortList {
	ports := make([]DetectedPort, 0, len(all))
	for _, port := range all {
		if predicate == nil || predicate(port) {
			ports = append(ports, port)
		}
	}
	return PortList{
		Ports:         ports,
		MatchingIndex: FindMatchingPortIndex(selected, ports),
	}
}

// ProtocolPredicate keeps the ports of the given protocol.
func ProtocolPredicate(protocol string) func(DetectedPort) bool {
	return func(port DetectedPort) bool {
		return port.Port.Protocol == protocol
	}
}
