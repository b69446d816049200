package boards

import "cmp"

// EqualsOptions tunes BoardIdentifierEquals.
type EqualsOptions struct {
	// LooseFQBN ignores the FQBN config options, so a:b:c:o1=v1 equals a:b:c.
	LooseFQBN bool
}

// BoardIdentifierEquals compares board identities with loose FQBN matching.
func BoardIdentifierEquals(left, right *BoardIdentifier) bool {
	return BoardIdentifierEqualsWith(left, right, EqualsOptions{LooseFQBN: true})
}

// BoardIdentifierEqualsWith compares board identities.
//
// Two nil boards are equal, a nil and a non-nil board are not. When only one
// side has an FQBN the boards differ, even if the names match: board search
// reports no FQBN for platforms that are not installed while the discovery
// reports the full FQBN, and several platforms may ship a board with the same
// name. With FQBNs on both sides the names are ignored. Without FQBNs the
// names are compared.
func BoardIdentifierEqualsWith(left, right *BoardIdentifier, opts EqualsOptions) bool {
	if left == nil || right == nil {
		return left == nil && right == nil
	}
	if (left.FQBN == "") != (right.FQBN == "") {
		// TODO: compare by name once board search reports the FQBN of
		// platforms that are not installed.
		return false
	}
	if left.FQBN != "" {
		if opts.LooseFQBN {
			return sanitizeFQBN(left.FQBN) == sanitizeFQBN(right.FQBN)
		}
		return left.FQBN == right.FQBN
	}
	return left.Name == right.Name
}

// BoardIdentifierComparator orders boards with the default options.
func BoardIdentifierComparator(left, right *BoardIdentifier) int {
	return defaultOptions.CompareBoards(left, right)
}

// CompareBoards orders nil boards last, first-party vendor boards before the
// others, then by the natural order of the names.
func (o Options) CompareBoards(left, right *BoardIdentifier) int {
	if left == nil {
		if right == nil {
			return 0
		}
		return 1
	}
	if right == nil {
		return -1
	}
	leftFirstParty := o.isFirstParty(*left)
	rightFirstParty := o.isFirstParty(*right)
	if leftFirstParty && !rightFirstParty {
		return -1
	}
	if !leftFirstParty && rightFirstParty {
		return 1
	}
	return NaturalCompare(left.Name, right.Name)
}

func (o Options) isFirstParty(board BoardIdentifier) bool {
	return o.FirstPartyVendor != "" && fqbnVendor(board.FQBN) == o.FirstPartyVendor
}

// PortProtocolComparator orders ports by protocol priority with the default options.
func PortProtocolComparator(left, right Identifiable) int {
	return defaultOptions.ComparePortProtocols(left, right)
}

// ComparePortProtocols orders ports by the rank of their protocol. Protocols
// without a rank tie with each other.
func (o Options) ComparePortProtocols(left, right Identifiable) int {
	return cmp.Compare(
		o.protocolPriority(left.Identifier().Protocol),
		o.protocolPriority(right.Identifier().Protocol),
	)
}
