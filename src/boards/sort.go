package boards

// CompareItems is the total order of the boards list:
//
//  1. port protocol priority,
//  2. resolved board (inferred, otherwise discovered; nil last),
//  3. ambiguous items before the others,
//  4. ambiguous items with a unique board name first, by that name,
//  5. natural order of the port address.
//
// Callers sort with a stable sort so equal items keep their input order.
func (o Options) CompareItems(left, right Item) int {
	if c := o.ComparePortProtocols(left.port, right.port); c != 0 {
		return c
	}
	if c := o.CompareBoards(left.resolved(), right.resolved()); c != 0 {
		return c
	}

	leftMulti, rightMulti := left.IsMulti(), right.IsMulti()
	if leftMulti && !rightMulti {
		return -1
	}
	if !leftMulti && rightMulti {
		return 1
	}
	if leftMulti && rightMulti {
		leftName, leftUnique := left.UniqueBoardName()
		rightName, rightUnique := right.UniqueBoardName()
		switch {
		case leftUnique && !rightUnique:
			return -1
		case !leftUnique && rightUnique:
			return 1
		case leftUnique && rightUnique:
			if c := NaturalCompare(leftName, rightName); c != 0 {
				return c
			}
		}
	}

	return NaturalCompare(left.port.Address, right.port.Address)
}

// BoardsListItemComparator orders items with the default options.
func BoardsListItemComparator(left, right Item) int {
	return defaultOptions.CompareItems(left, right)
}
