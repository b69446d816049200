package boards

import (
	"fmt"
	"maps"
	"slices"

	"github.com/bitswalk/boardlist/src/common/errors"
)

// ValidateInput checks the caller contract of the builder: every detected
// port and the selected port carry a protocol and an address, every history
// key parses, and FQBNs are well formed. The builder itself never validates.
func ValidateInput(detected DetectedPorts, cfg BoardsConfig, history BoardsListHistory) error {
	if err := ValidateDetectedPorts(detected); err != nil {
		return err
	}
	if err := ValidateBoardsConfig(cfg); err != nil {
		return err
	}
	return ValidateHistory(history)
}

// ValidateDetectedPorts checks every entry of a snapshot.
func ValidateDetectedPorts(detected DetectedPorts) error {
	for _, key := range detected.keys {
		port := detected.entries[key]
		field := fmt.Sprintf("detectedPorts[%q]", key)
		if err := validatePortIdentifier(port.Port.Identifier(), field+".port"); err != nil {
			return err
		}
		for i, board := range port.Boards {
			if err := validateFQBN(board.FQBN, fmt.Sprintf("%s.boards[%d].fqbn", field, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateBoardsConfig checks the fields that are set. A partial config is valid.
func ValidateBoardsConfig(cfg BoardsConfig) error {
	if cfg.SelectedPort != nil {
		if err := validatePortIdentifier(*cfg.SelectedPort, "boardsConfig.selectedPort"); err != nil {
			return err
		}
	}
	if board := cfg.SelectedBoard; board != nil {
		if board.Name == "" && board.FQBN == "" {
			return errors.ErrMissingBoardName.WithField("boardsConfig.selectedBoard")
		}
		if err := validateFQBN(board.FQBN, "boardsConfig.selectedBoard.fqbn"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateHistory checks that every key is a port key and every board is usable.
func ValidateHistory(history BoardsListHistory) error {
	for _, key := range slices.Sorted(maps.Keys(history)) {
		board := history[key]
		field := fmt.Sprintf("history[%q]", key)
		if _, ok := ParsePortKey(key); !ok {
			return errors.ErrInvalidPortKey.WithField(field)
		}
		if board.Name == "" && board.FQBN == "" {
			return errors.ErrMissingBoardName.WithField(field)
		}
		if err := validateFQBN(board.FQBN, field+".fqbn"); err != nil {
			return err
		}
	}
	return nil
}

func validatePortIdentifier(id PortIdentifier, field string) error {
	if id.Protocol == "" {
		return errors.ErrMissingProtocol.WithField(field + ".protocol")
	}
	if id.Address == "" {
		return errors.ErrMissingAddress.WithField(field + ".address")
	}
	return nil
}

func validateFQBN(raw, field string) error {
	if raw == "" {
		return nil
	}
	if _, ok := ParseFQBN(raw); !ok {
		return errors.ErrInvalidFQBN.WithField(field).WithMessagef("Invalid FQBN: %s", raw)
	}
	return nil
}
