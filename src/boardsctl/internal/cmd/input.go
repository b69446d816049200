package cmd

import (
	"context"

	"github.com/bitswalk/boardlist/src/boards"
	"github.com/bitswalk/boardlist/src/boards/snapshot"
	"github.com/bitswalk/boardlist/src/common/cli"
	"github.com/bitswalk/boardlist/src/common/errors"
	"github.com/spf13/cobra"
)

// inputFlags are the flags every list command reads its input from.
type inputFlags struct {
	snapshot  string
	history   string
	selection string
	boardFQBN string
	boardName string
	port      string
	protocol  string
	address   string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.snapshot, "snapshot", "", "Discovery snapshot file (YAML or JSON)")
	flags.StringVar(&f.history, "history", "", "Boards list history file")
	flags.StringVar(&f.selection, "selection", "", "Boards config file with the current selection")
	flags.StringVar(&f.boardFQBN, "board-fqbn", "", "FQBN of the selected board")
	flags.StringVar(&f.boardName, "board-name", "", "Name of the selected board")
	flags.StringVar(&f.port, "port", "", "Port key of the selected port, e.g. port+serial:///dev/ttyACM0")
	flags.StringVar(&f.protocol, "protocol", "", "Protocol of the selected port")
	flags.StringVar(&f.address, "address", "", "Address of the selected port")

	_ = cmd.MarkFlagRequired("snapshot")
	_ = cmd.MarkFlagFilename("snapshot", "yaml", "yml", "json")
	_ = cmd.MarkFlagFilename("history", "yaml", "yml", "json")
	_ = cmd.MarkFlagFilename("selection", "yaml", "yml", "json")
	cmd.MarkFlagsMutuallyExclusive("port", "protocol")
	cmd.MarkFlagsMutuallyExclusive("port", "address")
}

// load reads the files and applies the selection flags on top of the
// selection file.
func (f *inputFlags) load() (snapshot.Input, error) {
	var in snapshot.Input

	detected, err := snapshot.LoadSnapshot(f.snapshot)
	if err != nil {
		return in, err
	}
	in.DetectedPorts = detected

	if f.history != "" {
		if in.History, err = snapshot.LoadHistory(f.history); err != nil {
			return in, err
		}
	}

	if f.selection != "" {
		if in.BoardsConfig, err = snapshot.LoadBoardsConfig(f.selection); err != nil {
			return in, err
		}
	}
	if err := f.applySelection(&in.BoardsConfig); err != nil {
		return in, err
	}

	log.Debug("Loaded input", "input", in.String())
	return in, nil
}

func (f *inputFlags) applySelection(cfg *boards.BoardsConfig) error {
	if f.boardFQBN != "" || f.boardName != "" {
		cfg.SelectedBoard = &boards.BoardIdentifier{Name: f.boardName, FQBN: f.boardFQBN}
	}

	switch {
	case f.port != "":
		id, ok := boards.ParsePortKey(f.port)
		if !ok {
			return errors.ErrInvalidPortKey.WithField("--port").WithMessagef("Invalid port key: %q", f.port)
		}
		cfg.SelectedPort = &id
	case f.protocol != "" || f.address != "":
		cfg.SelectedPort = &boards.PortIdentifier{Protocol: f.protocol, Address: f.address}
	}
	return nil
}

// buildList computes the list locally with the configured options.
func buildList(in snapshot.Input) (*boards.List, error) {
	return in.Build(boards.NewBuilder(cli.BoardsOptions()))
}

// fetchView returns the list view of in, from boardsd when a server is
// configured.
func fetchView(ctx context.Context, in snapshot.Input) (*boards.ListView, error) {
	if isRemote() {
		return getClient().BoardsList(ctx, in)
	}
	list, err := buildList(in)
	if err != nil {
		return nil, err
	}
	view := list.View()
	return &view, nil
}
