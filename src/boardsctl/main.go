// boardsctl is the command-line client of the boards list. It computes lists
// from discovery snapshots locally or through a boardsd server.
package main

import (
	"github.com/bitswalk/boardlist/src/boardsctl/internal/cmd"
)

func main() {
	cmd.Execute()
}
