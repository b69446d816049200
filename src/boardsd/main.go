// boardsd serves boards lists over HTTP. Clients post a discovery snapshot
// with the current selection and history and get the derived list back.
package main

import (
	"github.com/bitswalk/boardlist/src/boardsd/core"
)

func main() {
	core.Execute()
}
