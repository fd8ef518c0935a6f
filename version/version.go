package version

import (
	"fmt"
	"io"
)

// Set by ldflags.
var (
	Version  = "unknown"
	Revision = "unknown"
)

func Write(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", Version, Revision)
}
