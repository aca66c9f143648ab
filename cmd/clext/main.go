// Command clext inspects the OpenCL platforms of an ICD loader and the
// extension dispatch tables built for them.
package main

import (
	"os"
)

// Version is the released version string of clext
var Version = "0.1-dev"

func main() {
	if err := newRootCmd(openNative).Execute(); err != nil {
		os.Exit(1)
	}
}
