// Command cat concatenates files to standard output.
package main

import (
	"os"

	coreutils "github.com/lineutils/go-coreutils"

	_ "github.com/lineutils/go-coreutils/cat"
)

// catMain runs cat and returns the exit status.
func catMain(ctx coreutils.Context, args []string) int {
	if err := coreutils.Run(ctx, "cat", args...); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(catMain(coreutils.OSContext(), os.Args[1:]))
}
