// Command coreutils is a multi-call binary for every registered utility.
//
//	coreutils cat -n file
package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	coreutils "github.com/lineutils/go-coreutils"

	_ "github.com/lineutils/go-coreutils/cat"
)

var fatal = log.New(os.Stderr, "coreutils: ", 0)

// reported wraps an error the utility already printed.
type reported struct{ err error }

func (r reported) Error() string { return r.err.Error() }

func newRootCommand(ctx coreutils.Context) *cobra.Command {
	root := &cobra.Command{
		Use:           "coreutils COMMAND [ARG]...",
		Short:         "Go implementations of the core utilities",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	for _, name := range coreutils.Names() {
		root.AddCommand(&cobra.Command{
			Use:                name + " [ARG]...",
			Short:              "run " + name,
			DisableFlagParsing: true,
			RunE: func(cmd *cobra.Command, args []string) error {
				c := ctx
				c.Context = cmd.Context()
				if err := coreutils.Run(c, name, args...); err != nil {
					return reported{err}
				}
				return nil
			},
		})
	}
	return root
}

func main() {
	ctx := coreutils.OSContext()

	// Invoked through a link named after a utility, e.g. "cat".
	if name := filepath.Base(os.Args[0]); name != "coreutils" {
		for _, n := range coreutils.Names() {
			if n == name {
				if err := coreutils.Run(ctx, name, os.Args[1:]...); err != nil {
					os.Exit(1)
				}
				return
			}
		}
	}

	root := newRootCommand(ctx)
	if err := root.Execute(); err != nil {
		if !errors.As(err, new(reported)) {
			fatal.Println(err)
		}
		os.Exit(1)
	}
}
