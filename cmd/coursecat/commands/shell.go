package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

// shellCmd keeps one App alive and runs each input line as a coursecat
// command, so created courses, enrollments and submissions persist for the
// whole session.
func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively against one session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()

			fmt.Fprintln(out, `coursecat shell. Type "help" for commands, "exit" to quit.`)
			for {
				fmt.Fprint(out, "> ")
				if !in.Scan() {
					fmt.Fprintln(out)
					return in.Err()
				}
				line := strings.TrimSpace(in.Text())
				if line == "" {
					continue
				}
				argv, err := shlex.Split(line)
				if err != nil {
					fmt.Fprintf(errOut, "parse: %v\n", err)
					continue
				}
				switch argv[0] {
				case "exit", "quit":
					return nil
				case "shell":
					fmt.Fprintln(errOut, "already in a shell")
					continue
				}
				if err := runLine(cmd, argv, out, errOut); err != nil {
					fmt.Fprintf(errOut, "Error: %v\n", err)
				}
			}
		},
	}
}

// runLine dispatches argv through a fresh command tree so flag values do
// not leak between lines.
func runLine(parent *cobra.Command, argv []string, out, errOut io.Writer) error {
	root := newRootCmd()
	root.SilenceErrors = true
	root.SetArgs(argv)
	root.SetIn(strings.NewReader(""))
	root.SetOut(out)
	root.SetErr(errOut)
	return root.ExecuteContext(parent.Context())
}
