package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc/internal/session"
)

func (a *app) replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Long: `Read expressions line by line and print their results.

` + session.HelpText,
		Args: cobra.NoArgs,
		RunE: a.runREPL,
	}
}

func (a *app) runREPL(cmd *cobra.Command, args []string) error {
	s, closer, err := a.openSession()
	if err != nil {
		return err
	}
	defer closer()

	in := cmd.InOrStdin()
	prompt := in == os.Stdin && isatty.IsTerminal(os.Stdin.Fd())
	out := cmd.OutOrStdout()
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprintf(out, "[%s] > ", s.Mode())
		}
		if !sc.Scan() {
			break
		}
		r := s.Submit(sc.Text())
		if r.Kind == session.Quit {
			return nil
		}
		a.printReply(cmd, r)
	}
	return sc.Err()
}
