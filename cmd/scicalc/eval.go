package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc"
)

func (a *app) evalCmd() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate an expression",
		Long: `Evaluate the expression formed by joining the arguments with spaces.
With --in, evaluate each non-blank line of a file instead ("-" for stdin).
Exits with status 1 if any evaluation fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(cmd, args, in)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Evaluate each line of a file (- for stdin)")
	return cmd
}

func (a *app) runEval(cmd *cobra.Command, args []string, in string) error {
	var exprs []string
	switch {
	case in != "":
		lines, err := readLines(cmd, in)
		if err != nil {
			return err
		}
		exprs = lines
	case len(args) > 0:
		exprs = []string{strings.Join(args, " ")}
	default:
		return errors.New("no expression given")
	}

	s, closer, err := a.openSession()
	if err != nil {
		return err
	}
	defer closer()
	failed := false
	for _, e := range exprs {
		if a.printReply(cmd, s.Eval(e)) {
			failed = true
		}
	}
	if failed {
		return errFailed
	}
	return nil
}

func readLines(cmd *cobra.Command, name string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func (a *app) tokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens expression...",
		Short: "Print the tokens of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := scicalc.Tokenize(strings.Join(args, " "))
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tKIND\tTEXT")
			for _, tok := range toks {
				fmt.Fprintf(w, "%d\t%v\t%s\n", tok.Pos, tok.Kind, tok.Text)
			}
			return w.Flush()
		},
	}
}

func (a *app) postfixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "postfix expression...",
		Short: "Print an expression in postfix order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := scicalc.Tokenize(strings.Join(args, " "))
			if err != nil {
				return err
			}
			post, err := scicalc.ToPostfix(toks)
			if err != nil {
				return err
			}
			s := make([]string, len(post))
			for i, tok := range post {
				s[i] = tok.Text
				if tok.Kind == scicalc.Operator {
					s[i] = tok.Op.String()
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(s, " "))
			return nil
		},
	}
}
