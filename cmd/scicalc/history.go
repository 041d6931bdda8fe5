package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc/internal/history"
)

func (a *app) historyCmd() *cobra.Command {
	var (
		limit int
		clearAll bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List or clear recorded evaluations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.HistoryPath == "" {
				return errors.New("history is disabled")
			}
			st, err := history.Open(a.cfg.HistoryPath)
			if err != nil {
				return err
			}
			defer st.Close()
			if clearAll {
				if err := st.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), infoStyle.Sprint("history cleared"))
				return nil
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.HistoryLimit
			}
			entries, err := st.List(limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintln(cmd.OutOrStdout(), e.Format(a.cfg.Decimals))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to list (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Remove all entries")
	return cmd
}
