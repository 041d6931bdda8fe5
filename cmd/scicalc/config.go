package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func (a *app) configCmd() *cobra.Command {
	var initFile, force bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the configuration",
		Long: `Print the configuration in effect, after flags are applied, as JSON.
With --init, write it to the configuration file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !initFile {
				return a.cfg.Encode(cmd.OutOrStdout())
			}
			if _, err := os.Stat(a.configFile); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", a.configFile)
			}
			if err := a.cfg.Save(a.configFile); err != nil {
				return err
			}
			a.log.Info("configuration written", slog.String("file", a.configFile))
			fmt.Fprintln(cmd.OutOrStdout(), infoStyle.Sprint("wrote "+a.configFile))
			return nil
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "Write the configuration file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file with --init")
	return cmd
}
