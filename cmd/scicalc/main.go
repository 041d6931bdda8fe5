package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/scicalc"
	"github.com/zephyrtronium/scicalc/internal/config"
	"github.com/zephyrtronium/scicalc/internal/history"
	"github.com/zephyrtronium/scicalc/internal/session"
)

// errFailed reports that an evaluation failed after its error was printed.
var errFailed = errors.New("evaluation failed")

// app is the state shared by the commands of one invocation.
type app struct {
	configFile string
	mode       string
	decimals   int
	histPath   string
	noHistory  bool
	logLevel   string
	noColor    bool

	cfg *config.Config
	log *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, scicalc.FormatError(err))
		}
		os.Exit(1)
	}
}

// newRootCmd creates the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "scicalc [expression]",
		Short: "Scientific calculator",
		Long: `Scicalc evaluates arithmetic and scientific expressions such as

  2+3*4         2^3^2         root(3, 27)
  sin(30)       asin(0.5)     fact(10)/fact(8)
  ln(e^2)       log(1000)     2*pi

Trigonometric functions use degrees unless --mode rad is given.
Put expressions starting with a minus sign after --.
With no subcommand and no arguments, scicalc starts an interactive session.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runREPL(cmd, args)
			}
			return a.runEval(cmd, args, "")
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", config.Path(), "Configuration file (JSON)")
	pf.StringVarP(&a.mode, "mode", "m", "deg", "Angle mode: deg or rad (overrides config)")
	pf.IntVarP(&a.decimals, "decimals", "d", 6, "Fractional digits of printed results (overrides config)")
	pf.StringVar(&a.histPath, "history-file", "", "History database (overrides config)")
	pf.BoolVar(&a.noHistory, "no-history", false, "Do not record evaluations")
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn, error (overrides config)")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(a.evalCmd(), a.replCmd(), a.tokensCmd(), a.postfixCmd(), a.historyCmd(), a.configCmd())
	return root
}

// setup loads the configuration file and applies flags over it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.AngleMode = a.mode
	}
	if flags.Changed("decimals") {
		cfg.Decimals = a.decimals
	}
	if flags.Changed("history-file") {
		cfg.HistoryPath = a.histPath
	}
	if a.noHistory {
		cfg.HistoryPath = ""
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !cfg.Color {
		color.NoColor = true
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	a.log.Debug("configuration loaded", slog.String("file", a.configFile), slog.String("mode", cfg.AngleMode), slog.String("history", cfg.HistoryPath))
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// openSession creates a session recording to the configured history. The
// returned function closes the history.
func (a *app) openSession() (*session.Session, func(), error) {
	if a.cfg.HistoryPath == "" {
		return session.New(a.cfg.Mode(), nil, a.log), func() {}, nil
	}
	st, err := history.Open(a.cfg.HistoryPath)
	if err != nil {
		return nil, nil, err
	}
	closer := func() {
		if err := st.Close(); err != nil {
			a.log.Warn("closing history", slog.Any("err", err))
		}
	}
	return session.New(a.cfg.Mode(), st, a.log), closer, nil
}

var (
	valueStyle = color.New(color.FgGreen, color.Bold)
	errorStyle = color.New(color.FgRed)
	infoStyle  = color.New(color.FgCyan)
)

// printReply writes a session reply. It reports whether the reply was a
// failure.
func (a *app) printReply(cmd *cobra.Command, r session.Reply) bool {
	out := cmd.OutOrStdout()
	switch r.Kind {
	case session.Value:
		fmt.Fprintln(out, valueStyle.Sprint(scicalc.FormatResultDigits(r.Value, a.cfg.Decimals)))
	case session.Failure:
		fmt.Fprintln(out, errorStyle.Sprint(scicalc.FormatError(r.Err)))
		return true
	case session.Info:
		fmt.Fprintln(out, infoStyle.Sprint(r.Text))
	}
	return false
}
