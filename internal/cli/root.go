package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/cards/internal/board"
	"github.com/idilsaglam/cards/internal/config"
	"github.com/idilsaglam/cards/internal/logger"
	"github.com/idilsaglam/cards/internal/store/jsonstore"
	"github.com/idilsaglam/cards/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	ConfigPath string
	DataPath   string
	Theme      string
	LogLevel   string
	NoColor    bool
}

// usageError marks a failure caused by bad arguments (exit code 2).
type usageError struct {
	msg  string
	hint string
}

func (e usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error { return usageError{msg: fmt.Sprintf(format, a...)} }

type app struct {
	opts     Options
	cfg      *config.Config
	dataPath string
}

// Run executes the command line and returns an exit code (0 ok, 1 error,
// 2 usage).
func Run(args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) {
		if ue.hint != "" {
			ui.Hint(ue.hint)
		}
		return 2
	}
	if errors.Is(err, errFlagParse) || strings.HasPrefix(err.Error(), "unknown command") {
		return 2
	}
	return 1
}

var errFlagParse = errors.New("invalid flags")

// NewRootCommand builds the cards command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "cards",
		Short: "Reorder, remove and restore cards from the terminal",
		Long: `cards keeps an ordered list of active cards and a pool of removed ones.

Reorder with drag (pick up and drop) or one step at a time, remove cards
into the removed pool and restore them later. Run without a subcommand to
open the interactive view.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errFlagParse, err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.opts.ConfigPath, "config", config.DefaultFileName, "path to the YAML config file")
	pf.StringVar(&a.opts.DataPath, "data", "", "path to the JSON data file (overrides config)")
	pf.StringVar(&a.opts.Theme, "theme", "", "output theme: classic, neon, mono")
	pf.StringVar(&a.opts.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.opts.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.newListCommand(),
		a.newAddCommand(),
		a.newRemoveCommand(),
		a.newRestoreCommand(),
		a.newMoveCommand(),
		a.newStepCommand("up", "Move a card one position up", "previous"),
		a.newStepCommand("down", "Move a card one position down", "next"),
		a.newTUICommand(),
		a.newInitCommand(),
	)
	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		return err
	}
	if a.opts.Theme != "" {
		cfg.Theme = a.opts.Theme
	}
	if a.opts.LogLevel != "" {
		cfg.LogLevel = a.opts.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return usageError{msg: err.Error()}
	}
	a.cfg = cfg

	a.dataPath = a.opts.DataPath
	if a.dataPath == "" {
		a.dataPath = cfg.DataPath(a.opts.ConfigPath)
	}

	ui.SetTheme(cfg.Theme)
	if a.opts.NoColor {
		ui.SetColorForcing(false, true)
	}
	logger.Init(&logger.Config{Level: cfg.LogLevel, Output: os.Stderr, TimeFormat: "15:04:05"})
	logger.Debug("config loaded", "config", a.opts.ConfigPath, "data", a.dataPath, "drag", cfg.AllowDrag)
	return nil
}

func (a *app) loadBoard() (*board.Board, error) {
	s, err := jsonstore.Load(a.dataPath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return board.New(s, a.cfg.AllowDrag), nil
}

func (a *app) saveBoard(b *board.Board) error {
	if err := jsonstore.Save(a.dataPath, b.Snapshot()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	logger.Debug("board saved", "path", a.dataPath, "active", b.Active.Len(), "removed", b.Removed.Len())
	return nil
}

// logPath is where the interactive view logs, since it owns the terminal.
func (a *app) logPath() string {
	return filepath.Join(filepath.Dir(a.dataPath), "cards.log")
}
