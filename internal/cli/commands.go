package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/cards/internal/board"
	"github.com/idilsaglam/cards/internal/config"
	"github.com/idilsaglam/cards/internal/logger"
	"github.com/idilsaglam/cards/internal/orderedlist"
	"github.com/idilsaglam/cards/internal/store/jsonstore"
	"github.com/idilsaglam/cards/internal/tui"
	"github.com/idilsaglam/cards/internal/ui"
)

func (a *app) newListCommand() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List active cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			ui.Panel(listLines(b, all))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "also list removed cards")
	return cmd
}

func (a *app) newAddCommand() *cobra.Command {
	var badge string
	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a card at the end of the active list",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usagef("usage: cards add <title...>")
			}
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			c, p, err := b.Add(strings.Join(args, " "), badge)
			if errors.Is(err, board.ErrEmptyTitle) {
				return usagef("add: empty title")
			}
			if err != nil {
				return err
			}
			logger.Debug("card added", "id", c.ID, "patch", p)
			if err := a.saveBoard(b); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("added %q at %d", c.Title, p.Index+1))
			return nil
		},
	}
	cmd.Flags().StringVar(&badge, "badge", "", "badge shown next to the title")
	return cmd
}

func (a *app) newRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <index>",
		Short: "Move an active card to the removed pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := oneIndex("rm", args)
			if err != nil {
				return err
			}
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			c, p, err := b.Remove(idx)
			if err != nil {
				return indexError(err, b.Active.Len())
			}
			logger.Debug("card removed", "id", c.ID, "from", p.Source, "to", p.Destination)
			if err := a.saveBoard(b); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("removed %q", c.Title))
			return nil
		},
	}
}

func (a *app) newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <index>",
		Short: "Move a removed card back to the end of the active list",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := oneIndex("restore", args)
			if err != nil {
				return err
			}
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			c, p, err := b.Restore(idx)
			if err != nil {
				return indexError(err, b.Removed.Len())
			}
			logger.Debug("card restored", "id", c.ID, "from", p.Source, "to", p.Destination)
			if err := a.saveBoard(b); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("restored %q at %d", c.Title, p.Destination.Index+1))
			return nil
		},
	}
}

func (a *app) newMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move a card to another position (same as a drag and drop)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return usagef("usage: cards mv <from> <to>")
			}
			from, err := parseIndex("mv", args[0])
			if err != nil {
				return err
			}
			to, err := parseIndex("mv", args[1])
			if err != nil {
				return err
			}
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			p, err := b.Move(from, to)
			if err != nil {
				return indexError(err, b.Active.Len())
			}
			logger.Debug("card moved", "patch", p)
			if err := a.saveBoard(b); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("moved %d to %d", p.Remove+1, p.Insert+1))
			return nil
		},
	}
}

func (a *app) newStepCommand(use, short, dir string) *cobra.Command {
	d := orderedlist.Next
	if dir == "previous" {
		d = orderedlist.Previous
	}
	return &cobra.Command{
		Use:   use + " <index>",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := oneIndex(use, args)
			if err != nil {
				return err
			}
			b, err := a.loadBoard()
			if err != nil {
				return err
			}
			p, ok, err := b.MoveRelative(idx, d)
			if err != nil {
				return indexError(err, b.Active.Len())
			}
			if !ok {
				ui.Note(fmt.Sprintf("card %d has no %s position", idx+1, d))
				return nil
			}
			logger.Debug("card stepped", "direction", d, "patch", p)
			if err := a.saveBoard(b); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("moved %d to %d", p.Remove+1, p.Insert+1))
			return nil
		},
	}
}

func (a *app) newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}
}

func (a *app) runTUI() error {
	if strings.EqualFold(a.cfg.LogLevel, "debug") {
		f, err := os.OpenFile(a.logPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger.Init(&logger.Config{Level: "debug", Output: f, TimeFormat: "15:04:05"})
	} else {
		logger.Init(&logger.Config{Level: "error", Output: io.Discard})
	}

	b, err := a.loadBoard()
	if err != nil {
		return err
	}
	changed, err := tui.Run(b)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	if err := a.saveBoard(b); err != nil {
		return err
	}
	ui.OK("saved")
	return nil
}

func (a *app) newInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and the seed cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fileExists(a.opts.ConfigPath) {
				if err := config.Save(a.opts.ConfigPath, a.cfg); err != nil {
					return err
				}
				ui.OK("wrote " + a.opts.ConfigPath)
			}
			if jsonstore.Exists(a.dataPath) && !force {
				return usagef("init: %s already exists (use --force to overwrite)", a.dataPath)
			}
			b := board.New(board.Snapshot{Active: a.cfg.SeedCards()}, a.cfg.AllowDrag)
			if err := a.saveBoard(b); err != nil {
				return err
			}
			ui.OK(fmt.Sprintf("seeded %d cards into %s", b.Active.Len(), a.dataPath))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing data file")
	return cmd
}

// -------------- argument helpers ----------------

func oneIndex(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, usagef("usage: cards %s <index>", name)
	}
	return parseIndex(name, args[0])
}

// parseIndex turns a 1-based user index into a 0-based one.
func parseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, usagef("%s: not a number: %s", name, s)
	}
	return n - 1, nil
}

func indexError(err error, have int) error {
	switch {
	case errors.Is(err, orderedlist.ErrIndexOutOfRange):
		return usageError{
			msg:  fmt.Sprintf("index out of range: have %d", have),
			hint: "run `cards ls -a` to see valid indexes",
		}
	case errors.Is(err, board.ErrLocked):
		return usagef("%v: not enough cards for this action", err)
	}
	return err
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
