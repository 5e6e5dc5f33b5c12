package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/clipboard/internal/config"
	"github.com/jask/clipboard/internal/logic"
	"github.com/jask/clipboard/internal/prefs"
	"github.com/jask/clipboard/internal/storage"
	"github.com/jask/clipboard/internal/tui"
)

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:          "clipboard",
		Short:        "Manage course rosters and attendance from the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), configPath, io.Discard)
			if err != nil {
				return err
			}
			defer s.Close()

			history, err := prefs.LoadHistory(s.cfg.UI.HistoryPath)
			if err != nil {
				s.log.Warn("command history not loaded", "path", s.cfg.UI.HistoryPath, "err", err)
			}
			app := tui.New(cmd.Context(), s.logic, s.cfg.UI, history)
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				s.log.Error("tui exited", "err", err)
				return err
			}
			if err := prefs.SaveHistory(s.cfg.UI.HistoryPath, app.History()); err != nil {
				s.log.Warn("command history not saved", "path", s.cfg.UI.HistoryPath, "err", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"config file (default "+config.DefaultPath()+")")
	root.AddCommand(newExecCmd(&configPath), newSeedCmd(&configPath), newInitConfigCmd(&configPath))
	return root
}

// session is everything one invocation opens and must close.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	store   storage.Store
	logic   *logic.Logic
	closers []io.Closer
}

// openSession loads config, sets up logging and opens the roster. Logs go to
// the configured file, or to logFallback when none is set.
func openSession(ctx context.Context, configPath string, logFallback io.Writer) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, logCloser, err := setupLogger(cfg.Log, logFallback)
	if err != nil {
		return nil, err
	}
	s := &session{cfg: cfg, log: log, closers: []io.Closer{logCloser}}

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	s.store = store
	if c, ok := store.(io.Closer); ok {
		s.closers = append([]io.Closer{c}, s.closers...)
	}
	s.logic, err = logic.Open(ctx, store, log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *session) Close() error {
	var errs []error
	for _, c := range s.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func newInitConfigCmd(configPath *string) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init-config",
		Short: "Write the effective configuration to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := *configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			cfg, err := config.Load(*configPath)
			if errors.Is(err, fs.ErrNotExist) {
				// named file does not exist yet; start from defaults
				cfg, err = config.Load("")
			}
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
