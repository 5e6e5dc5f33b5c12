package logic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jask/clipboard/internal/model"
	"github.com/jask/clipboard/internal/storage"
)

// Logic owns the roster and the selection for one session. Execute is the
// only path that mutates either; it is not safe for concurrent use.
type Logic struct {
	store     storage.Store
	roster    *model.Roster
	selection *Selection
	log       *slog.Logger
}

func New(store storage.Store, roster *model.Roster, log *slog.Logger) *Logic {
	if log == nil {
		log = slog.Default()
	}
	if roster == nil {
		roster = model.NewRoster()
	}
	return &Logic{store: store, roster: roster, selection: NewSelection(), log: log}
}

// Open loads the roster from store. Malformed data is logged and replaced by
// an empty roster; any other load failure is returned.
func Open(ctx context.Context, store storage.Store, log *slog.Logger) (*Logic, error) {
	if log == nil {
		log = slog.Default()
	}
	r, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrDataLoad) {
			return nil, err
		}
		log.Warn("roster data could not be loaded, starting with an empty roster",
			"path", store.Path(), "err", err)
		r = model.NewRoster()
	}
	log.Info("roster loaded", "path", store.Path(), "courses", r.Size())
	return New(store, r, log), nil
}

func (l *Logic) Roster() *model.Roster { return l.roster }

// Selection is exposed for reading; mutate it only through Execute and
// CloseView.
func (l *Logic) Selection() *Selection { return l.selection }

func (l *Logic) StorePath() string { return l.store.Path() }

// CurrentList is the list the current page displays.
func (l *Logic) CurrentList() (Listing, error) {
	return CurrentList(l.selection, l.roster)
}

// Resolved returns the entities behind the current selection.
func (l *Logic) Resolved() (Resolved, error) {
	return l.selection.Resolve(l.roster)
}

// CloseView clears the single student or session view of the current page
// and reports whether one was open.
func (l *Logic) CloseView() bool {
	switch l.selection.Page() {
	case StudentPage:
		if l.selection.StudentID() != "" {
			l.selection.EmptySelectedStudent()
			return true
		}
	case SessionPage:
		if l.selection.SessionName() != "" {
			l.selection.EmptySelectedSession()
			return true
		}
	case CoursePage, GroupPage, SessionStudentPage:
	}
	return false
}

// Execute parses and runs one line of input, saving the roster when the
// command changed it.
func (l *Logic) Execute(ctx context.Context, text string) (Result, error) {
	cmd, err := Parse(text)
	if err != nil {
		l.log.Info("invalid command", "input", text, "err", err)
		return Result{}, err
	}
	return l.Run(ctx, cmd)
}

// Run executes an already parsed command.
func (l *Logic) Run(ctx context.Context, cmd Command) (Result, error) {
	from := l.selection.Page()
	res, err := cmd.Execute(l.roster, l.selection)
	if err != nil {
		l.log.Warn("command failed", "kind", string(cmd.Kind), "page", string(from), "err", err)
		return Result{}, err
	}
	l.log.Info("command executed", "kind", string(cmd.Kind), "from", string(from), "to", string(l.selection.Page()))

	if res.WillModifyState {
		if err := l.Save(ctx); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Save persists the roster.
func (l *Logic) Save(ctx context.Context) error {
	if err := l.store.Save(ctx, l.roster); err != nil {
		l.log.Error("save roster", "path", l.store.Path(), "err", err)
		return fmt.Errorf("save roster: %w", err)
	}
	l.log.Debug("roster saved", "path", l.store.Path())
	return nil
}
