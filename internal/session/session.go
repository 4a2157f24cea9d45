package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-taskflow/internal/adapter"
	"github.com/MKhiriev/go-taskflow/internal/app"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/models"
)

// noteFetchLimit bounds the concurrent GET /api/notes/{id} calls of RefreshNotes.
const noteFetchLimit = 4

// Session is the client session: auth state plus the server lists.
// All methods are safe for concurrent use; requests themselves are not
// serialized.
type Session struct {
	adapter adapter.ServerAdapter
	cookies CookieStore
	logger  *logger.Logger

	mu     sync.RWMutex
	screen Screen
	form   Form
	user   string
	tasks  []models.Task
	notes  []models.Note
}

// NewSession returns a signed-out session. cookies may be nil, in which case
// the session cookie lives only as long as the process.
func NewSession(serverAdapter adapter.ServerAdapter, cookies CookieStore, logger *logger.Logger) *Session {
	return &Session{
		adapter: serverAdapter,
		cookies: cookies,
		logger:  logger,
		screen:  ScreenAuth,
		form:    FormLogin,
	}
}

// ── AuthGate ────────────────────────────────────────────────────────────────

// CheckAuth restores a saved cookie and probes GET /api/todos with it. Any
// 2xx answer means the session is usable; the probe result becomes the task
// list and notes are loaded. Everything else leads to ScreenAuth.
func (s *Session) CheckAuth(ctx context.Context) Screen {
	s.restoreCookie()

	tasks, err := s.adapter.ListTodos(ctx)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session probe failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			s.Logout()
		}
		s.mu.Lock()
		s.screen = ScreenAuth
		s.mu.Unlock()
		return ScreenAuth
	}

	s.mu.Lock()
	s.tasks = tasks
	s.screen = ScreenMain
	s.mu.Unlock()

	if err = s.RefreshNotes(ctx); err != nil {
		s.logger.Err(err).Str("func", "*Session.CheckAuth").Msg("error loading notes")
	}

	return s.Screen()
}

func (s *Session) restoreCookie() {
	if s.cookies == nil {
		return
	}

	cookie, err := s.cookies.Load()
	if err != nil {
		s.logger.Err(err).Str("func", "*Session.restoreCookie").Msg("error loading session file")
		return
	}
	if cookie != nil {
		s.adapter.RestoreSession(cookie)
	}
}

// Login checks presence of both fields, posts them and, on success, switches
// to ScreenMain and loads both lists. List load failures are logged; the user
// is signed in regardless.
func (s *Session) Login(ctx context.Context, login, password string) error {
	if strings.TrimSpace(login) == "" || password == "" {
		return ErrEmptyCredentials
	}

	if err := s.adapter.Login(ctx, models.Credentials{Login: login, Password: password}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.saveCookie()

	s.mu.Lock()
	s.user = login
	s.screen = ScreenMain
	s.mu.Unlock()

	if err := errors.Join(s.RefreshTasks(ctx), s.RefreshNotes(ctx)); err != nil {
		s.logger.Err(err).Str("func", "*Session.Login").Msg("error loading lists after login")
	}

	return nil
}

func (s *Session) saveCookie() {
	if s.cookies == nil {
		return
	}
	if err := s.cookies.Save(s.adapter.SessionCookie()); err != nil {
		s.logger.Err(err).Str("func", "*Session.saveCookie").Msg("error saving session file")
	}
}

// Register checks presence of both fields and posts them. On success the
// login form is shown; the user still has to sign in.
func (s *Session) Register(ctx context.Context, login, password string) error {
	if strings.TrimSpace(login) == "" || password == "" {
		return ErrEmptyCredentials
	}

	if err := s.adapter.Register(ctx, models.Credentials{Login: login, Password: password}); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	s.ShowLoginForm()
	return nil
}

func (s *Session) ShowLoginForm() {
	s.mu.Lock()
	s.form = FormLogin
	s.mu.Unlock()
}

func (s *Session) ShowRegisterForm() {
	s.mu.Lock()
	s.form = FormRegister
	s.mu.Unlock()
}

// Logout forgets the session locally: the cookie is expired in the jar, the
// session file is removed and both lists are dropped. The backend is never
// contacted.
func (s *Session) Logout() {
	s.adapter.ClearSession()
	if s.cookies != nil {
		if err := s.cookies.Clear(); err != nil {
			s.logger.Err(err).Str("func", "*Session.Logout").Msg("error removing session file")
		}
	}

	s.mu.Lock()
	s.user = ""
	s.tasks = nil
	s.notes = nil
	s.screen = ScreenAuth
	s.form = FormLogin
	s.mu.Unlock()
}

// DeleteAccount asks for confirmation, deletes the account and logs out.
func (s *Session) DeleteAccount(ctx context.Context, c Confirmer) error {
	if !c.Confirm(app.MsgConfirmDeleteAccount) {
		return ErrCancelled
	}

	if err := s.adapter.DeleteAccount(ctx); err != nil {
		return s.expireOn(fmt.Errorf("delete account: %w", err))
	}

	s.Logout()
	return nil
}

// ── ListSynchronizer ────────────────────────────────────────────────────────

func (s *Session) AddTask(ctx context.Context, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	return s.syncTasks(ctx, "create task", func() error {
		return s.adapter.CreateTodo(ctx, title)
	})
}

// ToggleTask flips the completion state of task on the server.
func (s *Session) ToggleTask(ctx context.Context, task models.Task) error {
	return s.syncTasks(ctx, "toggle task", func() error {
		return s.adapter.CompleteTodo(ctx, task.Ref)
	})
}

func (s *Session) DeleteTask(ctx context.Context, task models.Task, c Confirmer) error {
	if !c.Confirm(app.MsgConfirmDeleteTask) {
		return ErrCancelled
	}

	return s.syncTasks(ctx, "delete task", func() error {
		return s.adapter.DeleteTodo(ctx, task.Ref)
	})
}

func (s *Session) AddNote(ctx context.Context, title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	return s.syncNotes(ctx, "create note", func() error {
		return s.adapter.CreateNote(ctx, models.NoteRequest{Title: title, Content: content})
	})
}

func (s *Session) UpdateNote(ctx context.Context, id int64, title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}

	return s.syncNotes(ctx, "update note", func() error {
		return s.adapter.UpdateNote(ctx, id, models.NoteRequest{Title: title, Content: content})
	})
}

func (s *Session) DeleteNote(ctx context.Context, note models.Note, c Confirmer) error {
	if !c.Confirm(app.MsgConfirmDeleteNote) {
		return ErrCancelled
	}

	return s.syncNotes(ctx, "delete note", func() error {
		return s.adapter.DeleteNote(ctx, note.ID)
	})
}

// OpenNote fetches the full note for the view screen. The note list is not
// touched.
func (s *Session) OpenNote(ctx context.Context, id int64) (models.Note, error) {
	note, err := s.adapter.GetNote(ctx, id)
	if err != nil {
		return models.Note{}, s.expireOn(fmt.Errorf("open note: %w", err))
	}
	return note, nil
}

// syncTasks runs mutation and then refetches the task list whatever the
// mutation returned.
func (s *Session) syncTasks(ctx context.Context, op string, mutation func() error) error {
	err := mutation()
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
	}
	return errors.Join(err, s.RefreshTasks(ctx))
}

func (s *Session) syncNotes(ctx context.Context, op string, mutation func() error) error {
	err := mutation()
	if err != nil {
		err = fmt.Errorf("%s: %w", op, err)
	}
	return errors.Join(err, s.RefreshNotes(ctx))
}

// RefreshTasks replaces the task list with the server's. On failure the
// current list is kept.
func (s *Session) RefreshTasks(ctx context.Context) error {
	tasks, err := s.adapter.ListTodos(ctx)
	if err != nil {
		return s.expireOn(fmt.Errorf("load tasks: %w", err))
	}

	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// RefreshNotes lists note previews and fetches every full note, at most
// noteFetchLimit at a time. A note whose fetch fails is shown from its
// preview. The order of the preview list is kept.
func (s *Session) RefreshNotes(ctx context.Context) error {
	previews, err := s.adapter.ListNotes(ctx)
	if err != nil {
		return s.expireOn(fmt.Errorf("load notes: %w", err))
	}

	notes := make([]models.Note, len(previews))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(noteFetchLimit)
	for i, p := range previews {
		g.Go(func() error {
			note, fetchErr := s.adapter.GetNote(gctx, p.ID)
			if fetchErr != nil {
				s.logger.Debug().Err(fetchErr).Int64("note_id", p.ID).Msg("using note preview")
				note = p.Note()
			}
			notes[i] = note
			return nil
		})
	}
	_ = g.Wait()

	s.mu.Lock()
	s.notes = notes
	s.mu.Unlock()
	return nil
}

// expireOn logs the session out when err is a 401 from the backend.
func (s *Session) expireOn(err error) error {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}

	s.Logout()
	return fmt.Errorf("%w: %w", ErrSessionExpired, err)
}

// ── snapshots ───────────────────────────────────────────────────────────────

func (s *Session) Screen() Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.screen
}

func (s *Session) Form() Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form
}

// User returns the login of the signed-in user, or "" when the session was
// restored from a saved cookie.
func (s *Session) User() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Tasks returns a copy of the task list.
func (s *Session) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

func (s *Session) PendingTasks() []models.Task {
	return filterTasks(s.Tasks(), false)
}

func (s *Session) CompletedTasks() []models.Task {
	return filterTasks(s.Tasks(), true)
}

func filterTasks(tasks []models.Task, completed bool) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed == completed {
			out = append(out, t)
		}
	}
	return out
}

// Notes returns a copy of the note list.
func (s *Session) Notes() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Note(nil), s.notes...)
}
