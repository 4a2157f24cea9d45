package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/service"
	"github.com/MKhiriev/go-taskflow/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn      func(ctx context.Context, creds models.Credentials) (models.User, error)
	loginFn         func(ctx context.Context, creds models.Credentials) (models.Session, error)
	authenticateFn  func(ctx context.Context, sessionID string) (models.Session, error)
	deleteAccountFn func(ctx context.Context, userID int64) error
}

func (m *mockAuthService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.registerFn(ctx, creds)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Authenticate(ctx context.Context, sessionID string) (models.Session, error) {
	if m.authenticateFn == nil {
		return models.Session{}, service.ErrSessionInvalid
	}
	return m.authenticateFn(ctx, sessionID)
}

func (m *mockAuthService) DeleteAccount(ctx context.Context, userID int64) error {
	return m.deleteAccountFn(ctx, userID)
}

func (m *mockAuthService) CleanupSessions(context.Context) (int64, error) {
	return 0, nil
}

type mockTodoService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Task, error)
	addFn    func(ctx context.Context, task models.Task) (models.Task, error)
	toggleFn func(ctx context.Context, userID, todoID int64) (models.Task, error)
	deleteFn func(ctx context.Context, userID, todoID int64) error
}

func (m *mockTodoService) List(ctx context.Context, userID int64) ([]models.Task, error) {
	return m.listFn(ctx, userID)
}

func (m *mockTodoService) Add(ctx context.Context, task models.Task) (models.Task, error) {
	return m.addFn(ctx, task)
}

func (m *mockTodoService) Toggle(ctx context.Context, userID, todoID int64) (models.Task, error) {
	return m.toggleFn(ctx, userID, todoID)
}

func (m *mockTodoService) Delete(ctx context.Context, userID, todoID int64) error {
	return m.deleteFn(ctx, userID, todoID)
}

type mockNoteService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.NotePreview, error)
	getFn    func(ctx context.Context, userID, noteID int64) (models.Note, error)
	addFn    func(ctx context.Context, note models.Note) (models.Note, error)
	updateFn func(ctx context.Context, note models.Note) error
	deleteFn func(ctx context.Context, userID, noteID int64) error
}

func (m *mockNoteService) List(ctx context.Context, userID int64) ([]models.NotePreview, error) {
	return m.listFn(ctx, userID)
}

func (m *mockNoteService) Get(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return m.getFn(ctx, userID, noteID)
}

func (m *mockNoteService) Add(ctx context.Context, note models.Note) (models.Note, error) {
	return m.addFn(ctx, note)
}

func (m *mockNoteService) Update(ctx context.Context, note models.Note) error {
	return m.updateFn(ctx, note)
}

func (m *mockNoteService) Delete(ctx context.Context, userID, noteID int64) error {
	return m.deleteFn(ctx, userID, noteID)
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testSessionID = "valid-session"
	testUserID    = int64(7)
)

// newTestServices returns services whose AuthService accepts testSessionID.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			authenticateFn: func(_ context.Context, id string) (models.Session, error) {
				if id != testSessionID {
					return models.Session{}, service.ErrSessionInvalid
				}
				return models.Session{ID: id, UserID: testUserID, Login: "alice"}, nil
			},
		},
		TodoService:    &mockTodoService{},
		NoteService:    &mockNoteService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}
}

func newTestRouter(svcs *service.Services) *chi.Mux {
	return NewHandler(svcs, logger.Nop()).Init()
}

// serve sends req through router, attaching the valid session cookie when
// signedIn is set.
func serve(t *testing.T, router http.Handler, req *http.Request, signedIn bool) *httptest.ResponseRecorder {
	t.Helper()
	if signedIn {
		req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: testSessionID})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
