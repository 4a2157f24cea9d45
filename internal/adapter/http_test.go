// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func setSession(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     models.SessionCookieName,
		Value:    value,
		Path:     models.SessionCookiePath,
		HttpOnly: true,
		MaxAge:   3600,
	})
}

func requireSession(t *testing.T, r *http.Request, value string) {
	t.Helper()
	c, err := r.Cookie(models.SessionCookieName)
	require.NoError(t, err)
	assert.Equal(t, value, c.Value)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_StoresSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var creds models.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, models.Credentials{Login: "alice", Password: "secret"}, creds)

			setSession(w, "sid-1")
			w.WriteHeader(http.StatusOK)
		case "/api/todos":
			requireSession(t, r, "sid-1")
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Login(context.Background(), models.Credentials{Login: "alice", Password: "secret"}))

	cookie := a.SessionCookie()
	require.NotNil(t, cookie)
	assert.Equal(t, "sid-1", cookie.Value)

	_, err := a.ListTodos(context.Background())
	require.NoError(t, err)
}

func TestLogin_Unauthorized_KeepsServerText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid login or password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Login(context.Background(), models.Credentials{Login: "alice", Password: "bad"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid login or password", ServerMessage(err))
	assert.Nil(t, a.SessionCookie())
}

func TestLogin_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	err := a.Login(context.Background(), models.Credentials{Login: "a", Password: "b"})

	require.Error(t, err)
	assert.False(t, IsResponseError(err))
	assert.Contains(t, err.Error(), "login request")
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Register(context.Background(), models.Credentials{Login: "bob", Password: "pw"}))
	assert.Nil(t, a.SessionCookie())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "User already exists", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Register(context.Background(), models.Credentials{Login: "bob", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "User already exists", ServerMessage(err))
}

// ── Todos ────────────────────────────────────────────────────────────────────

func TestListTodos_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":5,"title":"milk","completed":false,"created_at":"2025-03-01T10:00:00Z"},
			{"id":9,"title":"bread","completed":true,"created_at":"2025-03-01T11:00:00Z","completed_at":"2025-03-02T11:00:00Z"}]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	tasks, err := a.ListTodos(context.Background())

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "milk", tasks[0].Title)
	assert.Equal(t, int64(5), tasks[0].Ref)
	assert.Equal(t, int64(9), tasks[1].Ref)
	require.NotNil(t, tasks[1].CompletedAt)
}

func TestListTodos_NullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	tasks, err := newTestAdapter(t, srv.URL).ListTodos(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestListTodos_PositionalBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"title":"a"},{"title":"b"}]`))
	}))
	defer srv.Close()

	tasks, err := newTestAdapter(t, srv.URL).ListTodos(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(0), tasks[0].Ref)
	assert.Equal(t, int64(1), tasks[1].Ref)
}

func TestListTodos_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListTodos(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestListTodos_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListTodos(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode todos response")
}

func TestCreateTodo_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/todos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.TaskRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buy milk", req.Title)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).CreateTodo(context.Background(), "buy milk"))
}

func TestCompleteTodo_Path(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/todos/42/complete", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).CompleteTodo(context.Background(), 42))
}

func TestDeleteTodo_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/todos/3", r.URL.Path)
		http.Error(w, "Todo not found", http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteTodo(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Todo not found", ServerMessage(err))
}

// ── Notes ────────────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notes", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":1,"title":"one","created_at":"2025-01-01T00:00:00Z","update_at":"2025-01-02T00:00:00Z"}]`))
	}))
	defer srv.Close()

	previews, err := newTestAdapter(t, srv.URL).ListNotes(context.Background())

	require.NoError(t, err)
	require.Len(t, previews, 1)
	assert.Equal(t, "one", previews[0].Title)
	assert.Equal(t, 2, previews[0].UpdatedAt.Day())
}

func TestGetNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/notes/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"title":"t","content":"body","created_at":"2025-01-01T00:00:00Z","updated_at":"2025-01-05T00:00:00Z"}`))
	}))
	defer srv.Close()

	note, err := newTestAdapter(t, srv.URL).GetNote(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), note.ID)
	assert.Equal(t, "body", note.Content)
	assert.Equal(t, 5, note.UpdatedAt.Day())
}

func TestCreateNote_Body(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req models.NoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.NoteRequest{Title: "t", Content: "c"}, req)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"title":"t","content":"c"}`))
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).CreateNote(context.Background(), models.NoteRequest{Title: "t", Content: "c"}))
}

func TestUpdateNote_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/2", r.URL.Path)
		http.Error(w, "Title is required", http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).UpdateNote(context.Background(), 2, models.NoteRequest{})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Title is required", ServerMessage(err))
}

func TestDeleteNote_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/11", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).DeleteNote(context.Background(), 11))
}

// ── Account ──────────────────────────────────────────────────────────────────

func TestDeleteAccount_AcceptsOKAndNoContent(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNoContent} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/account", r.URL.Path)
			w.WriteHeader(status)
		}))

		assert.NoError(t, newTestAdapter(t, srv.URL).DeleteAccount(context.Background()))
		srv.Close()
	}
}

func TestDeleteAccount_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteAccount(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Empty(t, ServerMessage(err))
	assert.Contains(t, err.Error(), "503")
}

// ── Session cookie ───────────────────────────────────────────────────────────

func TestClearSession_DropsCookie(t *testing.T) {
	var sawCookie bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login" {
			setSession(w, "sid-2")
			return
		}
		_, err := r.Cookie(models.SessionCookieName)
		sawCookie = err == nil
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.Login(context.Background(), models.Credentials{Login: "a", Password: "b"}))
	require.NotNil(t, a.SessionCookie())

	a.ClearSession()
	assert.Nil(t, a.SessionCookie())

	_, err := a.ListTodos(context.Background())
	require.NoError(t, err)
	assert.False(t, sawCookie)
}

func TestClearSession_WithoutServer(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	a.RestoreSession(&http.Cookie{Name: models.SessionCookieName, Value: "x"})
	require.NotNil(t, a.SessionCookie())

	assert.NotPanics(t, a.ClearSession)
	assert.Nil(t, a.SessionCookie())
}

func TestRestoreSession_SendsCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requireSession(t, r, "restored")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.RestoreSession(&http.Cookie{Name: models.SessionCookieName, Value: "restored"})

	_, err := a.ListTodos(context.Background())
	require.NoError(t, err)
}

func TestRestoreSession_IgnoresEmpty(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")
	a.RestoreSession(nil)
	a.RestoreSession(&http.Cookie{Name: models.SessionCookieName})
	assert.Nil(t, a.SessionCookie())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	assert.Error(t, err)
}
