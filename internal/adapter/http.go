package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/internal/utils"
	"github.com/MKhiriev/go-taskflow/models"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL *url.URL

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress and applies the request timeout; a
// zero timeout keeps the transport default. Requests are never retried.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client, err := utils.NewHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("error creating http client: %w", err)
	}
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetRetryCount(0)

	return &httpServerAdapter{client: client, baseURL: u, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. The session cookie set by the server is
// stored in the client's cookie jar.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

// Register implements [ServerAdapter]. It does not sign the user in.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListTodos implements [ServerAdapter]. Every returned task has Ref set, see
// [models.AssignTaskRefs].
func (h *httpServerAdapter) ListTodos(ctx context.Context) ([]models.Task, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/todos")
	if err != nil {
		return nil, fmt.Errorf("list todos request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0)
	if err = decodeBody(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode todos response: %w", err)
	}
	models.AssignTaskRefs(tasks)

	return tasks, nil
}

// CreateTodo implements [ServerAdapter].
func (h *httpServerAdapter) CreateTodo(ctx context.Context, title string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TaskRequest{Title: title}).
		Post("/api/todos")
	if err != nil {
		return fmt.Errorf("create todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// CompleteTodo implements [ServerAdapter].
func (h *httpServerAdapter) CompleteTodo(ctx context.Context, ref int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(ref, 10)).
		Put("/api/todos/{id}/complete")
	if err != nil {
		return fmt.Errorf("complete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteTodo implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTodo(ctx context.Context, ref int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(ref, 10)).
		Delete("/api/todos/{id}")
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

// ListNotes implements [ServerAdapter].
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.NotePreview, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	previews := make([]models.NotePreview, 0)
	if err = decodeBody(resp.Body(), &previews); err != nil {
		return nil, fmt.Errorf("decode notes response: %w", err)
	}

	return previews, nil
}

// GetNote implements [ServerAdapter].
func (h *httpServerAdapter) GetNote(ctx context.Context, id int64) (models.Note, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/api/notes/{id}")
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode note response: %w", err)
	}

	return note, nil
}

// CreateNote implements [ServerAdapter].
func (h *httpServerAdapter) CreateNote(ctx context.Context, req models.NoteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/notes")
	if err != nil {
		return fmt.Errorf("create note request: %w", err)
	}

	return mapHTTPError(resp)
}

// UpdateNote implements [ServerAdapter].
func (h *httpServerAdapter) UpdateNote(ctx context.Context, id int64, req models.NoteRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(req).
		Put("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteNote implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNote(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/notes/{id}")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// DeleteAccount implements [ServerAdapter].
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/account")
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// decodeBody unmarshals a JSON list body. An empty body or "null" leaves v untouched.
func decodeBody(body []byte, v any) error {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return json.Unmarshal(body, v)
}

// SessionCookie implements [ServerAdapter].
func (h *httpServerAdapter) SessionCookie() *http.Cookie {
	jar := h.client.GetClient().Jar
	if jar == nil {
		return nil
	}

	for _, c := range jar.Cookies(h.baseURL) {
		if c.Name == models.SessionCookieName && c.Value != "" {
			return &http.Cookie{Name: c.Name, Value: c.Value, Path: models.SessionCookiePath}
		}
	}
	return nil
}

// RestoreSession implements [ServerAdapter].
func (h *httpServerAdapter) RestoreSession(cookie *http.Cookie) {
	if cookie == nil || cookie.Value == "" {
		return
	}

	h.client.GetClient().Jar.SetCookies(h.baseURL, []*http.Cookie{{
		Name:  models.SessionCookieName,
		Value: cookie.Value,
		Path:  models.SessionCookiePath,
	}})
	h.logger.Debug().Msg("session cookie restored")
}

// ClearSession implements [ServerAdapter]. It writes an already expired
// cookie with the same name and path, which makes the jar drop it.
func (h *httpServerAdapter) ClearSession() {
	h.client.GetClient().Jar.SetCookies(h.baseURL, []*http.Cookie{{
		Name:   models.SessionCookieName,
		Value:  "",
		Path:   models.SessionCookiePath,
		MaxAge: -1,
	}})
	h.logger.Debug().Msg("session cookie cleared")
}
