package http

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-taskflow/internal/utils"
	"github.com/MKhiriev/go-taskflow/models"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	tasks, err := h.services.TodoService.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "*Handler.listTodos", err)
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) addTodo(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	if !isJSON(r) {
		h.writeError(w, r, "*Handler.addTodo", ErrJSONContentTypeRequired)
		return
	}

	var req models.TaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, "*Handler.addTodo", ErrInvalidJSON)
		return
	}

	task, err := h.services.TodoService.Add(r.Context(), models.Task{UserID: userID, Title: req.Title})
	if err != nil {
		h.writeError(w, r, "*Handler.addTodo", err)
		return
	}

	utils.WriteJSON(w, task, http.StatusCreated)
}

// completeTodo toggles the completion state of the task.
func (h *Handler) completeTodo(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	todoID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.completeTodo", err)
		return
	}

	if _, err = h.services.TodoService.Toggle(r.Context(), userID, todoID); err != nil {
		h.writeError(w, r, "*Handler.completeTodo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	todoID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteTodo", err)
		return
	}

	if err = h.services.TodoService.Delete(r.Context(), userID, todoID); err != nil {
		h.writeError(w, r, "*Handler.deleteTodo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}
