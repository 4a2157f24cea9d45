package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-taskflow/internal/utils"
	"github.com/MKhiriev/go-taskflow/models"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	previews, err := h.services.NoteService.List(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "*Handler.listNotes", err)
		return
	}

	utils.WriteJSON(w, previews, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	noteID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.getNote", err)
		return
	}

	note, err := h.services.NoteService.Get(r.Context(), userID, noteID)
	if err != nil {
		h.writeError(w, r, "*Handler.getNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	var req models.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, "*Handler.addNote", ErrInvalidJSON)
		return
	}

	note, err := h.services.NoteService.Add(r.Context(), models.Note{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(w, r, "*Handler.addNote", err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	noteID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	var req models.NoteRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, "*Handler.updateNote", ErrInvalidJSON)
		return
	}

	err = h.services.NoteService.Update(r.Context(), models.Note{
		ID:      noteID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		h.writeError(w, r, "*Handler.updateNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, _ := sessionUserID(r)

	noteID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	if err = h.services.NoteService.Delete(r.Context(), userID, noteID); err != nil {
		h.writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
