package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"tasktracker/internal/logger"
	"tasktracker/internal/utils"
	"tasktracker/models"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	tasks, err := h.services.TaskService.GetTasks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing tasks")
		http.Error(w, statusText(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(ctx, userID, create)
	if err != nil {
		log.Err(err).Msg("error creating task")
		http.Error(w, statusText(err), statusFromError(err))
		return
	}

	log.Debug().Int64("taskID", task.ID).Msg("task created")

	utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid task id")
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(ctx, taskID, userID, update)
	if err != nil {
		log.Err(err).Int64("taskID", taskID).Msg("error updating task")
		http.Error(w, statusText(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid task id")
		http.Error(w, "invalid task id", http.StatusBadRequest)
		return
	}

	if err := h.services.TaskService.DeleteTask(ctx, taskID, userID); err != nil {
		log.Err(err).Int64("taskID", taskID).Msg("error deleting task")
		http.Error(w, statusText(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// taskIDFromRequest parses the {id} URL parameter as a positive integer.
func taskIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
