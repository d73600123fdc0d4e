package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"
	"todoList/internal/handlers/dto"
	"todoList/internal/logger"
	"todoList/internal/models/task"
	"todoList/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService Service
	validate    *validator.Validate
}

func NewTaskHandler(taskService Service) *TaskHandler {
	validate := validator.New()
	// в ошибках валидации показываем имя поля из json
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	return &TaskHandler{
		TaskService: taskService,
		validate:    validate,
	}
}

// Register вешает маршруты задач и health на роутер
func (s *TaskHandler) Register(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", s.ListTasks)                        // GET /tasks?completed=
		r.Post("/", s.PostTask)                        // POST /tasks
		r.Delete("/", s.DeleteAllTasks)                // DELETE /tasks
		r.Delete("/completed", s.DeleteCompletedTasks) // DELETE /tasks/completed

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", s.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", s.DeleteTaskByID) // DELETE /tasks/{id}

			r.Post("/complete", s.CompleteTask)     // POST /tasks/{id}/complete
			r.Post("/uncomplete", s.UncompleteTask) // POST /tasks/{id}/uncomplete
		})
	})

	r.Get("/health", s.HealthCheck)
}

func (s *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	healthCheck(w, s.TaskService.HealthCheck(r.Context()))
}

func (s *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var (
		found []task.Task
		err   error
	)

	if raw := r.URL.Query().Get("completed"); raw != "" {
		completed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			logger.Warn("HTTP: Неверное значение параметра",
				zap.String("query", "completed"),
				zap.String("value", raw),
				zap.String("client_ip", r.RemoteAddr))
			handleServiceError(w, r, service.NewValidationError("completed", "ожидается true или false"), "list_tasks")
			return
		}
		found, err = s.TaskService.ListByState(r.Context(), completed)
	} else {
		found, err = s.TaskService.List(r.Context())
	}

	if err != nil {
		handleServiceError(w, r, err, "list_tasks")
		return
	}

	logger.Debug("HTTP_OUT: Задачи получены",
		zap.Int("count", len(found)),
		zap.Duration("ms", time.Since(start)))

	responseWithBody(w, http.StatusOK, dto.FromTaskList(found))
}

func (s *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	if !s.requireJSON(w, r) {
		return
	}

	var request dto.CreateTaskRequest
	if !s.decode(w, r, &request) {
		return
	}

	created, err := s.TaskService.Add(r.Context(), request.ToTask())
	if err != nil {
		handleServiceError(w, r, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Задача создана", zap.String("task_id", created.ID.String()))

	responseWithBody(w, http.StatusCreated, dto.FromTask(created))
}

func (s *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	found, exists, err := s.TaskService.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "get_task")
		return
	}
	if !exists {
		handleServiceError(w, r, service.NewNotFound(id), "get_task")
		return
	}

	responseWithBody(w, http.StatusOK, dto.FromTask(found))
}

func (s *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	if !s.requireJSON(w, r) {
		return
	}

	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest
	if !s.decode(w, r, &request) {
		return
	}

	updated, err := s.TaskService.Edit(r.Context(), request.ToTask(id))
	if err != nil {
		handleServiceError(w, r, err, "update_task")
		return
	}

	logger.Info("HTTP_OUT: Задача обновлена", zap.String("task_id", id.String()))

	responseWithBody(w, http.StatusOK, dto.FromTask(updated))
}

func (s *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	if err := s.TaskService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, r, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: Задача удалена", zap.String("task_id", id.String()))

	w.WriteHeader(http.StatusNoContent)
}

func (s *TaskHandler) DeleteCompletedTasks(w http.ResponseWriter, r *http.Request) {
	removed, err := s.TaskService.DeleteCompleted(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "delete_completed")
		return
	}

	logger.Info("HTTP_OUT: Завершённые задачи удалены", zap.Int("removed", removed))

	responseWithBody(w, http.StatusOK, dto.DeleteResponse{Deleted: removed})
}

func (s *TaskHandler) DeleteAllTasks(w http.ResponseWriter, r *http.Request) {
	removed, err := s.TaskService.DeleteAll(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "delete_all")
		return
	}

	logger.Info("HTTP_OUT: Все задачи удалены", zap.Int("removed", removed))

	responseWithBody(w, http.StatusOK, dto.DeleteResponse{Deleted: removed})
}

func (s *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	updated, err := s.TaskService.Complete(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "complete_task")
		return
	}

	responseWithBody(w, http.StatusOK, dto.FromTask(updated))
}

func (s *TaskHandler) UncompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := s.parseID(w, r)
	if !ok {
		return
	}

	updated, err := s.TaskService.Uncomplete(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "uncomplete_task")
		return
	}

	responseWithBody(w, http.StatusOK, dto.FromTask(updated))
}

func (s *TaskHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		logger.Warn("HTTP: Не удалось получить id",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "не удалось получить id: "+err.Error())
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		logger.Warn("HTTP: Неверное значение id",
			zap.String("error", "nil id"),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "id не может быть пустым")
		return uuid.Nil, false
	}

	return id, true
}

func (s *TaskHandler) requireJSON(w http.ResponseWriter, r *http.Request) bool {
	if checkContentType(r, "application/json") {
		return true
	}

	logger.Warn("HTTP: Неверный тип контента",
		zap.String("expected", "application/json"),
		zap.String("received", r.Header.Get("Content-Type")),
		zap.String("client_ip", r.RemoteAddr))

	responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
	return false
}

// decode читает тело запроса и валидирует его по тегам validate
func (s *TaskHandler) decode(w http.ResponseWriter, r *http.Request, request any) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		logger.Warn("HTTP: ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, "неверное тело запроса: "+err.Error())
		return false
	}

	if err := s.validate.Struct(request); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			fieldErr := validationErrs[0]
			handleServiceError(w, r, service.NewValidationError(fieldErr.Field(), fieldErr.Tag()), "validate_request")
			return false
		}
		responseWithError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}
