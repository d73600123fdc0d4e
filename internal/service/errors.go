package service

import (
	"context"
	"errors"
	"fmt"
	"todoList/internal/models/task"
	repo "todoList/internal/repository"

	"github.com/google/uuid"
)

const (
	CodeNotFound      = "NOT_FOUND"
	CodeDuplicateID   = "DUPLICATE_ID"
	CodeNoStateChange = "NO_STATE_CHANGE"
	CodeCancelled     = "CANCELLED"
	CodeValidation    = "VALIDATION_ERROR"
)

const resourceTask = "task"

// Сравнивать через errors.Is: совпадение идёт по коду
var (
	ErrNotFound      = &BusinessError{Code: CodeNotFound, Message: "задача не найдена"}
	ErrDuplicateID   = &BusinessError{Code: CodeDuplicateID, Message: "задача с таким id уже существует"}
	ErrNoStateChange = &BusinessError{Code: CodeNoStateChange, Message: "задача уже в этом состоянии"}
	ErrCancelled     = &BusinessError{Code: CodeCancelled, Message: "операция отменена"}
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	if !ok {
		return false
	}
	return t.Code == b.Code
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}

	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}

	return busErr
}

func NewNotFound(id uuid.UUID) *BusinessError {
	return NewBusinessError(CodeNotFound,
		fmt.Sprintf("задача %s не найдена", id),
		ToDetail("resource", resourceTask),
		ToDetail("id", id.String()),
	)
}

func NewDuplicateID(id uuid.UUID) *BusinessError {
	return NewBusinessError(CodeDuplicateID,
		fmt.Sprintf("задача %s уже существует", id),
		ToDetail("resource", resourceTask),
		ToDetail("id", id.String()),
	)
}

func NewNoStateChange(id uuid.UUID, state task.State) *BusinessError {
	return NewBusinessError(CodeNoStateChange,
		fmt.Sprintf("задача %s уже в состоянии %s", id, state),
		ToDetail("id", id.String()),
		ToDetail("state", string(state)),
	)
}

func NewCancelled(operation string, err error) *BusinessError {
	busErr := NewBusinessError(CodeCancelled,
		fmt.Sprintf("операция %s отменена", operation),
		ToDetail("operation", operation),
	)
	busErr.Err = err
	return busErr
}

func NewValidationError(field, reason string) *BusinessError {
	return NewBusinessError(CodeValidation,
		fmt.Sprintf("Неверное значение поля '%s': %s", field, reason),
		ToDetail("field", field),
		ToDetail("reason", reason),
	)
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// translate переводит ошибки хранилища в бизнес-ошибки
func translate(operation string, id uuid.UUID, target task.State, err error) error {
	switch {
	case err == nil:
		return nil
	case isCancellation(err):
		return NewCancelled(operation, err)
	case errors.Is(err, repo.ErrNotFound):
		return NewNotFound(id)
	case errors.Is(err, repo.ErrAlreadyExists):
		return NewDuplicateID(id)
	case errors.Is(err, repo.ErrNoStateChange):
		return NewNoStateChange(id, target)
	default:
		return fmt.Errorf("%s: %w", operation, err)
	}
}
