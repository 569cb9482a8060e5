package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tailored-agentic-units/spillover/cache"
)

// AppError is the JSON error body returned by the API.
type AppError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	CodeBadRequest     = "BAD_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeNotImplemented = "NOT_IMPLEMENTED"
	CodeInternalError  = "INTERNAL_ERROR"
)

func (e *AppError) Error() string { return e.Code + ": " + e.Message }

func newAppError(status int, code, message string) *AppError {
	return &AppError{Status: status, Code: code, Message: message}
}

func badRequest(msg string) *AppError {
	return newAppError(http.StatusBadRequest, CodeBadRequest, msg)
}

func notFound(msg string) *AppError {
	return newAppError(http.StatusNotFound, CodeNotFound, msg)
}

func internal(msg string) *AppError {
	return newAppError(http.StatusInternalServerError, CodeInternalError, msg)
}

// fromCacheError maps engine errors onto API errors. ErrNotSupported is
// a documented capability gap rather than a runtime fault, so it gets
// its own status.
func fromCacheError(err error) *AppError {
	switch {
	case errors.Is(err, cache.ErrNotSupported):
		return newAppError(http.StatusNotImplemented, CodeNotImplemented, err.Error())
	default:
		return internal("cache failure: " + err.Error())
	}
}

type successEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Err *AppError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successEnvelope{Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	var app *AppError
	if errors.As(err, &app) {
		writeJSON(w, app.Status, errorEnvelope{Err: app})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{Err: internal("unexpected error")})
}
