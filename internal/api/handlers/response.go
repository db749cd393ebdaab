package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const (
	msgInternalError  = "внутренняя ошибка сервера"
	maxRequestBodyLen = 1 << 20
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse тело ответа 409 с датой и занятыми слотами
type ConflictResponse struct {
	Error string   `json:"error"`
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// DecodeJSON читает JSON тело запроса, неизвестные поля - ошибка
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyLen))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// RespondJSON пишет ответ в JSON. data == nil - пустое тело
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

func RespondTooManyRequests(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusTooManyRequests, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// RespondScheduleConflict отвечает 409. Если err содержит *domain.ConflictError,
// в ответ добавляются дата и занятые слоты
func RespondScheduleConflict(w http.ResponseWriter, message string, err error) {
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		RespondConflict(w, message)
		return
	}

	times := make([]string, 0, len(conflict.Times))
	for _, t := range conflict.Times {
		times = append(times, t.String())
	}

	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error: message,
		Date:  conflict.Date.Format(domain.DateFormat),
		Times: times,
	})
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
