package pgerrors

import (
	"errors"

	"github.com/lib/pq"
)

// Коды SQLSTATE, которые обрабатываются репозиториями
const (
	CodeUniqueViolation      = "23505"
	CodeSerializationFailure = "40001"
)

// UniqueViolation сообщает, что err - нарушение уникальности, и возвращает имя ограничения
func UniqueViolation(err error) (constraint string, ok bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == CodeUniqueViolation {
		return pqErr.Constraint, true
	}
	return "", false
}

// IsSerializationFailure проверяет, что ошибка - конфликт сериализации
func IsSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == CodeSerializationFailure
}
