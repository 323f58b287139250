// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/codec"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/validators"
)

var businessMessages = []struct {
	target  error
	message string
}{
	{service.ErrDefaultTypeNotDeletable, "Стандартный тип нельзя удалить"},
	{service.ErrEntityTypeNotMaterialized, "Тип ещё не сохранён"},
	{service.ErrReservedSlug, "Slug зарезервирован стандартным типом"},
	{store.ErrSlugAlreadyExists, "Тип с таким slug уже существует"},
	{store.ErrEntityTypeNotFound, "Тип не найден"},
	{store.ErrEntityNotFound, "Запись не найдена"},
	{validators.ErrEmptyTypeName, "Укажите название типа"},
	{validators.ErrEmptyTypeSlug, "Укажите slug типа"},
	{validators.ErrEmptyFieldKey, "У каждого поля должен быть ключ"},
	{validators.ErrEmptyFieldLabel, "У каждого поля должна быть подпись"},
	{validators.ErrDuplicateFieldKey, "Ключи полей повторяются"},
	{validators.ErrInvalidFieldType, "Неизвестный тип поля"},
	{validators.ErrEmptyEntityName, "Укажите название записи"},
}

// humanizeError turns a service error into a message for the user. Field
// validation errors keep their own text since it names the field.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var fieldErr *codec.FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Error()
	}

	for _, m := range businessMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
