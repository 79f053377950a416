// Package status holds the user-facing status texts shown by the command
// line and web front ends.
package status

import (
	"errors"

	"github.com/passfile/passfile-go/internal/service"
)

const (
	ChooseFolder      = "Выберите папку для сохранения паролей"
	FolderSelected    = "Выбрана папка: "
	PasswordGenerated = "Пароль сгенерирован. Нажмите 'Сохранить' для сохранения в файл."
	PasswordLabel     = "Сгенерированный пароль:"
	PasswordSaved     = "Пароль сохранен в файл: "
	ErrorPrefix       = "Ошибка: "

	FolderRequired   = "Сначала выберите папку для сохранения!"
	PasswordRequired = "Сначала сгенерируйте пароль!"
	SaveFailed       = "Ошибка при сохранении файла: "
)

// Message converts a service error into the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrFolderRequired):
		return FolderRequired
	case errors.Is(err, service.ErrPasswordRequired):
		return PasswordRequired
	case errors.Is(err, service.ErrSaveFailed):
		return SaveFailed + service.Cause(err).Error()
	default:
		return err.Error()
	}
}

// Saved returns the status line shown after a successful save.
func Saved(fileName string) string {
	return PasswordSaved + fileName
}
