// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("Please provide email and password")
	// Неверные учётные данные (одно сообщение для "нет такого email" и "не тот пароль")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован (нет токена / токен не прошёл проверку)
	ErrUnauthorized = errors.New("Not authorized to access this route")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("User already exists with this email")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// только для аутентификации
var (
	// auth
	ErrEmailInvalid     = errors.New("Please provide a valid email")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters")
)

// только для каталога
var (
	// catalog
	ErrItemNameEmpty = errors.New("item name is required")
	ErrItemQty       = errors.New("item qty must be >= 0")
)
