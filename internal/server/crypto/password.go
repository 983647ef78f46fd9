// Хэширование паролей
package crypto

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptParams задаёт стоимость хэширования bcrypt.
//
// Cost ограничивает работу фиксированным фактором: стоимость не зависит
// от длины пользовательского ввода, поэтому долгих запросов из-за
// больших паролей не бывает.
type BcryptParams struct {
	Cost int
}

// HashPassword возвращает bcrypt-хэш пароля с встроенной случайной солью.
//
// Формат строки стандартный для bcrypt: $2a$10$<salt+hash>.
// Пустой пароль — ошибка: проверка длины выполняется на уровне сервиса,
// но хэшировать пустую строку не имеет смысла в любом случае.
func HashPassword(password string, p BcryptParams) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword проверяет пароль против сохранённого bcrypt-хэша.
//
// Возвращает:
//   - (true, nil) — пароль совпал;
//   - (false, nil) — пароль не совпал;
//   - (false, err) — хэш повреждён или имеет неверный формат.
//
// Сравнение выполняется самим bcrypt (константное по времени).
func VerifyPassword(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
