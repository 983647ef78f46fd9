// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход, выход и получение
// информации о текущем пользователе.
package api

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Email и Password обязательны, Name опционален.
type SignupRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name,omitempty"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User описывает публичный профиль пользователя в ответах сервера.
type User struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	CreatedAt string  `json:"createdAt"`
}

// AuthResponse описывает ответ сервера при успешной регистрации или входе.
//
// Token используется для авторизации последующих запросов
// (Authorization: Bearer <token>). Токен действует 30 дней.
type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// MeResponse описывает ответ сервера с информацией о текущем пользователе.
type MeResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// MessageResponse описывает ответ сервера без полезной нагрузки (logout).
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Signup выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/auth/signup и возвращает AuthResponse
// с токеном и профилем созданного пользователя. В случае ошибки возвращает
// непустую ошибку и пустой ответ.
func (c *Client) Signup(email, password string, name *string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.PostJSON("/api/auth/signup", SignupRequest{Email: email, Password: password, Name: name}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает токен.
//
// Метод отправляет POST запрос на /api/auth/login и возвращает AuthResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (AuthResponse, error) {
	var resp AuthResponse
	err := c.PostJSON("/api/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Logout сообщает серверу о выходе.
//
// Сервер при этом только чистит cookie; токен остаётся валидным
// до истечения срока, поэтому клиент должен удалить его локально сам.
func (c *Client) Logout() (MessageResponse, error) {
	var resp MessageResponse
	err := c.PostJSON("/api/auth/logout", nil, &resp, "")
	return resp, err
}

// Me запрашивает информацию о текущем пользователе.
//
// Метод отправляет GET запрос на /api/auth/me и использует token для авторизации.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Me(token string) (MeResponse, error) {
	var resp MeResponse
	err := c.GetJSON("/api/auth/me", &resp, token)
	return resp, err
}
