// Package models содержит структуры данных предметной области:
// пользователи, рецепты с вложенными категориями и комментарии.
package models

import "time"

// Роли пользователей. Роль admin открывает операции записи
// над рецептами и категориями.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User описывает учетную запись пользователя.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	UID          string    // Уникальный идентификатор (UUID)
	Username     string    // Уникальное имя пользователя
	Email        string    // Уникальный email
	PasswordHash string    // bcrypt-хэш пароля
	Role         string    // Роль: user или admin
	CreatedAt    time.Time // Время регистрации
}

// PublicUser — представление пользователя для ответов API,
// без чувствительных полей.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Public возвращает представление пользователя без хэша пароля.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.UID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}
