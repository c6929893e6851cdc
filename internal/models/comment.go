package models

import "time"

// Comment — комментарий пользователя к рецепту. Комментарий всегда
// ссылается на существующий рецепт и аутентифицированного автора.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	RecipeID  string    `json:"recipeId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentAuthor — минимальные данные автора для выдачи списка комментариев.
type CommentAuthor struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CommentWithAuthor — комментарий вместе с данными автора.
type CommentWithAuthor struct {
	Comment
	Author CommentAuthor `json:"user"`
}
