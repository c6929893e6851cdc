package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kitikt/BE-Native/internal/models"
)

// CreateComment сохраняет новый комментарий и возвращает его UID.
// Нарушение внешнего ключа на рецепт возвращается как ErrRecipeNotFound.
func (s *Storage) CreateComment(ctx context.Context, comment models.Comment) (string, error) {
	const op = "storage.CreateComment"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var newUID string
	query := `INSERT INTO comments (content, recipe_uid, user_uid)
			  VALUES ($1, $2, $3)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		comment.Content, comment.RecipeID, comment.UserID).Scan(&newUID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return "", fmt.Errorf("%s: %w", op, ErrRecipeNotFound)
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// GetCommentByUID возвращает комментарий по его UID.
func (s *Storage) GetCommentByUID(ctx context.Context, commentUID string) (*models.Comment, error) {
	const op = "storage.GetCommentByUID"

	query := `SELECT uid, content, recipe_uid, user_uid, created_at
			  FROM comments
			  WHERE uid = $1`
	c := &models.Comment{}
	if err := s.DB.QueryRowContext(ctx, query, commentUID).Scan(
		&c.ID, &c.Content, &c.RecipeID, &c.UserID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

// ListCommentsByRecipe возвращает комментарии рецепта вместе с минимальными
// данными автора (username, email), новые комментарии первыми.
func (s *Storage) ListCommentsByRecipe(ctx context.Context, recipeUID string) ([]*models.CommentWithAuthor, error) {
	const op = "storage.ListCommentsByRecipe"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT c.uid, c.content, c.recipe_uid, c.user_uid, c.created_at,
			      u.username, u.email
			  FROM comments c
			  JOIN users u ON u.uid = c.user_uid
			  WHERE c.recipe_uid = $1
			  ORDER BY c.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, recipeUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.CommentWithAuthor
	for rows.Next() {
		var c models.CommentWithAuthor
		if err := rows.Scan(&c.ID, &c.Content, &c.RecipeID, &c.UserID,
			&c.CreatedAt, &c.Author.Username, &c.Author.Email); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
