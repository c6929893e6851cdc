package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kitikt/BE-Native/internal/models"
)

// CreateRecipe сохраняет новый рецепт и возвращает его UID.
// Ингредиенты и категории сериализуются в JSONB.
func (s *Storage) CreateRecipe(ctx context.Context, recipe models.Recipe) (string, error) {
	const op = "storage.CreateRecipe"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	categories, err := json.Marshal(recipe.Categories)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var newUID string
	query := `INSERT INTO recipes (name, description, ingredients, instructions,
			      cook_time, calories, image_url, difficulty, categories)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING uid;`
	if err := s.DB.QueryRowContext(ctx, query,
		recipe.Name, recipe.Description, ingredients, recipe.Instructions,
		recipe.CookTime, recipe.Calories, recipe.ImageURL, recipe.Difficulty,
		categories).Scan(&newUID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ListRecipes возвращает все рецепты в естественном порядке хранения.
func (s *Storage) ListRecipes(ctx context.Context) ([]*models.Recipe, error) {
	const op = "storage.ListRecipes"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, description, ingredients, instructions,
			      cook_time, calories, image_url, difficulty, categories, created_at
			  FROM recipes`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Recipe
	for rows.Next() {
		recipe, err := scanRecipe(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetRecipeByUID возвращает рецепт по его UID.
func (s *Storage) GetRecipeByUID(ctx context.Context, recipeUID string) (*models.Recipe, error) {
	const op = "storage.GetRecipeByUID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, name, description, ingredients, instructions,
			      cook_time, calories, image_url, difficulty, categories, created_at
			  FROM recipes
			  WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, recipeUID)
	recipe, err := scanRecipe(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrRecipeNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return recipe, nil
}

// UpdateRecipe перезаписывает поля рецепта целиком по его UID.
// Частичное обновление собирает сервисный слой: он читает текущую запись,
// накладывает переданные поля и отдает сюда полную версию.
func (s *Storage) UpdateRecipe(ctx context.Context, recipe models.Recipe) error {
	const op = "storage.UpdateRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	ingredients, err := json.Marshal(recipe.Ingredients)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	categories, err := json.Marshal(recipe.Categories)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE recipes
			  SET name = $1, description = $2, ingredients = $3, instructions = $4,
			      cook_time = $5, calories = $6, image_url = $7, difficulty = $8,
			      categories = $9
			  WHERE uid = $10`
	res, err := s.DB.ExecContext(ctx, query,
		recipe.Name, recipe.Description, ingredients, recipe.Instructions,
		recipe.CookTime, recipe.Calories, recipe.ImageURL, recipe.Difficulty,
		categories, recipe.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrRecipeNotFound)
	}
	return nil
}

// UpdateRecipeCategories перезаписывает встроенный набор категорий рецепта.
func (s *Storage) UpdateRecipeCategories(ctx context.Context, recipeUID string, categories []models.Category) error {
	const op = "storage.UpdateRecipeCategories"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.DB.ExecContext(ctx,
		`UPDATE recipes SET categories = $1 WHERE uid = $2`, data, recipeUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrRecipeNotFound)
	}
	return nil
}

// DeleteRecipe удаляет рецепт по UID. Комментарии удаляются каскадно,
// встроенные категории исчезают вместе со строкой.
func (s *Storage) DeleteRecipe(ctx context.Context, recipeUID string) error {
	const op = "storage.DeleteRecipe"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM recipes WHERE uid = $1`, recipeUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrRecipeNotFound)
	}
	return nil
}

// CountRecipes возвращает количество рецептов.
func (s *Storage) CountRecipes(ctx context.Context) (int, error) {
	const op = "storage.CountRecipes"

	var count int
	if err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

func scanRecipe(scan func(dest ...any) error) (*models.Recipe, error) {
	var (
		r           models.Recipe
		description sql.NullString
		imageURL    sql.NullString
		ingredients []byte
		categories  []byte
	)
	if err := scan(&r.ID, &r.Name, &description, &ingredients, &r.Instructions,
		&r.CookTime, &r.Calories, &imageURL, &r.Difficulty, &categories,
		&r.CreatedAt); err != nil {
		return nil, err
	}
	r.Description = description.String
	r.ImageURL = imageURL.String
	if err := json.Unmarshal(ingredients, &r.Ingredients); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(categories, &r.Categories); err != nil {
		return nil, err
	}
	return &r, nil
}
