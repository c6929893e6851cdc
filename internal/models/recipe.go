package models

import "time"

// Уровни сложности рецепта.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Category — вложенная категория рецепта. Категория живет только внутри
// своего рецепта: отдельного хранилища у категорий нет, удаление рецепта
// удаляет и его категории.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Recipe описывает рецепт со встроенным набором категорий.
type Recipe struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Ingredients  []string   `json:"ingredients"`
	Instructions string     `json:"instructions"`
	CookTime     string     `json:"cookTime"`
	Calories     int        `json:"calories"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	Difficulty   string     `json:"difficulty"`
	Categories   []Category `json:"categories"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ValidDifficulty сообщает, допустим ли уровень сложности.
func ValidDifficulty(d string) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
