package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// blockedStems стоп-слова: основа и хотя бы одна буква после неё, без учёта регистра
var blockedStems = regexp.MustCompile(`(?i)редиск[а-я]|бяк[а-я]|козявк[а-я]`)

// Contact контактные данные отправителя отзыва
type Contact struct {
	Email string  `json:"email" validate:"required,email"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,number,min=7,max=15"`
}

// Feedback отзыв пользователя. Правило content_policy проверяется последним,
// только когда сообщение уже прошло проверки длины.
type Feedback struct {
	Name    string  `json:"name" validate:"required,min=2,max=50"`
	Message string  `json:"message" validate:"required,min=10,max=500,content_policy"`
	Contact Contact `json:"contact"`
}

// ContainsBlockedWords сообщает, есть ли в тексте запрещённые слова
func ContainsBlockedWords(text string) bool {
	return blockedStems.MatchString(text)
}

func validateContentPolicy(fl validator.FieldLevel) bool {
	return !ContainsBlockedWords(fl.Field().String())
}
