// Package validation проверяет входные записи по тегам validate
// и собирает все нарушенные ограничения полей в одну ошибку.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Правила, которые добавляются к правилам validator
const (
	RuleContentPolicy = "content_policy"
	RuleJSON          = "json"
	RuleType          = "type"
	RuleInteger       = "integer"
)

// FieldError описывает одно нарушенное ограничение
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Errors ошибка валидации со списком всех нарушенных ограничений
type Errors struct {
	Fields []FieldError
}

// Error возвращает все нарушения одной строкой
func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has сообщает, есть ли нарушение правила rule у поля field
func (e *Errors) Has(field, rule string) bool {
	for _, f := range e.Fields {
		if f.Field == field && f.Rule == rule {
			return true
		}
	}
	return false
}

// NewError создаёт ошибку валидации с одним нарушением
func NewError(field, rule, message string) *Errors {
	return &Errors{Fields: []FieldError{{Field: field, Rule: rule, Message: message}}}
}

// Validator обёртка над validator.Validate с зарегистрированными правилами
type Validator struct {
	v *validator.Validate
}

// New создаёт Validator
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Ошибка регистрации возможна только при пустом имени тега
	_ = v.RegisterValidation(RuleContentPolicy, validateContentPolicy)
	return &Validator{v: v}
}

// Struct проверяет структуру и возвращает *Errors либо nil
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Errors{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   fieldPath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Validate проверяет структуру валидатором по умолчанию
func Validate(s any) error {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator.Struct(s)
}

// DecodeJSON разбирает JSON из r в dst; ошибки разбора возвращаются как *Errors.
// Тело должно содержать ровно одно JSON-значение.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return NewError("body", RuleJSON, "invalid JSON: unexpected data after the top-level value")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return NewError(fieldPath(typeErr.Field), RuleType, "must be of type "+typeErr.Type.String())
	}
	if errors.Is(err, io.EOF) {
		return NewError("body", RuleJSON, "request body is empty")
	}
	return NewError("body", RuleJSON, "invalid JSON: "+err.Error())
}

// fieldPath превращает "Feedback.contact.phone" в "contact.phone",
// а "UserFields.username" в "username".
// JSON-имена полей в моделях начинаются со строчной буквы, сегменты с прописной
// это имя корневой структуры и встроенных структур.
func fieldPath(namespace string) string {
	segments := strings.Split(namespace, ".")
	path := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" || unicode.IsUpper([]rune(s)[0]) {
			continue
		}
		path = append(path, s)
	}
	return strings.Join(path, ".")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	case "email":
		return "must be a valid email address"
	case "number":
		return "must contain digits only"
	case RuleContentPolicy:
		return "contains disallowed words"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
