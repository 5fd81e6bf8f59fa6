package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	app_errors "boardgame-chatbot/backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// This file provides a singleton validation helper for API request bodies.

var (
	// validate holds the single instance of the validator.
	validate *validator.Validate
	// once ensures that the validator is initialized only one time.
	once sync.Once
)

// fieldMessages holds the chat window's wording for known failures, keyed by
// "<json field>.<tag>".
var fieldMessages = map[string]string{
	"session_id.required": "세션 ID가 필요합니다.",
	"game_name.required":  "게임 이름이 필요합니다.",
}

// getInstance uses sync.Once to safely initialize and return the validator singleton.
// Field errors report JSON names instead of Go field names.
func getInstance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// validateRequest checks a payload against its `validate` struct tags and
// returns a wrapped app_errors.ErrValidation describing every failed field.
func validateRequest(payload interface{}) error {
	v := getInstance()
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: an unexpected error occurred during validation: %s", app_errors.ErrValidation, err.Error())
	}

	var errorMessages []string
	for _, fieldErr := range validationErrors {
		if msg, ok := fieldMessages[fieldErr.Field()+"."+fieldErr.Tag()]; ok {
			errorMessages = append(errorMessages, msg)
			continue
		}
		errorMessages = append(errorMessages, fmt.Sprintf("Field '%s' failed on the '%s' tag", fieldErr.Field(), fieldErr.Tag()))
	}

	return fmt.Errorf("%w: %s", app_errors.ErrValidation, strings.Join(errorMessages, "; "))
}
