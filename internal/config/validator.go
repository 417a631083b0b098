package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	palerrors "github.com/termstack/palette/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern  = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	entryIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("entry_id", func(fl validator.FieldLevel) bool {
			return entryIDPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateCommands performs schema and cross-entry validation on a parsed
// command definition document.
func ValidateCommands(cmds *Commands) error {
	if cmds == nil {
		return palerrors.NewValidationError("commands", "command document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cmds); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cmds.Commands))
	for i, cmd := range cmds.Commands {
		if _, exists := seen[cmd.ID]; exists {
			return palerrors.NewValidationError(fieldForCommand(i, "id"), fmt.Sprintf("duplicate command id %q", cmd.ID), nil)
		}
		seen[cmd.ID] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return palerrors.NewValidationError(field, msg, err)
	}

	return palerrors.NewValidationError("commands", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForCommand(index int, field string) string {
	return fmt.Sprintf("commands[%d].%s", index, field)
}
