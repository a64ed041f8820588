package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// convertValidationError normalizes validator errors into uikit validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return uierrors.NewValidationError(field, msg, err)
	}

	return uierrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the error namespace, leaving
// the YAML path ("components[0].variant").
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

func fieldForComponent(prefix string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", prefix, index, field)
}
