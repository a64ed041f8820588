package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("page.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "page.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "page.yaml:12")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("uikit.yaml", 0, stdErrors.New("missing"))
	require.Equal(t, "parse error: uikit.yaml: missing", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("components[0].variant", "failed validation for tag 'oneof'", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "components[0].variant", validationErr.Field)
	require.Contains(t, validationErr.Message, "oneof")
}

func TestContractErrorNamesComponent(t *testing.T) {
	t.Parallel()

	err := NewContractError("Button", "asChild expects exactly one child element, got 2")

	var contractErr *ContractError
	require.ErrorAs(t, err, &contractErr)
	require.Equal(t, "Button", contractErr.Component)
	require.Equal(t, "contract violation in Button: asChild expects exactly one child element, got 2", err.Error())
}

func TestSourceErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("repository not found")
	err := NewSourceError("brand-themes", underlying)

	var sourceErr *SourceError
	require.ErrorAs(t, err, &sourceErr)
	require.Equal(t, "brand-themes", sourceErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestNilReceiversRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var contractErr *ContractError
	var sourceErr *SourceError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, contractErr.Error())
	require.Empty(t, sourceErr.Error())
	require.NoError(t, parseErr.Unwrap())
}
