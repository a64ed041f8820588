package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

func TestValidatePage(t *testing.T) {
	t.Parallel()

	button := func(label string) ComponentSpec { return ComponentSpec{Kind: KindButton, Label: label} }

	tests := []struct {
		name  string
		page  *Page
		field string
	}{
		{
			name: "valid",
			page: &Page{Title: "ok", Components: []ComponentSpec{button("Save")}},
		},
		{
			name:  "nil page",
			page:  nil,
			field: "page",
		},
		{
			name:  "no components",
			page:  &Page{Title: "empty"},
			field: "components",
		},
		{
			name:  "unknown kind",
			page:  &Page{Title: "x", Components: []ComponentSpec{{Kind: "slider"}}},
			field: "components[0].kind",
		},
		{
			name:  "unknown variant",
			page:  &Page{Title: "x", Components: []ComponentSpec{{Kind: KindButton, Label: "x", Variant: "link"}}},
			field: "components[0].variant",
		},
		{
			name:  "unknown size",
			page:  &Page{Title: "x", Components: []ComponentSpec{{Kind: KindButton, Label: "x", Size: "xl"}}},
			field: "components[0].size",
		},
		{
			name:  "variant on input",
			page:  &Page{Title: "x", Components: []ComponentSpec{{Kind: KindInput, Variant: "ghost"}}},
			field: "components[0].variant",
		},
		{
			name:  "button without label",
			page:  &Page{Title: "x", Components: []ComponentSpec{{Kind: KindButton}}},
			field: "components[0].label",
		},
		{
			name:  "command without groups",
			page:  &Page{Title: "x", Components: []ComponentSpec{{Kind: KindCommand}}},
			field: "components[0].groups",
		},
		{
			name: "duplicate ids",
			page: &Page{Title: "x", Components: []ComponentSpec{
				{Kind: KindInput, ID: "email"},
				{Kind: KindInput, ID: "email"},
			}},
			field: "components[1].id",
		},
		{
			name: "dialog footer holds buttons",
			page: &Page{Title: "x", Components: []ComponentSpec{
				{Kind: KindDialog, Footer: []ComponentSpec{button("Cancel"), {Kind: KindInput}}},
			}},
			field: "components[0].footer[1].kind",
		},
		{
			name: "footer button is validated",
			page: &Page{Title: "x", Components: []ComponentSpec{
				{Kind: KindDialog, Footer: []ComponentSpec{{Kind: KindButton, Href: "/x"}}},
			}},
			field: "components[0].footer[0].label",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidatePage(tt.page)
			if tt.field == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *uierrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(DefaultConfig()))

	var validationErr *uierrors.ValidationError

	err := ValidateConfig(nil)
	require.ErrorAs(t, err, &validationErr)

	err = ValidateConfig(&Config{Tokens: map[string]string{"Button Root": "p-4"}})
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Message, "token_name")

	err = ValidateConfig(&Config{ThemeSources: []ThemeSource{
		{Name: "shared", URL: "https://example.com/a.git"},
		{Name: "shared", URL: "https://example.com/b.git"},
	}})
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme_sources[1].name", validationErr.Field)

	err = ValidateConfig(&Config{ThemeSources: []ThemeSource{{Name: "shared", URL: "themes"}}})
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme_sources[0].url", validationErr.Field)

	for _, path := range []string{"/etc", "../themes", "themes/../../etc"} {
		err = ValidateConfig(&Config{ThemeSources: []ThemeSource{{Name: "shared", URL: "https://example.com/a.git", Path: path}}})
		require.ErrorAs(t, err, &validationErr, "path %q", path)
		require.Equal(t, "theme_sources[0].path", validationErr.Field)
		require.Contains(t, validationErr.Message, "source_path")
	}

	require.NoError(t, ValidateConfig(&Config{ThemeSources: []ThemeSource{{Name: "shared", URL: "https://example.com/a.git", Path: "themes/dark"}}}))
}
