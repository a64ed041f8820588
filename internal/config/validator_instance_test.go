package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidatorIsShared(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}

func TestGitURLValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty string", "", true},
		{"space", " ", false},
		{"valid https", "https://github.com/user/themes.git", true},
		{"https with port", "https://github.com:443/user/themes.git", true},
		{"ssh scheme", "ssh://git@github.com/user/themes.git", true},
		{"file scheme", "file:///srv/themes", true},
		{"no host", "https:///path", false},
		{"invalid scheme", "ftp://example.com/themes.git", false},
		{"scp style", "git@github.com:user/themes.git", true},
		{"scp without path", "git@github.com:", false},
		{"absolute path", "/tmp/themes.git", true},
		{"relative path", "./themes", true},
		{"relative without prefix", "themes", false},
		{"path traversal", "/etc/../usr/themes", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Var(tt.url, "git_url")
			assert.Equal(t, tt.expected, err == nil, "git_url %q: %v", tt.url, err)
		})
	}
}

func TestSourcePathValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := map[string]bool{
		"":                 true,
		"themes":           true,
		"./themes/dark":    true,
		"themes/..dark":    true,
		"/etc/themes":      false,
		"..":               false,
		"../themes":        false,
		"themes/../../etc": false,
		`themes\..\..\etc`: false,
		"themes/\x00":      false,
	}

	for path, expected := range tests {
		err := v.Var(path, "omitempty,source_path")
		assert.Equal(t, expected, err == nil, "source_path %q: %v", path, err)
		assert.Equal(t, expected, IsSourcePath(path), "IsSourcePath(%q)", path)
	}
}

func TestThemeNameValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := map[string]bool{
		"light":     true,
		"high-cont": true,
		"ocean2":    true,
		"":          false,
		"Dark":      false,
		"2fast":     false,
		"my theme":  false,
		"sea.blue":  false,
	}

	for name, expected := range tests {
		err := v.Var(name, "theme_name")
		assert.Equal(t, expected, err == nil, "theme_name %q", name)
	}
}

func TestTokenNameValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	tests := map[string]bool{
		"button.root":              true,
		"button.underline.default": true,
		"command.group.heading":    true,
		"brand":                    true,
		"":                         false,
		"Button.root":              false,
		"button..root":             false,
		"button.":                  false,
		".root":                    false,
	}

	for name, expected := range tests {
		err := v.Var(name, "token_name")
		assert.Equal(t, expected, err == nil, "token_name %q", name)
	}
}

func TestColorTokenValidation(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	assert.NoError(t, v.Var("foreground-muted", "color_token"))
	assert.NoError(t, v.Var("ring", "color_token"))
	assert.Error(t, v.Var("primary", "color_token"))
	assert.Error(t, v.Var("fg", "color_token"))
}

func TestIsValidFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path     string
		expected bool
	}{
		{"/", true},
		{"/srv/themes", true},
		{"./themes", true},
		{"../themes", true},
		{"", false},
		{"themes", false},
		{"..", false},
		{"/tmp\x00x", false},
		{"/tmp/..", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, isValidFilePath(tt.path), "path %q", tt.path)
	}
}
