package config

import (
	"net/url"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/uikit/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
	tokenNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*(?:\.[a-z0-9-]+)*$`)
	sshGitPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(field.Name)
			}
			return name
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("token_name", func(fl validator.FieldLevel) bool {
			return tokenNamePattern.MatchString(fl.Field().String())
		})

		colorTokens := make(map[string]struct{})
		for _, name := range components.ColorTokenNames() {
			colorTokens[name] = struct{}{}
		}
		_ = v.RegisterValidation("color_token", func(fl validator.FieldLevel) bool {
			_, ok := colorTokens[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("source_path", func(fl validator.FieldLevel) bool {
			return IsSourcePath(fl.Field().String())
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true
			}
			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			if parsedURL, err := url.Parse(urlStr); err == nil {
				switch strings.ToLower(parsedURL.Scheme) {
				case "http", "https", "ssh":
					if parsedURL.Host != "" {
						return true
					}
				case "file":
					return parsedURL.Path != ""
				}
			}

			if sshGitPattern.MatchString(urlStr) {
				return true
			}

			return isValidFilePath(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// isValidFilePath accepts absolute paths and explicitly relative paths
// without touching the filesystem. Local theme repositories are cloned from
// such paths.
func isValidFilePath(path string) bool {
	if path == "" || strings.Contains(path, "\x00") {
		return false
	}

	if strings.HasPrefix(path, "/") {
		return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
	}

	return strings.HasPrefix(path, "./") || strings.HasPrefix(path, "../")
}

// IsSourcePath reports whether path may name a directory inside a cloned
// theme source: empty, or relative without ".." segments.
func IsSourcePath(path string) bool {
	if path == "" {
		return true
	}
	if strings.Contains(path, "\x00") || filepath.IsAbs(path) || strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return false
	}
	for _, segment := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if segment == ".." {
			return false
		}
	}
	return true
}
