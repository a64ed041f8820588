package config

import (
	"fmt"

	uierrors "github.com/alexisbeaulieu97/uikit/pkg/errors"
)

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return uierrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	themes := map[string]bool{"light": true, "dark": true}
	for i, theme := range cfg.Themes {
		if themes[theme.Name] {
			return uierrors.NewValidationError(fmt.Sprintf("themes[%d].name", i), fmt.Sprintf("duplicate theme name %q", theme.Name), nil)
		}
		themes[theme.Name] = true
	}

	sources := make(map[string]bool, len(cfg.ThemeSources))
	for i, source := range cfg.ThemeSources {
		if sources[source.Name] {
			return uierrors.NewValidationError(fmt.Sprintf("theme_sources[%d].name", i), fmt.Sprintf("duplicate source name %q", source.Name), nil)
		}
		sources[source.Name] = true
	}

	if cfg.Theme != "" && len(cfg.ThemeSources) == 0 && !themes[cfg.Theme] {
		return uierrors.NewValidationError("theme", fmt.Sprintf("unknown theme %q", cfg.Theme), nil)
	}

	return nil
}

// ValidateTheme validates a single theme definition.
func ValidateTheme(def *ThemeDefinition) error {
	if def == nil {
		return uierrors.NewValidationError("theme", "theme definition is nil", nil)
	}
	if err := validatorInstance().Struct(def); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidatePage performs schema validation on a page and checks that each
// component only sets the fields its kind understands.
func ValidatePage(page *Page) error {
	if page == nil {
		return uierrors.NewValidationError("page", "page is nil", nil)
	}
	if err := validatorInstance().Struct(page); err != nil {
		return convertValidationError(err)
	}

	ids := make(map[string]bool)
	for i, spec := range page.Components {
		if err := validateComponent("components", i, spec, ids); err != nil {
			return err
		}
	}
	return nil
}

func validateComponent(prefix string, index int, spec ComponentSpec, ids map[string]bool) error {
	field := func(name string) string { return fieldForComponent(prefix, index, name) }

	if spec.ID != "" {
		if ids[spec.ID] {
			return uierrors.NewValidationError(field("id"), fmt.Sprintf("duplicate component id %q", spec.ID), nil)
		}
		ids[spec.ID] = true
	}

	if spec.Variant != "" && spec.Kind != KindButton {
		return uierrors.NewValidationError(field("variant"), "variant only applies to buttons", nil)
	}
	if spec.Size != "" && spec.Kind != KindButton && spec.Kind != KindDialog {
		return uierrors.NewValidationError(field("size"), "size only applies to buttons and dialogs", nil)
	}
	if spec.Href != "" && spec.Kind != KindButton {
		return uierrors.NewValidationError(field("href"), "href only applies to buttons", nil)
	}
	if len(spec.Footer) > 0 && spec.Kind != KindDialog {
		return uierrors.NewValidationError(field("footer"), "footer only applies to dialogs", nil)
	}
	if len(spec.Groups) > 0 && spec.Kind != KindCommand {
		return uierrors.NewValidationError(field("groups"), "groups only applies to command palettes", nil)
	}

	switch spec.Kind {
	case KindButton:
		if spec.Label == "" {
			return uierrors.NewValidationError(field("label"), "label is required", nil)
		}
	case KindCommand:
		if len(spec.Groups) == 0 {
			return uierrors.NewValidationError(field("groups"), "at least one group is required", nil)
		}
	case KindDialog:
		for j, child := range spec.Footer {
			if child.Kind != KindButton {
				return uierrors.NewValidationError(fieldForComponent(field("footer"), j, "kind"), "dialog footers hold buttons only", nil)
			}
			if err := validateComponent(field("footer"), j, child, ids); err != nil {
				return err
			}
		}
	}

	return nil
}
