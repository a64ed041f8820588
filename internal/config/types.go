package config

// Config represents a uikit.yaml project file.
type Config struct {
	Theme        string            `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Log          LogSettings       `yaml:"log,omitempty"`
	Tokens       map[string]string `yaml:"tokens,omitempty" validate:"omitempty,dive,keys,token_name,endkeys"`
	Themes       []ThemeDefinition `yaml:"themes,omitempty" validate:"omitempty,dive"`
	ThemeSources []ThemeSource     `yaml:"theme_sources,omitempty" validate:"omitempty,dive"`
}

// LogSettings controls the logger built by the CLI.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// ThemeDefinition describes a theme derived from one of the built-in themes
// by replacing some of its colour tokens. Theme files fetched from a source
// repository use the same shape.
type ThemeDefinition struct {
	Name   string            `yaml:"name" validate:"required,theme_name"`
	Base   string            `yaml:"base,omitempty" validate:"omitempty,oneof=light dark"`
	Colors map[string]string `yaml:"colors,omitempty" validate:"omitempty,dive,keys,color_token,endkeys,required,hexcolor"`
}

// ThemeSource is a git repository holding theme definition files.
type ThemeSource struct {
	Name string `yaml:"name" validate:"required,theme_name"`
	URL  string `yaml:"url" validate:"required,git_url"`
	Ref  string `yaml:"ref,omitempty"`
	Path string `yaml:"path,omitempty" validate:"omitempty,source_path"`
}

// Page represents a page.yaml file: a titled list of components rendered
// into one HTML document.
type Page struct {
	Title      string          `yaml:"title" validate:"required"`
	Theme      string          `yaml:"theme,omitempty" validate:"omitempty,theme_name"`
	Components []ComponentSpec `yaml:"components" validate:"required,min=1,dive"`
}

// Component kinds accepted in a page.
const (
	KindButton  = "button"
	KindInput   = "input"
	KindDialog  = "dialog"
	KindCommand = "command"
)

// ComponentSpec declares one component. Which fields apply depends on Kind.
type ComponentSpec struct {
	Kind     string `yaml:"kind" validate:"required,oneof=button input dialog command"`
	ID       string `yaml:"id,omitempty"`
	Class    string `yaml:"class,omitempty"`
	Label    string `yaml:"label,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`

	// Button
	Variant string `yaml:"variant,omitempty" validate:"omitempty,oneof=default secondary outline ghost"`
	Size    string `yaml:"size,omitempty" validate:"omitempty,oneof=sm md lg"`
	Href    string `yaml:"href,omitempty"`

	// Input
	Name         string `yaml:"name,omitempty"`
	Type         string `yaml:"type,omitempty" validate:"omitempty,oneof=text email password search tel url number"`
	Placeholder  string `yaml:"placeholder,omitempty"`
	Value        string `yaml:"value,omitempty"`
	Error        bool   `yaml:"error,omitempty"`
	ErrorMessage string `yaml:"error_message,omitempty"`

	// Dialog
	Title       string          `yaml:"title,omitempty"`
	Description string          `yaml:"description,omitempty"`
	Open        bool            `yaml:"open,omitempty"`
	ShowClose   *bool           `yaml:"show_close,omitempty"`
	Trigger     string          `yaml:"trigger,omitempty"`
	Body        string          `yaml:"body,omitempty"`
	Footer      []ComponentSpec `yaml:"footer,omitempty" validate:"omitempty,dive"`

	// Command
	Empty  string             `yaml:"empty,omitempty"`
	Groups []CommandGroupSpec `yaml:"groups,omitempty" validate:"omitempty,dive"`
}

// CommandGroupSpec is a headed group of command palette items.
type CommandGroupSpec struct {
	Heading string            `yaml:"heading,omitempty"`
	Items   []CommandItemSpec `yaml:"items" validate:"required,min=1,dive"`
}

// CommandItemSpec is one command palette item.
type CommandItemSpec struct {
	Label    string   `yaml:"label" validate:"required"`
	Value    string   `yaml:"value,omitempty"`
	Keywords []string `yaml:"keywords,omitempty"`
	Shortcut string   `yaml:"shortcut,omitempty"`
	Disabled bool     `yaml:"disabled,omitempty"`
}

// ShowCloseButton reports whether a dialog renders its close button.
func (c ComponentSpec) ShowCloseButton() bool {
	return c.ShowClose == nil || *c.ShowClose
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Theme: "light",
		Log:   LogSettings{Level: "info"},
	}
}
