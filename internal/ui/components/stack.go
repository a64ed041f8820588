package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/uikit/internal/ui"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack is a terminal layout component that arranges children in a single
// direction.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Horizontal stacks
// split the available width evenly between children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Constraints.MaxWidth > 0 && len(s.children) > 0 {
		available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx = ctx.WithConstraints(WithMaxWidth(available / len(s.children)))
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := viewOf(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx, s.ClassOverride(), State{})
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = lipgloss.JoinHorizontal(lipgloss.Top, s.withGaps(views, strings.Repeat(" ", s.gap))...)
	} else {
		content = lipgloss.JoinVertical(s.align.ToLipglossPosition(), s.withGaps(views, strings.Repeat("\n", s.gap))...)
	}
	if ctx.Constraints.MaxWidth > 0 {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	return style.Render(content)
}

func (s *Stack) withGaps(views []string, spacer string) []string {
	if s.gap == 0 {
		return views
	}
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return result
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children in cells or rows.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets the cross axis alignment of a vertical stack.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithClass sets utility classes for the stack container.
func (s *Stack) WithClass(class string) *Stack {
	s.SetClass(class)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
