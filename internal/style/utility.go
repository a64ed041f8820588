package style

import (
	"sort"
	"strings"
)

// Declaration is one atomic style rule set by a utility class. Two
// declarations conflict when their Property keys are equal; modifiers such as
// "hover:" or "dark:" are part of the key, so "bg-primary" and
// "hover:bg-accent" never conflict.
type Declaration struct {
	Property string
	Value    string
}

// Declarations expands a utility class into the declarations it sets.
// Classes outside the known vocabulary expand to a single declaration keyed by
// the class itself, so they only ever conflict with exact duplicates.
func Declarations(class string) []Declaration {
	modifiers, base := splitModifiers(class)

	key := modifiers
	if strings.HasPrefix(base, "!") {
		key += "!"
		base = base[1:]
	}

	lookupBase := strings.TrimPrefix(base, "-")
	props, value := lookup(lookupBase)
	if len(props) == 0 {
		return []Declaration{{Property: key + "class:" + base, Value: base}}
	}

	decls := make([]Declaration, 0, len(props))
	for _, prop := range props {
		decls = append(decls, Declaration{Property: key + prop, Value: value})
	}
	return decls
}

// Split returns the modifiers of class in source order and its base
// utility: "dark:hover:bg-primary" gives ["dark", "hover"] and "bg-primary".
func Split(class string) ([]string, string) {
	parts := splitOutside(class, ':')
	return parts[:len(parts)-1], parts[len(parts)-1]
}

// Lookup returns the unmodified properties a base utility sets and its value.
// ok is false for classes outside the known vocabulary.
func Lookup(base string) (props []string, value string, ok bool) {
	props, value = lookup(strings.TrimPrefix(strings.TrimPrefix(base, "!"), "-"))
	return props, value, len(props) > 0
}

func splitOutside(s string, sep rune) []string {
	var parts []string
	depth := 0
	start := 0
	for i, r := range s {
		switch r {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// splitModifiers separates "hover:focus:bg-primary" into a normalised
// modifier key ("focus:hover:") and the base utility ("bg-primary"). Colons
// inside arbitrary values ("bg-[url(a:b)]") are not treated as separators.
func splitModifiers(class string) (string, string) {
	modifiers, base := Split(class)
	if len(modifiers) == 0 {
		return "", base
	}

	// Modifier order does not change which rule applies.
	sorted := append([]string(nil), modifiers...)
	sort.Strings(sorted)
	return strings.Join(sorted, ":") + ":", base
}

func lookup(base string) ([]string, string) {
	if props, ok := exactRules[base]; ok {
		return props, base
	}
	for _, r := range prefixRules {
		if !strings.HasPrefix(base, r.prefix) {
			continue
		}
		value := base[len(r.prefix):]
		if value == "" {
			continue
		}
		return r.props(value), value
	}
	return nil, ""
}

type prefixRule struct {
	prefix string
	props  func(value string) []string
}

func fixed(props ...string) func(string) []string {
	return func(string) []string { return props }
}

var (
	allSides      = []string{"top", "right", "bottom", "left"}
	sideSelectors = map[string][]string{
		"x": {"left", "right"},
		"y": {"top", "bottom"},
		"t": {"top"},
		"r": {"right"},
		"b": {"bottom"},
		"l": {"left"},
	}
	allCorners      = []string{"top-left", "top-right", "bottom-right", "bottom-left"}
	cornerSelectors = map[string][]string{
		"t":  {"top-left", "top-right"},
		"r":  {"top-right", "bottom-right"},
		"b":  {"bottom-right", "bottom-left"},
		"l":  {"top-left", "bottom-left"},
		"tl": {"top-left"},
		"tr": {"top-right"},
		"br": {"bottom-right"},
		"bl": {"bottom-left"},
	}
)

func sided(property string, sides []string, suffix string) []string {
	props := make([]string, 0, len(sides))
	for _, side := range sides {
		p := property + "-" + side
		if suffix != "" {
			p += "-" + suffix
		}
		props = append(props, p)
	}
	return props
}

func set(values ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

func in(values map[string]struct{}, v string) bool {
	_, ok := values[v]
	return ok
}

var (
	textSizes   = set("xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl", "7xl", "8xl", "9xl")
	textAligns  = set("left", "center", "right", "justify", "start", "end")
	textWraps   = set("wrap", "nowrap", "balance", "pretty")
	fontWeights = set("thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black")
	borderStyle = set("solid", "dashed", "dotted", "double", "hidden", "none")
	decorStyles = set("solid", "double", "dotted", "dashed", "wavy")
	bgSizes     = set("auto", "cover", "contain")
	bgPositions = set("bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top")
	bgRepeats   = set("repeat", "no-repeat", "repeat-x", "repeat-y", "repeat-round", "repeat-space")
	bgAttach    = set("fixed", "local", "scroll")
	shadowSizes = set("sm", "md", "lg", "xl", "2xl", "inner", "none")
	outlineKind = set("none", "dashed", "dotted", "double", "solid")
	flexDirs    = set("row", "row-reverse", "col", "col-reverse")
	flexWraps   = set("wrap", "wrap-reverse", "nowrap")
	objectFits  = set("contain", "cover", "fill", "none", "scale-down")
	alignments  = set("normal", "center", "start", "end", "between", "around", "evenly", "baseline", "stretch")
)

// isWidth reports whether a utility value is a line width ("2", "px",
// "[3px]") rather than a colour.
func isWidth(v string) bool {
	if v == "px" {
		return true
	}
	if isDigits(v) {
		return true
	}
	return isArbitraryLength(v)
}

func isDigits(v string) bool {
	if v == "" {
		return false
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// arbitrary returns the inner text of an arbitrary value such as "[600]".
func arbitrary(v string) (string, bool) {
	if !strings.HasPrefix(v, "[") || !strings.HasSuffix(v, "]") || len(v) < 2 {
		return "", false
	}
	return v[1 : len(v)-1], true
}

func isArbitraryImage(v string) bool {
	inner, ok := arbitrary(v)
	if !ok {
		return false
	}
	if strings.HasPrefix(inner, "image:") || strings.HasPrefix(inner, "url:") {
		return true
	}
	for _, fn := range []string{"url(", "linear-gradient(", "radial-gradient(", "conic-gradient(", "image-set("} {
		if strings.HasPrefix(inner, fn) {
			return true
		}
	}
	return false
}

func isArbitraryWeight(v string) bool {
	inner, ok := arbitrary(v)
	if !ok {
		return false
	}
	return isDigits(strings.TrimPrefix(inner, "weight:"))
}

func isArbitraryLength(v string) bool {
	if !strings.HasPrefix(v, "[") || !strings.HasSuffix(v, "]") {
		return false
	}
	inner := strings.TrimPrefix(strings.TrimPrefix(v[1:len(v)-1], "length:"), "-")
	for _, unit := range []string{"px", "rem", "em", "%", "vh", "vw", "ch"} {
		if strings.HasSuffix(inner, unit) {
			inner = strings.TrimSuffix(inner, unit)
			break
		}
	}
	inner = strings.Replace(inner, ".", "", 1)
	return isDigits(inner)
}

var exactRules = map[string][]string{
	"shadow":     {"box-shadow"},
	"rounded":    sided("border", allCorners, "radius"),
	"border":     sided("border", allSides, "width"),
	"border-x":   sided("border", sideSelectors["x"], "width"),
	"border-y":   sided("border", sideSelectors["y"], "width"),
	"border-t":   sided("border", sideSelectors["t"], "width"),
	"border-r":   sided("border", sideSelectors["r"], "width"),
	"border-b":   sided("border", sideSelectors["b"], "width"),
	"border-l":   sided("border", sideSelectors["l"], "width"),
	"ring":       {"ring-width"},
	"outline":    {"outline-style"},
	"transition": {"transition-property"},
	"grow":       {"flex-grow"},
	"shrink":     {"flex-shrink"},
	"resize":     {"resize"},
	"truncate":   {"overflow-x", "overflow-y", "text-overflow", "white-space"},
	"sr-only":    {"sr-only"},

	"space-x-reverse": {"space-x-reverse"},
	"space-y-reverse": {"space-y-reverse"},
}

func init() {
	for _, v := range []string{"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table", "grid", "inline-grid", "contents", "list-item", "hidden", "flow-root"} {
		exactRules[v] = []string{"display"}
	}
	for _, v := range []string{"static", "fixed", "absolute", "relative", "sticky"} {
		exactRules[v] = []string{"position"}
	}
	for _, v := range []string{"visible", "invisible", "collapse"} {
		exactRules[v] = []string{"visibility"}
	}
	for _, v := range []string{"underline", "overline", "line-through", "no-underline"} {
		exactRules[v] = []string{"text-decoration-line"}
	}
	for _, v := range []string{"uppercase", "lowercase", "capitalize", "normal-case"} {
		exactRules[v] = []string{"text-transform"}
	}
	for _, v := range []string{"italic", "not-italic"} {
		exactRules[v] = []string{"font-style"}
	}
	for _, v := range []string{"antialiased", "subpixel-antialiased"} {
		exactRules[v] = []string{"font-smoothing"}
	}
	for _, side := range []string{"t", "r", "b", "l", "tl", "tr", "br", "bl"} {
		exactRules["rounded-"+side] = sided("border", cornerSelectors[side], "radius")
	}
	exactRules["not-sr-only"] = exactRules["sr-only"]
}

var prefixRules = buildPrefixRules()

func buildPrefixRules() []prefixRule {
	var rules []prefixRule

	// Sizing; the longer prefixes must come before "w-" / "h-" / "m-".
	rules = append(rules,
		prefixRule{"min-w-", fixed("min-width")},
		prefixRule{"max-w-", fixed("max-width")},
		prefixRule{"min-h-", fixed("min-height")},
		prefixRule{"max-h-", fixed("max-height")},
		prefixRule{"size-", fixed("width", "height")},
		prefixRule{"w-", fixed("width")},
		prefixRule{"h-", fixed("height")},
	)

	for _, box := range []struct{ short, property string }{{"p", "padding"}, {"m", "margin"}} {
		for _, sel := range []string{"x", "y", "t", "r", "b", "l"} {
			rules = append(rules, prefixRule{box.short + sel + "-", fixed(sided(box.property, sideSelectors[sel], "")...)})
		}
		rules = append(rules, prefixRule{box.short + "-", fixed(sided(box.property, allSides, "")...)})
	}

	rules = append(rules,
		prefixRule{"gap-x-", fixed("column-gap")},
		prefixRule{"gap-y-", fixed("row-gap")},
		prefixRule{"gap-", fixed("row-gap", "column-gap")},
		prefixRule{"space-x-", fixed("space-x")},
		prefixRule{"space-y-", fixed("space-y")},
		prefixRule{"inset-x-", fixed("left", "right")},
		prefixRule{"inset-y-", fixed("top", "bottom")},
		prefixRule{"inset-", fixed(allSides...)},
		prefixRule{"top-", fixed("top")},
		prefixRule{"right-", fixed("right")},
		prefixRule{"bottom-", fixed("bottom")},
		prefixRule{"left-", fixed("left")},
		prefixRule{"z-", fixed("z-index")},
		prefixRule{"opacity-", fixed("opacity")},
		prefixRule{"order-", fixed("order")},
		prefixRule{"line-clamp-", fixed("line-clamp")},
	)

	rules = append(rules,
		prefixRule{"text-", func(v string) []string {
			switch {
			case in(textSizes, v):
				return []string{"font-size"}
			case in(textAligns, v):
				return []string{"text-align"}
			case in(textWraps, v):
				return []string{"text-wrap"}
			case v == "ellipsis" || v == "clip":
				return []string{"text-overflow"}
			case isArbitraryLength(v):
				return []string{"font-size"}
			default:
				return []string{"color"}
			}
		}},
		prefixRule{"font-", func(v string) []string {
			if in(fontWeights, v) || isArbitraryWeight(v) {
				return []string{"font-weight"}
			}
			return []string{"font-family"}
		}},
		prefixRule{"leading-", fixed("line-height")},
		prefixRule{"tracking-", fixed("letter-spacing")},
		prefixRule{"whitespace-", fixed("white-space")},
		prefixRule{"break-", fixed("word-break")},
		prefixRule{"align-", fixed("vertical-align")},
		prefixRule{"list-", fixed("list-style-type")},
		prefixRule{"underline-offset-", fixed("text-underline-offset")},
		prefixRule{"decoration-", func(v string) []string {
			switch {
			case isWidth(v) || v == "auto" || v == "from-font":
				return []string{"text-decoration-thickness"}
			case in(decorStyles, v):
				return []string{"text-decoration-style"}
			default:
				return []string{"text-decoration-color"}
			}
		}},
	)

	rules = append(rules, prefixRule{"bg-", func(v string) []string {
		switch {
		case in(bgSizes, v):
			return []string{"background-size"}
		case in(bgPositions, v):
			return []string{"background-position"}
		case in(bgRepeats, v):
			return []string{"background-repeat"}
		case in(bgAttach, v):
			return []string{"background-attachment"}
		case v == "none" || strings.HasPrefix(v, "gradient-") || isArbitraryImage(v):
			return []string{"background-image"}
		default:
			return []string{"background-color"}
		}
	}})

	for _, sel := range []string{"x", "y", "t", "r", "b", "l"} {
		sides := sideSelectors[sel]
		rules = append(rules, prefixRule{"border-" + sel + "-", func(v string) []string {
			if isWidth(v) {
				return sided("border", sides, "width")
			}
			return sided("border", sides, "color")
		}})
	}
	rules = append(rules, prefixRule{"border-", func(v string) []string {
		switch {
		case in(borderStyle, v):
			return []string{"border-style"}
		case v == "collapse" || v == "separate":
			return []string{"border-collapse"}
		case isWidth(v):
			return sided("border", allSides, "width")
		default:
			return sided("border", allSides, "color")
		}
	}})

	for _, sel := range []string{"tl", "tr", "br", "bl", "t", "r", "b", "l"} {
		rules = append(rules, prefixRule{"rounded-" + sel + "-", fixed(sided("border", cornerSelectors[sel], "radius")...)})
	}
	rules = append(rules, prefixRule{"rounded-", fixed(sided("border", allCorners, "radius")...)})

	rules = append(rules,
		prefixRule{"shadow-", func(v string) []string {
			if in(shadowSizes, v) {
				return []string{"box-shadow"}
			}
			return []string{"box-shadow-color"}
		}},
		prefixRule{"ring-offset-", func(v string) []string {
			if isWidth(v) {
				return []string{"ring-offset-width"}
			}
			return []string{"ring-offset-color"}
		}},
		prefixRule{"ring-", func(v string) []string {
			if isWidth(v) || v == "inset" {
				return []string{"ring-width"}
			}
			return []string{"ring-color"}
		}},
		prefixRule{"outline-offset-", fixed("outline-offset")},
		prefixRule{"outline-", func(v string) []string {
			switch {
			case in(outlineKind, v):
				return []string{"outline-style"}
			case isWidth(v):
				return []string{"outline-width"}
			default:
				return []string{"outline-color"}
			}
		}},
	)

	rules = append(rules,
		prefixRule{"flex-", func(v string) []string {
			switch {
			case in(flexDirs, v):
				return []string{"flex-direction"}
			case in(flexWraps, v):
				return []string{"flex-wrap"}
			default:
				return []string{"flex"}
			}
		}},
		prefixRule{"grow-", fixed("flex-grow")},
		prefixRule{"shrink-", fixed("flex-shrink")},
		prefixRule{"basis-", fixed("flex-basis")},
		prefixRule{"items-", fixed("align-items")},
		prefixRule{"justify-items-", fixed("justify-items")},
		prefixRule{"justify-self-", fixed("justify-self")},
		prefixRule{"justify-", fixed("justify-content")},
		prefixRule{"self-", fixed("align-self")},
		prefixRule{"content-", func(v string) []string {
			if in(alignments, v) {
				return []string{"align-content"}
			}
			return []string{"content"}
		}},
		prefixRule{"place-items-", fixed("place-items")},
		prefixRule{"place-content-", fixed("place-content")},
		prefixRule{"grid-cols-", fixed("grid-template-columns")},
		prefixRule{"grid-rows-", fixed("grid-template-rows")},
		prefixRule{"col-span-", fixed("grid-column")},
		prefixRule{"row-span-", fixed("grid-row")},
		prefixRule{"overflow-x-", fixed("overflow-x")},
		prefixRule{"overflow-y-", fixed("overflow-y")},
		prefixRule{"overflow-", fixed("overflow-x", "overflow-y")},
		prefixRule{"object-", func(v string) []string {
			if in(objectFits, v) {
				return []string{"object-fit"}
			}
			return []string{"object-position"}
		}},
		prefixRule{"aspect-", fixed("aspect-ratio")},
		prefixRule{"box-decoration-", fixed("box-decoration-break")},
		prefixRule{"box-", fixed("box-sizing")},
	)

	rules = append(rules,
		prefixRule{"cursor-", fixed("cursor")},
		prefixRule{"pointer-events-", fixed("pointer-events")},
		prefixRule{"select-", fixed("user-select")},
		prefixRule{"appearance-", fixed("appearance")},
		prefixRule{"resize-", fixed("resize")},
		prefixRule{"transition-", fixed("transition-property")},
		prefixRule{"duration-", fixed("transition-duration")},
		prefixRule{"ease-", fixed("transition-timing-function")},
		prefixRule{"delay-", fixed("transition-delay")},
		prefixRule{"animate-", fixed("animation")},
		prefixRule{"scale-x-", fixed("scale-x")},
		prefixRule{"scale-y-", fixed("scale-y")},
		prefixRule{"scale-", fixed("scale-x", "scale-y")},
		prefixRule{"rotate-", fixed("rotate")},
		prefixRule{"translate-x-", fixed("translate-x")},
		prefixRule{"translate-y-", fixed("translate-y")},
		prefixRule{"skew-x-", fixed("skew-x")},
		prefixRule{"skew-y-", fixed("skew-y")},
		prefixRule{"origin-", fixed("transform-origin")},
		prefixRule{"fill-", fixed("fill")},
		prefixRule{"stroke-", func(v string) []string {
			if isDigits(v) {
				return []string{"stroke-width"}
			}
			return []string{"stroke"}
		}},
	)

	return rules
}
