package style

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
var nonInherited = map[string]string{
	"position":            "static",
	"float":               "none",
	"visibility":          "visible",
	"opacity":             "1",
	"color":               "default",
	"background-color":    "default",
	"border-top-color":    "default",
	"border-left-color":   "default",
	"border-right-color":  "default",
	"border-bottom-color": "default",
	"border-top-style":    "none",
	"border-left-style":   "none",
	"border-right-style":  "none",
	"border-bottom-style": "none",
}

var isDimension = map[string]string{
	"width":                      "auto",
	"height":                     "auto",
	"min-width":                  "none",
	"min-height":                 "none",
	"max-width":                  "none",
	"max-height":                 "none",
	"margin-top":                 "0",
	"margin-left":                "0",
	"margin-right":               "0",
	"margin-bottom":              "0",
	"padding-top":                "0",
	"padding-left":               "0",
	"padding-right":              "0",
	"padding-bottom":             "0",
	"border-top-width":           "medium",
	"border-left-width":          "medium",
	"border-right-width":         "medium",
	"border-bottom-width":        "medium",
	"border-top-left-radius":     "0",
	"border-top-right-radius":    "0",
	"border-bottom-left-radius":  "0",
	"border-bottom-right-radius": "0",
}

var textDefaults = map[string]string{
	"direction":      "ltr",
	"white-space":    "normal",
	"word-spacing":   "normal",
	"letter-spacing": "normal",
	"word-break":     "normal",
	"word-wrap":      "normal",
	"text-align":     "start",
	"font-style":     "normal",
	"font-weight":    "normal",
}

// DefaultProperty returns the user-agent default property for a given key,
// for a node of kind tag. Properties without a default (e.g., font-family)
// yield NullStyle.
func DefaultProperty(tag string, key string) Property {
	if key == "display" {
		return DisplayPropertyFor(tag)
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	if p, ok := textDefaults[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyFor returns the default `display` property for a node
// of kind tag. Tags are HTML element names; the empty tag denotes the
// document itself.
func DisplayPropertyFor(tag string) Property {
	switch tag {
	case "", "#document":
		return "block"
	case "head", "script", "style", "title", "meta":
		return "none"
	case "p":
		return "block-inline"
	case "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "it", "ol", "section",
		"ul", "li", "header", "footer", "nav", "main":
		return "block"
	case "i", "b", "em", "a", "span", "strong", "img":
		return "inline"
	}
	tracer().Debugf("unknown element kind %q will be set to display: block", tag)
	return "block"
}
