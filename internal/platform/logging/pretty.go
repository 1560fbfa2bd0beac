package logging

import (
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DefaultPrettyWidth is the widest single-line rendering kept compact.
const DefaultPrettyWidth = 88

var prettyConfig = spew.ConfigState{
	Indent:                  "    ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Pretty renders a non-string value for an extra block. Values whose compact
// form fits in width stay on one line; larger values are dumped one element
// per line with four-space indentation.
func Pretty(v any, width int) string {
	if s, ok := v.(string); ok {
		return s
	}
	if width <= 0 {
		width = DefaultPrettyWidth
	}

	compact := prettyConfig.Sprintf("%+v", v)
	if len(compact) <= width && !strings.Contains(compact, "\n") {
		return compact
	}
	return strings.TrimRight(prettyConfig.Sdump(v), "\n")
}
