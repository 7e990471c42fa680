package hocon

import "strconv"

// Origin describes where a parsed value came from. The parser builds one from
// the origin description carried by ParseOptions (or derives a description
// from the filename when none was set).
type Origin struct {
	Description string
	Line        int // 0 means no line information
}

// NewOrigin creates an Origin with no line information.
func NewOrigin(description string) *Origin {
	return &Origin{Description: description}
}

// WithLine returns a copy of the origin pointing at the given line.
func (o *Origin) WithLine(line int) *Origin {
	return &Origin{Description: o.Description, Line: line}
}

func (o *Origin) String() string {
	if o.Line > 0 {
		return o.Description + ": " + strconv.Itoa(o.Line)
	}
	return o.Description
}
