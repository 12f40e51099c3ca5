package reflection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse matches every ParseError with errors.Is
var ErrParse = errors.New("source could not be parsed")

// Diagnostic describes a syntax problem reported by the parser
type Diagnostic struct {
	Line    int
	Column  int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Column, d.Message)
}

// ParseError is returned when the source is rejected as syntactically invalid
type ParseError struct {
	Path        string
	Diagnostics []Diagnostic
	Err         error
}

func (e *ParseError) Error() string {
	builder := strings.Builder{}
	if e.Path != "" {
		builder.WriteString(fmt.Sprintf("file %q could not be parsed", e.Path))
	} else {
		builder.WriteString("the source could not be parsed")
	}
	if len(e.Diagnostics) > 0 {
		builder.WriteString(": ")
		builder.WriteString(e.Diagnostics[0].String())
		if extra := len(e.Diagnostics) - 1; extra > 0 {
			builder.WriteString(fmt.Sprintf(" (and %d more)", extra))
		}
	}
	if e.Err != nil {
		builder.WriteString(": ")
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
