package coffee

import "fmt"

// SyntaxError reports malformed source with its position. File is always the
// path the loader supplied for the compilation.
type SyntaxError struct {
	File    string
	Line    int
	Col     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Message)
}
