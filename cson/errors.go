package cson

import "fmt"

// SyntaxError reports malformed input with its position in the source file.
type SyntaxError struct {
	File    string
	Line    int
	Col     int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Message)
}
