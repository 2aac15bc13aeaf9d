package coffee

import "fmt"

type tokenKind int

const (
	tkEOF tokenKind = iota
	tkTerminator
	tkIndent
	tkOutdent
	tkIdent
	tkNumber
	tkString
	tkBool
	tkNull
	tkUndefined
	tkIf
	tkElse
	tkThen
	tkReturn
	tkArrow
	tkOp
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

func describe(t token) string {
	switch t.kind {
	case tkEOF:
		return "end of input"
	case tkTerminator:
		return "end of line"
	case tkIndent:
		return "indent"
	case tkOutdent:
		return "outdent"
	case tkIdent:
		return fmt.Sprintf("identifier %q", t.text)
	case tkNumber:
		return fmt.Sprintf("number %s", t.text)
	case tkString:
		return "string"
	case tkBool, tkNull, tkUndefined:
		return fmt.Sprintf("%q", t.text)
	case tkIf:
		return "'if'"
	case tkElse:
		return "'else'"
	case tkThen:
		return "'then'"
	case tkReturn:
		return "'return'"
	case tkArrow:
		return "'->'"
	case tkOp:
		return fmt.Sprintf("%q", t.text)
	}
	return "token"
}
