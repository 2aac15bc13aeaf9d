package coffee

import "strings"

type gen struct {
	buf strings.Builder
}

// generate emits JavaScript for a parsed program. Output is deterministic:
// identical input and options always produce identical bytes.
func generate(prog *Program, opts Options) string {
	g := &gen{}
	if opts.Header {
		g.buf.WriteString("// Generated by CoffeeScript\n")
	}
	ind := ""
	if !opts.Bare {
		g.buf.WriteString("(function() {\n")
		ind = "  "
	}
	if vars := collectVars(prog.Body, nil); len(vars) > 0 {
		g.buf.WriteString(ind + "var " + strings.Join(vars, ", ") + ";\n\n")
	}
	for i, stmt := range prog.Body {
		if i > 0 {
			g.buf.WriteString("\n")
		}
		g.stmt(stmt, ind)
	}
	if !opts.Bare {
		g.buf.WriteString("\n}).call(this);\n")
	}
	return g.buf.String()
}

func (g *gen) stmt(s Stmt, ind string) {
	switch s := s.(type) {
	case *ExprStmt:
		x := g.expr(s.X, ind)
		switch s.X.(type) {
		case *ObjectLit, *FuncLit:
			// a bare brace would start a block statement, a bare
			// function keyword a nameless declaration
			x = "(" + x + ")"
		}
		g.buf.WriteString(ind + x + ";\n")
	case *ReturnStmt:
		if s.X == nil {
			g.buf.WriteString(ind + "return;\n")
		} else {
			g.buf.WriteString(ind + "return " + g.expr(s.X, ind) + ";\n")
		}
	case *IfStmt:
		g.buf.WriteString(ind + "if (" + g.expr(s.Cond, ind) + ") {\n")
		for _, st := range s.Then.Body {
			g.stmt(st, ind+"  ")
		}
		if s.Else != nil {
			g.buf.WriteString(ind + "} else {\n")
			for _, st := range s.Else.Body {
				g.stmt(st, ind+"  ")
			}
		}
		g.buf.WriteString(ind + "}\n")
	}
}

func (g *gen) expr(e Expr, ind string) string {
	switch e := e.(type) {
	case *Ident:
		return e.Name
	case *NumberLit:
		return e.Text
	case *StringLit:
		return e.Text
	case *BoolLit:
		if e.Value {
			return "true"
		}
		return "false"
	case *NullLit:
		return "null"
	case *UndefinedLit:
		return "void 0"
	case *ArrayLit:
		parts := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			parts[i] = g.expr(el, ind)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ObjectLit:
		if len(e.Props) == 0 {
			return "{}"
		}
		parts := make([]string, len(e.Props))
		for i, pr := range e.Props {
			parts[i] = pr.Key + ": " + g.expr(pr.Value, ind)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *FuncLit:
		return g.funcLit(e, ind)
	case *AssignExpr:
		return g.expr(e.Target, ind) + " = " + g.expr(e.Value, ind)
	case *BinaryExpr:
		prec := binaryPrec[e.Op]
		return g.operand(e.L, prec, false, ind) + " " + e.Op + " " + g.operand(e.R, prec, true, ind)
	case *UnaryExpr:
		x := g.expr(e.X, ind)
		switch e.X.(type) {
		case *BinaryExpr, *AssignExpr, *FuncLit:
			x = "(" + x + ")"
		}
		return e.Op + x
	case *CallExpr:
		fn := g.expr(e.Fn, ind)
		switch e.Fn.(type) {
		case *FuncLit, *AssignExpr, *BinaryExpr, *UnaryExpr:
			fn = "(" + fn + ")"
		}
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = g.expr(a, ind)
		}
		return fn + "(" + strings.Join(args, ", ") + ")"
	case *MemberExpr:
		x := g.expr(e.X, ind)
		switch e.X.(type) {
		case *FuncLit, *AssignExpr, *BinaryExpr, *UnaryExpr, *NumberLit:
			x = "(" + x + ")"
		}
		return x + "." + e.Name
	}
	return ""
}

// operand parenthesizes a binary sub-expression when its precedence would
// otherwise change the meaning.
func (g *gen) operand(e Expr, parentPrec int, isRight bool, ind string) string {
	s := g.expr(e, ind)
	switch e := e.(type) {
	case *BinaryExpr:
		prec := binaryPrec[e.Op]
		if prec < parentPrec || (prec == parentPrec && isRight) {
			return "(" + s + ")"
		}
	case *AssignExpr, *FuncLit:
		return "(" + s + ")"
	}
	return s
}

func (g *gen) funcLit(fn *FuncLit, ind string) string {
	head := "function(" + strings.Join(fn.Params, ", ") + ") {"
	body := returnify(fn.Body)

	inner := &gen{}
	if vars := collectVars(body.Body, fn.Params); len(vars) > 0 {
		inner.buf.WriteString(ind + "  var " + strings.Join(vars, ", ") + ";\n")
	}
	for _, st := range body.Body {
		inner.stmt(st, ind+"  ")
	}
	if inner.buf.Len() == 0 {
		return head + "}"
	}
	return head + "\n" + inner.buf.String() + ind + "}"
}

// returnify rewrites the final statement of a function body into a return,
// descending through if/else branches the way CoffeeScript does.
func returnify(b *Block) *Block {
	if len(b.Body) == 0 {
		return b
	}
	out := make([]Stmt, len(b.Body))
	copy(out, b.Body)
	switch last := out[len(out)-1].(type) {
	case *ExprStmt:
		out[len(out)-1] = &ReturnStmt{X: last.X}
	case *IfStmt:
		rewritten := &IfStmt{Cond: last.Cond, Then: returnify(last.Then)}
		if last.Else != nil {
			rewritten.Else = returnify(last.Else)
		}
		out[len(out)-1] = rewritten
	}
	return &Block{Body: out}
}

// collectVars gathers identifiers assigned anywhere in the given statements,
// in first-assignment order, excluding params. Nested function literals are
// their own scope and are not descended into.
func collectVars(stmts []Stmt, params []string) []string {
	seen := make(map[string]bool, len(params))
	for _, name := range params {
		seen[name] = true
	}
	var names []string

	var walkExpr func(Expr)
	walkExpr = func(e Expr) {
		switch e := e.(type) {
		case *AssignExpr:
			if id, ok := e.Target.(*Ident); ok {
				if !seen[id.Name] {
					seen[id.Name] = true
					names = append(names, id.Name)
				}
			} else {
				walkExpr(e.Target)
			}
			walkExpr(e.Value)
		case *BinaryExpr:
			walkExpr(e.L)
			walkExpr(e.R)
		case *UnaryExpr:
			walkExpr(e.X)
		case *CallExpr:
			walkExpr(e.Fn)
			for _, a := range e.Args {
				walkExpr(a)
			}
		case *MemberExpr:
			walkExpr(e.X)
		case *ArrayLit:
			for _, el := range e.Elems {
				walkExpr(el)
			}
		case *ObjectLit:
			for _, pr := range e.Props {
				walkExpr(pr.Value)
			}
		}
	}

	var walkStmt func(Stmt)
	walkStmt = func(s Stmt) {
		switch s := s.(type) {
		case *ExprStmt:
			walkExpr(s.X)
		case *ReturnStmt:
			if s.X != nil {
				walkExpr(s.X)
			}
		case *IfStmt:
			walkExpr(s.Cond)
			for _, st := range s.Then.Body {
				walkStmt(st)
			}
			if s.Else != nil {
				for _, st := range s.Else.Body {
					walkStmt(st)
				}
			}
		}
	}

	for _, s := range stmts {
		walkStmt(s)
	}
	return names
}
