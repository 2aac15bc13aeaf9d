package coffee

type Program struct {
	Body []Stmt
}

type Stmt interface{ stmtNode() }

type ExprStmt struct {
	X Expr
}

type ReturnStmt struct {
	X Expr // nil for a bare return
}

type IfStmt struct {
	Cond Expr
	Then *Block
	Else *Block // nil when absent
}

type Block struct {
	Body []Stmt
}

func (*ExprStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode() {}
func (*IfStmt) stmtNode()     {}

type Expr interface{ exprNode() }

type Ident struct {
	Name string
}

type NumberLit struct {
	Text string
}

// StringLit carries the literal verbatim, quotes included.
type StringLit struct {
	Text string
}

type BoolLit struct {
	Value bool
}

type NullLit struct{}

type UndefinedLit struct{}

type ArrayLit struct {
	Elems []Expr
}

type Prop struct {
	Key   string
	Value Expr
}

type ObjectLit struct {
	Props []Prop
}

type FuncLit struct {
	Params []string
	Body   *Block
}

type AssignExpr struct {
	Target Expr // *Ident or *MemberExpr
	Value  Expr
}

type BinaryExpr struct {
	Op string
	L  Expr
	R  Expr
}

type UnaryExpr struct {
	Op string
	X  Expr
}

type CallExpr struct {
	Fn   Expr
	Args []Expr
}

type MemberExpr struct {
	X    Expr
	Name string
}

func (*Ident) exprNode()        {}
func (*NumberLit) exprNode()    {}
func (*StringLit) exprNode()    {}
func (*BoolLit) exprNode()      {}
func (*NullLit) exprNode()      {}
func (*UndefinedLit) exprNode() {}
func (*ArrayLit) exprNode()     {}
func (*ObjectLit) exprNode()    {}
func (*FuncLit) exprNode()      {}
func (*AssignExpr) exprNode()   {}
func (*BinaryExpr) exprNode()   {}
func (*UnaryExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*MemberExpr) exprNode()   {}
