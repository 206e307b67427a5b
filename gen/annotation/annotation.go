package annotation

import (
	"go/ast"
)

// M is implemented by every annotation. As returns the annotation this one
// is an alias of, or nil.
type M interface {
	Name() string
	Match(node ast.Node) error
	As() M
}

// MethodReceiver returns the receiver type name of decl and whether it is a
// pointer receiver. Functions return "".
func MethodReceiver(decl *ast.FuncDecl) (name string, pointer bool) {
	if decl.Recv == nil {
		return
	}

	for _, v := range decl.Recv.List {
		expr := v.Type
		if star, ok := expr.(*ast.StarExpr); ok {
			pointer = true
			expr = star.X
		}

		switch rv := expr.(type) {
		case *ast.Ident:
			return rv.Name, pointer
		case *ast.IndexExpr:
			if id, ok := rv.X.(*ast.Ident); ok {
				return id.Name, pointer
			}
		}
	}
	return "", false
}
