package annotation

import (
	"fmt"
	"go/ast"
)

// Logged marks a method for proxy.Annotated:
//
//	// @Logged()
//	func (s *Service) Register(...) bool
type Logged struct {
}

var _ M = (*Logged)(nil)

func (Logged) Name() string {
	return "logged"
}

func (Logged) Match(node ast.Node) error {
	fd, ok := node.(*ast.FuncDecl)
	if !ok {
		return fmt.Errorf("the position of the `@Logged` annotation is incorrect, needed is method (ast.FuncDecl)")
	}

	if n, _ := MethodReceiver(fd); n == "" {
		return fmt.Errorf("`@Logged` expected method receiver, but got empty for %s", fd.Name.Name)
	}
	return nil
}

func (Logged) As() (_ M) {
	return
}
