// Package gen turns @Logged() method comments into the proxy tag tables
// (logged.gen.go) read by the annotated proxy.
package gen

import (
	annotation "github.com/bincooo/go-annotation/pkg"
	gen "github.com/iocgo/eventproxy/gen/annotation"
	"github.com/iocgo/eventproxy/gen/internal/core"
)

// Alias registers an annotation resolving to Logged through its As method.
func Alias[T gen.M]() {
	core.Alias[T]()
}

func Process(root, logLv string) {
	annotation.Process(root, logLv)
}
