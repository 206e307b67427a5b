package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	sdk "github.com/iocgo/eventproxy"
	"github.com/iocgo/eventproxy/cobra"
	cscan "github.com/iocgo/eventproxy/cobra/scan"
	"github.com/iocgo/eventproxy/errors"
	"github.com/iocgo/eventproxy/inited"
	"github.com/iocgo/eventproxy/scan"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Fatal error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) (err error) {
	ctx, stop := inited.Initialized(context.Background())
	defer func() { err = stderrors.Join(err, stop()) }()

	container := sdk.NewContainer()
	inited.AddExited(func(context.Context) error {
		return container.Stop()
	})

	ectx := errors.New(nil)
	defer ectx.Catch(&err)

	errors.Try(ectx, func() error { return scan.Injects(container) })
	sdk.ProvideBean[cobra.ICobra](container, cscan.RootBean, func() (cobra.ICobra, error) {
		return newRootCommand(ctx, container, args, stdout), nil
	})
	errors.Try(ectx, func() error { return container.Run() })
	return
}
