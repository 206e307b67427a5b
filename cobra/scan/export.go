// Package scan wires the root command into the container: the command is
// executed by an Initializer once every other one has run.
package scan

import (
	sdk "github.com/iocgo/eventproxy"
	"github.com/iocgo/eventproxy/cobra"
)

const RootBean = "rootCobra"

func Injects(container *sdk.Container) (_ error) {
	sdk.ProvideBean[sdk.Initializer](container, "cobraInitializer", func() (i sdk.Initializer, err error) {
		i = CobraInitialized()
		return
	})
	return
}

// CobraInitialized executes the ICobra bean named rootCobra.
func CobraInitialized() sdk.Initializer {
	return sdk.InitializedWrapper(1000, func(container *sdk.Container) (err error) {
		c, err := sdk.InvokeBean[cobra.ICobra](container, RootBean)
		if err != nil {
			return
		}
		return c.Command().Execute()
	})
}
