// Package scan registers the beans of every package in one call, the
// wiring cmd/eventproxy starts from.
package scan

import (
	"errors"

	sdk "github.com/iocgo/eventproxy"
	cobra "github.com/iocgo/eventproxy/cobra/scan"
	"github.com/iocgo/eventproxy/env"
	"github.com/iocgo/eventproxy/service"
)

func Injects(container *sdk.Container) error {
	return errors.Join(
		env.Injects(container),
		service.Injects(container),
		cobra.Injects(container),
	)
}
