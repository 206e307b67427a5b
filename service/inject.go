package service

import (
	sdk "github.com/iocgo/eventproxy"
)

const (
	SimpleBean   = "simpleRegistrationService"
	AdvancedBean = "advancedRegistrationService"
)

// Injects registers the registration services. Both are resolved as
// RegistrationService so a handler bound with sdk.Intercept applies to them.
func Injects(container *sdk.Container) error {
	sdk.ProvideBean[RegistrationService](container, SimpleBean, func() (RegistrationService, error) {
		return NewSimpleRegistrationService(), nil
	})
	sdk.ProvideBean[RegistrationService](container, AdvancedBean, func() (RegistrationService, error) {
		return NewAdvancedRegistrationService(), nil
	})
	return nil
}
