package service

import (
	"github.com/iocgo/eventproxy/domain"
	"github.com/iocgo/eventproxy/proxy"
)

type registrationServicePx struct {
	*proxy.Proxy[RegistrationService]
}

func init() {
	proxy.Reg[RegistrationService](NewRegistrationServiceProxy)
}

// NewRegistrationServiceProxy routes every call of proto through handler.
func NewRegistrationServiceProxy(proto RegistrationService, handler proxy.InvocationHandler[RegistrationService]) RegistrationService {
	return &registrationServicePx{proxy.Of(proto, handler)}
}

func (px *registrationServicePx) Register(participant domain.Participant, event *domain.Event) bool {
	ctx := px.Context("Register", []any{participant, event}, []any{false})
	ctx.Do = func() {
		ctx.Out[0] = ctx.Receiver.Register(ctx.In[0].(domain.Participant), ctx.In[1].(*domain.Event))
	}
	px.Invoke(ctx)
	return ctx.Out[0].(bool)
}

func (px *registrationServicePx) IsRegistered(participant domain.Participant, event *domain.Event) bool {
	ctx := px.Context("IsRegistered", []any{participant, event}, []any{false})
	ctx.Do = func() {
		ctx.Out[0] = ctx.Receiver.IsRegistered(ctx.In[0].(domain.Participant), ctx.In[1].(*domain.Event))
	}
	px.Invoke(ctx)
	return ctx.Out[0].(bool)
}
