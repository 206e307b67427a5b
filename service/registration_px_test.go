package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/iocgo/eventproxy/domain"
	"github.com/iocgo/eventproxy/factory"
	"github.com/iocgo/eventproxy/mocks"
	"github.com/iocgo/eventproxy/proxy"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegistrationServiceProxy_Transparency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := require.New(t)
	mock := mocks.NewMockRegistrationService(ctrl)
	event := domain.NewEvent("Java Workshop")

	gomock.InOrder(
		mock.EXPECT().Register(tester, event).Return(true).Times(1),
		mock.EXPECT().IsRegistered(tester, event).Return(true).Times(1),
		mock.EXPECT().Register(tester, event).Return(false).Times(1),
	)

	var out bytes.Buffer
	svc, err := proxy.New[RegistrationService](mock, proxy.Timed[RegistrationService](&out))
	req.NoError(err)

	req.True(svc.Register(tester, event))
	req.True(svc.IsRegistered(tester, event))
	req.False(svc.Register(tester, event))
	req.Equal(3, strings.Count(out.String(), "running time"))
}

func TestRegistrationServiceProxy_JavaWorkshop(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	event := domain.NewEvent("Java Workshop")
	participants := factory.New(11).CreateN(10)

	svc, err := proxy.New[RegistrationService](NewSimpleRegistrationService(), proxy.Timed[RegistrationService](&out))
	req.NoError(err)

	for _, p := range participants {
		req.True(svc.Register(p, event))
	}

	req.Equal(participants, event.Participants)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	req.Len(lines, 10)
	for _, line := range lines {
		req.Regexp(`^register\(\) running time: \d+ µs$`, line)
	}
}

func TestRegistrationServiceProxy_Annotated(t *testing.T) {
	t.Run("should only log the tagged method", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		delegate := NewAdvancedRegistrationService()
		event := domain.NewEvent("Java Workshop")

		svc, err := proxy.New[RegistrationService](delegate, proxy.Annotated[RegistrationService](delegate, &out))
		req.NoError(err)

		req.True(svc.Register(tester, event))
		req.True(svc.IsRegistered(tester, event))
		req.Equal("The annotated proxy works for register because it has the annotation\n", out.String())
	})

	t.Run("should never log for an untagged implementation", func(t *testing.T) {
		req := require.New(t)
		var out bytes.Buffer
		delegate := NewSimpleRegistrationService()
		event := domain.NewEvent("Java Workshop")

		svc, err := proxy.New[RegistrationService](delegate, proxy.Annotated[RegistrationService](delegate, &out))
		req.NoError(err)

		req.True(svc.Register(tester, event))
		req.True(svc.IsRegistered(tester, event))
		req.Empty(out.String())
	})
}

func TestGeneratedTags(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"Register"}, proxy.TagsOf(NewAdvancedRegistrationService()).Names())
	req.Empty(proxy.TagsOf(NewSimpleRegistrationService()))
}
