package service

import (
	"github.com/iocgo/eventproxy/domain"
)

// AdvancedRegistrationService has its Register tagged for proxy.Annotated.
// The tag table lives in logged.gen.go, regenerate it with cmd/gen after
// moving a @Logged marker.
type AdvancedRegistrationService struct {
	SimpleRegistrationService
}

var _ RegistrationService = (*AdvancedRegistrationService)(nil)

func NewAdvancedRegistrationService() *AdvancedRegistrationService {
	return &AdvancedRegistrationService{}
}

// @Logged()
func (s *AdvancedRegistrationService) Register(participant domain.Participant, event *domain.Event) bool {
	return s.SimpleRegistrationService.Register(participant, event)
}

func (s *AdvancedRegistrationService) IsRegistered(participant domain.Participant, event *domain.Event) bool {
	for _, p := range event.Participants {
		if p == participant {
			return true
		}
	}
	return false
}
