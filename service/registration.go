// Package service registers participants to events.
package service

import (
	"github.com/iocgo/eventproxy/domain"
	"github.com/samber/lo"
)

type RegistrationService interface {
	// Register adds participant to event unless an equal participant is
	// already there. It reports whether it added one.
	Register(participant domain.Participant, event *domain.Event) bool
	IsRegistered(participant domain.Participant, event *domain.Event) bool
}

// SimpleRegistrationService is not safe for concurrent registration on the
// same event; proxy it with proxy.Locked for that.
type SimpleRegistrationService struct{}

var _ RegistrationService = (*SimpleRegistrationService)(nil)

func NewSimpleRegistrationService() *SimpleRegistrationService {
	return &SimpleRegistrationService{}
}

func (s *SimpleRegistrationService) Register(participant domain.Participant, event *domain.Event) bool {
	if event.Participants == nil {
		event.Participants = make([]domain.Participant, 0)
	}

	if !lo.Contains(event.Participants, participant) {
		event.Participants = append(event.Participants, participant)
		return true
	}
	return false
}

func (s *SimpleRegistrationService) IsRegistered(participant domain.Participant, event *domain.Event) bool {
	return lo.Contains(event.Participants, participant)
}
