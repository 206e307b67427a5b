package service

import (
	"fmt"
	"io"
	"time"

	"github.com/iocgo/eventproxy/domain"
)

// LoggingRegistrationService is the hand-written version of what
// proxy.Timed does for any contract: it times Register only.
type LoggingRegistrationService struct {
	delegate RegistrationService
	w        io.Writer
}

var _ RegistrationService = (*LoggingRegistrationService)(nil)

func NewLoggingRegistrationService(delegate RegistrationService, w io.Writer) *LoggingRegistrationService {
	return &LoggingRegistrationService{delegate: delegate, w: w}
}

func (s *LoggingRegistrationService) Register(participant domain.Participant, event *domain.Event) bool {
	start := time.Now()
	response := s.delegate.Register(participant, event)
	_, _ = fmt.Fprintf(s.w, "register() running time: %d µs\n", time.Since(start).Microseconds())
	return response
}

func (s *LoggingRegistrationService) IsRegistered(participant domain.Participant, event *domain.Event) bool {
	return s.delegate.IsRegistered(participant, event)
}
