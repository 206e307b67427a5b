// Package domain holds the registration value types. Participants compare by
// value; an Event only changes through a RegistrationService.
package domain

// Participant is identified by its full name and email together.
type Participant struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
}

func (p Participant) String() string {
	return p.FullName + " <" + p.Email + ">"
}
