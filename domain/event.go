package domain

import "fmt"

// Event keeps its participants in registration order. A nil slice is an
// event nobody registered to yet.
type Event struct {
	Name         string
	Participants []Participant
}

func NewEvent(name string) *Event {
	return &Event{Name: name}
}

func (e *Event) Len() int {
	return len(e.Participants)
}

func (e *Event) String() string {
	return fmt.Sprintf("%s (%d participants)", e.Name, e.Len())
}
