// Package factory generates synthetic participants for demos and tests.
package factory

import (
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/iocgo/eventproxy/domain"
)

type ParticipantFactory struct {
	faker *gofakeit.Faker
}

// New returns a factory whose output is fully determined by seed. A zero seed
// picks a random one.
func New(seed uint64) *ParticipantFactory {
	return &ParticipantFactory{faker: gofakeit.New(seed)}
}

func (f *ParticipantFactory) Create() domain.Participant {
	firstName := f.faker.FirstName()
	lastName := f.faker.LastName()
	return domain.Participant{
		FullName: fmt.Sprintf("%s %s", firstName, lastName),
		Email:    fmt.Sprintf("%s_%s@test.com", emailPart(firstName), emailPart(lastName)),
	}
}

func (f *ParticipantFactory) CreateN(howMany int) []domain.Participant {
	participants := make([]domain.Participant, 0, max(howMany, 0))
	for i := 0; i < howMany; i++ {
		participants = append(participants, f.Create())
	}
	return participants
}

func emailPart(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
