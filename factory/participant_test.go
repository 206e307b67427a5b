package factory

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var emailPattern = regexp.MustCompile(`^[^A-Z\s]+_[^A-Z\s]+@test\.com$`)

func TestParticipantFactory_Create(t *testing.T) {
	req := require.New(t)
	participant := New(42).Create()

	req.NotEmpty(participant.FullName)
	req.Contains(participant.FullName, " ")
	req.Regexp(emailPattern, participant.Email)
}

func TestParticipantFactory_CreateN(t *testing.T) {
	t.Run("should be reproducible for a given seed", func(t *testing.T) {
		req := require.New(t)
		req.Equal(New(7).CreateN(10), New(7).CreateN(10))
	})

	t.Run("should return the requested amount", func(t *testing.T) {
		req := require.New(t)
		req.Len(New(1).CreateN(10), 10)
		req.Empty(New(1).CreateN(0))
		req.Empty(New(1).CreateN(-3))
	})
}
