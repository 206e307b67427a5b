package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iocgo/eventproxy/errors"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should fall back to defaults without a config file", func(t *testing.T) {
		req := require.New(t)
		t.Chdir(t.TempDir())

		env, err := New("")
		req.NoError(err)

		s, err := env.Settings()
		req.NoError(err)
		req.Equal("Java Workshop", s.Event.Name)
		req.Equal(10, s.Participants.Count)
		req.Equal("dynamic", s.Proxy.Mode)
		req.Equal("INFO", s.Log.Level)
		req.Empty(s.Otel.Endpoint)
	})

	t.Run("should let the environment win over the file", func(t *testing.T) {
		req := require.New(t)
		path := filepath.Join(t.TempDir(), "eventproxy.yaml")
		req.NoError(os.WriteFile(path, []byte("event:\n  name: Go Meetup\nparticipants:\n  count: 4\n  seed: 9\n"), 0o600))
		t.Setenv("EVENTPROXY_PARTICIPANTS_COUNT", "3")
		t.Setenv("EVENTPROXY_LOG_LEVEL", "debug")

		env, err := New(path)
		req.NoError(err)
		req.Equal(path, env.Path())

		s, err := env.Settings()
		req.NoError(err)
		req.Equal("Go Meetup", s.Event.Name)
		req.Equal(3, s.Participants.Count)
		req.Equal(uint64(9), s.Participants.Seed)
		req.Equal("DEBUG", s.Log.Level)
	})

	t.Run("should fail on an explicit missing file", func(t *testing.T) {
		req := require.New(t)
		_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
		req.Error(err)
	})
}

func TestSettings_Validation(t *testing.T) {
	cases := map[string]struct {
		key, value string
	}{
		"should reject an empty participant count": {"EVENTPROXY_PARTICIPANTS_COUNT", "0"},
		"should reject an unknown proxy mode":      {"EVENTPROXY_PROXY_MODE", "cglib"},
		"should reject a malformed endpoint":       {"EVENTPROXY_OTEL_ENDPOINT", "not a url"},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			t.Chdir(t.TempDir())
			t.Setenv(c.key, c.value)

			env, err := New("")
			req.NoError(err)

			_, err = env.Settings()
			req.ErrorIs(err, errors.ErrInvalidConfig)
		})
	}
}
