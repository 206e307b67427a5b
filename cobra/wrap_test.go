package cobra

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type greet struct {
	Name    string   `cobra:"name" short:"n" usage:"who to greet"`
	Times   int      `cobra:"times"`
	Loud    bool     `cobra:"loud,per"`
	Tags    []string `cobra:"tags"`

	ran bool
}

func (g *greet) Greet(cmd *Command, _ []string) error {
	g.ran = true
	if g.Times < 0 {
		return fmt.Errorf("times must be positive")
	}
	for range g.Times {
		cmd.Printf("hello %s\n", g.Name)
	}
	return nil
}

func TestICobraWrapper(t *testing.T) {
	t.Run("should bind texts, flags and RunE", func(t *testing.T) {
		req := require.New(t)
		g := &greet{Name: "world", Times: 1}
		cmd := ICobraWrapper(g, `{"Use": "greet", "Short": "Say hello", "RunE": "Greet"}`).Command()

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"-n", "gopher", "--times", "2", "--loud", "--tags", "a,b"})

		req.NoError(cmd.Execute())
		req.Equal("greet", cmd.Use)
		req.Equal("Say hello", cmd.Short)
		req.True(g.ran)
		req.True(g.Loud)
		req.Equal([]string{"a", "b"}, g.Tags)
		req.Equal("hello gopher\nhello gopher\n", out.String())
		req.NotNil(cmd.PersistentFlags().Lookup("loud"))
		req.Nil(cmd.Flags().Lookup("ran"))
	})

	t.Run("should keep field values as defaults", func(t *testing.T) {
		req := require.New(t)
		cmd := ICobraWrapper(&greet{Name: "world"}, `{"Use": "greet"}`).Command()

		req.Equal("world", cmd.Flags().Lookup("name").DefValue)
		req.Equal("0", cmd.Flags().Lookup("times").DefValue)
	})

	t.Run("should return the RunE error", func(t *testing.T) {
		req := require.New(t)
		cmd := ICobraWrapper(&greet{Times: -1}, `{"Use": "greet", "RunE": "Greet"}`).Command()
		cmd.SetArgs([]string{})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		req.EqualError(cmd.Execute(), "times must be positive")
	})

	t.Run("should panic on an unknown method", func(t *testing.T) {
		req := require.New(t)
		req.Panics(func() {
			ICobraWrapper(&greet{}, `{"RunE": "Missing"}`)
		})
	})
}
