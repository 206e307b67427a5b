// Command gen writes the logged.gen.go tag tables of a package directory:
//
//	go run ./cmd/gen --root ./service
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iocgo/eventproxy/cobra"
	"github.com/iocgo/eventproxy/gen"
)

type generator struct {
	Root string `cobra:"root" short:"r" usage:"package directory to scan"`
	Log  string `cobra:"log" usage:"log level: all, debug, info, warn, error or close"`
}

func (g *generator) Execute(*cobra.Command, []string) error {
	root, err := filepath.Abs(g.Root)
	if err != nil {
		return err
	}

	gen.Process(root, level(g.Log))
	return nil
}

func level(name string) string {
	switch name {
	case "all", "debug", "info", "warn":
		return "w"
	case "close":
		return "f"
	default:
		return "e"
	}
}

func main() {
	g := &generator{Root: ".", Log: "error"}
	cmd := cobra.ICobraWrapper(g, `{
		"Use": "gen",
		"Short": "Generate the proxy tag tables of @Logged() methods",
		"RunE": "Execute"
	}`).Command()

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Fatal error:", err)
		os.Exit(1)
	}
}
