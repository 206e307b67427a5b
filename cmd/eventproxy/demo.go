package main

import (
	"context"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gookit/color"
	sdk "github.com/iocgo/eventproxy"
	"github.com/iocgo/eventproxy/cobra"
	"github.com/iocgo/eventproxy/domain"
	"github.com/iocgo/eventproxy/env"
	"github.com/iocgo/eventproxy/errors"
	"github.com/iocgo/eventproxy/factory"
	"github.com/iocgo/eventproxy/inited"
	"github.com/iocgo/eventproxy/proxy"
	"github.com/iocgo/eventproxy/service"
	"github.com/iocgo/eventproxy/telemetry"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/trace"
)

const (
	modeDynamic   = "dynamic"
	modeStatic    = "static"
	modeAnnotated = "annotated"
)

const rootConfig = `{
	"Use": "eventproxy",
	"Short": "Register synthetic participants through an intercepted service",
	"Long": "Registers --count fake participants to --event. Every call goes through a proxy that times it (dynamic), a hand-written decorator (static) or a proxy that only reports the @Logged methods (annotated).",
	"Example": "eventproxy -n 10 --event \"Java Workshop\" --mode annotated --summary",
	"RunE": "Execute"
}`

// demo holds the flag values; a flag left unset keeps the configured value.
type demo struct {
	Count   int    `cobra:"count" short:"n" usage:"number of participants to register"`
	Event   string `cobra:"event" usage:"name of the event"`
	Seed    uint64 `cobra:"seed" usage:"participant generator seed, 0 picks a random one"`
	Mode    string `cobra:"mode" usage:"proxy mode: dynamic, static or annotated"`
	Summary bool   `cobra:"summary" usage:"print the registered participants"`
	Config  string `cobra:"config,per" usage:"configuration file (default config.yaml)"`
	NoColor bool   `cobra:"no-color" usage:"disable colored output"`

	ctx       context.Context
	container *sdk.Container
}

func newRootCommand(ctx context.Context, container *sdk.Container, args []string, stdout io.Writer) cobra.ICobra {
	d := &demo{
		Count: 10,
		Event: "Java Workshop",
		Mode:  modeDynamic,

		ctx:       ctx,
		container: container,
	}

	c := cobra.ICobraWrapper(d, rootConfig)
	cmd := c.Command()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(stdout)
	cmd.SetArgs(append([]string{}, args...))
	return c
}

func (d *demo) Execute(cmd *cobra.Command, _ []string) (err error) {
	ectx := errors.New(nil)
	defer ectx.Catch(&err)

	environment := errors.Try1(ectx, d.environment)
	d.override(cmd, environment)
	settings := errors.Try1(ectx, environment.Settings)

	logger := logs.GetLoggerFromString(settings.Log.Level)
	logger.Debug("container ready", "beans", d.container.HealthLogger())

	tracer, shutdown := errors.Try2(ectx, func() (trace.Tracer, func(context.Context) error, error) {
		return telemetry.Setup(d.ctx, settings.Otel.Endpoint, settings.Otel.Service)
	})
	inited.AddExited(shutdown)

	w := d.writer(cmd.OutOrStdout())
	registration := errors.Try1(ectx, func() (service.RegistrationService, error) {
		return d.registrationService(settings.Proxy.Mode, tracer, w)
	})

	seed := settings.Participants.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	event := domain.NewEvent(settings.Event.Name)
	participants := factory.New(seed).CreateN(settings.Participants.Count)
	logger.Info("registering participants",
		"event", event.Name,
		"count", len(participants),
		"mode", settings.Proxy.Mode,
		"seed", seed)

	for _, participant := range participants {
		registration.Register(participant, event)
	}
	logger.Info("registration done", "event", event.String())

	if d.Summary {
		printSummary(cmd.OutOrStdout(), event)
	}
	return
}

func (d *demo) environment() (*env.Environment, error) {
	if d.Config != "" {
		return env.New(d.Config)
	}
	return sdk.InvokeBean[*env.Environment](d.container, env.Bean)
}

// override writes the flags given on the command line over the configuration.
func (d *demo) override(cmd *cobra.Command, environment *env.Environment) {
	flags := cmd.Flags()
	set := func(flag, key string, value any) {
		if flags.Changed(flag) {
			environment.Config.Set(key, value)
		}
	}

	set("count", "participants.count", d.Count)
	set("event", "event.name", d.Event)
	set("seed", "participants.seed", d.Seed)
	set("mode", "proxy.mode", d.Mode)
}

func (d *demo) registrationService(mode string, tracer trace.Tracer, w io.Writer) (service.RegistrationService, error) {
	traced := proxy.Traced[service.RegistrationService](tracer, "")
	switch mode {
	case modeStatic:
		delegate, err := sdk.InvokeBean[service.RegistrationService](d.container, service.SimpleBean)
		if err != nil {
			return nil, err
		}
		return service.NewLoggingRegistrationService(delegate, w), nil

	case modeAnnotated:
		delegate, err := sdk.InvokeBean[service.RegistrationService](d.container, service.AdvancedBean)
		if err != nil {
			return nil, err
		}
		return proxy.New(delegate, proxy.Chain(traced, proxy.Annotated(delegate, w)))

	default:
		sdk.Intercept(d.container, proxy.Chain(traced, proxy.Timed[service.RegistrationService](w)))
		return sdk.InvokeBean[service.RegistrationService](d.container, service.SimpleBean)
	}
}

func (d *demo) writer(w io.Writer) io.Writer {
	if d.NoColor {
		return w
	}
	return &consoleWriter{w, color.Cyan}
}

// consoleWriter colors each line written through it.
type consoleWriter struct {
	w     io.Writer
	style color.Color
}

func (c *consoleWriter) Write(p []byte) (int, error) {
	line, newline := strings.CutSuffix(string(p), "\n")
	text := c.style.Sprint(line)
	if newline {
		text += "\n"
	}

	if _, err := io.WriteString(c.w, text); err != nil {
		return 0, err
	}
	return len(p), nil
}

func printSummary(w io.Writer, event *domain.Event) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Full name", "Email"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCaption(true, event.String())
	table.AppendBulk(lo.Map(event.Participants, func(p domain.Participant, i int) []string {
		return []string{strconv.Itoa(i + 1), p.FullName, p.Email}
	}))
	table.Render()
}
