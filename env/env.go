package env

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	sdk "github.com/iocgo/eventproxy"
	"github.com/iocgo/eventproxy/errors"
	"github.com/spf13/viper"
)

const (
	Bean        = "environment"
	DefaultPath = "config.yaml"
	envPrefix   = "EVENTPROXY"
)

var validate = validator.New()

type Environment struct {
	Config *viper.Viper
	Args   []string

	Env  []string
	path string
}

type Settings struct {
	Event struct {
		Name string `mapstructure:"name" validate:"required"`
	} `mapstructure:"event"`
	Participants struct {
		Count int    `mapstructure:"count" validate:"gte=1"`
		Seed  uint64 `mapstructure:"seed"`
	} `mapstructure:"participants"`
	Proxy struct {
		Mode string `mapstructure:"mode" validate:"oneof=dynamic static annotated"`
	} `mapstructure:"proxy"`
	Log struct {
		Level string `mapstructure:"level" validate:"oneof=DEBUG INFO WARN ERROR"`
	} `mapstructure:"log"`
	Otel struct {
		Endpoint string `mapstructure:"endpoint" validate:"omitempty,url"`
		Service  string `mapstructure:"service" validate:"required"`
	} `mapstructure:"otel"`
}

// New loads path on top of the defaults, EVENTPROXY_* variables win over
// both (EVENTPROXY_EVENT_NAME for event.name). An empty path reads
// config.yaml when it exists.
func New(path string) (env *Environment, err error) {
	vip := viper.New()
	setDefaults(vip)
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	optional := path == ""
	if optional {
		path = DefaultPath
	}

	config, err := os.ReadFile(path)
	switch {
	case err == nil:
		vip.SetConfigType("yaml")
		if err = vip.ReadConfig(bytes.NewReader(config)); err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	case optional && os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	env = &Environment{
		path:   path,
		Env:    os.Environ(),
		Args:   os.Args[1:],
		Config: vip,
	}
	return env, nil
}

func (env *Environment) Path() string {
	return env.path
}

// Settings decodes and validates the configuration.
func (env *Environment) Settings() (s Settings, err error) {
	if err = env.Config.Unmarshal(&s); err != nil {
		return s, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}

	s.Log.Level = strings.ToUpper(s.Log.Level)
	if err = validate.Struct(s); err != nil {
		return s, fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}
	return s, nil
}

func Injects(container *sdk.Container) error {
	sdk.ProvideBean[*Environment](container, Bean, func() (*Environment, error) {
		return New("")
	})
	return nil
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("event.name", "Java Workshop")
	vip.SetDefault("participants.count", 10)
	vip.SetDefault("participants.seed", 0)
	vip.SetDefault("proxy.mode", "dynamic")
	vip.SetDefault("log.level", "INFO")
	vip.SetDefault("otel.endpoint", "")
	vip.SetDefault("otel.service", "eventproxy")
}
