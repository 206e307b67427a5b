package cobra

import (
	"reflect"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
)

type Command = cobra.Command

type ICobra interface {
	Command() *cobra.Command
}

type singleCobra struct {
	cmd *cobra.Command
}

func (c *singleCobra) Command() *cobra.Command {
	return c.cmd
}

// ICobraWrapper builds a command from instance. config is a JSON object with
// the Use, Short, Long, Version and Example texts, and the names of the
// instance methods bound as Run and RunE. Exported fields tagged
// `cobra:"name[,per]"` become flags, with optional `short` and `usage` tags;
// the field value is the default.
func ICobraWrapper(instance interface{}, config string, children ...ICobra) ICobra {
	cmd := &cobra.Command{}
	for _, it := range children {
		cmd.AddCommand(it.Command())
	}

	parser := gjson.Parse(config)
	bindField(parser, "Use", func(value string) { cmd.Use = value })
	bindField(parser, "Short", func(value string) { cmd.Short = value })
	bindField(parser, "Long", func(value string) { cmd.Long = value })
	bindField(parser, "Version", func(value string) { cmd.Version = value })
	bindField(parser, "Example", func(value string) { cmd.Example = value })

	value := reflect.ValueOf(instance)
	bindMethod(parser, value, "Run", func(method reflect.Value) {
		cmd.Run = func(cmd *cobra.Command, args []string) {
			method.Call([]reflect.Value{reflect.ValueOf(cmd), reflect.ValueOf(args)})
		}
	})
	bindMethod(parser, value, "RunE", func(method reflect.Value) {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			out := method.Call([]reflect.Value{reflect.ValueOf(cmd), reflect.ValueOf(args)})
			if len(out) == 0 || out[0].IsNil() {
				return nil
			}
			return out[0].Interface().(error)
		}
	})

	bindTag(cmd, value)
	return &singleCobra{cmd}
}

func bindField(parser gjson.Result, field string, f func(string)) {
	if result := parser.Get(field); result.Exists() {
		if field = result.String(); field != "" {
			f(field)
		}
	}
}

func bindMethod(parser gjson.Result, value reflect.Value, field string, f func(reflect.Value)) {
	result := parser.Get(field)
	if !result.Exists() || result.String() == "" {
		return
	}

	method := value.MethodByName(result.String())
	if !method.IsValid() {
		panic("`" + result.String() + "` method is not exist")
	}
	f(method)
}

func bindTag(cmd *cobra.Command, value reflect.Value) {
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return
	}

	for i := range value.NumField() {
		field := value.Type().Field(i)
		lookup, ok := field.Tag.Lookup("cobra")
		if !ok || lookup == "" {
			continue
		}

		name, scope := splitTag(lookup)
		if name == "" {
			continue
		}

		flags := cmd.Flags()
		if scope == "per" {
			flags = cmd.PersistentFlags()
		}

		short, _ := field.Tag.Lookup("short")
		usage, _ := field.Tag.Lookup("usage")
		setter(flags, value.Field(i), name, strings.TrimSpace(short), usage)
	}
}

func splitTag(tag string) (name, scope string) {
	name, scope, _ = strings.Cut(tag, ",")
	return strings.TrimSpace(name), strings.TrimSpace(scope)
}

func setter(flags *pflag.FlagSet, value reflect.Value, name, short, usage string) {
	if !value.CanAddr() || !value.CanSet() {
		return
	}

	switch ptr := value.Addr().Interface().(type) {
	case *string:
		flags.StringVarP(ptr, name, short, *ptr, usage)
	case *bool:
		flags.BoolVarP(ptr, name, short, *ptr, usage)
	case *int:
		flags.IntVarP(ptr, name, short, *ptr, usage)
	case *int64:
		flags.Int64VarP(ptr, name, short, *ptr, usage)
	case *uint:
		flags.UintVarP(ptr, name, short, *ptr, usage)
	case *uint64:
		flags.Uint64VarP(ptr, name, short, *ptr, usage)
	case *float64:
		flags.Float64VarP(ptr, name, short, *ptr, usage)
	case *[]string:
		flags.StringSliceVarP(ptr, name, short, *ptr, usage)
	}
}
