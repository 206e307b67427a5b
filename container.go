package sdk

import (
	"fmt"
	"os"
	"os/signal"
	run "runtime"
	"slices"
	"strings"
	"sync"

	"github.com/iocgo/eventproxy/errors"
	"github.com/iocgo/eventproxy/proxy"
	"github.com/iocgo/eventproxy/runtime"
	"github.com/samber/do/v2"
)

const packagePrefix = "github.com/iocgo/eventproxy."

// keys is the chain of bean names being resolved on one goroutine.
type keys struct {
	sync.Mutex
	g []string
}

type Initializer interface {
	Init(*Container) error
	Order() int
}

type singleInitializer struct {
	order int
	init  func(*Container) error
}

type Container struct {
	inject   *do.RootScope
	alias    map[string]string
	handlers map[string]any
	init     []func() error
}

var (
	resolving = runtime.NewGoroutineLocal[*keys](func() *keys {
		return &keys{}
	})
)

func (k *keys) push(key string) (ok bool) {
	k.Lock()
	defer k.Unlock()

	ok = !slices.Contains(k.g, key)
	k.g = append(k.g, key)
	return
}

func (k *keys) pop() {
	k.Lock()
	defer k.Unlock()

	if n := len(k.g); n > 0 {
		k.g = k.g[:n-1]
	}
}

func (i singleInitializer) Init(container *Container) (err error) {
	if i.init == nil {
		return
	}
	return i.init(container)
}

func (i singleInitializer) Order() int {
	return i.order
}

func NewContainer() *Container {
	return &Container{
		inject:   do.New(),
		alias:    make(map[string]string),
		handlers: make(map[string]any),
	}
}

func InitializedWrapper(order int, init func(*Container) error) Initializer {
	return &singleInitializer{order, init}
}

func (c *Container) AddInitialized(i func() error) {
	c.init = append(c.init, i)
}

// Run executes every Initializer bean by ascending order, then the functions
// added with AddInitialized. With signals it blocks until one arrives.
func (c *Container) Run(signals ...os.Signal) (err error) {
	beans := ListInvokeAs[Initializer](c)
	beans = append(beans, &singleInitializer{999, func(container *Container) (iErr error) {
		for _, exec := range c.init {
			if iErr = exec(); iErr != nil {
				return iErr
			}
		}
		return
	}})

	slices.SortStableFunc(beans, func(a, b Initializer) int {
		return a.Order() - b.Order()
	})

	for _, bean := range beans {
		if err = bean.Init(c); err != nil {
			return
		}
	}

	if len(signals) > 0 {
		w := make(chan os.Signal, 1)
		signal.Notify(w, signals...)
		<-w
	}
	return
}

func (c *Container) Inject() *do.RootScope {
	return c.inject
}

func (c *Container) Alias(name, fullName string) {
	if n, ok := c.alias[name]; ok {
		panic("alias '" + n + "' already exists")
	}
	c.alias[name] = fullName
}

func (c *Container) HealthLogger() string {
	injector := do.ExplainInjector(c.inject)
	return injector.String()
}

func (c *Container) Stop() error {
	if err := c.inject.Shutdown(); err != nil {
		return err
	}
	return nil
}

func NameOf[T any]() string {
	return do.NameOf[T]()
}

// Intercept binds the handler every bean resolved as T is proxied with.
func Intercept[T any](container *Container, handler proxy.InvocationHandler[T]) {
	container.handlers[proxy.NameOf[T]()] = handler
}

func ProvideBean[T any](container *Container, name string, provider func() (T, error)) {
	do.ProvideNamed[T](container.inject, name, func(i do.Injector) (T, error) {
		return provider()
	})
}

func ProvideTransient[T any](container *Container, name string, provider func() (T, error)) {
	do.ProvideNamedTransient[T](container.inject, name, func(i do.Injector) (T, error) {
		return provider()
	})
}

func OverrideBean[T any](container *Container, name string, provider func() (T, error)) {
	do.OverrideNamed[T](container.inject, name, func(i do.Injector) (T, error) {
		return provider()
	})
}

// InvokeBean resolves a bean by name (aliases followed) or by type when name
// is empty, wrapped with the handler bound to T if any.
func InvokeBean[T any](container *Container, name string) (t T, err error) {
	if name != "" {
		for {
			if n, ok := container.alias[name]; ok {
				name = n
			} else {
				break
			}
		}
	}

	if !resolving.Loaded() {
		defer resolving.Remove()
	}

	value := resolving.Load()
	key := name
	if key == "" {
		key = NameOf[T]()
	}
	ok := value.push(key)
	defer value.pop()
	if !ok {
		var zero T
		return zero, warpError(fmt.Errorf("%w:\n%s", errors.ErrCircularDependency, join(value.g[:len(value.g)-1], key)))
	}

	if name == "" {
		t, err = do.Invoke[T](container.inject)
	} else {
		t, err = do.InvokeNamed[T](container.inject, name)
	}

	if err != nil {
		return
	}

	if h, ok := container.handlers[proxy.NameOf[T]()]; ok {
		t, err = proxy.New[T](t, h.(proxy.InvocationHandler[T]))
	}
	return
}

func ListInvokeAs[T any](container *Container) (re []T) {
	services := container.inject.ListProvidedServices()
	for _, ser := range services {
		t, err := do.InvokeNamed[T](container.inject, ser.Service)
		if err == nil {
			re = append(re, t)
		}
	}
	return
}

// warpError appends the location of the first caller outside this package.
func warpError(err error) error {
	if err == nil {
		return nil
	}

	frame := runtime.CallerFrame(func(fe run.Frame) bool {
		return !strings.HasPrefix(fe.Function, packagePrefix) &&
			!strings.HasPrefix(fe.Function, "github.com/samber/do")
	})

	if frame != nil {
		err = fmt.Errorf("%w\nin %s # %s:%d", err, frame.Function, frame.File, frame.Line)
	}
	return err
}

func join(slice []string, n string) (str string) {
	idx := slices.Index(slice, n)
	for i, it := range slice {
		switch {
		case i == idx:
			str += "╭- " + it + "\n"
		case idx == -1 || i < idx:
			str += "   " + it + "\n"
		default:
			str += "|  " + it + "\n"
		}
	}
	return str + "╰> " + n + "\n"
}
