package proxy

import (
	"fmt"

	"github.com/iocgo/eventproxy/errors"
)

type ContractMismatchError struct {
	Contract string
	Delegate string
}

func (e *ContractMismatchError) Error() string {
	return fmt.Sprintf("%s does not implement %s", e.Delegate, e.Contract)
}

func (e *ContractMismatchError) Unwrap() error {
	return errors.ErrContractMismatch
}

func As[T any](t any) (T, error) {
	obj, ok := t.(T)
	if !ok {
		var zero T
		return zero, &ContractMismatchError{
			Contract: NameOf[T](),
			Delegate: instanceName(t),
		}
	}
	return obj, nil
}

func MustAs[T any](t any) T {
	obj, err := As[T](t)
	if err != nil {
		panic(err)
	}
	return obj
}
