package bean

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kbukum/propkit/errors"
	"github.com/kbukum/propkit/util"
)

// CopyInto copies properties from source into target with the default Copier.
func CopyInto(source, target any, policy Policy) error {
	return defaultCopier.CopyInto(source, target, policy)
}

// CopyNotNull copies the non-nil properties of source into target.
func CopyNotNull(source, target any) error {
	return defaultCopier.CopyNotNull(source, target)
}

// CopyNotEmpty copies the non-nil, non-blank properties of source into target.
func CopyNotEmpty(source, target any) error {
	return defaultCopier.CopyNotEmpty(source, target)
}

// AllFieldsAbsent reports whether every property of record is nil.
func AllFieldsAbsent(record any) bool {
	return defaultCopier.AllFieldsAbsent(record)
}

// Describe lists the properties of record.
func Describe(record any) ([]Descriptor, error) {
	return defaultCopier.Describe(record)
}

// NullFieldNames returns the names of the nil properties of record.
func NullFieldNames(record any) []string {
	return defaultCopier.NullFieldNames(record)
}

// EmptyFieldNames returns the names of the nil or blank properties of record.
func EmptyFieldNames(record any) []string {
	return defaultCopier.EmptyFieldNames(record)
}

// CopyTo creates a record with factory and copies every property of source into
// it. A nil source yields the zero R without calling factory. R is usually a
// pointer type; a struct R is filled through its address.
func CopyTo[R any](source any, factory func() R, opts ...Option) (R, error) {
	return copyTo(copierFor(opts), source, factory)
}

// CopyList copies each element of source into a record created by factory,
// preserving order. A nil source yields an empty, non-nil slice.
func CopyList[S, R any](source []S, factory func() R, opts ...Option) ([]R, error) {
	c := copierFor(opts)
	ret := make([]R, len(source))
	for i, item := range source {
		r, err := copyTo(c, item, factory)
		if err != nil {
			return nil, errors.Wrap(err).WithDetail("index", i)
		}
		ret[i] = r
	}
	return ret, nil
}

// CopyFunc returns a function copying an S into a new R from factory. Each
// addition runs after the copy with the source and the new record, and is not
// called for nil sources.
func CopyFunc[S, R any](factory func() R, additions ...func(S, R)) func(S) (R, error) {
	return func(source S) (R, error) {
		r, err := copyTo(defaultCopier, source, factory)
		if err != nil || util.IsNil(source) {
			return r, err
		}
		for _, addition := range additions {
			addition(source, r)
		}
		return r, nil
	}
}

// ToMap indexes collection by keyFn. Keys keep the order in which they were
// first seen and a later element with the same key replaces the earlier one.
func ToMap[K comparable, V any](collection []V, keyFn func(V) K) *orderedmap.OrderedMap[K, V] {
	ret := orderedmap.New[K, V]()
	for _, item := range collection {
		ret.Set(keyFn(item), item)
	}
	return ret
}

func copierFor(opts []Option) *Copier {
	if len(opts) == 0 {
		return defaultCopier
	}
	return New(opts...)
}

func copyTo[R any](c *Copier, source any, factory func() R) (R, error) {
	var zero R
	if util.IsNil(source) {
		return zero, nil
	}
	target := factory()
	var dst any = target
	if reflect.ValueOf(dst).Kind() != reflect.Ptr {
		dst = &target
	}
	if err := c.CopyInto(source, dst, All); err != nil {
		return zero, err
	}
	return target, nil
}
