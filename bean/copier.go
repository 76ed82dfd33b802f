package bean

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"github.com/kbukum/propkit/errors"
	"github.com/kbukum/propkit/logger"
	"github.com/kbukum/propkit/util"
)

// Copier copies properties between records. The zero value is not usable; use New.
// A Copier holds no per-call state and is safe for concurrent use.
type Copier struct {
	tagName string
	ignore  map[string]struct{}
	log     *logger.Logger
}

// Option configures a Copier.
type Option func(c *Copier)

// WithIgnore excludes the named properties from every copy.
func WithIgnore(names ...string) Option {
	return func(c *Copier) {
		for _, name := range names {
			c.ignore[name] = struct{}{}
		}
	}
}

// WithTagName reads property names and options from the given struct tag
// instead of `bean`.
func WithTagName(tagName string) Option {
	return func(c *Copier) {
		if tagName != "" {
			c.tagName = tagName
		}
	}
}

// WithLogger sets the logger receiving debug events for skipped properties.
func WithLogger(l *logger.Logger) Option {
	return func(c *Copier) {
		c.log = l
	}
}

// New creates a Copier.
func New(opts ...Option) *Copier {
	c := &Copier{
		tagName: DefaultTagName,
		ignore:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCopier = New()

func (c *Copier) getLogger() *logger.Logger {
	if c.log != nil {
		return c.log
	}
	return logger.Get("bean")
}

// CopyInto assigns source properties to the target properties of the same name,
// subject to policy. target must be a non-nil pointer to a struct; a nil source
// leaves target untouched. Properties are visited in target declaration order
// and the first type mismatch aborts the copy, leaving earlier assignments in place.
func (c *Copier) CopyInto(source, target any, policy Policy) error {
	dst, err := targetValue(target)
	if err != nil {
		return err
	}
	src, ok, err := recordValue(source)
	if err != nil || !ok {
		return err
	}

	log := c.getLogger()
	debug := log.DebugEnabled()
	srcTable := tableOf(src.Type(), c.tagName)
	dstTable := tableOf(dst.Type(), c.tagName)

	copied := 0
	for _, df := range dstTable.fields {
		if df.typeTag {
			continue
		}
		sf, ok := srcTable.lookup(df.name)
		if !ok || sf.typeTag {
			continue
		}
		if _, ignored := c.ignore[df.name]; ignored {
			continue
		}

		value := src.FieldByIndex(sf.index)
		if reason := skipReason(value, policy); reason != "" {
			if debug {
				log.Debug("property skipped", logger.Fields(
					logger.FieldField, df.name,
					logger.FieldPolicy, policy.String(),
					logger.FieldReason, reason,
				))
			}
			continue
		}
		if !sf.typ.AssignableTo(df.typ) {
			return errors.TypeMismatch(df.name, sf.typ.String(), df.typ.String())
		}
		dst.FieldByIndex(df.index).Set(value)
		copied++
	}

	if debug {
		log.Debug("properties copied", logger.Fields(
			logger.FieldCount, copied,
			logger.FieldSourceType, src.Type().String(),
			logger.FieldTargetType, dst.Type().String(),
		))
	}
	return nil
}

// CopyNotNull copies every non-nil source property into target.
func (c *Copier) CopyNotNull(source, target any) error {
	return c.CopyInto(source, target, SkipNull)
}

// CopyNotEmpty copies every source property that is non-nil and not blank as text.
func (c *Copier) CopyNotEmpty(source, target any) error {
	return c.CopyInto(source, target, SkipEmpty)
}

// skipReason returns why policy rejects value, or "" when it must be copied.
func skipReason(value reflect.Value, policy Policy) string {
	if policy == All {
		return ""
	}
	if util.IsNilValue(value) {
		return "null"
	}
	if policy == SkipEmpty && !util.HasText(textOf(value.Interface())) {
		return "empty"
	}
	return ""
}

// textOf renders a property value the way SkipEmpty inspects it. Byte slices
// render as lists, like every other slice, so an empty one is not blank.
func textOf(v any) string {
	if b, ok := v.([]byte); ok {
		return fmt.Sprint(b)
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

// targetValue resolves target to the addressable struct it points to.
func targetValue(target any) (reflect.Value, error) {
	if target == nil {
		return reflect.Value{}, errors.InvalidTarget("target is nil")
	}
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr {
		return reflect.Value{}, errors.InvalidTarget(fmt.Sprintf("expected a pointer to a struct, got %s", rv.Type()))
	}
	if rv.IsNil() {
		return reflect.Value{}, errors.InvalidTarget(fmt.Sprintf("%s is nil", rv.Type()))
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, errors.InvalidTarget(fmt.Sprintf("expected a pointer to a struct, got %s", reflect.TypeOf(target)))
	}
	return rv, nil
}

// recordValue dereferences record down to a struct. ok is false for nil records.
func recordValue(record any) (rv reflect.Value, ok bool, err error) {
	rv = reflect.ValueOf(record)
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false, nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return reflect.Value{}, false, nil
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false, errors.InvalidInput("record", fmt.Sprintf("expected a struct, got %s", rv.Type()))
	}
	return rv, true, nil
}
