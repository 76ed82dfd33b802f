package bean

import (
	"github.com/samber/lo"

	"github.com/kbukum/propkit/util"
)

// Descriptor pairs a property name with the value it currently holds.
type Descriptor struct {
	Name    string
	Value   any
	TypeTag bool
}

// Describe lists the properties of record in declaration order. A nil record
// has no descriptors.
func (c *Copier) Describe(record any) ([]Descriptor, error) {
	rv, ok, err := recordValue(record)
	if err != nil || !ok {
		return nil, err
	}
	return lo.Map(tableOf(rv.Type(), c.tagName).fields, func(f field, _ int) Descriptor {
		return Descriptor{
			Name:    f.name,
			Value:   rv.FieldByIndex(f.index).Interface(),
			TypeTag: f.typeTag,
		}
	}), nil
}

// AllFieldsAbsent reports whether every property of record other than its type
// tag holds nil. A nil record counts as all-absent; a value that is not a
// struct is never absent.
func (c *Copier) AllFieldsAbsent(record any) bool {
	rv, ok, err := recordValue(record)
	if !ok {
		return err == nil
	}
	for _, f := range tableOf(rv.Type(), c.tagName).fields {
		if f.typeTag {
			continue
		}
		if !util.IsNilValue(rv.FieldByIndex(f.index)) {
			return false
		}
	}
	return true
}

// NullFieldNames returns the names of the properties of record holding nil.
func (c *Copier) NullFieldNames(record any) []string {
	return c.skippedNames(record, SkipNull)
}

// EmptyFieldNames returns the names of the properties of record that SkipEmpty
// would leave out.
func (c *Copier) EmptyFieldNames(record any) []string {
	return c.skippedNames(record, SkipEmpty)
}

func (c *Copier) skippedNames(record any, policy Policy) []string {
	rv, ok, _ := recordValue(record)
	if !ok {
		return nil
	}
	return lo.FilterMap(tableOf(rv.Type(), c.tagName).fields, func(f field, _ int) (string, bool) {
		if f.typeTag {
			return "", false
		}
		return f.name, skipReason(rv.FieldByIndex(f.index), policy) != ""
	})
}
