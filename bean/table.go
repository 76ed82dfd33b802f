package bean

import (
	"reflect"
	"strings"
	"sync"
)

// DefaultTagName is the struct tag read for property names and options.
const DefaultTagName = "bean"

const typeTagOption = "type"

type field struct {
	name    string
	index   []int
	typ     reflect.Type
	typeTag bool
	depth   int
}

// table lists the properties of one struct type in declaration order.
type table struct {
	rType  reflect.Type
	fields []field
	byName map[string]int
}

type tableKey struct {
	rType   reflect.Type
	tagName string
}

// tables caches one table per struct type and tag name; entries are immutable.
var tables sync.Map // map[tableKey]*table

func tableOf(rType reflect.Type, tagName string) *table {
	key := tableKey{rType: rType, tagName: tagName}
	if v, ok := tables.Load(key); ok {
		return v.(*table)
	}
	actual, _ := tables.LoadOrStore(key, buildTable(rType, tagName))
	return actual.(*table)
}

func (t *table) lookup(name string) (field, bool) {
	i, ok := t.byName[name]
	if !ok {
		return field{}, false
	}
	return t.fields[i], true
}

func buildTable(rType reflect.Type, tagName string) *table {
	var candidates []field
	collectFields(rType, tagName, nil, 0, &candidates)

	// Go promotion rules: the shallowest field wins, a tie at that depth hides the name.
	winners := make(map[string]int, len(candidates))
	ambiguous := make(map[string]bool)
	for i, f := range candidates {
		j, seen := winners[f.name]
		switch {
		case !seen:
			winners[f.name] = i
		case f.depth < candidates[j].depth:
			winners[f.name] = i
			delete(ambiguous, f.name)
		case f.depth == candidates[j].depth:
			ambiguous[f.name] = true
		}
	}

	ret := &table{rType: rType, byName: make(map[string]int, len(winners))}
	for i, f := range candidates {
		if winners[f.name] != i || ambiguous[f.name] {
			continue
		}
		ret.byName[f.name] = len(ret.fields)
		ret.fields = append(ret.fields, f)
	}
	return ret
}

func collectFields(rType reflect.Type, tagName string, index []int, depth int, out *[]field) {
	for i := 0; i < rType.NumField(); i++ {
		sf := rType.Field(i)
		tag := sf.Tag.Get(tagName)
		if tag == "-" {
			continue
		}
		name, typeTag := parseTag(tag)

		fieldIndex := make([]int, len(index)+1)
		copy(fieldIndex, index)
		fieldIndex[len(index)] = i

		if sf.Anonymous && name == "" && sf.Type.Kind() == reflect.Struct {
			collectFields(sf.Type, tagName, fieldIndex, depth+1, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		*out = append(*out, field{
			name:    name,
			index:   fieldIndex,
			typ:     sf.Type,
			typeTag: typeTag,
			depth:   depth,
		})
	}
}

func parseTag(tag string) (name string, typeTag bool) {
	name, opts, _ := strings.Cut(tag, ",")
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(opt) == typeTagOption {
			typeTag = true
		}
	}
	return strings.TrimSpace(name), typeTag
}
