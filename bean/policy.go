package bean

// Policy decides which source properties CopyInto assigns.
type Policy int

const (
	// All copies every property whose name exists on both sides.
	All Policy = iota
	// SkipNull leaves the target untouched where the source value is nil.
	SkipNull
	// SkipEmpty also skips values that are blank once converted to text.
	SkipEmpty
)

func (p Policy) String() string {
	switch p {
	case All:
		return "all"
	case SkipNull:
		return "skip_null"
	case SkipEmpty:
		return "skip_empty"
	}
	return "unknown"
}
