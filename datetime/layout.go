package datetime

import "strings"

// DefaultPattern is the pattern used when none is configured.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// Longer letter runs come first; strings.Replacer prefers earlier arguments.
var patternToLayoutReplacer = strings.NewReplacer(
	"yyyy", "2006",
	"uuuu", "2006",
	"yy", "06",
	"MMMM", "January",
	"MMM", "Jan",
	"MM", "01",
	"M", "1",
	"dd", "02",
	"d", "2",
	"EEEE", "Monday",
	"EEE", "Mon",
	"HH", "15",
	"H", "15",
	"hh", "03",
	"h", "3",
	"mm", "04",
	"m", "4",
	"ss", "05",
	"s", "5",
	".SSSSSSSSS", ".000000000",
	".SSSSSS", ".000000",
	".SSS", ".000",
	".SS", ".00",
	".S", ".0",
	"a", "PM",
	"XXX", "Z07:00",
	"XX", "Z0700",
	"X", "Z07",
	"Z", "-0700",
	"z", "MST",
)

// PatternToLayout converts a date pattern such as "yyyy-MM-dd'T'HH:mm:ss" to a
// Go time layout. Text between single quotes is kept literally and a doubled
// quote stands for one quote character.
//
// Go layouts have no unpadded 24-hour verb, so "H" maps to "15" like "HH" and
// hours below ten are written with a leading zero.
func PatternToLayout(pattern string) string {
	var sb strings.Builder
	quoted := false
	for i := 0; i < len(pattern); {
		j := strings.IndexByte(pattern[i:], '\'')
		if j < 0 {
			j = len(pattern) - i
		}
		segment := pattern[i : i+j]
		if quoted {
			sb.WriteString(segment)
		} else {
			sb.WriteString(patternToLayoutReplacer.Replace(segment))
		}
		i += j
		if i >= len(pattern) {
			break
		}
		// ''
		if i+1 < len(pattern) && pattern[i+1] == '\'' {
			sb.WriteByte('\'')
			i += 2
			continue
		}
		quoted = !quoted
		i++
	}
	return sb.String()
}
