package datetime

import (
	"strings"
	"time"

	"github.com/kbukum/propkit/errors"
	"github.com/kbukum/propkit/validation"
)

// Config selects the zone and pattern of a Converter.
type Config struct {
	// Zone is an IANA zone name, "Local" or "UTC".
	Zone    string `yaml:"zone" mapstructure:"zone"`
	Pattern string `yaml:"pattern" mapstructure:"pattern" validate:"required"`
}

// ApplyDefaults applies default values to datetime configuration.
func (c *Config) ApplyDefaults() {
	if c.Zone == "" {
		c.Zone = "Local"
	}
	if c.Pattern == "" {
		c.Pattern = DefaultPattern
	}
}

// Validate validates datetime configuration.
func (c *Config) Validate() error {
	v := validation.New().Merge("", validation.Validate(c))
	if c.Zone != "" {
		_, err := time.LoadLocation(c.Zone)
		v.Custom(err == nil, "zone", "unknown time zone "+c.Zone)
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Converter converts between text, epoch milliseconds, time.Time and
// LocalDateTime in one location. It is immutable and safe for concurrent use.
type Converter struct {
	loc     *time.Location
	pattern string
	layout  string
	zoned   bool
}

// NewConverter creates a Converter from cfg after applying defaults.
func NewConverter(cfg Config) (*Converter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(cfg.Zone)
	if err != nil {
		return nil, errors.InvalidInput("zone", err.Error())
	}
	return newConverter(loc, cfg.Pattern), nil
}

func newConverter(loc *time.Location, pattern string) *Converter {
	layout := PatternToLayout(pattern)
	return &Converter{loc: loc, pattern: pattern, layout: layout, zoned: hasZone(layout)}
}

// hasZone reports whether layout writes a zone name or offset.
func hasZone(layout string) bool {
	return strings.Contains(layout, "MST") ||
		strings.Contains(layout, "Z07") ||
		strings.Contains(layout, "-07")
}

// Location returns the location of c.
func (c *Converter) Location() *time.Location { return c.loc }

// Pattern returns the date pattern of c.
func (c *Converter) Pattern() string { return c.pattern }

// Parse reads s in the pattern of c. An offset in s, when the pattern has
// one, is ignored; the wall clock reading is kept as written.
func (c *Converter) Parse(s string) (LocalDateTime, error) {
	t, err := time.ParseInLocation(c.layout, s, time.UTC)
	if err != nil {
		return LocalDateTime{}, errors.InvalidFormat("date", c.pattern).WithCause(err)
	}
	return wallClock(t), nil
}

// Format writes l in the pattern of c. The fields of l are written as they
// are, even when the location of c skips that wall clock reading; the location
// is only consulted when the pattern has a zone name or offset.
func (c *Converter) Format(l LocalDateTime) string {
	if c.zoned {
		return l.In(c.loc).Format(c.layout)
	}
	return l.In(time.UTC).Format(c.layout)
}

// FromTime returns the wall clock reading of t in the location of c.
func (c *Converter) FromTime(t time.Time) LocalDateTime {
	return LocalOf(t, c.loc)
}

// FromUnixMilli returns the wall clock reading, in the location of c, of the
// instant ms milliseconds after the Unix epoch.
func (c *Converter) FromUnixMilli(ms int64) LocalDateTime {
	return c.FromTime(time.UnixMilli(ms))
}

// ToTime returns the instant at which clocks in the location of c read l.
func (c *Converter) ToTime(l LocalDateTime) time.Time {
	return l.In(c.loc)
}

// ToUnixMilli returns the instant of l in the location of c as milliseconds
// since the Unix epoch.
func (c *Converter) ToUnixMilli(l LocalDateTime) int64 {
	return c.ToTime(l).UnixMilli()
}

var defaultConverter = newConverter(time.Local, DefaultPattern)

// Default returns the Converter used by the package-level functions.
func Default() *Converter { return defaultConverter }

// Parse reads s in DefaultPattern.
func Parse(s string) (LocalDateTime, error) { return defaultConverter.Parse(s) }

// Format writes l in DefaultPattern.
func Format(l LocalDateTime) string { return defaultConverter.Format(l) }

// FromTime returns the local wall clock reading of t.
func FromTime(t time.Time) LocalDateTime { return defaultConverter.FromTime(t) }

// FromUnixMilli returns the local wall clock reading of an epoch millisecond.
func FromUnixMilli(ms int64) LocalDateTime { return defaultConverter.FromUnixMilli(ms) }

// ToTime returns the instant at which local clocks read l.
func ToTime(l LocalDateTime) time.Time { return defaultConverter.ToTime(l) }

// ToUnixMilli returns the local instant of l in epoch milliseconds.
func ToUnixMilli(l LocalDateTime) int64 { return defaultConverter.ToUnixMilli(l) }
