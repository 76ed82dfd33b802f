package random

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/kbukum/propkit/errors"
	"github.com/kbukum/propkit/validation"
)

const (
	// DefaultAlphabet holds the upper and lower case ASCII letters and digits.
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultLength is the length of String results.
	DefaultLength = 12
	// MaxAlphabet is the largest supported alphabet.
	MaxAlphabet = 256
)

// Config selects the alphabet and default length of a Generator.
type Config struct {
	Length   int    `yaml:"length" mapstructure:"length" validate:"gte=1,lte=4096"`
	Alphabet string `yaml:"alphabet" mapstructure:"alphabet" validate:"required"`
}

// ApplyDefaults applies default values to random configuration.
func (c *Config) ApplyDefaults() {
	if c.Length == 0 {
		c.Length = DefaultLength
	}
	if c.Alphabet == "" {
		c.Alphabet = DefaultAlphabet
	}
}

// Validate validates random configuration.
func (c *Config) Validate() error {
	v := validation.New().Merge("", validation.Validate(c))
	if c.Alphabet != "" {
		runes := []rune(c.Alphabet)
		v.Custom(utf8.ValidString(c.Alphabet), "alphabet", "must be valid UTF-8")
		v.Range("alphabet", len(runes), 2, MaxAlphabet)
		v.Custom(len(lo.Uniq(runes)) == len(runes), "alphabet", "must not repeat characters")
	}
	if appErr := v.Validate(); appErr != nil {
		return appErr
	}
	return nil
}

// Generator draws strings from an alphabet. Every symbol is equally likely.
type Generator struct {
	src      *Source
	alphabet []rune
	length   int
}

// NewGenerator creates a Generator from cfg after applying defaults. Each
// Generator owns its Source.
func NewGenerator(cfg Config) (*Generator, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{src: NewSource(), alphabet: []rune(cfg.Alphabet), length: cfg.Length}, nil
}

// String returns a string of the configured length. It panics if the Source
// cannot be seeded; StringN reports that failure as an error instead.
func (g *Generator) String() string {
	return lo.Must(g.StringN(g.length))
}

// StringN returns a string of n symbols.
func (g *Generator) StringN(n int) (string, error) {
	if n < 0 {
		return "", errors.InvalidInput("length", "must not be negative")
	}
	size := len(g.alphabet)
	// Bytes at or above limit would favour the first 256%size symbols.
	limit := 256 - 256%size

	var sb strings.Builder
	sb.Grow(n)
	buf := make([]byte, n+n/4+8)
	for count := 0; count < n; {
		if _, err := g.src.Read(buf); err != nil {
			return "", errors.Internal(err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			sb.WriteRune(g.alphabet[int(b)%size])
			if count++; count == n {
				break
			}
		}
	}
	return sb.String(), nil
}

// UUID returns a version 4 UUID drawn from the Source of g, as 32 lower case
// hex characters without dashes. It panics if the Source cannot be seeded;
// NewUUID reports that failure as an error instead.
func (g *Generator) UUID() string {
	return lo.Must(g.NewUUID())
}

// NewUUID is UUID with the Source failure returned as an INTERNAL_ERROR.
func (g *Generator) NewUUID() (string, error) {
	id, err := uuid.NewRandomFromReader(g.src)
	if err != nil {
		return "", errors.Internal(err)
	}
	return strings.ReplaceAll(id.String(), "-", ""), nil
}

var defaultGenerator = &Generator{
	src:      NewSource(),
	alphabet: []rune(DefaultAlphabet),
	length:   DefaultLength,
}

// String returns DefaultLength characters from DefaultAlphabet. It panics if
// crypto/rand fails, which does not happen on supported platforms.
func String() string { return defaultGenerator.String() }

// StringN returns n characters from DefaultAlphabet.
func StringN(n int) (string, error) { return defaultGenerator.StringN(n) }

// UUID returns a random UUID without dashes. It panics under the same
// condition as String.
func UUID() string { return defaultGenerator.UUID() }
