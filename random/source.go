package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"

	"github.com/kbukum/propkit/logger"
)

// DefaultRekeyAfter is the number of keystream bytes a Source emits before it
// draws a fresh key and nonce.
const DefaultRekeyAfter = 1 << 20

// Source is a cryptographically seeded stream of random bytes. It implements
// io.Reader and is safe for concurrent use.
type Source struct {
	mu         sync.Mutex
	seed       io.Reader
	cipher     *chacha20.Cipher
	used       int
	rekeyAfter int
}

// NewSource creates a Source keyed from crypto/rand.
func NewSource() *Source {
	return newSource(rand.Reader, DefaultRekeyAfter)
}

func newSource(seed io.Reader, rekeyAfter int) *Source {
	return &Source{seed: seed, rekeyAfter: rekeyAfter}
}

// Read fills p with keystream bytes. It fails only when the seed cannot be read.
func (s *Source) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	done := 0
	for done < len(p) {
		if s.cipher == nil || s.used >= s.rekeyAfter {
			if err := s.rekey(); err != nil {
				return done, err
			}
		}
		n := min(len(p)-done, s.rekeyAfter-s.used)
		chunk := p[done : done+n]
		clear(chunk)
		s.cipher.XORKeyStream(chunk, chunk)
		s.used += n
		done += n
	}
	return done, nil
}

func (s *Source) rekey() error {
	var seed [chacha20.KeySize + chacha20.NonceSize]byte
	defer clear(seed[:])
	if _, err := io.ReadFull(s.seed, seed[:]); err != nil {
		return fmt.Errorf("read seed: %w", err)
	}
	c, err := chacha20.NewUnauthenticatedCipher(seed[:chacha20.KeySize], seed[chacha20.KeySize:])
	if err != nil {
		return fmt.Errorf("create chacha20: %w", err)
	}
	if s.cipher != nil {
		logger.Get("random").Debug("source rekeyed", logger.Fields(logger.FieldCount, s.used))
	}
	s.cipher = c
	s.used = 0
	return nil
}
