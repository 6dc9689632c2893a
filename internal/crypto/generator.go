package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	DigitChars     = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
)

var ErrRandomSource = errors.New("secure random source unavailable")

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Digits    bool
	Symbols   bool
	Uppercase bool
	Lowercase bool
}

// DefaultOptions returns 16 characters with every class enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Digits:    true,
		Symbols:   true,
		Uppercase: true,
		Lowercase: true,
	}
}

// Pool returns the characters a password may be drawn from for these options.
// Classes are appended in the order digits, symbols, uppercase, lowercase.
func (o GeneratorOptions) Pool() string {
	var b strings.Builder
	if o.Digits {
		b.WriteString(DigitChars)
	}
	if o.Symbols {
		b.WriteString(SymbolChars)
	}
	if o.Uppercase {
		b.WriteString(UppercaseChars)
	}
	if o.Lowercase {
		b.WriteString(LowercaseChars)
	}
	return b.String()
}

// Generator draws passwords from a cryptographically secure random source.
// It holds no mutable state and is safe for concurrent use when its source is.
type Generator struct {
	source io.Reader
}

// NewGenerator returns a Generator reading from source. A nil source selects crypto/rand.
func NewGenerator(source io.Reader) *Generator {
	if source == nil {
		source = rand.Reader
	}
	return &Generator{source: source}
}

// Generate returns a password of exactly opts.Length characters drawn from the
// selected pools. An empty pool or a non-positive length yields "" and no error;
// an error is only returned when the random source fails.
//
// Each position takes a fresh 32-bit value reduced modulo the pool size. The
// resulting bias is at most 1 in 2^32/len(pool) and is accepted.
func (g *Generator) Generate(opts GeneratorOptions) (string, error) {
	pool := opts.Pool()
	if len(pool) == 0 || opts.Length <= 0 {
		return "", nil
	}

	n := uint32(len(pool))
	result := make([]byte, opts.Length)
	var buf [4]byte
	for i := range result {
		if _, err := io.ReadFull(g.source, buf[:]); err != nil {
			return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		result[i] = pool[binary.LittleEndian.Uint32(buf[:])%n]
	}

	return string(result), nil
}
