// Package seed converts between the integer run seed and the base-35 string
// the game shows to players.
package seed

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"spireseed/pkg/engine/rng"
)

// Alphabet is the base-35 digit set. The letter O is omitted because it
// reads as zero; Parse accepts it as one.
const Alphabet = "0123456789ABCDEFGHIJKLMNPQRSTUVWXYZ"

// MaxLength is the longest seed string: 35^13 exceeds 2^64.
const MaxLength = 13

const base = uint64(len(Alphabet))

var (
	ErrInvalidCharacter = errors.New("invalid seed character")
	ErrInvalidLength    = errors.New("seed string too long")
)

// ParseError reports why a seed string was rejected.
type ParseError struct {
	Input  string
	Char   rune // offending character, zero for length errors
	Offset int  // byte offset of Char in Input
	Length int  // significant characters seen
	err    error
}

func (e *ParseError) Error() string {
	if errors.Is(e.err, ErrInvalidLength) {
		return "seed " + strconv.Quote(e.Input) + ": " + e.err.Error() +
			" (" + strconv.Itoa(e.Length) + " characters, max " + strconv.Itoa(MaxLength) + ")"
	}
	return "seed " + strconv.Quote(e.Input) + ": " + e.err.Error() +
		" " + strconv.QuoteRune(e.Char) + " at offset " + strconv.Itoa(e.Offset)
}

func (e *ParseError) Unwrap() error { return e.err }

// Seed is a run seed. Arithmetic wraps as on a signed 64-bit integer.
type Seed int64

// Parse decodes a seed string. Spaces are ignored and 'O' is read as '0'.
// Lowercase letters are accepted for convenience on the command line.
func Parse(s string) (Seed, error) {
	var value int64
	length := 0
	for i, r := range s {
		if r == ' ' {
			continue
		}
		d, ok := digit(r)
		if !ok {
			return 0, &ParseError{Input: s, Char: r, Offset: i, err: ErrInvalidCharacter}
		}
		length++
		if length > MaxLength {
			continue
		}
		value = value*int64(base) + int64(d)
	}
	if length > MaxLength {
		return 0, &ParseError{Input: s, Length: length, err: ErrInvalidLength}
	}
	return Seed(value), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Seed {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func digit(r rune) (int, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r == 'O':
		return 0, true
	case r >= 'A' && r < 'O':
		return int(r-'A') + 10, true
	case r > 'O' && r <= 'Z':
		return int(r-'A') + 9, true
	}
	return 0, false
}

// String returns the seed string as shown in game. The zero seed renders
// as "0".
func (s Seed) String() string {
	if str := strings.TrimLeft(s.Padded(), " "); str != "" {
		return str
	}
	return "0"
}

// Padded returns the fixed-width form: MaxLength characters, left-padded
// with spaces.
func (s Seed) Padded() string {
	buf := []byte(strings.Repeat(" ", MaxLength))
	v := uint64(s)
	for i := MaxLength - 1; i >= 0 && v != 0; i-- {
		buf[i] = Alphabet[v%base]
		v /= base
	}
	return string(buf)
}

// Uint64 returns the seed's bit pattern.
func (s Seed) Uint64() uint64 { return uint64(s) }

// RNG returns a generator seeded with the seed itself, as used for card
// rewards, Neow and event rolls.
func (s Seed) RNG() *rng.Random {
	return rng.New(uint64(s))
}

// OffsetRNG returns a generator seeded with seed+offset, wrapping.
func (s Seed) OffsetRNG(offset int64) *rng.Random {
	return rng.New(uint64(int64(s) + offset))
}

// MarshalText encodes the seed as its seed string.
func (s Seed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText accepts a seed string, or a decimal integer prefixed
// with '#'.
func (s *Seed) UnmarshalText(text []byte) error {
	str := string(text)
	if strings.HasPrefix(str, "#") {
		n, err := strconv.ParseInt(str[1:], 10, 64)
		if err != nil {
			u, uerr := strconv.ParseUint(str[1:], 10, 64)
			if uerr != nil {
				return errors.Wrapf(err, "seed %q", str)
			}
			n = int64(u)
		}
		*s = Seed(n)
		return nil
	}
	v, err := Parse(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
