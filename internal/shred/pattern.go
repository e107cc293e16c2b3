package shred

import (
	"crypto/rand"

	"github.com/cockroachdb/errors"
)

// Pattern определяет паттерн заполнения для одного прохода
type Pattern int

const (
	PatternZero Pattern = iota
	PatternOnes
	PatternRandom
)

func (p Pattern) String() string {
	switch p {
	case PatternZero:
		return "zero"
	case PatternOnes:
		return "ones"
	case PatternRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Fill fills buf with the pattern's bytes. Random patterns draw from
// crypto/rand; pattern bytes are generated per pass and never persisted.
func (p Pattern) Fill(buf []byte) error {
	switch p {
	case PatternZero:
		for i := range buf {
			buf[i] = 0x00
		}
		return nil
	case PatternOnes:
		for i := range buf {
			buf[i] = 0xFF
		}
		return nil
	case PatternRandom:
		if _, err := rand.Read(buf); err != nil {
			return errors.Wrap(err, "failed to generate random pattern")
		}
		return nil
	default:
		return errors.Newf("unknown fill pattern: %d", int(p))
	}
}

// Scheme is a named sequence of pass patterns. The last entry is always
// used for the final pass regardless of the requested pass count, so a
// crash during an earlier deterministic pass never leaves the final state
// predictable.
type Scheme struct {
	Name   string
	Passes []Pattern
}

var (
	// SchemeStandard: alternating zero/ones passes, crypto-random last.
	SchemeStandard = Scheme{Name: "standard", Passes: []Pattern{PatternZero, PatternOnes, PatternRandom}}
	// SchemeRandom: every pass crypto-random.
	SchemeRandom = Scheme{Name: "random", Passes: []Pattern{PatternRandom}}
	// SchemeZero: single zero pass (fast, minimal assurance).
	SchemeZero = Scheme{Name: "zero", Passes: []Pattern{PatternZero}}
	// SchemeDOD5220: DOD 5220.22-M style - random, zeros, random.
	SchemeDOD5220 = Scheme{Name: "dod5220", Passes: []Pattern{PatternRandom, PatternZero, PatternRandom}}
)

// Schemes returns the built-in schemes in display order.
func Schemes() []Scheme {
	return []Scheme{SchemeStandard, SchemeRandom, SchemeZero, SchemeDOD5220}
}

// ValidateScheme проверяет корректность имени схемы
func ValidateScheme(name string) (Scheme, error) {
	for _, s := range Schemes() {
		if s.Name == name {
			return s, nil
		}
	}
	return Scheme{}, errors.Newf("unsupported shred scheme: %s", name)
}

// PassPattern returns the pattern for pass (1-based) out of totalPasses.
// The final pass always takes the scheme's last pattern; earlier passes
// cycle through the preceding entries.
func (s Scheme) PassPattern(pass, totalPasses int) Pattern {
	if len(s.Passes) == 0 {
		return PatternRandom
	}
	if pass >= totalPasses || len(s.Passes) == 1 {
		return s.Passes[len(s.Passes)-1]
	}
	return s.Passes[(pass-1)%(len(s.Passes)-1)]
}
