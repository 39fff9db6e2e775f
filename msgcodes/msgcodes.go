// Package msgcodes holds the symbolic tokens used as the category arguments of the Perforce ErrorOf(...) macro,
// and their fully-qualified names on the Java side (the p4java enum-like classes MessageSubsystemCode,
// MessageSeverityCode and MessageGenericCode).
package msgcodes

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// TokenClass is the category of a symbolic token: which ErrorOf argument it fills.
type TokenClass int

//go:generate go tool enumer -type=TokenClass -trimprefix=Class -text msgcodes.go

const (
	ClassSubsystem TokenClass = iota
	ClassSeverity
	ClassGeneric
)

// JavaClass returns the name of the Java class holding the constants of the token class.
func (c TokenClass) JavaClass() string {
	switch c {
	case ClassSubsystem:
		return "MessageSubsystemCode"
	case ClassSeverity:
		return "MessageSeverityCode"
	case ClassGeneric:
		return "MessageGenericCode"
	}
	return ""
}

// Symbol is one entry of the lookup table.
type Symbol struct {
	Token     string
	Class     TokenClass
	Qualified string // E.g.: "MessageSeverityCode.E_FAILED"
}

// Values copied from the Perforce C++ API errornum.h.
var (
	subsystemTokens = []string{
		"ES_OS", "ES_SUPP", "ES_LBR", "ES_RPC", "ES_DB", "ES_DBSUPP", "ES_DM", "ES_SERVER",
		"ES_CLIENT", "ES_INFO", "ES_HELP", "ES_SPEC", "ES_FTPD", "ES_BROKER", "ES_P4QT",
	}
	severityTokens = []string{"E_EMPTY", "E_INFO", "E_WARN", "E_FAILED", "E_FATAL"}
	genericTokens  = []string{
		"EV_NONE", "EV_USAGE", "EV_UNKNOWN", "EV_CONTEXT", "EV_ILLEGAL", "EV_NOTYET", "EV_PROTECT",
		"EV_EMPTY", "EV_FAULT", "EV_CLIENT", "EV_ADMIN", "EV_CONFIG", "EV_UPGRADE", "EV_COMM", "EV_TOOBIG",
	}
)

// Symbols is an immutable lookup table from symbolic token to its qualified Java name.
//
// Create it with DefaultSymbols and extend it with With: both return new tables, existing ones are never changed.
type Symbols struct {
	entries map[string]Symbol
}

// DefaultSymbols returns a new table with the tokens known to the Perforce C++ API.
func DefaultSymbols() *Symbols {
	s := &Symbols{entries: make(map[string]Symbol, len(subsystemTokens)+len(severityTokens)+len(genericTokens))}
	for class, tokens := range map[TokenClass][]string{
		ClassSubsystem: subsystemTokens,
		ClassSeverity:  severityTokens,
		ClassGeneric:   genericTokens,
	} {
		for _, token := range tokens {
			s.entries[token] = Symbol{Token: token, Class: class, Qualified: class.JavaClass() + "." + token}
		}
	}
	return s
}

// With returns a copy of the table extended (or overridden) by extra, a map of token to qualified name.
//
// Qualified names must be of the form "<JavaClass>.<TOKEN>", where JavaClass is one of the classes returned
// by TokenClass.JavaClass.
func (s *Symbols) With(extra map[string]string) (*Symbols, error) {
	newS := &Symbols{entries: make(map[string]Symbol, len(s.entries)+len(extra))}
	for token, sym := range s.entries {
		newS.entries[token] = sym
	}
	for token, qualified := range extra {
		if token == "" {
			return nil, errors.Errorf("empty token for qualified name %q", qualified)
		}
		class, err := classOfQualified(qualified)
		if err != nil {
			return nil, errors.WithMessagef(err, "token %q", token)
		}
		newS.entries[token] = Symbol{Token: token, Class: class, Qualified: qualified}
	}
	return newS, nil
}

func classOfQualified(qualified string) (TokenClass, error) {
	javaClass, name, found := strings.Cut(qualified, ".")
	if !found || name == "" || strings.Contains(name, ".") {
		return 0, errors.Errorf("qualified name %q is not of the form <JavaClass>.<TOKEN>", qualified)
	}
	for _, class := range TokenClassValues() {
		if class.JavaClass() == javaClass {
			return class, nil
		}
	}
	return 0, errors.Errorf("unknown Java class %q in qualified name %q", javaClass, qualified)
}

// Lookup returns the Symbol for token, if it is known.
func (s *Symbols) Lookup(token string) (Symbol, bool) {
	sym, found := s.entries[token]
	return sym, found
}

// Qualify returns the qualified name of the token, or the token itself if it is not known.
func (s *Symbols) Qualify(token string) string {
	if sym, found := s.entries[token]; found {
		return sym.Qualified
	}
	return token
}

// Len returns the number of known tokens.
func (s *Symbols) Len() int {
	return len(s.entries)
}

// Tokens returns the known tokens of the given class, sorted.
func (s *Symbols) Tokens(class TokenClass) []string {
	var tokens []string
	for token, sym := range s.entries {
		if sym.Class == class {
			tokens = append(tokens, token)
		}
	}
	slices.Sort(tokens)
	return tokens
}
