// Package rules holds the rule model driving parser generation: an
// ordered set of lexer and parser rule declarations whose first parser
// rule is the entry point of the generated parser.
package rules

import (
	"fmt"
	"strings"
	"unicode"
)

// Rule is a single grammar rule. Body is ANTLR production text and is
// passed through verbatim; checking it is the grammar compiler's job.
type Rule struct {
	Name string `yaml:"name"`
	Body string `yaml:"body"`
}

// Set is an ordered rule set for one grammar. Parser rule order is
// significant: the first parser rule is the root rule that seeds a full
// parse.
type Set struct {
	Grammar string `yaml:"grammar"`
	Lexer   []Rule `yaml:"lexer"`
	Parser  []Rule `yaml:"parser"`
}

// LexerName returns the name of the compiler-generated lexer.
func (s *Set) LexerName() string { return s.Grammar + "Lexer" }

// ParserName returns the name of the compiler-generated parser.
func (s *Set) ParserName() string { return s.Grammar + "Parser" }

// Root returns the root rule. Callers must Validate first; Root on an
// empty set panics, matching the precondition contract.
func (s *Set) Root() Rule {
	return s.Parser[0]
}

// Validate checks the preconditions generation depends on. It runs
// before any I/O; a failure here is a caller bug, not a recoverable
// condition.
func (s *Set) Validate() error {
	if s.Grammar == "" {
		return fmt.Errorf("rule set has no grammar name")
	}
	if len(s.Parser) == 0 {
		return fmt.Errorf("rule set %s declares no parser rules", s.Grammar)
	}
	seen := make(map[string]bool)
	for _, r := range append(append([]Rule{}, s.Lexer...), s.Parser...) {
		if r.Name == "" {
			return fmt.Errorf("rule set %s contains a rule without a name", s.Grammar)
		}
		if seen[r.Name] {
			return fmt.Errorf("rule set %s declares rule %s twice", s.Grammar, r.Name)
		}
		seen[r.Name] = true
	}
	return nil
}

// Exported converts a rule name to the method name the ANTLR Go target
// generates for it (first rune upper-cased).
func Exported(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// PackageName returns the Go package name used for the compiler's
// generated artifacts.
func (s *Set) PackageName() string {
	return strings.ToLower(s.Grammar)
}
