package rules

import (
	"fmt"
	"io"
)

// WriteLexerGrammar emits the ANTLR lexer grammar text for the set.
// Rule order is list order, so emission is deterministic.
func (s *Set) WriteLexerGrammar(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "lexer grammar %s;\n\n", s.LexerName()); err != nil {
		return err
	}
	for _, r := range s.Lexer {
		if _, err := fmt.Fprintf(w, "%s: %s;\n", r.Name, r.Body); err != nil {
			return err
		}
	}
	return nil
}

// WriteParserGrammar emits the ANTLR parser grammar text for the set.
// The parser grammar pulls its token vocabulary from the lexer grammar.
func (s *Set) WriteParserGrammar(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "parser grammar %s;\n\n", s.ParserName()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "options { tokenVocab = %s; }\n\n", s.LexerName()); err != nil {
		return err
	}
	for _, r := range s.Parser {
		if _, err := fmt.Fprintf(w, "%s: %s;\n", r.Name, r.Body); err != nil {
			return err
		}
	}
	return nil
}
