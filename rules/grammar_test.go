package rules

import (
	"bytes"
	"testing"
)

func TestWriteLexerGrammar(t *testing.T) {
	set := exampleSet()

	var buf bytes.Buffer
	if err := set.WriteLexerGrammar(&buf); err != nil {
		t.Fatal(err)
	}

	want := "lexer grammar ExprLexer;\n\n" +
		"NUMBER: [0-9]+;\n" +
		"PLUS: '+';\n" +
		"WS: [ \\t\\r\\n]+ -> skip;\n"
	if buf.String() != want {
		t.Errorf("lexer grammar = %q, want %q", buf.String(), want)
	}
}

func TestWriteParserGrammar(t *testing.T) {
	set := exampleSet()

	var buf bytes.Buffer
	if err := set.WriteParserGrammar(&buf); err != nil {
		t.Fatal(err)
	}

	want := "parser grammar ExprParser;\n\n" +
		"options { tokenVocab = ExprLexer; }\n\n" +
		"expr: term (PLUS term)*;\n" +
		"term: NUMBER;\n"
	if buf.String() != want {
		t.Errorf("parser grammar = %q, want %q", buf.String(), want)
	}
}

func TestGrammarEmissionDeterministic(t *testing.T) {
	set := exampleSet()

	var first, second bytes.Buffer
	if err := set.WriteParserGrammar(&first); err != nil {
		t.Fatal(err)
	}
	if err := set.WriteParserGrammar(&second); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two emissions of the same rule set differ")
	}
}
