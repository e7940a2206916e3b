/*
File    : golox/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ndjordjevic/golox/report"
	"github.com/ndjordjevic/golox/token"
)

// scan is a small test helper that scans source and returns its tokens.
func scan(source string) ([]token.Token, *report.Reporter) {
	var buf bytes.Buffer
	r := report.New(&buf)
	return New(source, r).ScanTokens(), r
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, r := scan("(){};,+-*")
	assert.False(t, r.HadError)
	want := []token.Type{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.SEMICOLON, token.COMMA, token.PLUS, token.MINUS, token.STAR, token.EOF,
	}
	got := make([]token.Type, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Type)
	}
	assert.Equal(t, want, got)
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"!", token.BANG},
		{"!=", token.BANG_EQUAL},
		{"=", token.EQUAL},
		{"==", token.EQUAL_EQUAL},
		{"<", token.LESS},
		{"<=", token.LESS_EQUAL},
		{">", token.GREATER},
		{">=", token.GREATER_EQUAL},
	}
	for _, tc := range tests {
		tokens, _ := scan(tc.input)
		assert.Equal(t, tc.want, tokens[0].Type, "input %q", tc.input)
	}
}

func TestScanTokens_Keywords(t *testing.T) {
	source := "and class else false for fun if nil or print return super this true var while myVar"
	tokens, _ := scan(source)
	want := []token.Type{
		token.AND, token.CLASS, token.ELSE, token.FALSE, token.FOR, token.FUN,
		token.IF, token.NIL, token.OR, token.PRINT, token.RETURN, token.SUPER,
		token.THIS, token.TRUE, token.VAR, token.WHILE, token.IDENTIFIER, token.EOF,
	}
	got := make([]token.Type, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Type)
	}
	assert.Equal(t, want, got)
}

func TestScanTokens_NumberLiteral(t *testing.T) {
	tokens, _ := scan("123 45.67")
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, r := scan(`"hello world"`)
	assert.False(t, r.HadError)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, r := scan(`"unterminated`)
	assert.True(t, r.HadError)
}

func TestScanTokens_LineCommentsAndBlanks(t *testing.T) {
	tokens, _ := scan("var a = 1; // comment\nvar b = 2;")
	assert.Equal(t, 1, tokens[0].Line)
	// 'b' is on line 2.
	var bTok token.Token
	for _, tok := range tokens {
		if tok.Type == token.IDENTIFIER && tok.Lexeme == "b" {
			bTok = tok
		}
	}
	assert.Equal(t, 2, bTok.Line)
}

func TestScanTokens_BlockComment(t *testing.T) {
	tokens, r := scan("/* a\nb */ var x;")
	assert.False(t, r.HadError)
	// var token should be on line 2 since the comment spans a newline.
	assert.Equal(t, token.VAR, tokens[0].Type)
	assert.Equal(t, 2, tokens[0].Line)
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	_, r := scan("@")
	assert.True(t, r.HadError)
}
