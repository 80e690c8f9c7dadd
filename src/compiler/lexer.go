package compiler

import (
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
)

// Token is a word or one of the symbols ( ) = ; together with where it
// starts in the source. Line and Column are 1-based.
type Token struct {
	Text   string
	Line   int
	Column int
}

func (t Token) String() string {
	return t.Text
}

const (
	Semicolon = ";"
	Equals    = boolexpr.Equals
)

func isWordStart(c rune) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isSymbol(c rune) bool {
	return strings.ContainsRune("()=;", c)
}

// Tokenize turns source text into an ordered list of tokens. Everything from
// a '#' to the end of its line is ignored.
func Tokenize(source string) ([]Token, error) {
	var tokens []Token
	var word strings.Builder
	var wordStart Token

	line, column := 1, 0
	inComment := false

	endWord := func() {
		if word.Len() > 0 {
			wordStart.Text = word.String()
			tokens = append(tokens, wordStart)
			word.Reset()
		}
	}

	for _, c := range source {
		column++
		if c == '\n' {
			endWord()
			inComment = false
			line++
			column = 0
			continue
		}
		if inComment {
			continue
		}

		switch {
		case c == '#':
			endWord()
			inComment = true

		case isWordStart(c) || (isDigit(c) && word.Len() > 0):
			if word.Len() == 0 {
				wordStart = Token{Line: line, Column: column}
			}
			word.WriteRune(c)

		case isDigit(c):
			return nil, NewLexError(ErrDigitLedWord, c, line, column)

		case isBlank(c):
			endWord()

		case isSymbol(c):
			endWord()
			tokens = append(tokens, Token{Text: string(c), Line: line, Column: column})

		default:
			return nil, NewLexError(ErrInvalidCharacter, c, line, column)
		}
	}
	endWord()

	return tokens, nil
}
