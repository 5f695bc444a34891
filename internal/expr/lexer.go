package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokPower
	tokLParen
	tokRParen
	tokLess
	tokGreater
	tokLessEq
	tokGreaterEq
	tokEq
	tokNotEq
	tokIf
	tokElse
	tokAnd
	tokOr
	tokNot
)

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// keywords are the only bare words with non-identifier meaning.
var keywords = map[string]tokenKind{
	"if":   tokIf,
	"else": tokElse,
	"and":  tokAnd,
	"or":   tokOr,
	"not":  tokNot,
}

// lex splits the expression text into tokens. Only the characters needed
// by the whitelisted grammar are accepted; anything else is a syntax
// error, which keeps the evaluator sandboxed by construction.
func lex(text string) ([]token, error) {
	var toks []token
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++

		case unicode.IsDigit(r) || r == '.':
			start := i
			seenDot := false
			seenExp := false
			for i < len(runes) {
				c := runes[i]
				if unicode.IsDigit(c) {
					i++
					continue
				}
				if c == '.' && !seenDot && !seenExp {
					seenDot = true
					i++
					continue
				}
				if (c == 'e' || c == 'E') && !seenExp && i > start {
					// Exponent must be followed by a digit or sign.
					if i+1 < len(runes) && (unicode.IsDigit(runes[i+1]) || runes[i+1] == '+' || runes[i+1] == '-') {
						seenExp = true
						i++
						if runes[i] == '+' || runes[i] == '-' {
							i++
						}
						continue
					}
				}
				break
			}
			lit := string(runes[start:i])
			v, err := strconv.ParseFloat(lit, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", lit)}
			}
			toks = append(toks, token{kind: tokNumber, text: lit, num: v, pos: start})

		case unicode.IsLetter(r) || r == '_':
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			if kind, ok := keywords[word]; ok {
				toks = append(toks, token{kind: kind, text: word, pos: start})
			} else {
				toks = append(toks, token{kind: tokIdent, text: word, pos: start})
			}

		case r == '+':
			toks = append(toks, token{kind: tokPlus, text: "+", pos: i})
			i++
		case r == '-':
			toks = append(toks, token{kind: tokMinus, text: "-", pos: i})
			i++
		case r == '*':
			if i+1 < len(runes) && runes[i+1] == '*' {
				toks = append(toks, token{kind: tokPower, text: "**", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, text: "*", pos: i})
				i++
			}
		case r == '/':
			toks = append(toks, token{kind: tokSlash, text: "/", pos: i})
			i++
		case r == '%':
			toks = append(toks, token{kind: tokPercent, text: "%", pos: i})
			i++
		case r == '(':
			toks = append(toks, token{kind: tokLParen, text: "(", pos: i})
			i++
		case r == ')':
			toks = append(toks, token{kind: tokRParen, text: ")", pos: i})
			i++
		case r == '<':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{kind: tokLessEq, text: "<=", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokLess, text: "<", pos: i})
				i++
			}
		case r == '>':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{kind: tokGreaterEq, text: ">=", pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokGreater, text: ">", pos: i})
				i++
			}
		case r == '=':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{kind: tokEq, text: "==", pos: i})
				i += 2
			} else {
				return nil, &SyntaxError{Pos: i, Msg: "assignment is not allowed"}
			}
		case r == '!':
			if i+1 < len(runes) && runes[i+1] == '=' {
				toks = append(toks, token{kind: tokNotEq, text: "!=", pos: i})
				i += 2
			} else {
				return nil, &SyntaxError{Pos: i, Msg: "unexpected character '!'"}
			}

		default:
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(runes)})
	return toks, nil
}
