package sax

import (
	"strconv"
)

// Symbol is the class of a character as consumed by the automaton.
type Symbol uint8

// Symbol values.
const (
	TagOpenSymbol     Symbol = iota // <
	QuestionSymbol                  // ?
	DelimiterSymbol                 // space, tab and newline
	EqualSymbol                     // =
	QuoteSymbol                     // "
	SlashSymbol                     // /
	ExclamationSymbol               // !
	MinusSymbol                     // -
	UnderscoreSymbol                // _
	DigitSymbol                     // 0-9
	LetterSymbol                    // a-z A-Z
	ColonSymbol                     // :
	TagCloseSymbol                  // >
	OtherSymbol

	symbolCount // must be last
)

// String returns the string representation of a Symbol.
func (sym Symbol) String() string {
	switch sym {
	case TagOpenSymbol:
		return "TagOpen"
	case QuestionSymbol:
		return "Question"
	case DelimiterSymbol:
		return "Delimiter"
	case EqualSymbol:
		return "Equal"
	case QuoteSymbol:
		return "Quote"
	case SlashSymbol:
		return "Slash"
	case ExclamationSymbol:
		return "Exclamation"
	case MinusSymbol:
		return "Minus"
	case UnderscoreSymbol:
		return "Underscore"
	case DigitSymbol:
		return "Digit"
	case LetterSymbol:
		return "Letter"
	case ColonSymbol:
		return "Colon"
	case TagCloseSymbol:
		return "TagClose"
	case OtherSymbol:
		return "Other"
	}
	return "Invalid(" + strconv.Itoa(int(sym)) + ")"
}

// nameSymbols are the classes allowed in tag, definition and attribute names.
var nameSymbols = []Symbol{UnderscoreSymbol, DigitSymbol, LetterSymbol, ColonSymbol}

var symbolTable [256]Symbol

func init() {
	for i := range symbolTable {
		symbolTable[i] = OtherSymbol
	}
	for c := 'a'; c <= 'z'; c++ {
		symbolTable[c] = LetterSymbol
		symbolTable[c-'a'+'A'] = LetterSymbol
	}
	for c := '0'; c <= '9'; c++ {
		symbolTable[c] = DigitSymbol
	}
	symbolTable[' '] = DelimiterSymbol
	symbolTable['\t'] = DelimiterSymbol
	symbolTable['\n'] = DelimiterSymbol
	symbolTable['<'] = TagOpenSymbol
	symbolTable['>'] = TagCloseSymbol
	symbolTable['?'] = QuestionSymbol
	symbolTable['='] = EqualSymbol
	symbolTable['"'] = QuoteSymbol
	symbolTable['/'] = SlashSymbol
	symbolTable['!'] = ExclamationSymbol
	symbolTable['-'] = MinusSymbol
	symbolTable['_'] = UnderscoreSymbol
	symbolTable[':'] = ColonSymbol
}

// Classify returns the symbol class of c. Bytes outside ASCII, including every byte of a multi-byte UTF-8 sequence, are OtherSymbol.
func Classify(c byte) Symbol {
	return symbolTable[c]
}
