package sax

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTransitions(t *testing.T) {
	var transitionTests = []struct {
		from     State
		sym      Symbol
		expected State
	}{
		{stateStart, DelimiterSymbol, stateStart},
		{stateStart, TagOpenSymbol, stateStartTagOpen},
		{stateStart, LetterSymbol, stateInvalid},
		{stateStartTagOpen, QuestionSymbol, stateDefinitionOpen},
		{stateStartTagOpen, LetterSymbol, stateInvalid},
		{stateStartTagOpen, ExclamationSymbol, stateInvalid},
		{stateScan, DelimiterSymbol, stateScan},
		{stateScan, TagOpenSymbol, stateTagOpen},
		{stateScan, OtherSymbol, stateText},
		{stateText, DelimiterSymbol, stateText},
		{stateText, TagOpenSymbol, stateTextEnd},
		{stateTagOpen, QuestionSymbol, stateDefinitionOpen},
		{stateTagOpen, ColonSymbol, stateName},
		{stateTagOpen, MinusSymbol, stateInvalid},
		{stateName, MinusSymbol, stateInvalid},
		{stateName, TagCloseSymbol, stateTagEnd},
		{stateEndTagOpen, DelimiterSymbol, stateInvalid},
		{stateAfterName, UnderscoreSymbol, stateAttrName},
		{stateAttrName, EqualSymbol, stateAttrEqual},
		{stateAttrName, DelimiterSymbol, stateInvalid},
		{stateAttrEqual, QuoteSymbol, stateAttrQuote},
		{stateAttrQuote, QuoteSymbol, stateAttrEnd},
		{stateAttrQuote, TagOpenSymbol, stateAttrValue},
		{stateAttrValue, TagCloseSymbol, stateAttrValue},
		{stateAttrValue, QuoteSymbol, stateAttrEnd},
		{stateAttrEnd, LetterSymbol, stateInvalid},
		{stateAttrEnd, DelimiterSymbol, stateAfterName},
		{stateCommentStart, MinusSymbol, stateCommentDash},
		{stateCommentStart, TagCloseSymbol, stateComment},
		{stateCommentDash, LetterSymbol, stateCommentDashRestore},
		{stateCommentDashDash, TagCloseSymbol, stateCommentEnd},
		{stateCommentDashDash, MinusSymbol, stateCommentDashExtra},
		{stateCommentDashDash, LetterSymbol, stateCommentDashesRestore},
		{stateInvalid, LetterSymbol, stateInvalid},
		{stateCount, LetterSymbol, stateInvalid},
	}
	for _, tt := range transitionTests {
		t.Run(tt.from.String()+" "+tt.sym.String(), func(t *testing.T) {
			test.T(t, transition(tt.from, tt.sym), tt.expected)
		})
	}
}

func TestTransitionTable(t *testing.T) {
	for s := stateStart; s < stateCount; s++ {
		valid := 0
		for sym := TagOpenSymbol; sym < symbolCount; sym++ {
			next := transition(s, sym)
			if next != stateInvalid {
				valid++
				test.That(t, stateStart <= next && next < stateCount, "state", s, "symbol", sym, "must lead to a known state")
			}
		}
		if s.fictive() {
			test.T(t, valid, 0, "fictive state "+s.String()+" must not consume characters")
		} else {
			test.That(t, valid > 0, "state", s, "must accept at least one symbol")
		}
	}
}

func TestStateString(t *testing.T) {
	test.String(t, stateStart.String(), "Start")
	test.String(t, stateCommentEnd.String(), "CommentEnd")
	test.String(t, stateInvalid.String(), "Invalid(-1)")
	test.String(t, State(100).String(), "Invalid(100)")
	for s := stateStart; s < stateCount; s++ {
		test.That(t, s.String() != "", "state", int(s), "must have a name")
	}
}
