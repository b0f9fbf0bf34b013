package sax

import (
	"strconv"
)

// State is a node of the automaton.
type State int8

const stateInvalid State = -1

// The states marked fictive never consume a character themselves: their action fires an event and redirects to another state within the same step.
const (
	stateStart                State = iota // optional delimiters, then '<'
	stateStartTagOpen                      // first '<', only '?' may follow
	stateTagOpen                           // '<' while scanning
	stateName                              // tag or definition name
	stateDefinitionClose                   // '?' in tag, '>' must follow
	stateAfterName                         // delimiter after name or attribute
	stateTagEnd                            // fictive, fires the tag event
	stateSelfClose                         // '/' in tag, '>' must follow
	stateScan                              // between constructs
	stateEndTagOpen                        // "</"
	stateText                              // text run
	stateAttrName                          // attribute name
	stateAttrEqual                         // '=' after attribute name
	stateAttrValue                         // attribute value
	stateAttrQuote                         // opening quote of attribute value
	stateAttrEnd                           // closing quote of attribute value
	stateTextEnd                           // fictive, fires the text event
	stateDefinitionOpen                    // "<?"
	stateBang                              // "<!"
	stateCommentOpen                       // "<!-"
	stateCommentStart                      // "<!--"
	stateComment                           // comment content
	stateCommentDash                       // '-' in comment
	stateCommentDashDash                   // "--" in comment, '>' ends it
	stateCommentDashRestore                // fictive, "-" was content
	stateCommentDashesRestore              // fictive, "--" was content
	stateCommentDashExtra                  // fictive, "---" keeps the first dash as content
	stateCommentEnd                        // fictive, fires the comment event

	stateCount // must be last
)

var stateNames = [stateCount]string{
	stateStart:                "Start",
	stateStartTagOpen:         "StartTagOpen",
	stateTagOpen:              "TagOpen",
	stateName:                 "Name",
	stateDefinitionClose:      "DefinitionClose",
	stateAfterName:            "AfterName",
	stateTagEnd:               "TagEnd",
	stateSelfClose:            "SelfClose",
	stateScan:                 "Scan",
	stateEndTagOpen:           "EndTagOpen",
	stateText:                 "Text",
	stateAttrName:             "AttrName",
	stateAttrEqual:            "AttrEqual",
	stateAttrValue:            "AttrValue",
	stateAttrQuote:            "AttrQuote",
	stateAttrEnd:              "AttrEnd",
	stateTextEnd:              "TextEnd",
	stateDefinitionOpen:       "DefinitionOpen",
	stateBang:                 "Bang",
	stateCommentOpen:          "CommentOpen",
	stateCommentStart:         "CommentStart",
	stateComment:              "Comment",
	stateCommentDash:          "CommentDash",
	stateCommentDashDash:      "CommentDashDash",
	stateCommentDashRestore:   "CommentDashRestore",
	stateCommentDashesRestore: "CommentDashesRestore",
	stateCommentDashExtra:     "CommentDashExtra",
	stateCommentEnd:           "CommentEnd",
}

// String returns the string representation of a State.
func (s State) String() string {
	if 0 <= s && s < stateCount {
		return stateNames[s]
	}
	return "Invalid(" + strconv.Itoa(int(s)) + ")"
}

func (s State) fictive() bool {
	switch s {
	case stateTagEnd, stateTextEnd, stateCommentDashRestore, stateCommentDashesRestore, stateCommentDashExtra, stateCommentEnd:
		return true
	}
	return false
}

////////////////////////////////////////////////////////////////

// transitions maps (state, symbol) to the next state. Missing pairs hold stateInvalid.
var transitions [stateCount][symbolCount]State

func on(from, to State, syms ...Symbol) {
	for _, sym := range syms {
		transitions[from][sym] = to
	}
}

func otherwise(from, to State) {
	for sym := range transitions[from] {
		if transitions[from][sym] == stateInvalid {
			transitions[from][sym] = to
		}
	}
}

func init() {
	for s := range transitions {
		for sym := range transitions[s] {
			transitions[s][sym] = stateInvalid
		}
	}

	// the document must open with a definition
	on(stateStart, stateStart, DelimiterSymbol)
	on(stateStart, stateStartTagOpen, TagOpenSymbol)
	on(stateStartTagOpen, stateDefinitionOpen, QuestionSymbol)

	on(stateScan, stateScan, DelimiterSymbol)
	on(stateScan, stateTagOpen, TagOpenSymbol)
	otherwise(stateScan, stateText)
	on(stateText, stateTextEnd, TagOpenSymbol)
	otherwise(stateText, stateText)

	on(stateTagOpen, stateDefinitionOpen, QuestionSymbol)
	on(stateTagOpen, stateEndTagOpen, SlashSymbol)
	on(stateTagOpen, stateBang, ExclamationSymbol)
	on(stateTagOpen, stateName, nameSymbols...)
	on(stateEndTagOpen, stateName, nameSymbols...)
	on(stateDefinitionOpen, stateName, nameSymbols...)

	on(stateName, stateName, nameSymbols...)
	on(stateName, stateDefinitionClose, QuestionSymbol)
	on(stateName, stateAfterName, DelimiterSymbol)
	on(stateName, stateSelfClose, SlashSymbol)
	on(stateName, stateTagEnd, TagCloseSymbol)

	on(stateAfterName, stateAfterName, DelimiterSymbol)
	on(stateAfterName, stateAttrName, nameSymbols...)
	on(stateAfterName, stateDefinitionClose, QuestionSymbol)
	on(stateAfterName, stateSelfClose, SlashSymbol)
	on(stateAfterName, stateTagEnd, TagCloseSymbol)

	on(stateAttrName, stateAttrName, nameSymbols...)
	on(stateAttrName, stateAttrEqual, EqualSymbol)
	on(stateAttrEqual, stateAttrQuote, QuoteSymbol)
	on(stateAttrQuote, stateAttrEnd, QuoteSymbol)
	otherwise(stateAttrQuote, stateAttrValue)
	on(stateAttrValue, stateAttrEnd, QuoteSymbol)
	otherwise(stateAttrValue, stateAttrValue)

	on(stateAttrEnd, stateAfterName, DelimiterSymbol)
	on(stateAttrEnd, stateDefinitionClose, QuestionSymbol)
	on(stateAttrEnd, stateSelfClose, SlashSymbol)
	on(stateAttrEnd, stateTagEnd, TagCloseSymbol)

	on(stateDefinitionClose, stateTagEnd, TagCloseSymbol)
	on(stateSelfClose, stateTagEnd, TagCloseSymbol)

	on(stateBang, stateCommentOpen, MinusSymbol)
	on(stateCommentOpen, stateCommentStart, MinusSymbol)
	on(stateCommentStart, stateCommentDash, MinusSymbol)
	otherwise(stateCommentStart, stateComment)
	on(stateComment, stateCommentDash, MinusSymbol)
	otherwise(stateComment, stateComment)
	on(stateCommentDash, stateCommentDashDash, MinusSymbol)
	otherwise(stateCommentDash, stateCommentDashRestore)
	on(stateCommentDashDash, stateCommentEnd, TagCloseSymbol)
	on(stateCommentDashDash, stateCommentDashExtra, MinusSymbol)
	otherwise(stateCommentDashDash, stateCommentDashesRestore)
}

// transition returns the next state for (s, sym), or stateInvalid.
func transition(s State, sym Symbol) State {
	if s < 0 || stateCount <= s {
		return stateInvalid
	}
	return transitions[s][sym]
}
