package intent

import "strings"

// Action is the classified category of a user utterance.
type Action string

// Action constants
const (
	ActionFindItem Action = "FIND_ITEM"
	ActionAddItem  Action = "ADD_ITEM"
	ActionCheckout Action = "CHECKOUT"
	ActionShowList Action = "SHOW_LIST"
	ActionUnknown  Action = "UNKNOWN"
)

// Command is a classified utterance. Phrase is only set for the item
// actions; Raw always carries the original utterance for fallback replies.
type Command struct {
	Action Action `json:"action"`
	Phrase string `json:"phrase,omitempty"`
	Raw    string `json:"raw"`
}

// Rule priority is fixed and first-match-wins: checkout/pay outranks
// add/buy, which outranks find/where, which outranks list/show. The order
// is a contract: "find and add milk" classifies as ADD_ITEM because "add"
// is ranked above "find", not because it occurs first. Keyword presence is
// a plain substring test.
func Classify(utterance string) Command {
	text := strings.ToLower(strings.TrimSpace(utterance))
	if text == "" {
		return Command{Action: ActionUnknown, Raw: ""}
	}

	switch {
	case containsAny(text, "checkout", "pay"):
		return Command{Action: ActionCheckout, Raw: utterance}
	case containsAny(text, "add", "buy"):
		return Command{Action: ActionAddItem, Phrase: extractAddPhrase(text), Raw: utterance}
	case containsAny(text, "find", "where"):
		return Command{Action: ActionFindItem, Phrase: extractFindPhrase(text), Raw: utterance}
	case containsAny(text, "list", "show"):
		return Command{Action: ActionShowList, Raw: utterance}
	}
	return Command{Action: ActionUnknown, Raw: utterance}
}

// extractAddPhrase prefers the text between "add" and "to" ("add milk to
// list" -> "milk"), falling back to the text after "buy", then to the
// remainder after whichever trigger matched.
func extractAddPhrase(text string) string {
	if rest, ok := after(text, "add"); ok {
		if i := strings.Index(rest, " to "); i >= 0 {
			rest = rest[:i]
		}
		rest = strings.TrimSuffix(rest, " to")
		if p := cleanPhrase(rest); p != "" {
			return p
		}
	}
	if rest, ok := after(text, "buy"); ok {
		if p := cleanPhrase(rest); p != "" {
			return p
		}
	}
	return remainderAfter(text, "add", "buy")
}

// extractFindPhrase prefers the text after "find", falling back to the text
// after "where" with leading filler ("is", "can", "i") stripped.
func extractFindPhrase(text string) string {
	if rest, ok := after(text, "find"); ok {
		if p := cleanPhrase(rest); p != "" {
			return p
		}
	}
	if rest, ok := after(text, "where"); ok {
		rest = stripLeadingWords(rest, "is", "can", "i")
		if p := cleanPhrase(rest); p != "" {
			return p
		}
	}
	return remainderAfter(text, "find", "where")
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// after returns the text following the first occurrence of kw.
func after(text, kw string) (string, bool) {
	i := strings.Index(text, kw)
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(text[i+len(kw):]), true
}

func remainderAfter(text string, keywords ...string) string {
	for _, kw := range keywords {
		if rest, ok := after(text, kw); ok {
			return cleanPhrase(rest)
		}
	}
	return ""
}

// cleanPhrase trims punctuation and leading articles from an extracted
// phrase ("the red apples?" -> "red apples").
func cleanPhrase(phrase string) string {
	phrase = strings.Trim(strings.TrimSpace(phrase), "?.!,")
	return stripLeadingWords(phrase, "a", "an", "the", "my", "some")
}

func stripLeadingWords(phrase string, fillers ...string) string {
	words := strings.Fields(phrase)
	for len(words) > 0 {
		stripped := false
		for _, f := range fillers {
			if words[0] == f {
				words = words[1:]
				stripped = true
				break
			}
		}
		if !stripped {
			break
		}
	}
	return strings.Join(words, " ")
}
