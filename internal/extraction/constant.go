package extraction

// Fixed keyword tables driving classification, titling, and tag inference.
// The confidence values are hand-tuned; changing them changes which drafts
// reviewers see first, so keep them in sync with the tests.

var taskPhrases = []string{
	"remind me to",
	"i need to",
	"i have to",
	"i should",
	"todo",
	"to do",
}

var taskVerbs = []string{
	"call",
	"email",
	"text",
	"message",
	"buy",
	"pick up",
	"schedule",
	"book",
	"cancel",
	"pay",
	"renew",
	"send",
	"submit",
	"order",
}

var notePhrases = []string{
	"note that",
	"remember that",
	"fyi",
	"idea",
	"thought",
}

// tagTable maps a tag to its trigger keywords. Order matters: tags are
// emitted in table order.
var tagTable = []struct {
	tag      string
	keywords []string
}{
	{tag: "home", keywords: []string{"home", "house", "apartment"}},
	{tag: "work", keywords: []string{"work", "office", "project", "meeting"}},
	{tag: "shopping", keywords: []string{"buy", "order", "shopping", "grocery", "groceries"}},
	{tag: "health", keywords: []string{"doctor", "dentist", "gym", "workout"}},
	{tag: "finance", keywords: []string{"pay", "invoice", "bill", "tax"}},
}

const (
	confidenceNotePhrase  = 0.85
	confidenceTaskPhrase  = 0.85
	confidenceTaskVerb    = 0.7
	confidenceNoteDefault = 0.55

	noteTitleMaxLen = 40
)
