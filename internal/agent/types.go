package agent

// Kind identifies one of the specialized conversational agents.
// The set is closed and defined at process start.
type Kind string

const (
	KindEmail    Kind = "email"
	KindResearch Kind = "research"
	KindAcademic Kind = "academic"
	KindRedirect Kind = "redirect"
	KindGeneral  Kind = "general"
)

// Valid reports whether k is one of the known agent kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindEmail, KindResearch, KindAcademic, KindRedirect, KindGeneral:
		return true
	}
	return false
}

// RequiredInput is a single slot an agent must collect before it can
// produce a final answer.
type RequiredInput struct {
	Key      string // slot key, stable identifier
	Label    string // human-readable label used when rendering collected values
	Question string // question asked to the user to fill the slot
}

// Profile is the static descriptor of one agent. Profiles are built once
// at startup and never mutated; they are safe for concurrent reads.
type Profile struct {
	Kind        Kind
	Name        string
	Description string

	// Keywords is the hand-curated bag used by the classifier.
	Keywords []string

	// Priority biases classification toward more specific agents.
	Priority int

	// Prompt is the agent's system prompt.
	Prompt string

	// RequiredInputs are solicited one at a time, in declared order.
	RequiredInputs []RequiredInput

	// MinReplyLen is the minimum acceptable generated reply length in
	// characters. Shorter replies are replaced with IncompleteReply.
	MinReplyLen     int
	IncompleteReply string

	// SectionTitle and Footer frame the formatted final reply. Empty
	// SectionTitle means the reply is passed through unformatted.
	SectionTitle string
	Footer       string
}
