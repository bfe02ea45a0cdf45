package agent

import (
	"strings"
)

// SystemPrompt builds the agent's system prompt, appending previously
// collected slot values in declared order.
func SystemPrompt(p Profile, collected map[string]string) string {
	if len(collected) == 0 || len(p.RequiredInputs) == 0 {
		return p.Prompt
	}

	var b strings.Builder
	b.WriteString(p.Prompt)
	b.WriteString("\n\nDetails provided by the student:\n")
	for _, in := range p.RequiredInputs {
		value, ok := collected[in.Key]
		if !ok {
			continue
		}
		b.WriteString("- ")
		b.WriteString(in.Label)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatResponse frames a raw model reply with the agent's section title
// and disclaimer footer. Agents without a section title (General) pass the
// reply through unchanged.
func FormatResponse(p Profile, raw string) string {
	if p.SectionTitle == "" {
		return raw
	}
	return "\n### " + p.SectionTitle + "\n\n" + raw + "\n\n---\n*" + p.Footer + "*\n"
}

// ExtractBody is the inverse of FormatResponse: it strips the section
// header and footer, recovering the raw model text. Input that does not
// carry the agent's framing is returned unchanged.
func ExtractBody(p Profile, formatted string) string {
	if p.SectionTitle == "" {
		return formatted
	}
	prefix := "\n### " + p.SectionTitle + "\n\n"
	suffix := "\n\n---\n*" + p.Footer + "*\n"
	if !strings.HasPrefix(formatted, prefix) || !strings.HasSuffix(formatted, suffix) {
		return formatted
	}
	body := strings.TrimPrefix(formatted, prefix)
	return strings.TrimSuffix(body, suffix)
}

// ValidateReply checks a generated reply against the agent's minimum
// length. An under-length reply is replaced with the agent's apology text;
// this is a soft failure, never an error.
func ValidateReply(p Profile, raw string) (string, bool) {
	if len(raw) < p.MinReplyLen {
		return p.IncompleteReply, false
	}
	return raw, true
}
