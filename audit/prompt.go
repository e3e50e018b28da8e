package audit

import (
	"fmt"
	"strings"
)

const (
	// SystemRole is sent as the system message of every completion request
	SystemRole = "You are an expert SEO consultant."

	// Score is returned for every audit; no scoring is computed
	Score = 75

	MaxCompetitors = 10
)

// BuildPrompt renders the user message sent to the language model.
func BuildPrompt(meta MetaTags, keyword string, competitors []string) string {
	quoted := make([]string, len(competitors))
	for i, c := range competitors {
		quoted[i] = "'" + c + "'"
	}

	var b strings.Builder
	b.WriteString("You are an expert SEO analyst. Analyze this website:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", meta.Title)
	fmt.Fprintf(&b, "Description: %s\n", meta.Description)
	fmt.Fprintf(&b, "Keyword: %s\n", keyword)
	fmt.Fprintf(&b, "Competitors: [%s]\n\n", strings.Join(quoted, ", "))
	b.WriteString("Suggest:\n")
	b.WriteString("- Brand voice improvement\n")
	b.WriteString("- Visual suggestions (logo, colors, layout)\n")
	b.WriteString("- Content & product presentation changes\n")
	return b.String()
}
