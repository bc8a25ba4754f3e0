package story

import (
	"cmp"
	"fmt"
	"strings"

	"dreamweaver/pkg/schema"
)

const inventTitle = "Create a catchy title relevant to the plot"

const storyRequirements = `**Story Requirements**:
- Ensure it has a strong beginning, a compelling middle, and a satisfying ending.
- Maintain clear plot structure and emotional flow.
- Ensure content is age-appropriate (safe for general audiences).
- NO plagiarism.
- Use creative dialogues and vivid descriptions.

**Output Format**:
Please return the response in the following format (plain text):

[TITLE]

[STORY CONTENT]
`

// BuildPrompt renders the storyteller instruction for p. The output is a pure function of p.
func BuildPrompt(p schema.StoryParams) string {
	var sb strings.Builder

	sb.WriteString("You are a master storyteller. Write a unique, creative, and engaging story based on the following constraints:\n\n")
	fmt.Fprintf(&sb, "1. **Title**: %s\n", cmp.Or(strings.TrimSpace(p.Title), inventTitle))
	fmt.Fprintf(&sb, "2. **Genre**: %s\n", p.Genre)
	fmt.Fprintf(&sb, "3. **Main Characters**: %s\n", strings.TrimSpace(p.Characters))
	fmt.Fprintf(&sb, "4. **Length**: %s\n", p.Length)
	fmt.Fprintf(&sb, "5. **Language**: %s\n\n", p.Language)
	sb.WriteString(storyRequirements)

	return sb.String()
}
