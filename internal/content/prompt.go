package content

import (
	"fmt"
	"strings"
)

const defaultReplyWordLimit = 150

// SystemPrompt renders the chat assistant's instructions from the profile.
// The assistant answers only from what is listed here.
func SystemPrompt(p *Profile) string {
	first := p.FirstName()
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s's portfolio AI assistant. You answer questions about %s based on the following information. Be friendly, concise, and professional.\n", first, first)

	fmt.Fprintf(&b, "\nABOUT %s:\n", strings.ToUpper(first))
	if p.Headline != "" {
		fmt.Fprintf(&b, "- %s\n", p.Headline)
	}
	for _, g := range p.Skills {
		if g.Category == "Languages" {
			fmt.Fprintf(&b, "- Skilled in %s\n", strings.Join(g.Items, ", "))
			continue
		}
		fmt.Fprintf(&b, "- %s: %s\n", g.Category, strings.Join(g.Items, ", "))
	}

	experience := p.Assistant.Experience
	if len(experience) == 0 {
		for _, pos := range append(append([]Position{}, p.Experience...), p.Internships...) {
			experience = append(experience, fmt.Sprintf("%s: %s", pos.Org, pos.Role))
		}
	}
	section(&b, "EXPERIENCE", experience)

	projects := make([]string, len(p.Projects))
	for i, pr := range p.Projects {
		line := pr.Title + ": " + pr.Description
		if pr.Status != "" {
			line += " (" + pr.Status + ")"
		}
		if len(pr.Tech) > 0 {
			line += " - " + strings.Join(pr.Tech, ", ")
		}
		projects[i] = line
	}
	section(&b, "PROJECTS", projects)

	certs := make([]string, len(p.Certificates))
	for i, c := range p.Certificates {
		certs[i] = c.Title
		if c.Issuer != "" && !strings.HasPrefix(c.Title, c.Issuer) {
			certs[i] += " (" + c.Issuer + ")"
		}
	}
	section(&b, "CERTIFICATIONS", certs)

	services := make([]string, len(p.Services))
	for i, s := range p.Services {
		services[i] = s.Title
	}
	section(&b, "SERVICES", services)

	if p.Contact.GitHub != "" {
		fmt.Fprintf(&b, "\nGitHub: %s\n", p.Contact.GitHub)
	}

	limit := p.Assistant.ReplyWordLimit
	if limit <= 0 {
		limit = defaultReplyWordLimit
	}
	fmt.Fprintf(&b, "\nIf asked something not covered above, politely say you only have information about %s's portfolio. Keep responses under %d words.", first, limit)
	return b.String()
}

func section(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", title)
	for _, l := range lines {
		fmt.Fprintf(b, "- %s\n", l)
	}
}
