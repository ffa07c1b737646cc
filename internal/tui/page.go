package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/27piyush27/folio/internal/content"
	"github.com/27piyush27/folio/internal/site"
)

// Terminal cells are mapped to page pixels so the scroll and motion
// engines keep their browser thresholds.
const (
	LinePx = 20.0
	CellPx = 8.0
)

// block is a section's line range in the scrolling body.
type block struct {
	id     string
	top    int
	height int
}

// renderBio renders the markdown biography for the terminal. The raw
// markdown is returned if rendering fails.
func renderBio(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// renderBody lays out every navigation section in order. Sections not yet
// revealed are drawn faint.
func renderBody(p *content.Profile, bio string, width int, revealed func(string) bool, st styles) (string, []block) {
	var lines []string
	var blocks []block
	for _, nav := range p.Navigation {
		body := sectionBody(p, nav.Target, bio, width, st)
		if !revealed(nav.Target) {
			body = st.Faint.Render(body)
		}
		section := st.Heading.Render(nav.Name) + "\n\n" + body + "\n"
		sectionLines := strings.Split(section, "\n")
		blocks = append(blocks, block{id: nav.Target, top: len(lines), height: len(sectionLines)})
		lines = append(lines, sectionLines...)
	}
	return strings.Join(lines, "\n"), blocks
}

func sectionBody(p *content.Profile, id, bio string, width int, st styles) string {
	wrap := lipgloss.NewStyle().Width(width)
	var b strings.Builder

	switch id {
	case "home":
		if p.Availability != "" {
			b.WriteString(st.Status.Render(p.Availability) + "\n")
		}
		b.WriteString(wrap.Render(p.Summary))
	case "about":
		b.WriteString(bio + "\n\n")
		b.WriteString(st.Meta.Render("Education: ") + p.Education + "\n")
		b.WriteString(st.Meta.Render("Location:  ") + p.Location)
	case "experience":
		writePositions(&b, p.Experience, wrap, st)
	case "internships":
		writePositions(&b, p.Internships, wrap, st)
	case "skills":
		for i, g := range p.Skills {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(wrap.Render(st.Title.Render(g.Category+": ") + strings.Join(g.Items, ", ")))
		}
	case "services":
		for i, s := range p.Services {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(st.Title.Render(s.Title) + "\n" + wrap.Render(s.Description))
		}
	case "projects":
		for i, pr := range p.Projects {
			if i > 0 {
				b.WriteString("\n\n")
			}
			title := st.Title.Render(pr.Title)
			if pr.Status != "" {
				title += " " + st.Status.Render("["+pr.Status+"]")
			}
			b.WriteString(title + "\n" + wrap.Render(pr.Description) + "\n")
			b.WriteString(st.Meta.Render(strings.Join(pr.Tech, " · ")))
		}
	case "certificates":
		for i, c := range p.Certificates {
			if i > 0 {
				b.WriteString("\n")
			}
			line := fmt.Sprintf("%s (%s)", st.Title.Render(c.Title), c.Issuer)
			if c.File != "" {
				line += "  " + st.Meta.Render("/"+site.CertificateDir+"/"+c.File)
			}
			b.WriteString(line)
		}
	case "contact":
		c := p.Contact
		b.WriteString(st.Meta.Render("Email:    ") + c.Email + "\n")
		b.WriteString(st.Meta.Render("Phone:    ") + c.Phone + "\n")
		b.WriteString(st.Meta.Render("Location: ") + c.Location + "\n")
		b.WriteString(st.Meta.Render("GitHub:   ") + c.GitHub + "\n")
		b.WriteString(st.Meta.Render("LinkedIn: ") + c.LinkedIn + "\n\n")
		b.WriteString(st.Meta.Render("Press c to write a message."))
	}
	return b.String()
}

func writePositions(b *strings.Builder, positions []content.Position, wrap lipgloss.Style, st styles) {
	for i, pos := range positions {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(st.Title.Render(pos.Role) + "\n")
		b.WriteString(st.Meta.Render(pos.Org+" · "+pos.Period) + "\n")
		b.WriteString(wrap.Render(pos.Description))
	}
}
