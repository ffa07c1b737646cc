// Package content holds the portfolio owner's profile: everything the page,
// the terminal preview, the MCP tools and the chat assistant say about them.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultProfile []byte

// Profile is the complete page content.
type Profile struct {
	Name         string        `yaml:"name" json:"name"`
	ShortName    string        `yaml:"short_name" json:"short_name"`
	Initials     string        `yaml:"initials" json:"initials"`
	Headline     string        `yaml:"headline" json:"headline"`
	Availability string        `yaml:"availability" json:"availability,omitempty"`
	Education    string        `yaml:"education" json:"education"`
	Location     string        `yaml:"location" json:"location"`
	Summary      string        `yaml:"summary" json:"summary"`
	Bio          string        `yaml:"bio" json:"bio"`
	Phrases      []string      `yaml:"phrases" json:"phrases"`
	Stats        []Stat        `yaml:"stats" json:"stats"`
	Navigation   []NavEntry    `yaml:"navigation" json:"navigation"`
	Skills       []SkillGroup  `yaml:"skills" json:"skills"`
	Services     []Service     `yaml:"services" json:"services"`
	Projects     []Project     `yaml:"projects" json:"projects"`
	Experience   []Position    `yaml:"experience" json:"experience"`
	Certificates []Certificate `yaml:"certificates" json:"certificates"`
	Internships  []Position    `yaml:"internships" json:"internships"`
	Contact      Contact       `yaml:"contact" json:"contact"`
	Assistant    Assistant     `yaml:"assistant" json:"-"`
}

// Stat is a hero figure such as "15+ Projects Done".
type Stat struct {
	Value  int    `yaml:"value" json:"value"`
	Suffix string `yaml:"suffix" json:"suffix"`
	Label  string `yaml:"label" json:"label"`
}

// NavEntry links a navigation label to a section id.
type NavEntry struct {
	Name   string `yaml:"name" json:"name"`
	Target string `yaml:"target" json:"target"`
}

type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

type Service struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon,omitempty"`
}

type Project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Tech        []string `yaml:"tech" json:"tech"`
	Status      string   `yaml:"status" json:"status,omitempty"`
	Link        string   `yaml:"link" json:"link,omitempty"`
}

// Position is a job or internship.
type Position struct {
	Role        string `yaml:"role" json:"role"`
	Org         string `yaml:"org" json:"org"`
	Period      string `yaml:"period" json:"period"`
	Description string `yaml:"description" json:"description"`
	Certificate string `yaml:"certificate" json:"certificate,omitempty"`
}

// Certificate is a downloadable credential. File is a bare file name
// resolved against the assets directory.
type Certificate struct {
	Title  string `yaml:"title" json:"title"`
	Issuer string `yaml:"issuer" json:"issuer"`
	File   string `yaml:"file" json:"file"`
	Alt    string `yaml:"alt" json:"alt,omitempty"`
}

type Contact struct {
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	Location string `yaml:"location" json:"location"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
}

// Assistant tunes the chat system prompt.
type Assistant struct {
	ReplyWordLimit int      `yaml:"reply_word_limit"`
	Experience     []string `yaml:"experience"`
}

// Default returns the built-in profile.
func Default() *Profile {
	p, err := Parse(defaultProfile)
	if err != nil {
		panic(fmt.Sprintf("embedded profile: %v", err))
	}
	return p
}

// Load reads a profile from path. An empty path yields the built-in profile.
func Load(path string) (*Profile, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the page relies on.
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if len(p.Navigation) == 0 {
		return errors.New("navigation must list at least one section")
	}
	seen := make(map[string]bool, len(p.Navigation))
	for _, n := range p.Navigation {
		if n.Target == "" {
			return fmt.Errorf("navigation entry %q has no target", n.Name)
		}
		if seen[n.Target] {
			return fmt.Errorf("duplicate navigation target %q", n.Target)
		}
		seen[n.Target] = true
	}

	files := make(map[string]bool, len(p.Certificates))
	for _, c := range p.Certificates {
		if c.File == "" {
			continue
		}
		if c.File != path.Base(c.File) || strings.ContainsAny(c.File, `/\`) || c.File == ".." {
			return fmt.Errorf("certificate file %q must be a bare file name", c.File)
		}
		if files[c.File] {
			return fmt.Errorf("duplicate certificate file %q", c.File)
		}
		files[c.File] = true
	}
	for _, in := range p.Internships {
		if in.Certificate != "" && !files[in.Certificate] {
			return fmt.Errorf("internship %q references unknown certificate %q", in.Org, in.Certificate)
		}
	}
	return nil
}

// FirstName is used where the page addresses its owner informally.
func (p *Profile) FirstName() string {
	if p.ShortName != "" {
		return p.ShortName
	}
	first, _, _ := strings.Cut(p.Name, " ")
	return first
}

// SectionIDs returns the navigation targets in page order.
func (p *Profile) SectionIDs() []string {
	ids := make([]string, len(p.Navigation))
	for i, n := range p.Navigation {
		ids[i] = n.Target
	}
	return ids
}

// Certificate returns the certificate stored under file.
func (p *Profile) Certificate(file string) (Certificate, bool) {
	for _, c := range p.Certificates {
		if c.File != "" && c.File == file {
			return c, true
		}
	}
	return Certificate{}, false
}

// CertificateFiles lists every downloadable file name.
func (p *Profile) CertificateFiles() []string {
	var files []string
	for _, c := range p.Certificates {
		if c.File != "" {
			files = append(files, c.File)
		}
	}
	return files
}

// ErrUnknownSection is returned by Section for ids not in the navigation.
var ErrUnknownSection = errors.New("unknown section")

// Section returns the content shown in the section with the given id.
func (p *Profile) Section(id string) (interface{}, error) {
	switch id {
	case "home":
		return map[string]interface{}{
			"name":         p.Name,
			"headline":     p.Headline,
			"availability": p.Availability,
			"summary":      p.Summary,
			"phrases":      p.Phrases,
			"stats":        p.Stats,
		}, nil
	case "about":
		return map[string]interface{}{
			"bio":       p.Bio,
			"education": p.Education,
			"location":  p.Location,
		}, nil
	case "experience":
		return p.Experience, nil
	case "skills":
		return p.Skills, nil
	case "services":
		return p.Services, nil
	case "projects":
		return p.Projects, nil
	case "certificates":
		return p.Certificates, nil
	case "internships":
		return p.Internships, nil
	case "contact":
		return p.Contact, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}
