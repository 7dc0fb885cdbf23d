package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type SkillCategory struct {
	Title  string  `yaml:"title"`
	Icon   string  `yaml:"icon"`
	Skills []Skill `yaml:"skills"`
}

type Tool struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Channel struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href"`
}

// Content is the static copy of the page: everything that is not fetched
// from the backend.
type Content struct {
	Name        string `yaml:"name"`
	Initial     string `yaml:"initial"`
	Tagline     string `yaml:"tagline"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Canonical   string `yaml:"canonical"`

	Hero struct {
		Greeting  string   `yaml:"greeting"`
		Roles     []string `yaml:"roles"`
		ImageURL  string   `yaml:"image_url"`
		ResumeURL string   `yaml:"resume_url"`
	} `yaml:"hero"`

	Socials []Link `yaml:"socials"`

	About struct {
		Heading   string   `yaml:"heading"`
		ImageURL  string   `yaml:"image_url"`
		Bio       string   `yaml:"bio"`
		Stats     []Stat   `yaml:"stats"`
		Interests []string `yaml:"interests"`

		BioHTML template.HTML `yaml:"-"`
	} `yaml:"about"`

	Skills struct {
		Categories []SkillCategory `yaml:"categories"`
		Tools      []Tool          `yaml:"tools"`
	} `yaml:"skills"`

	Certificates struct {
		Heading string `yaml:"heading"`
		Intro   string `yaml:"intro"`
	} `yaml:"certificates"`

	Talks struct {
		Heading string `yaml:"heading"`
		Intro   string `yaml:"intro"`
		Invite  string `yaml:"invite"`
	} `yaml:"talks"`

	Contact struct {
		Heading  string    `yaml:"heading"`
		Intro    string    `yaml:"intro"`
		Connect  string    `yaml:"connect"`
		Channels []Channel `yaml:"channels"`
	} `yaml:"contact"`

	Footer struct {
		Blurb string `yaml:"blurb"`
	} `yaml:"footer"`
}

// DefaultContent returns the bundled page copy.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// ParseContent decodes YAML page copy and renders the Markdown bio.
func ParseContent(data []byte) (*Content, error) {
	c := &Content{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("decode content: name is required")
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(c.About.Bio), &buf); err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	// goldmark escapes raw HTML by default, so the output is safe to embed
	c.About.BioHTML = template.HTML(buf.String())

	return c, nil
}
