// Package content holds the portfolio text the page is built from.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Portfolio is the full page content.
type Portfolio struct {
	Name       string          `yaml:"name"`
	Tagline    string          `yaml:"tagline"`
	Email      string          `yaml:"email"`
	Roles      []string        `yaml:"roles"`
	About      string          `yaml:"about"`
	Stats      []Stat          `yaml:"stats"`
	Skills     []SkillCategory `yaml:"skills"`
	Experience []TimelineItem  `yaml:"experience"`
	Education  []Card          `yaml:"education"`
	Projects   []Card          `yaml:"projects"`
}

// Stat is an animated headline number.
type Stat struct {
	Label string `yaml:"label"`
	// Count is kept as text so it lands verbatim in the data-count attribute.
	Count string `yaml:"count"`
}

type SkillCategory struct {
	Name   string  `yaml:"name"`
	Skills []Skill `yaml:"skills"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type TimelineItem struct {
	Title  string   `yaml:"title"`
	Org    string   `yaml:"org"`
	Period string   `yaml:"period"`
	Points []string `yaml:"points"`
}

type Card struct {
	Title       string   `yaml:"title"`
	Subtitle    string   `yaml:"subtitle"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
}

// Default returns the embedded portfolio.
func Default() (Portfolio, error) {
	return Parse(defaultYAML)
}

// Load reads a YAML portfolio from disk. An empty path selects the embedded
// default.
func Load(path string) (Portfolio, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read content: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Portfolio{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates YAML content.
func Parse(data []byte) (Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("decode content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Validate reports every problem found in the content.
func (p Portfolio) Validate() error {
	var errs []error
	if len(p.Roles) == 0 {
		errs = append(errs, errors.New("at least one role phrase is required"))
	}
	for i, r := range p.Roles {
		if r == "" {
			errs = append(errs, fmt.Errorf("role %d is empty", i))
		}
	}
	for _, s := range p.Stats {
		v, err := strconv.ParseFloat(s.Count, 64)
		if err != nil || v < 0 {
			errs = append(errs, fmt.Errorf("stat %q: count %q is not a non-negative number", s.Label, s.Count))
		}
	}
	for _, c := range p.Skills {
		for _, s := range c.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skill %q: level %d outside 0..100", s.Name, s.Level))
			}
		}
	}
	return errors.Join(errs...)
}
