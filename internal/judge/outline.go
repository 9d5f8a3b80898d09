package judge

import "strings"

// ContentOutline is the concrete content a template will be asked to hold.
// The template judge only looks at its text volume and section wording, so
// missing fields simply contribute nothing.
type ContentOutline struct {
	Headline string    `json:"headline,omitempty" yaml:"headline,omitempty"`
	Subhead  string    `json:"subhead,omitempty" yaml:"subhead,omitempty"`
	Sections []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
	CTA      string    `json:"cta,omitempty" yaml:"cta,omitempty"`
}

// Section is one body section of an outline.
type Section struct {
	Title   string   `json:"title,omitempty" yaml:"title,omitempty"`
	Bullets []string `json:"bullets,omitempty" yaml:"bullets,omitempty"`
}

// Length returns the total character count of all outline text. Density
// banding is done on this value.
func (o ContentOutline) Length() int {
	n := len(o.Headline) + len(o.Subhead) + len(o.CTA)
	for _, s := range o.Sections {
		n += len(s.Title)
		for _, b := range s.Bullets {
			n += len(b)
		}
	}
	return n
}

func (s Section) text() string {
	parts := append([]string{s.Title}, s.Bullets...)
	return strings.ToLower(strings.Join(parts, " "))
}
