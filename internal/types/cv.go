package types

import "strings"

// CV is the structured résumé content the engine reads. Engine functions
// never mutate a CV in place; transformations return a fresh copy.
type CV struct {
	FullName      string            `json:"full_name,omitempty"`
	Title         string            `json:"title,omitempty"`
	Summary       string            `json:"summary,omitempty"`
	Experience    []ExperienceEntry `json:"experience,omitempty"`
	Education     []EducationEntry  `json:"education,omitempty"`
	Skills        []string          `json:"skills,omitempty"`
	Languages     []string          `json:"languages,omitempty"`
	ExtraKeywords []string          `json:"extra_keywords,omitempty"`
}

// ExperienceEntry is one position with its achievement bullets.
type ExperienceEntry struct {
	Role    string   `json:"role,omitempty"`
	Company string   `json:"company,omitempty"`
	Start   string   `json:"start,omitempty"`
	End     string   `json:"end,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// EducationEntry is one degree or certification line.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Years       string `json:"years,omitempty"`
}

// PlainText flattens every textual section into a single newline-joined
// string for keyword matching. Section order mirrors the rendered document.
func (c *CV) PlainText() string {
	var b strings.Builder
	writeLine := func(s string) {
		if s == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s)
	}

	writeLine(c.FullName)
	writeLine(c.Title)
	writeLine(c.Summary)
	for _, e := range c.Experience {
		writeLine(e.Role)
		writeLine(e.Company)
		for _, bullet := range e.Bullets {
			writeLine(bullet)
		}
	}
	for _, e := range c.Education {
		writeLine(e.Degree)
		writeLine(e.Institution)
	}
	writeLine(strings.Join(c.Skills, ", "))
	writeLine(strings.Join(c.Languages, ", "))
	writeLine(strings.Join(c.ExtraKeywords, ", "))
	return b.String()
}

// Clone returns a deep copy so callers can transform a CV without touching
// the original.
func (c *CV) Clone() *CV {
	if c == nil {
		return nil
	}
	out := *c
	out.Experience = make([]ExperienceEntry, len(c.Experience))
	for i, e := range c.Experience {
		e.Bullets = copyStrings(e.Bullets)
		out.Experience[i] = e
	}
	out.Education = append([]EducationEntry(nil), c.Education...)
	out.Skills = copyStrings(c.Skills)
	out.Languages = copyStrings(c.Languages)
	out.ExtraKeywords = copyStrings(c.ExtraKeywords)
	return &out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
