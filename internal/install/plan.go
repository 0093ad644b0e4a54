package install

import "strings"

// LanguageSet is an insertion-ordered set of language identifiers.
// The zero value is an empty set ready to use.
type LanguageSet struct {
	items []string
	seen  map[string]struct{}
}

// NewLanguageSet returns a set holding ids in first-seen order.
func NewLanguageSet(ids ...string) LanguageSet {
	var s LanguageSet
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add trims and lowercases id and appends it unless empty or already present.
// It reports whether the set changed.
func (s *LanguageSet) Add(id string) bool {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return false
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.items = append(s.items, id)
	return true
}

// Items returns a copy of the identifiers in insertion order.
func (s LanguageSet) Items() []string {
	return append([]string(nil), s.items...)
}

// Len returns the number of identifiers.
func (s LanguageSet) Len() int {
	return len(s.items)
}

// Plan is the transient record of what one invocation installs.
type Plan struct {
	Agents     bool
	Commands   bool
	Skills     bool
	Rules      bool
	UserConfig bool
	Hooks      bool
	MCPExample bool
	Languages  LanguageSet
}

// FullPlan selects every component plus the given languages.
func FullPlan(languages LanguageSet) Plan {
	p := CorePlan()
	p.Languages = languages
	return p
}

// CorePlan selects every language-agnostic component.
func CorePlan() Plan {
	return Plan{
		Agents:     true,
		Commands:   true,
		Skills:     true,
		Rules:      true,
		UserConfig: true,
		Hooks:      true,
		MCPExample: true,
	}
}

// Components returns the selected directory components in installation order.
func (p Plan) Components() []Component {
	var out []Component
	if p.Agents {
		out = append(out, Agents)
	}
	if p.Commands {
		out = append(out, Commands)
	}
	if p.Skills {
		out = append(out, Skills)
	}
	if p.Rules {
		out = append(out, Rules)
	}
	return out
}

// Empty reports whether the plan selects nothing.
func (p Plan) Empty() bool {
	return len(p.Components()) == 0 && !p.UserConfig && !p.Hooks && !p.MCPExample && p.Languages.Len() == 0
}
