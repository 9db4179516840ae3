package world

import "sort"

// Synonym maps an alias word to its canonical word.
type Synonym struct {
	Alias     string `yaml:"alias"`
	Canonical string `yaml:"canonical"`
}

// Synonyms is the static alias table consulted on every command token.
type Synonyms struct {
	table map[string]string
}

// NewSynonyms builds a table from alias/canonical pairs. A later pair for
// the same alias replaces an earlier one.
func NewSynonyms(pairs []Synonym) *Synonyms {
	s := &Synonyms{table: make(map[string]string, len(pairs))}
	for _, p := range pairs {
		s.table[p.Alias] = p.Canonical
	}
	return s
}

// Lookup returns the canonical word for an alias
func (s *Synonyms) Lookup(word string) (string, bool) {
	if s == nil {
		return "", false
	}
	canonical, ok := s.table[word]
	return canonical, ok
}

// Substitute replaces every token that is an alias with its canonical word.
// The substitution is a single pass: a canonical word that is itself an alias
// is left alone.
func (s *Synonyms) Substitute(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if canonical, ok := s.Lookup(tok); ok {
			out[i] = canonical
		} else {
			out[i] = tok
		}
	}
	return out
}

// Entries returns the table sorted by alias
func (s *Synonyms) Entries() []Synonym {
	if s == nil {
		return nil
	}
	entries := make([]Synonym, 0, len(s.table))
	for alias, canonical := range s.table {
		entries = append(entries, Synonym{Alias: alias, Canonical: canonical})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Alias < entries[j].Alias
	})
	return entries
}

func (s *Synonyms) Len() int {
	if s == nil {
		return 0
	}
	return len(s.table)
}
