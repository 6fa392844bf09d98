package questionnaire

import "strings"

// SymptomSet is the decoded answer to the multi-select symptoms question. It
// keeps the order in which keys were selected and holds each key once. The
// zero value is an empty set.
type SymptomSet struct {
	keys []Option
}

// NewSymptomSet builds a set from keys, dropping empty keys and duplicates.
func NewSymptomSet(keys ...Option) SymptomSet {
	var s SymptomSet
	for _, k := range keys {
		s.add(k)
	}
	return s
}

// ParseSymptoms decodes the comma-joined wire form, e.g.
// "abnormalBleeding,bleedingAfterIntercourse". Surrounding blanks are trimmed.
func ParseSymptoms(raw string) SymptomSet {
	var s SymptomSet
	for _, part := range strings.Split(raw, ",") {
		s.add(Option(strings.TrimSpace(part)))
	}
	return s
}

func (s *SymptomSet) add(k Option) {
	if k == "" || s.Has(k) {
		return
	}
	s.keys = append(s.keys, k)
}

// Has reports whether k was selected.
func (s SymptomSet) Has(k Option) bool {
	for _, existing := range s.keys {
		if existing == k {
			return true
		}
	}
	return false
}

// HasAny reports whether any of ks was selected.
func (s SymptomSet) HasAny(ks ...Option) bool {
	for _, k := range ks {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Keys returns a copy of the selected keys in selection order.
func (s SymptomSet) Keys() []Option {
	return append([]Option(nil), s.keys...)
}

// Len returns the number of selected keys.
func (s SymptomSet) Len() int { return len(s.keys) }

// Empty reports whether nothing was recorded for the question.
func (s SymptomSet) Empty() bool { return len(s.keys) == 0 }

// Reported reports whether at least one real symptom was selected. An empty
// set, a lone NoSymptoms, Skipped, and keys outside the symptom vocabulary
// all count as nothing reported.
func (s SymptomSet) Reported() bool {
	for _, k := range s.keys {
		if IsSymptom(k) {
			return true
		}
	}
	return false
}

// String returns the comma-joined wire form.
func (s SymptomSet) String() string {
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}
