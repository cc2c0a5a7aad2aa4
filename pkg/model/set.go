package model

import "sort"

// Set holds stringified values. The zero value (nil) is an empty set.
type Set map[string]struct{}

// NewSet stringifies values into a set.
func NewSet(values ...any) Set {
	set := make(Set, len(values))
	for _, value := range values {
		set[Stringify(value)] = struct{}{}
	}
	return set
}

// NewStringSet builds a set from values that are already strings.
func NewStringSet(values ...string) Set {
	set := make(Set, len(values))
	for _, value := range values {
		set[value] = struct{}{}
	}
	return set
}

// SetOf extracts the value of each record into a set. It mirrors passing the
// selected records of a view model alongside the value accessor.
func SetOf[T any](records []T, value func(T) any) Set {
	set := make(Set, len(records))
	if value == nil {
		return set
	}
	for _, record := range records {
		set[Stringify(value(record))] = struct{}{}
	}
	return set
}

// Has reports whether value is a member.
func (s Set) Has(value string) bool {
	if s == nil {
		return false
	}
	_, ok := s[value]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for value := range s {
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}

// Add inserts values, allocating the set when needed, and returns it.
func (s Set) Add(values ...string) Set {
	if s == nil {
		s = make(Set, len(values))
	}
	for _, value := range values {
		s[value] = struct{}{}
	}
	return s
}
