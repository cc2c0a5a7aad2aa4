package model

import (
	"net/url"
	"strings"
)

// SetFromForm collects the values posted under name into a set so a
// re-rendered list reflects what the user submitted. Blank values are ignored.
func SetFromForm(values url.Values, name string) Set {
	set := make(Set)
	name = strings.TrimSpace(name)
	if name == "" || len(values) == 0 {
		return set
	}
	for _, value := range values[name] {
		if strings.TrimSpace(value) == "" {
			continue
		}
		set[value] = struct{}{}
	}
	return set
}

// SubmittedValues returns the posted values for name in the order the items
// appear in list, dropping values that are not part of the list or that
// belong to disabled items. Use it to trust only what the form could send.
func SubmittedValues(list List, values url.Values) []string {
	posted := SetFromForm(values, list.Name)
	if posted.Len() == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]struct{}, posted.Len())
	for _, item := range list.Items {
		value := item.ValueString()
		if !posted.Has(value) || list.Disabled.Has(value) {
			continue
		}
		if _, dup := seen[value]; dup {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
