package validation

import "strings"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MaxLen(field, value string, max int, v Violations) {
	if len(value) > max {
		v[field] = "too_long"
	}
}

// OneOf checks value (lower-cased) against an allow list.
func OneOf(field, value string, allowed []string, v Violations) {
	lv := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if lv == a {
			return
		}
	}
	v[field] = "not_allowed"
}
