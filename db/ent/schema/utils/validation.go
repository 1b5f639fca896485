package utils

import "fmt"

// EnumValidator builds an ent field validator that accepts only the
// listed values, naming the rejected value in the error.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
