package hydrogen

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseState parses a spectroscopic label like "1s", "2p" or "3d" into a
// State with the given charge.
func ParseState(label string, z float64) (State, error) {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return State{}, fmt.Errorf("empty state label")
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 || i != len(s)-1 {
		return State{}, fmt.Errorf("invalid state label %q: expected e.g. 1s, 2p, 3d", label)
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return State{}, fmt.Errorf("invalid shell in %q: %w", label, err)
	}

	const letters = "spdfghiklmnoq"
	l := strings.IndexByte(letters, s[i])
	if l < 0 {
		return State{}, fmt.Errorf("invalid subshell %q in %q", s[i:], label)
	}

	st := State{N: n, L: l, Z: z}
	if err := st.Validate(); err != nil {
		return State{}, fmt.Errorf("state %q: %w", label, err)
	}
	return st, nil
}

// ParseStates parses a comma-separated list of labels, e.g. "1s,2s,2p".
func ParseStates(list string, z float64) ([]State, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("no states given")
	}
	parts := strings.Split(list, ",")
	out := make([]State, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		s, err := ParseState(p, z)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no states given")
	}
	return out, nil
}
