package hydrogen

import "testing"

func TestParseState(t *testing.T) {
	testCases := []struct {
		name      string
		label     string
		z         float64
		want      State
		expectErr bool
	}{
		{"ground", "1s", 1, State{N: 1, L: 0, Z: 1}, false},
		{"2p", "2p", 1, State{N: 2, L: 1, Z: 1}, false},
		{"3d", "3d", 1, State{N: 3, L: 2, Z: 1}, false},
		{"4f", "4f", 1, State{N: 4, L: 3, Z: 1}, false},
		{"uppercase", "2P", 1, State{N: 2, L: 1, Z: 1}, false},
		{"whitespace", "  5g ", 1, State{N: 5, L: 4, Z: 1}, false},
		{"two_digit_shell", "12p", 1, State{N: 12, L: 1, Z: 1}, false},
		{"carries_charge", "1s", 2.5, State{N: 1, L: 0, Z: 2.5}, false},
		{"empty", "", 1, State{}, true},
		{"no_shell", "s", 1, State{}, true},
		{"no_subshell", "2", 1, State{}, true},
		{"bad_subshell", "2x", 1, State{}, true},
		{"trailing_garbage", "2p1", 1, State{}, true},
		{"forbidden_combination", "1p", 1, State{}, true}, // l=1 needs n >= 2
		{"bad_charge", "1s", 0, State{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseState(tc.label, tc.z)
			if tc.expectErr {
				if err == nil {
					t.Errorf("ParseState(%q) succeeded, want error", tc.label)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseState(%q): %v", tc.label, err)
			}
			if got != tc.want {
				t.Errorf("ParseState(%q) = %+v, want %+v", tc.label, got, tc.want)
			}
		})
	}
}

func TestParseStates(t *testing.T) {
	states, err := ParseStates("1s, 2s ,2p", 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []State{{N: 1, L: 0, Z: 1}, {N: 2, L: 0, Z: 1}, {N: 2, L: 1, Z: 1}}
	if len(states) != len(want) {
		t.Fatalf("got %d states, want %d", len(states), len(want))
	}
	for i := range want {
		if states[i] != want[i] {
			t.Errorf("state %d = %+v, want %+v", i, states[i], want[i])
		}
	}

	if _, err := ParseStates("", 1); err == nil {
		t.Error("empty list must be rejected")
	}
	if _, err := ParseStates("1s,2q2", 1); err == nil {
		t.Error("invalid entry must fail the whole list")
	}
	if _, err := ParseStates(",,", 1); err == nil {
		t.Error("list of empties must be rejected")
	}
}
