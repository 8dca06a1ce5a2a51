// Package hydrogen evaluates radial wavefunctions and probability densities
// of hydrogen-like atoms in atomic units (hbar = m_e = e = a0 = 1).
//
// The closed-form solution of the radial Schroedinger equation is
//
//	R_nl(r) = N_nl * rho^l * exp(-rho/2) * L^{2l+1}_{n-l-1}(rho)
//
// with rho = 2Zr/n. The associated Laguerre polynomial is evaluated with a
// three-term recurrence and the normalization constant in the log-gamma
// domain, so the functions stay usable well past n = 20.
package hydrogen

import "fmt"

// State identifies a hydrogen-like orbital: principal quantum number N,
// orbital quantum number L and effective nuclear charge Z.
//
// States are plain values. Construct one, call Validate (or any evaluator,
// which validates on entry), and pass it around by value.
type State struct {
	N int
	L int
	Z float64
}

// DomainError reports a quantum-number combination outside the physical
// domain. Param names the offending parameter.
type DomainError struct {
	Param string
	Msg   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Param, e.Msg)
}

// OverflowError reports that the normalization constant left the
// representable float64 range. With log-domain evaluation this is not
// expected for any n a plot would use; it is surfaced rather than clamped.
type OverflowError struct {
	State State
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("normalization constant overflows for n=%d l=%d Z=%g", e.State.N, e.State.L, e.State.Z)
}

// Validate checks n >= 1, 0 <= l <= n-1 and Z > 0. It returns a *DomainError
// naming the first offending parameter, never a corrected state.
func (s State) Validate() error {
	if s.N < 1 {
		return &DomainError{Param: "n", Msg: fmt.Sprintf("principal quantum number must be >= 1, got %d", s.N)}
	}
	if s.L < 0 || s.L >= s.N {
		return &DomainError{Param: "l", Msg: fmt.Sprintf("orbital quantum number must satisfy 0 <= l <= n-1, got l=%d for n=%d", s.L, s.N)}
	}
	if !(s.Z > 0) {
		return &DomainError{Param: "Z", Msg: fmt.Sprintf("nuclear charge must be > 0, got %g", s.Z)}
	}
	return nil
}

// Label returns the spectroscopic name of the state, e.g. "1s", "2p", "3d".
// Shells beyond the named series fall back to "n(l=..)" notation.
func (s State) Label() string {
	const letters = "spdfghiklmnoq"
	if s.L < len(letters) {
		return fmt.Sprintf("%d%c", s.N, letters[s.L])
	}
	return fmt.Sprintf("%d(l=%d)", s.N, s.L)
}

func (s State) String() string {
	if s.Z == 1 {
		return s.Label()
	}
	return fmt.Sprintf("%s Z=%g", s.Label(), s.Z)
}
