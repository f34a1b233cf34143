// SPDX-License-Identifier: MIT

// Package simplify: tunable options and error definitions for the rank
// simplifier and the gate splitter.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every default is a named constant or function below.
//   - Invalid option values are recorded and surfaced as ErrOptionViolation
//     when the operation runs; nil callbacks are ignored.
package simplify

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/tnprep/network"
)

// Sentinel errors for simplification.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simplify: invalid option supplied")

	// ErrNotFourLegged is returned when SplitTwoQubitGate gets a node whose rank is not 4.
	ErrNotFourLegged = errors.New("simplify: gate node must have exactly 4 slots")

	// ErrSplitMismatch is returned when a GateSplit does not fit the gate it is applied to.
	ErrSplitMismatch = errors.New("simplify: gate split does not match the gate")
)

// Contractor merges two adjacent nodes into one. It must remove exactly the
// shared edges of a and b and give the result a's unshared slots followed
// by b's.
type Contractor func(a, b *network.Node) (*network.Node, error)

// ContractBetween is the default Contractor: a real numeric contraction.
// Merged nodes are named "a*b" when both operands are named.
func ContractBetween(a, b *network.Node) (*network.Node, error) {
	return network.ContractBetween(a, b, network.WithName(mergedName(a, b)))
}

// Merge describes one contraction performed by the rank simplifier.
type Merge struct {
	Pass     int // 1-based pass number (always 1 for RankSimplify)
	Position int // list position that received the result

	Left, Right *network.Node // operands (consumed), Left is the edge's first endpoint
	Result      *network.Node

	NewSize, LeftSize, RightSize int
}

// Option configures RankSimplify / FullRankSimplify via functional arguments.
type Option func(*Options)

// Options holds the collaborators and hooks of the rank simplifier.
type Options struct {
	// Contractor performs each merge. DefaultOptions uses ContractBetween;
	// PseudoContractBetween gives a shape-only dry run.
	Contractor Contractor

	// OnMerge is called after every merge. Returning an error aborts the
	// simplification and propagates that error.
	OnMerge func(Merge) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a numeric contractor and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Contractor: ContractBetween,
		OnMerge:    func(Merge) error { return nil },
	}
}

// WithContractor replaces the merge operation.
func WithContractor(c Contractor) Option {
	return func(o *Options) {
		if c != nil {
			o.Contractor = c
		}
	}
}

// WithOnMerge registers a callback run after each merge.
func WithOnMerge(fn func(Merge) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	return o, o.err
}

// Pairing selects the slot bipartition used to split a two-qubit gate.
//
// For slots (0,1,2,3) the unswapped pairing groups (0,2 | 1,3) and the
// swapped pairing groups (0,3 | 1,2).
type Pairing int

const (
	// PairingAuto factors both pairings and keeps the smaller bond.
	PairingAuto Pairing = iota
	// PairingUnswapped forces the (0,2 | 1,3) bipartition.
	PairingUnswapped
	// PairingSwapped forces the (0,3 | 1,2) bipartition.
	PairingSwapped
)

// String implements fmt.Stringer.
func (p Pairing) String() string {
	switch p {
	case PairingAuto:
		return "auto"
	case PairingUnswapped:
		return "unswapped"
	case PairingSwapped:
		return "swapped"
	default:
		return "invalid"
	}
}

const (
	// DefaultNoSplitThreshold: when both pairings reach a bond dimension of at
	// least this value, the split is reported as not beneficial.
	DefaultNoSplitThreshold = 4

	// CountTruncationPairing is the pairing used when a maximum bond dimension
	// is requested without an explicit pairing. Selecting between pairings
	// after truncating both to the same count is not attempted.
	CountTruncationPairing = PairingUnswapped
)

// SplitOption configures SplitTwoQubitGate.
type SplitOption func(*SplitOptions)

// SplitOptions holds truncation controls and the pairing policy of the gate splitter.
type SplitOptions struct {
	// MaxSingularValues caps the bond dimension; 0 means no cap.
	MaxSingularValues int

	// MaxTruncationErr bounds the norm of discarded singular values; only
	// honored when UseTruncationErr is set.
	MaxTruncationErr float64
	UseTruncationErr bool

	// FixedChoice forces a pairing; PairingAuto lets the splitter decide.
	FixedChoice Pairing

	// NoSplitThreshold is the bond dimension at which a split stops paying off.
	NoSplitThreshold int

	// internal error recorded during option parsing
	err error
}

// DefaultSplitOptions returns no truncation, automatic pairing and
// DefaultNoSplitThreshold.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		FixedChoice:      PairingAuto,
		NoSplitThreshold: DefaultNoSplitThreshold,
	}
}

// WithMaxSingularValues caps the bond dimension of each factorization.
//
//	n > 0: keep at most n singular values
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxSingularValues(n int) SplitOption {
	return func(o *SplitOptions) {
		if n <= 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max singular values must be > 0 (got %d)", n)
			return
		}
		o.MaxSingularValues = n
	}
}

// WithMaxTruncationErr discards singular values while the norm of the
// discarded part stays <= e. Negative e is an option violation.
func WithMaxTruncationErr(e float64) SplitOption {
	return func(o *SplitOptions) {
		if e < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "max truncation error must be >= 0 (got %g)", e)
			return
		}
		o.MaxTruncationErr = e
		o.UseTruncationErr = true
	}
}

// WithFixedChoice forces the pairing (PairingAuto restores automatic selection).
func WithFixedChoice(p Pairing) SplitOption {
	return func(o *SplitOptions) {
		if p < PairingAuto || p > PairingSwapped {
			o.err = errors.Wrapf(ErrOptionViolation, "unknown pairing %d", int(p))
			return
		}
		o.FixedChoice = p
	}
}

// WithNoSplitThreshold sets the bond dimension at which both pairings are
// considered too large to be worth splitting (t must be >= 1).
func WithNoSplitThreshold(t int) SplitOption {
	return func(o *SplitOptions) {
		if t < 1 {
			o.err = errors.Wrapf(ErrOptionViolation, "no-split threshold must be >= 1 (got %d)", t)
			return
		}
		o.NoSplitThreshold = t
	}
}

// networkOptions translates truncation controls for network.SplitNode.
func (o SplitOptions) networkOptions() []network.SplitOption {
	var out []network.SplitOption
	if o.MaxSingularValues > 0 {
		out = append(out, network.WithMaxSingularValues(o.MaxSingularValues))
	}
	if o.UseTruncationErr {
		out = append(out, network.WithMaxTruncationErr(o.MaxTruncationErr))
	}

	return out
}
