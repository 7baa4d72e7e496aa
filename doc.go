/*
Package bigfloat implements arbitrary-precision binary floating-point
arithmetic.

A BigFloat represents a signed value

	mantissa × 2**(scale - GuardBits)

where mantissa is an arbitrary-precision signed integer and scale is a
machine integer. Every stored mantissa carries GuardBits extra low-order
bits beyond what callers see through Precision and the other size-facing
properties; the guard region absorbs intermediate rounding error across a
chain of operations and is only inspected by rounding, arithmetic carry
propagation, and the ULP-tolerant comparison family (EqualsUlp and its
siblings).

Unlike big.Float, BigFloat values are immutable: every arithmetic
operation returns a new value rather than mutating a receiver. This
matches the value's nature as a plain, freely shareable number rather
than an accumulator — there is no result parameter to alias, and no
precision or rounding mode attached to the receiver to consult, since
accuracy and precision travel with each value itself (see Precision and
Accuracy).

	sum := a.Add(b)     // sum is a new value; a and b are untouched
	sum = sum.Add(c)     // accumulate by rebinding, not mutating

BigFloat has no representation for infinity or NaN. Operations that would
produce one in IEEE-754 instead fail: dividing by a strict zero returns a
DivideByZeroError, a conversion or scale adjustment that would overflow
its target returns an OverflowError, and Sqrt/NthRoot outside their
domain return a DomainError. Truncate, Floor, Ceiling, and Round never
fail.

Textual parsing, locale-aware formatting, a catalog of transcendental
constants, and the transcendental functions themselves (sin, cos, log,
exp, and so on) are not part of this package; it exposes the
precision-controlling primitives (SetPrecisionWithRound, SetAccuracy,
AdjustPrecision) those collaborators need to build on top of BigFloat.
*/
package bigfloat

// GuardBits is the number of low-order bits carried with every mantissa
// beyond its visible precision. It is a compile-time constant for the
// life of the process: changing it is a breaking change to every
// accuracy- and precision-derived property in the public API.
const GuardBits = 32
