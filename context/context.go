// Package context provides a scoped precision and rounding-mode budget
// for BigFloat computations, in the spirit of db47h/decimal's context
// package but adapted to BigFloat's immutable, value-returning API: a
// Context does not mutate results itself, it rounds them to its current
// budget and hands back a new value.
package context

import (
	"math/big"
	"sync"

	"github.com/SunsetQuest/bigfloat"
)

// RoundingMode selects how a Context reduces a value to its target
// precision. Only ToNearestAway is wired into an actual rounding policy
// today, since bigfloat's kernel itself only implements round-to-nearest
// ties-away-from-zero; ToZero is accepted and recorded but currently
// rounds the same way as ToNearestAway.
type RoundingMode int

const (
	ToNearestAway RoundingMode = iota
	ToZero
)

func (m RoundingMode) String() string {
	switch m {
	case ToNearestAway:
		return "ToNearestAway"
	case ToZero:
		return "ToZero"
	default:
		return "RoundingMode(?)"
	}
}

type frame struct {
	prec uint32
	mode RoundingMode
}

// A Context carries a precision (in visible bits) and rounding mode,
// plus a LIFO stack of saved settings pushed by Enter and restored by
// Exit. A zero-value Context has precision 0, meaning "don't round":
// Round returns its argument unchanged.
//
// A *Context is safe for concurrent use: every access is serialized
// through an internal mutex. That only protects the Context's own
// bookkeeping, though — Go has no goroutine-local storage, so a Context
// shared by multiple goroutines gives them one shared precision budget,
// not an independent one per goroutine. Give each goroutine its own
// Context if it needs its own scope.
type Context struct {
	mu    sync.Mutex
	prec  uint32
	mode  RoundingMode
	stack []frame
}

// New returns a Context with the given precision and rounding mode.
func New(prec uint32, mode RoundingMode) *Context {
	return &Context{prec: prec, mode: mode}
}

// Precision returns c's current precision budget, in visible bits.
func (c *Context) Precision() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prec
}

// Mode returns c's current rounding mode.
func (c *Context) Mode() RoundingMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetPrecision changes c's precision budget.
func (c *Context) SetPrecision(prec uint32) {
	c.mu.Lock()
	c.prec = prec
	c.mu.Unlock()
}

// SetMode changes c's rounding mode.
func (c *Context) SetMode(mode RoundingMode) {
	c.mu.Lock()
	c.mode = mode
	c.mu.Unlock()
}

// Enter saves c's current precision and rounding mode on its internal
// stack and replaces them with prec and mode, for the duration of a
// nested scope. Every Enter must be matched by exactly one Exit,
// typically via defer:
//
//	c.Enter(200, context.ToNearestAway)
//	defer c.Exit()
func (c *Context) Enter(prec uint32, mode RoundingMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stack = append(c.stack, frame{c.prec, c.mode})
	c.prec, c.mode = prec, mode
}

// Exit restores the precision and rounding mode saved by the most
// recent unmatched Enter. It panics if called without one, since that
// signals a scoping bug in the caller rather than a condition to
// recover from.
func (c *Context) Exit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.stack) == 0 {
		panic("context: Exit called without a matching Enter")
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.prec, c.mode = top.prec, top.mode
}

// Round returns x reduced to c's current precision. A zero precision
// budget means "don't round": x is returned unchanged.
func (c *Context) Round(x bigfloat.BigFloat) bigfloat.BigFloat {
	c.mu.Lock()
	prec := c.prec
	c.mu.Unlock()
	if prec == 0 {
		return x
	}
	return x.SetPrecisionWithRound(prec)
}

// NewFromInt64 returns the value of n, rounded to c's precision.
func (c *Context) NewFromInt64(n int64) bigfloat.BigFloat {
	return c.Round(bigfloat.NewFromInt64(n))
}

// NewFromBigInt returns the value of n, rounded to c's precision.
func (c *Context) NewFromBigInt(n *big.Int) bigfloat.BigFloat {
	return c.Round(bigfloat.NewFromBigInt(n))
}

// NewFromFloat64 returns the value of f, rounded to c's precision.
func (c *Context) NewFromFloat64(f float64) (bigfloat.BigFloat, error) {
	v, err := bigfloat.FromFloat64(f)
	if err != nil {
		return bigfloat.BigFloat{}, err
	}
	return c.Round(v), nil
}

// Add returns x + y, rounded to c's precision.
func (c *Context) Add(x, y bigfloat.BigFloat) bigfloat.BigFloat {
	return c.Round(x.Add(y))
}

// Sub returns x - y, rounded to c's precision.
func (c *Context) Sub(x, y bigfloat.BigFloat) bigfloat.BigFloat {
	return c.Round(x.Sub(y))
}

// Mul returns x * y, rounded to c's precision.
func (c *Context) Mul(x, y bigfloat.BigFloat) bigfloat.BigFloat {
	return c.Round(x.Mul(y))
}

// Quo returns x / y, rounded to c's precision. It returns a
// DivideByZeroError if y is a strict zero.
func (c *Context) Quo(x, y bigfloat.BigFloat) (bigfloat.BigFloat, error) {
	q, err := x.Quo(y)
	if err != nil {
		return bigfloat.BigFloat{}, err
	}
	return c.Round(q), nil
}

// Sqrt returns the square root of x, rounded to c's precision. It
// returns a DomainError if x is negative.
func (c *Context) Sqrt(x bigfloat.BigFloat) (bigfloat.BigFloat, error) {
	r, err := x.Sqrt()
	if err != nil {
		return bigfloat.BigFloat{}, err
	}
	return c.Round(r), nil
}
