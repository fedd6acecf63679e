/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package r256 implements a signed 256-bit Q128.128 fixed-point number: 128
// integer bits and 128 fractional bits, stored as two's-complement. Every
// arithmetic operation that can run out of range saturates to the nearest
// representable value instead of returning an error or panicking, except
// Neg, which wraps Min back to Min.
package r256

// Value is a signed Q128.128 fixed-point number. Hi holds the integer part
// and the sign bit (bit 255 of the overall value); Lo holds the fractional
// part. Both halves are plain u128 words, so the pair behaves exactly like a
// 256-bit two's-complement integer scaled by 2^-128.
type Value struct {
	Lo u128 // fractional half, unsigned
	Hi u128 // integer half, signed (top bit is the sign of the whole Value)
}

// Quarters returns v's four 64-bit limbs, least significant first: q0 and
// q1 are the fractional half, q2 and q3 the integer half (q3 carries the
// sign bit).
func (v Value) Quarters() (q0, q1, q2, q3 uint64) {
	return v.Lo.Lo, v.Lo.Hi, v.Hi.Lo, v.Hi.Hi
}

// FromQuarters builds a Value from four 64-bit limbs, least significant
// first — the inverse of Quarters.
func FromQuarters(q0, q1, q2, q3 uint64) Value {
	return Value{
		Lo: u128{Hi: q1, Lo: q0},
		Hi: u128{Hi: q3, Lo: q2},
	}
}

func (v Value) isZero() bool {
	return isZero128(v.Hi) && isZero128(v.Lo)
}

// IsZero reports whether v is exactly zero.
func (v Value) IsZero() bool {
	return v.isZero()
}

// IsNeg reports whether v is negative.
func (v Value) IsNeg() bool {
	return isNeg128(v.Hi)
}

func add256(a, b Value, carry uint64) (sum Value, carryOut uint64) {
	sum.Lo, carry = add128(a.Lo, b.Lo, carry)
	sum.Hi, carryOut = add128(a.Hi, b.Hi, carry)
	return
}

func sub256(a, b Value, borrow uint64) (diff Value, borrowOut uint64) {
	diff.Lo, borrow = sub128(a.Lo, b.Lo, borrow)
	diff.Hi, borrowOut = sub128(a.Hi, b.Hi, borrow)
	return
}

func neg256(a Value) Value {
	negLo, borrow := sub128(u128Zero, a.Lo, 0)
	negHi, _ := sub128(u128Zero, a.Hi, borrow)
	return Value{Hi: negHi, Lo: negLo}
}

// cmpU256 compares a and b as unsigned 256-bit integers.
func cmpU256(a, b Value) int {
	if a.Hi != b.Hi {
		if ult128(a.Hi, b.Hi) {
			return -1
		}
		return 1
	}
	if a.Lo != b.Lo {
		if ult128(a.Lo, b.Lo) {
			return -1
		}
		return 1
	}
	return 0
}

// cmpS256 compares a and b as signed (two's-complement) 256-bit integers:
// lexicographic over (Hi signed, Lo unsigned).
func cmpS256(a, b Value) int {
	if a.Hi != b.Hi {
		if slt128(a.Hi, b.Hi) {
			return -1
		}
		return 1
	}
	if a.Lo != b.Lo {
		if ult128(a.Lo, b.Lo) {
			return -1
		}
		return 1
	}
	return 0
}

// Cmp returns -1, 0, or 1 as v is less than, equal to, or greater than w.
func (v Value) Cmp(w Value) int {
	return cmpS256(v, w)
}

func (v Value) Eq(w Value) bool  { return v.Cmp(w) == 0 }
func (v Value) Lt(w Value) bool  { return v.Cmp(w) < 0 }
func (v Value) Lte(w Value) bool { return v.Cmp(w) <= 0 }
func (v Value) Gt(w Value) bool  { return v.Cmp(w) > 0 }
func (v Value) Gte(w Value) bool { return v.Cmp(w) >= 0 }

// Min returns the lesser of v and w; ties return v.
func (v Value) Min(w Value) Value {
	if w.Lt(v) {
		return w
	}
	return v
}

// Max returns the greater of v and w; ties return v.
func (v Value) Max(w Value) Value {
	if w.Gt(v) {
		return w
	}
	return v
}

// Abs returns the absolute value of v and its sign (+1 or -1). Negating Min
// is a no-op in two's complement, so the unsigned magnitude of Min is
// returned directly.
func (v Value) Abs() (Value, int64) {
	if v.IsNeg() {
		return neg256(v), -1
	}
	return v, 1
}

// Nabs returns the negated absolute value of v. Unlike Abs, Nabs is total:
// every magnitude, Min's included, has a negative representation.
func (v Value) Nabs() Value {
	if v.IsNeg() {
		return v
	}
	return neg256(v)
}

func shl256(a Value, shift uint) Value {
	shift %= 256
	if shift == 0 {
		return a
	}
	if shift >= 128 {
		return Value{Hi: shl128(a.Lo, shift-128), Lo: u128Zero}
	}
	return Value{
		Hi: shl128(a.Hi, shift).orHi(a.Lo, shift),
		Lo: shl128(a.Lo, shift),
	}
}

// orHi folds the bits shifted out of the low half into the high half of a
// left shift; a method on u128 that reuses word.go's ushr128 for the 64/128
// split logic.
func (h u128) orHi(lo u128, shift uint) u128 {
	if shift == 0 {
		return h
	}
	carry := ushr128(lo, 128-shift)
	return u128{Hi: h.Hi | carry.Hi, Lo: h.Lo | carry.Lo}
}

func shr256(a Value, shift uint) Value {
	shift %= 256
	if shift == 0 {
		return a
	}
	if shift >= 128 {
		return Value{Hi: u128Zero, Lo: ushr128(a.Hi, shift-128)}
	}
	return Value{
		Hi: ushr128(a.Hi, shift),
		Lo: ushr128(a.Lo, shift).orLo(a.Hi, shift),
	}
}

func (l u128) orLo(hi u128, shift uint) u128 {
	if shift == 0 {
		return l
	}
	carry := shl128(hi, 128-shift)
	return u128{Hi: l.Hi | carry.Hi, Lo: l.Lo | carry.Lo}
}

func sar256(a Value, shift uint) Value {
	shift %= 256
	if shift == 0 {
		return a
	}
	signWord := uint64(0)
	if a.IsNeg() {
		signWord = ^uint64(0)
	}
	signHalf := u128{Hi: signWord, Lo: signWord}
	if shift >= 128 {
		return Value{Hi: signHalf, Lo: sshr128(a.Hi, shift-128)}
	}
	return Value{
		Hi: sshr128(a.Hi, shift),
		Lo: ushr128(a.Lo, shift).orLo(a.Hi, shift),
	}
}

func not256(a Value) Value {
	return Value{
		Hi: u128{Hi: ^a.Hi.Hi, Lo: ^a.Hi.Lo},
		Lo: u128{Hi: ^a.Lo.Hi, Lo: ^a.Lo.Lo},
	}
}

func and256(a, b Value) Value {
	return Value{
		Hi: u128{Hi: a.Hi.Hi & b.Hi.Hi, Lo: a.Hi.Lo & b.Hi.Lo},
		Lo: u128{Hi: a.Lo.Hi & b.Lo.Hi, Lo: a.Lo.Lo & b.Lo.Lo},
	}
}

func or256(a, b Value) Value {
	return Value{
		Hi: u128{Hi: a.Hi.Hi | b.Hi.Hi, Lo: a.Hi.Lo | b.Hi.Lo},
		Lo: u128{Hi: a.Lo.Hi | b.Lo.Hi, Lo: a.Lo.Lo | b.Lo.Lo},
	}
}

func xor256(a, b Value) Value {
	return Value{
		Hi: u128{Hi: a.Hi.Hi ^ b.Hi.Hi, Lo: a.Hi.Lo ^ b.Hi.Lo},
		Lo: u128{Hi: a.Lo.Hi ^ b.Lo.Hi, Lo: a.Lo.Lo ^ b.Lo.Lo},
	}
}

func clz256(a Value) uint {
	if isZero128(a.Hi) {
		return clz128(a.Lo) + 128
	}
	return clz128(a.Hi)
}
