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

package r256

// This file contains the wide multiply and wide divide kernels that back
// Mul/Div/Mod. Each is the 128-bit kernel (mul128, div192by128, div192by64,
// all at 64-bit digit granularity) re-derived one digit-width up, using
// u128 as the digit instead of uint64. The shape of each function mirrors
// its narrower counterpart; only the digit type and the per-digit
// primitives (mul128 in place of bits.Mul64, divWide128 in place of
// bits.Div64, clz128 in place of bits.LeadingZeros64) are different.

func or128(a, b u128) u128 {
	return u128{Hi: a.Hi | b.Hi, Lo: a.Lo | b.Lo}
}

func u128One() u128 { return u128{Hi: 0, Lo: 1} }

func u128AllOnes() u128 { return u128{Hi: ^uint64(0), Lo: ^uint64(0)} }

func decU128(a u128) u128 {
	d, _ := sub128(a, u128One(), 0)
	return d
}

// mul256 performs unsigned 256x256 multiplication, returning the 512-bit
// product split into a high Value (bits 511..256) and low Value (bits
// 255..0). Generalizes mul128 (word.go) one digit-width up: each "digit"
// here is a u128 instead of a uint64.
func mul256(a, b Value) (hi, lo Value) {
	var u, v1, v2 Value
	u.Hi, u.Lo = mul128(a.Hi, b.Hi)
	v1.Hi, v1.Lo = mul128(a.Hi, b.Lo)
	v2.Hi, v2.Lo = mul128(a.Lo, b.Hi)
	v, vCarry := add256(v1, v2, 0)
	wHi, wLo := mul128(a.Lo, b.Lo)
	lo.Lo = wLo

	var midCarry, hiCarry uint64
	lo.Hi, midCarry = add128(v.Lo, wHi, 0)
	hi.Lo, hiCarry = add128(u.Lo, v.Hi, midCarry)
	hi.Hi, _ = add128(u.Hi, u128{Hi: 0, Lo: vCarry}, hiCarry)

	return hi, lo
}

// mulValueByU128 multiplies a 256-bit Value by a single u128 digit,
// producing a 384-bit result as three u128 digits (hi is most significant).
// Generalizes mul64By128 (word.go) the same way mul256 generalizes mul128.
func mulValueByU128(y Value, q u128) (hi, mid, lo u128) {
	var w, z u128
	var carry uint64
	w, lo = mul128(y.Lo, q)
	hi, z = mul128(y.Hi, q)

	mid, carry = add128(w, z, 0)
	hi, _ = add128(hi, u128Zero, carry)

	return hi, mid, lo
}

// estimateDivisorDigit left-aligns the leading bit of a 256-bit divisor's
// high digit into a single u128 estimate: "(y.Hi << shift) | (y.Lo >>
// (128-shift))" at u128 digit granularity. Requires y.Hi != 0.
func estimateDivisorDigit(y Value) (estY u128, shift uint) {
	shift = clz128(y.Hi)
	if shift == 0 {
		return y.Hi, 0
	}
	return or128(shl128(y.Hi, shift), ushr128(y.Lo, 128-shift)), shift
}

// div3by2 divides a 384-bit numerator (d2:d1:d0, each a u128 digit) by a
// 256-bit divisor y whose top digit is non-zero, producing a 256-bit
// quotient and 256-bit remainder. This is div192by128 (3 64-bit-digit
// numerator / 2 64-bit-digit divisor) one digit-width up: the per-digit
// divide (bits.Div64) becomes divWide128, and the per-digit multiply
// (bits.Mul64) becomes mul128.
//
// Since the numerator here is always exactly 3 digits wide, a single call
// to this function (no "divide and conquer" chaining) suffices — unlike a
// numerator that can be 4 digits wide relative to a 2-digit divisor, which
// needs two chained passes of this kernel.
func div3by2(d2, d1, d0 u128, y Value) (quo, rem Value) {
	estY, shift := estimateDivisorDigit(y)

	estHi := ushr128(d2, 128-shift)
	estLo := d2
	if shift != 0 {
		estLo = or128(shl128(d2, shift), ushr128(d1, 128-shift))
	}

	qHi, _ := divWide128(estHi, estLo, estY)

	pHi, pMid, pLo := mulValueByU128(y, qHi)

	var interimHi, interimMid u128
	var borrow uint64
	interimMid, borrow = sub128(d1, pLo, 0)
	interimHi, borrow = sub128(d2, pMid, borrow)

	if pHi != u128Zero || borrow != 0 {
		qHi = decU128(qHi)

		var carry uint64
		interimMid, carry = add128(interimMid, y.Lo, 0)
		interimHi, _ = add128(interimHi, y.Hi, carry)
	}

	finalHi := interimHi
	finalLo := interimMid
	if shift != 0 {
		finalHi = or128(shl128(interimHi, shift), ushr128(interimMid, 128-shift))
		finalLo = or128(shl128(interimMid, shift), ushr128(d0, 128-shift))
	}

	if !ult128(finalHi, estY) {
		// finalHi can only equal estY here, never exceed it.
		qLo := u128AllOnes()
		var carry uint64
		rem.Lo, carry = add128(d0, y.Lo, 0)
		interimMid, _ = add128(interimMid, y.Hi, carry)
		rem.Hi, _ = sub128(interimMid, y.Lo, 0)
		return Value{Hi: qHi, Lo: qLo}, rem
	}

	qLo, _ := divWide128(finalHi, finalLo, estY)

	pHi, pMid, pLo = mulValueByU128(y, qLo)

	var borrow2 uint64
	rem.Lo, borrow2 = sub128(d0, pLo, 0)
	rem.Hi, borrow2 = sub128(interimMid, pMid, borrow2)
	_, borrow2 = sub128(interimHi, pHi, borrow2)

	for borrow2 != 0 {
		qLo = decU128(qLo)

		var carry uint64
		rem.Lo, carry = add128(rem.Lo, y.Lo, 0)
		rem.Hi, carry = add128(rem.Hi, y.Hi, carry)

		borrow2 = boolToBorrow(carry == 0)
	}

	return Value{Hi: qHi, Lo: qLo}, rem
}

func boolToBorrow(stillNegative bool) uint64 {
	if stillNegative {
		return 1
	}
	return 0
}

// div3by1 divides a 384-bit numerator (d2:d1:d0) by a divisor that fits in
// a single u128 digit, via two chained divWide128 calls — div192by64 (two
// chained bits.Div64 calls) one digit-width up. The caller must ensure
// d2 < y (otherwise the quotient would not fit in 256 bits).
func div3by1(d2, d1, d0, y u128) (quo Value, rem u128) {
	qHi, r := divWide128(d2, d1, y)
	qLo, r2 := divWide128(r, d0, y)

	return Value{Hi: qHi, Lo: qLo}, r2
}

// divWideValue divides the 384-bit numerator (d2:d1:d0) by the 256-bit
// divisor y, returning the 256-bit quotient, 256-bit remainder, and whether
// the quotient overflowed 256 bits. y must be non-zero.
func divWideValue(d2, d1, d0 u128, y Value) (quo, rem Value, overflow bool) {
	if y.Hi == u128Zero {
		if ult128(d2, y.Lo) {
			q, r := div3by1(d2, d1, d0, y.Lo)
			return q, Value{Hi: u128Zero, Lo: r}, false
		}
		return Value{}, Value{}, true
	}

	q, r := div3by2(d2, d1, d0, y)
	return q, r, false
}

// div4by2 divides a 512-bit numerator (n3:n2:n1:n0) by the 256-bit divisor
// y, used by FMD where the numerator is a full 256x256 wide product rather
// than a single value widened by one digit. It chains two passes of the
// 3-by-2 kernel ("divide and conquer") when the divisor needs two digits,
// and collapses to a single chained-divWide128 pass when the divisor fits
// one digit.
func div4by2(n3, n2, n1, n0 u128, y Value) (quo, rem Value, overflow bool) {
	if y.Hi == u128Zero {
		if n3 != u128Zero || !ult128(n2, y.Lo) {
			return Value{}, Value{}, true
		}
		q, r := div3by1(n2, n1, n0, y.Lo)
		return q, Value{Hi: u128Zero, Lo: r}, false
	}

	qHi, rHi := div3by2(n3, n2, n1, y)
	if qHi.Hi != u128Zero {
		return Value{}, Value{}, true
	}

	qLo, rem := div3by2(rHi.Hi, rHi.Lo, n0, y)

	combined := Value{Hi: qHi.Lo, Lo: u128Zero}
	quo, carryFinal := add256(combined, qLo, 0)
	if carryFinal != 0 {
		return Value{}, Value{}, true
	}

	return quo, rem, false
}
