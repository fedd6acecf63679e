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

import (
	"math"
	"math/big"
)

// FromInt returns the Value equal to the integer n, with a zero fraction.
// Widening a native int into the larger representation never fails.
func FromInt(n int64) Value {
	signWord := uint64(0)
	if n < 0 {
		signWord = ^uint64(0)
	}
	return Value{Hi: u128{Hi: signWord, Lo: uint64(n)}, Lo: u128Zero}
}

// ToInt returns the signed integer half of v, and whether it fits in an
// int64. For a negative v with a non-zero fraction, the integer half (which
// is already a floor) is adjusted up by one so the conversion truncates
// toward zero, matching Go's own int conversion semantics.
func (v Value) ToInt() (n int64, ok bool) {
	hi := v.Hi
	if v.IsNeg() && !isZero128(v.Lo) {
		hi, _ = add128(hi, u128{Hi: 0, Lo: 1}, 0)
	}

	signWord := uint64(0)
	if isNeg128(hi) {
		signWord = ^uint64(0)
	}
	if hi.Hi != signWord {
		return 0, false
	}
	return int64(hi.Lo), true
}

var floatSaturationBound = math.Ldexp(1, 127)

// FromFloat converts a float64 to a Value, saturating outside +-2^127; bits of
// the magnitude below 2^-128 are truncated toward zero. NaN maps to Zero. math/big does the base-2 scaling of the
// fractional part; the u128 split itself is plain bit shifting.
func FromFloat(d float64) Value {
	if math.IsNaN(d) {
		return Zero
	}
	if d >= floatSaturationBound {
		return Max
	}
	if d <= -floatSaturationBound {
		return Min
	}

	neg := math.Signbit(d)
	mag := math.Abs(d)

	intPart, frac := math.Modf(mag)

	intBig, _ := new(big.Float).SetPrec(200).SetFloat64(intPart).Int(nil)

	scaledFrac := new(big.Float).SetPrec(200).SetFloat64(frac)
	scaledFrac.Mul(scaledFrac, two128)
	fracBig, _ := scaledFrac.Int(nil)

	magnitude := Value{
		Hi: uint64PairFromBigInt(intBig),
		Lo: uint64PairFromBigInt(fracBig),
	}

	if neg {
		return neg256(magnitude)
	}
	return magnitude
}

var two128 = new(big.Float).SetMantExp(big.NewFloat(1), 128)

func uint64PairFromBigInt(bi *big.Int) u128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(bi, mask).Uint64()
	hi := new(big.Int).And(new(big.Int).Rsh(bi, 64), mask).Uint64()
	return u128{Hi: hi, Lo: lo}
}

// ToFloat converts v to the nearest float64: (double)integer +
// (double)fractional * 2^-128, with the sign reapplied afterward. Precision
// beyond float64's 53-bit mantissa is lost, same as any wide-to-float
// conversion.
func (v Value) ToFloat() float64 {
	mag, sign := v.Abs()

	intBig := u128ToBigInt(mag.Hi)
	fracBig := u128ToBigInt(mag.Lo)

	fracFloat := new(big.Float).SetPrec(200).SetInt(fracBig)
	fracFloat.Quo(fracFloat, two128)

	intFloat := new(big.Float).SetPrec(200).SetInt(intBig)
	total := new(big.Float).SetPrec(200).Add(intFloat, fracFloat)

	f, _ := total.Float64()
	if sign < 0 {
		f = -f
	}
	return f
}

func u128ToBigInt(a u128) *big.Int {
	hi := new(big.Int).Lsh(new(big.Int).SetUint64(a.Hi), 64)
	return hi.Or(hi, new(big.Int).SetUint64(a.Lo))
}
