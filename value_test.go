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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	require.True(t, Zero.IsZero())
	require.Equal(t, Value{Hi: u128{Hi: 0, Lo: 1}, Lo: u128Zero}, One)
	require.Equal(t, Value{Hi: u128Zero, Lo: u128{Hi: 0, Lo: 1}}, Smallest)
	require.True(t, Min.IsNeg())
	require.False(t, Max.IsNeg())
}

func TestAddSubIdentities(t *testing.T) {
	cases := []Value{Zero, One, Smallest, Max, Min, FromInt(42), FromInt(-42), FromInt(1).Neg()}
	for _, v := range cases {
		require.True(t, v.Add(v.Neg()).IsZero() || v == Min, "add(v, neg(v)) should be zero: %v", v)
		require.True(t, v.Sub(v).IsZero())
		require.Equal(t, v, v.Add(Zero))
	}
}

func TestNegMinWraps(t *testing.T) {
	// Negating Min is the one documented exception — it wraps back to Min
	// instead of saturating, because Min's magnitude (2^127) has no
	// positive Q128.128 representation.
	require.Equal(t, Min, Min.Neg())
	require.Equal(t, Min, Min.Neg().Neg().Neg())
}

func TestNegInvolution(t *testing.T) {
	for _, v := range []Value{One, Smallest, FromInt(7), FromInt(-7), Max} {
		require.Equal(t, v, v.Neg().Neg())
	}
}

func TestAbsNabs(t *testing.T) {
	v := FromInt(-7)
	mag, sign := v.Abs()
	require.Equal(t, FromInt(7), mag)
	require.Equal(t, int64(-1), sign)

	require.Equal(t, FromInt(-7), FromInt(7).Nabs())
	require.Equal(t, FromInt(-7), FromInt(-7).Nabs())
	// Min's magnitude has no positive representation, but Nabs of any value,
	// Min included, is always representable.
	require.Equal(t, Min, Min.Nabs())
	require.Equal(t, Zero, Zero.Nabs())
}

func TestCmpTotalOrder(t *testing.T) {
	vs := []Value{Min, FromInt(-100), Zero, Smallest, One, FromInt(100), Max}
	for i := range vs {
		require.Equal(t, 0, vs[i].Cmp(vs[i]))
		for j := range vs {
			if i < j {
				require.Negative(t, vs[i].Cmp(vs[j]))
				require.Positive(t, vs[j].Cmp(vs[i]))
			}
		}
	}
}

func TestMinMax(t *testing.T) {
	require.Equal(t, FromInt(1), FromInt(1).Min(FromInt(2)))
	require.Equal(t, FromInt(2), FromInt(1).Max(FromInt(2)))
	require.Equal(t, FromInt(5), FromInt(5).Min(FromInt(5)))
}

func TestFloorCeilRound(t *testing.T) {
	oneAndHalf := FromInt(1).Add(Value{Hi: u128Zero, Lo: u128{Hi: 0x8000000000000000, Lo: 0}})
	require.Equal(t, FromInt(1), oneAndHalf.Floor())
	require.Equal(t, FromInt(2), oneAndHalf.Ceil())
	require.Equal(t, FromInt(2), oneAndHalf.Round())

	negOneAndHalf := oneAndHalf.Neg()
	require.Equal(t, FromInt(-2), negOneAndHalf.Floor())
	require.Equal(t, FromInt(-1), negOneAndHalf.Ceil())
	require.Equal(t, FromInt(-2), negOneAndHalf.Round())

	for _, v := range []Value{Zero, One, FromInt(-3), FromInt(7), Min} {
		require.True(t, v.Floor().Lte(v))
		require.True(t, v.Lte(v.Ceil()))
		delta := v.Ceil().Sub(v.Floor())
		require.True(t, delta.IsZero() || delta == One)
	}

	// Max's true ceiling (2^127) is not representable, so Ceil saturates.
	require.Equal(t, Max, Max.Ceil())
	require.True(t, Max.Floor().Lte(Max))
}

func TestShiftRoundTrip(t *testing.T) {
	v := Value{Hi: u128{Hi: 0, Lo: 0}, Lo: u128{Hi: 0, Lo: 5}}
	shifted := v.Shl(1)
	require.Equal(t, Value{Hi: u128Zero, Lo: u128{Hi: 0, Lo: 10}}, shifted)
	require.Equal(t, v, shifted.Shr(1))

	// 5 at bit 0 of Lo shifted left by 193 lands 65 bits into Hi, i.e. bit 1
	// of Hi's own high 64-bit limb: 5<<1 = 10.
	big := v.Shl(193)
	require.Equal(t, Value{Hi: u128{Hi: 10, Lo: 0}, Lo: u128Zero}, big)
}

func TestSarFillsSignBit(t *testing.T) {
	negative := Value{Hi: u128{Hi: 0xa000000000000000, Lo: 0}, Lo: u128Zero}
	shifted := negative.Sar(65)
	require.True(t, shifted.IsNeg())
	// The top 65 bits are all ones (sign fill); bit 190 (256-65-1) still
	// carries the shifted-in original content, so only check the very top.
	require.Equal(t, uint64(0xffffffffffffffff), shifted.Hi.Hi)
}

func TestSarIdentityWhenSignPreserving(t *testing.T) {
	v := FromInt(3)
	require.Equal(t, v, v.Shl(4).Sar(4))
	neg := FromInt(-3)
	require.Equal(t, neg, neg.Shl(4).Sar(4))
}

func TestBitwiseOps(t *testing.T) {
	a := FromInt(0b1100)
	b := FromInt(0b1010)
	require.Equal(t, FromInt(0b1000), a.And(b))
	require.Equal(t, FromInt(0b1110), a.Or(b))
	require.Equal(t, FromInt(0b0110), a.Xor(b))
	require.Equal(t, a, a.Not().Not())
}

func TestIntConversionRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -42, 1 << 40, -(1 << 40)} {
		v := FromInt(n)
		got, ok := v.ToInt()
		require.True(t, ok)
		require.Equal(t, n, got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	for _, d := range []float64{0, 1, -1, 2.5, -2.125, 2.918018798719000910681} {
		v := FromFloat(d)
		require.InDelta(t, d, v.ToFloat(), 1e-12)
	}
}

func TestFloatExactRoundTrip(t *testing.T) {
	// -2.125 is exactly representable in both float64 and Q128.128, so the
	// round trip is bit-for-bit, not just within a tolerance.
	for _, d := range []float64{-2.125, 0.5, -0.25, 3, 1.0 / 1024} {
		require.Equal(t, d, FromFloat(d).ToFloat())
	}
}

func TestFromFloatSaturates(t *testing.T) {
	require.Equal(t, Max, FromFloat(1e40))
	require.Equal(t, Min, FromFloat(-1e40))
}

func TestDivByZeroSaturates(t *testing.T) {
	require.Equal(t, Max, One.Div(Zero))
	require.Equal(t, Min, FromInt(-1).Div(Zero))
	require.Equal(t, Zero, Zero.Div(Zero))
}

func TestModByZeroSaturates(t *testing.T) {
	require.Equal(t, Max, One.Mod(Zero))
	require.Equal(t, Min, FromInt(-1).Mod(Zero))
	require.Equal(t, Zero, Zero.Mod(Zero))
}

func TestDivReciprocalOfSmallestSaturates(t *testing.T) {
	// One / Smallest == Max (1 / 2^-128 is 2^128, far outside the
	// representable range, so it saturates).
	require.Equal(t, Max, One.Div(Smallest))
}

func TestFMDOverflowSaturates(t *testing.T) {
	// 1*1/2^-128 = 2^128, far outside the representable range; the sign of
	// the saturated result follows the operands.
	require.Equal(t, Max, One.FMD(One, Smallest))
	require.Equal(t, Min, One.Neg().FMD(One, Smallest))
}

func TestMulDivModRoundTrip(t *testing.T) {
	// trunc(a/b)*b + (a mod b) == a, with the quotient truncated toward
	// zero — the same quotient Mod itself is defined against.
	a := FromInt(17)
	b := FromInt(5)
	trunc := a.Div(b).Floor()
	r := a.Mod(b)
	require.Equal(t, FromInt(2), r)
	require.Equal(t, a, trunc.Mul(b).Add(r))
}

func TestQuartersRoundTrip(t *testing.T) {
	v := FromQuarters(1, 2, 3, 4)
	require.Equal(t, Value{Lo: u128{Hi: 2, Lo: 1}, Hi: u128{Hi: 4, Lo: 3}}, v)
	q0, q1, q2, q3 := v.Quarters()
	require.Equal(t, v, FromQuarters(q0, q1, q2, q3))

	// The shift scenario expressed in quarters: 5 in the lowest limb
	// shifted by 1 doubles it; shifted by 193 it lands 65 bits into the
	// integer half's upper limb.
	require.Equal(t, FromQuarters(10, 0, 0, 0), FromQuarters(5, 0, 0, 0).Shl(1))
	require.Equal(t, FromQuarters(0, 0, 0, 10), FromQuarters(5, 0, 0, 0).Shl(193))
}

func TestBytesRoundTrip(t *testing.T) {
	for _, v := range []Value{Zero, One, Smallest, Max, Min, FromInt(-12345)} {
		require.Equal(t, v, FromBytes(v.Bytes()))
	}
}
