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

// withinUlps reports whether a and b differ by at most n ulps (n*2^-128).
func withinUlps(a, b Value, n uint64) bool {
	d := absValueDiff(a, b)
	return d.Lte(Value{Hi: u128Zero, Lo: u128{Hi: 0, Lo: n}})
}

func TestSqrtExactSquares(t *testing.T) {
	cases := []struct{ in, want int64 }{
		{0, 0}, {1, 1}, {4, 2}, {9, 3}, {144, 12}, {1 << 40, 1 << 20},
	}
	for _, c := range cases {
		got := FromInt(c.in).Sqrt()
		require.True(t, withinUlps(got, FromInt(c.want), 2), "sqrt(%d): got %s", c.in, got.ToString())
	}
}

func TestSqrtOfTwoAtPrecision20(t *testing.T) {
	got := FromInt(2).Sqrt().ToStringFormatted(Format{Precision: 20})
	require.Equal(t, "1.41421356237309504880", got)
}

func TestSqrtNegativeSaturates(t *testing.T) {
	require.Equal(t, Min, FromInt(-1).Sqrt())
	require.Equal(t, Min, Min.Sqrt())
}

func TestSqrtOfFraction(t *testing.T) {
	quarter := Value{Hi: u128Zero, Lo: u128{Hi: 0x4000000000000000, Lo: 0}}
	half := Value{Hi: u128Zero, Lo: u128{Hi: 0x8000000000000000, Lo: 0}}
	require.True(t, withinUlps(quarter.Sqrt(), half, 2))
}

func TestSqrtSquareInverse(t *testing.T) {
	for _, n := range []int64{2, 3, 7, 1000, 123456789} {
		v := FromInt(n)
		root := v.Sqrt()
		back := root.Mul(root)
		// An error of k ulps in the root becomes ~2*root*k ulps in its
		// square, so the bound scales with the root's magnitude.
		allowed := root.Shr(118)
		require.True(t, absValueDiff(back, v).Lte(allowed), "sqrt(%d)^2: got %s", n, back.ToString())
	}
}

func TestRsqrtNonPositiveSaturates(t *testing.T) {
	require.Equal(t, Min, Zero.Rsqrt())
	require.Equal(t, Min, FromInt(-4).Rsqrt())
}

func TestRsqrtExact(t *testing.T) {
	require.True(t, withinUlps(One.Rsqrt(), One, 2))
	half := Value{Hi: u128Zero, Lo: u128{Hi: 0x8000000000000000, Lo: 0}}
	require.True(t, withinUlps(FromInt(4).Rsqrt(), half, 4))
}

func TestRsqrtTimesSqrtIsOne(t *testing.T) {
	allowed := Value{Hi: u128Zero, Lo: u128{Hi: 0, Lo: 1 << 28}}
	for _, n := range []int64{2, 5, 100, 54321} {
		v := FromInt(n)
		product := v.Rsqrt().Mul(v.Sqrt())
		require.True(t, absValueDiff(product, One).Lte(allowed), "rsqrt(%d)*sqrt(%d): got %s", n, n, product.ToString())
	}
}
