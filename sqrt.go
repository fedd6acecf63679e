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

const maxSqrtIterations = 7

var oneLeadingZeros = clz256(One)

// sqrtSeed picks a starting estimate for Newton-Raphson by matching half
// the difference in leading-zero count between x and One.
func sqrtSeed(x Value) Value {
	n := clz256(x)

	if n < oneLeadingZeros {
		return x.Shr((oneLeadingZeros - n) / 2)
	}
	return x.Shl((n - oneLeadingZeros) / 2)
}

func absValueDiff(a, b Value) Value {
	if a.Cmp(b) >= 0 {
		d, _ := sub256(a, b, 0)
		return d
	}
	d, _ := sub256(b, a, 0)
	return d
}

// closerToRoot picks whichever of quo/est squares closer to x. quo and est
// differ by exactly one ulp, and both are nonnegative, so the fixed-point
// squares are directly comparable against x.
func closerToRoot(quo, est, x Value) Value {
	quoSq := quo.Mul(quo)
	estSq := est.Mul(est)

	if absValueDiff(quoSq, x).Lt(absValueDiff(estSq, x)) {
		return quo
	}
	return est
}

// Sqrt returns the square root of v using Newton-Raphson, rounded to the
// nearest representable value. A negative input saturates to Min.
func (v Value) Sqrt() Value {
	if v.IsNeg() {
		return Min
	}
	if v.IsZero() {
		return Zero
	}

	est := sqrtSeed(v)
	if est.IsZero() {
		est = Smallest
	}

	for i := 0; i < maxSqrtIterations; i++ {
		quo, _, overflow := divWideValue(v.Hi, v.Lo, u128Zero, est)
		if overflow {
			est = est.Shl(1)
			continue
		}

		diff := quo.Sub(est)

		if diff.IsZero() {
			break
		}
		if diff == Smallest || diff == neg256(Smallest) {
			est = closerToRoot(quo, est, v)
			break
		}

		est = est.Add(sar256(diff, 1))
	}

	return est
}

// Rsqrt returns 1/sqrt(v) using Newton-Raphson on the reciprocal-square-root
// iteration est <- est*(1.5 - 0.5*v*est^2), seeded with the reciprocal of
// Sqrt(v). A non-positive input saturates to Min.
func (v Value) Rsqrt() Value {
	if !v.IsNeg() && !v.IsZero() {
		est := One.Div(v.Sqrt())

		for i := 0; i < maxSqrtIterations; i++ {
			xEstSq := v.Mul(est).Mul(est)
			inner := threeHalves.Sub(xEstSq.Mul(half256))
			next := est.Mul(inner)

			if next.Sub(est).IsZero() {
				est = next
				break
			}
			est = next
		}

		return est
	}

	return Min
}

func sqrtSeedOrSmallest(x Value) Value {
	seed := sqrtSeed(x)
	if seed.IsZero() {
		return Smallest
	}
	return seed
}
