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

// Add returns v+w, saturating to Max or Min on overflow. The overflow test
// compares the sign bits of the operands against the sign bit of the raw
// sum.
func (v Value) Add(w Value) Value {
	sum, _ := add256(v, w, 0)

	if !v.IsNeg() && !w.IsNeg() && sum.IsNeg() {
		return Max
	}
	if v.IsNeg() && w.IsNeg() && !sum.IsNeg() {
		return Min
	}

	return sum
}

// Sub returns v-w, saturating to Max or Min on overflow.
func (v Value) Sub(w Value) Value {
	diff, _ := sub256(v, w, 0)

	if !v.IsNeg() && w.IsNeg() && diff.IsNeg() {
		return Max
	}
	if v.IsNeg() && !w.IsNeg() && !diff.IsNeg() {
		return Min
	}

	return diff
}

// Neg returns -v. Two's-complement negation of Min wraps back to Min — the
// one value whose magnitude has no positive representation — rather than
// saturating, distinct from the saturating overflow Add/Sub/Mul/Div
// exhibit.
func (v Value) Neg() Value {
	return neg256(v)
}

// applySaturatingSign converts an unsigned magnitude back to a signed
// Value, saturating if the magnitude doesn't fit the target sign.
func applySaturatingSign(mag Value, sign int64) Value {
	if sign >= 0 {
		if mag.IsNeg() {
			// mag's top bit is set, meaning it doesn't fit as a positive
			// Value (it would need the sign bit for magnitude).
			return Max
		}
		return mag
	}

	if mag == Min {
		// Min's magnitude (2^127) has no positive representation, but it
		// is exactly representable as the most negative Value.
		return Min
	}
	if mag.IsNeg() {
		return Min
	}
	return neg256(mag)
}
