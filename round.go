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

// Floor returns the largest integer value not greater than v. In two's
// complement, clearing the fractional bits is already floor division —
// there's no separate sign-dependent case the way there would be for
// truncation toward zero.
func (v Value) Floor() Value {
	return Value{Hi: v.Hi, Lo: u128Zero}
}

// Ceil returns the smallest integer value not less than v.
func (v Value) Ceil() Value {
	floor := v.Floor()
	if v.Lo == u128Zero {
		return floor
	}
	return floor.Add(One)
}

// Round returns v rounded to the nearest integer, ties rounding away from
// zero, saturating on overflow.
func (v Value) Round() Value {
	mag, sign := v.Abs()
	floorMag := Value{Hi: mag.Hi, Lo: u128Zero}

	if isNeg128(mag.Lo) {
		// Top bit of the 128-bit fraction is set, i.e. frac >= 0.5.
		floorMag = floorMag.Add(One)
	}

	return applySaturatingSign(floorMag, sign)
}
