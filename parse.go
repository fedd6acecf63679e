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

// FromString parses a decimal or hexadecimal Q128.128 literal from the
// front of s: optional leading whitespace, an optional sign, an optional
// "0x"/"0X" prefix selecting base 16 (base 10 otherwise), an integer part,
// and an optional fractional part introduced by the configured decimal-point
// character (DecimalConfig().DecimalPoint()).
//
// It returns the parsed value and the unconsumed remainder of s — the Go
// expression of a C-style "end pointer". If no digits are found at all,
// the remainder is s unchanged and the value is Zero; the library surfaces
// no parse errors, consistent with its saturate-instead-of-fail convention
// elsewhere.
func FromString(s string) (Value, string) {
	i := 0
	for i < len(s) && isParseSpace(s[i]) {
		i++
	}

	sign := int64(1)
	if i < len(s) {
		switch s[i] {
		case '-':
			sign = -1
			i++
		case '+':
			i++
		}
	}

	base := uint64(10)
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}
	baseWord := u128FromUint64(base)

	intStart := i
	intAcc := u128Zero
	for i < len(s) {
		d, ok := digitVal(s[i], base)
		if !ok {
			break
		}
		_, scaled := mul128(intAcc, baseWord)
		intAcc, _ = add128(scaled, u128FromUint64(uint64(d)), 0)
		i++
	}
	consumedInt := i > intStart

	fracAcc := u128Zero
	consumedFrac := false
	if i < len(s) && s[i] == DecimalConfig().DecimalPoint() {
		fracStart := i + 1
		j := fracStart
		for j < len(s) {
			if _, ok := digitVal(s[j], base); !ok {
				break
			}
			j++
		}
		if j > fracStart {
			consumedFrac = true
			// Right-to-left: each digit is folded in as the high digit of a
			// 256/128 divide by base — the inverse
			// of the formatter's left-to-right "multiply remainder by 10"
			// digit production. The last division's remainder rounds the
			// result to the nearest ulp (ties away from zero).
			var rem u128
			for k := j - 1; k >= fracStart; k-- {
				d, _ := digitVal(s[k], base)
				fracAcc, rem = divWide128(u128FromUint64(uint64(d)), fracAcc, baseWord)
			}
			if 2*rem.Lo >= base {
				var carry uint64
				fracAcc, carry = add128(fracAcc, u128One(), 0)
				intAcc, _ = add128(intAcc, u128Zero, carry)
			}
			i = j
		}
	}

	if !consumedInt && !consumedFrac {
		return Zero, s
	}

	v := Value{Hi: intAcc, Lo: fracAcc}
	if sign < 0 {
		v = v.Neg()
	}
	return v, s[i:]
}

func isParseSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	}
	return false
}

// digitVal reports the numeric value of c as a digit in the given base, and
// whether c is a valid digit in that base.
func digitVal(c byte, base uint64) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if uint64(d) >= base {
		return 0, false
	}
	return d, true
}
