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

import "strconv"

// SignStyle controls how Format renders the sign of a non-negative value.
// A negative value always renders with a leading '-' regardless of SignStyle.
type SignStyle int

const (
	// SignDefault omits any sign character for non-negative values.
	SignDefault SignStyle = iota
	// SignSpace renders a leading space for non-negative values.
	SignSpace
	// SignPlus renders a leading '+' for non-negative values.
	SignPlus
)

// Format controls decimal rendering, mirroring a subset of C's printf float
// flags: sign style, field width, precision, zero-padding, a forced decimal
// point, and left alignment.
type Format struct {
	Sign SignStyle
	// Width is the minimum field width; the rendered value is padded to it.
	Width int
	// Precision is the number of fractional digits to emit. -1 means
	// "automatic": emit up to maxAutoPrecision digits, trimming the
	// run once the fractional remainder hits zero.
	Precision int
	// ZeroPad fills field-width padding with '0' instead of ' ', placed
	// after the sign, when the value is right-aligned.
	ZeroPad bool
	// AlwaysDecimal forces a decimal point even when Precision is 0 and no
	// fractional digits would otherwise be emitted.
	AlwaysDecimal bool
	// LeftAlign left-justifies the value within Width, padding on the right
	// with spaces instead of padding on the left.
	LeftAlign bool
}

// maxAutoPrecision bounds the "-1 means auto" case: 2^-128 has at most 128
// significant decimal digits, but the auto case is capped at 39 digits,
// enough to round-trip every distinguishable fractional value exactly.
const maxAutoPrecision = 39

// maxFracPrecision bounds how many fractional digits digit production ever
// computes directly; an explicit precision beyond this is satisfied by
// padding with zeros instead of computing digits that are provably zero
// (the exact decimal expansion of a base-2^-128 fraction never exceeds 128
// significant digits).
const maxFracPrecision = 215

var ten128 = u128FromUint64(10)

// ToString renders v using automatic precision: up to 39 fractional digits,
// trimmed once the fraction terminates exactly.
func (v Value) ToString() string {
	return v.ToStringFormatted(Format{Precision: -1})
}

// ToStringFormatted renders v according to f.
func (v Value) ToStringFormatted(f Format) string {
	return string(v.appendFormatted(nil, f))
}

// ToStringPrintfLike renders v according to a printf-style format string:
// [%]['+'|' '|'0'|'-'|'#']*[digits]['.'digits][type-char]. Characters that
// don't fit the grammar are ignored rather than rejected.
func (v Value) ToStringPrintfLike(formatString string) string {
	return v.ToStringFormatted(r256ToStringf(formatString))
}

// FormatInto writes the formatted representation of v into dst and returns
// the number of bytes the unabridged representation would occupy — C
// snprintf's contract. At most len(dst)-1 bytes are copied into dst,
// followed by a NUL terminator placed inside dst's capacity (at the last
// byte, if the rendering was truncated). If dst is empty, nothing is
// written and only the would-be length is returned.
func (v Value) FormatInto(dst []byte, f Format) int {
	full := v.appendFormatted(nil, f)
	n := len(full)
	if len(dst) == 0 {
		return n
	}
	cut := n
	if cut > len(dst)-1 {
		cut = len(dst) - 1
	}
	copy(dst[:cut], full[:cut])
	dst[cut] = 0
	return n
}

// appendFormatted is the formatter's core: digit production by repeated
// wide multiply/divide by 10, precision-bounded rounding with carry
// propagation, and width/align/pad/sign handling. Appends to dst and
// returns the result (dst may be nil).
func (v Value) appendFormatted(dst []byte, f Format) []byte {
	mag, signNum := v.Abs()

	prec := f.Precision
	fullPrecision := true
	if prec < 0 {
		prec = maxAutoPrecision
		fullPrecision = false
	}
	extraZeros := 0
	if prec > maxFracPrecision {
		extraZeros = prec - maxFracPrecision
		prec = maxFracPrecision
	}

	fracDigits := make([]byte, 0, prec)
	frac := mag.Lo
	stoppedEarly := false
	for len(fracDigits) < prec {
		if !fullPrecision && isZero128(frac) {
			stoppedEarly = true
			break
		}
		hi, lo := mul128(frac, ten128)
		fracDigits = append(fracDigits, byte('0'+hi.Lo))
		frac = lo
	}

	// Round half away from zero: the residual fraction (what's left of frac
	// after the last emitted digit) is >= half a ULP of the last place iff
	// its top bit is set.
	carry := !stoppedEarly && isNeg128(frac)
	for idx := len(fracDigits) - 1; idx >= 0 && carry; idx-- {
		if fracDigits[idx] == '9' {
			fracDigits[idx] = '0'
		} else {
			fracDigits[idx]++
			carry = false
		}
	}

	intMag := mag.Hi
	if carry {
		intMag, _ = add128(intMag, u128One(), 0)
	}

	if extraZeros > 0 {
		fracDigits = append(fracDigits, repeatByte('0', extraZeros)...)
	}

	var intDigits []byte
	if isZero128(intMag) {
		intDigits = []byte{'0'}
	} else {
		for cur := intMag; !isZero128(cur); {
			quo, rem := divWide128(u128Zero, cur, ten128)
			intDigits = append(intDigits, byte('0'+rem.Lo))
			cur = quo
		}
		reverseBytes(intDigits)
	}

	hasPoint := f.AlwaysDecimal || len(fracDigits) > 0

	var signByte byte
	switch {
	case signNum < 0:
		signByte = '-'
	case f.Sign == SignPlus:
		signByte = '+'
	case f.Sign == SignSpace:
		signByte = ' '
	}

	body := make([]byte, 0, 1+len(intDigits)+1+len(fracDigits))
	if signByte != 0 {
		body = append(body, signByte)
	}
	body = append(body, intDigits...)
	if hasPoint {
		body = append(body, DecimalConfig().DecimalPoint())
		body = append(body, fracDigits...)
	}

	padCount := f.Width - len(body)
	if padCount <= 0 {
		return append(dst, body...)
	}
	if f.LeftAlign {
		dst = append(dst, body...)
		return append(dst, repeatByte(' ', padCount)...)
	}
	if f.ZeroPad {
		if signByte != 0 {
			dst = append(dst, signByte)
			body = body[1:]
		}
		dst = append(dst, repeatByte('0', padCount)...)
		return append(dst, body...)
	}
	dst = append(dst, repeatByte(' ', padCount)...)
	return append(dst, body...)
}

func repeatByte(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func reverseBytes(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}

// r256ToStringf parses a printf-like format string into a Format. The
// grammar is: an optional leading '%', then any of the flags '+', ' ', '0',
// '-', '#' in any order/repetition, then optional width digits, then an
// optional '.' followed by precision digits, then a trailing type character
// (ignored — there is only one numeric type). Anything that doesn't fit is
// ignored rather than rejected.
func r256ToStringf(s string) Format {
	f := Format{Precision: -1}

	i := 0
	if i < len(s) && s[i] == '%' {
		i++
	}

flags:
	for i < len(s) {
		switch s[i] {
		case '+':
			f.Sign = SignPlus
		case ' ':
			if f.Sign != SignPlus {
				f.Sign = SignSpace
			}
		case '0':
			f.ZeroPad = true
		case '-':
			f.LeftAlign = true
		case '#':
			f.AlwaysDecimal = true
		default:
			break flags
		}
		i++
	}

	widthStart := i
	for i < len(s) && isASCIIDigit(s[i]) {
		i++
	}
	if i > widthStart {
		f.Width, _ = strconv.Atoi(s[widthStart:i])
	}

	if i < len(s) && s[i] == '.' {
		i++
		precStart := i
		for i < len(s) && isASCIIDigit(s[i]) {
			i++
		}
		if i > precStart {
			f.Precision, _ = strconv.Atoi(s[precStart:i])
		} else {
			f.Precision = 0
		}
	}

	return f
}

func isASCIIDigit(c byte) bool { return c >= '0' && c <= '9' }
