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

// Zero, One, Smallest, Min, and Max are the package-level sentinel values
// for the single signed Value type.
var (
	// Zero is the additive identity.
	Zero = Value{Hi: u128Zero, Lo: u128Zero}

	// One is 1.0.
	One = Value{Hi: u128{Hi: 0, Lo: 1}, Lo: u128Zero}

	// Smallest is the smallest representable positive value, 2^-128.
	Smallest = Value{Hi: u128Zero, Lo: u128{Hi: 0, Lo: 1}}

	// Min is the most negative representable value.
	Min = Value{Hi: u128{Hi: 0x8000000000000000, Lo: 0}, Lo: u128Zero}

	// Max is the largest representable value.
	Max = Value{
		Hi: u128{Hi: 0x7fffffffffffffff, Lo: 0xffffffffffffffff},
		Lo: u128{Hi: 0xffffffffffffffff, Lo: 0xffffffffffffffff},
	}

	// threeHalves is the 1.5 constant in Rsqrt's Newton-Raphson update.
	threeHalves = Value{Hi: u128{Hi: 0, Lo: 1}, Lo: u128{Hi: 0x8000000000000000, Lo: 0}}
)

// decimalConfig holds the process-wide decimal-point character used by the
// formatter and parser. Rather than exposing a bare package-level variable,
// it is wrapped in a small config object with accessors: a settable
// configuration option rather than free-floating state.
type decimalConfig struct {
	point byte
}

var globalDecimalConfig = &decimalConfig{point: '.'}

// DecimalConfig returns the process-wide decimal formatting configuration.
func DecimalConfig() *decimalConfigHandle {
	return (*decimalConfigHandle)(globalDecimalConfig)
}

// decimalConfigHandle is the exported view of decimalConfig; kept distinct
// from the unexported struct so the zero value can't be constructed outside
// this package and bypass the '.' default.
type decimalConfigHandle decimalConfig

// DecimalPoint returns the byte currently used as the decimal point.
func (c *decimalConfigHandle) DecimalPoint() byte {
	return c.point
}

// SetDecimalPoint changes the byte used as the decimal point in both the
// formatter and the parser.
func (c *decimalConfigHandle) SetDecimalPoint(b byte) {
	c.point = b
}
