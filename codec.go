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

import "encoding/binary"

// Bytes encodes v as a 32-byte little-endian blob: the low (fractional) half
// first, then the high (integer/sign) half, each half itself little-endian.
func (v Value) Bytes() [32]byte {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:8], v.Lo.Lo)
	binary.LittleEndian.PutUint64(buf[8:16], v.Lo.Hi)
	binary.LittleEndian.PutUint64(buf[16:24], v.Hi.Lo)
	binary.LittleEndian.PutUint64(buf[24:32], v.Hi.Hi)
	return buf
}

// FromBytes decodes a 32-byte blob produced by Bytes back into a Value.
func FromBytes(b [32]byte) Value {
	return Value{
		Lo: u128{Lo: binary.LittleEndian.Uint64(b[0:8]), Hi: binary.LittleEndian.Uint64(b[8:16])},
		Hi: u128{Lo: binary.LittleEndian.Uint64(b[16:24]), Hi: binary.LittleEndian.Uint64(b[24:32])},
	}
}
