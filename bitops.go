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

// Not returns the bitwise complement of v.
func (v Value) Not() Value { return not256(v) }

// And returns the bitwise AND of v and w.
func (v Value) And(w Value) Value { return and256(v, w) }

// Or returns the bitwise OR of v and w.
func (v Value) Or(w Value) Value { return or256(v, w) }

// Xor returns the bitwise XOR of v and w.
func (v Value) Xor(w Value) Value { return xor256(v, w) }

// Shl returns v shifted left by n bits (n reduced modulo 256), with zeros
// shifted in from the low end.
func (v Value) Shl(n uint) Value { return shl256(v, n) }

// Shr returns v shifted right by n bits (n reduced modulo 256) as an
// unsigned (logical) shift, with zeros shifted in from the high end.
func (v Value) Shr(n uint) Value { return shr256(v, n) }

// Sar returns v shifted right by n bits (n reduced modulo 256) as an
// arithmetic (signed) shift, with the sign bit replicated into the high end.
func (v Value) Sar(n uint) Value { return sar256(v, n) }
