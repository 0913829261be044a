// Copyright 2020 ConsenSys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package circuit implements a thread-local-style R1CS constraint-system
// builder: variables carry a Mode (constant, public, private), linear
// combinations are sparse sums of weighted variables, and a ConstraintSystem
// accumulates (A, B, C) triples asserting A*B=C.
//
// Construction happens through a CircuitScope, a named, shared-ownership
// handle into a ConstraintSystem, and through an Environment, which holds
// the ambient scope a caller is currently building in and offers
// save/restore ("scoped") semantics around nested gadgets.
//
// The field of computation is fixed to the BLS12-377 scalar field
// (github.com/consensys/gnark-crypto/ecc/bls12-377/fr), mirroring the
// concrete field snarkVM's own circuit environment is built over.
package circuit
