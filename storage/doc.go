// Copyright 2025 Poiesic Systems
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


// Package storage defines the repository interfaces for master business
// concepts, the company identity index, market data snapshots, and staged
// document extractions, together with the serialization helpers shared by
// all backends.
//
// The master concept store uses optimistic locking: every write presents
// the version it last read and fails with ErrOptimisticLock when the
// stored version has since moved on.
//
// Implementations must be thread-safe. See the badger subpackage for the
// BadgerDB implementation.
package storage
