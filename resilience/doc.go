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


// Package resilience provides the fault-handling primitives shared by the
// search and fusion paths: a circuit breaker guarding the storage backend
// and a bounded retry helper with backoff.
//
// The breaker moves through closed, open, and half-open states. A shared
// instance protects one backend dependency for all its callers; state is
// mutated under a single mutex so concurrent callers cannot lose failure
// counts.
package resilience
