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


package resilience

import "errors"

var (
	// ErrCircuitOpen is returned when the breaker rejects a call without
	// invoking the underlying operation.
	ErrCircuitOpen = errors.New("circuit breaker is open")

	// ErrInvalidThreshold indicates a non-positive failure threshold.
	ErrInvalidThreshold = errors.New("failure threshold must be positive")

	// ErrInvalidRecoveryTimeout indicates a non-positive recovery timeout.
	ErrInvalidRecoveryTimeout = errors.New("recovery timeout must be positive")

	// ErrInvalidMaxAttempts indicates a non-positive retry attempt count.
	ErrInvalidMaxAttempts = errors.New("max attempts must be positive")
)
