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


package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that the requested record was not found.
	ErrNotFound = errors.New("record not found")

	// ErrOptimisticLock indicates a versioned write targeted a stale version.
	ErrOptimisticLock = errors.New("optimistic lock conflict")

	// ErrStorageClosed indicates that the storage backend is closed.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidQuery indicates invalid query parameters.
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrSerializationFailed indicates a serialization/deserialization failure.
	ErrSerializationFailed = errors.New("serialization failed")
)

// ConflictError carries the detail of an optimistic lock conflict.
// It unwraps to ErrOptimisticLock so callers can match with errors.Is.
type ConflictError struct {
	CompanyCode string
	ConceptName string
	Expected    int64
	Actual      int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("optimistic lock conflict on %s/%s: expected version %d, found %d",
		e.CompanyCode, e.ConceptName, e.Expected, e.Actual)
}

func (e *ConflictError) Unwrap() error {
	return ErrOptimisticLock
}
