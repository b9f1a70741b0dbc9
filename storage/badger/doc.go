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


// Package badger implements the storage repositories on BadgerDB.
//
// Master concepts are stored under content-derived IDs with two secondary
// indexes: a (companyCode, conceptName) tuple index for direct lookup and a
// per-company index for listing a company's concepts. Versioned writes
// check the stored version inside the write transaction, giving the
// optimistic locking the fusion path relies on.
//
// The k-NN query is a brute-force scan over active concept vectors. That is
// the storage contract the search layer requires; swapping in a real ANN
// index only needs a new implementation of storage.ConceptRepository.
package badger
