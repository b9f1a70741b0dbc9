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
	"github.com/poiesic/kindred/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalMasterConcept serializes a MasterConcept to bytes.
func MarshalMasterConcept(concept *core.MasterConcept) []byte {
	buf := make([]byte, core.MasterConceptMUS.Size(*concept))
	core.MasterConceptMUS.Marshal(*concept, buf)
	return buf
}

// UnmarshalMasterConcept deserializes a MasterConcept from bytes.
func UnmarshalMasterConcept(data []byte) (*core.MasterConcept, error) {
	concept, _, err := core.MasterConceptMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &concept, nil
}

// MarshalCompany serializes a Company to bytes.
func MarshalCompany(company *core.Company) []byte {
	buf := make([]byte, core.CompanyMUS.Size(*company))
	core.CompanyMUS.Marshal(*company, buf)
	return buf
}

// UnmarshalCompany deserializes a Company from bytes.
func UnmarshalCompany(data []byte) (*core.Company, error) {
	company, _, err := core.CompanyMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &company, nil
}

// MarshalMarketData serializes a MarketData snapshot to bytes.
func MarshalMarketData(data *core.MarketData) []byte {
	buf := make([]byte, core.MarketDataMUS.Size(*data))
	core.MarketDataMUS.Marshal(*data, buf)
	return buf
}

// UnmarshalMarketData deserializes a MarketData snapshot from bytes.
func UnmarshalMarketData(data []byte) (*core.MarketData, error) {
	md, _, err := core.MarketDataMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &md, nil
}

// MarshalConceptExtraction serializes a ConceptExtraction to bytes.
func MarshalConceptExtraction(extraction *core.ConceptExtraction) []byte {
	buf := make([]byte, core.ConceptExtractionMUS.Size(*extraction))
	core.ConceptExtractionMUS.Marshal(*extraction, buf)
	return buf
}

// UnmarshalConceptExtraction deserializes a ConceptExtraction from bytes.
func UnmarshalConceptExtraction(data []byte) (*core.ConceptExtraction, error) {
	extraction, _, err := core.ConceptExtractionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &extraction, nil
}
