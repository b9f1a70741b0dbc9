package badger

import (
	"fmt"

	"github.com/poiesic/kindred/core"
)

// Key prefixes for different data types
const (
	conceptRecordPrefix  = "conrec"
	conceptTuplePrefix   = "contup"
	conceptCompanyPrefix = "concom"
	companyRecordPrefix  = "comrec"
	marketRecordPrefix   = "mktrec"
	extractionPrefix     = "docext"
)

// makeConceptKey generates a key for a master concept by ID.
func makeConceptKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", conceptRecordPrefix, id))
}

// makeConceptTupleKey generates a composite key for concept lookup by
// (companyCode, conceptName).
// Format: prefix:companyCode:conceptName
func makeConceptTupleKey(companyCode, conceptName string) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", conceptTuplePrefix, companyCode, conceptName))
}

// makeConceptCompanyKey generates a composite key for the per-company
// concept index.
// Format: prefix:companyCode:conceptID
func makeConceptCompanyKey(companyCode string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", conceptCompanyPrefix, companyCode, id))
}

// makePartialConceptCompanyKey generates the iteration prefix for one
// company's concept index entries.
func makePartialConceptCompanyKey(companyCode string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", conceptCompanyPrefix, companyCode))
}

// makeCompanyKey generates a key for a company record by code.
// Companies sort by code because the code is the key suffix.
func makeCompanyKey(code string) []byte {
	return []byte(fmt.Sprintf("%s:%s", companyRecordPrefix, code))
}

// makeMarketKey generates a key for a market data snapshot by company code.
func makeMarketKey(code string) []byte {
	return []byte(fmt.Sprintf("%s:%s", marketRecordPrefix, code))
}

// makeExtractionKey generates a key for a staged document extraction.
func makeExtractionKey(docID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", extractionPrefix, docID))
}
