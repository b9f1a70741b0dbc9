package ai

// ExtractedConcept is a business concept as the extraction model reports
// it. Labels are lowercase strings straight from the model; the fusion
// layer maps them onto the typed domain enums.
type ExtractedConcept struct {
	// Name is the concept identifier, e.g. "retail banking".
	Name string

	// Category is one of "core", "emerging", "strategic".
	Category string

	// Importance is a score in [0,1] indicating how central this concept
	// is to the company's business.
	Importance float64

	// Stage is one of "exploring", "growing", "mature", "declining".
	Stage string

	// Description is the model's summary of the business line.
	Description string

	// Established and RecentEvent are the timeline fields. RecentEvent is
	// point-in-time: the newest extraction always wins on merge.
	Established string
	RecentEvent string

	// Metrics are point-in-time numeric disclosures, keyed by metric name.
	Metrics map[string]float64

	// Customers, Partners and Subsidiaries are cumulative relation sets.
	Customers    []string
	Partners     []string
	Subsidiaries []string

	// SourceSentences are the disclosure sentences the concept was
	// extracted from, kept for citation.
	SourceSentences []string

	// Extras carries unstructured key/value leftovers from extraction.
	Extras map[string]string
}
