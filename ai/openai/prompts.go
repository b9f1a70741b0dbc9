package openai

import "fmt"

const extractionResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "business_concepts": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "concept": {"type": "string"},
          "category": {"type": "string", "enum": ["core", "emerging", "strategic"]},
          "importance": {"type": "number", "minimum": 0, "maximum": 1},
          "stage": {"type": "string", "enum": ["exploring", "growing", "mature", "declining"]},
          "description": {"type": "string"},
          "established": {"type": "string"},
          "recent_event": {"type": "string"},
          "metrics": {"type": "object", "additionalProperties": {"type": "number"}},
          "customers": {"type": "array", "items": {"type": "string"}},
          "partners": {"type": "array", "items": {"type": "string"}},
          "subsidiaries": {"type": "array", "items": {"type": "string"}},
          "source_sentences": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["concept", "category", "importance", "stage"],
        "additionalProperties": false
      }
    }
  },
  "required": ["business_concepts"],
  "additionalProperties": false
}`

const extractionPromptTemplate = `You are given an excerpt from a listed company's disclosure document
(annual report, prospectus, or announcement). Extract the distinct business concepts it discloses and
return them as JSON.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace { and end
with the closing brace }. Your output must exactly follow this schema:

%s

Rules:
- A business concept is one discrete strategic or operational theme, e.g. "retail banking" or
  "photovoltaic inverters". Use the company's own terminology, lowercase.
- category: "core" for established main businesses, "emerging" for businesses being built up,
  "strategic" for forward-looking bets.
- importance is a number from 0 to 1 rating how central the concept is to the company's results.
- stage describes the lifecycle of the business line.
- metrics holds point-in-time numeric disclosures (revenue, capacity, growth rate) keyed by name.
- customers, partners and subsidiaries list named counterparties only; never invent names.
- source_sentences quotes the sentences the concept was extracted from, verbatim.
- If no business concepts can be identified, return "business_concepts": [].
- The JSON must parse without errors; no trailing commas, no extra keys, no text outside the object.`

// buildSystemPrompt renders the extraction system prompt.
func buildSystemPrompt() string {
	return fmt.Sprintf(extractionPromptTemplate, extractionResponseSchema)
}
