package outcome

// Outcome classifies a catalog search for the UI.
type Outcome string

// Search outcomes. TooShort and NoResults are distinct UI states.
const (
	TooShort  Outcome = "too_short"
	NoResults Outcome = "no_results"
	Results   Outcome = "results"
)

// All lists every outcome.
func All() []Outcome {
	return []Outcome{TooShort, NoResults, Results}
}

// IsValid checks if the outcome is one of the known values.
func (o Outcome) IsValid() bool {
	return o == TooShort || o == NoResults || o == Results
}
