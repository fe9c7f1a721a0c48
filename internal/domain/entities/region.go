package entities

// Region is a coarse historical region name.
type Region string

// RegionConfidence says how a region was obtained.
type RegionConfidence string

const (
	// ConfidenceHeuristic marks a region guessed from context keywords.
	ConfidenceHeuristic RegionConfidence = "heuristic"
	// ConfidenceRequested marks a region supplied by a modification request.
	ConfidenceRequested RegionConfidence = "requested"
)

// RegionMatch is a best-effort region classification. It is not
// authoritative data.
type RegionMatch struct {
	Region     Region           `json:"region"`
	Keyword    string           `json:"keyword,omitempty"`
	Context    string           `json:"context,omitempty"`
	Confidence RegionConfidence `json:"confidence"`
}
