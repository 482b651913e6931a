package govec3

import (
	"encoding/json"
	"fmt"
	"os"
)

// OracleResults mirrors the JSON document produced by an independent
// implementation of the same operations (the reference oracle). The field
// names, spaces and all, match that document so the two stay interchangeable.
type OracleResults struct {
	V1           Vector3 `json:"v1"`
	V2           Vector3 `json:"v2"`
	V1AddV2      Vector3 `json:"v1 + v2"`
	V1SubV2      Vector3 `json:"v1 - v2"`
	V1DotV2      float64 `json:"v1 dot v2"`
	V1CrossV2    Vector3 `json:"v1 cross v2"`
	V1Magnitude  float64 `json:"v1 magnitude"`
	V1Normalized Vector3 `json:"v1 normalized"`
}

// LoadOracleResults reads and decodes a reference-results document.
func LoadOracleResults(path string) (*OracleResults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("govec3: read oracle results %s: %w", path, err)
	}

	var results OracleResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("govec3: decode oracle results %s: %w", path, err)
	}

	return &results, nil
}

// ComputeResults fills the same document shape from this library's own
// arithmetic, so a harness can diff it against a loaded oracle document.
// v1 must have nonzero length (Normalized's contract applies).
func ComputeResults(v1, v2 Vector3) *OracleResults {
	return &OracleResults{
		V1:           v1,
		V2:           v2,
		V1AddV2:      v1.Add(v2),
		V1SubV2:      v1.Sub(v2),
		V1DotV2:      v1.Dot(v2),
		V1CrossV2:    v1.Cross(v2),
		V1Magnitude:  v1.Length(),
		V1Normalized: v1.Normalized(),
	}
}
