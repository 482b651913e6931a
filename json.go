package govec3

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputVectorAsJSON writes v to filename as a pretty-printed JSON object with
// x, y and z fields, creating the file or overwriting whatever is there.
//
// encoding/json has no literal for NaN or ±Inf, so a vector with non-finite
// components makes this return an error rather than emitting invalid JSON.
// All failures (encoding, bad path, permissions) come back as wrapped errors;
// nothing here panics and nothing is retried.
func OutputVectorAsJSON(v Vector3, filename string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("govec3: encode vector: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("govec3: write %s: %w", filename, err)
	}

	return nil
}
