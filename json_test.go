package govec3

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputVectorAsJSON(t *testing.T) {
	testCases := []struct {
		name string
		v    Vector3
	}{
		{"Integers", NewVector3(1, 2, 3)},
		{"Negative and fractional", NewVector3(-1.5, 0.25, 1e10)},
		{"Zero vector", NewVector3(0, 0, 0)},
		{"Irrational components", NewVector3(math.Sqrt(2), math.Pi, 1.0/3.0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "vector.json")
			if err := OutputVectorAsJSON(tc.v, path); err != nil {
				t.Fatalf("OutputVectorAsJSON() error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}

			// Round-trip: parsing the file reproduces the components exactly,
			// since encoding/json prints float64 values losslessly.
			var got Vector3
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("parsing output: %v", err)
			}
			if got != tc.v {
				t.Errorf("round-trip = %v, want %v", got, tc.v)
			}
		})
	}
}

func TestOutputVectorAsJSONIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector.json")
	if err := OutputVectorAsJSON(NewVector3(1, 2, 3), path); err != nil {
		t.Fatalf("OutputVectorAsJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, "\n") {
		t.Error("output is not indented")
	}
	for _, key := range []string{`"x"`, `"y"`, `"z"`} {
		if !strings.Contains(text, key) {
			t.Errorf("output missing key %s:\n%s", key, text)
		}
	}
}

func TestOutputVectorAsJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vector.json")
	if err := OutputVectorAsJSON(NewVector3(9, 9, 9), path); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := OutputVectorAsJSON(NewVector3(1, 2, 3), path); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var got Vector3
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("parsing output: %v", err)
	}
	if got != NewVector3(1, 2, 3) {
		t.Errorf("file contents = %v, want the second write", got)
	}
}

func TestOutputVectorAsJSONErrors(t *testing.T) {
	t.Run("Non-finite component", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "vector.json")
		err := OutputVectorAsJSON(NewVector3(math.NaN(), 0, 0), path)
		if err == nil {
			t.Fatal("expected an error for NaN component")
		}
		err = OutputVectorAsJSON(NewVector3(0, math.Inf(1), 0), path)
		if err == nil {
			t.Fatal("expected an error for Inf component")
		}
	})

	t.Run("Invalid path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no-such-dir", "vector.json")
		err := OutputVectorAsJSON(NewVector3(1, 2, 3), path)
		if err == nil {
			t.Fatal("expected an error for missing directory")
		}
	})
}
