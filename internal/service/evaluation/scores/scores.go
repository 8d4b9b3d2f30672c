// Package scores extracts numeric scores from free-form evaluation payloads and
// aggregates them into folder analytics. Every function here is total: malformed or
// unexpected input yields zero scores, never an error.
package scores

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"sort"
)

// Plausible score range. When a payload contains any number in this range, numbers
// outside it are treated as ids or timestamps and dropped.
const (
	MinScore = 0
	MaxScore = 10
)

// ExtractScores walks a decoded JSON value depth-first and returns the numbers it
// contains. The walk uses an explicit stack so hostile nesting depth cannot exhaust
// the goroutine stack. Object members are visited in key order.
func ExtractScores(v any) []float64 {
	all := collect(v)
	return narrow(all)
}

// ParseScores decodes data as a single JSON document and extracts its scores.
// Invalid JSON or trailing content has none.
func ParseScores(data string) []float64 {
	dec := json.NewDecoder(bytes.NewReader([]byte(data)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return []float64{}
	}
	if _, err := dec.Token(); err != io.EOF {
		return []float64{}
	}
	return ExtractScores(v)
}

func collect(root any) []float64 {
	var out []float64
	stack := []any{root}

	for len(stack) > 0 {
		n := len(stack) - 1
		v := stack[n]
		stack = stack[:n]

		switch t := v.(type) {
		case float64:
			if !math.IsInf(t, 0) && !math.IsNaN(t) {
				out = append(out, t)
			}
		case json.Number:
			if f, err := t.Float64(); err == nil && !math.IsInf(f, 0) {
				out = append(out, f)
			}
		case int:
			out = append(out, float64(t))
		case int64:
			out = append(out, float64(t))
		case []any:
			// push in reverse so elements pop in document order
			for i := len(t) - 1; i >= 0; i-- {
				stack = append(stack, t[i])
			}
		case map[string]any:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Sort(sort.Reverse(sort.StringSlice(keys)))
			for _, k := range keys {
				stack = append(stack, t[k])
			}
		}
	}
	return out
}

// narrow keeps only the in-range values when there are any.
func narrow(all []float64) []float64 {
	var in []float64
	for _, f := range all {
		if f >= MinScore && f <= MaxScore {
			in = append(in, f)
		}
	}
	if len(in) > 0 {
		return in
	}
	if all == nil {
		return []float64{}
	}
	return all
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice. It keeps a
// running mean so values near the float64 limit never sum to Inf.
func Mean(xs []float64) float64 {
	var m float64
	for i, x := range xs {
		k := float64(i + 1)
		m = m - m/k + x/k
	}
	return m
}

// Bucket returns the histogram bucket for a score, rounding half up, and false when
// the rounded value falls outside 0..10.
func Bucket(score float64) (int, bool) {
	b := math.Floor(score + 0.5)
	if math.IsNaN(b) || b < MinScore || b > MaxScore {
		return 0, false
	}
	return int(b), true
}
