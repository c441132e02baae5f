package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
)

// Count is one label→count pair of an upstream mapping.
type Count struct {
	Key   string
	Value int
}

// Counts is a label→count mapping that keeps the key order the upstream sent.
// Tie-breaking and bucket ordering downstream depend on that order, which a
// plain map would lose.
type Counts []Count

// Get returns the count stored under key.
func (c Counts) Get(key string) (int, bool) {
	for _, e := range c {
		if e.Key == key {
			return e.Value, true
		}
	}
	return 0, false
}

// Total returns the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, e := range c {
		total += e.Value
	}
	return total
}

// UnmarshalJSON decodes a JSON object, preserving member order. A repeated key
// keeps its first position and its last value.
func (c *Counts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("counts: %w", err)
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("counts: expected object, got %v", tok)
	}

	out := Counts{}
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("counts: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("counts: expected key, got %v", tok)
		}

		var v float64
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("counts: value for %q: %w", key, err)
		}
		r := math.Round(v)
		if r < float64(math.MinInt) || r >= -float64(math.MinInt) {
			return fmt.Errorf("counts: value for %q out of range: %v", key, v)
		}
		value := int(r)

		if i, dup := index[key]; dup {
			out[i].Value = value
			continue
		}
		index[key] = len(out)
		out = append(out, Count{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("counts: %w", err)
	}

	*c = out
	return nil
}

// MarshalJSON encodes the counts as a JSON object in stored order.
func (c Counts) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", e.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
