package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawEventRecord is one element of a DONKI category array.
// Fields holds the decoded object and Text the compact JSON exactly as the
// feed ordered it, which is what the text-scan extractors look at.
type RawEventRecord struct {
	Fields map[string]interface{}
	Text   string
}

// ParseRawEventRecord decodes a single JSON object from the feed.
func ParseRawEventRecord(data []byte) (RawEventRecord, error) {
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return RawEventRecord{}, fmt.Errorf("failed to compact raw record: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var fields map[string]interface{}
	if err := dec.Decode(&fields); err != nil {
		return RawEventRecord{}, fmt.Errorf("failed to decode raw record: %w", err)
	}

	return RawEventRecord{Fields: fields, Text: compact.String()}, nil
}

// ParseRawEventArray decodes a DONKI category response. An empty body or a
// JSON null is an empty list; elements that are not objects are skipped.
func ParseRawEventArray(data []byte) ([]RawEventRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []RawEventRecord{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to decode event array: %w", err)
	}

	records := make([]RawEventRecord, 0, len(items))
	for _, item := range items {
		rec, err := ParseRawEventRecord(item)
		if err != nil || rec.Fields == nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// NewRawEventRecord builds a record from already decoded fields.
// Keys are serialized in sorted order since a map carries no order of its own.
func NewRawEventRecord(fields map[string]interface{}) RawEventRecord {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return RawEventRecord{Fields: fields, Text: "{}"}
	}
	return RawEventRecord{Fields: fields, Text: strings.TrimRight(buf.String(), "\n")}
}

// Has reports whether the key is present, even with a null value.
func (r RawEventRecord) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// String returns a non-empty string field.
func (r RawEventRecord) String(key string) (string, bool) {
	v, ok := r.Fields[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, t != ""
	case json.Number:
		return t.String(), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	default:
		return "", false
	}
}

// Number returns a numeric field; numeric strings are accepted too.
func (r RawEventRecord) Number(key string) (float64, bool) {
	return toFloat(r.Fields[key])
}

// Array returns an array field or nil.
func (r RawEventRecord) Array(key string) []interface{} {
	if arr, ok := r.Fields[key].([]interface{}); ok {
		return arr
	}
	return nil
}

// MaxKpSample returns the largest kpIndex in allKpIndex.
func (r RawEventRecord) MaxKpSample() (float64, bool) {
	found := false
	var max float64
	for _, item := range r.Array("allKpIndex") {
		sample, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		kp, ok := toFloat(sample["kpIndex"])
		if !ok {
			continue
		}
		if !found || kp > max {
			max = kp
			found = true
		}
	}
	return max, found
}

// LinkedEventCount is the number of entries in linkedEvents.
func (r RawEventRecord) LinkedEventCount() int {
	return len(r.Array("linkedEvents"))
}

// FirstInstrument returns the displayName of the first instrument.
func (r RawEventRecord) FirstInstrument() (string, bool) {
	instruments := r.Array("instruments")
	if len(instruments) == 0 {
		return "", false
	}
	inst, ok := instruments[0].(map[string]interface{})
	if !ok {
		return "", false
	}
	name, ok := inst["displayName"].(string)
	return name, ok && name != ""
}

// CMEAnalysis holds the measured values of the first cmeAnalyses entry.
type CMEAnalysis struct {
	Speed     float64
	HalfAngle float64
}

// FirstCMEAnalysis returns the first cmeAnalyses entry, if any.
func (r RawEventRecord) FirstCMEAnalysis() (CMEAnalysis, bool) {
	analyses := r.Array("cmeAnalyses")
	if len(analyses) == 0 {
		return CMEAnalysis{}, false
	}
	a, ok := analyses[0].(map[string]interface{})
	if !ok {
		return CMEAnalysis{}, false
	}
	speed, _ := toFloat(a["speed"])
	halfAngle, _ := toFloat(a["halfAngle"])
	return CMEAnalysis{Speed: speed, HalfAngle: halfAngle}, true
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
