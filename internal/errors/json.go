package errors

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ToJSON encodes diagnostics as a JSON array of {kind, line, message}
// objects, for the CLI's --json diagnostics mode. It's built with sjson's
// path-set API rather than encoding/json's struct marshaling, the way the
// teacher's builtins reach for tidwall/sjson when producing JSON
// incrementally rather than from a single fully-populated struct.
func ToJSON(diags []*Diagnostic) (string, error) {
	doc := "[]"
	var err error
	for i, d := range diags {
		prefix := strconv.Itoa(i)
		doc, err = sjson.Set(doc, prefix+".kind", string(d.Kind))
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+".line", d.Line)
		if err != nil {
			return "", err
		}
		doc, err = sjson.Set(doc, prefix+".message", d.Message)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// FromJSON decodes a document produced by ToJSON back into Diagnostics,
// using gjson's path queries. Primarily exercised by tests that want to
// assert on individual fields of a --json run without round-tripping
// through encoding/json.
func FromJSON(doc string) []*Diagnostic {
	results := gjson.Parse(doc).Array()
	diags := make([]*Diagnostic, 0, len(results))
	for _, r := range results {
		diags = append(diags, &Diagnostic{
			Kind:    Kind(r.Get("kind").String()),
			Line:    int(r.Get("line").Int()),
			Message: r.Get("message").String(),
		})
	}
	return diags
}
