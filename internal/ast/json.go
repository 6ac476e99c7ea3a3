package ast

import (
	"strconv"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DumpJSON encodes a Dump tree as a JSON document, built incrementally
// with sjson's path-set API the same way internal/errors.ToJSON does —
// the teacher's builtins reach for tidwall/sjson whenever a JSON value
// is assembled piece by piece rather than marshaled from one struct.
func DumpJSON(nodes []any) (string, error) {
	doc := "[]"
	for i, n := range nodes {
		encoded, err := encodeJSON(n)
		if err != nil {
			return "", err
		}
		doc, err = sjson.SetRaw(doc, strconv.Itoa(i), encoded)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

func encodeJSON(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "null", nil
	case map[string]any:
		doc := "{}"
		for k, child := range t {
			encoded, err := encodeJSON(child)
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, k, encoded)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	case []any:
		doc := "[]"
		for i, child := range t {
			encoded, err := encodeJSON(child)
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, strconv.Itoa(i), encoded)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	default:
		doc, err := sjson.Set("{}", "v", t)
		if err != nil {
			return "", err
		}
		return gjson.Get(doc, "v").Raw, nil
	}
}
