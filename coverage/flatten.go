package coverage

import (
	"encoding/json"
	"os"

	"github.com/carbocation/pfx"
)

// readFlat decodes a coverage JSON document and flattens nested objects into
// a single-level map with dot-joined keys, so "picard": {"q30": 80} becomes
// "picard.q30".
func readFlat(covFile string) (map[string]interface{}, error) {
	f, err := os.Open(covFile)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	doc := make(map[string]interface{})
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, pfx.Err(err)
	}

	flat := make(map[string]interface{})
	flatten("", doc, flat)
	return flat, nil
}

func flatten(prefix string, doc map[string]interface{}, out map[string]interface{}) {
	for key, value := range doc {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]interface{}); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = value
	}
}
