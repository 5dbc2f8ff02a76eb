package api

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

// members unwraps a collection response. API Platform serves either a bare
// JSON array, a JSON-LD envelope under "hydra:member", or (newer versions)
// plain "member".
func members(raw json.RawMessage) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, nil
	}

	var envelope struct {
		HydraMember []json.RawMessage `json:"hydra:member"`
		Member      []json.RawMessage `json:"member"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}
	if envelope.HydraMember != nil {
		return envelope.HydraMember, nil
	}
	if envelope.Member != nil {
		return envelope.Member, nil
	}
	return []json.RawMessage{}, nil
}

var iriTailRe = regexp.MustCompile(`/(\d+)$`)

// RefID extracts a numeric entity id from any of the reference shapes the
// platform emits: a number, an IRI string like "/api/exams/7", or an
// embedded object carrying "id" or "@id". Returns 0 when no id can be
// recovered.
func RefID(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return idFromIRI(s)
	}

	var obj struct {
		ID  json.RawMessage `json:"id"`
		Ref string          `json:"@id"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0
	}
	if len(obj.ID) > 0 {
		if err := json.Unmarshal(obj.ID, &n); err == nil {
			return n
		}
		if err := json.Unmarshal(obj.ID, &s); err == nil {
			if v, err := strconv.Atoi(s); err == nil {
				return v
			}
		}
	}
	return idFromIRI(obj.Ref)
}

func idFromIRI(iri string) int {
	m := iriTailRe.FindStringSubmatch(iri)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
