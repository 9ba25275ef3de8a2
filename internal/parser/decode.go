package parser

import (
	"encoding/json"
	"fmt"

	"instagram_audit/internal/utils"
)

// decodeEntryList decodes a member's JSON in tagged-union fashion:
// first as a bare entry array, then as an object wrapping the array
// under each candidate property in catalogue order. Anything else fails
// closed as an unrecognized shape rather than silently yielding an
// empty list.
func decodeEntryList(raw []byte, propCandidates []string) ([]listEntry, error) {
	var direct []listEntry
	if unmarshalErr := json.Unmarshal(raw, &direct); unmarshalErr == nil {
		return direct, nil
	}

	var wrapper map[string]json.RawMessage
	if unmarshalErr := json.Unmarshal(raw, &wrapper); unmarshalErr != nil {
		return nil, fmt.Errorf("parse entry list: %w", unmarshalErr)
	}
	for _, propName := range propCandidates {
		rawList, present := wrapper[propName]
		if !present {
			continue
		}
		var entries []listEntry
		if unmarshalErr := json.Unmarshal(rawList, &entries); unmarshalErr != nil {
			return nil, fmt.Errorf("parse %q entry list: %w", propName, unmarshalErr)
		}
		return entries, nil
	}
	return nil, fmt.Errorf("unrecognized entry list shape: not an array and none of [%s] present", utils.StringsJoinComma(propCandidates))
}
