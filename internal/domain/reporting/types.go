package reporting

import (
	"encoding/json"
	"fmt"
)

// Relation is an Odoo many2one value. The wire format is either the
// two-element array [id, "label"] or the literal false when the field is
// unset. Marshalling reproduces the upstream shape so the browser client
// sees records exactly as Odoo delivers them.
type Relation struct {
	ID    int64
	Label string
}

// Set reports whether the relation points at a record.
func (r Relation) Set() bool {
	return r.ID != 0
}

// UnmarshalJSON accepts [id, label] or false.
func (r *Relation) UnmarshalJSON(data []byte) error {
	if string(data) == "false" || string(data) == "null" {
		*r = Relation{}
		return nil
	}
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("relation: expected [id, label] or false: %w", err)
	}
	if len(pair) == 0 {
		*r = Relation{}
		return nil
	}
	if err := json.Unmarshal(pair[0], &r.ID); err != nil {
		return fmt.Errorf("relation: invalid id: %w", err)
	}
	if len(pair) > 1 {
		if err := json.Unmarshal(pair[1], &r.Label); err != nil {
			return fmt.Errorf("relation: invalid label: %w", err)
		}
	}
	return nil
}

// MarshalJSON emits [id, label], or false when unset.
func (r Relation) MarshalJSON() ([]byte, error) {
	if !r.Set() {
		return []byte("false"), nil
	}
	return json.Marshal([]any{r.ID, r.Label})
}

// NullString is a string field that Odoo serializes as false when empty.
type NullString string

// UnmarshalJSON accepts a string or the literal false.
func (s *NullString) UnmarshalJSON(data []byte) error {
	if string(data) == "false" || string(data) == "null" {
		*s = ""
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = NullString(v)
	return nil
}

// MarshalJSON emits the string, or false when empty, matching upstream.
func (s NullString) MarshalJSON() ([]byte, error) {
	if s == "" {
		return []byte("false"), nil
	}
	return json.Marshal(string(s))
}

// String returns the plain string value.
func (s NullString) String() string {
	return string(s)
}
