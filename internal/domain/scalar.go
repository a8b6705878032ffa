package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Text is a string field that also accepts any other JSON value. Stored
// documents and admin payloads are not schema checked, so a number or an
// object where a string is expected is kept as its compact JSON text
// instead of failing the whole decode. null reads as "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || string(b) == "null":
		*t = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		var buf bytes.Buffer
		if err := json.Compact(&buf, b); err != nil {
			*t = Text(b)
			return nil
		}
		*t = Text(buf.String())
	}
	return nil
}

// Order is a lesson position. Form posts send it as a numeric string, so
// both "3" and 3 read as 3. Anything that is not a number reads as 0,
// which counts as absent.
type Order int

func (o *Order) UnmarshalJSON(b []byte) error {
	*o = 0
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}
	switch x := v.(type) {
	case float64:
		*o = Order(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			*o = Order(f)
		}
	}
	return nil
}

// Falsy reports whether raw is a JSON value a form or script would treat as
// "not given": absent, null, false, 0 or "".
func Falsy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return true
	}
	return false
}
