package interpreter

import "encoding/json"

// jsonMarshal wraps encoding/json.Marshal; Value.JSON() projections only
// ever contain JSON-safe Go types (or *orderedJSON, which implements
// json.Marshaler itself), so this never needs custom type switches.
func jsonMarshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func jsonMarshalString(s string) (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ToJSON renders a Value's JSON projection (§6.4) as compact JSON text.
func ToJSON(v Value) (string, error) {
	b, err := jsonMarshal(v.JSON())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

var _ json.Marshaler = (*orderedJSON)(nil)
