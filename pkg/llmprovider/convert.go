package llmprovider

import "encoding/json"

// responseAsMap turns a tool result into the JSON object shape providers
// expect. Non-object results are wrapped under "output".
func responseAsMap(v interface{}) map[string]interface{} {
	if m, ok := v.(map[string]interface{}); ok {
		return m
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{"error": err.Error()}
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil || m == nil {
		return map[string]interface{}{"output": v}
	}
	return m
}
