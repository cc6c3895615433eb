package handlers

// Argument extraction helpers. MCP tool arguments arrive as generic JSON
// values; list parameters decode as []any and must be narrowed defensively.

// stringList reads an optional string-array argument. Missing keys, wrong
// types, and non-string elements are all treated as absent rather than
// failing the call.
func stringList(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// stringField reads an optional string member from a decoded JSON object.
func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
