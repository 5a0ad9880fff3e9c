package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes v to w as an indented JSON document.
func WriteJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
