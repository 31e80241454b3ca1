package recommend

import (
	"encoding/json"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies at 1MB.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON object into v. A missing, empty or malformed body
// is treated as {} and fields of the wrong type stay empty, so the handler
// reports the missing field instead of a parse error.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) {
	if r.Body == nil {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || len(body) == 0 {
		return
	}
	_ = json.Unmarshal(body, v)
}
