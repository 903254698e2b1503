package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"
)

// respond writes v as JSON, or as YAML when the client asks for it with
// ?format=yaml or an Accept header naming yaml.
func respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if wantsYAML(r) {
		data, err := yaml.Marshal(v)
		if err != nil {
			http.Error(w, "could not encode yaml", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
		w.WriteHeader(status)
		w.Write(data)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respond(w, r, status, map[string]string{"error": msg})
}

func wantsYAML(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.EqualFold(f, "yaml")
	}
	return strings.Contains(r.Header.Get("Accept"), "yaml")
}

func encodeJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
