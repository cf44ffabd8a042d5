package resp

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error  string `json:"error"`
	Prompt string `json:"prompt,omitempty"`
}

func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError пишет ошибку в JSON. prompt - подсказка клиенту, может быть пустой
func WriteError(w http.ResponseWriter, status int, msg, prompt string) {
	WriteJSONResponse(w, status, errorResponse{Error: msg, Prompt: prompt})
}
