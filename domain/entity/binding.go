package entity

import (
	"encoding/json"
	"net/http"
)

// jsonDecoding decodes a json body without running struct validation.
type jsonDecoding struct{}

func (jsonDecoding) Name() string {
	return "json"
}

func (jsonDecoding) Bind(req *http.Request, obj interface{}) error {
	return json.NewDecoder(req.Body).Decode(obj)
}

func (jsonDecoding) BindBody(body []byte, obj interface{}) error {
	return json.Unmarshal(body, obj)
}
