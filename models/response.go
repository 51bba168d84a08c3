package models

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Usage text returned whenever a request fails validation
const (
	UsageInstructionsText = "Please call this endpoint as the <usage> indicates..."
	UsageText             = "?username=username&password=password&supplier_id=supplier_id&agent_id=agent_id&lead_id=lead_id"
)

// Lookup messages
const (
	NoMatchMessage = "There was not a match for the query."
	NoMatchDetails = "Server unable to get request due to wrong query (lead_id)."
	ReadErrMessage = "Error reading data from MySQL table"
)

// Response is the status code and JSON body returned to the caller.
// StatusCode here is the in-body status of a lookup; the transport layer
// always answers 200 for anything built from a Response.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// OK returns true for a successful lookup response
func (r Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// UsageInstructions is the body returned when a request is rejected
type UsageInstructions struct {
	Instructions string `json:"instructions"`
	Usage        string `json:"usage"`
}

// LookupMessage is the body of a lookup that produced no row
type LookupMessage struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// EncodeJSON encodes v indented by two spaces without HTML escaping
func EncodeJSON(v interface{}) (string, error) {
	data, err := marshalJSON(v)
	if err != nil {
		return "", err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return "", err
	}
	return out.String(), nil
}

// marshalJSON encodes v compactly without HTML escaping
func marshalJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UsageResponse builds the fixed response returned for rejected requests
func UsageResponse() Response {
	body, _ := EncodeJSON(UsageInstructions{
		Instructions: UsageInstructionsText,
		Usage:        UsageText,
	})
	return Response{StatusCode: http.StatusOK, Body: body}
}

// NotFoundResponse builds the lookup response for an unknown lead_id
func NotFoundResponse() Response {
	body, _ := EncodeJSON(LookupMessage{
		Message: NoMatchMessage,
		Details: NoMatchDetails,
	})
	return Response{StatusCode: http.StatusBadRequest, Body: body}
}

// ReadErrorResponse builds the lookup response for a data-access fault
func ReadErrorResponse(err error) Response {
	body, _ := EncodeJSON(LookupMessage{
		Message: ReadErrMessage,
		Details: err.Error(),
	})
	return Response{StatusCode: http.StatusBadRequest, Body: body}
}
