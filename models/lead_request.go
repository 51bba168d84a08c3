package models

import (
	"fmt"
	"sort"
	"strings"
)

// Query parameter names accepted by the lead endpoint
const (
	ParamUsername   = "username"
	ParamPassword   = "password"
	ParamLeadID     = "lead_id"
	ParamSupplierID = "supplier_id"
	ParamAgentID    = "agent_id"
)

// Failure reasons recorded in api_records_table.extra_information
const (
	ReasonNoQueryParameters = "Request did not contain ANY query parameters (all were missing)"
	ReasonMissingParameters = "Request did not contain the following query parameters %s"
	ReasonEmptyParameters   = "Request had the following empty query parameters %s"
	ReasonWrongCredentials  = "Wrong username and/or password"
	ReasonWrongLeadID       = "Wrong lead_id %s"
)

// requiredParameters is the order in which missing parameters are reported
var requiredParameters = []string{
	ParamUsername,
	ParamPassword,
	ParamLeadID,
	ParamSupplierID,
	ParamAgentID,
}

// nonEmptyParameters is the order in which empty parameters are reported
var nonEmptyParameters = []string{
	ParamAgentID,
	ParamSupplierID,
	ParamLeadID,
	ParamUsername,
	ParamPassword,
}

// LeadRequest represents a single inbound call to the lead endpoint.
// A nil QueryParameters map means the caller sent no query string at all.
type LeadRequest struct {
	RequestID         string
	QueryParameters   map[string]string
	SourceIP          string
	ForwardingProxyIP string
}

// HasQueryParameters returns true if a query-parameter mapping was supplied
func (r *LeadRequest) HasQueryParameters() bool {
	return r.QueryParameters != nil
}

// MissingParameters lists the required parameter names absent from the request
func (r *LeadRequest) MissingParameters() []string {
	var missing []string
	for _, name := range requiredParameters {
		if _, ok := r.QueryParameters[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// EmptyParameters lists the parameter names whose value is blank after trimming
func (r *LeadRequest) EmptyParameters() []string {
	var empty []string
	for _, name := range nonEmptyParameters {
		if IsEmptyInput(r.QueryParameters[name]) {
			empty = append(empty, name)
		}
	}
	return empty
}

// Param returns a query parameter value, or "" when absent
func (r *LeadRequest) Param(name string) string {
	return r.QueryParameters[name]
}

// ParameterNames returns the supplied parameter keys, sorted. Values are never
// included so the result is safe to log.
func (r *LeadRequest) ParameterNames() []string {
	names := make([]string, 0, len(r.QueryParameters))
	for name := range r.QueryParameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsEmptyInput checks if a string is empty or whitespace only
func IsEmptyInput(value string) bool {
	return strings.TrimSpace(value) == ""
}

// FormatNameList renders parameter names as ['a', 'b'], the format stored in
// audit records
func FormatNameList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = "'" + name + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// MissingParametersReason builds the failure reason for absent parameters
func MissingParametersReason(missing []string) string {
	return fmt.Sprintf(ReasonMissingParameters, FormatNameList(missing))
}

// EmptyParametersReason builds the failure reason for blank parameters
func EmptyParametersReason(empty []string) string {
	return fmt.Sprintf(ReasonEmptyParameters, FormatNameList(empty))
}

// WrongLeadIDReason builds the failure reason for an unsuccessful lookup
func WrongLeadIDReason(lookupBody string) string {
	return fmt.Sprintf(ReasonWrongLeadID, lookupBody)
}
