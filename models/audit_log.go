package models

import "time"

// RequestResult is the outcome stored for every API invocation
type RequestResult string

const (
	ResultSuccessful RequestResult = "successful"
	ResultFailure    RequestResult = "failure"
)

// APIRequestRecord represents a single row of api_records_table.
// Rows are append-only: one per invocation, never updated.
type APIRequestRecord struct {
	ID               int64         `json:"id" db:"id"`
	RequestDateTime  time.Time     `json:"request_date_time" db:"request_date_time"`
	LeadID           *string       `json:"lead_id" db:"lead_id"`
	AgentID          *string       `json:"agent_id" db:"agent_id"`
	SupplierID       *string       `json:"supplier_id" db:"supplier_id"`
	Result           RequestResult `json:"result" db:"result"`
	ExtraInformation *string       `json:"extra_information" db:"extra_information"`
	SourceIP         string        `json:"source_ip" db:"source_ip"`
	InternalAWSIP    string        `json:"internal_aws_ip" db:"internal_aws_ip"`
}

// MarkSuccessful sets the record outcome to successful with no extra information
func (r *APIRequestRecord) MarkSuccessful() {
	r.Result = ResultSuccessful
	r.ExtraInformation = nil
}

// MarkFailure sets the record outcome to failure with the given reason
func (r *APIRequestRecord) MarkFailure(reason string) {
	r.Result = ResultFailure
	r.ExtraInformation = &reason
}

// SetIdentifiers copies the extracted ids into the record
func (r *APIRequestRecord) SetIdentifiers(agentID, supplierID, leadID string) {
	r.AgentID = &agentID
	r.SupplierID = &supplierID
	r.LeadID = &leadID
}
