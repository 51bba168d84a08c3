package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/blogem/lead-api/metrics"
	"github.com/blogem/lead-api/models"
	"github.com/blogem/lead-api/repositories"
)

// LeadRequestService interface defines the lead endpoint business logic
type LeadRequestService interface {
	HandleLeadRequest(ctx context.Context, req *models.LeadRequest) models.Response
}

// leadRequestService implements LeadRequestService interface
type leadRequestService struct {
	leadRepo    repositories.LeadRepository
	recordRepo  repositories.APIRecordRepository
	credentials models.Credentials
	logger      zerolog.Logger
}

// NewLeadRequestService creates a new lead request service that authenticates
// callers against the given credential pair
func NewLeadRequestService(
	leadRepo repositories.LeadRepository,
	recordRepo repositories.APIRecordRepository,
	credentials models.Credentials,
	logger zerolog.Logger,
) LeadRequestService {
	return &leadRequestService{
		leadRepo:    leadRepo,
		recordRepo:  recordRepo,
		credentials: credentials,
		logger:      logger,
	}
}

// HandleLeadRequest validates the request, looks up the lead and records the
// outcome. Every call writes exactly one API request record and returns a
// response; failures answer with the usage instructions.
func (s *leadRequestService) HandleLeadRequest(ctx context.Context, req *models.LeadRequest) models.Response {
	log := s.logger.With().
		Str("request_id", req.RequestID).
		Str("source_ip", req.SourceIP).
		Str("internal_aws_ip", req.ForwardingProxyIP).
		Logger()

	record := &models.APIRequestRecord{
		SourceIP:      req.SourceIP,
		InternalAWSIP: req.ForwardingProxyIP,
	}

	response, stage := s.process(ctx, req, record)

	s.writeRecord(ctx, log, record)

	metrics.LeadRequestsTotal.WithLabelValues(string(record.Result), stage).Inc()

	event := log.Info().
		Str("result", string(record.Result)).
		Str("stage", stage).
		Strs("parameters", req.ParameterNames())
	if record.ExtraInformation != nil {
		event = event.Str("reason", *record.ExtraInformation)
	}
	event.Msg("Lead request handled")

	return response
}

// process runs the ordered validation pipeline, filling in record as it goes.
// It returns the response for the caller and the stage that decided it.
func (s *leadRequestService) process(ctx context.Context, req *models.LeadRequest, record *models.APIRequestRecord) (models.Response, string) {
	if !req.HasQueryParameters() {
		return reject(record, models.ReasonNoQueryParameters), metrics.StageParameters
	}

	if missing := req.MissingParameters(); len(missing) > 0 {
		return reject(record, models.MissingParametersReason(missing)), metrics.StageParameters
	}

	// From here on the identifiers are part of the record
	record.SetIdentifiers(
		req.Param(models.ParamAgentID),
		req.Param(models.ParamSupplierID),
		req.Param(models.ParamLeadID),
	)

	if empty := req.EmptyParameters(); len(empty) > 0 {
		return reject(record, models.EmptyParametersReason(empty)), metrics.StageEmptyParameters
	}

	if !s.credentials.Matches(req.Param(models.ParamUsername), req.Param(models.ParamPassword)) {
		return reject(record, models.ReasonWrongCredentials), metrics.StageAuthentication
	}

	lookup := s.leadRepo.ReadLeadFromID(ctx, req.Param(models.ParamLeadID))
	if !lookup.OK() {
		return reject(record, models.WrongLeadIDReason(lookup.Body)), metrics.StageLookup
	}

	record.MarkSuccessful()
	return lookup, metrics.StageLookup
}

// writeRecord stores the request record. A failed write is logged and
// counted but never changes the response.
func (s *leadRequestService) writeRecord(ctx context.Context, log zerolog.Logger, record *models.APIRequestRecord) {
	id, err := s.recordRepo.CreateUpdateAPIRequestSummary(ctx, record)
	if err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		log.Error().Err(err).Str("result", string(record.Result)).Msg("Failed to write API request record")
		return
	}

	log.Debug().Int64("record_id", id).Msg("API request record written")
}

// reject marks the record as failed and returns the usage instructions
func reject(record *models.APIRequestRecord, reason string) models.Response {
	record.MarkFailure(reason)
	return models.UsageResponse()
}
