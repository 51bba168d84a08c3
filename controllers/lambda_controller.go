package controllers

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/blogem/lead-api/models"
	"github.com/blogem/lead-api/services"
)

// LambdaController handles API Gateway proxy events
type LambdaController struct {
	services *services.Services
}

// NewLambdaController creates a new Lambda controller
func NewLambdaController(services *services.Services) *LambdaController {
	return &LambdaController{
		services: services,
	}
}

// Handle is the Lambda entry point. The error is always nil: every outcome,
// including a failed lookup, is reported in the response body.
func (c *LambdaController) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	sourceIP, proxyIP := ParseForwardedFor(eventHeader(event, HeaderForwardedFor))

	req := &models.LeadRequest{
		RequestID:         eventRequestID(ctx, event),
		QueryParameters:   event.QueryStringParameters,
		SourceIP:          sourceIP,
		ForwardingProxyIP: proxyIP,
	}

	response := c.services.LeadRequest.HandleLeadRequest(ctx, req)

	return events.APIGatewayProxyResponse{
		StatusCode: response.StatusCode,
		Headers:    map[string]string{"Content-Type": contentTypeJSON},
		Body:       response.Body,
	}, nil
}

// eventHeader looks a header up case-insensitively, falling back to the
// multi-value headers
func eventHeader(event events.APIGatewayProxyRequest, name string) string {
	for key, value := range event.Headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	for key, values := range event.MultiValueHeaders {
		if strings.EqualFold(key, name) {
			return strings.Join(values, ",")
		}
	}
	return ""
}

// eventRequestID prefers the API Gateway request id over the Lambda one
func eventRequestID(ctx context.Context, event events.APIGatewayProxyRequest) string {
	if event.RequestContext.RequestID != "" {
		return event.RequestContext.RequestID
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}

