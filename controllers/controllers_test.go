package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blogem/lead-api/models"
	"github.com/blogem/lead-api/services"
	"github.com/blogem/lead-api/services/mocks"
)

func newTestServices(t *testing.T) (*services.Services, *mocks.MockLeadRequestService) {
	t.Helper()
	svc := mocks.NewMockLeadRequestService(t)
	return &services.Services{LeadRequest: svc}, svc
}

func TestParseForwardedFor(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		wantSource string
		wantProxy  string
	}{
		{"client and proxy", "203.0.113.9, 10.0.0.7", "203.0.113.9", "10.0.0.7"},
		{"longer chain", "203.0.113.9,10.0.0.7,10.0.0.8", "203.0.113.9", "10.0.0.7"},
		{"client only", "203.0.113.9", "203.0.113.9", ""},
		{"empty", "", "", ""},
		{"blank", "   ", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, proxy := ParseForwardedFor(tt.value)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantProxy, proxy)
		})
	}
}

func TestLambdaController_Handle(t *testing.T) {
	srvs, svc := newTestServices(t)
	lookup := models.Response{StatusCode: http.StatusOK, Body: `{"lead_id": "1234567890"}`}
	query := map[string]string{"lead_id": "1234567890"}

	svc.EXPECT().
		HandleLeadRequest(mock.Anything, &models.LeadRequest{
			RequestID:         "gw-req-1",
			QueryParameters:   query,
			SourceIP:          "203.0.113.9",
			ForwardingProxyIP: "10.0.0.7",
		}).
		Return(lookup)

	resp, err := NewLambdaController(srvs).Handle(context.Background(), events.APIGatewayProxyRequest{
		Headers:               map[string]string{"x-forwarded-for": "203.0.113.9, 10.0.0.7"},
		QueryStringParameters: query,
		RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "gw-req-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, lookup.Body, resp.Body)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
}

func TestLambdaController_Handle_NoQueryString(t *testing.T) {
	srvs, svc := newTestServices(t)

	svc.EXPECT().
		HandleLeadRequest(mock.Anything, mock.MatchedBy(func(req *models.LeadRequest) bool {
			return req.QueryParameters == nil && req.SourceIP == "" && req.ForwardingProxyIP == ""
		})).
		Return(models.UsageResponse())

	resp, err := NewLambdaController(srvs).Handle(context.Background(), events.APIGatewayProxyRequest{})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.UsageResponse().Body, resp.Body)
}

func TestLambdaController_Handle_MultiValueHeaderAndLambdaRequestID(t *testing.T) {
	srvs, svc := newTestServices(t)

	svc.EXPECT().
		HandleLeadRequest(mock.Anything, mock.MatchedBy(func(req *models.LeadRequest) bool {
			return req.RequestID == "lambda-req-1" &&
				req.SourceIP == "198.51.100.4" &&
				req.ForwardingProxyIP == "10.0.0.9"
		})).
		Return(models.UsageResponse())

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "lambda-req-1"})
	_, err := NewLambdaController(srvs).Handle(ctx, events.APIGatewayProxyRequest{
		MultiValueHeaders: map[string][]string{"X-Forwarded-For": {"198.51.100.4", "10.0.0.9"}},
	})

	require.NoError(t, err)
}

func TestLeadController_Lookup(t *testing.T) {
	srvs, svc := newTestServices(t)
	lookup := models.Response{StatusCode: http.StatusOK, Body: `{"lead_id": "1234567890"}`}

	svc.EXPECT().
		HandleLeadRequest(mock.Anything, mock.MatchedBy(func(req *models.LeadRequest) bool {
			return req.QueryParameters["lead_id"] == "1234567890" &&
				req.QueryParameters["agent_id"] == "second" &&
				req.SourceIP == "203.0.113.9" &&
				req.ForwardingProxyIP == "10.0.0.7"
		})).
		Return(lookup)

	r := httptest.NewRequest(http.MethodGet, "/leads?lead_id=1234567890&agent_id=first&agent_id=second", nil)
	r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.7")
	w := httptest.NewRecorder()

	NewLeadController(srvs).Lookup(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, lookup.Body, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
}

func TestLeadController_Lookup_NoQueryString(t *testing.T) {
	srvs, svc := newTestServices(t)

	svc.EXPECT().
		HandleLeadRequest(mock.Anything, mock.MatchedBy(func(req *models.LeadRequest) bool {
			return req.QueryParameters == nil && req.SourceIP == "192.0.2.1" && req.ForwardingProxyIP == ""
		})).
		Return(models.UsageResponse())

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.0.2.1:51234"
	w := httptest.NewRecorder()

	NewLeadController(srvs).Lookup(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.UsageResponse().Body, w.Body.String())
}

func TestClientIP_RealIPFallback(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Real-IP", "198.51.100.23")

	source, proxy := clientIP(r)

	assert.Equal(t, "198.51.100.23", source)
	assert.Empty(t, proxy)
}

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(context.Context) error {
	return p.err
}

func TestHealthController_Check(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthController(fakePinger{}).Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy", "service": "lead-api"}`, w.Body.String())
}

func TestHealthController_Check_DatabaseDown(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthController(fakePinger{err: errors.New("down")}).Check(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
