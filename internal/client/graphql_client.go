package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/machinebox/graphql"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/lablabs/storefront-client/internal/limiter"
	"github.com/lablabs/storefront-client/internal/models"
	"github.com/lablabs/storefront-client/internal/query"
)

// Transport executes a query and decodes the response data into out.
type Transport interface {
	Execute(ctx context.Context, q *query.Query, out interface{}) error
}

// Options configures a transport.
type Options struct {
	URL     string
	Headers map[string]string
	Limiter *rate.Limiter
	Logger  logrus.FieldLogger
}

// Factory constructs a Transport from Options.
type Factory func(Options) (Transport, error)

// TransportError is a network or HTTP level failure.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport: status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GraphQLError is a well-formed response carrying an errors array.
type GraphQLError struct {
	Errors []models.GraphQLErrorEntry
}

func (e *GraphQLError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "graphql: unknown error"
	case 1:
		return "graphql: " + e.Errors[0].Message
	default:
		return fmt.Sprintf("graphql: %s (and %d more errors)", e.Errors[0].Message, len(e.Errors)-1)
	}
}

// GraphQLClient is the default Transport, built on machinebox/graphql.
type GraphQLClient struct {
	url     string
	headers map[string]string
	limiter *rate.Limiter
	logger  logrus.FieldLogger
	client  *graphql.Client
}

// NewGraphQLClient creates a GraphQLClient posting JSON to opts.URL with
// opts.Headers set on every request.
func NewGraphQLClient(opts Options) (*GraphQLClient, error) {
	if opts.URL == "" {
		return nil, errors.New("client: url is required")
	}
	headers := make(map[string]string, len(opts.Headers))
	for k, v := range opts.Headers {
		headers[k] = v
	}
	logger := opts.Logger
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}

	httpClient := &http.Client{Transport: &headerTransport{headers: headers}}
	gql := graphql.NewClient(opts.URL, graphql.WithHTTPClient(httpClient))
	gql.Log = func(s string) { logger.Debug(s) }

	return &GraphQLClient{
		url:     opts.URL,
		headers: headers,
		limiter: opts.Limiter,
		logger:  logger,
		client:  gql,
	}, nil
}

// DefaultFactory is the Factory producing a GraphQLClient.
func DefaultFactory(opts Options) (Transport, error) {
	return NewGraphQLClient(opts)
}

// URL returns the endpoint the client posts to.
func (g *GraphQLClient) URL() string { return g.url }

// Headers returns a copy of the static request headers.
func (g *GraphQLClient) Headers() map[string]string {
	headers := make(map[string]string, len(g.headers))
	for k, v := range g.headers {
		headers[k] = v
	}
	return headers
}

// Execute runs q and populates out with the response data.
func (g *GraphQLClient) Execute(ctx context.Context, q *query.Query, out interface{}) error {
	if err := limiter.Wait(ctx, g.limiter); err != nil {
		return &TransportError{Err: fmt.Errorf("rate limit wait failed: %w", err)}
	}

	req := graphql.NewRequest(q.String())
	for name, value := range q.VariableValues() {
		req.Var(name, value)
	}

	rec := &recorder{}
	err := g.client.Run(withRecorder(ctx, rec), req, out)
	if gqlErrs := rec.graphQLErrors(); len(gqlErrs) > 0 {
		return &GraphQLError{Errors: gqlErrs}
	}
	if err != nil {
		return &TransportError{StatusCode: rec.status, Err: err}
	}
	if rec.status != 0 && (rec.status < 200 || rec.status > 299) {
		return &TransportError{StatusCode: rec.status, Err: fmt.Errorf("unexpected status %s", http.StatusText(rec.status))}
	}
	return nil
}

// headerTransport sets the static headers on every request and tees the
// response body into the recorder carried by the request context.
type headerTransport struct {
	headers map[string]string
	// base defaults to http.DefaultTransport, resolved per request.
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	for k, v := range t.headers {
		r.Header.Set(k, v)
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	resp, err := base.RoundTrip(r)
	if err != nil {
		return nil, err
	}

	if rec, ok := req.Context().Value(recorderKey{}).(*recorder); ok {
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			return nil, readErr
		}
		rec.status = resp.StatusCode
		rec.body = body
		resp.Body = io.NopCloser(bytes.NewReader(body))
	}
	return resp, nil
}

type recorderKey struct{}

// recorder keeps the raw response of a single Execute call.
type recorder struct {
	status int
	body   []byte
}

func withRecorder(ctx context.Context, rec *recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, rec)
}

func (r *recorder) graphQLErrors() []models.GraphQLErrorEntry {
	if len(r.body) == 0 {
		return nil
	}
	var envelope struct {
		Errors []models.GraphQLErrorEntry `json:"errors"`
	}
	if err := json.Unmarshal(r.body, &envelope); err != nil {
		return nil
	}
	return envelope.Errors
}
