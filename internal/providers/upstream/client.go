// Package upstream builds the HTTP clients the scrapers share and turns
// upstream responses into documents or decoded JSON.
package upstream

import (
	"fmt"
	"net/http"
	"time"

	"dario.cat/mergo"
	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	defaultTracerName = "nhl-cap-service/upstream"
)

// Options configures a scraper client. Zero fields take package defaults.
type Options struct {
	BaseURL          string
	Timeout          time.Duration
	UserAgent        string
	CloudflareBypass bool
	TracerName       string
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
	// HTTPClient overrides the underlying client, mainly for tests.
	HTTPClient *http.Client
}

func defaults() Options {
	return Options{
		Timeout:    defaultTimeout,
		UserAgent:  defaultUserAgent,
		TracerName: defaultTracerName,
	}
}

// NewClient returns a resty client with the user agent, timeout and tracing
// hooks applied. Cloudflare bypass wraps the transport when enabled.
func NewClient(opts Options) *resty.Client {
	if err := mergo.Merge(&opts, defaults()); err != nil {
		panic(fmt.Sprintf("upstream: merge defaults: %v", err))
	}

	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	var client *resty.Client
	if opts.HTTPClient != nil {
		client = resty.NewWithClient(opts.HTTPClient)
	} else {
		client = resty.New()
	}
	if opts.CloudflareBypass {
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}

	client.SetBaseURL(opts.BaseURL)
	client.SetTimeout(opts.Timeout)
	client.SetHeader("user-agent", opts.UserAgent)

	instrument(client, opts.TracerProvider.Tracer(opts.TracerName))
	return client
}

func instrument(client *resty.Client, tracer trace.Tracer) {
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		ctx, _ := tracer.Start(req.Context(), "http "+req.Method, trace.WithSpanKind(trace.SpanKindClient))
		req.SetContext(ctx)
		return nil
	})
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		span := trace.SpanFromContext(res.Request.Context())
		defer span.End()

		span.SetAttributes(
			semconv.HTTPResponseStatusCode(res.StatusCode()),
			semconv.URLFull(res.Request.URL),
			attribute.Int("http.response.body.size", len(res.Body())),
		)
		if res.IsError() {
			span.SetStatus(codes.Error, res.Status())
		}
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		span := trace.SpanFromContext(req.Context())
		defer span.End()

		span.SetAttributes(semconv.URLFull(req.URL))
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	})
}
