package greeting

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Envelope is the part of the invocation event the function reads. API Gateway
// and function URL events both carry the request body under "body".
type Envelope struct {
	Body *string `json:"body"`
}

// RawBody returns the request body as delivered, nil when there is none.
func (e Envelope) RawBody() *string {
	return e.Body
}

// Handler runs one template's pipeline per invocation. It holds no mutable
// state, so the host may call Handle concurrently.
type Handler struct {
	tmpl Template
	log  *zap.Logger
}

func NewHandler(tmpl Template, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{tmpl: tmpl, log: log}
}

// Handle is registered with lambda.Start.
func (h *Handler) Handle(ctx context.Context, env Envelope) (Response, error) {
	log := h.log.With(
		zap.String("request_id", requestID(ctx)),
		zap.String("template", h.tmpl.Name),
	)

	body := env.RawBody()
	fields, ok := h.tmpl.Extract(body)
	if body != nil && !ok {
		log.Debug("body not decodable, using defaults")
	}
	log.Info("received request", zap.String("name", fields.Text(h.tmpl.NameField)))

	res := h.tmpl.Render(fields)
	log.Info("generated greeting", zap.String("greeting", res.Text))

	resp, err := Build(h.tmpl, fields, res)
	if err != nil {
		return Response{}, fmt.Errorf("build response: %w", err)
	}
	return resp, nil
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.NewString()
}
