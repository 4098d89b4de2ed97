package service

import (
	"context"
	"math/big"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const (
	instrumentationName = "greeter/internal/service"
	greetingsMetric     = "greeter.greetings"

	homeMessage = "Hello, Flask!"
)

// Greeting kinds recorded on the greetings counter.
const (
	kindHome   = "home"
	kindUser   = "user"
	kindUserID = "user_id"
	kindForm   = "form"
)

type GreeterService struct {
	greetings metric.Int64Counter
}

// NewGreeterService builds a greeter that counts greetings on the given meter.
// A nil meter uses the global provider.
func NewGreeterService(meter metric.Meter) *GreeterService {
	if meter == nil {
		meter = otel.Meter(instrumentationName)
	}
	counter, err := meter.Int64Counter(greetingsMetric,
		metric.WithDescription("Number of greetings produced, by kind"),
		metric.WithUnit("{greeting}"))
	if err != nil {
		otel.Handle(err)
		counter = noop.Int64Counter{}
	}
	return &GreeterService{greetings: counter}
}

func (s *GreeterService) Home(ctx context.Context) string {
	s.record(ctx, kindHome)
	return homeMessage
}

// HelloUser echoes the username verbatim. No escaping is applied; the text
// routes respond with text/plain.
func (s *GreeterService) HelloUser(ctx context.Context, username string) string {
	s.record(ctx, kindUser)
	return "Hello, " + username
}

func (s *GreeterService) HelloUserID(ctx context.Context, userID *big.Int) string {
	s.record(ctx, kindUserID)
	return "User ID: " + userID.String()
}

func (s *GreeterService) FormGreeting(ctx context.Context, name string) string {
	s.record(ctx, kindForm)
	return "Hello, " + name + "!"
}

func (s *GreeterService) record(ctx context.Context, kind string) {
	s.greetings.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
