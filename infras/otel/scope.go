package otel

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"crewlink/shared/failure"
)

// Scope wraps the span opened for one client operation. Every operation
// defers TraceIfError with its named error return, so the distinction
// between local form rejections and real failures lives here rather than
// at each call site.
type Scope interface {
	End()
	TraceError(err error)
	TraceIfError(err error)
	AddEvent(name string)
	SetAttribute(key string, value any)
	SetAttributes(attributes map[string]any)
}

type scopeImpl struct {
	span oteltrace.Span
}

func (s *scopeImpl) End() {
	s.span.End()
}

func (s *scopeImpl) TraceError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// TraceIfError records err on the span unless it is nil or a field-level
// validation error. Validation errors never left the process, so the span
// gets an event instead of an error status.
func (s *scopeImpl) TraceIfError(err error) {
	if err == nil {
		return
	}

	if failure.IsValidation(err) {
		s.span.AddEvent("validation rejected: " + err.Error())

		return
	}

	s.TraceError(err)
}

func (s *scopeImpl) AddEvent(name string) {
	s.span.AddEvent(name)
}

// SetAttribute types the values this client records, HTTP status codes and
// cache keys among them; anything unrecognized is stringified.
func (s *scopeImpl) SetAttribute(key string, value any) {
	switch val := value.(type) {
	case string:
		s.span.SetAttributes(attribute.String(key, val))
	case int:
		s.span.SetAttributes(attribute.Int(key, val))
	case int64:
		s.span.SetAttributes(attribute.Int64(key, val))
	case bool:
		s.span.SetAttributes(attribute.Bool(key, val))
	case []string:
		s.span.SetAttributes(attribute.StringSlice(key, val))
	default:
		s.span.SetAttributes(attribute.String(key, fmt.Sprintf("%v", val)))
	}
}

func (s *scopeImpl) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func NewScope(span oteltrace.Span) Scope {
	return &scopeImpl{
		span: span,
	}
}
