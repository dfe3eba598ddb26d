package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/patanova/groomer-api/internal/domains/scheduling/application/types"
	"github.com/patanova/groomer-api/internal/domains/scheduling/domain"
	"github.com/patanova/groomer-api/internal/domains/scheduling/ports"
)

const tracerName = "github.com/patanova/groomer-api/internal/domains/scheduling/adapters/observability/service"

// Service decorates the scheduling port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core scheduling service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  defaultLogger(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}
	return s
}

// Book records a new appointment with instrumentation.
func (s *Service) Book(ctx context.Context, input types.BookInput) (*domain.Appointment, error) {
	ctx, span := s.startSpan(ctx, "Service.Book",
		attribute.String("appointment.pet_id", input.PetID),
		attribute.String("appointment.date", input.Date),
		attribute.String("appointment.slot", input.TimeRange),
	)
	defer span.End()

	s.logInfo(ctx, "booking appointment", slog.String("pet.id", input.PetID), slog.String("date", input.Date), slog.String("slot", input.TimeRange))
	result, err := s.inner.Book(ctx, input)
	if err != nil {
		if errors.Is(err, ports.ErrSlotConflict) {
			s.metrics.recordConflict(ctx)
		}
		return nil, s.handleError(ctx, span, err, "failed to book appointment", slog.String("pet.id", input.PetID))
	}
	if result != nil {
		s.metrics.recordBooked(ctx, result.Status)
		s.logInfo(ctx, "appointment booked", slog.String("appointment.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// Reschedule moves an appointment to a new slot.
func (s *Service) Reschedule(ctx context.Context, input types.RescheduleInput) (*domain.Appointment, error) {
	ctx, span := s.startSpan(ctx, "Service.Reschedule",
		attribute.String("appointment.id", input.ID),
		attribute.String("appointment.date", input.Date),
		attribute.String("appointment.slot", input.TimeRange),
	)
	defer span.End()

	s.logInfo(ctx, "rescheduling appointment", slog.String("appointment.id", input.ID))
	result, err := s.inner.Reschedule(ctx, input)
	if err != nil {
		if errors.Is(err, ports.ErrSlotConflict) {
			s.metrics.recordConflict(ctx)
		}
		return nil, s.handleError(ctx, span, err, "failed to reschedule appointment", slog.String("appointment.id", input.ID))
	}
	if result != nil {
		s.metrics.recordRescheduled(ctx)
		s.logInfo(ctx, "appointment rescheduled", slog.String("appointment.id", result.ID), slog.String("date", result.Date), slog.String("slot", result.TimeRange))
	}
	return result, nil
}

// Transition moves an appointment along the status state machine.
func (s *Service) Transition(ctx context.Context, input types.TransitionInput) (*domain.Appointment, error) {
	ctx, span := s.startSpan(ctx, "Service.Transition",
		attribute.String("appointment.id", input.ID),
		attribute.String("appointment.status.requested", input.Status),
	)
	defer span.End()

	s.logInfo(ctx, "transitioning appointment", slog.String("appointment.id", input.ID), slog.String("status", input.Status))
	result, err := s.inner.Transition(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to transition appointment", slog.String("appointment.id", input.ID))
	}
	if result != nil {
		s.metrics.recordTransitioned(ctx, result.Status)
		s.logInfo(ctx, "appointment transitioned", slog.String("appointment.id", result.ID), slog.String("status", string(result.Status)))
	}
	return result, nil
}

// GetByID loads a single appointment.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, span := s.startSpan(ctx, "Service.GetByID", attribute.String("appointment.id", id))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load appointment", slog.String("appointment.id", id))
	}
	return result, nil
}

// Delete removes an appointment.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.startSpan(ctx, "Service.Delete", attribute.String("appointment.id", id))
	defer span.End()

	s.logInfo(ctx, "deleting appointment", slog.String("appointment.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete appointment", slog.String("appointment.id", id))
	}
	s.metrics.recordDeleted(ctx, 1)
	s.logInfo(ctx, "appointment deleted", slog.String("appointment.id", id))
	return nil
}

// DeleteByPet purges every appointment referencing the pet.
func (s *Service) DeleteByPet(ctx context.Context, petID string) (int64, error) {
	ctx, span := s.startSpan(ctx, "Service.DeleteByPet", attribute.String("pet.id", petID))
	defer span.End()

	s.logInfo(ctx, "purging appointments for pet", slog.String("pet.id", petID))
	removed, err := s.inner.DeleteByPet(ctx, petID)
	if err != nil {
		return 0, s.handleError(ctx, span, err, "failed to purge appointments", slog.String("pet.id", petID))
	}
	span.SetAttributes(attribute.Int64("appointment.purged.count", removed))
	s.metrics.recordDeleted(ctx, removed)
	s.logInfo(ctx, "appointments purged", slog.String("pet.id", petID), slog.Int64("count", removed))
	return removed, nil
}

// List returns a filtered page of the appointment book.
func (s *Service) List(ctx context.Context, input types.ListInput) (*types.Page, error) {
	ctx, span := s.startSpan(ctx, "Service.List",
		attribute.String("appointment.tab", string(input.Tab)),
	)
	defer span.End()

	result, err := s.inner.List(ctx, input)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list appointments")
	}
	if result != nil {
		span.SetAttributes(attribute.Int("appointment.result.count", len(result.Items)), attribute.Int("appointment.result.total", result.Total))
	}
	return result, nil
}

func (s *Service) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	tracer := s.tracer
	if tracer == nil {
		tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type serviceMetrics struct {
	booked        metric.Int64Counter
	rescheduled   metric.Int64Counter
	transitioned  metric.Int64Counter
	deleted       metric.Int64Counter
	slotConflicts metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	booked, _ := m.Int64Counter("scheduling.service.booked", metric.WithDescription("Number of appointments booked"))
	rescheduled, _ := m.Int64Counter("scheduling.service.rescheduled", metric.WithDescription("Number of appointments rescheduled"))
	transitioned, _ := m.Int64Counter("scheduling.service.transitioned", metric.WithDescription("Number of status transitions"))
	deleted, _ := m.Int64Counter("scheduling.service.deleted", metric.WithDescription("Number of appointments deleted"))
	slotConflicts, _ := m.Int64Counter("scheduling.service.slot_conflicts", metric.WithDescription("Number of rejected double bookings"))
	return serviceMetrics{
		booked:        booked,
		rescheduled:   rescheduled,
		transitioned:  transitioned,
		deleted:       deleted,
		slotConflicts: slotConflicts,
	}
}

func (m serviceMetrics) recordBooked(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.booked, 1, attribute.String("appointment.status", string(status)))
}

func (m serviceMetrics) recordRescheduled(ctx context.Context) {
	addCounter(ctx, m.rescheduled, 1)
}

func (m serviceMetrics) recordTransitioned(ctx context.Context, status domain.Status) {
	addCounter(ctx, m.transitioned, 1, attribute.String("appointment.status", string(status)))
}

func (m serviceMetrics) recordDeleted(ctx context.Context, count int64) {
	addCounter(ctx, m.deleted, count)
}

func (m serviceMetrics) recordConflict(ctx context.Context) {
	addCounter(ctx, m.slotConflicts, 1)
}

func addCounter(ctx context.Context, counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(ctx, value, metric.WithAttributes(attrs...))
}

var _ ports.Service = (*Service)(nil)
