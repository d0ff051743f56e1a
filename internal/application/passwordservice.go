package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/guestwifi/internal/domain/model"
	"github.com/ericfisherdev/guestwifi/internal/domain/port/driven"
)

const unexpectedLookupMessage = "An unexpected error occurred while loading the password. Please contact staff for assistance."

// RecordProvider supplies the current password table. RecordCache is the
// production implementation.
type RecordProvider interface {
	GetRecords(ctx context.Context) ([]model.PasswordRecord, error)
}

// PasswordService resolves the guest WiFi password for a day. Every failure
// is folded into the returned LookupResult; nothing is returned as an error
// because the presentation layer renders errors as regular page states.
type PasswordService struct {
	records       RecordProvider
	calendar      *Calendar
	network       model.WiFiNetwork
	showYesterday bool
	metrics       driven.MetricsRecorder
	logger        *slog.Logger
}

// NewPasswordService creates a PasswordService. metrics may be nil.
func NewPasswordService(
	records RecordProvider,
	calendar *Calendar,
	network model.WiFiNetwork,
	showYesterday bool,
	metrics driven.MetricsRecorder,
	logger *slog.Logger,
) *PasswordService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &PasswordService{
		records:       records,
		calendar:      calendar,
		network:       network,
		showYesterday: showYesterday,
		metrics:       metrics,
		logger:        logger,
	}
}

// Network returns the configured guest network.
func (s *PasswordService) Network() model.WiFiNetwork {
	return s.network
}

// Calendar returns the calendar used to compute today's date.
func (s *PasswordService) Calendar() *Calendar {
	return s.calendar
}

// CurrentPassword returns today's password, plus yesterday's when the
// service was configured to show it.
func (s *PasswordService) CurrentPassword(ctx context.Context) model.LookupResult {
	today := s.calendar.Today()
	result, records := s.lookup(ctx, today, func(date string) string {
		return fmt.Sprintf("No password available for today (%s). Please check with staff for the current password.", date)
	})

	if s.showYesterday && records != nil {
		yesterday := s.calendar.Yesterday()
		if pw, ok := FindPasswordForDate(records, yesterday); ok {
			result.YesterdayPassword = pw
			result.YesterdayDate = yesterday
		}
	}

	return result
}

// PasswordFor returns the password for an arbitrary DD/MM/YYYY date.
func (s *PasswordService) PasswordFor(ctx context.Context, date string) model.LookupResult {
	result, _ := s.lookup(ctx, date, func(date string) string {
		return fmt.Sprintf("No password available for %s.", date)
	})
	return result
}

// AvailableDates lists the dates present in the current table, oldest first.
func (s *PasswordService) AvailableDates(ctx context.Context) ([]string, error) {
	records, err := s.records.GetRecords(ctx)
	if err != nil {
		return nil, err
	}
	return AvailableDates(records), nil
}

func (s *PasswordService) lookup(ctx context.Context, date string, notFound func(string) string) (model.LookupResult, []model.PasswordRecord) {
	result := model.LookupResult{
		NetworkName: s.network.Name,
		Date:        date,
	}

	records, err := s.records.GetRecords(ctx)
	if err != nil {
		result.ErrorState, result.Error = s.classify(err)
		s.metrics.Lookup(result.ErrorState)
		return result, nil
	}

	pw, ok := FindPasswordForDate(records, date)
	if !ok {
		s.logger.Warn("no password for date",
			"date", date,
			"available", len(records),
		)
		result.ErrorState = model.ErrorStateNoPasswordForDate
		result.Error = notFound(date)
		s.metrics.Lookup(result.ErrorState)
		return result, records
	}

	result.Password = pw
	s.metrics.Lookup(model.ErrorStateNone)
	return result, records
}

func (s *PasswordService) classify(err error) (model.ErrorState, string) {
	var srcErr *model.SourceError
	if errors.As(err, &srcErr) {
		s.logger.Error("password table unavailable", "state", srcErr.State, "error", err)
		return srcErr.State, srcErr.UserMessage()
	}

	s.logger.Error("unexpected error loading passwords", "error", err)
	return model.ErrorStateConfigurationError, unexpectedLookupMessage
}
