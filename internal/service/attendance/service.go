package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/clock"
	"github.com/bunkops/bunk-backend-go/internal/pkg/database"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	tx database.Transactor
	attendance.AttendanceRepository
	workerRepository worker.WorkerRepository
	helperRepository worker.HelperRepository
	clock            clock.Clock
	logger           *slog.Logger
}

func NewAttendanceService(
	tx database.Transactor,
	attendanceRepository attendance.AttendanceRepository,
	workerRepository worker.WorkerRepository,
	helperRepository worker.HelperRepository,
	clk clock.Clock,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepository,
		workerRepository:     workerRepository,
		helperRepository:     helperRepository,
		clock:                clk,
		logger:               logger,
	}
}

// MarkAutoPresent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAutoPresent(ctx context.Context, stationID, workerID string, at time.Time) error {
	loginAt := at
	rec := attendance.Record{
		StationID:  stationID,
		Date:       s.clock.Day(at),
		WorkerType: attendance.WorkerTypeWorker,
		WorkerID:   workerID,
		Present:    true,
		Source:     attendance.SourceAuto,
		LoginAt:    &loginAt,
		UpdatedAt:  at,
	}

	inserted, err := s.AttendanceRepository.InsertIfAbsent(ctx, rec)
	if err != nil {
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	if inserted {
		s.logger.Info("attendance marked on login",
			slog.String("station_id", stationID),
			slog.String("worker_id", workerID),
			slog.String("date", rec.Date),
		)
	}
	return nil
}

// SaveManualSheet implements attendance.AttendanceService. Every record of the
// day is replaced, including auto records from logins.
func (s *AttendanceServiceImpl) SaveManualSheet(ctx context.Context, req attendance.SaveSheetRequest) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := attendance.NormalizeSheet(claims.StationID, req.Date, req.Records, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.checkPeople(ctx, claims.StationID, records); err != nil {
		return nil, err
	}

	err = s.tx.InTx(ctx, func(txCtx context.Context) error {
		if err := s.AttendanceRepository.DeleteDay(txCtx, claims.StationID, req.Date); err != nil {
			return err
		}
		return s.AttendanceRepository.Insert(txCtx, records)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance sheet: %w", err)
	}

	s.logger.Info("attendance sheet saved",
		slog.String("station_id", claims.StationID),
		slog.String("date", req.Date),
		slog.Int("records", len(records)),
	)

	saved, err := s.AttendanceRepository.ListByDate(ctx, claims.StationID, req.Date)
	if err != nil {
		return nil, err
	}
	return attendance.NewRecordResponses(saved), nil
}

// checkPeople rejects sheets naming workers or helpers of another station.
func (s *AttendanceServiceImpl) checkPeople(ctx context.Context, stationID string, records []attendance.Record) error {
	if len(records) == 0 {
		return nil
	}

	role := worker.RoleWorker
	workers, err := s.workerRepository.ListByStation(ctx, stationID, &role)
	if err != nil {
		return err
	}
	helpers, err := s.helperRepository.ListByStation(ctx, stationID)
	if err != nil {
		return err
	}

	known := make(map[attendance.WorkerType]map[string]bool, 2)
	known[attendance.WorkerTypeWorker] = make(map[string]bool, len(workers))
	known[attendance.WorkerTypeHelper] = make(map[string]bool, len(helpers))
	for _, w := range workers {
		known[attendance.WorkerTypeWorker][w.ID] = true
	}
	for _, h := range helpers {
		known[attendance.WorkerTypeHelper][h.ID] = true
	}

	for _, r := range records {
		if !known[r.WorkerType][r.WorkerID] {
			return fmt.Errorf("%w: %s %s", attendance.ErrUnknownPerson, r.WorkerType, r.WorkerID)
		}
	}
	return nil
}

// List implements attendance.AttendanceService. Without a filter it returns
// today's records.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	var records []attendance.Record
	if filter.Month != nil {
		records, err = s.AttendanceRepository.ListByMonth(ctx, claims.StationID, *filter.Month)
	} else {
		date := s.clock.Today()
		if filter.Date != nil {
			date = *filter.Date
		}
		records, err = s.AttendanceRepository.ListByDate(ctx, claims.StationID, date)
	}
	if err != nil {
		return nil, err
	}
	return attendance.NewRecordResponses(records), nil
}
