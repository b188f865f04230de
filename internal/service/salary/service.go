package salary

import (
	"context"
	"fmt"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/salary"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"golang.org/x/sync/errgroup"
)

type SalaryServiceImpl struct {
	workerRepository     worker.WorkerRepository
	helperRepository     worker.HelperRepository
	dutyRepository       duty.DutyRepository
	attendanceRepository attendance.AttendanceRepository
}

func NewSalaryService(
	workerRepository worker.WorkerRepository,
	helperRepository worker.HelperRepository,
	dutyRepository duty.DutyRepository,
	attendanceRepository attendance.AttendanceRepository,
) salary.SalaryService {
	return &SalaryServiceImpl{
		workerRepository:     workerRepository,
		helperRepository:     helperRepository,
		dutyRepository:       dutyRepository,
		attendanceRepository: attendanceRepository,
	}
}

// GetReport implements salary.SalaryService. The four reads are independent
// and run concurrently.
func (s *SalaryServiceImpl) GetReport(ctx context.Context, req salary.ReportRequest) (salary.ReportResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ReportResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return salary.ReportResponse{}, err
	}

	var (
		workers []worker.Worker
		helpers []worker.Helper
		duties  []duty.Duty
		present []attendance.Record
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		role := worker.RoleWorker
		var err error
		workers, err = s.workerRepository.ListByStation(gCtx, claims.StationID, &role)
		return err
	})

	g.Go(func() error {
		var err error
		helpers, err = s.helperRepository.ListByStation(gCtx, claims.StationID)
		return err
	})

	g.Go(func() error {
		closed := duty.StatusClosed
		var err error
		duties, err = s.dutyRepository.List(gCtx, claims.StationID, duty.Filter{Month: &req.Month, Status: &closed})
		return err
	})

	g.Go(func() error {
		var err error
		present, err = s.attendanceRepository.ListByMonth(gCtx, claims.StationID, req.Month)
		return err
	})

	if err := g.Wait(); err != nil {
		return salary.ReportResponse{}, fmt.Errorf("failed to load salary inputs: %w", err)
	}

	workerInputs := make([]salary.WorkerInput, len(workers))
	for i, w := range workers {
		workerInputs[i] = salary.WorkerInput{ID: w.ID, Name: w.Name, BaseSalary: w.BaseSalary}
	}

	days := attendance.DaysPresent(present, attendance.WorkerTypeHelper)
	helperInputs := make([]salary.HelperInput, len(helpers))
	for i, h := range helpers {
		helperInputs[i] = salary.HelperInput{
			ID:            h.ID,
			Name:          h.Name,
			MonthlySalary: h.MonthlySalary,
			DaysPresent:   days[h.ID],
		}
	}

	return salary.NewReportResponse(salary.BuildReport(workerInputs, helperInputs, duties, req.Month)), nil
}
