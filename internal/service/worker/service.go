package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
	"github.com/bunkops/bunk-backend-go/internal/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
	worker.HelperRepository
	logger *slog.Logger
}

func NewWorkerService(workerRepository worker.WorkerRepository, helperRepository worker.HelperRepository, logger *slog.Logger) worker.WorkerService {
	return &WorkerServiceImpl{
		WorkerRepository: workerRepository,
		HelperRepository: helperRepository,
		logger:           logger,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// CreateWorker implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	position := worker.Position(req.Position)
	var dutyType *worker.DutyType
	if req.DutyType != nil {
		dt := worker.DutyType(*req.DutyType)
		dutyType = &dt
	}

	created, err := s.WorkerRepository.Create(ctx, worker.Worker{
		ID:           newID(),
		StationID:    claims.StationID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         worker.RoleWorker,
		Position:     &position,
		DutyType:     dutyType,
		BaseSalary:   req.BaseSalary,
		Active:       true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	s.logger.Info("worker created", slog.String("station_id", created.StationID), slog.String("worker_id", created.ID))
	return worker.NewWorkerResponse(created), nil
}

// ListWorkers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListWorkers(ctx context.Context) ([]worker.WorkerResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	role := worker.RoleWorker
	workers, err := s.WorkerRepository.ListByStation(ctx, claims.StationID, &role)
	if err != nil {
		return nil, err
	}

	out := make([]worker.WorkerResponse, len(workers))
	for i, w := range workers {
		out[i] = worker.NewWorkerResponse(w)
	}
	return out, nil
}

// ToggleWorker implements worker.WorkerService. It flips the active flag; an
// inactive worker can no longer log in or open duties.
func (s *WorkerServiceImpl) ToggleWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, id, claims.StationID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if w.Role != worker.RoleWorker {
		return worker.WorkerResponse{}, worker.ErrWorkerNotFound
	}

	if err := s.WorkerRepository.SetActive(ctx, id, claims.StationID, !w.Active); err != nil {
		return worker.WorkerResponse{}, err
	}
	w.Active = !w.Active

	return worker.NewWorkerResponse(w), nil
}

// CreateHelper implements worker.WorkerService.
func (s *WorkerServiceImpl) CreateHelper(ctx context.Context, req worker.CreateHelperRequest) (worker.HelperResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.HelperResponse{}, err
	}

	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return worker.HelperResponse{}, err
	}

	var dutyType *worker.DutyType
	if req.DutyType != nil {
		dt := worker.DutyType(*req.DutyType)
		dutyType = &dt
	}

	created, err := s.HelperRepository.Create(ctx, worker.Helper{
		ID:            newID(),
		StationID:     claims.StationID,
		Name:          req.Name,
		PhoneNumber:   req.PhoneNumber,
		MonthlySalary: req.MonthlySalary,
		DutyType:      dutyType,
	})
	if err != nil {
		return worker.HelperResponse{}, err
	}
	return worker.NewHelperResponse(created), nil
}

// ListHelpers implements worker.WorkerService.
func (s *WorkerServiceImpl) ListHelpers(ctx context.Context) ([]worker.HelperResponse, error) {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return nil, err
	}

	helpers, err := s.HelperRepository.ListByStation(ctx, claims.StationID)
	if err != nil {
		return nil, err
	}

	out := make([]worker.HelperResponse, len(helpers))
	for i, h := range helpers {
		out[i] = worker.NewHelperResponse(h)
	}
	return out, nil
}

// DeleteHelper implements worker.WorkerService.
func (s *WorkerServiceImpl) DeleteHelper(ctx context.Context, id string) error {
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		return err
	}
	return s.HelperRepository.Delete(ctx, id, claims.StationID)
}
