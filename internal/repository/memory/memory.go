// Package memory holds map backed repositories with the same contracts as the
// PostgreSQL ones. It is test support only: service and router tests run
// against it, and cmd/api never wires it.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bunkops/bunk-backend-go/internal/domain/attendance"
	"github.com/bunkops/bunk-backend-go/internal/domain/dailysales"
	"github.com/bunkops/bunk-backend-go/internal/domain/duty"
	"github.com/bunkops/bunk-backend-go/internal/domain/station"
	"github.com/bunkops/bunk-backend-go/internal/domain/worker"
)

// Store is shared by every repository so one Transactor covers them all.
type Store struct {
	mu         sync.Mutex
	stations   map[string]station.Station
	workers    map[string]worker.Worker
	helpers    map[string]worker.Helper
	duties     map[string]duty.Duty
	attendance map[attendance.Key]attendance.Record
	sales      []dailysales.DailySales
}

func NewStore() *Store {
	return &Store{
		stations:   map[string]station.Station{},
		workers:    map[string]worker.Worker{},
		helpers:    map[string]worker.Helper{},
		duties:     map[string]duty.Duty{},
		attendance: map[attendance.Key]attendance.Record{},
	}
}

// InTx implements database.Transactor. Writes are applied immediately; a
// failing fn restores the attendance table, the only multi-statement write.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	snapshot := make(map[attendance.Key]attendance.Record, len(s.attendance))
	for k, v := range s.attendance {
		snapshot[k] = v
	}
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.attendance = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

// ========== STATIONS ==========

type StationRepository struct{ *Store }

func (r StationRepository) Create(ctx context.Context, st station.Station) (station.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	st.CreatedAt, st.UpdatedAt = now, now
	r.stations[st.ID] = st
	return st, nil
}

func (r StationRepository) GetByID(ctx context.Context, id string) (station.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stations[id]
	if !ok {
		return station.Station{}, station.ErrStationNotFound
	}
	return st, nil
}

func (r StationRepository) UpdatePrices(ctx context.Context, id string, prices station.Prices) (station.Station, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.stations[id]
	if !ok {
		return station.Station{}, station.ErrStationNotFound
	}
	st.Prices = prices
	st.UpdatedAt = time.Now()
	r.stations[id] = st
	return st, nil
}

// ========== WORKERS ==========

type WorkerRepository struct{ *Store }

func (r WorkerRepository) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.workers {
		if existing.Email == w.Email {
			return worker.Worker{}, worker.ErrEmailExists
		}
	}
	now := time.Now()
	w.CreatedAt, w.UpdatedAt = now, now
	r.workers[w.ID] = w
	return w, nil
}

func (r WorkerRepository) GetByID(ctx context.Context, id string, stationID string) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok || w.StationID != stationID {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (r WorkerRepository) GetByEmail(ctx context.Context, email string) (worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workers {
		if w.Email == email {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (r WorkerRepository) ListByStation(ctx context.Context, stationID string, role *worker.Role) ([]worker.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []worker.Worker{}
	for _, w := range r.workers {
		if w.StationID == stationID && (role == nil || w.Role == *role) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r WorkerRepository) SetActive(ctx context.Context, id string, stationID string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok || w.StationID != stationID || w.Role != worker.RoleWorker {
		return worker.ErrWorkerNotFound
	}
	w.Active = active
	r.workers[id] = w
	return nil
}

type HelperRepository struct{ *Store }

func (r HelperRepository) Create(ctx context.Context, h worker.Helper) (worker.Helper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.CreatedAt = time.Now()
	r.helpers[h.ID] = h
	return h, nil
}

func (r HelperRepository) ListByStation(ctx context.Context, stationID string) ([]worker.Helper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []worker.Helper{}
	for _, h := range r.helpers {
		if h.StationID == stationID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r HelperRepository) Delete(ctx context.Context, id string, stationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.helpers[id]
	if !ok || h.StationID != stationID {
		return worker.ErrHelperNotFound
	}
	delete(r.helpers, id)
	return nil
}

// ========== DUTIES ==========

type DutyRepository struct{ *Store }

func (r DutyRepository) Create(ctx context.Context, d duty.Duty) (duty.Duty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.duties[d.ID] = d
	return d, nil
}

func (r DutyRepository) GetByID(ctx context.Context, id string, stationID string) (duty.Duty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.duties[id]
	if !ok || d.StationID != stationID {
		return duty.Duty{}, duty.ErrDutyNotFound
	}
	return d, nil
}

func (r DutyRepository) Close(ctx context.Context, d duty.Duty) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.duties[d.ID]
	if !ok || stored.StationID != d.StationID || stored.Status != duty.StatusOpened {
		return duty.ErrDutyNotOpen
	}
	r.duties[d.ID] = d
	return nil
}

func (r DutyRepository) List(ctx context.Context, stationID string, f duty.Filter) ([]duty.Duty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []duty.Duty{}
	for _, d := range r.duties {
		switch {
		case d.StationID != stationID,
			f.WorkerID != nil && d.WorkerID != *f.WorkerID,
			f.Date != nil && d.Date != *f.Date,
			f.DateFrom != nil && d.Date < *f.DateFrom,
			f.DateTo != nil && d.Date > *f.DateTo,
			f.Month != nil && !strings.HasPrefix(d.Date, *f.Month+"-"),
			f.Status != nil && d.Status != *f.Status:
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.SubmittedAt != nil && b.SubmittedAt != nil && !a.SubmittedAt.Equal(*b.SubmittedAt):
			return a.SubmittedAt.After(*b.SubmittedAt)
		case (a.SubmittedAt == nil) != (b.SubmittedAt == nil):
			return a.SubmittedAt != nil
		}
		return a.OpenedAt.After(b.OpenedAt)
	})
	return out, nil
}

func (r DutyRepository) CountForWorkerOnDate(ctx context.Context, stationID, workerID, date string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, d := range r.duties {
		if d.StationID == stationID && d.WorkerID == workerID && d.Date == date {
			n++
		}
	}
	return n, nil
}

func (r DutyRepository) ListStaleOpened(ctx context.Context, openedBefore time.Time) ([]duty.Duty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []duty.Duty{}
	for _, d := range r.duties {
		if d.Status == duty.StatusOpened && d.OpenedAt.Before(openedBefore) {
			out = append(out, d)
		}
	}
	return out, nil
}

// ========== ATTENDANCE ==========

type AttendanceRepository struct{ *Store }

func (r AttendanceRepository) InsertIfAbsent(ctx context.Context, rec attendance.Record) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attendance[rec.Key()]; ok {
		return false, nil
	}
	r.attendance[rec.Key()] = rec
	return true, nil
}

func (r AttendanceRepository) DeleteDay(ctx context.Context, stationID, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k := range r.attendance {
		if k.StationID == stationID && k.Date == date {
			delete(r.attendance, k)
		}
	}
	return nil
}

func (r AttendanceRepository) Insert(ctx context.Context, records []attendance.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range records {
		r.attendance[rec.Key()] = rec
	}
	return nil
}

func (r AttendanceRepository) ListByDate(ctx context.Context, stationID, date string) ([]attendance.Record, error) {
	return r.list(func(k attendance.Key) bool { return k.StationID == stationID && k.Date == date }), nil
}

func (r AttendanceRepository) ListByMonth(ctx context.Context, stationID, month string) ([]attendance.Record, error) {
	return r.list(func(k attendance.Key) bool {
		return k.StationID == stationID && strings.HasPrefix(k.Date, month+"-")
	}), nil
}

func (r AttendanceRepository) list(match func(attendance.Key) bool) []attendance.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []attendance.Record{}
	for k, rec := range r.attendance {
		if match(k) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].WorkerID < out[j].WorkerID
	})
	return out
}

// ========== DAILY SALES ==========

type DailySalesRepository struct{ *Store }

func (r DailySalesRepository) Create(ctx context.Context, s dailysales.DailySales) (dailysales.DailySales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.CreatedAt = time.Now()
	r.sales = append(r.sales, s)
	return s, nil
}

func (r DailySalesRepository) List(ctx context.Context, stationID string, managerID *string, f dailysales.ListFilter) ([]dailysales.DailySales, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []dailysales.DailySales{}
	for i := len(r.sales) - 1; i >= 0; i-- {
		s := r.sales[i]
		switch {
		case s.StationID != stationID,
			managerID != nil && s.ManagerID != *managerID,
			f.Date != nil && s.Date != *f.Date,
			f.Month != nil && !strings.HasPrefix(s.Date, *f.Month+"-"):
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
