package punches

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"ponto-backend/internal/platform/db"
	"ponto-backend/internal/report"
)

// ===== Error model (same shape as report) =====
type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
)

type APIError struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string      { return fmt.Sprintf("%s: %s", e.Code, e.Message) }
func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func toHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		default:
			return 500
		}
	}
	return 500
}

// fromReportErr maps an engine error into this package's error model so
// handlers only ever deal with one shape.
func fromReportErr(err error) error {
	var api *report.APIError
	if errors.As(err, &api) {
		switch api.Code {
		case report.CodeInvalidArgument:
			return ErrInvalid(api.Message)
		case report.CodeNotFound:
			return ErrNotFound(api.Message)
		}
	}
	return err
}

// ===== Service =====

type PunchStore interface {
	Insert(ctx context.Context, p Punch) (int64, error)
	GetByID(ctx context.Context, id int64) (*Punch, error)
	ListByOwner(ctx context.Context, accountID int64, period *report.Period) ([]Punch, error)
	Update(ctx context.Context, id, accountID int64, f UpdateFields) (int64, error)
	Delete(ctx context.Context, id, accountID int64) (int64, error)
}

type Service struct {
	store PunchStore
	inTx  func(ctx context.Context, fn func(PunchStore) error) error
}

func NewService(conn *sql.DB) *Service {
	return &Service{
		store: NewStore(conn),
		inTx: func(ctx context.Context, fn func(PunchStore) error) error {
			return db.RunInTx(ctx, conn, nil, func(ctx context.Context, tx db.DBTX) error {
				return fn(NewStore(tx))
			})
		},
	}
}

// NewServiceWithStore wires an explicit store and tx runner; used by tests.
func NewServiceWithStore(store PunchStore, inTx func(ctx context.Context, fn func(PunchStore) error) error) *Service {
	if inTx == nil {
		inTx = func(ctx context.Context, fn func(PunchStore) error) error { return fn(store) }
	}
	return &Service{store: store, inTx: inTx}
}

// POST /punches
func (s *Service) Create(ctx context.Context, accountID int64, in CreatePunchRequest) (PunchResponse, error) {
	at, err := parseTimestamp(in.PunchedAt)
	if err != nil {
		return PunchResponse{}, err
	}
	if err := validKind(in.Kind); err != nil {
		return PunchResponse{}, err
	}

	p := Punch{
		AccountID: accountID,
		PunchedAt: at,
		Kind:      in.Kind,
		ProofURL:  in.ProofURL,
	}
	id, err := s.store.Insert(ctx, p)
	if err != nil {
		return PunchResponse{}, err
	}
	p.PunchID = id
	return p.toDTO(), nil
}

// GET /punches?month=&year=
func (s *Service) List(ctx context.Context, accountID int64, month, year *int) ([]PunchResponse, error) {
	period, err := optionalPeriod(month, year)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ListByOwner(ctx, accountID, period)
	if err != nil {
		return nil, err
	}
	out := make([]PunchResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, p.toDTO())
	}
	return out, nil
}

// PATCH /punches/:id
func (s *Service) Update(ctx context.Context, accountID, id int64, in UpdatePunchRequest) (PunchResponse, error) {
	var f UpdateFields
	if in.PunchedAt != nil {
		at, err := parseTimestamp(*in.PunchedAt)
		if err != nil {
			return PunchResponse{}, err
		}
		f.PunchedAt = &at
	}
	if in.Kind != nil {
		if err := validKind(*in.Kind); err != nil {
			return PunchResponse{}, err
		}
		f.Kind = in.Kind
	}
	if in.ProofURL.Set {
		if in.ProofURL.Value == nil {
			f.ClearProof = true
		} else {
			f.ProofURL = in.ProofURL.Value
		}
	}
	if f.PunchedAt == nil && f.Kind == nil && !f.ClearProof && f.ProofURL == nil {
		return PunchResponse{}, ErrInvalid("no fields to update")
	}

	var out PunchResponse
	err := s.inTx(ctx, func(store PunchStore) error {
		n, err := store.Update(ctx, id, accountID, f)
		if err != nil {
			return err
		}
		if n == 0 {
			// owner mismatch and missing row look the same on purpose
			return ErrNotFound("punch not found")
		}
		p, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrInternal("updated but not found")
		}
		out = p.toDTO()
		return nil
	})
	if err != nil {
		return PunchResponse{}, err
	}
	return out, nil
}

// DELETE /punches/:id
func (s *Service) Delete(ctx context.Context, accountID, id int64) error {
	n, err := s.store.Delete(ctx, id, accountID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound("punch not found")
	}
	return nil
}

// GET /reports/today
func (s *Service) Today(ctx context.Context, accountID int64, now time.Time) (TodayReportResponse, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999_000_000, time.UTC)
	period := report.Period{From: dayStart, To: dayEnd}

	rows, err := s.store.ListByOwner(ctx, accountID, &period)
	if err != nil {
		return TodayReportResponse{}, err
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].PunchedAt.Before(rows[j].PunchedAt) })

	entries := make([]TodayEntry, 0, len(rows))
	times := make([]string, 0, len(rows))
	for _, p := range rows {
		hhmm := p.PunchedAt.Format("15:04")
		entries = append(entries, TodayEntry{
			PunchID:  p.PunchID,
			Time:     hhmm,
			Kind:     p.Kind,
			ProofURL: p.ProofURL,
		})
		times = append(times, hhmm)
	}

	sum, err := report.Summarize(times)
	if err != nil {
		return TodayReportResponse{}, fromReportErr(err)
	}

	return TodayReportResponse{
		Date:          dayStart.Format(report.DateKeyLayout),
		Entries:       entries,
		Summary:       sum,
		WorkedLabel:   report.FormatMinutes(sum.WorkedMinutes),
		OvertimeLabel: report.FormatMinutes(sum.OvertimeMinutes),
	}, nil
}

// GET /reports/period
func (s *Service) PeriodReport(ctx context.Context, accountID int64, month, year int) (report.PeriodView, error) {
	grouping, period, err := s.grouping(ctx, accountID, month, year)
	if err != nil {
		return report.PeriodView{}, err
	}
	return report.BuildPeriodView(grouping, period, month, year), nil
}

// GET /reports/period/export
func (s *Service) PeriodCSV(ctx context.Context, accountID int64, month, year int) ([]byte, string, error) {
	view, err := s.PeriodReport(ctx, accountID, month, year)
	if err != nil {
		return nil, "", err
	}
	data, err := report.ExportCSV(view)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("timesheet_%04d-%02d.csv", year, month)
	return data, name, nil
}

// POST /reports/resolve
func (s *Service) ResolveID(ctx context.Context, accountID int64, in ResolveRequest) (int64, error) {
	ident, err := report.ParseIdentifier(in.Key)
	if err != nil {
		return 0, fromReportErr(err)
	}
	grouping, _, err := s.grouping(ctx, accountID, in.Month, in.Year)
	if err != nil {
		return 0, err
	}
	id, ok := grouping.Resolve(ident)
	if !ok {
		return 0, ErrNotFound("no punch matches identifier")
	}
	return id, nil
}

// ExportAll returns the account's entire history, newest first (backup).
func (s *Service) ExportAll(ctx context.Context, accountID int64) ([]PunchResponse, error) {
	return s.List(ctx, accountID, nil, nil)
}

func (s *Service) grouping(ctx context.Context, accountID int64, month, year int) (report.Grouping, report.Period, error) {
	period, err := report.ResolvePeriod(month, year)
	if err != nil {
		return nil, report.Period{}, fromReportErr(err)
	}
	rows, err := s.store.ListByOwner(ctx, accountID, &period)
	if err != nil {
		return nil, report.Period{}, err
	}
	recs := make([]report.Punch, 0, len(rows))
	for _, p := range rows {
		recs = append(recs, p.toReport())
	}
	return report.GroupByPeriod(recs, period), period, nil
}

// ===== helpers =====

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalid("punched_at must be YYYY-MM-DDTHH:MM:SS (local, no zone)")
	}
	return t, nil
}

func validKind(k string) error {
	if k != KindEntry && k != KindExit {
		return ErrInvalid("kind must be entry or exit")
	}
	return nil
}

func optionalPeriod(month, year *int) (*report.Period, error) {
	if month == nil && year == nil {
		return nil, nil
	}
	if month == nil || year == nil {
		return nil, ErrInvalid("month and year must be given together")
	}
	p, err := report.ResolvePeriod(*month, *year)
	if err != nil {
		return nil, fromReportErr(err)
	}
	return &p, nil
}
