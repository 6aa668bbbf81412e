package service

import (
	"context"

	"github.com/isrcorgin/ISRC-Backend/internal/model"
	"github.com/isrcorgin/ISRC-Backend/internal/repo"
)

// MarkingService records judge rubric sheets and the attendance flag.
// Totals are always recomputed server-side; whatever the judge's client
// sent as totals is discarded.
type MarkingService interface {
	SubmitMarks(ctx context.Context, uid string, sheet model.MarksSheet) (*model.MarksTotals, error)
	// Result returns the stored sheet, or repo.ErrNotFound when no judge
	// has marked this participant yet.
	Result(ctx context.Context, uid string) (*model.MarksSheet, error)
	MarkAttendance(ctx context.Context, uid string) error
	Participants(ctx context.Context) ([]model.User, error)
}

type markingService struct {
	users repo.UserRepository
}

func NewMarkingService(users repo.UserRepository) MarkingService {
	return &markingService{users: users}
}

func (s *markingService) SubmitMarks(ctx context.Context, uid string, sheet model.MarksSheet) (*model.MarksTotals, error) {
	sheet.Totals = computeTotals(sheet)
	if err := s.users.SetMarks(ctx, uid, sheet); err != nil {
		return nil, err
	}
	return sheet.Totals, nil
}

func (s *markingService) Result(ctx context.Context, uid string) (*model.MarksSheet, error) {
	user, err := s.users.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user.Marks == nil {
		return nil, repo.ErrNotFound
	}
	return user.Marks, nil
}

func (s *markingService) MarkAttendance(ctx context.Context, uid string) error {
	return s.users.SetAttendance(ctx, uid)
}

func (s *markingService) Participants(ctx context.Context) ([]model.User, error) {
	return s.users.All(ctx)
}

func computeTotals(sheet model.MarksSheet) *model.MarksTotals {
	sections := map[string]map[string]float64{
		"innovation":          sheet.Innovation,
		"technical":           sheet.Technical,
		"applicability":       sheet.Applicability,
		"presentation":        sheet.Presentation,
		"challenge":           sheet.Challenge,
		"designFunctionality": sheet.DesignFunctionality,
	}

	totals := &model.MarksTotals{SectionTotals: make(map[string]float64, len(sections))}
	for name, items := range sections {
		var sum float64
		for _, score := range items {
			sum += score
		}
		totals.SectionTotals[name] = sum
		totals.OverallTotal += sum
	}
	return totals
}
