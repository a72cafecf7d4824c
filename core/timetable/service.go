package timetable

import (
	"context"
	"errors"
	"expvar"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/ratiba/core"
)

var (
	// errors
	ErrNotFound = errors.New("timetable not generated")

	generatedCount = expvar.NewInt("timetables_generated")
)

type (
	// Repository holds the last generated Timetable, shared by every caller.
	Repository interface {
		// Save replaces the stored Timetable.
		Save(ctx context.Context, tt Timetable) error
		// Current returns ErrNotFound until the first Save.
		Current(ctx context.Context) (Timetable, error)
	}

	Service struct {
		gen    *Generator
		repo   Repository
		logger core.Logger
	}
)

func NewService(gen *Generator, repo Repository, logger core.Logger) *Service {
	return &Service{
		gen:    gen,
		repo:   repo,
		logger: logger,
	}
}

// Grid returns the grid timetables are generated for.
func (svc *Service) Grid() Grid {
	return svc.gen.Grid()
}

// Generate builds a new Timetable out of the submitted names and replaces the stored one.
func (svc *Service) Generate(ctx context.Context, nt NewTimetable) (Timetable, error) {
	teachers, subjects := nt.Normalize()

	tt := svc.gen.Generate(teachers, subjects)
	if err := svc.repo.Save(ctx, tt); err != nil {
		return Timetable{}, pkgerrors.Wrap(err, "saving timetable")
	}
	generatedCount.Add(1)

	svc.logger.Info("timetable generated", map[string]interface{}{
		"id":       tt.ID.String(),
		"teachers": len(teachers),
		"subjects": len(subjects),
	})
	svc.warnUnresolved(teachers, subjects)
	return tt, nil
}

// Current returns the last generated Timetable.
func (svc *Service) Current(ctx context.Context) (Timetable, error) {
	tt, err := svc.repo.Current(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Timetable{}, err
		}
		return Timetable{}, pkgerrors.Wrap(err, "getting current timetable")
	}
	return tt, nil
}

func (svc *Service) warnUnresolved(teachers []Teacher, subjects []Subject) {
	seen := make(map[string]bool)
	for _, s := range subjects {
		if seen[s.TeacherName] {
			continue
		}
		seen[s.TeacherName] = true
		if _, ok := ResolveTeacher(teachers, s.TeacherName); ok {
			continue
		}
		msg := fmt.Sprintf("teacher %q of subject %q not found, using %q", s.TeacherName, s.Name, UnknownTeacher)
		if match, ok := SuggestTeacher(teachers, s.TeacherName); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", match)
		}
		svc.logger.Warn(msg)
	}
}
