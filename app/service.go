// Package app wires the tabular, calendar, and preference ports to the
// schedule engine. One Service handles one command invocation; nothing is
// cached across invocations.
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/YoRyan/operdate-getbus/config"
	corecal "github.com/YoRyan/operdate-getbus/core/calendar"
	"github.com/YoRyan/operdate-getbus/core/model"
	"github.com/YoRyan/operdate-getbus/core/roster"
	"github.com/YoRyan/operdate-getbus/infra/calendar"
	"github.com/YoRyan/operdate-getbus/infra/logger"
	"github.com/YoRyan/operdate-getbus/infra/prefs"
	"github.com/YoRyan/operdate-getbus/infra/sheet"
)

// Service orchestrates one user-triggered operation end to end.
type Service struct {
	loc    *time.Location
	log    logger.Logger
	source sheet.Reader
	sink   sheet.Writer
	cal    calendar.Writer
	prefs  prefs.Store
}

// New creates a Service with the production ports from the configuration.
func New(cfg *config.Config) (*Service, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	store, err := prefs.NewSQLiteStore(cfg.Prefs.Path)
	if err != nil {
		return nil, fmt.Errorf("open preference store: %w", err)
	}
	csv := sheet.NewCSVStore(cfg.Sheets)
	ics := calendar.NewICSWriter(cfg.Calendar, logger.New("calendar"))
	return NewWithPorts(loc, logger.New("service"), csv, csv, ics, store), nil
}

// NewWithPorts creates a Service over explicit port implementations.
func NewWithPorts(loc *time.Location, log logger.Logger, source sheet.Reader, sink sheet.Writer, cal calendar.Writer, store prefs.Store) *Service {
	return &Service{loc: loc, log: log, source: source, sink: sink, cal: cal, prefs: store}
}

// Location returns the timezone dates are interpreted in.
func (s *Service) Location() *time.Location { return s.loc }

// Close releases the preference store.
func (s *Service) Close() error { return s.prefs.Close() }

// SetRun stores a run number as the standing assignment, replacing any show
// times stored before.
func (s *Service) SetRun(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errors.New("run number is required")
	}
	return s.prefs.Save(prefs.Assignment{Run: number})
}

// SetShow stores one or two show start times as the standing assignment,
// replacing any run stored before. Times are kept as entered; malformed
// values surface later as NaN output, not as errors here.
func (s *Service) SetShow(show, second string) error {
	show = strings.TrimSpace(show)
	if show == "" {
		return errors.New("show time is required")
	}
	return s.prefs.Save(prefs.Assignment{
		ShowTime:       show,
		SecondShowTime: strings.TrimSpace(second),
	})
}

// Populate creates calendar events on date for the stored assignment.
func (s *Service) Populate(date time.Time) error {
	a, err := s.prefs.Load()
	if err != nil {
		if errors.Is(err, prefs.ErrNotSet) {
			return errors.New("set an assignment first")
		}
		return fmt.Errorf("load assignment: %w", err)
	}

	var events []corecal.Event
	switch {
	case a.Run != "":
		runs, err := s.loadRuns()
		if err != nil {
			return err
		}
		run, ok := runs.Get(a.Run)
		if !ok {
			return fmt.Errorf("run %s not found", a.Run)
		}
		events = corecal.RunEvents(run, date)
	case a.ShowTime != "":
		show := model.ParseTime(a.ShowTime)
		second := model.TimeNaN
		if a.SecondShowTime != "" {
			second = model.ParseTime(a.SecondShowTime)
		}
		events = corecal.ShowEvents(date, show, second)
	default:
		return errors.New("set an assignment first")
	}

	if err := s.cal.Add(events); err != nil {
		return fmt.Errorf("create events: %w", err)
	}
	s.log.Infof("created %d events for %s", len(events), date.Format(model.DateLayout))
	return nil
}

// PopulateRelief creates run events for every relief week in which the named
// operator covers a bid, one event per scheduled span per day.
func (s *Service) PopulateRelief(rawName string) error {
	driver := model.NewOperator(rawName)

	runs, err := s.loadRuns()
	if err != nil {
		return err
	}
	bids, err := s.loadBids(runs)
	if err != nil {
		return err
	}
	weeks, err := s.loadReliefWeeks(bids)
	if err != nil {
		return err
	}

	var events []corecal.Event
	for _, week := range weeks {
		bid := week.Assignments[driver]
		if bid == nil {
			continue
		}
		day := week.WeekOf
		for wd := 0; wd < 7; wd++ {
			if run := bid.RunOn(time.Weekday(wd)); run != nil {
				events = append(events, corecal.RunEvents(run, day)...)
			}
			day = day.AddDate(0, 0, 1)
		}
	}

	if err := s.cal.Add(events); err != nil {
		return fmt.Errorf("create events: %w", err)
	}
	s.log.Infof("created %d relief events for %s", len(events), driver)
	return nil
}

func (s *Service) loadRuns() (*roster.Runs, error) {
	rows, err := s.source.Table(sheet.TableRuns)
	if err != nil {
		return nil, err
	}
	return roster.ReadRuns(rows), nil
}

func (s *Service) loadBids(runs *roster.Runs) (*roster.Bids, error) {
	rows, err := s.source.Table(sheet.TableBids)
	if err != nil {
		return nil, err
	}
	return roster.ReadBids(rows, runs, s.log), nil
}

func (s *Service) loadReliefWeeks(bids *roster.Bids) ([]model.ReliefWeek, error) {
	rows, err := s.source.Table(sheet.TableVacationRelief)
	if err != nil {
		return nil, err
	}
	return roster.ReadReliefWeeks(rows, bids, s.loc, s.log), nil
}

func (s *Service) loadRoster() (*roster.Roster, error) {
	runs, err := s.loadRuns()
	if err != nil {
		return nil, err
	}
	bids, err := s.loadBids(runs)
	if err != nil {
		return nil, err
	}
	relief, err := s.loadReliefWeeks(bids)
	if err != nil {
		return nil, err
	}
	vacRows, err := s.source.Table(sheet.TableVacations)
	if err != nil {
		return nil, err
	}
	extraRows, err := s.source.Table(sheet.TableExtraBoard)
	if err != nil {
		return nil, err
	}
	return &roster.Roster{
		Runs:       runs,
		Bids:       bids,
		Relief:     relief,
		Vacations:  roster.ReadVacationWeeks(vacRows, s.loc, s.log),
		ExtraBoard: roster.ReadExtraBoardDaysOff(extraRows),
	}, nil
}
