package usecase

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/infrastructure/metrics"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// visitReportDays is the window the visits report covers when no dates are given.
const visitReportDays = 7

var (
	ErrScheduledServiceNotFound = errors.New("scheduled service not found")
	ErrInvalidScheduledService  = errors.New("invalid scheduled service")
	ErrServiceTransition        = errors.New("scheduled service cannot change to that status")
)

type ScheduleServiceInput struct {
	ClientID          string
	ProspectID        string
	AssignedTo        string
	ServiceType       entities.ServiceType
	Title             string
	Description       string
	ScheduledDate     proration.Date
	ScheduledTime     string
	EstimatedDuration int
	ChargeAmount      decimal.Decimal
	CreatedBy         string
}

type RescheduleInput struct {
	ScheduledDate proration.Date
	ScheduledTime string
	// AssignedTo hands the visit to another technician when set.
	AssignedTo string
}

// VisitLocation is where the technician checked in. Both coordinates or neither.
type VisitLocation struct {
	Latitude  *float64
	Longitude *float64
}

type CompleteVisitInput struct {
	Notes     string
	NoOneHome bool
}

// ServiceFilter narrows the calendar. Empty fields match everything.
type ServiceFilter struct {
	DateFrom    proration.Date
	DateTo      proration.Date
	AssignedTo  string
	Status      entities.ServiceStatus
	ServiceType entities.ServiceType
}

// VisitReportFilter narrows the visits report. Search matches the title, the
// client or prospect name and the technician id.
type VisitReportFilter struct {
	ServiceFilter
	Search string
}

type VisitView struct {
	entities.ScheduledService
	PersonName string `json:"person_name"`
	IsProspect bool   `json:"is_prospect"`
}

type VisitStats struct {
	Total               int `json:"total"`
	WithGPS             int `json:"with_gps"`
	Completed           int `json:"completed"`
	NoOneHome           int `json:"no_one_home"`
	AverageVisitMinutes int `json:"average_visit_minutes"`
}

type VisitReport struct {
	DateFrom proration.Date `json:"date_from"`
	DateTo   proration.Date `json:"date_to"`
	Visits   []VisitView    `json:"visits"`
	Stats    VisitStats     `json:"stats"`
}

// IScheduledServiceUseCase covers field-service visits: the calendar, the
// visit lifecycle and the visits report.
type IScheduledServiceUseCase interface {
	Schedule(ctx context.Context, in ScheduleServiceInput) (entities.ScheduledService, error)
	GetByID(ctx context.Context, id string) (entities.ScheduledService, error)
	List(ctx context.Context, filter ServiceFilter) ([]entities.ScheduledService, error)
	Reschedule(ctx context.Context, id string, in RescheduleInput) (entities.ScheduledService, error)
	StartVisit(ctx context.Context, id string, loc VisitLocation) (entities.ScheduledService, error)
	Complete(ctx context.Context, id string, in CompleteVisitInput) (entities.ScheduledService, error)
	Cancel(ctx context.Context, id, reason string) (entities.ScheduledService, error)
	Report(ctx context.Context, filter VisitReportFilter) (VisitReport, error)
}

type ScheduledServiceUseCase struct {
	repo      interfaces.IScheduledServiceRepository
	clients   interfaces.IClientRepository
	prospects interfaces.IProspectRepository
	charges   interfaces.IChargeRepository
	balances  balanceAdjuster
	now       func() time.Time
}

var _ IScheduledServiceUseCase = (*ScheduledServiceUseCase)(nil)

func NewScheduledServiceUseCase(
	repo interfaces.IScheduledServiceRepository,
	clients interfaces.IClientRepository,
	prospects interfaces.IProspectRepository,
	charges interfaces.IChargeRepository,
	billing interfaces.IClientBillingRepository,
	balanceRetries uint64,
) *ScheduledServiceUseCase {
	return &ScheduledServiceUseCase{
		repo:      repo,
		clients:   clients,
		prospects: prospects,
		charges:   charges,
		balances:  newBalanceAdjuster(billing, balanceRetries),
		now:       time.Now,
	}
}

func (u *ScheduledServiceUseCase) Schedule(ctx context.Context, in ScheduleServiceInput) (entities.ScheduledService, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.ProspectID = strings.TrimSpace(in.ProspectID)
	in.AssignedTo = strings.TrimSpace(in.AssignedTo)
	in.Title = strings.TrimSpace(in.Title)
	in.ScheduledTime = strings.TrimSpace(in.ScheduledTime)
	if err := validateSchedule(in); err != nil {
		return entities.ScheduledService{}, err
	}
	if err := u.checkVisitTarget(ctx, in.ClientID, in.ProspectID); err != nil {
		return entities.ScheduledService{}, err
	}

	now := u.now().UTC()
	s := entities.ScheduledService{
		ID:                uuid.NewString(),
		ClientID:          in.ClientID,
		ProspectID:        in.ProspectID,
		AssignedTo:        in.AssignedTo,
		ServiceType:       in.ServiceType,
		Status:            entities.ServiceStatusScheduled,
		Title:             in.Title,
		Description:       strings.TrimSpace(in.Description),
		ScheduledDate:     in.ScheduledDate,
		ScheduledTime:     in.ScheduledTime,
		EstimatedDuration: in.EstimatedDuration,
		ChargeAmount:      in.ChargeAmount.Round(2),
		CreatedBy:         in.CreatedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		logger.L.Errorf("[service][usecase] schedule failed err=%v", err)
		return entities.ScheduledService{}, err
	}
	metrics.ScheduledServices.WithLabelValues(string(created.Status)).Inc()
	logger.L.Infof("[service][usecase] scheduled service_id=%s type=%s assigned_to=%s date=%s",
		created.ID, created.ServiceType, created.AssignedTo, created.ScheduledDate)
	return created, nil
}

func validateSchedule(in ScheduleServiceInput) error {
	if (in.ClientID == "") == (in.ProspectID == "") {
		return errors.Wrap(ErrInvalidScheduledService, "exactly one of client_id or prospect_id is required")
	}
	if !in.ServiceType.Valid() {
		return errors.Wrapf(ErrInvalidScheduledService, "unknown service_type %q", in.ServiceType)
	}
	if in.ScheduledDate.IsZero() {
		return errors.Wrap(ErrInvalidScheduledService, "scheduled_date is required")
	}
	if err := validateFields([]fieldRule{
		{"assigned_to", in.AssignedTo, "required"},
		{"title", in.Title, "required"},
		{"scheduled_time", in.ScheduledTime, "omitempty,datetime=15:04"},
	}); err != nil {
		return errors.Wrap(ErrInvalidScheduledService, err.Error())
	}
	if in.EstimatedDuration < 0 {
		return errors.Wrap(ErrInvalidScheduledService, "estimated_duration must not be negative")
	}
	if in.ChargeAmount.IsNegative() {
		return errors.Wrap(ErrInvalidScheduledService, "charge_amount must not be negative")
	}
	if in.ChargeAmount.IsPositive() && in.ClientID == "" {
		return errors.Wrap(ErrInvalidScheduledService, "only client visits can carry a charge")
	}
	return nil
}

func (u *ScheduledServiceUseCase) checkVisitTarget(ctx context.Context, clientID, prospectID string) error {
	if clientID != "" {
		c, err := u.clients.GetByID(ctx, clientID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrClientNotFound
		}
		return nil
	}
	p, err := u.prospects.GetByID(ctx, prospectID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrProspectNotFound
	}
	return nil
}

func (u *ScheduledServiceUseCase) GetByID(ctx context.Context, id string) (entities.ScheduledService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ScheduledService{}, ErrScheduledServiceNotFound
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	if s.ID == "" {
		return entities.ScheduledService{}, ErrScheduledServiceNotFound
	}
	return s, nil
}

// List returns the calendar ordered by day and start time. Visits without a
// time sort at 08:00.
func (u *ScheduledServiceUseCase) List(ctx context.Context, filter ServiceFilter) ([]entities.ScheduledService, error) {
	if err := validateServiceFilter(filter); err != nil {
		return nil, err
	}
	services, err := u.repo.List(ctx, interfaces.ScheduledServiceQuery{
		From:       filter.DateFrom,
		To:         filter.DateTo,
		AssignedTo: strings.TrimSpace(filter.AssignedTo),
	})
	if err != nil {
		return nil, err
	}
	services = lo.Filter(services, func(s entities.ScheduledService, _ int) bool {
		return matchesServiceFilter(s, filter)
	})
	slices.SortStableFunc(services, func(a, b entities.ScheduledService) int {
		if c := a.ScheduledDate.Time().Compare(b.ScheduledDate.Time()); c != 0 {
			return c
		}
		return strings.Compare(slotOf(a), slotOf(b))
	})
	return services, nil
}

func slotOf(s entities.ScheduledService) string {
	if s.ScheduledTime == "" {
		return "08:00"
	}
	return s.ScheduledTime
}

func validateServiceFilter(f ServiceFilter) error {
	if f.Status != "" && !lo.Contains([]entities.ServiceStatus{
		entities.ServiceStatusScheduled, entities.ServiceStatusInProgress,
		entities.ServiceStatusCompleted, entities.ServiceStatusCancelled,
	}, f.Status) {
		return errors.Wrapf(ErrInvalidScheduledService, "unknown status %q", f.Status)
	}
	if f.ServiceType != "" && !f.ServiceType.Valid() {
		return errors.Wrapf(ErrInvalidScheduledService, "unknown service_type %q", f.ServiceType)
	}
	if !f.DateFrom.IsZero() && !f.DateTo.IsZero() && f.DateTo.Before(f.DateFrom) {
		return errors.Wrap(ErrInvalidScheduledService, "date_to is before date_from")
	}
	return nil
}

func matchesServiceFilter(s entities.ScheduledService, f ServiceFilter) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.ServiceType != "" && s.ServiceType != f.ServiceType {
		return false
	}
	return true
}

func (u *ScheduledServiceUseCase) Reschedule(ctx context.Context, id string, in RescheduleInput) (entities.ScheduledService, error) {
	in.ScheduledTime = strings.TrimSpace(in.ScheduledTime)
	if in.ScheduledDate.IsZero() {
		return entities.ScheduledService{}, errors.Wrap(ErrInvalidScheduledService, "scheduled_date is required")
	}
	if err := validateFields([]fieldRule{{"scheduled_time", in.ScheduledTime, "omitempty,datetime=15:04"}}); err != nil {
		return entities.ScheduledService{}, errors.Wrap(ErrInvalidScheduledService, err.Error())
	}

	return u.transition(ctx, id, []entities.ServiceStatus{entities.ServiceStatusScheduled}, func(s *entities.ScheduledService, _ time.Time) {
		s.ScheduledDate = in.ScheduledDate
		s.ScheduledTime = in.ScheduledTime
		if assignee := strings.TrimSpace(in.AssignedTo); assignee != "" {
			s.AssignedTo = assignee
		}
	})
}

func (u *ScheduledServiceUseCase) StartVisit(ctx context.Context, id string, loc VisitLocation) (entities.ScheduledService, error) {
	if (loc.Latitude == nil) != (loc.Longitude == nil) {
		return entities.ScheduledService{}, errors.Wrap(ErrInvalidScheduledService, "latitude and longitude go together")
	}
	if loc.Latitude != nil && (math.Abs(*loc.Latitude) > 90 || math.Abs(*loc.Longitude) > 180) {
		return entities.ScheduledService{}, errors.Wrap(ErrInvalidScheduledService, "coordinates out of range")
	}

	return u.transition(ctx, id, []entities.ServiceStatus{entities.ServiceStatusScheduled}, func(s *entities.ScheduledService, now time.Time) {
		s.Status = entities.ServiceStatusInProgress
		s.VisitStartedAt = &now
		s.VisitLatitude = loc.Latitude
		s.VisitLongitude = loc.Longitude
	})
}

// Complete closes a visit in progress. A client visit with a charge amount
// opens a charge for it unless nobody was home; a failure there is logged and
// leaves the visit completed without a charge.
func (u *ScheduledServiceUseCase) Complete(ctx context.Context, id string, in CompleteVisitInput) (entities.ScheduledService, error) {
	notes := strings.TrimSpace(in.Notes)
	if in.NoOneHome {
		notes = strings.TrimSpace(entities.NoOneHomeMarker + " " + notes)
	}

	done, err := u.transition(ctx, id, []entities.ServiceStatus{entities.ServiceStatusInProgress}, func(s *entities.ScheduledService, now time.Time) {
		s.Status = entities.ServiceStatusCompleted
		s.CompletedAt = &now
		s.CompletedNotes = notes
	})
	if err != nil || in.NoOneHome || done.ClientID == "" || !done.ChargeAmount.IsPositive() {
		return done, err
	}

	charge, err := openCharge(ctx, u.charges, u.balances, ChargeInput{
		ClientID:    done.ClientID,
		Description: visitChargeDescription(done),
		Amount:      done.ChargeAmount,
	}, u.now().UTC())
	if charge.ID == "" {
		logger.L.Errorf("[service][usecase] visit charge failed service_id=%s err=%v", done.ID, err)
		return done, nil
	}
	if err != nil {
		logger.L.Warnf("[service][usecase] visit charge without balance update service_id=%s charge_id=%s err=%v", done.ID, charge.ID, err)
	}

	done.ChargeID = charge.ID
	done.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, done, entities.ServiceStatusCompleted)
	if err != nil || updated.ID == "" {
		logger.L.Errorf("[service][usecase] linking visit charge failed service_id=%s charge_id=%s err=%v", done.ID, charge.ID, err)
		return done, nil
	}
	logger.L.Infof("[service][usecase] visit charged service_id=%s charge_id=%s amount=%s", done.ID, charge.ID, charge.Amount.StringFixed(2))
	return updated, nil
}

func visitChargeDescription(s entities.ScheduledService) string {
	return s.ServiceType.Label() + " " + s.ScheduledDate.String()
}

func (u *ScheduledServiceUseCase) Cancel(ctx context.Context, id, reason string) (entities.ScheduledService, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.ScheduledService{}, errors.Wrap(ErrInvalidScheduledService, "cancellation reason is required")
	}
	return u.transition(ctx, id, []entities.ServiceStatus{entities.ServiceStatusScheduled, entities.ServiceStatusInProgress}, func(s *entities.ScheduledService, now time.Time) {
		s.Status = entities.ServiceStatusCancelled
		s.CancellationReason = reason
		s.CancelledAt = &now
	})
}

// transition applies mutate to a visit whose status is one of from and stores
// it only if nobody moved the visit in between.
func (u *ScheduledServiceUseCase) transition(ctx context.Context, id string, from []entities.ServiceStatus, mutate func(*entities.ScheduledService, time.Time)) (entities.ScheduledService, error) {
	s, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.ScheduledService{}, err
	}
	if !lo.Contains(from, s.Status) {
		return entities.ScheduledService{}, errors.Wrapf(ErrServiceTransition, "service %s is %s", s.ID, s.Status)
	}

	current := s.Status
	now := u.now().UTC()
	mutate(&s, now)
	s.UpdatedAt = now
	updated, err := u.repo.Update(ctx, s, current)
	if err != nil {
		logger.L.Errorf("[service][usecase] update failed service_id=%s err=%v", s.ID, err)
		return entities.ScheduledService{}, err
	}
	if updated.ID == "" {
		return entities.ScheduledService{}, errors.Wrapf(ErrServiceTransition, "service %s changed concurrently", s.ID)
	}
	if updated.Status != current {
		metrics.ScheduledServices.WithLabelValues(string(updated.Status)).Inc()
	}
	logger.L.Infof("[service][usecase] service_id=%s status %s -> %s", updated.ID, current, updated.Status)
	return updated, nil
}

// Report lists the visits that were started, completed or cancelled in the
// window, newest first, with their stats. Without dates the window is the last
// week up to today.
func (u *ScheduledServiceUseCase) Report(ctx context.Context, filter VisitReportFilter) (VisitReport, error) {
	today := proration.DateOf(u.now().UTC())
	if filter.DateTo.IsZero() {
		filter.DateTo = today
	}
	if filter.DateFrom.IsZero() {
		filter.DateFrom = filter.DateTo.AddDays(-visitReportDays)
	}
	if filter.Status == entities.ServiceStatusScheduled {
		return VisitReport{}, errors.Wrap(ErrInvalidScheduledService, "the visits report excludes scheduled services")
	}

	services, err := u.List(ctx, filter.ServiceFilter)
	if err != nil {
		return VisitReport{}, err
	}
	services = lo.Filter(services, func(s entities.ScheduledService, _ int) bool {
		return s.Status != entities.ServiceStatusScheduled
	})

	names, err := u.personNames(ctx)
	if err != nil {
		return VisitReport{}, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	views := make([]VisitView, 0, len(services))
	for _, s := range services {
		v := VisitView{ScheduledService: s, IsProspect: s.ClientID == ""}
		if v.IsProspect {
			v.PersonName = names[s.ProspectID]
		} else {
			v.PersonName = names[s.ClientID]
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(s.Title), search) &&
			!strings.Contains(strings.ToLower(v.PersonName), search) &&
			!strings.Contains(strings.ToLower(s.AssignedTo), search) {
			continue
		}
		views = append(views, v)
	}

	slices.SortStableFunc(views, func(a, b VisitView) int {
		if c := b.ScheduledDate.Time().Compare(a.ScheduledDate.Time()); c != 0 {
			return c
		}
		return startedAt(b).Compare(startedAt(a))
	})
	return VisitReport{
		DateFrom: filter.DateFrom,
		DateTo:   filter.DateTo,
		Visits:   views,
		Stats:    visitStats(views),
	}, nil
}

func startedAt(v VisitView) time.Time {
	if v.VisitStartedAt == nil {
		return time.Time{}
	}
	return *v.VisitStartedAt
}

// personNames maps client and prospect ids to display names.
func (u *ScheduledServiceUseCase) personNames(ctx context.Context) (map[string]string, error) {
	clients, err := u.clients.List(ctx, "")
	if err != nil {
		return nil, err
	}
	prospects, err := u.prospects.List(ctx, "")
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(clients)+len(prospects))
	for _, c := range clients {
		names[c.ID] = c.FirstName + " " + c.LastNamePaterno
	}
	for _, p := range prospects {
		names[p.ID] = p.FirstName + " " + p.LastNamePaterno
	}
	return names, nil
}

func visitStats(views []VisitView) VisitStats {
	stats := VisitStats{Total: len(views)}
	var minutes []int
	for _, v := range views {
		if v.HasGPS() {
			stats.WithGPS++
		}
		if v.Status == entities.ServiceStatusCompleted {
			stats.Completed++
		}
		if strings.Contains(v.CompletedNotes, "[No había nadie") {
			stats.NoOneHome++
		}
		if m := v.VisitMinutes(); m >= 0 {
			minutes = append(minutes, m)
		}
	}
	if len(minutes) > 0 {
		stats.AverageVisitMinutes = int(math.Round(float64(lo.Sum(minutes)) / float64(len(minutes))))
	}
	return stats
}
