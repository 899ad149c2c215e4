package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	"isp_backoffice/internal/usecase/interfaces"
	mock_interfaces "isp_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	repo      *mock_interfaces.MockIScheduledServiceRepository
	clients   *mock_interfaces.MockIClientRepository
	prospects *mock_interfaces.MockIProspectRepository
	charges   *mock_interfaces.MockIChargeRepository
	billing   *mock_interfaces.MockIClientBillingRepository
}

var serviceNow = time.Date(2024, 5, 6, 16, 0, 0, 0, time.UTC)

func newScheduledServiceUseCase(t *testing.T) (*ScheduledServiceUseCase, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:      mock_interfaces.NewMockIScheduledServiceRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		prospects: mock_interfaces.NewMockIProspectRepository(ctrl),
		charges:   mock_interfaces.NewMockIChargeRepository(ctrl),
		billing:   mock_interfaces.NewMockIClientBillingRepository(ctrl),
	}
	uc := NewScheduledServiceUseCase(m.repo, m.clients, m.prospects, m.charges, m.billing, 3)
	uc.now = func() time.Time { return serviceNow }
	return uc, m
}

func repairVisit(status entities.ServiceStatus) entities.ScheduledService {
	return entities.ScheduledService{
		ID:            "svc-1",
		ClientID:      "cli-1",
		AssignedTo:    "tech-1",
		ServiceType:   entities.ServiceTypeRepair,
		Status:        status,
		Title:         "Antena sin señal",
		ScheduledDate: proration.NewDate(2024, time.May, 6),
		ScheduledTime: "09:30",
		ChargeAmount:  decimal.NewFromInt(150),
	}
}

func echoUpdate(t *testing.T, m serviceMocks, from entities.ServiceStatus, check func(entities.ScheduledService)) {
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), from).DoAndReturn(
		func(_ context.Context, s entities.ScheduledService, _ entities.ServiceStatus) (entities.ScheduledService, error) {
			if check != nil {
				check(s)
			}
			return s, nil
		},
	)
}

func TestScheduledServiceUseCase_Schedule(t *testing.T) {
	valid := ScheduleServiceInput{
		ClientID:      "cli-1",
		AssignedTo:    "tech-1",
		ServiceType:   entities.ServiceTypeInstallation,
		Title:         "Instalación antena",
		ScheduledDate: proration.NewDate(2024, time.May, 8),
		ScheduledTime: "10:00",
	}

	rejections := []struct {
		name   string
		mutate func(*ScheduleServiceInput)
	}{
		{"no client or prospect", func(in *ScheduleServiceInput) { in.ClientID = "" }},
		{"both client and prospect", func(in *ScheduleServiceInput) { in.ProspectID = "pro-1" }},
		{"unknown type", func(in *ScheduleServiceInput) { in.ServiceType = "painting" }},
		{"missing date", func(in *ScheduleServiceInput) { in.ScheduledDate = proration.Date{} }},
		{"missing technician", func(in *ScheduleServiceInput) { in.AssignedTo = " " }},
		{"bad time", func(in *ScheduleServiceInput) { in.ScheduledTime = "25:00" }},
		{"negative duration", func(in *ScheduleServiceInput) { in.EstimatedDuration = -30 }},
		{"negative charge", func(in *ScheduleServiceInput) { in.ChargeAmount = decimal.NewFromInt(-1) }},
		{"prospect visit with charge", func(in *ScheduleServiceInput) {
			in.ClientID, in.ProspectID = "", "pro-1"
			in.ChargeAmount = decimal.NewFromInt(100)
		}},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			uc, _ := newScheduledServiceUseCase(t)
			in := valid
			tc.mutate(&in)
			_, err := uc.Schedule(context.Background(), in)
			if !errors.Is(err, ErrInvalidScheduledService) {
				t.Fatalf("expected ErrInvalidScheduledService, got %v", err)
			}
		})
	}

	t.Run("client must exist", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{}, nil)

		_, err := uc.Schedule(context.Background(), valid)
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("prospect must exist", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.prospects.EXPECT().GetByID(gomock.Any(), "pro-1").Return(entities.Prospect{}, nil)
		in := valid
		in.ClientID, in.ProspectID = "", "pro-1"

		_, err := uc.Schedule(context.Background(), in)
		if !errors.Is(err, ErrProspectNotFound) {
			t.Fatalf("expected ErrProspectNotFound, got %v", err)
		}
	})

	t.Run("stores scheduled visit", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.clients.EXPECT().GetByID(gomock.Any(), "cli-1").Return(entities.Client{ID: "cli-1"}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.ScheduledService) (entities.ScheduledService, error) {
				if s.ID == "" || s.Status != entities.ServiceStatusScheduled || s.CreatedBy != "staff-1" {
					t.Fatalf("unexpected visit: %+v", s)
				}
				if !s.CreatedAt.Equal(serviceNow) || s.ScheduledTime != "10:00" {
					t.Fatalf("unexpected visit schedule: %+v", s)
				}
				return s, nil
			},
		)
		in := valid
		in.CreatedBy = "staff-1"
		if _, err := uc.Schedule(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestScheduledServiceUseCase_List(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		uc, _ := newScheduledServiceUseCase(t)
		_, err := uc.List(context.Background(), ServiceFilter{Status: "done"})
		if !errors.Is(err, ErrInvalidScheduledService) {
			t.Fatalf("expected ErrInvalidScheduledService, got %v", err)
		}
	})

	t.Run("orders by day and slot", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		from, to := proration.NewDate(2024, time.May, 6), proration.NewDate(2024, time.May, 12)
		m.repo.EXPECT().List(gomock.Any(), interfaces.ScheduledServiceQuery{From: from, To: to, AssignedTo: "tech-1"}).Return([]entities.ScheduledService{
			{ID: "late", ScheduledDate: proration.NewDate(2024, time.May, 7), ScheduledTime: "07:00", ServiceType: entities.ServiceTypeRepair},
			{ID: "noon", ScheduledDate: proration.NewDate(2024, time.May, 6), ScheduledTime: "12:00", ServiceType: entities.ServiceTypeRepair},
			{ID: "untimed", ScheduledDate: proration.NewDate(2024, time.May, 6), ServiceType: entities.ServiceTypeRepair},
			{ID: "other-type", ScheduledDate: proration.NewDate(2024, time.May, 6), ServiceType: entities.ServiceTypeMaintenance},
		}, nil)

		got, err := uc.List(context.Background(), ServiceFilter{DateFrom: from, DateTo: to, AssignedTo: " tech-1 ", ServiceType: entities.ServiceTypeRepair})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID != "untimed" || got[1].ID != "noon" || got[2].ID != "late" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})
}

func TestScheduledServiceUseCase_Lifecycle(t *testing.T) {
	t.Run("start records check-in", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		lat, lng := 19.28, -99.65
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusScheduled), nil)
		echoUpdate(t, m, entities.ServiceStatusScheduled, func(s entities.ScheduledService) {
			if s.Status != entities.ServiceStatusInProgress || s.VisitStartedAt == nil || !s.VisitStartedAt.Equal(serviceNow) || !s.HasGPS() {
				t.Fatalf("unexpected visit: %+v", s)
			}
		})

		if _, err := uc.StartVisit(context.Background(), "svc-1", VisitLocation{Latitude: &lat, Longitude: &lng}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("start rejects half a location", func(t *testing.T) {
		uc, _ := newScheduledServiceUseCase(t)
		lat := 19.28
		_, err := uc.StartVisit(context.Background(), "svc-1", VisitLocation{Latitude: &lat})
		if !errors.Is(err, ErrInvalidScheduledService) {
			t.Fatalf("expected ErrInvalidScheduledService, got %v", err)
		}
	})

	t.Run("complete requires a visit in progress", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusScheduled), nil)

		_, err := uc.Complete(context.Background(), "svc-1", CompleteVisitInput{})
		if !errors.Is(err, ErrServiceTransition) {
			t.Fatalf("expected ErrServiceTransition, got %v", err)
		}
	})

	t.Run("concurrent change is a transition error", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusScheduled), nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.ServiceStatusScheduled).Return(entities.ScheduledService{}, nil)

		_, err := uc.Cancel(context.Background(), "svc-1", "cliente no disponible")
		if !errors.Is(err, ErrServiceTransition) {
			t.Fatalf("expected ErrServiceTransition, got %v", err)
		}
	})

	t.Run("complete charges the client visit", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusInProgress), nil)
		echoUpdate(t, m, entities.ServiceStatusInProgress, func(s entities.ScheduledService) {
			if s.Status != entities.ServiceStatusCompleted || s.CompletedNotes != "cambio de conector" {
				t.Fatalf("unexpected visit: %+v", s)
			}
		})
		m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Charge) (entities.Charge, error) {
				if c.ClientID != "cli-1" || c.Description != "Reparación 2024-05-06" || !c.Amount.Equal(decimal.NewFromInt(150)) {
					t.Fatalf("unexpected charge: %+v", c)
				}
				return c, nil
			},
		)
		expectBalanceAdjust(m.billing, "cli-1", "0", "150")
		echoUpdate(t, m, entities.ServiceStatusCompleted, func(s entities.ScheduledService) {
			if s.ChargeID == "" {
				t.Fatalf("charge must be linked to the visit")
			}
		})

		got, err := uc.Complete(context.Background(), "svc-1", CompleteVisitInput{Notes: " cambio de conector "})
		if err != nil || got.ChargeID == "" {
			t.Fatalf("unexpected result err=%v visit=%+v", err, got)
		}
	})

	t.Run("nobody home is not charged", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusInProgress), nil)
		echoUpdate(t, m, entities.ServiceStatusInProgress, func(s entities.ScheduledService) {
			if s.CompletedNotes != entities.NoOneHomeMarker+" se dejó aviso" {
				t.Fatalf("unexpected notes %q", s.CompletedNotes)
			}
		})
		m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		if _, err := uc.Complete(context.Background(), "svc-1", CompleteVisitInput{Notes: "se dejó aviso", NoOneHome: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("charge failure keeps the visit completed", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusInProgress), nil)
		echoUpdate(t, m, entities.ServiceStatusInProgress, nil)
		m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Charge{}, errors.New("ddb-put"))

		got, err := uc.Complete(context.Background(), "svc-1", CompleteVisitInput{})
		if err != nil || got.Status != entities.ServiceStatusCompleted || got.ChargeID != "" {
			t.Fatalf("unexpected result err=%v visit=%+v", err, got)
		}
	})

	t.Run("reschedule moves date and technician", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusScheduled), nil)
		echoUpdate(t, m, entities.ServiceStatusScheduled, func(s entities.ScheduledService) {
			if s.ScheduledDate != proration.NewDate(2024, time.May, 9) || s.ScheduledTime != "" || s.AssignedTo != "tech-2" {
				t.Fatalf("unexpected visit: %+v", s)
			}
		})

		if _, err := uc.Reschedule(context.Background(), "svc-1", RescheduleInput{ScheduledDate: proration.NewDate(2024, time.May, 9), AssignedTo: "tech-2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cancelled visits stay cancelled", func(t *testing.T) {
		uc, m := newScheduledServiceUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(repairVisit(entities.ServiceStatusCancelled), nil)

		_, err := uc.Cancel(context.Background(), "svc-1", "duplicado")
		if !errors.Is(err, ErrServiceTransition) {
			t.Fatalf("expected ErrServiceTransition, got %v", err)
		}
	})
}

func TestScheduledServiceUseCase_Report(t *testing.T) {
	uc, m := newScheduledServiceUseCase(t)
	at := func(h, min int) *time.Time {
		v := time.Date(2024, 5, 3, h, min, 0, 0, time.UTC)
		return &v
	}
	lat, lng := 19.28, -99.65

	m.repo.EXPECT().List(gomock.Any(), interfaces.ScheduledServiceQuery{
		From: proration.NewDate(2024, time.April, 29),
		To:   proration.NewDate(2024, time.May, 6),
	}).Return([]entities.ScheduledService{
		{ID: "s1", ClientID: "cli-1", Status: entities.ServiceStatusCompleted, Title: "Reparación", ScheduledDate: proration.NewDate(2024, time.May, 3),
			VisitStartedAt: at(10, 0), CompletedAt: at(10, 40), VisitLatitude: &lat, VisitLongitude: &lng},
		{ID: "s2", ProspectID: "pro-1", Status: entities.ServiceStatusCompleted, Title: "Instalación", ScheduledDate: proration.NewDate(2024, time.May, 3),
			VisitStartedAt: at(12, 0), CompletedAt: at(12, 21), CompletedNotes: entities.NoOneHomeMarker},
		{ID: "s3", ClientID: "cli-1", Status: entities.ServiceStatusCancelled, Title: "Revisión", ScheduledDate: proration.NewDate(2024, time.May, 1)},
		{ID: "s4", ClientID: "cli-1", Status: entities.ServiceStatusScheduled, Title: "Futuro", ScheduledDate: proration.NewDate(2024, time.May, 6)},
	}, nil)
	m.clients.EXPECT().List(gomock.Any(), entities.ClientStatus("")).Return([]entities.Client{
		{ID: "cli-1", Contact: entities.Contact{FirstName: "Ana", LastNamePaterno: "López"}},
	}, nil)
	m.prospects.EXPECT().List(gomock.Any(), entities.ProspectStatus("")).Return([]entities.Prospect{
		{ID: "pro-1", Contact: entities.Contact{FirstName: "Luis", LastNamePaterno: "Pérez"}},
	}, nil)

	got, err := uc.Report(context.Background(), VisitReportFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Visits) != 3 || got.Visits[0].ID != "s2" || got.Visits[1].ID != "s1" || got.Visits[2].ID != "s3" {
		t.Fatalf("unexpected visits: %+v", got.Visits)
	}
	if !got.Visits[0].IsProspect || got.Visits[0].PersonName != "Luis Pérez" || got.Visits[1].PersonName != "Ana López" {
		t.Fatalf("unexpected names: %+v", got.Visits)
	}
	want := VisitStats{Total: 3, WithGPS: 1, Completed: 2, NoOneHome: 1, AverageVisitMinutes: 31}
	if got.Stats != want {
		t.Fatalf("expected stats %+v, got %+v", want, got.Stats)
	}

	t.Run("rejects scheduled status", func(t *testing.T) {
		uc, _ := newScheduledServiceUseCase(t)
		_, err := uc.Report(context.Background(), VisitReportFilter{ServiceFilter: ServiceFilter{Status: entities.ServiceStatusScheduled}})
		if !errors.Is(err, ErrInvalidScheduledService) {
			t.Fatalf("expected ErrInvalidScheduledService, got %v", err)
		}
	})
}
