package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/domain/proration"
	mock_interfaces "isp_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type finalizeMocks struct {
	prospects *mock_interfaces.MockIProspectRepository
	changes   *mock_interfaces.MockIProspectChangeRepository
	clients   *mock_interfaces.MockIClientRepository
	billing   *mock_interfaces.MockIClientBillingRepository
	equipment *mock_interfaces.MockIEquipmentRepository
	charges   *mock_interfaces.MockIChargeRepository
	plans     *mock_interfaces.MockIServicePlanRepository
}

func newFinalizeUseCase(t *testing.T) (*FinalizeUseCase, finalizeMocks) {
	ctrl := gomock.NewController(t)
	m := finalizeMocks{
		prospects: mock_interfaces.NewMockIProspectRepository(ctrl),
		changes:   mock_interfaces.NewMockIProspectChangeRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
		billing:   mock_interfaces.NewMockIClientBillingRepository(ctrl),
		equipment: mock_interfaces.NewMockIEquipmentRepository(ctrl),
		charges:   mock_interfaces.NewMockIChargeRepository(ctrl),
		plans:     mock_interfaces.NewMockIServicePlanRepository(ctrl),
	}
	plans := NewServicePlanUseCase(m.plans, 0)
	uc := NewFinalizeUseCase(m.prospects, m.changes, m.clients, m.billing, m.equipment, m.charges, plans)
	uc.now = func() time.Time { return time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC) }
	return uc, m
}

func storedProspect() entities.Prospect {
	return entities.Prospect{
		ID: "pros-1",
		Contact: entities.Contact{
			FirstName:       "Juan",
			LastNamePaterno: "García",
			Phone1:          "5512345678",
			Street:          "Hidalgo",
			ExteriorNumber:  "12",
			Neighborhood:    "Centro",
			City:            "Toluca",
		},
		SSID:   "casa-juan",
		Status: entities.ProspectStatusPending,
	}
}

func finalizeInput() FinalizeInput {
	c := storedProspect().Contact
	c.FirstName = "Juan Carlos"
	c.PostalCode = "50000"
	return FinalizeInput{
		ProspectID:  "pros-1",
		Contact:     c,
		AntennaSSID: "casa-juan",
		AntennaIP:   "10.0.0.7",
		AntennaMAC:  "aa:bb:cc:dd:ee:ff",
		BillingTerms: BillingTerms{
			InstallationDate: proration.NewDate(2024, time.March, 15),
			BillingDay:       10,
			MonthlyFee:       decimal.NewFromInt(300),
			InstallationCost: decimal.NewFromInt(500),
			AdditionalCharges: []AdditionalCharge{
				{Description: "Cable extra", Amount: decimal.NewFromInt(50)},
			},
		},
		FinalizedBy: "staff-1",
	}
}

func TestFinalizeUseCase_Finalize_Success(t *testing.T) {
	uc, m := newFinalizeUseCase(t)
	in := finalizeInput()

	m.prospects.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
	m.prospects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) {
		if p.Status != entities.ProspectStatusFinalized || p.FinalizedAt == nil || p.FirstName != "Juan Carlos" || p.AntennaIP != "10.0.0.7" {
			t.Fatalf("unexpected prospect update: %+v", p)
		}
		return p, nil
	})
	m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) {
		if c.Status != entities.ClientStatusActive || c.ProspectID != "pros-1" || c.CreatedBy != "staff-1" {
			t.Fatalf("unexpected client: %+v", c)
		}
		return c, nil
	})
	m.changes.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, changes []entities.ProspectChange) error {
		labels := map[string]entities.ProspectChange{}
		for _, c := range changes {
			labels[c.FieldName] = c
		}
		if len(changes) != 3 {
			t.Fatalf("expected 3 changes, got %+v", changes)
		}
		if labels["Nombre"].OldValue != "Juan" || labels["Nombre"].NewValue != "Juan Carlos" {
			t.Fatalf("unexpected Nombre change: %+v", labels["Nombre"])
		}
		if _, ok := labels["Código Postal"]; !ok {
			t.Fatalf("missing Código Postal change")
		}
		if labels["IP Antena"].OldValue != "" || labels["IP Antena"].NewValue != "10.0.0.7" {
			t.Fatalf("unexpected IP Antena change: %+v", labels["IP Antena"])
		}
		return nil
	})
	m.equipment.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e entities.Equipment) (entities.Equipment, error) {
		if e.AntennaMAC != "AA:BB:CC:DD:EE:FF" {
			t.Fatalf("expected normalized MAC, got %q", e.AntennaMAC)
		}
		return e, nil
	})
	m.billing.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.ClientBilling) (entities.ClientBilling, error) {
		// 15 Mar -> 10 Apr: 26 days, 300*26/30 = 260.00; balance 260+500+300+50.
		if b.DaysCharged != 26 || !b.ProratedAmount.Equal(decimal.NewFromInt(260)) {
			t.Fatalf("unexpected proration: days=%d amount=%s", b.DaysCharged, b.ProratedAmount)
		}
		if b.FirstBillingDate != proration.NewDate(2024, time.April, 10) {
			t.Fatalf("unexpected first billing date %s", b.FirstBillingDate)
		}
		if !b.Balance.Equal(decimal.NewFromInt(1110)) || !b.AdditionalCharges.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("unexpected balance=%s additional=%s", b.Balance, b.AdditionalCharges)
		}
		return b, nil
	})
	var descriptions []string
	m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).Times(4).DoAndReturn(func(_ context.Context, c entities.Charge) (entities.Charge, error) {
		descriptions = append(descriptions, c.Description)
		return c, nil
	})

	res, err := uc.Finalize(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ChangesRecorded != 3 || len(res.Warnings) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
	want := []string{"Prorrateo 26 días", "Instalación", "Mensualidad Abril 2024", "Cable extra"}
	for i, d := range want {
		if descriptions[i] != d {
			t.Fatalf("charge %d: expected %q, got %q", i, d, descriptions[i])
		}
	}
}

func TestFinalizeUseCase_Finalize_PlanFeeWins(t *testing.T) {
	uc, m := newFinalizeUseCase(t)
	in := finalizeInput()
	in.ServicePlanID = "plan-1"
	in.MonthlyFee = decimal.NewFromInt(1)
	in.BillingDay = 15
	in.InstallationCost = decimal.Zero
	in.AdditionalCharges = nil

	m.prospects.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
	m.plans.EXPECT().GetByID(gomock.Any(), "plan-1").Return(entities.ServicePlan{ID: "plan-1", MonthlyFee: decimal.NewFromInt(450)}, nil)
	m.prospects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) { return p, nil })
	m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })
	m.changes.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(nil)
	m.equipment.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Equipment{}, nil)
	m.billing.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.ClientBilling) (entities.ClientBilling, error) {
		if b.ServicePlanID != "plan-1" || !b.MonthlyFee.Equal(decimal.NewFromInt(450)) {
			t.Fatalf("expected plan fee, got plan=%q fee=%s", b.ServicePlanID, b.MonthlyFee)
		}
		return b, nil
	})
	// Installed on the billing day: no proration charge, no installation charge.
	m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).DoAndReturn(func(_ context.Context, c entities.Charge) (entities.Charge, error) {
		if c.Description != "Mensualidad Marzo 2024" {
			t.Fatalf("unexpected charge %q", c.Description)
		}
		return c, nil
	})

	res, err := uc.Finalize(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Proration.DaysCharged != 0 || !res.Proration.ProratedAmount.IsZero() {
		t.Fatalf("expected no proration, got %+v", res.Proration)
	}
}

func TestFinalizeUseCase_Finalize_Errors(t *testing.T) {
	t.Run("billing day out of range", func(t *testing.T) {
		uc, _ := newFinalizeUseCase(t)
		in := finalizeInput()
		in.BillingDay = 31
		_, err := uc.Finalize(context.Background(), in)
		if !errors.Is(err, ErrInvalidFinalize) {
			t.Fatalf("expected ErrInvalidFinalize, got %v", err)
		}
	})

	t.Run("invalid antenna ip", func(t *testing.T) {
		uc, _ := newFinalizeUseCase(t)
		in := finalizeInput()
		in.AntennaIP = "300.1.1.1"
		_, err := uc.Finalize(context.Background(), in)
		if !errors.Is(err, ErrInvalidFinalize) {
			t.Fatalf("expected ErrInvalidFinalize, got %v", err)
		}
	})

	t.Run("negative fee", func(t *testing.T) {
		uc, _ := newFinalizeUseCase(t)
		in := finalizeInput()
		in.MonthlyFee = decimal.NewFromInt(-1)
		_, err := uc.Finalize(context.Background(), in)
		if !errors.Is(err, ErrInvalidFinalize) {
			t.Fatalf("expected ErrInvalidFinalize, got %v", err)
		}
	})

	t.Run("prospect not found", func(t *testing.T) {
		uc, m := newFinalizeUseCase(t)
		m.prospects.EXPECT().GetByID(gomock.Any(), "pros-1").Return(entities.Prospect{}, nil)
		_, err := uc.Finalize(context.Background(), finalizeInput())
		if !errors.Is(err, ErrProspectNotFound) {
			t.Fatalf("expected ErrProspectNotFound, got %v", err)
		}
	})

	t.Run("prospect already finalized", func(t *testing.T) {
		uc, m := newFinalizeUseCase(t)
		p := storedProspect()
		p.Status = entities.ProspectStatusFinalized
		m.prospects.EXPECT().GetByID(gomock.Any(), "pros-1").Return(p, nil)
		_, err := uc.Finalize(context.Background(), finalizeInput())
		if !errors.Is(err, ErrProspectNotPending) {
			t.Fatalf("expected ErrProspectNotPending, got %v", err)
		}
	})

	t.Run("client create fails", func(t *testing.T) {
		uc, m := newFinalizeUseCase(t)
		m.prospects.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
		m.prospects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) { return p, nil })
		m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Client{}, errors.New("db"))
		_, err := uc.Finalize(context.Background(), finalizeInput())
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestFinalizeUseCase_Finalize_PartialFailuresBecomeWarnings(t *testing.T) {
	uc, m := newFinalizeUseCase(t)
	m.prospects.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
	m.prospects.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) { return p, nil })
	m.clients.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Client) (entities.Client, error) { return c, nil })
	m.changes.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).Return(errors.New("history down"))
	m.equipment.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Equipment{}, nil)
	m.billing.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ClientBilling{}, errors.New("billing down"))
	m.charges.EXPECT().Create(gomock.Any(), gomock.Any()).Times(4).DoAndReturn(func(_ context.Context, c entities.Charge) (entities.Charge, error) { return c, nil })

	res, err := uc.Finalize(context.Background(), finalizeInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Client.ID == "" || res.ChangesRecorded != 0 || len(res.Warnings) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestFinalizeUseCase_PreviewProration(t *testing.T) {
	uc, _ := newFinalizeUseCase(t)
	preview, err := uc.PreviewProration(context.Background(), BillingTerms{
		InstallationDate: proration.NewDate(2024, time.March, 5),
		BillingDay:       10,
		MonthlyFee:       decimal.NewFromInt(300),
		InstallationCost: decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 5 -> 10 Mar: 5 days, 50.00; balance 50 + 200 + 300.
	if preview.Proration.DaysCharged != 5 || !preview.InitialBalance.Equal(decimal.NewFromInt(550)) {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	_, err = uc.PreviewProration(context.Background(), BillingTerms{BillingDay: 10})
	if !errors.Is(err, ErrInvalidFinalize) {
		t.Fatalf("expected ErrInvalidFinalize for missing date, got %v", err)
	}
}
