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

func TestServicePlanUseCase_GetByIDIsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIServicePlanRepository(ctrl)
	uc := NewServicePlanUseCase(repo, time.Minute)

	repo.EXPECT().GetByID(gomock.Any(), "plan-1").Return(entities.ServicePlan{ID: "plan-1", MonthlyFee: decimal.NewFromInt(300)}, nil).Times(1)

	for i := 0; i < 3; i++ {
		p, err := uc.GetByID(context.Background(), "plan-1")
		if err != nil || p.ID != "plan-1" {
			t.Fatalf("unexpected result err=%v plan=%+v", err, p)
		}
	}
}

func TestServicePlanUseCase_NotFoundIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIServicePlanRepository(ctrl)
	uc := NewServicePlanUseCase(repo, time.Minute)

	repo.EXPECT().GetByID(gomock.Any(), "plan-x").Return(entities.ServicePlan{}, nil).Times(2)
	for i := 0; i < 2; i++ {
		if _, err := uc.GetByID(context.Background(), "plan-x"); !errors.Is(err, ErrServicePlanNotFound) {
			t.Fatalf("expected ErrServicePlanNotFound, got %v", err)
		}
	}
}

func TestServicePlanUseCase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIServicePlanRepository(ctrl)
	uc := NewServicePlanUseCase(repo, 0)

	if _, err := uc.Create(context.Background(), " ", decimal.NewFromInt(1)); !errors.Is(err, ErrInvalidServicePlan) {
		t.Fatalf("expected ErrInvalidServicePlan, got %v", err)
	}
	if _, err := uc.Create(context.Background(), "10 Mbps", decimal.NewFromInt(-5)); !errors.Is(err, proration.ErrNegativeMonthlyFee) {
		t.Fatalf("expected ErrNegativeMonthlyFee, got %v", err)
	}

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.ServicePlan) (entities.ServicePlan, error) { return p, nil })
	p, err := uc.Create(context.Background(), "10 Mbps", decimal.RequireFromString("299.999"))
	if err != nil || !p.IsActive || p.MonthlyFee.String() != "300" {
		t.Fatalf("unexpected result err=%v plan=%+v", err, p)
	}
}

func TestServicePlanUseCase_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIServicePlanRepository(ctrl)
	uc := NewServicePlanUseCase(repo, 0)
	repo.EXPECT().List(gomock.Any()).Return([]entities.ServicePlan{{ID: "a", IsActive: true}, {ID: "b"}}, nil)

	res, err := uc.List(context.Background(), true)
	if err != nil || len(res) != 1 || res[0].ID != "a" {
		t.Fatalf("unexpected result err=%v res=%+v", err, res)
	}
}
