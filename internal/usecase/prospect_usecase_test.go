package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"isp_backoffice/internal/domain/entities"
	mock_interfaces "isp_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newProspectUseCase(t *testing.T) (*ProspectUseCase, *mock_interfaces.MockIProspectRepository, *mock_interfaces.MockIProspectChangeRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIProspectRepository(ctrl)
	changes := mock_interfaces.NewMockIProspectChangeRepository(ctrl)
	uc := NewProspectUseCase(repo, changes)
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return uc, repo, changes
}

func TestProspectUseCase_Create(t *testing.T) {
	t.Run("missing required fields", func(t *testing.T) {
		uc, _, _ := newProspectUseCase(t)
		_, err := uc.Create(context.Background(), ProspectInput{Contact: entities.Contact{FirstName: "Ana"}})
		if !errors.Is(err, ErrInvalidProspect) {
			t.Fatalf("expected ErrInvalidProspect, got %v", err)
		}
	})

	t.Run("bad phone", func(t *testing.T) {
		uc, _, _ := newProspectUseCase(t)
		in := ProspectInput{Contact: storedProspect().Contact}
		in.Phone2 = "12345"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidProspect) {
			t.Fatalf("expected ErrInvalidProspect, got %v", err)
		}
	})

	t.Run("stores pending prospect", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		in := ProspectInput{Contact: storedProspect().Contact, CreatedBy: "staff-1"}
		in.FirstName = "  Juan "
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) {
			if p.ID == "" || p.Status != entities.ProspectStatusPending || p.FirstName != "Juan" || p.Phone1Country != "MX" {
				t.Fatalf("unexpected prospect: %+v", p)
			}
			return p, nil
		})
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProspectUseCase_Lifecycle(t *testing.T) {
	t.Run("cancel requires pending", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		p := storedProspect()
		p.Status = entities.ProspectStatusCancelled
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(p, nil)
		_, err := uc.Cancel(context.Background(), "pros-1", "no coverage")
		if !errors.Is(err, ErrProspectNotPending) {
			t.Fatalf("expected ErrProspectNotPending, got %v", err)
		}
	})

	t.Run("cancel sets reason and timestamp", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) {
			return p, nil
		})
		res, err := uc.Cancel(context.Background(), "pros-1", " no coverage ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.ProspectStatusCancelled || res.CancellationReason != "no coverage" || res.CancelledAt == nil {
			t.Fatalf("unexpected prospect: %+v", res)
		}
	})

	t.Run("reactivate clears cancellation", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		p := storedProspect()
		at := time.Now()
		p.Status = entities.ProspectStatusCancelled
		p.CancellationReason = "x"
		p.CancelledAt = &at
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(p, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Prospect) (entities.Prospect, error) {
			return p, nil
		})
		res, err := uc.Reactivate(context.Background(), "pros-1")
		if err != nil || res.Status != entities.ProspectStatusPending || res.CancelledAt != nil || res.CancellationReason != "" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("reactivate requires cancelled", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
		_, err := uc.Reactivate(context.Background(), "pros-1")
		if !errors.Is(err, ErrProspectNotCancelled) {
			t.Fatalf("expected ErrProspectNotCancelled, got %v", err)
		}
	})
}

func TestProspectUseCase_Delete(t *testing.T) {
	t.Run("finalized cannot be deleted", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		p := storedProspect()
		p.Status = entities.ProspectStatusFinalized
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(p, nil)
		if err := uc.Delete(context.Background(), "pros-1"); !errors.Is(err, ErrProspectFinalized) {
			t.Fatalf("expected ErrProspectFinalized, got %v", err)
		}
	})

	t.Run("history goes first", func(t *testing.T) {
		uc, repo, changes := newProspectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
		gomock.InOrder(
			changes.EXPECT().DeleteByProspectID(gomock.Any(), "pros-1").Return(nil),
			repo.EXPECT().Delete(gomock.Any(), "pros-1").Return(nil),
		)
		if err := uc.Delete(context.Background(), "pros-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("history failure keeps prospect", func(t *testing.T) {
		uc, repo, changes := newProspectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
		changes.EXPECT().DeleteByProspectID(gomock.Any(), "pros-1").Return(errors.New("db"))
		if err := uc.Delete(context.Background(), "pros-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProspectUseCase_ListAndHistory(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc, _, _ := newProspectUseCase(t)
		if _, err := uc.List(context.Background(), "archived"); !errors.Is(err, ErrInvalidProspect) {
			t.Fatalf("expected ErrInvalidProspect, got %v", err)
		}
	})

	t.Run("history of missing prospect", func(t *testing.T) {
		uc, repo, _ := newProspectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "pros-9").Return(entities.Prospect{}, nil)
		if _, err := uc.History(context.Background(), "pros-9"); !errors.Is(err, ErrProspectNotFound) {
			t.Fatalf("expected ErrProspectNotFound, got %v", err)
		}
	})

	t.Run("history lists changes", func(t *testing.T) {
		uc, repo, changes := newProspectUseCase(t)
		repo.EXPECT().GetByID(gomock.Any(), "pros-1").Return(storedProspect(), nil)
		changes.EXPECT().ListByProspectID(gomock.Any(), "pros-1").Return([]entities.ProspectChange{{ID: "ch-1", FieldName: "Nombre"}}, nil)
		res, err := uc.History(context.Background(), "pros-1")
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}
