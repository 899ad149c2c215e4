package usecase

import (
	"context"
	"strings"
	"time"

	"isp_backoffice/internal/domain/entities"
	"isp_backoffice/internal/infrastructure/logger"
	"isp_backoffice/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

var (
	ErrProspectNotFound     = errors.New("prospect not found")
	ErrInvalidProspect      = errors.New("invalid prospect")
	ErrProspectNotPending   = errors.New("prospect is not pending")
	ErrProspectNotCancelled = errors.New("prospect is not cancelled")
	ErrProspectFinalized    = errors.New("finalized prospects cannot be deleted")
)

// ProspectInput carries the editable data of a prospect.
type ProspectInput struct {
	entities.Contact
	SSID      string
	AntennaIP string
	Notes     string
	CreatedBy string
}

type IProspectUseCase interface {
	Create(ctx context.Context, in ProspectInput) (entities.Prospect, error)
	GetByID(ctx context.Context, id string) (entities.Prospect, error)
	List(ctx context.Context, status entities.ProspectStatus) ([]entities.Prospect, error)
	Cancel(ctx context.Context, id, reason string) (entities.Prospect, error)
	Reactivate(ctx context.Context, id string) (entities.Prospect, error)
	Delete(ctx context.Context, id string) error
	History(ctx context.Context, id string) ([]entities.ProspectChange, error)
}

type ProspectUseCase struct {
	repo        interfaces.IProspectRepository
	changesRepo interfaces.IProspectChangeRepository
	now         func() time.Time
}

var _ IProspectUseCase = (*ProspectUseCase)(nil)

func NewProspectUseCase(repo interfaces.IProspectRepository, changesRepo interfaces.IProspectChangeRepository) *ProspectUseCase {
	return &ProspectUseCase{repo: repo, changesRepo: changesRepo, now: time.Now}
}

func (u *ProspectUseCase) Create(ctx context.Context, in ProspectInput) (entities.Prospect, error) {
	in.Contact = normalizeContact(in.Contact)
	if err := validateContact(in.Contact); err != nil {
		return entities.Prospect{}, errors.Wrap(ErrInvalidProspect, err.Error())
	}

	now := u.now().UTC()
	p := entities.Prospect{
		ID:        uuid.NewString(),
		Contact:   in.Contact,
		SSID:      strings.TrimSpace(in.SSID),
		AntennaIP: strings.TrimSpace(in.AntennaIP),
		Notes:     strings.TrimSpace(in.Notes),
		Status:    entities.ProspectStatusPending,
		CreatedBy: in.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logger.L.Errorf("[prospect][usecase] create failed err=%v", err)
		return entities.Prospect{}, err
	}
	logger.L.Infof("[prospect][usecase] created prospect_id=%s city=%q", created.ID, created.City)
	return created, nil
}

func (u *ProspectUseCase) GetByID(ctx context.Context, id string) (entities.Prospect, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Prospect{}, ErrProspectNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Prospect{}, err
	}
	if p.ID == "" {
		return entities.Prospect{}, ErrProspectNotFound
	}
	return p, nil
}

// List returns prospects with the given status, or all of them when status is empty.
func (u *ProspectUseCase) List(ctx context.Context, status entities.ProspectStatus) ([]entities.Prospect, error) {
	switch status {
	case "", entities.ProspectStatusPending, entities.ProspectStatusFinalized, entities.ProspectStatusCancelled:
	default:
		return nil, errors.Wrapf(ErrInvalidProspect, "unknown status %q", status)
	}
	return u.repo.List(ctx, status)
}

func (u *ProspectUseCase) Cancel(ctx context.Context, id, reason string) (entities.Prospect, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Prospect{}, err
	}
	if p.Status != entities.ProspectStatusPending {
		return entities.Prospect{}, ErrProspectNotPending
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Prospect{}, errors.Wrap(ErrInvalidProspect, "cancellation reason is required")
	}

	now := u.now().UTC()
	p.Status = entities.ProspectStatusCancelled
	p.CancellationReason = reason
	p.CancelledAt = &now
	p.UpdatedAt = now
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Prospect{}, err
	}
	if updated.ID == "" {
		return entities.Prospect{}, ErrProspectNotFound
	}
	logger.L.Infof("[prospect][usecase] cancelled prospect_id=%s", p.ID)
	return updated, nil
}

func (u *ProspectUseCase) Reactivate(ctx context.Context, id string) (entities.Prospect, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Prospect{}, err
	}
	if p.Status != entities.ProspectStatusCancelled {
		return entities.Prospect{}, ErrProspectNotCancelled
	}

	p.Status = entities.ProspectStatusPending
	p.CancellationReason = ""
	p.CancelledAt = nil
	p.UpdatedAt = u.now().UTC()
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Prospect{}, err
	}
	if updated.ID == "" {
		return entities.Prospect{}, ErrProspectNotFound
	}
	logger.L.Infof("[prospect][usecase] reactivated prospect_id=%s", p.ID)
	return updated, nil
}

// Delete removes a prospect and its change history. History goes first so a
// failure never leaves orphaned rows pointing at a missing prospect.
func (u *ProspectUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.Status == entities.ProspectStatusFinalized {
		return ErrProspectFinalized
	}
	if err := u.changesRepo.DeleteByProspectID(ctx, p.ID); err != nil {
		logger.L.Errorf("[prospect][usecase] delete history failed prospect_id=%s err=%v", p.ID, err)
		return err
	}
	if err := u.repo.Delete(ctx, p.ID); err != nil {
		logger.L.Errorf("[prospect][usecase] delete failed prospect_id=%s err=%v", p.ID, err)
		return err
	}
	logger.L.Infof("[prospect][usecase] deleted prospect_id=%s", p.ID)
	return nil
}

func (u *ProspectUseCase) History(ctx context.Context, id string) ([]entities.ProspectChange, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.changesRepo.ListByProspectID(ctx, p.ID)
}
