package usecase

import (
	"context"
	"fmt"
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

var ErrInvalidFinalize = errors.New("invalid finalize request")

const installationChargeDescription = "Instalación"

// Finalization steps, used as warning prefixes and metric labels.
const (
	stepChanges   = "change_history"
	stepEquipment = "equipment"
	stepBilling   = "billing"
	stepCharges   = "charges"
)

type AdditionalCharge struct {
	Description string
	Amount      decimal.Decimal
}

// BillingTerms are the commercial inputs of proration. ServicePlanID, when
// set, wins over MonthlyFee.
type BillingTerms struct {
	InstallationDate  proration.Date
	BillingDay        int
	ServicePlanID     string
	MonthlyFee        decimal.Decimal
	InstallationCost  decimal.Decimal
	AdditionalCharges []AdditionalCharge
}

type FinalizeInput struct {
	ProspectID string
	entities.Contact
	AntennaSSID string
	AntennaIP   string
	AntennaMAC  string
	Notes       string
	BillingTerms
	FinalizedBy string
}

type FinalizeResult struct {
	Client          entities.Client        `json:"client"`
	Billing         entities.ClientBilling `json:"billing"`
	Proration       proration.Result       `json:"proration"`
	ChangesRecorded int                    `json:"changes_recorded"`
	Warnings        []string               `json:"warnings"`
}

type ProrationPreview struct {
	Proration         proration.Result `json:"proration"`
	MonthlyFee        decimal.Decimal  `json:"monthly_fee"`
	InstallationCost  decimal.Decimal  `json:"installation_cost"`
	AdditionalCharges decimal.Decimal  `json:"additional_charges"`
	InitialBalance    decimal.Decimal  `json:"initial_balance"`
}

type IFinalizeUseCase interface {
	Finalize(ctx context.Context, in FinalizeInput) (FinalizeResult, error)
	PreviewProration(ctx context.Context, terms BillingTerms) (ProrationPreview, error)
}

// FinalizeUseCase converts a pending prospect into an active client with its
// billing ledger. Only the prospect update and the client insert are fatal;
// every later write is best effort and surfaces as a warning.
type FinalizeUseCase struct {
	prospects interfaces.IProspectRepository
	changes   interfaces.IProspectChangeRepository
	clients   interfaces.IClientRepository
	billing   interfaces.IClientBillingRepository
	equipment interfaces.IEquipmentRepository
	charges   interfaces.IChargeRepository
	plans     IServicePlanUseCase
	now       func() time.Time
}

var _ IFinalizeUseCase = (*FinalizeUseCase)(nil)

func NewFinalizeUseCase(
	prospects interfaces.IProspectRepository,
	changes interfaces.IProspectChangeRepository,
	clients interfaces.IClientRepository,
	billing interfaces.IClientBillingRepository,
	equipment interfaces.IEquipmentRepository,
	charges interfaces.IChargeRepository,
	plans IServicePlanUseCase,
) *FinalizeUseCase {
	return &FinalizeUseCase{
		prospects: prospects,
		changes:   changes,
		clients:   clients,
		billing:   billing,
		equipment: equipment,
		charges:   charges,
		plans:     plans,
		now:       time.Now,
	}
}

func (u *FinalizeUseCase) PreviewProration(ctx context.Context, terms BillingTerms) (ProrationPreview, error) {
	if err := validateTerms(terms); err != nil {
		return ProrationPreview{}, err
	}
	fee, _, err := u.resolveMonthlyFee(ctx, terms)
	if err != nil {
		return ProrationPreview{}, err
	}
	return buildPreview(terms, fee), nil
}

func buildPreview(terms BillingTerms, fee decimal.Decimal) ProrationPreview {
	res := proration.Calculate(terms.InstallationDate, terms.BillingDay, fee)
	amounts := lo.Map(terms.AdditionalCharges, func(c AdditionalCharge, _ int) decimal.Decimal { return c.Amount })
	return ProrationPreview{
		Proration:         res,
		MonthlyFee:        fee,
		InstallationCost:  terms.InstallationCost,
		AdditionalCharges: decimal.Sum(decimal.Zero, amounts...),
		InitialBalance:    proration.InitialBalance(res.ProratedAmount, terms.InstallationCost, fee, amounts...),
	}
}

func (u *FinalizeUseCase) Finalize(ctx context.Context, in FinalizeInput) (FinalizeResult, error) {
	in.ProspectID = strings.TrimSpace(in.ProspectID)
	in.Contact = normalizeContact(in.Contact)
	in.AntennaSSID = strings.TrimSpace(in.AntennaSSID)
	in.AntennaIP = strings.TrimSpace(in.AntennaIP)
	in.AntennaMAC = strings.TrimSpace(in.AntennaMAC)
	logger.L.Infof("[finalize][usecase] start prospect_id=%s installation_date=%s billing_day=%d", in.ProspectID, in.InstallationDate, in.BillingDay)

	if err := validateFinalize(in); err != nil {
		logger.L.Warnf("[finalize][usecase] invalid input prospect_id=%s err=%v", in.ProspectID, err)
		return FinalizeResult{}, err
	}

	prospect, err := u.prospects.GetByID(ctx, in.ProspectID)
	if err != nil {
		return FinalizeResult{}, err
	}
	if prospect.ID == "" {
		return FinalizeResult{}, ErrProspectNotFound
	}
	if prospect.Status != entities.ProspectStatusPending {
		logger.L.Warnf("[finalize][usecase] prospect not pending prospect_id=%s status=%s", prospect.ID, prospect.Status)
		return FinalizeResult{}, ErrProspectNotPending
	}

	fee, planID, err := u.resolveMonthlyFee(ctx, in.BillingTerms)
	if err != nil {
		return FinalizeResult{}, err
	}
	preview := buildPreview(in.BillingTerms, fee)
	res := preview.Proration
	logger.L.Infof("[finalize][usecase] proration prospect_id=%s fee=%s days=%d amount=%s first_billing_date=%s",
		prospect.ID, fee.StringFixed(2), res.DaysCharged, res.ProratedAmount.StringFixed(2), res.FirstBillingDate)

	now := u.now().UTC()

	original := prospect
	prospect.Contact = in.Contact
	prospect.SSID = in.AntennaSSID
	prospect.AntennaIP = in.AntennaIP
	if in.Notes != "" {
		prospect.Notes = strings.TrimSpace(in.Notes)
	}
	prospect.Status = entities.ProspectStatusFinalized
	prospect.FinalizedAt = &now
	prospect.UpdatedAt = now
	updated, err := u.prospects.Update(ctx, prospect)
	if err != nil {
		logger.L.Errorf("[finalize][usecase] prospect update failed prospect_id=%s err=%v", prospect.ID, err)
		return FinalizeResult{}, errors.Wrap(err, "finalize prospect")
	}
	if updated.ID == "" {
		return FinalizeResult{}, ErrProspectNotFound
	}

	client, err := u.clients.Create(ctx, entities.Client{
		ID:         uuid.NewString(),
		Contact:    in.Contact,
		ProspectID: prospect.ID,
		Status:     entities.ClientStatusActive,
		CreatedBy:  in.FinalizedBy,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		logger.L.Errorf("[finalize][usecase] client create failed prospect_id=%s err=%v", prospect.ID, err)
		return FinalizeResult{}, errors.Wrap(err, "create client")
	}

	out := FinalizeResult{Client: client, Proration: res, Warnings: []string{}}
	warn := func(step string, err error) {
		metrics.FinalizeWarnings.WithLabelValues(step).Inc()
		logger.L.Errorf("[finalize][usecase] %s failed prospect_id=%s client_id=%s err=%v", step, prospect.ID, client.ID, err)
		out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %v", step, err))
	}

	changes := diffProspect(original, in, client.ID, now)
	if len(changes) > 0 {
		if err := u.changes.CreateBatch(ctx, changes); err != nil {
			warn(stepChanges, err)
		} else {
			out.ChangesRecorded = len(changes)
		}
	}

	if _, err := u.equipment.Create(ctx, entities.Equipment{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		AntennaSSID: in.AntennaSSID,
		AntennaIP:   in.AntennaIP,
		AntennaMAC:  normalizeMAC(in.AntennaMAC),
		CreatedAt:   now,
	}); err != nil {
		warn(stepEquipment, err)
	}

	billing, err := u.billing.Create(ctx, entities.ClientBilling{
		ID:                uuid.NewString(),
		ClientID:          client.ID,
		ServicePlanID:     planID,
		MonthlyFee:        fee,
		InstallationCost:  in.InstallationCost,
		InstallationDate:  in.InstallationDate,
		FirstBillingDate:  res.FirstBillingDate,
		BillingDay:        in.BillingDay,
		ProratedAmount:    res.ProratedAmount,
		DaysCharged:       res.DaysCharged,
		AdditionalCharges: preview.AdditionalCharges,
		Balance:           preview.InitialBalance,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		warn(stepBilling, err)
	} else {
		out.Billing = billing
	}

	for _, c := range initialCharges(client.ID, in.BillingTerms, fee, res, now) {
		if _, err := u.charges.Create(ctx, c); err != nil {
			warn(stepCharges, errors.Wrapf(err, "charge %q", c.Description))
		}
	}

	metrics.ProspectsFinalized.Inc()
	metrics.ProratedDays.Observe(float64(res.DaysCharged))
	logger.L.Infof("[finalize][usecase] success prospect_id=%s client_id=%s changes=%d warnings=%d",
		prospect.ID, client.ID, out.ChangesRecorded, len(out.Warnings))
	return out, nil
}

// resolveMonthlyFee returns the fee to bill and the plan it came from, if any.
func (u *FinalizeUseCase) resolveMonthlyFee(ctx context.Context, terms BillingTerms) (decimal.Decimal, string, error) {
	planID := strings.TrimSpace(terms.ServicePlanID)
	if planID == "" {
		return terms.MonthlyFee, "", nil
	}
	if u.plans == nil {
		return decimal.Zero, "", errors.New("service plan use case not configured")
	}
	plan, err := u.plans.GetByID(ctx, planID)
	if err != nil {
		return decimal.Zero, "", err
	}
	return plan.MonthlyFee, plan.ID, nil
}

func validateTerms(t BillingTerms) error {
	if t.InstallationDate.IsZero() {
		return errors.Wrap(ErrInvalidFinalize, "installation_date is required")
	}
	if err := proration.ValidateBillingDay(t.BillingDay); err != nil {
		return errors.Wrap(ErrInvalidFinalize, err.Error())
	}
	if err := proration.ValidateMonthlyFee(t.MonthlyFee); err != nil {
		return errors.Wrap(ErrInvalidFinalize, err.Error())
	}
	if t.InstallationCost.IsNegative() {
		return errors.Wrap(ErrInvalidFinalize, "installation_cost must not be negative")
	}
	for _, c := range t.AdditionalCharges {
		if strings.TrimSpace(c.Description) == "" {
			return errors.Wrap(ErrInvalidFinalize, "additional charge description is required")
		}
		if !c.Amount.IsPositive() {
			return errors.Wrapf(ErrInvalidFinalize, "additional charge %q must be positive", c.Description)
		}
	}
	return nil
}

func validateFinalize(in FinalizeInput) error {
	if in.ProspectID == "" {
		return errors.Wrap(ErrInvalidFinalize, "prospect id is required")
	}
	if err := validateContact(in.Contact); err != nil {
		return errors.Wrap(ErrInvalidFinalize, err.Error())
	}
	if err := validateFields([]fieldRule{
		{"antenna_ip", in.AntennaIP, "ipv4opt"},
		{"antenna_mac", in.AntennaMAC, "mac12"},
	}); err != nil {
		return errors.Wrap(ErrInvalidFinalize, err.Error())
	}
	return validateTerms(in.BillingTerms)
}

// diffProspect compares the stored prospect with the edited data and returns
// one change per field that differs. Empty and missing values compare equal.
func diffProspect(original entities.Prospect, in FinalizeInput, clientID string, at time.Time) []entities.ProspectChange {
	type field struct {
		label         string
		before, after string
	}
	o, n := original.Contact, in.Contact
	fields := []field{
		{"Nombre", o.FirstName, n.FirstName},
		{"Apellido Paterno", o.LastNamePaterno, n.LastNamePaterno},
		{"Apellido Materno", o.LastNameMaterno, n.LastNameMaterno},
		{"Teléfono 1", o.Phone1, n.Phone1},
		{"Teléfono 2", o.Phone2, n.Phone2},
		{"Teléfono Firmante", o.Phone3, n.Phone3},
		{"Calle", o.Street, n.Street},
		{"Número Exterior", o.ExteriorNumber, n.ExteriorNumber},
		{"Número Interior", o.InteriorNumber, n.InteriorNumber},
		{"Colonia", o.Neighborhood, n.Neighborhood},
		{"Ciudad", o.City, n.City},
		{"Código Postal", o.PostalCode, n.PostalCode},
		{"SSID", original.SSID, in.AntennaSSID},
		{"IP Antena", original.AntennaIP, in.AntennaIP},
	}
	changed := lo.Filter(fields, func(f field, _ int) bool {
		return strings.TrimSpace(f.before) != strings.TrimSpace(f.after)
	})
	return lo.Map(changed, func(f field, _ int) entities.ProspectChange {
		return entities.ProspectChange{
			ID:         uuid.NewString(),
			ProspectID: original.ID,
			ClientID:   clientID,
			FieldName:  f.label,
			OldValue:   strings.TrimSpace(f.before),
			NewValue:   strings.TrimSpace(f.after),
			ChangedBy:  in.FinalizedBy,
			CreatedAt:  at,
		}
	})
}

// initialCharges lists the receivables opened at finalization, all due on the
// first billing date: proration, installation, the first full month and any
// additional charges.
func initialCharges(clientID string, terms BillingTerms, fee decimal.Decimal, res proration.Result, at time.Time) []entities.Charge {
	due := res.FirstBillingDate
	charge := func(description string, amount decimal.Decimal) entities.Charge {
		return entities.Charge{
			ID:          uuid.NewString(),
			ClientID:    clientID,
			Description: description,
			Amount:      amount,
			Status:      entities.ChargeStatusPending,
			DueDate:     due,
			CreatedAt:   at,
		}
	}

	var out []entities.Charge
	if res.ProratedAmount.IsPositive() {
		out = append(out, charge(fmt.Sprintf("Prorrateo %d días", res.DaysCharged), res.ProratedAmount))
	}
	if terms.InstallationCost.IsPositive() {
		out = append(out, charge(installationChargeDescription, terms.InstallationCost))
	}
	if fee.IsPositive() {
		out = append(out, charge(entities.MonthlyChargeDescription(due.Year, due.Month), fee))
	}
	for _, c := range terms.AdditionalCharges {
		out = append(out, charge(strings.TrimSpace(c.Description), c.Amount))
	}
	return out
}

func normalizeMAC(s string) string {
	if s == "" {
		return ""
	}
	hex := strings.ToUpper(strings.NewReplacer(":", "", "-", "").Replace(s))
	return strings.Join(lo.ChunkString(hex, 2), ":")
}
