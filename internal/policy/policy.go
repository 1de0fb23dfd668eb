// Package policy enforces the payment value rules: amount bounds and the
// dynamic installment cap derived from the amount.
package policy

import (
	"context"

	"github.com/paybr/cielo_facade/internal/result"
)

// Rules carries the monetary thresholds, all in minor currency units
// (centavos).
type Rules struct {
	MinAmount           int64
	MaxAmount           int64
	MaxInstallments     int
	MinInstallmentValue int64
}

// DefaultRules is the current house policy: R$ 1,00 minimum, R$ 10.000,00
// maximum, up to 12 installments of at least R$ 10,00 each.
var DefaultRules = Rules{
	MinAmount:           100,
	MaxAmount:           1_000_000,
	MaxInstallments:     12,
	MinInstallmentValue: 1000,
}

// Source supplies the rules in force. Per-merchant rules live in the
// database; a static source serves the defaults.
type Source interface {
	Rules(ctx context.Context) (Rules, error)
}

// StaticSource always returns the same rule set.
type StaticSource struct {
	rules Rules
}

// NewStaticSource builds a source serving fixed rules.
func NewStaticSource(rules Rules) StaticSource {
	return StaticSource{rules: rules}
}

// Rules returns the configured rule set.
func (s StaticSource) Rules(context.Context) (Rules, error) {
	return s.rules, nil
}

// Validator applies the payment value rules.
type Validator struct {
	source Source
}

// NewValidator builds a validator over the given rules source. A nil
// source falls back to the default rules.
func NewValidator(source Source) *Validator {
	if source == nil {
		source = NewStaticSource(DefaultRules)
	}
	return &Validator{source: source}
}

// ValidatedValues carries an amount/installments pair that passed the
// policy.
type ValidatedValues struct {
	Amount       int64
	Installments int
}

func (v *Validator) rules(ctx context.Context) (Rules, error) {
	return v.source.Rules(ctx)
}

// ValidateAmount checks the amount against the configured bounds. The
// message names the bound in major currency units.
func (v *Validator) ValidateAmount(ctx context.Context, amount int64) result.Result[int64] {
	rules, err := v.rules(ctx)
	if err != nil {
		return result.Internal[int64]("Erro interno: regras de pagamento indisponíveis")
	}

	if amount < rules.MinAmount {
		return result.Failf[int64](result.KindValidationError, 400,
			"Valor mínimo para pagamento é R$ %.2f", float64(rules.MinAmount)/100)
	}
	if amount > rules.MaxAmount {
		return result.Failf[int64](result.KindValidationError, 400,
			"Valor máximo para pagamento é R$ %.2f", float64(rules.MaxAmount)/100)
	}
	return result.OK(amount)
}

// MaxInstallmentsFor computes the installment cap for an amount: the
// amount divided by the minimum installment value, bounded by the global
// maximum.
func (v *Validator) MaxInstallmentsFor(ctx context.Context, amount int64) int {
	rules, err := v.rules(ctx)
	if err != nil {
		return 0
	}
	limit := int(amount / rules.MinInstallmentValue)
	if limit > rules.MaxInstallments {
		limit = rules.MaxInstallments
	}
	return limit
}

// ValidateInstallments checks the installment count against the dynamic
// cap for the amount.
func (v *Validator) ValidateInstallments(ctx context.Context, amount int64, installments int) result.Result[int] {
	if installments < 1 {
		return result.Invalid[int]("Número de parcelas deve ser pelo menos 1")
	}

	limit := v.MaxInstallmentsFor(ctx, amount)
	if installments > limit {
		return result.Failf[int](result.KindValidationError, 400,
			"Para o valor de R$ %.2f, o máximo de parcelas permitido é %d", float64(amount)/100, limit)
	}
	return result.OK(installments)
}

// ValidatePaymentValues runs both checks and returns the validated pair
// only when both pass. A success that somehow carries no data is surfaced
// as a 500 rather than propagated, so a broken internal invariant never
// travels silently.
func (v *Validator) ValidatePaymentValues(ctx context.Context, amount int64, installments int) result.Result[ValidatedValues] {
	amountRes := v.ValidateAmount(ctx, amount)
	if !amountRes.Success {
		return result.Forward[ValidatedValues](amountRes)
	}
	if amountRes.Data == 0 && amount != 0 {
		return result.Internal[ValidatedValues]("Erro interno: valor validado não encontrado")
	}

	instRes := v.ValidateInstallments(ctx, amount, installments)
	if !instRes.Success {
		return result.Forward[ValidatedValues](instRes)
	}
	if instRes.Data == 0 && installments != 0 {
		return result.Internal[ValidatedValues]("Erro interno: parcelas validadas não encontradas")
	}

	return result.OK(ValidatedValues{Amount: amountRes.Data, Installments: instRes.Data})
}
