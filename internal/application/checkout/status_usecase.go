package checkout

import (
	"context"
	"errors"

	"github.com/jhoicas/pix-checkout-api/internal/application/dto"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
	"github.com/jhoicas/pix-checkout-api/internal/domain/entity"
	"github.com/jhoicas/pix-checkout-api/internal/domain/repository"
	"github.com/jhoicas/pix-checkout-api/pkg/logger"
)

// PaymentStatusUseCase consulta el estado de un cobro en la pasarela y, si ya
// fue pagado, reconcilia el Billing local a PAID. La única transición local
// es PENDING → PAID; otros estados del proveedor (ej. EXPIRED) se devuelven
// al caller pero no se escriben.
type PaymentStatusUseCase struct {
	billings repository.BillingRepository
	gateway  PaymentGateway
	log      *logger.Logger
}

// NewPaymentStatusUseCase construye el caso de uso.
func NewPaymentStatusUseCase(billings repository.BillingRepository, gateway PaymentGateway, log *logger.Logger) *PaymentStatusUseCase {
	return &PaymentStatusUseCase{billings: billings, gateway: gateway, log: log}
}

// Execute consulta la pasarela por pixID. Idempotente: llamadas repetidas con
// el cobro ya pagado convergen al mismo estado y nunca regresan un PAID a
// PENDING (solo se escribe bajo la condición de pago).
func (uc *PaymentStatusUseCase) Execute(ctx context.Context, pixID string) (*dto.PaymentStatusResponse, error) {
	st, err := uc.gateway.CheckCharge(ctx, pixID)
	if err != nil {
		return nil, err
	}

	if st.Status == entity.BillingStatusPaid {
		billing, lookErr := uc.billings.GetByAbacatePayID(pixID)
		switch {
		case lookErr == nil:
			if billing.Status != entity.BillingStatusPaid {
				paid := entity.BillingStatusPaid
				if _, upErr := uc.billings.Update(billing.ID, repository.BillingPatch{Status: &paid}); upErr != nil {
					uc.log.Error().Err(upErr).Str("billing_id", billing.ID).Msg("no se pudo marcar el cobro como PAID")
				} else {
					uc.log.Info().Str("billing_id", billing.ID).Str("pix_id", pixID).Msg("cobro reconciliado a PAID")
				}
			}
		case errors.Is(lookErr, domain.ErrNotFound):
			// Cobro desconocido localmente (ej. creado por otra instancia);
			// se responde igual con el estado de la pasarela.
			uc.log.Warn().Str("pix_id", pixID).Msg("pago confirmado sin Billing local asociado")
		default:
			return nil, lookErr
		}
	}

	return &dto.PaymentStatusResponse{
		Status:    st.Status,
		ExpiresAt: st.ExpiresAt,
		IsPaid:    st.Status == entity.BillingStatusPaid,
	}, nil
}
