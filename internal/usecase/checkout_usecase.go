package usecase

import (
	"context"
	"fmt"

	"certifica_condo/internal/domain/entities"
	"certifica_condo/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const WebhookPath = "/v1/webhooks/mercadopago"

// ICheckoutUseCase opens provider checkouts whose metadata drives the
// reconciliation once the payment is approved.
type ICheckoutUseCase interface {
	Catalog() entities.Catalog
	BuyCoins(ctx context.Context, actor entities.Actor, packageID string) (entities.CheckoutSession, error)
	SubscribePlan(ctx context.Context, actor entities.Actor, planID string) (entities.CheckoutSession, error)
}

type CheckoutUseCase struct {
	store   interfaces.IStore
	gateway interfaces.IPaymentGateway
	catalog entities.Catalog
	baseURL string
	logger  *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(store interfaces.IStore, gateway interfaces.IPaymentGateway, catalog entities.Catalog, publicBaseURL string, logger *zap.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{store: store, gateway: gateway, catalog: catalog, baseURL: publicBaseURL, logger: orNop(logger)}
}

func (u *CheckoutUseCase) Catalog() entities.Catalog {
	return u.catalog
}

func (u *CheckoutUseCase) BuyCoins(ctx context.Context, actor entities.Actor, packageID string) (entities.CheckoutSession, error) {
	if actor.Role != entities.RoleEmpresa || actor.ID == "" {
		return entities.CheckoutSession{}, ErrForbidden
	}
	pkg, ok := u.catalog.CoinPackage(packageID)
	if !ok {
		return entities.CheckoutSession{}, ErrCoinPackageNotFound
	}

	var company entities.Company
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		company, err = tx.Companies().GetByID(ctx, actor.ID)
		return err
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if company.ID == "" {
		return entities.CheckoutSession{}, ErrCompanyNotFound
	}
	if !company.Active {
		return entities.CheckoutSession{}, ErrCompanyInactive
	}

	req := u.request(pkg.Title, pkg.Price, company.Email, fmt.Sprintf("empresa:%s:%s", company.ID, pkg.ID))
	req.Metadata = map[string]any{
		entities.MetadataCompanyID: company.ID,
		entities.MetadataCoins:     pkg.Coins,
	}
	return u.create(ctx, req)
}

func (u *CheckoutUseCase) SubscribePlan(ctx context.Context, actor entities.Actor, planID string) (entities.CheckoutSession, error) {
	if actor.Role != entities.RoleCondominio || actor.ID == "" {
		return entities.CheckoutSession{}, ErrForbidden
	}
	plan, ok := u.catalog.Plan(planID)
	if !ok {
		return entities.CheckoutSession{}, ErrPlanNotFound
	}

	var condo entities.Condo
	err := u.store.View(ctx, func(ctx context.Context, tx interfaces.IStoreTx) error {
		var err error
		condo, err = tx.Condos().GetByID(ctx, actor.ID)
		return err
	})
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if condo.ID == "" {
		return entities.CheckoutSession{}, ErrCondoNotFound
	}
	if !condo.Active {
		return entities.CheckoutSession{}, ErrCondoInactive
	}

	req := u.request(plan.Title, plan.Price, condo.Email, fmt.Sprintf("condominio:%s:%s", condo.ID, plan.ID))
	req.Metadata = map[string]any{
		entities.MetadataCondoID: condo.ID,
		entities.MetadataPlanID:  plan.ID,
	}
	return u.create(ctx, req)
}

func (u *CheckoutUseCase) request(title string, price float64, email, ref string) entities.CheckoutRequest {
	req := entities.CheckoutRequest{
		Title:             title,
		Quantity:          1,
		UnitPrice:         price,
		PayerEmail:        email,
		ExternalReference: ref,
	}
	if u.baseURL != "" {
		req.SuccessURL = u.baseURL + "/pagamento/sucesso"
		req.FailureURL = u.baseURL + "/pagamento/falha"
		req.PendingURL = u.baseURL + "/pagamento/pendente"
		req.NotificationURL = u.baseURL + WebhookPath
	}
	return req
}

func (u *CheckoutUseCase) create(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutSession, error) {
	session, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil {
		u.logger.Error("[checkout][usecase] create checkout failed", zap.String("external_reference", req.ExternalReference), zap.Error(err))
		return entities.CheckoutSession{}, fmt.Errorf("create checkout: %w", err)
	}
	u.logger.Info("[checkout][usecase] checkout created", zap.String("external_reference", req.ExternalReference), zap.String("checkout_id", session.ID))
	return session, nil
}
