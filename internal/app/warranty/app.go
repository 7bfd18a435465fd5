package warranty

import (
	"cloud.google.com/go/spanner"

	"github.com/clearlane/warranty-service/internal/app/warranty/contracts"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries/get_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries/get_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries/get_product"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries/list_products"
	"github.com/clearlane/warranty-service/internal/app/warranty/queries/quote_offers"
	"github.com/clearlane/warranty-service/internal/app/warranty/repo"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/advance_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_product"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/create_variant"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/delete_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/delete_variant"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/pay_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/publish_product"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/review_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/select_offer"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/set_dealer_markup"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/submit_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/update_batch"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/update_contract"
	"github.com/clearlane/warranty-service/internal/app/warranty/usecases/update_product"
	"github.com/clearlane/warranty-service/internal/pkg/clock"
	commitplan "github.com/clearlane/warranty-service/internal/pkg/committer"
)

// App is the composition root: every usecase and query handler wired against
// one storage backend. Callers embed it in-process; there is no network
// surface.
type App struct {
	CreateProduct   *create_product.Interactor
	UpdateProduct   *update_product.Interactor
	PublishProduct  *publish_product.Interactor
	CreateVariant   *create_variant.Interactor
	DeleteVariant   *delete_variant.Interactor
	SetDealerMarkup *set_dealer_markup.Interactor

	CreateContract  *create_contract.Interactor
	UpdateContract  *update_contract.Interactor
	SelectOffer     *select_offer.Interactor
	AdvanceContract *advance_contract.Interactor
	DeleteContract  *delete_contract.Interactor

	CreateBatch *create_batch.Interactor
	UpdateBatch *update_batch.Interactor
	SubmitBatch *submit_batch.Interactor
	ReviewBatch *review_batch.Interactor
	PayBatch    *pay_batch.Interactor

	GetProduct   *get_product.Handler
	ListProducts *list_products.Handler
	GetContract  *get_contract.Handler
	GetBatch     *get_batch.Handler
	QuoteOffers  *quote_offers.Handler

	ReadModel contracts.ReadModel
}

// New wires the application against an arbitrary backend pair.
func New(committer contracts.Committer, readModel contracts.ReadModel, decoder contracts.VINDecoder, clk clock.Clock) *App {
	productRepo := repo.NewProductRepo()
	variantRepo := repo.NewVariantRepo()
	markupRepo := repo.NewMarkupRepo()
	contractRepo := repo.NewContractRepo()
	batchRepo := repo.NewBatchRepo()
	outboxRepo := repo.NewOutboxRepo()

	return &App{
		CreateProduct:   create_product.NewInteractor(productRepo, outboxRepo, committer, clk),
		UpdateProduct:   update_product.NewInteractor(productRepo, outboxRepo, committer, readModel, clk),
		PublishProduct:  publish_product.NewInteractor(productRepo, outboxRepo, committer, readModel, clk),
		CreateVariant:   create_variant.NewInteractor(variantRepo, outboxRepo, committer, readModel, clk),
		DeleteVariant:   delete_variant.NewInteractor(variantRepo, outboxRepo, committer, readModel, clk),
		SetDealerMarkup: set_dealer_markup.NewInteractor(markupRepo, outboxRepo, committer, readModel, clk),

		CreateContract:  create_contract.NewInteractor(contractRepo, outboxRepo, committer, decoder, clk),
		UpdateContract:  update_contract.NewInteractor(contractRepo, outboxRepo, committer, readModel, clk),
		SelectOffer:     select_offer.NewInteractor(contractRepo, outboxRepo, committer, readModel, clk),
		AdvanceContract: advance_contract.NewInteractor(contractRepo, outboxRepo, committer, readModel, clk),
		DeleteContract:  delete_contract.NewInteractor(contractRepo, outboxRepo, committer, readModel, clk),

		CreateBatch: create_batch.NewInteractor(batchRepo, outboxRepo, committer, clk),
		UpdateBatch: update_batch.NewInteractor(batchRepo, outboxRepo, committer, readModel, clk),
		SubmitBatch: submit_batch.NewInteractor(batchRepo, contractRepo, outboxRepo, committer, readModel, clk),
		ReviewBatch: review_batch.NewInteractor(batchRepo, outboxRepo, committer, readModel, clk),
		PayBatch:    pay_batch.NewInteractor(batchRepo, contractRepo, outboxRepo, committer, readModel, clk),

		GetProduct:   get_product.NewHandler(readModel),
		ListProducts: list_products.NewHandler(readModel),
		GetContract:  get_contract.NewHandler(readModel),
		GetBatch:     get_batch.NewHandler(readModel),
		QuoteOffers:  quote_offers.NewHandler(readModel, decoder, clk),

		ReadModel: readModel,
	}
}

// NewWithMemory wires the app against the in-memory backend.
func NewWithMemory(store *commitplan.MemoryStore, decoder contracts.VINDecoder, clk clock.Clock) *App {
	return New(store, queries.NewMemoryReadModel(store), decoder, clk)
}

// NewWithSpanner wires the app against Cloud Spanner.
func NewWithSpanner(client *spanner.Client, decoder contracts.VINDecoder, clk clock.Clock) *App {
	return New(commitplan.NewSpannerAdapter(client), queries.NewSpannerReadModel(client), decoder, clk)
}
