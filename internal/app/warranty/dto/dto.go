package dto

// Read-side DTOs. Timestamps are *string (RFC3339) to mirror how they come
// back from Spanner; terms carry the domain encoding ("", "unlimited", or a
// decimal bound). Use the shared helpers to parse them back into domain
// values.

type ProductDTO struct {
	ProductID  string
	ProviderID string
	Name       string
	Coverage   string
	Exclusions string

	TermMonths      string
	TermKm          string
	DeductibleCents *int64

	MaxVehicleAgeYears *int64
	MaxMileageKm       *int64
	MakeAllowlist      []string
	ModelAllowlist     []string
	TrimAllowlist      []string

	BaseCostCents *int64
	Published     bool

	CreatedAt *string
	UpdatedAt *string
}

type VariantDTO struct {
	VariantID string
	ProductID string

	TermMonths string
	TermKm     string

	MinKm         int64
	MaxKm         *int64
	RequiredClass string

	ClaimLimitCents *int64
	DeductibleCents int64
	DealerCostCents *int64
	BasePriceCents  int64

	IsDefault bool
	CreatedAt *string
}

type ContractDTO struct {
	ContractID     string
	ContractNumber string
	DealerID       string
	CreatedBy      string

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	VIN          string
	ModelYear    int64
	Make         string
	Model        string
	Trim         string
	BodyClass    string
	Engine       string
	Transmission string
	MileageKm    *int64
	VehicleClass string

	ProductID *string
	VariantID *string

	SnapTermMonths      *string
	SnapTermKm          *string
	SnapDeductibleCents *int64
	SnapBasePriceCents  *int64
	SnapDealerCostCents *int64

	Status string

	SoldBy      *string
	SoldByEmail *string
	SoldAt      *string

	RemittedBy      *string
	RemittedByEmail *string
	RemittedAt      *string

	PaidBy      *string
	PaidByEmail *string
	PaidAt      *string

	CreatedAt *string
	UpdatedAt *string

	// WarrantyID is derived from the contract id on read, never stored.
	WarrantyID string
}

type BatchDTO struct {
	BatchID     string
	BatchNumber string
	DealerID    string

	ContractIDs []string

	SubtotalCents int64
	TaxCents      int64
	TotalCents    int64

	BatchStatus      string
	PaymentStatus    string
	RemittanceStatus string

	PaymentMethod    *string
	PaymentReference *string
	PaymentDate      *string

	SubmittedBy      *string
	SubmittedByEmail *string
	SubmittedAt      *string

	ReviewedBy      *string
	ReviewedByEmail *string
	ReviewedAt      *string

	PaidBy      *string
	PaidByEmail *string
	PaidAt      *string

	CreatedAt *string
	UpdatedAt *string
}

type MarkupDTO struct {
	DealerID  string
	Percent   float64
	UpdatedBy string
	UpdatedAt *string
}

// OfferDTO is the quote result for one product: eligibility already passed,
// prices present only when Priced is true.
type OfferDTO struct {
	ProductID   string
	ProductName string

	VariantID       *string
	TermMonths      string
	TermKm          string
	DeductibleCents int64

	Priced        bool
	CostCents     int64
	RetailCents   int64
	MarginCents   int64
	MarginPercent float64
}
