package billing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inventrack/inventrack-api/internal/application/dto"
	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
	"github.com/inventrack/inventrack-api/internal/domain/gst"
	"github.com/inventrack/inventrack-api/internal/domain/repository"
)

// InvoiceUseCase builds, commits and manages tax invoices.
type InvoiceUseCase struct {
	tx        TxRunner
	stock     StockRegistrar
	products  repository.ProductRepository
	customers repository.CustomerRepository
	invoices  repository.InvoiceRepository
	homeState string
}

// NewInvoiceUseCase builds the use case. homeState is the seller's state,
// used to derive the tax jurisdiction when the request does not force one.
func NewInvoiceUseCase(
	tx TxRunner,
	stock StockRegistrar,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	invoices repository.InvoiceRepository,
	homeState string,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		tx:        tx,
		stock:     stock,
		products:  products,
		customers: customers,
		invoices:  invoices,
		homeState: homeState,
	}
}

// draft is a fully resolved, not yet committed invoice body.
type draft struct {
	customer   *entity.Customer
	items      []entity.InvoiceItem
	totals     gst.Totals
	interState bool
}

// Preview resolves and computes a draft without touching the ledger. Stock
// is not checked here; only the commit rejects on availability.
func (uc *InvoiceUseCase) Preview(in dto.CreateInvoiceRequest) (*dto.InvoicePreviewResponse, error) {
	d, err := uc.resolve(uc.products, uc.customers, in)
	if err != nil {
		return nil, err
	}
	return &dto.InvoicePreviewResponse{
		Items:       toItemResponses(d.items),
		Subtotal:    d.totals.Subtotal.Round(2),
		CGST:        d.totals.CGST.Round(2),
		SGST:        d.totals.SGST.Round(2),
		IGST:        d.totals.IGST.Round(2),
		TotalAmount: d.totals.Total.Round(2),
		InterState:  d.interState,
	}, nil
}

// Create commits an invoice: reserves the next number, decrements stock with
// one sale movement per line, bumps the customer's purchase history and
// stores the invoice, all atomically. Any failure leaves the ledger exactly
// as it was.
func (uc *InvoiceUseCase) Create(ctx context.Context, createdBy string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPaid
	}
	payment := in.PaymentMethod
	if payment == "" {
		payment = entity.PaymentMethodCash
	}

	now := time.Now()
	var committed *entity.Invoice

	err := uc.tx.RunBilling(ctx, func(
		products repository.ProductRepository,
		movements repository.StockMovementRepository,
		customers repository.CustomerRepository,
		invoices repository.InvoiceRepository,
	) error {
		d, err := uc.resolve(products, customers, in)
		if err != nil {
			return err
		}

		number, err := invoices.NextNumber(now)
		if err != nil {
			return err
		}

		for _, item := range d.items {
			if err := uc.stock.RegisterSaleInTx(products, movements, item.ProductID, item.Quantity, number, createdBy, now); err != nil {
				return err
			}
		}

		d.customer.TotalPurchases = d.customer.TotalPurchases.Add(d.totals.Total)
		purchasedAt := now
		d.customer.LastPurchaseDate = &purchasedAt
		if err := customers.Update(d.customer); err != nil {
			return err
		}

		inv := &entity.Invoice{
			ID:            uuid.New().String(),
			InvoiceNumber: number,
			CustomerID:    d.customer.ID,
			CustomerName:  d.customer.Name,
			CustomerPhone: d.customer.Phone,
			CustomerGST:   d.customer.GSTNumber,
			Items:         d.items,
			Subtotal:      d.totals.Subtotal,
			CGST:          d.totals.CGST,
			SGST:          d.totals.SGST,
			IGST:          d.totals.IGST,
			TotalAmount:   d.totals.Total,
			PaymentMethod: payment,
			Status:        status,
			CreatedBy:     createdBy,
			CreatedAt:     now,
		}
		if err := invoices.Create(inv); err != nil {
			return err
		}
		committed = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(committed), nil
}

// GetByID returns one invoice, nil if absent.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	return toInvoiceResponse(inv), nil
}

// List returns all invoices, most recent first.
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// UpdateStatus changes the lifecycle status of an invoice. Status is the
// only mutable field after commit; totals, lines and stock are untouched,
// including on cancellation.
func (uc *InvoiceUseCase) UpdateStatus(id, status string) (*dto.InvoiceResponse, error) {
	if !entity.ValidInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	if err := uc.invoices.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// Delete removes the invoice record. Stock movements, customer purchase
// totals and the number sequence are left as they are.
func (uc *InvoiceUseCase) Delete(id string) error {
	return uc.invoices.Delete(id)
}

// resolve validates the request against live catalog and customer data and
// computes the tax totals. Read-only; callable against either the store
// repositories (preview) or transaction-bound ones (commit).
func (uc *InvoiceUseCase) resolve(
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	in dto.CreateInvoiceRequest,
) (*draft, error) {
	if err := validateRequest(in); err != nil {
		return nil, err
	}

	customer, err := customers.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s", domain.ErrNotFound, in.CustomerID)
	}

	interState := uc.interStateFor(customer, in.InterState)

	items := make([]entity.InvoiceItem, 0, len(in.Items))
	lines := make([]gst.Line, 0, len(in.Items))
	for _, req := range in.Items {
		product, err := products.GetByID(req.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, req.ProductID)
		}
		line := gst.Line{Quantity: req.Quantity, UnitPrice: product.Price, Rate: product.GSTRate}
		lines = append(lines, line)
		items = append(items, entity.InvoiceItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			HSNCode:     product.HSNCode,
			Quantity:    req.Quantity,
			Price:       product.Price,
			GSTRate:     product.GSTRate,
			Total:       line.Total(),
		})
	}

	return &draft{
		customer:   customer,
		items:      items,
		totals:     gst.Compute(lines, interState),
		interState: interState,
	}, nil
}

// interStateFor applies the explicit override when present, otherwise
// compares the customer's state against the seller's home state. A customer
// with no state on file is billed same-state.
func (uc *InvoiceUseCase) interStateFor(customer *entity.Customer, override *bool) bool {
	if override != nil {
		return *override
	}
	if customer.State == "" {
		return false
	}
	return !strings.EqualFold(customer.State, uc.homeState)
}

func validateRequest(in dto.CreateInvoiceRequest) error {
	if in.CustomerID == "" {
		return fmt.Errorf("%w: customer_id is required", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", domain.ErrInvalidInput)
	}
	seen := make(map[string]bool, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" {
			return fmt.Errorf("%w: item product_id is required", domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item quantity must be positive", domain.ErrInvalidInput)
		}
		if seen[item.ProductID] {
			return fmt.Errorf("%w: duplicate item for product %s", domain.ErrInvalidInput, item.ProductID)
		}
		seen[item.ProductID] = true
	}
	if in.Status != "" && !entity.ValidInvoiceStatus(in.Status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, in.Status)
	}
	if in.PaymentMethod != "" && !entity.ValidPaymentMethod(in.PaymentMethod) {
		return fmt.Errorf("%w: unknown payment method %q", domain.ErrInvalidInput, in.PaymentMethod)
	}
	return nil
}

func toItemResponses(items []entity.InvoiceItem) []dto.InvoiceItemResponse {
	out := make([]dto.InvoiceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.InvoiceItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			HSNCode:     it.HSNCode,
			Quantity:    it.Quantity,
			Price:       it.Price.Round(2),
			GSTRate:     it.GSTRate,
			Total:       it.Total.Round(2),
		})
	}
	return out
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		CustomerGST:   inv.CustomerGST,
		Items:         toItemResponses(inv.Items),
		Subtotal:      inv.Subtotal.Round(2),
		CGST:          inv.CGST.Round(2),
		SGST:          inv.SGST.Round(2),
		IGST:          inv.IGST.Round(2),
		TotalAmount:   inv.TotalAmount.Round(2),
		PaymentMethod: inv.PaymentMethod,
		Status:        inv.Status,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt.Format(time.RFC3339),
	}
}
