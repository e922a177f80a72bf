package ledger

import (
	"time"

	"github.com/inventrack/inventrack-api/internal/domain"
	"github.com/inventrack/inventrack-api/internal/domain/entity"
)

// Repositories come in two flavors sharing the same state operations:
// store-bound ones (storeX) locking the live state per call, and
// transaction-bound ones (txX) operating on the clone inside Run/RunBilling.
// Both exchange detached copies with the caller.

// ── product operations ───────────────────────────────────────────────────────

func (st *state) createProduct(p *entity.Product) error {
	if p.SKU != "" && st.productBySKU(p.SKU) != nil {
		return domain.ErrDuplicate
	}
	st.products = append(st.products, cloneProduct(p))
	return nil
}

func (st *state) updateProduct(p *entity.Product) error {
	for i, cur := range st.products {
		if cur.ID == p.ID {
			st.products[i] = cloneProduct(p)
			return nil
		}
	}
	return domain.ErrNotFound
}

// deleteProduct removes the product only. Invoices and movements keep their
// denormalized snapshots; no cascade, no referential guard.
func (st *state) deleteProduct(id string) error {
	for i, p := range st.products {
		if p.ID == id {
			st.products = append(st.products[:i], st.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── customer operations ──────────────────────────────────────────────────────

func (st *state) createCustomer(c *entity.Customer) error {
	st.customers = append(st.customers, cloneCustomer(c))
	return nil
}

func (st *state) updateCustomer(c *entity.Customer) error {
	for i, cur := range st.customers {
		if cur.ID == c.ID {
			st.customers[i] = cloneCustomer(c)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (st *state) deleteCustomer(id string) error {
	for i, c := range st.customers {
		if c.ID == id {
			st.customers = append(st.customers[:i], st.customers[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── invoice operations ───────────────────────────────────────────────────────

func (st *state) createInvoice(inv *entity.Invoice) error {
	st.invoices = append([]*entity.Invoice{cloneInvoice(inv)}, st.invoices...)
	return nil
}

func (st *state) updateInvoiceStatus(id, status string) error {
	for _, inv := range st.invoices {
		if inv.ID == id {
			inv.Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

// deleteInvoice removes the record only; it does not restore stock or
// reverse the customer's lifetime total.
func (st *state) deleteInvoice(id string) error {
	for i, inv := range st.invoices {
		if inv.ID == id {
			st.invoices = append(st.invoices[:i], st.invoices[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── movement operations ──────────────────────────────────────────────────────

func (st *state) appendMovement(m *entity.StockMovement) error {
	st.movements = append([]*entity.StockMovement{cloneMovement(m)}, st.movements...)
	return nil
}

// ── user operations ──────────────────────────────────────────────────────────

func (st *state) saveUser(u *entity.User) error {
	for i, cur := range st.users {
		if cur.ID == u.ID {
			st.users[i] = cloneUser(u)
			return nil
		}
	}
	st.users = append(st.users, cloneUser(u))
	return nil
}

// ── transaction-bound repositories ───────────────────────────────────────────

type txProducts struct{ st *state }

func (r txProducts) Create(p *entity.Product) error { return r.st.createProduct(p) }

func (r txProducts) GetByID(id string) (*entity.Product, error) {
	if p := r.st.productByID(id); p != nil {
		return cloneProduct(p), nil
	}
	return nil, nil
}

func (r txProducts) GetBySKU(sku string) (*entity.Product, error) {
	if p := r.st.productBySKU(sku); p != nil {
		return cloneProduct(p), nil
	}
	return nil, nil
}

func (r txProducts) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, len(r.st.products))
	for i, p := range r.st.products {
		out[i] = cloneProduct(p)
	}
	return out, nil
}

func (r txProducts) Update(p *entity.Product) error { return r.st.updateProduct(p) }
func (r txProducts) Delete(id string) error         { return r.st.deleteProduct(id) }

type txCustomers struct{ st *state }

func (r txCustomers) Create(c *entity.Customer) error { return r.st.createCustomer(c) }

func (r txCustomers) GetByID(id string) (*entity.Customer, error) {
	if c := r.st.customerByID(id); c != nil {
		return cloneCustomer(c), nil
	}
	return nil, nil
}

func (r txCustomers) List() ([]*entity.Customer, error) {
	out := make([]*entity.Customer, len(r.st.customers))
	for i, c := range r.st.customers {
		out[i] = cloneCustomer(c)
	}
	return out, nil
}

func (r txCustomers) Update(c *entity.Customer) error { return r.st.updateCustomer(c) }
func (r txCustomers) Delete(id string) error          { return r.st.deleteCustomer(id) }

type txInvoices struct{ st *state }

func (r txInvoices) Create(inv *entity.Invoice) error { return r.st.createInvoice(inv) }

func (r txInvoices) GetByID(id string) (*entity.Invoice, error) {
	if inv := r.st.invoiceByID(id); inv != nil {
		return cloneInvoice(inv), nil
	}
	return nil, nil
}

func (r txInvoices) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, len(r.st.invoices))
	for i, inv := range r.st.invoices {
		out[i] = cloneInvoice(inv)
	}
	return out, nil
}

func (r txInvoices) UpdateStatus(id, status string) error { return r.st.updateInvoiceStatus(id, status) }
func (r txInvoices) Delete(id string) error               { return r.st.deleteInvoice(id) }

func (r txInvoices) NextNumber(now time.Time) (string, error) {
	return r.st.nextInvoiceNumber(now), nil
}

type txMovements struct{ st *state }

func (r txMovements) Append(m *entity.StockMovement) error { return r.st.appendMovement(m) }

func (r txMovements) List() ([]*entity.StockMovement, error) {
	out := make([]*entity.StockMovement, len(r.st.movements))
	for i, m := range r.st.movements {
		out[i] = cloneMovement(m)
	}
	return out, nil
}

func (r txMovements) ListByProduct(productID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.st.movements {
		if m.ProductID == productID {
			out = append(out, cloneMovement(m))
		}
	}
	return out, nil
}

// ── store-bound repositories ─────────────────────────────────────────────────

type storeProducts struct{ s *Store }

func (r storeProducts) Create(p *entity.Product) error {
	return r.s.update(func(st *state) error { return st.createProduct(p) })
}

func (r storeProducts) GetByID(id string) (out *entity.Product, err error) {
	err = r.s.view(func(st *state) error {
		if p := st.productByID(id); p != nil {
			out = cloneProduct(p)
		}
		return nil
	})
	return out, err
}

func (r storeProducts) GetBySKU(sku string) (out *entity.Product, err error) {
	err = r.s.view(func(st *state) error {
		if p := st.productBySKU(sku); p != nil {
			out = cloneProduct(p)
		}
		return nil
	})
	return out, err
}

func (r storeProducts) List() (out []*entity.Product, err error) {
	err = r.s.view(func(st *state) error {
		out, err = txProducts{st}.List()
		return err
	})
	return out, err
}

func (r storeProducts) Update(p *entity.Product) error {
	return r.s.update(func(st *state) error { return st.updateProduct(p) })
}

func (r storeProducts) Delete(id string) error {
	return r.s.update(func(st *state) error { return st.deleteProduct(id) })
}

type storeCustomers struct{ s *Store }

func (r storeCustomers) Create(c *entity.Customer) error {
	return r.s.update(func(st *state) error { return st.createCustomer(c) })
}

func (r storeCustomers) GetByID(id string) (out *entity.Customer, err error) {
	err = r.s.view(func(st *state) error {
		if c := st.customerByID(id); c != nil {
			out = cloneCustomer(c)
		}
		return nil
	})
	return out, err
}

func (r storeCustomers) List() (out []*entity.Customer, err error) {
	err = r.s.view(func(st *state) error {
		out, err = txCustomers{st}.List()
		return err
	})
	return out, err
}

func (r storeCustomers) Update(c *entity.Customer) error {
	return r.s.update(func(st *state) error { return st.updateCustomer(c) })
}

func (r storeCustomers) Delete(id string) error {
	return r.s.update(func(st *state) error { return st.deleteCustomer(id) })
}

type storeInvoices struct{ s *Store }

func (r storeInvoices) Create(inv *entity.Invoice) error {
	return r.s.update(func(st *state) error { return st.createInvoice(inv) })
}

func (r storeInvoices) GetByID(id string) (out *entity.Invoice, err error) {
	err = r.s.view(func(st *state) error {
		if inv := st.invoiceByID(id); inv != nil {
			out = cloneInvoice(inv)
		}
		return nil
	})
	return out, err
}

func (r storeInvoices) List() (out []*entity.Invoice, err error) {
	err = r.s.view(func(st *state) error {
		out, err = txInvoices{st}.List()
		return err
	})
	return out, err
}

func (r storeInvoices) UpdateStatus(id, status string) error {
	return r.s.update(func(st *state) error { return st.updateInvoiceStatus(id, status) })
}

func (r storeInvoices) Delete(id string) error {
	return r.s.update(func(st *state) error { return st.deleteInvoice(id) })
}

func (r storeInvoices) NextNumber(now time.Time) (number string, err error) {
	err = r.s.update(func(st *state) error {
		number = st.nextInvoiceNumber(now)
		return nil
	})
	return number, err
}

type storeMovements struct{ s *Store }

func (r storeMovements) Append(m *entity.StockMovement) error {
	return r.s.update(func(st *state) error { return st.appendMovement(m) })
}

func (r storeMovements) List() (out []*entity.StockMovement, err error) {
	err = r.s.view(func(st *state) error {
		out, err = txMovements{st}.List()
		return err
	})
	return out, err
}

func (r storeMovements) ListByProduct(productID string) (out []*entity.StockMovement, err error) {
	err = r.s.view(func(st *state) error {
		out, err = txMovements{st}.ListByProduct(productID)
		return err
	})
	return out, err
}

type storeUsers struct{ s *Store }

func (r storeUsers) GetByEmail(email string) (out *entity.User, err error) {
	err = r.s.view(func(st *state) error {
		if u := st.userByEmail(email); u != nil {
			out = cloneUser(u)
		}
		return nil
	})
	return out, err
}

func (r storeUsers) GetByID(id string) (out *entity.User, err error) {
	err = r.s.view(func(st *state) error {
		if u := st.userByID(id); u != nil {
			out = cloneUser(u)
		}
		return nil
	})
	return out, err
}

func (r storeUsers) Save(u *entity.User) error {
	return r.s.updateAuth(func(st *state) error { return st.saveUser(u) })
}
