package ledger

import (
	"fmt"
	"time"

	"github.com/inventrack/inventrack-api/internal/domain/entity"
)

// invoicePeriodLayout is the YYMM key of the per-month invoice counter.
const invoicePeriodLayout = "0601"

// state is one immutable-after-publish generation of the ledger. Mutations
// work on a clone and publish it atomically (see Store.update).
type state struct {
	products  []*entity.Product
	customers []*entity.Customer
	invoices  []*entity.Invoice       // most-recent-first
	movements []*entity.StockMovement // most-recent-first
	counters  map[string]int64        // invoice sequence per YYMM period
	users     []*entity.User          // auth partition
}

func newState() *state {
	return &state{counters: make(map[string]int64)}
}

func (st *state) clone() *state {
	next := &state{
		products:  make([]*entity.Product, len(st.products)),
		customers: make([]*entity.Customer, len(st.customers)),
		invoices:  make([]*entity.Invoice, len(st.invoices)),
		movements: make([]*entity.StockMovement, len(st.movements)),
		counters:  make(map[string]int64, len(st.counters)),
		users:     make([]*entity.User, len(st.users)),
	}
	for i, p := range st.products {
		next.products[i] = cloneProduct(p)
	}
	for i, c := range st.customers {
		next.customers[i] = cloneCustomer(c)
	}
	for i, inv := range st.invoices {
		next.invoices[i] = cloneInvoice(inv)
	}
	for i, m := range st.movements {
		next.movements[i] = cloneMovement(m)
	}
	for k, v := range st.counters {
		next.counters[k] = v
	}
	for i, u := range st.users {
		next.users[i] = cloneUser(u)
	}
	return next
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func cloneCustomer(c *entity.Customer) *entity.Customer {
	cc := *c
	if c.LastPurchaseDate != nil {
		t := *c.LastPurchaseDate
		cc.LastPurchaseDate = &t
	}
	return &cc
}

func cloneInvoice(inv *entity.Invoice) *entity.Invoice {
	ci := *inv
	ci.Items = make([]entity.InvoiceItem, len(inv.Items))
	copy(ci.Items, inv.Items)
	return &ci
}

func cloneMovement(m *entity.StockMovement) *entity.StockMovement {
	cm := *m
	return &cm
}

func cloneUser(u *entity.User) *entity.User {
	cu := *u
	return &cu
}

// ── state operations ─────────────────────────────────────────────────────────
// These run either inside a transaction (on the clone) or under the store's
// read lock; they never lock themselves.

func (st *state) productByID(id string) *entity.Product {
	for _, p := range st.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (st *state) productBySKU(sku string) *entity.Product {
	for _, p := range st.products {
		if p.SKU == sku {
			return p
		}
	}
	return nil
}

func (st *state) customerByID(id string) *entity.Customer {
	for _, c := range st.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (st *state) invoiceByID(id string) *entity.Invoice {
	for _, inv := range st.invoices {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

func (st *state) userByEmail(email string) *entity.User {
	for _, u := range st.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (st *state) userByID(id string) *entity.User {
	for _, u := range st.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// nextInvoiceNumber reserves the next number of the month of now. The
// counter only ever increases, so numbers are unique for the lifetime of the
// ledger even across deletions.
func (st *state) nextInvoiceNumber(now time.Time) string {
	key := now.Format(invoicePeriodLayout)
	st.counters[key]++
	return formatInvoiceNumber(key, st.counters[key])
}

func formatInvoiceNumber(period string, seq int64) string {
	return fmt.Sprintf("INV%s%04d", period, seq)
}
