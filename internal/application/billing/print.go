package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/inventrack/inventrack-api/internal/domain/entity"
)

// Print renders a committed invoice as a plain-text document suitable for a
// receipt printer or terminal. Returns ("", nil) when the invoice is absent.
func (uc *InvoiceUseCase) Print(id string) (string, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return "", err
	}
	if inv == nil {
		return "", nil
	}
	return renderInvoice(inv), nil
}

const printWidth = 58

func renderInvoice(inv *entity.Invoice) string {
	var b strings.Builder
	rule := strings.Repeat("=", printWidth)
	thin := strings.Repeat("-", printWidth)

	b.WriteString(rule + "\n")
	center(&b, "TAX INVOICE")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Invoice : %s\n", inv.InvoiceNumber)
	fmt.Fprintf(&b, "Date    : %s\n", inv.CreatedAt.Format("02 Jan 2006 15:04"))
	fmt.Fprintf(&b, "Status  : %s\n", strings.ToUpper(inv.Status))
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "Billed to: %s\n", inv.CustomerName)
	if inv.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone    : %s\n", inv.CustomerPhone)
	}
	if inv.CustomerGST != "" {
		fmt.Fprintf(&b, "GSTIN    : %s\n", inv.CustomerGST)
	}
	b.WriteString(thin + "\n")
	fmt.Fprintf(&b, "%-24s %5s %10s %12s\n", "Item", "Qty", "Price", "Total")
	b.WriteString(thin + "\n")
	for _, it := range inv.Items {
		name := it.ProductName
		if len(name) > 24 {
			name = name[:24]
		}
		fmt.Fprintf(&b, "%-24s %5d %10s %12s\n",
			name, it.Quantity, it.Price.Round(2).StringFixed(2), it.Total.Round(2).StringFixed(2))
		if it.HSNCode != "" {
			fmt.Fprintf(&b, "  HSN %s  GST %s%%\n", it.HSNCode, it.GSTRate.String())
		}
	}
	b.WriteString(thin + "\n")
	amount(&b, "Subtotal", inv.Subtotal)
	if inv.IGST.IsZero() {
		amount(&b, "CGST", inv.CGST)
		amount(&b, "SGST", inv.SGST)
	} else {
		amount(&b, "IGST", inv.IGST)
	}
	b.WriteString(thin + "\n")
	amount(&b, "TOTAL", inv.TotalAmount)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Payment: %s\n", inv.PaymentMethod)
	center(&b, "Thank you for your business!")
	b.WriteString(rule + "\n")
	return b.String()
}

func center(b *strings.Builder, s string) {
	pad := (printWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + s + "\n")
}

func amount(b *strings.Builder, label string, v decimal.Decimal) {
	fmt.Fprintf(b, "%-42s %12s\n", label, "Rs "+v.Round(2).StringFixed(2))
}
