package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/inventrack/inventrack-api/internal/domain/entity"
)

// Two independent snapshot partitions, named after the stores they persist.
const (
	dataSnapshotFile = "data-storage.json"
	authSnapshotFile = "auth-storage.json"
)

// dataSnapshot is the on-disk shape of the ledger partition. The schema is
// version-free: the only requirement is reading back what was last written.
type dataSnapshot struct {
	Products        []*entity.Product       `json:"products"`
	Customers       []*entity.Customer      `json:"customers"`
	Invoices        []*entity.Invoice       `json:"invoices"`
	StockMovements  []*entity.StockMovement `json:"stockMovements"`
	InvoiceCounters map[string]int64        `json:"invoiceCounters"`
}

// authSnapshot is the on-disk shape of the auth partition.
type authSnapshot struct {
	Users []*entity.User `json:"users"`
}

func loadState(dir string) (*state, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	st := newState()

	var data dataSnapshot
	ok, err := readJSON(filepath.Join(dir, dataSnapshotFile), &data)
	if err != nil {
		return nil, err
	}
	if ok {
		st.products = data.Products
		st.customers = data.Customers
		st.invoices = data.Invoices
		st.movements = data.StockMovements
		if data.InvoiceCounters != nil {
			st.counters = data.InvoiceCounters
		}
	}

	var auth authSnapshot
	ok, err = readJSON(filepath.Join(dir, authSnapshotFile), &auth)
	if err != nil {
		return nil, err
	}
	if ok {
		st.users = auth.Users
	}
	return st, nil
}

func writeDataSnapshot(dir string, st *state) error {
	return writeJSONAtomic(filepath.Join(dir, dataSnapshotFile), dataSnapshot{
		Products:        st.products,
		Customers:       st.customers,
		Invoices:        st.invoices,
		StockMovements:  st.movements,
		InvoiceCounters: st.counters,
	})
}

func writeAuthSnapshot(dir string, st *state) error {
	return writeJSONAtomic(filepath.Join(dir, authSnapshotFile), authSnapshot{
		Users: st.users,
	})
}

// readJSON reads path into v. A missing file is not an error; ok reports
// whether anything was loaded.
func readJSON(path string, v any) (ok bool, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

// writeJSONAtomic writes v to path via a temp file and rename, so a crash
// mid-write never leaves a truncated partition behind.
func writeJSONAtomic(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
