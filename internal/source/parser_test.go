package source

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func seqIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("gen-%d", n)
	}
}

// writeWorksheet creates a temp worksheet file and returns its path.
func writeWorksheet(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse_AllCollections(t *testing.T) {
	ws, err := Parse([]byte(`
name = "Bakery"

[assumptions]
ticket_price = "$12.50"
potential_clients = 2000
conversion_rate = "5%"

[[operating]]
id = "rent"
category = "Rent"
budgeted_monthly = 1200
actual_monthly = "$1,250"

[[direct]]
item = "Flour"
cost_per_purchase = 20
units_per_purchase = 10
amount_used_per_product = 0.5

[[collateral]]
item = "Boxes"
cost_per_purchase = 40
units_per_purchase = 100
amount_used_per_product = 1

[[services]]
service = "Delivery"
cost_per_unit = 2.5
amount_used = 1

[[marketing]]
channel = "Flyers"
budget_per_batch = 100
amount_per_batch = 200
`), seqIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if ws.Name != "Bakery" {
		t.Errorf("Name = %q, want Bakery", ws.Name)
	}
	a := ws.Budget.Assumptions
	if a.TicketPrice != 12.5 || a.PotentialClients != 2000 || a.ConversionRate != 5 {
		t.Errorf("assumptions = %+v", a)
	}

	op := ws.Budget.Operating
	if len(op) != 1 || op[0].ID != "rent" || op[0].ActualMonthly != 1250 {
		t.Errorf("operating = %+v", op)
	}
	if d := ws.Budget.Direct; len(d) != 1 || d[0].ID != "gen-1" || d[0].AmountUsedPerProduct != 0.5 {
		t.Errorf("direct = %+v", d)
	}
	if c := ws.Budget.Collateral; len(c) != 1 || c[0].ID != "gen-2" {
		t.Errorf("collateral = %+v", c)
	}
	if s := ws.Budget.Services; len(s) != 1 || s[0].CostPerUnit != 2.5 {
		t.Errorf("services = %+v", s)
	}
	if m := ws.Budget.Marketing; len(m) != 1 || m[0].Channel != "Flyers" {
		t.Errorf("marketing = %+v", m)
	}
	if len(ws.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", ws.Warnings)
	}
}

func TestParse_DuplicateIDsReplaced(t *testing.T) {
	ws, err := Parse([]byte(`
[[direct]]
id = "a"
item = "first"

[[direct]]
id = "a"
item = "second"

[[collateral]]
id = "a"
item = "other collection"
`), seqIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	d := ws.Budget.Direct
	if d[0].ID != "a" || d[1].ID != "gen-1" {
		t.Errorf("direct ids = %q, %q; want a, gen-1", d[0].ID, d[1].ID)
	}
	if ws.Budget.Collateral[0].ID != "a" {
		t.Errorf("collateral id = %q, want a (ids are per collection)", ws.Budget.Collateral[0].ID)
	}
	if len(ws.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one", ws.Warnings)
	}
}

func TestParse_BadNumberStringIsZero(t *testing.T) {
	ws, err := Parse([]byte(`
[assumptions]
ticket_price = "free"
`), seqIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if ws.Budget.Assumptions.TicketPrice != 0 {
		t.Errorf("TicketPrice = %v, want 0", ws.Budget.Assumptions.TicketPrice)
	}
}

func TestParse_NonFiniteIsZero(t *testing.T) {
	ws, err := Parse([]byte(`
[assumptions]
ticket_price = nan
potential_clients = inf
conversion_rate = "1e400"
`), seqIDs())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a := ws.Budget.Assumptions
	if a.TicketPrice != 0 || a.PotentialClients != 0 || a.ConversionRate != 0 {
		t.Errorf("Assumptions = %+v, want all zero", a)
	}
}

func TestParse_WrongTypeFails(t *testing.T) {
	_, err := Parse([]byte(`
[assumptions]
ticket_price = true
`), seqIDs())
	if err == nil {
		t.Fatal("expected error for boolean ticket price")
	}
}

func TestParse_Template(t *testing.T) {
	ws, err := Parse([]byte(Template), seqIDs())
	if err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	if len(ws.Budget.Operating) == 0 || ws.Budget.Assumptions.TicketPrice == 0 {
		t.Fatalf("template parsed to %+v", ws.Budget)
	}
}

func TestLoadFile_NameFromPath(t *testing.T) {
	path := writeWorksheet(t, t.TempDir(), "cafe.toml", "[assumptions]\nticket_price = 4\n")

	ws, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if ws.Name != "cafe" || ws.Path != path {
		t.Errorf("Name/Path = %q/%q", ws.Name, ws.Path)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeWorksheet(t, dir, "bakery.toml", "")
	writeWorksheet(t, dir, "clients/acme.toml", "")
	writeWorksheet(t, dir, "notes.txt", "")

	files, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("found %d files, want 2: %+v", len(files), files)
	}
	if files[0].Name != "bakery" || files[1].Name != "clients/acme" {
		t.Errorf("names = %q, %q", files[0].Name, files[1].Name)
	}
}

func TestScanDir_Missing(t *testing.T) {
	files, err := ScanDir(filepath.Join(t.TempDir(), "absent"))
	if err != nil || files != nil {
		t.Fatalf("ScanDir(missing) = %v, %v; want nil, nil", files, err)
	}
}

func TestResolve(t *testing.T) {
	dir := filepath.Join("home", "sheets")
	tests := []struct {
		arg, want string
	}{
		{"", ""},
		{"bakery", filepath.Join(dir, "bakery.toml")},
		{"bakery.toml", "bakery.toml"},
		{"./x/y.toml", "./x/y.toml"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.arg, dir); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.arg, got, tt.want)
		}
	}
}
