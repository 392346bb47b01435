package views

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tcc-console/internal/tccapi"

	"github.com/shopspring/decimal"
)

func TestLoadParsesEveryPage(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load templates failed: %v", err)
	}
	pages := []string{
		"login.html", "register.html", "dashboard.html",
		"consignments.html", "consignment.html", "consignment_form.html", "consignment_status.html", "consignment_stats.html",
		"trucks.html", "truck.html", "truck_form.html", "truck_status.html",
		"branches.html", "branch.html", "branch_form.html", "branch_stats.html",
		"dispatches.html", "dispatch.html", "manifest.html",
		"invoices.html", "invoice.html", "users.html", "user.html", "audit.html",
		"access.html", "not_found.html",
	}
	for _, name := range pages {
		if tmpl.Lookup(name) == nil {
			t.Fatalf("template %s missing", name)
		}
	}
}

func TestRenderInvoicesFormatsAmount(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load templates failed: %v", err)
	}
	page := struct {
		Error    string
		Invoices []tccapi.Invoice
	}{
		Invoices: []tccapi.Invoice{{ID: "inv-1", ConsignmentID: "c-1", Amount: decimal.RequireFromString("120.5")}},
	}
	var buf bytes.Buffer
	data := Data{Title: "Invoices", Viewer: &Viewer{UserID: "u1", Role: "STAFF"}, Page: page}
	if err := tmpl.ExecuteTemplate(&buf, "invoices.html", data); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "$120.50") {
		t.Fatalf("expected formatted amount, got %s", out)
	}
	if strings.Contains(out, `href="/users"`) {
		t.Fatalf("staff navigation should not link to users")
	}
}

func TestRenderPageErrorHidesTable(t *testing.T) {
	tmpl, err := Load()
	if err != nil {
		t.Fatalf("load templates failed: %v", err)
	}
	page := struct {
		Error    string
		Invoices []tccapi.Invoice
	}{Error: "Failed to load invoices."}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "invoices.html", Data{Viewer: &Viewer{Role: "MANAGER"}, Page: page}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Failed to load invoices.") || strings.Contains(out, "<table>") {
		t.Fatalf("unexpected render: %s", out)
	}
	if !strings.Contains(out, `href="/users"`) {
		t.Fatalf("manager navigation should link to users")
	}
}

func TestLabelAndOptional(t *testing.T) {
	if got := label(tccapi.TruckInTransit); got != "In Transit" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := label("AWAITING_DISPATCH"); got != "Awaiting Dispatch" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := optional(nil); got != "-" {
		t.Fatalf("unexpected optional: %q", got)
	}
	branch := "b1"
	if got := optional(&branch); got != "b1" {
		t.Fatalf("unexpected optional: %q", got)
	}
}
