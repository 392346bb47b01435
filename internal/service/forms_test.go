package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/tcc-console/internal/tccapi"
)

func TestTruckFormDefaults(t *testing.T) {
	req, err := TruckForm{TruckNumber: " KA-01 "}.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if req.TruckNumber != "KA-01" || req.CapacityCubicMeters != 500 {
		t.Fatalf("unexpected request: %+v", req)
	}
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"truck_number":"KA-01","capacity_cubic_meters":500,"current_branch_id":null}`
	if string(body) != want {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestTruckFormRejectsBadCapacity(t *testing.T) {
	for _, capacity := range []string{"abc", "-1", "0"} {
		_, err := TruckForm{TruckNumber: "KA-01", Capacity: capacity}.Request()
		var formErr *FormError
		if !errors.As(err, &formErr) || formErr.Field != "capacity_cubic_meters" {
			t.Fatalf("capacity %q: unexpected error %v", capacity, err)
		}
	}
}

func TestConsignmentFormRequiresAllFields(t *testing.T) {
	complete := ConsignmentForm{
		Volume:             "12.5",
		DestinationAddress: "Pune",
		SenderAddress:      "Mumbai",
		ReceiverName:       "Ravi",
		OriginBranchID:     "b1",
	}
	req, err := complete.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if req.VolumeCubicMeters != 12.5 || req.OriginBranchID != "b1" {
		t.Fatalf("unexpected request: %+v", req)
	}

	missing := complete
	missing.ReceiverName = "  "
	if _, err := missing.Request(); SubmitErrorMessage(err) != "Receiver name is required." {
		t.Fatalf("unexpected error: %v", err)
	}
	badVolume := complete
	badVolume.Volume = "lots"
	if _, err := badVolume.Request(); SubmitErrorMessage(err) != "Volume must be a positive number." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterFormNormalize(t *testing.T) {
	form, branch, err := RegisterForm{Username: " bob ", Password: "pw"}.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if form.Role != "STAFF" || form.Username != "bob" || branch != nil {
		t.Fatalf("unexpected normalized form: %+v branch=%v", form, branch)
	}

	form, branch, err = RegisterForm{Username: "m", Password: "pw", Role: "manager", BranchID: "b2"}.Normalize()
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}
	if form.Role != "MANAGER" || branch == nil || *branch != "b2" {
		t.Fatalf("unexpected normalized form: %+v branch=%v", form, branch)
	}

	if _, _, err := (RegisterForm{Username: "x", Password: "pw", Role: "ADMIN"}).Normalize(); err == nil {
		t.Fatalf("expected invalid role error")
	}
	if _, _, err := (RegisterForm{Username: "x"}).Normalize(); err == nil {
		t.Fatalf("expected missing password error")
	}
}

func TestStatusFormsAcceptOnlyKnownValues(t *testing.T) {
	req, err := TruckStatusForm{Status: "in_transit"}.Request()
	if err != nil || req.Status != tccapi.TruckInTransit {
		t.Fatalf("unexpected truck status request: %+v err=%v", req, err)
	}
	body, _ := json.Marshal(req)
	if string(body) != `{"status":"IN_TRANSIT"}` {
		t.Fatalf("truck status update must be partial, got %s", body)
	}
	if _, err := (TruckStatusForm{Status: "PARKED"}).Request(); err == nil {
		t.Fatalf("expected invalid truck status error")
	}
	if _, err := (ConsignmentStatusForm{Status: "DELIVERED"}).Request(); err != nil {
		t.Fatalf("unexpected consignment status error: %v", err)
	}
	if _, err := (ConsignmentStatusForm{Status: "LOST"}).Request(); err == nil {
		t.Fatalf("expected invalid consignment status error")
	}
}

func TestUserUpdateFormPartial(t *testing.T) {
	req, err := UserUpdateForm{Role: "manager"}.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := json.Marshal(req)
	if string(body) != `{"role":"MANAGER"}` {
		t.Fatalf("unexpected body: %s", body)
	}
	if _, err := (UserUpdateForm{}).Request(); SubmitErrorMessage(err) != "No changes to save." {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserUpdateFormClearsBranch(t *testing.T) {
	req, err := UserUpdateForm{OriginalBranchID: "b1"}.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := json.Marshal(req)
	if string(body) != `{"branch_id":null}` {
		t.Fatalf("cleared branch should be sent as null, got %s", body)
	}

	req, err = UserUpdateForm{Username: "bob", BranchID: "b2", OriginalBranchID: "b1"}.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ = json.Marshal(req)
	if string(body) != `{"branch_id":"b2","username":"bob"}` {
		t.Fatalf("unexpected body: %s", body)
	}

	req, err = UserUpdateForm{Username: "bob"}.Request()
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ = json.Marshal(req)
	if string(body) != `{"username":"bob"}` {
		t.Fatalf("user without branch should not send branch_id, got %s", body)
	}
}

func TestSubmitErrorMessage(t *testing.T) {
	apiErr := &tccapi.APIError{Status: 400, Message: "Username already exists"}
	if got := SubmitErrorMessage(fmt.Errorf("wrap: %w", apiErr)); got != "Username already exists" {
		t.Fatalf("unexpected api message: %s", got)
	}
	if got := SubmitErrorMessage(&tccapi.APIError{Status: 502}); got == "" {
		t.Fatalf("api error without message should fall back to error text")
	}
	if got := SubmitErrorMessage(errors.New("dial tcp: connection refused")); got != "dial tcp: connection refused" {
		t.Fatalf("unexpected transport message: %s", got)
	}
	if got := SubmitErrorMessage(nil); got != "" {
		t.Fatalf("nil error should give empty message: %s", got)
	}
}
