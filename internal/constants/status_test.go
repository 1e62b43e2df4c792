package constants

import "testing"

func TestStatusValidity(t *testing.T) {
	valid := []struct {
		name string
		ok   bool
	}{
		{"in_stock", TireStatus("in_stock").IsValid()},
		{"rotation", TireStatus("rotation").IsValid()},
		{"exploded", TireStatus("exploded").IsValid()},
		{"open", OrderStatus("open").IsValid()},
		{"finished", OrderStatus("finished").IsValid()},
		{"authorized", ServiceStatus("authorized").IsValid()},
		{"sent", InspectionStatus("sent").IsValid()},
	}
	want := []bool{true, true, false, true, false, true, true}
	for i, c := range valid {
		if c.ok != want[i] {
			t.Errorf("%s: validity = %v, want %v", c.name, c.ok, want[i])
		}
	}
}

func TestStatusScanValue(t *testing.T) {
	var ts TireStatus
	if err := ts.Scan("active"); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if ts != TireActive {
		t.Errorf("scan produced %s", ts)
	}

	v, err := ts.Value()
	if err != nil {
		t.Fatalf("value failed: %v", err)
	}
	if v != "active" {
		t.Errorf("value produced %v", v)
	}

	if err := ts.Scan([]byte("repair")); err != nil {
		t.Fatalf("scan from bytes failed: %v", err)
	}
	if ts != TireRepair {
		t.Errorf("scan from bytes produced %s", ts)
	}
}

func TestRoleValidity(t *testing.T) {
	if !RoleManager.IsValid() || !RoleTechnician.IsValid() {
		t.Errorf("built-in roles must be valid")
	}
	if Role("admin").IsValid() {
		t.Errorf("unknown role must be invalid")
	}
}

func TestDefaultChecklistShape(t *testing.T) {
	if len(DefaultChecklist) != 5 {
		t.Fatalf("default checklist must carry 5 items, got %d", len(DefaultChecklist))
	}
	if DefaultChecklist[0] != "Calibragem verificada" {
		t.Errorf("unexpected first item %q", DefaultChecklist[0])
	}
}
