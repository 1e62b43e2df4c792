package services

import (
	"context"
	"testing"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

func TestCreateInspectionSeedsChecklist(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	ins, err := env.inspections.Create(ctx, "t@company.com", v.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if ins.Status != constants.InspectionOpen {
		t.Errorf("new inspection should be open, got %s", ins.Status)
	}
	if len(ins.Items) != len(constants.DefaultChecklist) {
		t.Fatalf("expected %d checklist items, got %d", len(constants.DefaultChecklist), len(ins.Items))
	}
	for i, want := range constants.DefaultChecklist {
		if ins.Items[i].Title != want {
			t.Errorf("item %d: expected %q, got %q", i, want, ins.Items[i].Title)
		}
		if ins.Items[i].OK {
			t.Errorf("item %d should start as not-ok", i)
		}
	}
}

func TestSubmitChecklistUpdatesItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	ins, err := env.inspections.Create(ctx, "t@company.com", v.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sub := dtos.ChecklistSubmission{
		Items: []dtos.ChecklistItemUpdate{
			{ID: ins.Items[0].ID, OK: true},
			{ID: ins.Items[1].ID, OK: false, Note: "vazamento no bico"},
		},
		Notes: "verificar na próxima troca",
	}
	got, err := env.inspections.SubmitChecklist(ctx, "t@company.com", ins.ID, sub)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if got.Status != constants.InspectionOpen {
		t.Errorf("submit must not change status, got %s", got.Status)
	}
	if got.Notes != sub.Notes {
		t.Errorf("expected notes %q, got %q", sub.Notes, got.Notes)
	}
	if !got.Items[0].OK {
		t.Errorf("first item should be ok")
	}
	if got.Items[1].Note != "vazamento no bico" {
		t.Errorf("second item note not persisted, got %q", got.Items[1].Note)
	}
}

func TestSubmitChecklistRejectsForeignItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	insA, err := env.inspections.Create(ctx, "t@company.com", v.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	insB, err := env.inspections.Create(ctx, "t@company.com", v.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = env.inspections.SubmitChecklist(ctx, "t@company.com", insA.ID, dtos.ChecklistSubmission{
		Items: []dtos.ChecklistItemUpdate{{ID: insB.Items[0].ID, OK: true}},
	})
	if err == nil {
		t.Fatalf("expected error updating another inspection's item")
	}
}

func TestInspectionSendAndResolve(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	ins, err := env.inspections.Create(ctx, "t@company.com", v.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// resolve before send is refused
	if _, err := env.inspections.Resolve(ctx, "m@company.com", ins.ID, "approved"); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error resolving an open inspection, got %v", err)
	}

	sent, err := env.inspections.Send(ctx, "t@company.com", ins.ID)
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if sent.Status != constants.InspectionSent {
		t.Fatalf("expected sent, got %s", sent.Status)
	}

	// second send is refused
	if _, err := env.inspections.Send(ctx, "t@company.com", ins.ID); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error re-sending, got %v", err)
	}

	// only approved/rejected are accepted as resolutions
	if _, err := env.inspections.Resolve(ctx, "m@company.com", ins.ID, "open"); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for bogus resolution, got %v", err)
	}

	resolved, err := env.inspections.Resolve(ctx, "m@company.com", ins.ID, "rejected")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.Status != constants.InspectionRejected {
		t.Errorf("expected rejected, got %s", resolved.Status)
	}

	// send raised a manager notification, resolve a technician one
	var n int64
	env.db.Model(&models.Notification{}).Where("target_role = ?", constants.RoleManager).Count(&n)
	if n == 0 {
		t.Errorf("expected a manager notification from send")
	}
	env.db.Model(&models.Notification{}).Where("target_role = ?", constants.RoleTechnician).Count(&n)
	if n == 0 {
		t.Errorf("expected a technician notification from resolve")
	}
}
