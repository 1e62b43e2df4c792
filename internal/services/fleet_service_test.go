package services

import (
	"context"
	"testing"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

func TestMountUnmountRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	pos := env.mustCreatePosition(t, v.ID, "1E")
	tire := env.mustCreateTire(t, "SN-001", constants.TireInStock)

	if err := env.fleet.Mount(ctx, "tester@company.com", pos.ID, tire.ID); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	var gotPos models.TirePosition
	if err := env.db.First(&gotPos, pos.ID).Error; err != nil {
		t.Fatalf("failed to reload position: %v", err)
	}
	if gotPos.TireID == nil || *gotPos.TireID != tire.ID {
		t.Errorf("position should reference tire %d, got %v", tire.ID, gotPos.TireID)
	}

	var gotTire models.Tire
	if err := env.db.First(&gotTire, tire.ID).Error; err != nil {
		t.Fatalf("failed to reload tire: %v", err)
	}
	if gotTire.Status != constants.TireActive {
		t.Errorf("mounted tire should be active, got %s", gotTire.Status)
	}

	if err := env.fleet.Unmount(ctx, "tester@company.com", pos.ID); err != nil {
		t.Fatalf("unmount failed: %v", err)
	}

	if err := env.db.First(&gotPos, pos.ID).Error; err != nil {
		t.Fatalf("failed to reload position: %v", err)
	}
	if gotPos.TireID != nil {
		t.Errorf("position should be empty after unmount, got tire %d", *gotPos.TireID)
	}

	if err := env.db.First(&gotTire, tire.ID).Error; err != nil {
		t.Fatalf("failed to reload tire: %v", err)
	}
	if gotTire.Status != constants.TireInStock {
		t.Errorf("unmounted tire should be back in stock, got %s", gotTire.Status)
	}

	var histCount int64
	env.db.Model(&models.HistoryEntry{}).Where("tire_id = ?", tire.ID).Count(&histCount)
	if histCount != 2 {
		t.Errorf("expected 2 history entries (mount + unmount), got %d", histCount)
	}
}

func TestMountRejectsNonStockTire(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	pos := env.mustCreatePosition(t, v.ID, "1E")
	tire := env.mustCreateTire(t, "SN-002", constants.TireRepair)

	err := env.fleet.Mount(ctx, "tester@company.com", pos.ID, tire.ID)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for non-stock tire, got %v", err)
	}
}

func TestMountRejectsDoubleMount(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	posA := env.mustCreatePosition(t, v.ID, "1E")
	posB := env.mustCreatePosition(t, v.ID, "1D")
	tire := env.mustCreateTire(t, "SN-003", constants.TireInStock)

	if err := env.fleet.Mount(ctx, "tester@company.com", posA.ID, tire.ID); err != nil {
		t.Fatalf("first mount failed: %v", err)
	}

	err := env.fleet.Mount(ctx, "tester@company.com", posB.ID, tire.ID)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for double mount, got %v", err)
	}

	// stale status path: force the tire back to in_stock without clearing
	// the position, the occupancy check must still refuse
	if err := env.db.Model(&models.Tire{}).Where("id = ?", tire.ID).
		Update("status", constants.TireInStock).Error; err != nil {
		t.Fatalf("failed to force status: %v", err)
	}
	err = env.fleet.Mount(ctx, "tester@company.com", posB.ID, tire.ID)
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error from occupancy check, got %v", err)
	}
}

func TestUnmountEmptyPositionIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	pos := env.mustCreatePosition(t, v.ID, "1E")

	if err := env.fleet.Unmount(ctx, "tester@company.com", pos.ID); err != nil {
		t.Fatalf("unmount of empty position should be a no-op, got %v", err)
	}
}

func TestDeleteVehicleCascades(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	pos := env.mustCreatePosition(t, v.ID, "1E")
	tire := env.mustCreateTire(t, "SN-010", constants.TireInStock)
	if err := env.fleet.Mount(ctx, "tester@company.com", pos.ID, tire.ID); err != nil {
		t.Fatalf("mount failed: %v", err)
	}

	axle := models.Axle{VehicleID: v.ID, Name: "Dianteiro", OrderIndex: 0}
	if err := env.db.Create(&axle).Error; err != nil {
		t.Fatalf("failed to create axle: %v", err)
	}

	order, err := env.orders.Create(ctx, "tester@company.com", dtos.OrderRequest{VehicleID: v.ID, Description: "Troca de pneus"})
	if err != nil {
		t.Fatalf("failed to create order: %v", err)
	}
	if _, err := env.orders.AddItem(ctx, "tester@company.com", order.ID, dtos.LineItemRequest{
		Description: "Pneu novo", Quantity: "2", UnitValue: "1500.00",
	}); err != nil {
		t.Fatalf("failed to add item: %v", err)
	}

	svc := models.AuthorizedService{VehicleID: v.ID, Description: "Alinhamento", Status: constants.ServiceAuthorized}
	if err := env.db.Create(&svc).Error; err != nil {
		t.Fatalf("failed to create authorized service: %v", err)
	}

	if err := env.fleet.DeleteVehicle(ctx, "tester@company.com", v.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	counts := map[string]interface{}{
		"positions":   &models.TirePosition{},
		"axles":       &models.Axle{},
		"orders":      &models.ServiceOrder{},
		"items":       &models.OrderLineItem{},
		"services":    &models.AuthorizedService{},
		"history":     &models.HistoryEntry{},
		"attachments": &models.Attachment{},
	}
	for name, model := range counts {
		var n int64
		env.db.Model(model).Count(&n)
		if n != 0 {
			t.Errorf("%s should be gone after vehicle delete, %d left", name, n)
		}
	}

	// the mounted tire survives with its status untouched
	var gotTire models.Tire
	if err := env.db.First(&gotTire, tire.ID).Error; err != nil {
		t.Fatalf("tire should survive vehicle delete: %v", err)
	}
	if gotTire.Status != constants.TireActive {
		t.Errorf("surviving tire keeps its status, got %s", gotTire.Status)
	}
}

func TestVehicleDetailGroupsByAxle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "DEF4G56")

	front := models.Axle{VehicleID: v.ID, Name: "Dianteiro", OrderIndex: 0}
	rear := models.Axle{VehicleID: v.ID, Name: "Traseiro 1º Eixo", OrderIndex: 1}
	for _, a := range []*models.Axle{&front, &rear} {
		if err := env.db.Create(a).Error; err != nil {
			t.Fatalf("failed to create axle: %v", err)
		}
	}

	mk := func(label string, axleID *uint) {
		p := models.TirePosition{VehicleID: v.ID, AxleID: axleID, Label: label}
		if err := env.db.Create(&p).Error; err != nil {
			t.Fatalf("failed to create position: %v", err)
		}
	}
	mk("1E", &front.ID)
	mk("1D", &front.ID)
	mk("2E", &rear.ID)
	mk("Estepe", nil)

	detail, err := env.fleet.VehicleDetail(ctx, v.ID)
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}

	if len(detail.Groups) != 3 {
		t.Fatalf("expected 3 groups (2 axles + unassigned), got %d", len(detail.Groups))
	}
	if detail.Groups[0].Axle == nil || detail.Groups[0].Axle.Name != "Dianteiro" {
		t.Errorf("first group should be the front axle")
	}
	if len(detail.Groups[0].Positions) != 2 {
		t.Errorf("front axle should carry 2 positions, got %d", len(detail.Groups[0].Positions))
	}
	last := detail.Groups[len(detail.Groups)-1]
	if last.Axle != nil || len(last.Positions) != 1 || last.Positions[0].Label != "Estepe" {
		t.Errorf("unassigned positions should come last under a nil axle")
	}
}

func TestCreateVehicleDefaultsKmAlert(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v, err := env.fleet.CreateVehicle(ctx, "tester@company.com", dtos.VehicleRequest{
		Plate: "GHI7J89", DriverName: "Carlos Lima",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if v.MaxKmAlert != 50000 {
		t.Errorf("expected default km alert 50000, got %d", v.MaxKmAlert)
	}
}
