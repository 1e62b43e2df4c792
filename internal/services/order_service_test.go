package services

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

func orderTotal(t *testing.T, env *testEnv, orderID uint) decimal.Decimal {
	t.Helper()
	var o models.ServiceOrder
	if err := env.db.First(&o, orderID).Error; err != nil {
		t.Fatalf("failed to reload order: %v", err)
	}
	return o.TotalCost
}

func TestOrderTotalFollowsItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	actor := "manager@company.com"

	v := env.mustCreateVehicle(t, "ABC1D23")
	order, err := env.orders.Create(ctx, actor, dtos.OrderRequest{VehicleID: v.ID, Description: "Manutenção"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !orderTotal(t, env, order.ID).IsZero() {
		t.Fatalf("fresh order should total zero")
	}

	itemA, err := env.orders.AddItem(ctx, actor, order.ID, dtos.LineItemRequest{
		Description: "Pneu 295/80", Quantity: "2", UnitValue: "1499.90",
	})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if _, err := env.orders.AddItem(ctx, actor, order.ID, dtos.LineItemRequest{
		Description: "Mão de obra", Quantity: "1.5", UnitValue: "120.00",
	}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	want := decimal.RequireFromString("3179.80") // 2*1499.90 + 1.5*120.00
	if got := orderTotal(t, env, order.ID); !got.Equal(want) {
		t.Errorf("expected total %s, got %s", want, got)
	}

	if err := env.orders.RemoveItem(ctx, actor, itemA.ID); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}
	want = decimal.RequireFromString("180.00")
	if got := orderTotal(t, env, order.ID); !got.Equal(want) {
		t.Errorf("expected total %s after removal, got %s", want, got)
	}
}

func TestOrderTotalAfterRandomAddRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	actor := "manager@company.com"
	rng := rand.New(rand.NewSource(42))

	v := env.mustCreateVehicle(t, "ABC1D23")
	order, err := env.orders.Create(ctx, actor, dtos.OrderRequest{VehicleID: v.ID, Description: "Manutenção"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	type live struct {
		id       uint
		subtotal decimal.Decimal
	}
	var items []live

	for i := 0; i < 30; i++ {
		if len(items) > 0 && rng.Intn(3) == 0 {
			pick := rng.Intn(len(items))
			if err := env.orders.RemoveItem(ctx, actor, items[pick].id); err != nil {
				t.Fatalf("remove item failed: %v", err)
			}
			items = append(items[:pick], items[pick+1:]...)
			continue
		}

		qty := decimal.NewFromInt(int64(1 + rng.Intn(5)))
		unit := decimal.NewFromInt(int64(rng.Intn(200000))).Div(decimal.NewFromInt(100))
		item, err := env.orders.AddItem(ctx, actor, order.ID, dtos.LineItemRequest{
			Description: "Item", Quantity: qty.String(), UnitValue: unit.String(),
		})
		if err != nil {
			t.Fatalf("add item failed: %v", err)
		}
		items = append(items, live{id: item.ID, subtotal: qty.Mul(unit).Round(2)})
	}

	want := decimal.Zero
	for _, it := range items {
		want = want.Add(it.subtotal)
	}
	if got := orderTotal(t, env, order.ID); !got.Equal(want) {
		t.Errorf("expected total %s over %d items, got %s", want, len(items), got)
	}
}

func TestAddItemRejectsMalformedNumbers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	order, err := env.orders.Create(ctx, "m@company.com", dtos.OrderRequest{VehicleID: v.ID, Description: "Manutenção"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = env.orders.AddItem(ctx, "m@company.com", order.ID, dtos.LineItemRequest{
		Description: "Pneu", Quantity: "dois", UnitValue: "100",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for malformed quantity, got %v", err)
	}
}

func TestOrderStatusEnumEnforced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	order, err := env.orders.Create(ctx, "m@company.com", dtos.OrderRequest{VehicleID: v.ID, Description: "Manutenção"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := env.orders.SetStatus(ctx, "m@company.com", order.ID, "finished"); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}

	got, err := env.orders.SetStatus(ctx, "m@company.com", order.ID, "approved")
	if err != nil {
		t.Fatalf("valid status change failed: %v", err)
	}
	if got.Status != constants.OrderApproved {
		t.Errorf("expected approved, got %s", got.Status)
	}
}

func TestOrderWorkflowNotifications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	order, err := env.orders.Create(ctx, "t@company.com", dtos.OrderRequest{VehicleID: v.ID, Description: "Manutenção"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// create notifies the manager role
	var n models.Notification
	if err := env.db.Where("target_role = ?", constants.RoleManager).First(&n).Error; err != nil {
		t.Fatalf("expected manager notification after create: %v", err)
	}

	// status change notifies the technician role
	if _, err := env.orders.SetStatus(ctx, "m@company.com", order.ID, "completed"); err != nil {
		t.Fatalf("status change failed: %v", err)
	}
	var n2 models.Notification
	if err := env.db.Where("target_role = ?", constants.RoleTechnician).First(&n2).Error; err != nil {
		t.Fatalf("expected technician notification after status change: %v", err)
	}
}

func TestAuthorizedServiceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")
	svc, err := env.orders.Authorize(ctx, "m@company.com", dtos.AuthorizeServiceRequest{
		VehicleID: v.ID, Description: "Alinhamento",
	})
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if svc.Status != constants.ServiceAuthorized {
		t.Fatalf("new service should be authorized, got %s", svc.Status)
	}

	done, err := env.orders.SetAuthorizedServiceStatus(ctx, "t@company.com", svc.ID, "completed")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if done.Status != constants.ServiceCompleted {
		t.Errorf("expected completed, got %s", done.Status)
	}

	// a finished service cannot be flipped again
	if _, err := env.orders.SetAuthorizedServiceStatus(ctx, "t@company.com", svc.ID, "canceled"); !apperrors.IsValidation(err) {
		t.Errorf("expected validation error moving a completed service, got %v", err)
	}
}

func TestTechnicianQueueShowsPendingWork(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v := env.mustCreateVehicle(t, "ABC1D23")

	pending, err := env.orders.Authorize(ctx, "m@company.com", dtos.AuthorizeServiceRequest{
		VehicleID: v.ID, Description: "Alinhamento",
	})
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	finished, err := env.orders.Authorize(ctx, "m@company.com", dtos.AuthorizeServiceRequest{
		VehicleID: v.ID, Description: "Balanceamento",
	})
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if _, err := env.orders.SetAuthorizedServiceStatus(ctx, "t@company.com", finished.ID, "completed"); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	open, err := env.orders.Create(ctx, "m@company.com", dtos.OrderRequest{VehicleID: v.ID, Description: "Troca de pneus"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	closed, err := env.orders.Create(ctx, "m@company.com", dtos.OrderRequest{VehicleID: v.ID, Description: "Revisão"})
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if _, err := env.orders.SetStatus(ctx, "m@company.com", closed.ID, "completed"); err != nil {
		t.Fatalf("status change failed: %v", err)
	}

	queue, err := env.orders.TechnicianQueue(ctx)
	if err != nil {
		t.Fatalf("queue failed: %v", err)
	}
	if len(queue.PendingServices) != 1 || queue.PendingServices[0].ID != pending.ID {
		t.Errorf("expected only the authorized service in the queue, got %+v", queue.PendingServices)
	}
	if len(queue.OpenOrders) != 1 || queue.OpenOrders[0].ID != open.ID {
		t.Errorf("expected only the open order in the queue, got %+v", queue.OpenOrders)
	}
}
