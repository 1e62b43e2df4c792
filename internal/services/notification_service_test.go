package services

import (
	"context"
	"testing"

	"pneutrack/backend/internal/constants"
	models "pneutrack/backend/internal/models/gorm"
)

func seedNotifications(t *testing.T, env *testEnv) {
	t.Helper()
	rows := []models.Notification{
		{TargetRole: constants.RoleManager, Message: "Checklist sent for vehicle ABC1D23", Link: "/inspections/1"},
		{TargetRole: constants.RoleManager, Message: "Service order #1 created for vehicle ABC1D23", Link: "/orders/1"},
		{TargetRole: constants.RoleTechnician, Message: "Service authorized for vehicle ABC1D23", Link: "/authorized-services"},
	}
	for i := range rows {
		if err := env.db.Create(&rows[i]).Error; err != nil {
			t.Fatalf("failed to seed notification: %v", err)
		}
	}
}

func TestNotificationFeedFiltersByRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedNotifications(t, env)

	managerFeed, err := env.notifications.Feed(ctx, constants.RoleManager)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(managerFeed) != 2 {
		t.Errorf("expected 2 manager notifications, got %d", len(managerFeed))
	}
	for _, n := range managerFeed {
		if n.TargetRole != constants.RoleManager {
			t.Errorf("manager feed leaked a %s notification", n.TargetRole)
		}
	}

	techFeed, err := env.notifications.Feed(ctx, constants.RoleTechnician)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(techFeed) != 1 {
		t.Errorf("expected 1 technician notification, got %d", len(techFeed))
	}
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedNotifications(t, env)

	count, err := env.notifications.UnreadCount(ctx, constants.RoleManager)
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 unread, got %d", count)
	}

	feed, err := env.notifications.Feed(ctx, constants.RoleManager)
	if err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if err := env.notifications.MarkRead(ctx, constants.RoleManager, feed[0].ID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	// MarkRead dropped the cached value, so the recount hits the database
	count, err = env.notifications.UnreadCount(ctx, constants.RoleManager)
	if err != nil {
		t.Fatalf("unread count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 unread after marking, got %d", count)
	}
}
