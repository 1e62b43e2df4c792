package services

import (
	"context"
	"testing"

	"pneutrack/backend/internal/apperrors"
	"pneutrack/backend/internal/constants"
	"pneutrack/backend/internal/models/dtos"
	models "pneutrack/backend/internal/models/gorm"
)

func TestTireSearch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	fixtures := []models.Tire{
		{SerialNumber: "MIC-100", Brand: "Michelin", Model: "XZE", Size: "295/80R22.5", Status: constants.TireInStock},
		{SerialNumber: "PIR-200", Brand: "Pirelli", Model: "FR85", Size: "275/80R22.5", Status: constants.TireActive},
		{SerialNumber: "BRI-300", Brand: "Bridgestone", Model: "R268", Size: "295/80R22.5", Status: constants.TireInStock},
	}
	for i := range fixtures {
		if err := env.db.Create(&fixtures[i]).Error; err != nil {
			t.Fatalf("failed to seed tire: %v", err)
		}
	}

	got, err := env.tires.Search(ctx, "Michelin")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 1 || got[0].Brand != "Michelin" {
		t.Errorf("expected one Michelin, got %d results", len(got))
	}

	// size substring matches two
	got, err = env.tires.Search(ctx, "295/80")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 tires for size query, got %d", len(got))
	}

	// blank (after trimming) lists everything
	got, err = env.tires.Search(ctx, "   ")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected full inventory for empty query, got %d", len(got))
	}
}

func TestTireInStockOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.mustCreateTire(t, "SN-A", constants.TireInStock)
	env.mustCreateTire(t, "SN-B", constants.TireActive)
	env.mustCreateTire(t, "SN-C", constants.TireScrapped)

	got, err := env.tires.InStock(ctx)
	if err != nil {
		t.Fatalf("in-stock list failed: %v", err)
	}
	if len(got) != 1 || got[0].SerialNumber != "SN-A" {
		t.Errorf("expected only the in-stock tire, got %d results", len(got))
	}
}

func TestTireStatusEnumEnforced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.tires.Create(ctx, "m@company.com", dtos.TireRequest{
		SerialNumber: "SN-X", Status: "exploded",
	})
	if !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for unknown status, got %v", err)
	}

	tire, err := env.tires.Create(ctx, "m@company.com", dtos.TireRequest{SerialNumber: "SN-Y"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if tire.Status != constants.TireInStock {
		t.Errorf("blank status should default to in_stock, got %s", tire.Status)
	}
}

func TestBarcodeAssignAndLookup(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tire := env.mustCreateTire(t, "SN-BC", constants.TireInStock)

	if _, err := env.tires.FindByBarcode(ctx, "  "); !apperrors.IsValidation(err) {
		t.Fatalf("expected validation error for blank barcode, got %v", err)
	}

	updated, err := env.tires.SetBarcode(ctx, "m@company.com", tire.ID, "789100200300")
	if err != nil {
		t.Fatalf("set barcode failed: %v", err)
	}
	if updated.Barcode == nil || *updated.Barcode != "789100200300" {
		t.Fatalf("barcode not stored")
	}

	found, err := env.tires.FindByBarcode(ctx, "789100200300")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if found.ID != tire.ID {
		t.Errorf("lookup returned tire %d, want %d", found.ID, tire.ID)
	}

	// empty input clears the assignment
	cleared, err := env.tires.SetBarcode(ctx, "m@company.com", tire.ID, "")
	if err != nil {
		t.Fatalf("clear barcode failed: %v", err)
	}
	if cleared.Barcode != nil {
		t.Errorf("barcode should be cleared")
	}
}
