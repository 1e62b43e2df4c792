package db

import (
	"fmt"

	"gorm.io/gorm"

	"pneutrack/backend/internal/constants"
	models "pneutrack/backend/internal/models/gorm"
)

// Seed loads the demo fleet: two users, seven tires, two vehicles. No-op
// when users already exist.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []models.User{
			{Email: "manager@company.com", Name: "Manager", Role: constants.RoleManager, Password: "123456"},
			{Email: "tech@company.com", Name: "Technician", Role: constants.RoleTechnician, Password: "123456"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}

		tires := []models.Tire{
			{FireNumber: "F123", SerialNumber: "S-0001", Brand: "Michelin", Model: "X Multi", Size: "295/80 R22.5", Status: constants.TireActive, Pressure: 100, TreadDepth: 12.5},
			{FireNumber: "F124", SerialNumber: "S-0002", Brand: "Michelin", Model: "X Multi", Size: "295/80 R22.5", Status: constants.TireActive, Pressure: 100, TreadDepth: 12.0},
			{FireNumber: "F221", SerialNumber: "S-0101", Brand: "Pirelli", Model: "FG:01", Size: "275/80 R22.5", Status: constants.TireActive, Pressure: 95, TreadDepth: 10.2},
			{FireNumber: "F222", SerialNumber: "S-0102", Brand: "Pirelli", Model: "FG:01", Size: "275/80 R22.5", Status: constants.TireActive, Pressure: 96, TreadDepth: 9.8},
			{FireNumber: "F223", SerialNumber: "S-0103", Brand: "Pirelli", Model: "FG:01", Size: "275/80 R22.5", Status: constants.TireActive, Pressure: 94, TreadDepth: 9.7},
			{FireNumber: "F224", SerialNumber: "S-0104", Brand: "Pirelli", Model: "FG:01", Size: "275/80 R22.5", Status: constants.TireActive, Pressure: 95, TreadDepth: 10.1},
			{SerialNumber: "S-1000", Brand: "Bridgestone", Model: "R268", Size: "295/80 R22.5", Status: constants.TireInStock},
		}
		if err := tx.Create(&tires).Error; err != nil {
			return fmt.Errorf("failed to seed tires: %w", err)
		}

		v1 := models.Vehicle{Plate: "ABC1D23", DriverName: "João Silva", MaxKmAlert: 50000}
		if err := tx.Create(&v1).Error; err != nil {
			return fmt.Errorf("failed to seed vehicle: %w", err)
		}
		front := models.Axle{VehicleID: v1.ID, Name: "Dianteiro", OrderIndex: 1}
		rear := models.Axle{VehicleID: v1.ID, Name: "Traseiro 1º Eixo", OrderIndex: 2}
		if err := tx.Create(&front).Error; err != nil {
			return err
		}
		if err := tx.Create(&rear).Error; err != nil {
			return err
		}
		positions := []models.TirePosition{
			{VehicleID: v1.ID, AxleID: &front.ID, Label: "Dianteiro Esquerdo", TireID: &tires[0].ID},
			{VehicleID: v1.ID, AxleID: &front.ID, Label: "Dianteiro Direito", TireID: &tires[1].ID},
			{VehicleID: v1.ID, AxleID: &rear.ID, Label: "Externo Esquerdo", TireID: &tires[2].ID},
			{VehicleID: v1.ID, AxleID: &rear.ID, Label: "Interno Esquerdo", TireID: &tires[3].ID},
			{VehicleID: v1.ID, AxleID: &rear.ID, Label: "Interno Direito", TireID: &tires[4].ID},
			{VehicleID: v1.ID, AxleID: &rear.ID, Label: "Externo Direito", TireID: &tires[5].ID},
		}
		if err := tx.Create(&positions).Error; err != nil {
			return fmt.Errorf("failed to seed positions: %w", err)
		}

		v2 := models.Vehicle{Plate: "DEF4G56", DriverName: "Maria Souza", MaxKmAlert: 48000}
		if err := tx.Create(&v2).Error; err != nil {
			return fmt.Errorf("failed to seed vehicle: %w", err)
		}
		front2 := models.Axle{VehicleID: v2.ID, Name: "Dianteiro", OrderIndex: 1}
		if err := tx.Create(&front2).Error; err != nil {
			return err
		}
		empty := []models.TirePosition{
			{VehicleID: v2.ID, AxleID: &front2.ID, Label: "Dianteiro Esquerdo"},
			{VehicleID: v2.ID, AxleID: &front2.ID, Label: "Dianteiro Direito"},
		}
		return tx.Create(&empty).Error
	})
}
