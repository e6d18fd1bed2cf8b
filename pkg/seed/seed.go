// Package seed builds the demo supply chain dataset the service starts
// from. The store captures a deep copy of it as the initial snapshot for
// reset semantics.
package seed

import (
	"time"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// State builds a fresh demo state: 3 SKUs, 2 factories, 3 distribution
// centers, 4 retail locations, a small transport fleet and the route graph
// connecting them. Timestamps are taken at build time.
func State() *models.SupplyChainState {
	now := time.Now().UnixMilli()

	return &models.SupplyChainState{
		ID:        "scv1-demo-001",
		Timestamp: now,
		SKUs: []models.SKU{
			{ID: "skuA", Name: "Widget A", Price: 100, CostToProduce: 60},
			{ID: "skuB", Name: "Widget B", Price: 150, CostToProduce: 90},
			{ID: "skuC", Name: "Widget C", Price: 200, CostToProduce: 120},
		},
		Factories: []models.Factory{
			{
				ID:              "f1",
				Name:            "Factory Shanghai",
				Location:        models.Location{Lat: 31.2304, Lng: 121.4737},
				ProductionRates: map[string]float64{"skuA": 100, "skuB": 80, "skuC": 60},
				ProductionTimes: map[string]float64{"skuA": 1, "skuB": 1, "skuC": 2},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 1000},
					{SKUID: "skuB", Quantity: 800},
					{SKUID: "skuC", Quantity: 600},
				},
			},
			{
				ID:              "f2",
				Name:            "Factory Chicago",
				Location:        models.Location{Lat: 41.8781, Lng: -87.6298},
				ProductionRates: map[string]float64{"skuA": 80, "skuB": 100, "skuC": 70},
				ProductionTimes: map[string]float64{"skuA": 1, "skuB": 1, "skuC": 2},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 900},
					{SKUID: "skuB", Quantity: 900},
					{SKUID: "skuC", Quantity: 700},
				},
			},
		},
		DistributionCenters: []models.DistributionCenter{
			{
				ID:       "dc1",
				Name:     "DC Rotterdam",
				Location: models.Location{Lat: 51.9225, Lng: 4.47917},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 400, MinInventory: intPtr(100), MaxInventory: intPtr(1000)},
					{SKUID: "skuB", Quantity: 200, MinInventory: intPtr(50), MaxInventory: intPtr(500)},
					{SKUID: "skuC", Quantity: 100, MinInventory: intPtr(20), MaxInventory: intPtr(200)},
				},
			},
			{
				ID:       "dc2",
				Name:     "DC Dubai",
				Location: models.Location{Lat: 25.276987, Lng: 55.296249},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 300, MinInventory: intPtr(80), MaxInventory: intPtr(800)},
					{SKUID: "skuB", Quantity: 250, MinInventory: intPtr(60), MaxInventory: intPtr(600)},
					{SKUID: "skuC", Quantity: 150, MinInventory: intPtr(30), MaxInventory: intPtr(300)},
				},
			},
			{
				ID:       "dc3",
				Name:     "DC Los Angeles",
				Location: models.Location{Lat: 34.0522, Lng: -118.2437},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 350, MinInventory: intPtr(90), MaxInventory: intPtr(900)},
					{SKUID: "skuB", Quantity: 300, MinInventory: intPtr(70), MaxInventory: intPtr(700)},
					{SKUID: "skuC", Quantity: 200, MinInventory: intPtr(40), MaxInventory: intPtr(400)},
				},
			},
		},
		Retails: []models.Retail{
			{
				ID:       "r1",
				Name:     "Retail Berlin",
				Location: models.Location{Lat: 52.52, Lng: 13.405},
				Inventory: []models.InventoryRecord{
					// Berlin starts stocked out of skuA so the demo surfaces a
					// disruption before any operator action.
					{SKUID: "skuA", Quantity: 0, MinInventory: intPtr(10), MaxInventory: intPtr(100)},
					{SKUID: "skuB", Quantity: 20, MinInventory: intPtr(10), MaxInventory: intPtr(50)},
					{SKUID: "skuC", Quantity: 10, MinInventory: intPtr(5), MaxInventory: intPtr(30)},
				},
				Demand: map[string]float64{"skuA": 30, "skuB": 20, "skuC": 10},
			},
			{
				ID:       "r2",
				Name:     "Retail Paris",
				Location: models.Location{Lat: 48.8566, Lng: 2.3522},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 40, MinInventory: intPtr(10), MaxInventory: intPtr(100)},
					{SKUID: "skuB", Quantity: 30, MinInventory: intPtr(10), MaxInventory: intPtr(50)},
					{SKUID: "skuC", Quantity: 15, MinInventory: intPtr(5), MaxInventory: intPtr(30)},
				},
				Demand: map[string]float64{"skuA": 25, "skuB": 15, "skuC": 10},
			},
			{
				ID:       "r3",
				Name:     "Retail Dubai",
				Location: models.Location{Lat: 25.2048, Lng: 55.2708},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 60, MinInventory: intPtr(10), MaxInventory: intPtr(100)},
					{SKUID: "skuB", Quantity: 25, MinInventory: intPtr(10), MaxInventory: intPtr(50)},
					{SKUID: "skuC", Quantity: 20, MinInventory: intPtr(5), MaxInventory: intPtr(30)},
				},
				Demand: map[string]float64{"skuA": 20, "skuB": 10, "skuC": 10},
			},
			{
				ID:       "r4",
				Name:     "Retail Los Angeles",
				Location: models.Location{Lat: 34.0522, Lng: -118.2437},
				Inventory: []models.InventoryRecord{
					{SKUID: "skuA", Quantity: 70, MinInventory: intPtr(10), MaxInventory: intPtr(100)},
					{SKUID: "skuB", Quantity: 40, MinInventory: intPtr(10), MaxInventory: intPtr(50)},
					{SKUID: "skuC", Quantity: 25, MinInventory: intPtr(5), MaxInventory: intPtr(30)},
				},
				Demand: map[string]float64{"skuA": 35, "skuB": 20, "skuC": 15},
			},
		},
		Trucks: []models.Vehicle{
			{ID: "t1", Location: models.Location{Lat: 51.9225, Lng: 4.47917}, MaxLoad: 100, Cargo: []models.InventoryRecord{}, CurrentDestination: "r1", Status: models.VehicleStatusIdle},
		},
		Ships: []models.Vehicle{
			{ID: "s1", Location: models.Location{Lat: 30.5852, Lng: 32.2654}, MaxLoad: 1000, Cargo: []models.InventoryRecord{}, CurrentDestination: "dc1", Status: models.VehicleStatusIdle},
		},
		Airplanes: []models.Vehicle{
			{ID: "a1", Location: models.Location{Lat: 41.9786, Lng: -87.9048}, MaxLoad: 200, Cargo: []models.InventoryRecord{}, CurrentDestination: "dc1", Status: models.VehicleStatusIdle},
			{ID: "a2", Location: models.Location{Lat: 25.2532, Lng: 55.3657}, MaxLoad: 220, Cargo: []models.InventoryRecord{}, CurrentDestination: "dc2", Status: models.VehicleStatusIdle},
			{ID: "a3", Location: models.Location{Lat: 48.3538, Lng: 11.7861}, MaxLoad: 210, Cargo: []models.InventoryRecord{}, CurrentDestination: "dc1", Status: models.VehicleStatusIdle},
			{ID: "a4", Location: models.Location{Lat: 35.5494, Lng: 139.7798}, MaxLoad: 230, Cargo: []models.InventoryRecord{}, CurrentDestination: "dc1", Status: models.VehicleStatusIdle},
			{ID: "a5", Location: models.Location{Lat: 33.9425, Lng: -118.4081}, MaxLoad: 250, Cargo: []models.InventoryRecord{}, CurrentDestination: "dc1", Status: models.VehicleStatusIdle},
		},
		Routes: []models.Route{
			// Factory to DC
			{ID: "r-f1-dc1", From: "f1", To: "dc1", Distance: 20000, ExpectedTravelTime: 10, Cost: 5000, Status: models.RouteStatusOpen, Risk: floatPtr(0.1), Mode: models.TransportModeShip},
			{ID: "r-f1-dc2", From: "f1", To: "dc2", Distance: 18000, ExpectedTravelTime: 9, Cost: 4800, Status: models.RouteStatusOpen, Risk: floatPtr(0.12), Mode: models.TransportModeShip},
			{ID: "r-f1-dc3", From: "f1", To: "dc3", Distance: 10000, ExpectedTravelTime: 6, Cost: 3000, Status: models.RouteStatusOpen, Risk: floatPtr(0.09), Mode: models.TransportModeAir},
			{ID: "r-f2-dc1", From: "f2", To: "dc1", Distance: 7000, ExpectedTravelTime: 2, Cost: 2000, Status: models.RouteStatusOpen, Risk: floatPtr(0.08), Mode: models.TransportModeAir},
			{ID: "r-f2-dc2", From: "f2", To: "dc2", Distance: 11000, ExpectedTravelTime: 5, Cost: 2500, Status: models.RouteStatusOpen, Risk: floatPtr(0.11), Mode: models.TransportModeShip},
			{ID: "r-f2-dc3", From: "f2", To: "dc3", Distance: 3000, ExpectedTravelTime: 1, Cost: 1000, Status: models.RouteStatusOpen, Risk: floatPtr(0.07), Mode: models.TransportModeTruck},
			// DC to Retail
			{ID: "r-dc1-r1", From: "dc1", To: "r1", Distance: 800, ExpectedTravelTime: 1, Cost: 200, Status: models.RouteStatusOpen, Risk: floatPtr(0.05), Mode: models.TransportModeTruck},
			{ID: "r-dc1-r2", From: "dc1", To: "r2", Distance: 900, ExpectedTravelTime: 1, Cost: 220, Status: models.RouteStatusOpen, Risk: floatPtr(0.06), Mode: models.TransportModeTruck},
			{ID: "r-dc2-r3", From: "dc2", To: "r3", Distance: 20, ExpectedTravelTime: 0.1, Cost: 50, Status: models.RouteStatusOpen, Risk: floatPtr(0.03), Mode: models.TransportModeTruck},
			{ID: "r-dc3-r4", From: "dc3", To: "r4", Distance: 30, ExpectedTravelTime: 0.2, Cost: 60, Status: models.RouteStatusOpen, Risk: floatPtr(0.04), Mode: models.TransportModeTruck},
			{ID: "r-dc2-r4", From: "dc2", To: "r4", Distance: 1200, ExpectedTravelTime: 2, Cost: 300, Status: models.RouteStatusOpen, Risk: floatPtr(0.09), Mode: models.TransportModeAir},
			{ID: "r-dc3-r1", From: "dc3", To: "r1", Distance: 950, ExpectedTravelTime: 1.2, Cost: 250, Status: models.RouteStatusOpen, Risk: floatPtr(0.07), Mode: models.TransportModeTruck},
			// Cross-DC
			{ID: "r-dc1-dc2", From: "dc1", To: "dc2", Distance: 6000, ExpectedTravelTime: 4, Cost: 1500, Status: models.RouteStatusOpen, Risk: floatPtr(0.13), Mode: models.TransportModeShip},
			{ID: "r-dc2-dc3", From: "dc2", To: "dc3", Distance: 13000, ExpectedTravelTime: 7, Cost: 3000, Status: models.RouteStatusOpen, Risk: floatPtr(0.15), Mode: models.TransportModeShip},
			{ID: "r-dc3-dc1", From: "dc3", To: "dc1", Distance: 8000, ExpectedTravelTime: 3, Cost: 1800, Status: models.RouteStatusOpen, Risk: floatPtr(0.1), Mode: models.TransportModeTruck},
			// Direct factory to retail express air
			{ID: "r-f1-r4", From: "f1", To: "r4", Distance: 12000, ExpectedTravelTime: 5, Cost: 3500, Status: models.RouteStatusOpen, Risk: floatPtr(0.14), Mode: models.TransportModeAir},
			{ID: "r-f2-r1", From: "f2", To: "r1", Distance: 8000, ExpectedTravelTime: 3, Cost: 2200, Status: models.RouteStatusOpen, Risk: floatPtr(0.12), Mode: models.TransportModeAir},
		},
		Orders: []models.Order{
			{ID: "o1", From: "dc1", To: "r1", SKUID: "skuA", Quantity: 30, DueTime: now + 3600*1000},
		},
		Events: []models.SupplyChainEvent{
			{ID: "e1", Type: models.EventTypeShipment, Timestamp: now, Details: map[string]any{"from": "dc1", "to": "r1", "skuId": "skuA", "quantity": 30}},
		},
	}
}
