package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixtures struct {
	karens  models.Restaurant
	sanjays models.Restaurant
	emma    models.Pizza
	geri    models.Pizza
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: database.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.Migrate(db))
	return db
}

func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	f := fixtures{
		karens:  models.Restaurant{Name: "Karen's Pizza Shack", Address: "address1"},
		sanjays: models.Restaurant{Name: "Sanjay's Pizza", Address: "address2"},
		emma:    models.Pizza{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
		geri:    models.Pizza{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	}
	require.NoError(t, db.Create(&f.karens).Error)
	require.NoError(t, db.Create(&f.sanjays).Error)
	require.NoError(t, db.Create(&f.emma).Error)
	require.NoError(t, db.Create(&f.geri).Error)

	offerings := []models.RestaurantPizza{
		{RestaurantID: f.karens.ID, PizzaID: f.emma.ID, Price: 10},
		{RestaurantID: f.karens.ID, PizzaID: f.geri.ID, Price: 12},
		{RestaurantID: f.sanjays.ID, PizzaID: f.emma.ID, Price: 9},
	}
	require.NoError(t, db.Create(&offerings).Error)
	return f
}

func countOfferings(t *testing.T, db *gorm.DB, query string, args ...interface{}) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where(query, args...).Count(&count).Error)
	return count
}

var ctx = context.Background()
