package serializers

import (
	"encoding/json"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRestaurant() models.Restaurant {
	emma := models.Pizza{ID: 1, Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"}
	geri := models.Pizza{ID: 2, Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"}
	restaurant := models.Restaurant{ID: 7, Name: "Karen's Pizza Shack", Address: "address1"}
	restaurant.RestaurantPizzas = []models.RestaurantPizza{
		{ID: 11, Price: 10, RestaurantID: 7, PizzaID: 1, Pizza: emma, Restaurant: restaurant},
		{ID: 12, Price: 12.5, RestaurantID: 7, PizzaID: 2, Pizza: geri, Restaurant: restaurant},
	}
	return restaurant
}

// toMap encodes v and decodes it back as the generic structure a client sees
func toMap(t *testing.T, v interface{}) interface{} {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var decoded interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return decoded
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestRestaurantListShape(t *testing.T) {
	shaped := toMap(t, NewRestaurants([]models.Restaurant{sampleRestaurant()})).([]interface{})
	require.Len(t, shaped, 1)

	restaurant := shaped[0].(map[string]interface{})
	assert.ElementsMatch(t, []string{"id", "name", "address"}, keys(restaurant))
	assert.Equal(t, "Karen's Pizza Shack", restaurant["name"])
}

func TestRestaurantListShapeEmpty(t *testing.T) {
	raw, err := json.Marshal(NewRestaurants(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestRestaurantDetailShape(t *testing.T) {
	detail := toMap(t, NewRestaurantDetail(sampleRestaurant())).(map[string]interface{})
	assert.ElementsMatch(t, []string{"id", "name", "address", "restaurant_pizzas"}, keys(detail))

	offerings := detail["restaurant_pizzas"].([]interface{})
	require.Len(t, offerings, 2)
	for _, o := range offerings {
		offering := o.(map[string]interface{})
		assert.ElementsMatch(t, []string{"id", "pizza_id", "restaurant_id", "price", "pizza"}, keys(offering))

		pizza := offering["pizza"].(map[string]interface{})
		assert.ElementsMatch(t, []string{"id", "name", "ingredients"}, keys(pizza))
		assert.NotContains(t, pizza, "restaurants")
	}

	second := offerings[1].(map[string]interface{})
	assert.Equal(t, 12.5, second["price"])
	assert.Equal(t, 2.0, second["pizza_id"])
	assert.Equal(t, "Geri", second["pizza"].(map[string]interface{})["name"])
}

func TestRestaurantDetailWithoutOfferings(t *testing.T) {
	raw, err := json.Marshal(NewRestaurantDetail(models.Restaurant{ID: 3, Name: "Kiki's Pizza", Address: "address3"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Kiki's Pizza","address":"address3","restaurant_pizzas":[]}`, string(raw))
}

func TestPizzaListShape(t *testing.T) {
	raw, err := json.Marshal(NewPizzas([]models.Pizza{{ID: 1, Name: "Emma", Ingredients: "Dough"}}))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Emma","ingredients":"Dough"}]`, string(raw))
}

func TestCreatedRestaurantPizzaShape(t *testing.T) {
	offering := sampleRestaurant().RestaurantPizzas[0]

	raw, err := json.Marshal(NewCreatedRestaurantPizza(offering))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 11,
		"price": 10,
		"pizza_id": 1,
		"restaurant_id": 7,
		"pizza": {"id": 1, "ingredients": "Dough, Tomato Sauce, Cheese", "name": "Emma"},
		"restaurant": {"id": 7, "name": "Karen's Pizza Shack", "address": "address1"}
	}`, string(raw))
}
