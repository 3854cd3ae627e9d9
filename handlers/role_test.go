package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shiftpoint-backend/models"
)

func TestCreateRoleSuccess(t *testing.T) {
	db := freshDB()
	router := setupRoleRouter(db)

	_, token := seedTestUser(db, "owner@test.com", models.RoleOwner, nil)
	restaurant := seedRestaurant(db, "Cantina", -23.5505, -46.6333)

	body := map[string]string{
		"name":          "Chef de Cozinha",
		"restaurant_id": restaurant.ID.String(),
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/roles", body, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["name"] != "Chef de Cozinha" {
		t.Errorf("expected name Chef de Cozinha, got %v", resp["name"])
	}
}

func TestCreateRoleRequiresOwner(t *testing.T) {
	db := freshDB()
	router := setupRoleRouter(db)

	_, token := seedTestUser(db, "manager@test.com", models.RoleManager, nil)
	restaurant := seedRestaurant(db, "Cantina", -23.5505, -46.6333)

	body := map[string]string{
		"name":          "Garçom",
		"restaurant_id": restaurant.ID.String(),
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/roles", body, token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateRoleInvalidRestaurantID(t *testing.T) {
	db := freshDB()
	router := setupRoleRouter(db)

	_, token := seedTestUser(db, "owner@test.com", models.RoleOwner, nil)

	body := map[string]string{
		"name":          "Garçom",
		"restaurant_id": "not-a-uuid",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/roles", body, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateRoleName(t *testing.T) {
	db := freshDB()
	router := setupRoleRouter(db)

	_, token := seedTestUser(db, "owner@test.com", models.RoleOwner, nil)
	restaurant := seedRestaurant(db, "Cantina", -23.5505, -46.6333)

	role := models.FunctionRole{Name: "Garcom", RestaurantID: restaurant.ID}
	db.Create(&role)

	body := map[string]string{"name": "Garçom Sênior"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/roles/"+role.ID.String(), body, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.FunctionRole
	db.Where("id = ?", role.ID).First(&updated)
	if updated.Name != "Garçom Sênior" {
		t.Errorf("expected updated name, got %s", updated.Name)
	}
	if updated.RestaurantID != restaurant.ID {
		t.Error("restaurant assignment must survive a name-only update")
	}
}

func TestUpdateRoleNotFound(t *testing.T) {
	db := freshDB()
	router := setupRoleRouter(db)

	_, token := seedTestUser(db, "owner@test.com", models.RoleOwner, nil)

	body := map[string]string{"name": "Ghost"}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("PUT", "/api/admin/roles/00000000-0000-0000-0000-000000000000", body, token))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetRolesFilterByRestaurant(t *testing.T) {
	db := freshDB()
	router := setupRoleRouter(db)

	_, token := seedTestUser(db, "employee@test.com", models.RoleEmployee, nil)
	first := seedRestaurant(db, "Primeira", -23.5505, -46.6333)
	second := seedRestaurant(db, "Segunda", -22.9068, -43.1729)

	db.Create(&models.FunctionRole{Name: "Chef", RestaurantID: first.ID})
	db.Create(&models.FunctionRole{Name: "Garçom", RestaurantID: first.ID})
	db.Create(&models.FunctionRole{Name: "Caixa", RestaurantID: second.ID})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/roles?restaurant_id="+first.ID.String(), nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponseArray(w)
	if len(resp) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(resp))
	}
}
