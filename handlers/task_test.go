package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shiftpoint-backend/models"
)

func TestCreateTaskSuccess(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "manager@test.com", models.RoleManager, nil)
	employee, _ := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)

	body := map[string]interface{}{
		"description": "Limpar a cozinha",
		"assignee_id": employee.ID.String(),
		"start_time":  "14:00",
		"end_time":    "15:00",
		"frequency":   "daily",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/tasks", body, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["completed"] != false {
		t.Errorf("new task must start incomplete, got %v", resp["completed"])
	}
	if resp["deadline_minutes"] != float64(60) {
		t.Errorf("expected default deadline 60, got %v", resp["deadline_minutes"])
	}
}

func TestCreateTaskEmptyDescriptionAllowed(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "manager@test.com", models.RoleManager, nil)
	employee, _ := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)

	body := map[string]interface{}{
		"assignee_id": employee.ID.String(),
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/tasks", body, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateTaskUnknownAssignee(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "manager@test.com", models.RoleManager, nil)

	body := map[string]interface{}{
		"description": "Limpar a cozinha",
		"assignee_id": "00000000-0000-0000-0000-000000000000",
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/tasks", body, token))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateTaskInheritsAssigneeRestaurant(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	restaurant := seedRestaurant(db, "Cantina", -23.5505, -46.6333)
	restaurantID := restaurant.ID
	_, token := seedTestUser(db, "manager@test.com", models.RoleManager, nil)
	employee, _ := seedTestUser(db, "worker@test.com", models.RoleEmployee, &restaurantID)

	body := map[string]interface{}{
		"description": "Conferir estoque",
		"assignee_id": employee.ID.String(),
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/admin/tasks", body, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponse(w)
	if resp["restaurant_id"] != restaurant.ID.String() {
		t.Errorf("expected restaurant_id %s, got %v", restaurant.ID, resp["restaurant_id"])
	}
}

func TestGetMyTasksOnlyOwn(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	worker, token := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)
	other, _ := seedTestUser(db, "other@test.com", models.RoleEmployee, nil)

	seedTask(db, "Minha tarefa 1", worker.ID, false)
	seedTask(db, "Minha tarefa 2", worker.ID, true)
	seedTask(db, "Tarefa alheia", other.ID, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/me/tasks", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponseArray(w)
	if len(resp) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(resp))
	}
	for _, entry := range resp {
		task := entry.(map[string]interface{})
		if task["assignee_id"] != worker.ID.String() {
			t.Errorf("listing leaked a task assigned to %v", task["assignee_id"])
		}
	}
}

func TestGetMyTasksEmpty(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/me/tasks", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponseArray(w)
	if len(resp) != 0 {
		t.Fatalf("expected empty list, got %d tasks", len(resp))
	}
}

func TestToggleTaskFlipsAndFlipsBack(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	worker, token := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)
	task := seedTask(db, "Limpar mesas", worker.ID, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/tasks/"+task.ID.String()+"/toggle", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Task
	db.Where("id = ?", task.ID).First(&stored)
	if !stored.Completed {
		t.Fatal("first toggle must mark the task complete")
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/tasks/"+task.ID.String()+"/toggle", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	db.Where("id = ?", task.ID).First(&stored)
	if stored.Completed {
		t.Fatal("second toggle must restore the original state")
	}
}

func TestToggleTaskOfAnotherUser(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)
	other, _ := seedTestUser(db, "other@test.com", models.RoleEmployee, nil)
	task := seedTask(db, "Tarefa alheia", other.ID, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/tasks/"+task.ID.String()+"/toggle", nil, token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Task
	db.Where("id = ?", task.ID).First(&stored)
	if stored.Completed {
		t.Error("a forbidden toggle must not mutate the task")
	}
}

func TestToggleTaskNotFound(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	worker, token := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)
	existing := seedTask(db, "Tarefa real", worker.ID, false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/tasks/00000000-0000-0000-0000-000000000000/toggle", nil, token))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d: %s", w.Code, w.Body.String())
	}

	// Nothing else may change.
	var stored models.Task
	db.Where("id = ?", existing.ID).First(&stored)
	if stored.Completed {
		t.Error("a missing-id toggle must leave other tasks untouched")
	}
}

func TestGetTasksAdminListsAll(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "manager@test.com", models.RoleManager, nil)
	first, _ := seedTestUser(db, "a@test.com", models.RoleEmployee, nil)
	second, _ := seedTestUser(db, "b@test.com", models.RoleEmployee, nil)

	seedTask(db, "Tarefa 1", first.ID, false)
	seedTask(db, "Tarefa 2", second.ID, true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/tasks", nil, token))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	resp := parseResponseArray(w)
	if len(resp) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(resp))
	}
}

func TestGetTasksRequiresManagement(t *testing.T) {
	db := freshDB()
	router := setupTaskRouter(db)

	_, token := seedTestUser(db, "worker@test.com", models.RoleEmployee, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/admin/tasks", nil, token))

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", w.Code, w.Body.String())
	}
}
