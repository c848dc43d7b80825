package handler

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/haghnazari/Havirkesht/internal/model/entity"
	"github.com/haghnazari/Havirkesht/internal/testutil"
)

func userPayload(username string) map[string]interface{} {
	return map[string]interface{}{
		"username":     username,
		"password":     "s3cret-pass",
		"fullname":     "Ali Haghnazari",
		"email":        username + "@example.com",
		"phone_number": "09171230000",
		"role_id":      entity.RoleAdmin,
	}
}

func TestUserCreateHidesPassword(t *testing.T) {
	app := setupApp(t)

	w := testutil.DoRequest(app.Router, http.MethodPost, "/users/admin",
		userPayload("ali"), testutil.AdminToken())
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /users/admin = %d, body %s", w.Code, w.Body.String())
	}

	if strings.Contains(w.Body.String(), "password") {
		t.Error("password leaked into user response")
	}
	resp := testutil.ParseResponse(w)
	if resp["username"] != "ali" {
		t.Errorf("username = %v", resp["username"])
	}

	// The stored credential is a bcrypt hash, never the plaintext.
	var stored entity.User
	if err := app.DB.First(&stored, "username = ?", "ali").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Password == "s3cret-pass" {
		t.Error("password stored in plaintext")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Errorf("stored password is not a bcrypt hash: %q", stored.Password[:4])
	}
}

func TestUserUniquenessChecks(t *testing.T) {
	app := setupApp(t)
	app.mustCreate(t, "/users/admin", userPayload("ali"))

	// Duplicate username.
	dup := userPayload("ali")
	dup["email"] = "other@example.com"
	dup["phone_number"] = "09171230001"
	w := testutil.DoRequest(app.Router, http.MethodPost, "/users/admin", dup, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate username = %d, want 409", w.Code)
	}
	if detail := testutil.ParseResponse(w)["detail"]; detail != "Username already exists" {
		t.Errorf("detail = %v", detail)
	}

	// Duplicate email.
	dup = userPayload("reza")
	dup["email"] = "ali@example.com"
	dup["phone_number"] = "09171230002"
	w = testutil.DoRequest(app.Router, http.MethodPost, "/users/admin", dup, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate email = %d, want 409", w.Code)
	}

	// Duplicate phone number.
	dup = userPayload("reza")
	w = testutil.DoRequest(app.Router, http.MethodPost, "/users/admin", dup, testutil.AdminToken())
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate phone = %d, want 409", w.Code)
	}
}

func TestUserUnknownRole(t *testing.T) {
	app := setupApp(t)

	payload := userPayload("ali")
	payload["role_id"] = 99
	w := testutil.DoRequest(app.Router, http.MethodPost, "/users/admin", payload, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown role = %d, want 404", w.Code)
	}
	if detail := testutil.ParseResponse(w)["detail"]; detail != "Role not found" {
		t.Errorf("detail = %v", detail)
	}
}

func TestUserPartialUpdate(t *testing.T) {
	app := setupApp(t)
	created := app.mustCreate(t, "/users/admin", userPayload("ali"))
	id := app.id(t, created)

	w := testutil.DoRequest(app.Router, http.MethodPut,
		fmt.Sprintf("/users/%d", id),
		map[string]interface{}{"fullname": "Ali H."}, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /users = %d, body %s", w.Code, w.Body.String())
	}

	resp := testutil.ParseResponse(w)
	if resp["fullname"] != "Ali H." {
		t.Errorf("fullname = %v", resp["fullname"])
	}
	if resp["username"] != "ali" {
		t.Errorf("username changed: %v", resp["username"])
	}
	if resp["email"] != "ali@example.com" {
		t.Errorf("email changed: %v", resp["email"])
	}
}

func TestUserDisableEnable(t *testing.T) {
	app := setupApp(t)
	created := app.mustCreate(t, "/users/admin", userPayload("ali"))
	id := app.id(t, created)

	w := testutil.DoRequest(app.Router, http.MethodPatch,
		fmt.Sprintf("/users/%d/disable", id), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("disable = %d", w.Code)
	}
	if disabled := testutil.ParseResponse(w)["disabled"]; disabled != true {
		t.Errorf("disabled = %v, want true", disabled)
	}

	w = testutil.DoRequest(app.Router, http.MethodPatch,
		fmt.Sprintf("/users/%d/enable", id), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("enable = %d", w.Code)
	}
	if disabled := testutil.ParseResponse(w)["disabled"]; disabled != false {
		t.Errorf("disabled = %v, want false", disabled)
	}
}

func TestUserListDefaultSize(t *testing.T) {
	app := setupApp(t)

	for i := 1; i <= 12; i++ {
		payload := userPayload(fmt.Sprintf("user%02d", i))
		payload["phone_number"] = fmt.Sprintf("091712310%02d", i)
		app.mustCreate(t, "/users/admin", payload)
	}

	w := testutil.DoRequest(app.Router, http.MethodGet, "/users", nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("list users = %d", w.Code)
	}

	page := testutil.ParseResponse(w)
	if page["total"].(float64) != 12 {
		t.Errorf("total = %v, want 12", page["total"])
	}
	// Users default to 10 per page where everything else uses 50.
	if items := page["items"].([]interface{}); len(items) != 10 {
		t.Errorf("items = %d, want 10", len(items))
	}
	if page["pages"].(float64) != 2 {
		t.Errorf("pages = %v, want 2", page["pages"])
	}
}

func TestUserDelete(t *testing.T) {
	app := setupApp(t)
	created := app.mustCreate(t, "/users/admin", userPayload("ali"))
	id := app.id(t, created)

	w := testutil.DoRequest(app.Router, http.MethodDelete,
		fmt.Sprintf("/users/%d", id), nil, testutil.AdminToken())
	if w.Code != http.StatusOK {
		t.Fatalf("delete user = %d", w.Code)
	}
	wantDetail := fmt.Sprintf("User %d: ali deleted successfully", id)
	if detail := testutil.ParseResponse(w)["detail"]; detail != wantDetail {
		t.Errorf("detail = %v, want %q", detail, wantDetail)
	}

	w = testutil.DoRequest(app.Router, http.MethodGet,
		fmt.Sprintf("/users/%d", id), nil, testutil.AdminToken())
	if w.Code != http.StatusNotFound {
		t.Errorf("get deleted user = %d, want 404", w.Code)
	}
}
