package schedules

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatal(err)
	}
	app := fiber.New()
	SetupSchedulesRoutes(app, s)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func validSession() map[string]interface{} {
	return map[string]interface{}{
		"type":         "class",
		"teacher_id":   "1",
		"subject_id":   "1",
		"class_id":     "1",
		"room_id":      "A101",
		"date":         "2024-05-06",
		"start_period": 1,
		"period_count": 3,
	}
}

func TestCreateScheduleAPI(t *testing.T) {
	app := testApp(t)

	resp := postJSON(t, app, "/api/schedules/", validSession())
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	var body struct {
		Schedule struct {
			ID      string `json:"id"`
			Status  string `json:"status"`
			Session string `json:"session"`
		} `json:"schedule"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Schedule.ID == "" {
		t.Error("created schedule should carry an id")
	}
	if body.Schedule.Status != "pending" {
		t.Errorf("status = %q, want pending", body.Schedule.Status)
	}
	if body.Schedule.Session != "morning" {
		t.Errorf("session = %q, want morning for period 1", body.Schedule.Session)
	}
}

func TestCreateScheduleAPIConflict(t *testing.T) {
	app := testApp(t)

	if resp := postJSON(t, app, "/api/schedules/", validSession()); resp.StatusCode != 201 {
		t.Fatalf("seed create failed with %d", resp.StatusCode)
	}

	// same room, overlapping periods, different class
	second := validSession()
	second["class_id"] = "2"
	second["teacher_id"] = "2"
	second["subject_id"] = "3"
	second["start_period"] = 3

	resp := postJSON(t, app, "/api/schedules/", second)
	if resp.StatusCode != 409 {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error == "" {
		t.Error("conflict response should explain the rejection")
	}
}

func TestCreateScheduleAPIValidation(t *testing.T) {
	app := testApp(t)

	bad := validSession()
	bad["start_period"] = 11

	if resp := postJSON(t, app, "/api/schedules/", bad); resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400 for period out of range", resp.StatusCode)
	}

	bad = validSession()
	bad["date"] = "06/05/2024"
	if resp := postJSON(t, app, "/api/schedules/", bad); resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400 for malformed date", resp.StatusCode)
	}
}

func TestUpdateScheduleAPIStatusBypassesConflict(t *testing.T) {
	app := testApp(t)

	resp := postJSON(t, app, "/api/schedules/", validSession())
	var created struct {
		Schedule struct {
			ID string `json:"id"`
		} `json:"schedule"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	data, _ := json.Marshal(map[string]interface{}{"status": "off"})
	req := httptest.NewRequest("PUT", "/api/schedules/"+created.Schedule.ID, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
}

func TestDeleteScheduleAPINotFound(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("DELETE", "/api/schedules/no-such-id", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetWeekAPIDanglingReferences(t *testing.T) {
	app := testApp(t)

	// teacher and subject ids that exist nowhere in the dataset
	orphan := validSession()
	orphan["teacher_id"] = "gone-t"
	orphan["subject_id"] = "gone-s"
	if resp := postJSON(t, app, "/api/schedules/", orphan); resp.StatusCode != 201 {
		t.Fatalf("seed create failed with %d", resp.StatusCode)
	}

	req := httptest.NewRequest("GET", "/api/schedules/week?class_id=1&date=2024-05-06", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 despite dangling references", resp.StatusCode)
	}

	var body struct {
		Days [][]struct {
			SubjectName string `json:"subject_name"`
			TeacherName string `json:"teacher_name"`
		} `json:"days"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(body.Days))
	}
	if len(body.Days[0]) != 1 {
		t.Fatalf("Monday should hold the session, got %d cells", len(body.Days[0]))
	}
	cell := body.Days[0][0]
	if cell.SubjectName != "(deleted subject)" {
		t.Errorf("subject label = %q, want placeholder", cell.SubjectName)
	}
	if cell.TeacherName != "(deleted teacher)" {
		t.Errorf("teacher label = %q, want placeholder", cell.TeacherName)
	}
}

func TestGetWeekAPIDaySlots(t *testing.T) {
	app := testApp(t)

	monday := validSession()
	if resp := postJSON(t, app, "/api/schedules/", monday); resp.StatusCode != 201 {
		t.Fatal("monday create failed")
	}
	sunday := validSession()
	sunday["date"] = "2024-05-12"
	if resp := postJSON(t, app, "/api/schedules/", sunday); resp.StatusCode != 201 {
		t.Fatal("sunday create failed")
	}

	req := httptest.NewRequest("GET", "/api/schedules/week?class_id=1&date=2024-05-08", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		WeekStart string `json:"week_start"`
		Days      [][]struct {
			Date string `json:"date"`
		} `json:"days"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.WeekStart != "2024-05-06" {
		t.Fatalf("week_start = %s, want 2024-05-06", body.WeekStart)
	}
	if len(body.Days[0]) != 1 || body.Days[0][0].Date != "2024-05-06" {
		t.Errorf("Monday slot wrong: %+v", body.Days[0])
	}
	if len(body.Days[6]) != 1 || body.Days[6][0].Date != "2024-05-12" {
		t.Errorf("Sunday slot wrong: %+v", body.Days[6])
	}
}

func TestContinueWeekAPI(t *testing.T) {
	app := testApp(t)

	if resp := postJSON(t, app, "/api/schedules/", validSession()); resp.StatusCode != 201 {
		t.Fatal("seed create failed")
	}

	payload := map[string]interface{}{"class_id": "1", "week_start": "2024-05-06"}
	resp := postJSON(t, app, "/api/schedules/continue", payload)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		AddedCount int `json:"added_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.AddedCount != 1 {
		t.Errorf("added_count = %d, want 1", body.AddedCount)
	}

	// same request again adds nothing
	resp = postJSON(t, app, "/api/schedules/continue", payload)
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.AddedCount != 0 {
		t.Errorf("second run added_count = %d, want 0", body.AddedCount)
	}
}
