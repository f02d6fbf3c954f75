package statistics

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

func TestGetStatisticsAPIDanglingReferences(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatal(err)
	}
	app := fiber.New()
	SetupStatisticsRoutes(app, s)

	// an off session whose teacher, subject and class were all deleted
	item, err := s.CreateSchedule(models.ScheduleItem{
		Type:        models.TypeClass,
		TeacherID:   "gone-t",
		SubjectID:   "gone-s",
		ClassID:     "gone-c",
		RoomID:      "A101",
		Date:        "2024-05-06",
		StartPeriod: 1,
		PeriodCount: 3,
	})
	if err != nil {
		t.Fatal(err)
	}
	off := models.StatusOff
	if _, err := s.UpdateSchedule(item.ID, models.ScheduleUpdate{Status: &off}); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("GET", "/api/statistics", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 despite dangling references", resp.StatusCode)
	}

	var body struct {
		Missed []struct {
			TeacherName string `json:"teacher_name"`
			SubjectName string `json:"subject_name"`
			ClassName   string `json:"class_name"`
		} `json:"missed_sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Missed) != 1 {
		t.Fatalf("got %d missed sessions, want 1", len(body.Missed))
	}
	row := body.Missed[0]
	if row.TeacherName != "(deleted teacher)" {
		t.Errorf("teacher label = %q, want placeholder", row.TeacherName)
	}
	if row.SubjectName != "(deleted subject)" {
		t.Errorf("subject label = %q, want placeholder", row.SubjectName)
	}
	if row.ClassName != "(deleted class)" {
		t.Errorf("class label = %q, want placeholder", row.ClassName)
	}
}
