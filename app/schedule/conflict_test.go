package schedule

import (
	"strings"
	"testing"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

func session(id, classID, subjectID, teacherID, roomID, date string, start, count int) models.ScheduleItem {
	return models.ScheduleItem{
		ID:          id,
		Type:        models.TypeClass,
		TeacherID:   teacherID,
		SubjectID:   subjectID,
		ClassID:     classID,
		RoomID:      roomID,
		Date:        date,
		StartPeriod: start,
		PeriodCount: count,
		Status:      models.StatusPending,
	}
}

func TestCheckConflictRoomCollision(t *testing.T) {
	existing := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 3),
	}
	// periods 3-5 overlap the 1-3 block at period 3
	candidate := session("", "c2", "sub2", "t2", "A101", "2024-05-06", 3, 3)

	res := CheckConflict(candidate, existing, nil, "")
	if !res.HasConflict {
		t.Fatal("expected room conflict")
	}
	if !strings.Contains(res.Message, "A101") {
		t.Errorf("message should name the room, got %q", res.Message)
	}
}

func TestCheckConflictBoundaryDoesNotOverlap(t *testing.T) {
	existing := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 3),
	}
	// starts exactly where the other ends: periods [4,6) vs [1,4)
	candidate := session("", "c2", "sub2", "t2", "A101", "2024-05-06", 4, 2)

	if res := CheckConflict(candidate, existing, nil, ""); res.HasConflict {
		t.Fatalf("back-to-back sessions should not conflict, got %q", res.Message)
	}
}

func TestCheckConflictOverlapIsSymmetric(t *testing.T) {
	a := session("a", "c1", "sub1", "t1", "A101", "2024-05-06", 2, 4)
	b := session("b", "c2", "sub2", "t2", "A101", "2024-05-06", 4, 3)

	resAB := CheckConflict(a, []models.ScheduleItem{b}, nil, "")
	resBA := CheckConflict(b, []models.ScheduleItem{a}, nil, "")
	if resAB.HasConflict != resBA.HasConflict {
		t.Errorf("overlap verdict should be symmetric: a-vs-b=%v b-vs-a=%v",
			resAB.HasConflict, resBA.HasConflict)
	}
	if !resAB.HasConflict {
		t.Error("overlapping room usage should conflict")
	}
}

func TestCheckConflictDifferentDates(t *testing.T) {
	existing := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 5),
	}
	candidate := session("", "c1", "sub1", "t1", "A101", "2024-05-07", 1, 5)

	if res := CheckConflict(candidate, existing, nil, ""); res.HasConflict {
		t.Fatalf("sessions on different dates should not conflict, got %q", res.Message)
	}
}

func TestCheckConflictOffSessionsIgnored(t *testing.T) {
	off := session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 5)
	off.Status = models.StatusOff

	candidate := session("", "c2", "sub2", "t2", "A101", "2024-05-06", 1, 5)
	if res := CheckConflict(candidate, []models.ScheduleItem{off}, nil, ""); res.HasConflict {
		t.Fatalf("off sessions should be ignored, got %q", res.Message)
	}
}

func TestCheckConflictExcludeID(t *testing.T) {
	existing := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 3),
	}
	// in-place edit of s1 itself must not collide with its stored copy
	edited := session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 4)

	if res := CheckConflict(edited, existing, nil, "s1"); res.HasConflict {
		t.Fatalf("item should not conflict with itself during edit, got %q", res.Message)
	}
}

func TestCheckConflictTeacherCollision(t *testing.T) {
	existing := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 3),
	}
	candidate := session("", "c2", "sub2", "t1", "B202", "2024-05-06", 2, 2)

	res := CheckConflict(candidate, existing, nil, "")
	if !res.HasConflict {
		t.Fatal("expected teacher conflict")
	}
	if !strings.Contains(res.Message, "teacher") {
		t.Errorf("message should mention the teacher, got %q", res.Message)
	}
}

func TestCheckConflictSharedSubjectExemption(t *testing.T) {
	subjects := []models.Subject{
		{ID: "sub1", Name: "Chinh tri", TotalPeriods: 30, IsShared: true},
		{ID: "sub2", Name: "Chinh tri", TotalPeriods: 30, IsShared: true},
		{ID: "sub3", Name: "Tin hoc", TotalPeriods: 45, IsShared: true},
		{ID: "sub4", Name: "Toan", TotalPeriods: 60},
	}
	existing := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 3),
	}

	t.Run("same shared subject may share room and teacher", func(t *testing.T) {
		candidate := session("", "c2", "sub2", "t1", "A101", "2024-05-06", 1, 3)
		if res := CheckConflict(candidate, existing, subjects, ""); res.HasConflict {
			t.Fatalf("merged lecture should be permitted, got %q", res.Message)
		}
	})

	t.Run("shared flag with different names still conflicts", func(t *testing.T) {
		candidate := session("", "c2", "sub3", "t2", "A101", "2024-05-06", 1, 3)
		if res := CheckConflict(candidate, existing, subjects, ""); !res.HasConflict {
			t.Fatal("differently named subjects must not share the room")
		}
	})

	t.Run("non-shared subject conflicts", func(t *testing.T) {
		candidate := session("", "c2", "sub4", "t2", "A101", "2024-05-06", 1, 3)
		if res := CheckConflict(candidate, existing, subjects, ""); !res.HasConflict {
			t.Fatal("non-shared subject must not share the room")
		}
	})

	t.Run("class exclusivity survives the exemption", func(t *testing.T) {
		// same class in two merged lectures at once is still impossible
		candidate := session("", "c1", "sub2", "t1", "A101", "2024-05-06", 1, 3)
		res := CheckConflict(candidate, existing, subjects, "")
		if !res.HasConflict {
			t.Fatal("a class cannot attend two sessions at once")
		}
		if !strings.Contains(res.Message, "class") {
			t.Errorf("message should mention the class, got %q", res.Message)
		}
	})
}

func TestCheckConflictExamVsClass(t *testing.T) {
	exam := session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 2)
	exam.Type = models.TypeExam

	candidate := session("", "c1", "sub2", "t2", "B202", "2024-05-06", 1, 2)
	res := CheckConflict(candidate, []models.ScheduleItem{exam}, nil, "")
	if !res.HasConflict {
		t.Fatal("class session during the class's exam should conflict")
	}
}

func TestCheckConflictInvalidDate(t *testing.T) {
	candidate := session("", "c1", "sub1", "t1", "A101", "not-a-date", 1, 2)
	if res := CheckConflict(candidate, nil, nil, ""); !res.HasConflict {
		t.Fatal("malformed candidate date should be rejected")
	}
}
