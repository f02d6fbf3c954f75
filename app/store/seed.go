package store

import "github.com/tccnbinhduong/QuanLyDaoTao/app/models"

// DefaultState is the dataset a fresh installation starts with: the
// school's majors plus a handful of example records so the screens are not
// empty on first run.
func DefaultState() models.AppState {
	state := models.AppState{
		Teachers: []models.Teacher{
			{ID: "1", Name: "Nguyen Van Thai", Phone: "0901234567", Bank: "VCB", AccountNumber: "123456", MainSubject: "1", RatePerPeriod: 100000},
			{ID: "2", Name: "Tran Thi Ha", Phone: "0909876543", Bank: "ACB", AccountNumber: "654321", MainSubject: "2", RatePerPeriod: 120000},
			{ID: "3", Name: "Le Van Kha", Phone: "0912345678", Bank: "Tech", AccountNumber: "888888", MainSubject: "3", RatePerPeriod: 110000},
		},
		Subjects: []models.Subject{
			{ID: "1", Name: "Do luong va TBD", MajorID: "2", TotalPeriods: 30},
			{ID: "2", Name: "Lap trinh C++", MajorID: "4", TotalPeriods: 45},
			{ID: "3", Name: "Nguyen ly ke toan", MajorID: "1", TotalPeriods: 60},
			{ID: "4", Name: "Khi cu dien", MajorID: "2", TotalPeriods: 45},
			{ID: "5", Name: "Mach dien tu", MajorID: "3", TotalPeriods: 60},
		},
		Classes: []models.ClassEntity{
			{ID: "1", Name: "Dien Cong Nghiep (25DC2H8)", StudentCount: 40, MajorID: "2", SchoolYear: "2023-2026"},
			{ID: "2", Name: "Ke toan K15", StudentCount: 35, MajorID: "1", SchoolYear: "2023-2026"},
		},
		Students: []models.Student{
			{ID: "1", StudentCode: "SV001", ClassID: "1", Name: "Nguyen Van A", DOB: "2005-01-15", POB: "Ha Noi", FatherName: "Nguyen Van B", MotherName: "Le Thi C", Phone: "0987654321"},
			{ID: "2", StudentCode: "SV002", ClassID: "1", Name: "Tran Thi B", DOB: "2005-05-20", POB: "Nam Dinh", FatherName: "Tran Van D", MotherName: "Pham Thi E", Phone: "0912345678"},
		},
		Majors: []models.Major{
			{ID: "1", Name: "Ke toan Doanh nghiep"},
			{ID: "2", Name: "Dien cong nghiep"},
			{ID: "3", Name: "Dien - dien tu"},
			{ID: "4", Name: "Cong nghe thong tin"},
		},
	}
	state.Normalize()
	return state
}
