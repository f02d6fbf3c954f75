package models

// Student record. DOB is a YYYY-MM-DD string like every other date in the
// store; POB is the place of birth.
type Student struct {
	ID          string `json:"id"`
	StudentCode string `json:"student_code"`
	ClassID     string `json:"class_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	DOB         string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	POB         string `json:"pob"`
	FatherName  string `json:"father_name"`
	MotherName  string `json:"mother_name"`
	Phone       string `json:"phone"`
}
