// file: internals/features/attendance/school/model/school_model.go
package model

type SchoolModel struct {
	// PK auto-increment, tidak pernah dipakai ulang setelah delete
	SchoolID int `gorm:"primaryKey;autoIncrement;column:school_id" json:"school_id"`

	// Identitas
	SchoolName   string `gorm:"type:varchar(255);not null;column:school_name"                                json:"school_name"`
	SchoolNumber string `gorm:"type:varchar(64);not null;uniqueIndex:uq_schools_number;column:school_number" json:"school_number"`

	SchoolTeacher string `gorm:"type:varchar(255);column:school_teacher" json:"school_teacher"`
	SchoolSubject string `gorm:"type:varchar(255);column:school_subject" json:"school_subject"`
}

func (SchoolModel) TableName() string { return "schools" }
