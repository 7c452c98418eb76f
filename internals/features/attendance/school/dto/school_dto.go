// file: internals/features/attendance/school/dto/school_dto.go
package dto

import (
	"strings"

	"sekolahku_backend/internals/features/attendance/school/model"
)

/* =========================================================
   1) REQUEST DTO
   ========================================================= */

type CreateSchoolRequest struct {
	Name    string `json:"name"    form:"name"    validate:"required,max=255"`
	Number  string `json:"number"  form:"number"  validate:"required,max=64"`
	Teacher string `json:"teacher" form:"teacher" validate:"omitempty,max=255"`
	Subject string `json:"subject" form:"subject" validate:"omitempty,max=255"`
}

func (r *CreateSchoolRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Number = strings.TrimSpace(r.Number)
	r.Teacher = strings.TrimSpace(r.Teacher)
	r.Subject = strings.TrimSpace(r.Subject)
}

func (r *CreateSchoolRequest) ToModel() model.SchoolModel {
	return model.SchoolModel{
		SchoolName:    r.Name,
		SchoolNumber:  r.Number,
		SchoolTeacher: r.Teacher,
		SchoolSubject: r.Subject,
	}
}

// UpdateSchoolRequest: name wajib, teacher/subject hanya untuk varian full.
type UpdateSchoolRequest struct {
	Name    string  `json:"name"    validate:"required,max=255"`
	Teacher *string `json:"teacher" validate:"omitempty,max=255"`
	Subject *string `json:"subject" validate:"omitempty,max=255"`
}

// BuildUpdateMap hanya memuat field yang dikirim (kolom → nilai).
func (r *UpdateSchoolRequest) BuildUpdateMap() map[string]interface{} {
	updates := map[string]interface{}{
		"school_name": strings.TrimSpace(r.Name),
	}
	if r.Teacher != nil {
		updates["school_teacher"] = strings.TrimSpace(*r.Teacher)
	}
	if r.Subject != nil {
		updates["school_subject"] = strings.TrimSpace(*r.Subject)
	}
	return updates
}

type SearchTermRequest struct {
	Term string `json:"term" form:"term"`
}

/* =========================================================
   2) RESPONSE DTO
   ========================================================= */

// SchoolResponse adalah shape eksternal {id, name, number, teacher, subject}.
type SchoolResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Number  string `json:"number"`
	Teacher string `json:"teacher"`
	Subject string `json:"subject"`
}

func ToSchoolResponse(m model.SchoolModel) SchoolResponse {
	return SchoolResponse{
		ID:      m.SchoolID,
		Name:    m.SchoolName,
		Number:  m.SchoolNumber,
		Teacher: m.SchoolTeacher,
		Subject: m.SchoolSubject,
	}
}

// ToSchoolResponses selalu mengembalikan slice non-nil supaya JSON-nya "[]".
func ToSchoolResponses(rows []model.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, ToSchoolResponse(m))
	}
	return out
}
