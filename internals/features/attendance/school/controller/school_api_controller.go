// file: internals/features/attendance/school/controller/school_api_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"

	"sekolahku_backend/internals/features/attendance/school/dto"
	"sekolahku_backend/internals/features/attendance/school/repository"
)

/* =======================================================
   REST RESOURCE CONTROLLER
   =======================================================
   Field dikirim lewat path parameter (bukan body), status 210
   dipakai sebagai "soft failure" (duplikat / tidak ditemukan)
   sesuai kontrak API lama.
*/

type SchoolAPIController struct {
	Store    repository.SchoolStore
	Validate *validator.Validate
}

func NewSchoolAPIController(store repository.SchoolStore, v *validator.Validate) *SchoolAPIController {
	return &SchoolAPIController{Store: store, Validate: v}
}

// pathParam membaca path parameter dan decode percent-encoding
// (nama sekolah bisa mengandung spasi → %20 di URL).
func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// POST /attendance/create/:name/:number/:teacher/:subject
func (ctl *SchoolAPIController) Create(c *fiber.Ctx) error {
	req := dto.CreateSchoolRequest{
		Name:    pathParam(c, "name"),
		Number:  pathParam(c, "number"),
		Teacher: pathParam(c, "teacher"),
		Subject: pathParam(c, "subject"),
	}
	req.Normalize()

	softMsg := fmt.Sprintf("Processed %s, either a format error or %s is duplicate", req.Name, req.Number)

	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonSoftFail(c, softMsg)
	}

	m := req.ToModel()
	if err := ctl.Store.Create(c.UserContext(), &m); err != nil {
		if errors.Is(err, repository.ErrDuplicateNumber) {
			return helper.JsonSoftFail(c, softMsg)
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menyimpan data")
	}

	return c.JSON(dto.ToSchoolResponse(m))
}

// GET /attendance/read
func (ctl *SchoolAPIController) ReadAll(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListAll(c.UserContext())
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
	}
	return c.JSON(dto.ToSchoolResponses(rows))
}

// GET /attendance/read/ilike/:term
func (ctl *SchoolAPIController) ReadILike(c *fiber.Ctx) error {
	term := pathParam(c, "term")
	rows, err := ctl.Store.SearchILike(c.UserContext(), term)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
	}
	return c.JSON(dto.ToSchoolResponses(rows))
}

// PUT /attendance/update/:number/:name
func (ctl *SchoolAPIController) UpdateName(c *fiber.Ctx) error {
	number := pathParam(c, "number")
	req := dto.UpdateSchoolRequest{Name: pathParam(c, "name")}
	return ctl.updateByNumber(c, number, &req)
}

// PUT /attendance/update/:number/:name/:teacher/:subject
func (ctl *SchoolAPIController) UpdateAll(c *fiber.Ctx) error {
	number := pathParam(c, "number")
	teacher := pathParam(c, "teacher")
	subject := pathParam(c, "subject")
	req := dto.UpdateSchoolRequest{
		Name:    pathParam(c, "name"),
		Teacher: &teacher,
		Subject: &subject,
	}
	return ctl.updateByNumber(c, number, &req)
}

func (ctl *SchoolAPIController) updateByNumber(c *fiber.Ctx, number string, req *dto.UpdateSchoolRequest) error {
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonSoftFail(c, fmt.Sprintf("%s is not found", number))
	}

	m, err := ctl.Store.FindByNumber(c.UserContext(), number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonSoftFail(c, fmt.Sprintf("%s is not found", number))
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	updated, err := ctl.Store.UpdateFields(c.UserContext(), m.SchoolID, req.BuildUpdateMap())
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengubah data")
	}
	return c.JSON(dto.ToSchoolResponse(updated))
}

// DELETE /attendance/delete/:id
// Mengembalikan representasi record SEBELUM dihapus.
func (ctl *SchoolAPIController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return helper.JsonSoftFail(c, fmt.Sprintf("%s is not found", c.Params("id")))
	}

	m, err := ctl.Store.FindByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.JsonSoftFail(c, fmt.Sprintf("%d is not found", id))
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
	}

	snapshot := dto.ToSchoolResponse(m)
	if err := ctl.Store.Delete(c.UserContext(), id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal menghapus data")
	}
	return c.JSON(snapshot)
}
