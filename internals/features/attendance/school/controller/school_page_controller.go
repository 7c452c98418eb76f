// file: internals/features/attendance/school/controller/school_page_controller.go
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	helper "sekolahku_backend/internals/helpers"

	"sekolahku_backend/internals/features/attendance/school/dto"
	"sekolahku_backend/internals/features/attendance/school/model"
	"sekolahku_backend/internals/features/attendance/school/repository"
)

/* =======================================================
   PAGE CONTROLLER (HTML admin)
   =======================================================
   Input form-encoded, output halaman tabel atau redirect.
   Kegagalan mutasi sengaja silent: selalu redirect ke listing
   (tidak ada feedback error di surface HTML).
*/

const listingPath = "/attendance/"

type SchoolPageController struct {
	Store    repository.SchoolStore
	Validate *validator.Validate
}

func NewSchoolPageController(store repository.SchoolStore, v *validator.Validate) *SchoolPageController {
	return &SchoolPageController{Store: store, Validate: v}
}

func (ctl *SchoolPageController) renderTable(c *fiber.Ctx, rows []model.SchoolModel) error {
	return c.Render("attendance", fiber.Map{
		"Table": dto.ToSchoolResponses(rows),
	})
}

// GET /attendance/
func (ctl *SchoolPageController) Index(c *fiber.Ctx) error {
	rows, err := ctl.Store.ListAll(c.UserContext())
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
	}
	return ctl.renderTable(c, rows)
}

// POST /attendance/create
func (ctl *SchoolPageController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Redirect(listingPath, fiber.StatusFound)
	}
	req.Normalize()

	// form error / duplikat → tetap redirect tanpa pesan
	if err := ctl.Validate.Struct(&req); err != nil {
		return c.Redirect(listingPath, fiber.StatusFound)
	}
	m := req.ToModel()
	_ = ctl.Store.Create(c.UserContext(), &m)

	return c.Redirect(listingPath, fiber.StatusFound)
}

// POST /attendance/read — field "userid"; tabel satu baris atau kosong.
func (ctl *SchoolPageController) Read(c *fiber.Ctx) error {
	table := []model.SchoolModel{}

	if id, err := strconv.Atoi(c.FormValue("userid")); err == nil {
		m, err := ctl.Store.FindByID(c.UserContext(), id)
		if err == nil {
			table = append(table, m)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
		}
	}

	return ctl.renderTable(c, table)
}

// POST /attendance/update — hanya field name yang diubah.
func (ctl *SchoolPageController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.FormValue("userid"))
	if err != nil {
		return c.Redirect(listingPath, fiber.StatusFound)
	}
	req := dto.UpdateSchoolRequest{Name: c.FormValue("name")}
	if err := ctl.Validate.Struct(&req); err != nil {
		return c.Redirect(listingPath, fiber.StatusFound)
	}

	if _, err := ctl.Store.FindByID(c.UserContext(), id); err == nil {
		_, _ = ctl.Store.UpdateFields(c.UserContext(), id, req.BuildUpdateMap())
	}
	return c.Redirect(listingPath, fiber.StatusFound)
}

// POST /attendance/delete
func (ctl *SchoolPageController) Delete(c *fiber.Ctx) error {
	if id, err := strconv.Atoi(c.FormValue("userid")); err == nil {
		_ = ctl.Store.Delete(c.UserContext(), id)
	}
	return c.Redirect(listingPath, fiber.StatusFound)
}

// POST /attendance/search/term — body {"term"}; hasil filter sebagai JSON.
func (ctl *SchoolPageController) SearchTerm(c *fiber.Ctx) error {
	var req dto.SearchTermRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Payload tidak valid")
	}
	rows, err := ctl.Store.SearchILike(c.UserContext(), req.Term)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal mengambil data")
	}
	return c.JSON(dto.ToSchoolResponses(rows))
}
