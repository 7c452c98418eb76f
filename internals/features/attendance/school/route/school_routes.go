// file: internals/features/attendance/school/route/school_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/attendance/school/controller"
	"sekolahku_backend/internals/features/attendance/school/repository"
)

// SchoolRoutes mount dua surface di bawah prefix /attendance:
// halaman admin (form POST + render tabel) dan REST resource
// (field lewat path parameter).
func SchoolRoutes(app fiber.Router, db *gorm.DB) {
	store := repository.NewGormSchoolStore(db)
	RegisterSchoolRoutes(app, store)
}

// RegisterSchoolRoutes menerima SchoolStore langsung (dipakai juga oleh test).
func RegisterSchoolRoutes(app fiber.Router, store repository.SchoolStore) {
	v := validator.New()
	page := controller.NewSchoolPageController(store, v)
	api := controller.NewSchoolAPIController(store, v)

	g := app.Group("/attendance")

	// ---- halaman admin (HTML) ----
	g.Get("/", page.Index)
	g.Post("/create", page.Create)
	g.Post("/read", page.Read)
	g.Post("/update", page.Update)
	g.Post("/delete", page.Delete)
	g.Post("/search/term", page.SearchTerm)

	// ---- REST resource (JSON) ----
	g.Post("/create/:name/:number/:teacher/:subject", api.Create)
	g.Get("/read", api.ReadAll)
	g.Get("/read/ilike/:term", api.ReadILike)
	g.Put("/update/:number/:name", api.UpdateName)
	g.Put("/update/:number/:name/:teacher/:subject", api.UpdateAll)
	g.Delete("/delete/:id", api.Delete)
}
