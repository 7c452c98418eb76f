// Package views menyimpan template HTML admin (embedded) dan
// membangun view engine Fiber-nya. Di-embed supaya binary dan test
// tidak bergantung ke working directory.
package views

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed attendance.html
var files embed.FS

func NewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(files), ".html")
}
