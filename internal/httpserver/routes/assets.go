package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/hub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/hub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/hub/internal/httpserver/mw"
	"github.com/MrSnakeDoc/hub/internal/render"
)

func init() { Register(registerAssets) }

func registerAssets(r chi.Router, d deps.Deps) {
	files := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))

	files.Handle("/static/*", http.StripPrefix("/static/", handlers.Files(render.StaticFS())))

	if d.Assets == nil {
		d.Logger.Warn("assets directory unavailable, preview images will not be served")
		return
	}
	files.Handle(render.AssetsPrefix+"*", http.StripPrefix(render.AssetsPrefix, handlers.Files(d.Assets)))
}
