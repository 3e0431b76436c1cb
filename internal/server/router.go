package server

import (
	"net/http"

	"magistral/internal/handlers"
	"magistral/internal/metrics"
)

func protected(h http.HandlerFunc) http.Handler {
	return handlers.RequireAuthentication(h)
}

func newRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", handlers.Health)
	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/login", handlers.Login)
	mux.HandleFunc("/signup", handlers.Signup)
	mux.HandleFunc("/logout", handlers.Logout)

	mux.Handle("/app", protected(handlers.Workspace))
	mux.Handle("/app/calculator/injectable", protected(handlers.ComputeInjectable))
	mux.Handle("/app/calculator/transdermal", protected(handlers.ComputeTransdermal))
	mux.Handle("/app/calculator/solubility", protected(handlers.ExploreSolubility))
	mux.Handle("/app/calculator/dosages", protected(handlers.Dosages))

	mux.Handle("/app/recipes", protected(handlers.Recipes))
	mux.Handle("/app/recipes/worksheet", protected(handlers.Worksheet))
	mux.Handle("/app/recipes/worksheet.xlsx", protected(handlers.WorksheetXLSX))
	mux.Handle("/app/api/recipes", protected(handlers.RecipesAPI))
	mux.Handle("/app/api/recipes/", protected(handlers.RecipeAPIByID))

	mux.Handle("/app/tools", protected(handlers.Tools))
	mux.Handle("/app/tools/import-worksheet", protected(handlers.ImportWorksheet))
	mux.Handle("/app/preferences/update", protected(handlers.UpdatePreferences))

	mux.HandleFunc("/", handlers.Home)
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/static"))))

	return mux
}
