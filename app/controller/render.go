package controller

import (
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"kenneths-desserts/utils"
)

var templateFuncs = template.FuncMap{
	"formatRM":     utils.FormatRM,
	"formatAmount": utils.FormatAmount,
}

// renderPage parses and executes a page template from the templates directory
func renderPage(w http.ResponseWriter, templatesDir string, name string, data interface{}) {
	tmpl, err := template.New(name).Funcs(templateFuncs).ParseFiles(filepath.Join(templatesDir, name))
	if err != nil {
		log.Printf("❌ renderPage: Failed to parse template %s: %v", name, err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("❌ renderPage: Failed to execute template %s: %v", name, err)
	}
}
