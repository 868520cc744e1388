package setup

import (
	"fmt"
	"html/template"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/diskominfo-bogor/sipmang/frontend/internal/apiclient"
	"github.com/diskominfo-bogor/sipmang/frontend/internal/handler"
	"github.com/diskominfo-bogor/sipmang/frontend/internal/notice"
	"github.com/diskominfo-bogor/sipmang/shared/config"
	"github.com/diskominfo-bogor/sipmang/shared/domain"
)

const (
	baseTemplate           = "base.html"
	tmplPath               = "frontend/templates"
	templateReloadInterval = 5 * time.Second
)

type Dependencies struct {
	Handler *handler.Handler
	Public  config.Public
}

func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	templates := mustLoadTemplates(tmplPath)
	apiClient := apiclient.New(cfg.Public.APIBaseURL)

	noticeHTML, err := notice.New().RenderFile(cfg.Public.LoginNoticePath)
	if err != nil {
		return nil, fmt.Errorf("failed to render login notice: %w", err)
	}

	h := handler.New(templates, cfg.Public, apiClient, noticeHTML)
	startTemplateReloader(h, tmplPath)

	return &Dependencies{
		Handler: h,
		Public:  cfg.Public,
	}, nil
}

// statusLabel maps a wire status onto the human label shown in the table.
func statusLabel(s domain.SubmissionStatus) string {
	switch s {
	case domain.StatusNew:
		return "Pengajuan Baru"
	case domain.StatusInProgress:
		return "Diproses"
	case domain.StatusCompleted:
		return "Selesai"
	case domain.StatusRejected:
		return "Ditolak"
	}
	return string(s)
}

// statusClass picks the CSS badge class for a status.
func statusClass(s domain.SubmissionStatus) string {
	switch s {
	case domain.StatusNew:
		return "status-new"
	case domain.StatusInProgress:
		return "status-in-progress"
	case domain.StatusCompleted:
		return "status-completed"
	case domain.StatusRejected:
		return "status-rejected"
	}
	return "status-unknown"
}

func formatTime(t time.Time) string {
	return t.Format("02-01-2006 15:04")
}

func mustLoadTemplates(tmplPath string) map[string]*template.Template {
	templates := make(map[string]*template.Template)
	files, err := os.ReadDir(tmplPath)
	if err != nil {
		log.Fatal(err)
	}

	for _, f := range files {
		if filepath.Ext(f.Name()) == ".html" && f.Name() != baseTemplate {
			templates[f.Name()] = template.Must(template.New(baseTemplate).Funcs(
				template.FuncMap{
					"statusLabel": statusLabel,
					"statusClass": statusClass,
					"formatTime":  formatTime,
				},
			).ParseFiles(
				path.Join(tmplPath, baseTemplate),
				path.Join(tmplPath, f.Name()),
			))
		}
	}
	return templates
}

func startTemplateReloader(h *handler.Handler, tmplPath string) {
	if os.Getenv("ENV") == "development" {
		ticker := time.NewTicker(templateReloadInterval)
		go func() {
			for range ticker.C {
				h.Templates = mustLoadTemplates(tmplPath)
			}
		}()
	}
}
