package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"logistics-guide/backend/internal/catalog"
	"logistics-guide/backend/internal/guide"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const formTemplate = "form.tmpl"

func loadTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"score": func(v float64) string { return fmt.Sprintf("%.3f", v) },
	}).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

type formOption struct {
	Value    string
	Label    string
	Selected bool
}

type formPage struct {
	Sizes   []formOption
	Regions []formOption
	Values  RecommendationRequest
	Errors  map[string]string
	Guide   *guide.Guide
}

// defaultFormValues pre-fills the form: warehouse yes, high turnover
// and store pickup checked, P2 selected.
func defaultFormValues() RecommendationRequest {
	yes := true
	return RecommendationRequest{
		SizeClass:        string(catalog.SizeP2),
		Region:           string(catalog.Metro),
		HasWarehouse:     &yes,
		HighTurnover:     true,
		DailyOrders:      10,
		ReferencePrice:   29990,
		WantsStorePickup: true,
	}
}

func newFormPage(values RecommendationRequest) formPage {
	page := formPage{Values: values}
	for _, s := range catalog.SizeClasses {
		page.Sizes = append(page.Sizes, formOption{
			Value:    string(s),
			Label:    fmt.Sprintf("%s – %s", s, s.Description()),
			Selected: values.SizeClass == string(s),
		})
	}
	for _, r := range catalog.Regions {
		page.Regions = append(page.Regions, formOption{
			Value:    string(r),
			Label:    r.Label(),
			Selected: values.Region == string(r),
		})
	}
	return page
}

func (s *Server) handleForm(c *gin.Context) {
	c.HTML(http.StatusOK, formTemplate, newFormPage(defaultFormValues()))
}

func (s *Server) handleFormSubmit(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBind(&req); err != nil {
		s.renderFormErrors(c, req, bindingErrors(err))
		return
	}
	g, fields := s.buildGuide(c, req)
	if len(fields) > 0 {
		s.renderFormErrors(c, req, fields)
		return
	}
	page := newFormPage(req)
	page.Guide = &g
	c.HTML(http.StatusOK, formTemplate, page)
}

func (s *Server) renderFormErrors(c *gin.Context, req RecommendationRequest, fields map[string]string) {
	for field := range fields {
		s.metrics.ValidationFailures.WithLabelValues(field).Inc()
	}
	page := newFormPage(req)
	page.Errors = fields
	c.HTML(http.StatusBadRequest, formTemplate, page)
}

// WarehouseSelected reports whether the given radio value matches the
// submitted has_warehouse answer.
func (p formPage) WarehouseSelected(value bool) bool {
	return p.Values.HasWarehouse != nil && *p.Values.HasWarehouse == value
}
