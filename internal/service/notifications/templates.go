package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/m04kA/SMC-StudioBooking/internal/service/notifications/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const dateTimeLayout = "Mon, 2 Jan 2006 at 15:04"

var subjects = map[string]string{
	models.KindPaymentInstructions: "Payment Instructions",
	models.KindPOPReceived:         "Proof of Payment Received",
	models.KindBookingConfirmed:    "Booking Confirmed",
	models.KindBookingRejected:     "POP Rejected",
}

// templateData данные, доступные во всех шаблонах
type templateData struct {
	StudioName   string
	CustomerName string
	ServiceName  string
	DateTime     string
	Amount       string
	Reference    string
	UploadURL    string
	Reason       string
	Banking      models.BankingDetails
}

// renderer рендерит письма из встроенных шаблонов
type renderer struct {
	templates map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{templates: make(map[string]*template.Template, len(subjects))}
	for kind := range subjects {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+kind+".html")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrRenderTemplate, kind, err)
		}
		r.templates[kind] = tmpl
	}
	return r, nil
}

// render возвращает тему и HTML тело письма
func (r *renderer) render(kind, studioName string, data templateData) (string, string, error) {
	tmpl, ok := r.templates[kind]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnknownTemplate, kind)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, kind+".html", data); err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrRenderTemplate, kind, err)
	}

	subject := subjects[kind]
	if studioName != "" {
		subject = subject + " - " + studioName
	}
	return subject, buf.String(), nil
}

// amountPrinter группирует разряды по правилам локали
var amountPrinter = message.NewPrinter(language.English)

// formatCurrency форматирует сумму в рандах: целые суммы без копеек
func formatCurrency(amount float64) string {
	if amount == math.Trunc(amount) {
		return amountPrinter.Sprintf("R %.0f", amount)
	}
	return amountPrinter.Sprintf("R %.2f", amount)
}

func formatDateTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(dateTimeLayout)
}
