package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agendaviva/contexts/agenda/report-service/application"
	domainerrors "agendaviva/contexts/agenda/report-service/domain/errors"
	"agendaviva/contexts/agenda/report-service/ports"
	httptransport "agendaviva/contexts/agenda/report-service/transport/http"
)

const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
)

type Handler struct {
	RenderCalendar application.RenderCalendarUseCase
	ExportICS      application.ExportICSUseCase
	PDF            ports.PDFRenderer
	Logger         *slog.Logger
}

// CalendarReportHandler renders the requested period. When PDF output
// is asked for without a configured renderer, HTML is served instead.
func (h Handler) CalendarReportHandler(
	ctx context.Context,
	req httptransport.CalendarReportRequest,
) (httptransport.ReportDocument, error) {
	format := req.Format
	if format == "" {
		format = FormatHTML
	}
	if format != FormatHTML && format != FormatPDF {
		return httptransport.ReportDocument{}, domainerrors.ErrInvalidReportRequest
	}

	html, err := h.RenderCalendar.Execute(ctx, application.RenderCalendarRequest{
		Period:   req.Period,
		Layout:   req.Layout,
		Year:     req.Year,
		Month:    req.Month,
		ChurchID: req.ChurchID,
	})
	if err != nil {
		return httptransport.ReportDocument{}, err
	}

	if format == FormatPDF && h.PDF != nil {
		pdf, err := h.PDF.RenderPDF(ctx, html)
		if err != nil {
			return httptransport.ReportDocument{}, err
		}
		return httptransport.ReportDocument{
			ContentType: "application/pdf",
			Body:        pdf,
		}, nil
	}
	if format == FormatPDF && h.Logger != nil {
		h.Logger.Warn("pdf renderer not configured, serving html",
			"event", "pdf_fallback_html",
			"module", "agenda/report-service",
			"layer", "adapter",
		)
	}
	return httptransport.ReportDocument{
		ContentType: "text/html; charset=utf-8",
		Body:        []byte(html),
	}, nil
}

func (h Handler) CalendarFeedHandler(
	ctx context.Context,
	from string,
	to string,
	churchID string,
) (httptransport.ReportDocument, error) {
	fromAt, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return httptransport.ReportDocument{}, domainerrors.ErrInvalidReportRequest
	}
	toAt, err := time.Parse(time.RFC3339, to)
	if err != nil {
		return httptransport.ReportDocument{}, domainerrors.ErrInvalidReportRequest
	}

	feed, err := h.ExportICS.Execute(ctx, application.ExportICSRequest{
		From:     fromAt,
		To:       toAt,
		ChurchID: churchID,
	})
	if err != nil {
		return httptransport.ReportDocument{}, err
	}
	return httptransport.ReportDocument{
		ContentType: "text/calendar; charset=utf-8",
		Body:        []byte(feed),
	}, nil
}
