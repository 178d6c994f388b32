package worker

// Processes monthly drink report jobs from QueueReport: builds the report
// for the requested month, renders a PDF, and emails both to the
// configured recipient.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ReportJobPayload is the job envelope sent to QueueReport.
type ReportJobPayload struct {
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	ToEmail string `json:"to_email"`
}

// GenerateReport produces the aggregated report for one month. The drink
// order service provides the implementation at the composition root so the
// worker package stays free of service dependencies.
type GenerateReport func(ctx context.Context, month, year int) (*dto.DrinkReportResponse, error)

type ReportWorker struct {
	mailer   *infra.Mailer
	generate GenerateReport
	pdfDir   string
	rdb      *redis.Client
}

func NewReportWorker(mailer *infra.Mailer, generate GenerateReport, pdfDir string, rdb *redis.Client) *ReportWorker {
	return &ReportWorker{mailer: mailer, generate: generate, pdfDir: pdfDir, rdb: rdb}
}

// Process builds and sends one monthly report. Failures go to the DLQ.
func (w *ReportWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload ReportJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("report_worker: invalid payload")
		return
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("report_worker: empty to_email — skipping")
		return
	}

	rep, err := w.generate(ctx, payload.Month, payload.Year)
	if err != nil {
		log.Error().Err(err).Int("month", payload.Month).Int("year", payload.Year).
			Msg("report_worker: failed to build report")
		SendToDLQ(ctx, w.rdb, QueueReport, "report", raw, err.Error())
		return
	}
	if rep.TotalOrders == 0 {
		log.Info().Int("month", payload.Month).Int("year", payload.Year).
			Msg("report_worker: no orders for period — skipping email")
		return
	}

	// PDF is best-effort: a failed render still sends the text report.
	pdfPath, err := infra.GenerateReportPDF(rep, w.pdfDir)
	if err != nil {
		log.Error().Err(err).Msg("report_worker: PDF generation failed, sending without attachment")
		pdfPath = ""
	}

	subject := fmt.Sprintf("Dzērienu atskaite — %d/%d", payload.Month, payload.Year)
	if err := w.mailer.SendReport(payload.ToEmail, subject, rep.Report, pdfPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("report_worker: failed to send email")
		SendToDLQ(ctx, w.rdb, QueueReport, "report", raw, err.Error())
		return
	}
	log.Info().Str("to", payload.ToEmail).Int("month", payload.Month).Int("year", payload.Year).
		Msg("report_worker: monthly report sent")
}
