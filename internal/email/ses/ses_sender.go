package ses

import (
	"context"
	"fmt"
	"html"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"cmcreport/internal/domain"
	"cmcreport/internal/port"
)

// EmailAPI is the subset of the SES v2 client used by the notifier.
type EmailAPI interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

type sesNotifier struct {
	client      EmailAPI
	fromAddress string
	fromName    string
	opsAddress  string
}

// NewSESNotifier creates a ReportNotifier that mails the operations inbox
// through SES.
func NewSESNotifier(region, fromAddress, fromName, opsAddress string) (port.ReportNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return NewNotifierWithClient(sesv2.NewFromConfig(cfg), fromAddress, fromName, opsAddress), nil
}

// NewNotifierWithClient builds the notifier around an existing SES client.
func NewNotifierWithClient(client EmailAPI, fromAddress, fromName, opsAddress string) port.ReportNotifier {
	return &sesNotifier{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
		opsAddress:  opsAddress,
	}
}

func (s *sesNotifier) NotifyReportReady(ctx context.Context, report *domain.GeneratedReport, meta domain.ReportMetadata) error {
	if s.opsAddress == "" {
		log.Printf("sesNotifier.NotifyReportReady: no ops address configured, skipping %s", report.Filename)
		return nil
	}

	subject := fmt.Sprintf("Reporte listo: %s", report.Filename)
	htmlBody := buildReportReadyHTML(report, meta)
	textBody := fmt.Sprintf(
		"Caso: %s\nTicket: %s\nArchivo: %s\nImágenes: %d\nUbicación: %s\n",
		meta.IncidentName, meta.TicketID, report.Filename, report.ImageCount, report.Location,
	)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{s.opsAddress},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReportReadyHTML(report *domain.GeneratedReport, meta domain.ReportMetadata) string {
	link := ""
	if report.Location != "" {
		link = fmt.Sprintf(`<p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #1F6FEB; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Descargar reporte</a>
  </p>`, html.EscapeString(report.Location))
	}
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Reporte de evidencias generado</h2>
  <p><strong>Caso:</strong> %s</p>
  <p><strong>Ticket:</strong> %s</p>
  <p><strong>Archivo:</strong> %s (%d imágenes)</p>
  %s
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Reportes CMC</p>
</body>
</html>`,
		html.EscapeString(meta.IncidentName),
		html.EscapeString(meta.TicketID),
		html.EscapeString(report.Filename),
		report.ImageCount,
		link,
	)
}
