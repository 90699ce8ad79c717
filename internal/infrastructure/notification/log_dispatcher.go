package notification

import (
	"bytes"
	"context"
	_ "embed"
	"text/template"

	"carport_configurator/internal/domain/entities"
	"carport_configurator/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:embed summary.tmpl
var summaryTemplate string

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

// RenderSummary formats the plain-text confirmation of a submitted configuration.
func RenderSummary(s entities.ConfigurationSummary) (string, error) {
	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, s); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LogDispatcher "delivers" a confirmation by writing it to the log. It is the
// default channel until an email or messaging integration exists.
type LogDispatcher struct{}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

func (d *LogDispatcher) Dispatch(_ context.Context, summary entities.ConfigurationSummary) error {
	text, err := RenderSummary(summary)
	if err != nil {
		return err
	}
	zap.L().Info("[notification][log] configuration summary",
		zap.String("product_line", string(summary.ProductLine)),
		zap.String("configuration_id", summary.Reference),
		zap.String("contact_preference", string(summary.Customer.ContactPreference)),
		zap.String("summary", text),
	)
	return nil
}
