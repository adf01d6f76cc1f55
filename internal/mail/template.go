// File: internal/mail/template.go

// Package mail owns the outbound email machinery: the template store loaded
// once at startup and the SMTP sender that submits rendered messages.
package mail

import (
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"bookinesia_backend/internal/config"

	"go.uber.org/zap"
)

// Kind identifies one of the fixed notification templates.
type Kind string

const (
	KindWelcome            Kind = "welcome.customer"
	KindQueueSkip          Kind = "shop.skip.transaction"
	KindQueueReminder      Kind = "shop.queue.reminder"
	KindTransactionReceipt Kind = "shop.finish.transaction"
	KindBookingReceipt     Kind = "shop.add.transaction"
)

// Kinds lists every template the store must load.
var Kinds = []Kind{
	KindWelcome,
	KindQueueSkip,
	KindQueueReminder,
	KindTransactionReceipt,
	KindBookingReceipt,
}

// TemplateStore holds the parsed notification templates. Parsed once at
// startup and read-only afterwards, so it is safe for concurrent use.
type TemplateStore struct {
	templates map[Kind]*template.Template
}

// NewTemplateStore parses every notification template from the configured
// directory. Missing or malformed templates fail startup.
func NewTemplateStore(cfg *config.Config, logger *zap.Logger) (*TemplateStore, error) {
	templates := make(map[Kind]*template.Template, len(Kinds))
	for _, kind := range Kinds {
		path := filepath.Join(cfg.TemplatesDir, string(kind)+".html")
		tmpl, err := template.ParseFiles(path)
		if err != nil {
			logger.Error("Failed to parse email template", zap.String("kind", string(kind)), zap.String("path", path), zap.Error(err))
			return nil, fmt.Errorf("error parsing template %s: %w", kind, err)
		}
		templates[kind] = tmpl
	}
	logger.Info("Email templates loaded", zap.Int("count", len(templates)), zap.String("dir", cfg.TemplatesDir))
	return &TemplateStore{templates: templates}, nil
}

// Render binds data into the template of the given kind and returns the HTML
// body.
func (s *TemplateStore) Render(kind Kind, data interface{}) (string, error) {
	tmpl, ok := s.templates[kind]
	if !ok {
		return "", fmt.Errorf("no template loaded for kind %q", kind)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("error rendering template %s: %w", kind, err)
	}
	return sb.String(), nil
}
