// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"bookinesia_backend/internal/app"
	"bookinesia_backend/internal/config"
	"bookinesia_backend/internal/firebase"
	"bookinesia_backend/internal/mail"
	"bookinesia_backend/internal/notification"
	"bookinesia_backend/internal/platform/logger"
	"bookinesia_backend/internal/platform/metrics"
	"bookinesia_backend/internal/user"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		provideRegisterer,
		metrics.New,

		// Identity provider gateway
		firebase.NewFirebaseService,
		wire.Bind(new(firebase.Service), new(*firebase.FirebaseService)),

		// Mail delivery
		mail.NewTemplateStore,
		mail.NewSMTPSender,
		wire.Bind(new(mail.Sender), new(*mail.SMTPSender)),

		// Modules
		user.NewService,
		wire.Bind(new(user.Service), new(*user.ServiceImplementation)),
		user.NewHandler,
		notification.NewService,
		wire.Bind(new(notification.Service), new(*notification.ServiceImplementation)),
		notification.NewHandler,

		// Application Layer
		app.NewServer,
		provideCleanup,
	)
	return nil, nil, nil
}
