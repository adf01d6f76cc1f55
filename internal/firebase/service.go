// File: internal/firebase/service.go
package firebase

import (
	"context"
	"fmt"
	"path/filepath"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"bookinesia_backend/internal/config"
)

// Service is the surface of the identity provider this application consumes.
// It exists as an interface so handlers and services can be tested without a
// live Firebase project.
type Service interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error)
	GetUserByPhoneNumber(ctx context.Context, phone string) (*auth.UserRecord, error)
	UpdateUserPhone(ctx context.Context, uid, phone string) (*auth.UserRecord, error)
}

// FirebaseService provides methods to interact with Firebase Authentication.
type FirebaseService struct {
	authClient *auth.Client
	logger     *zap.Logger
}

var _ Service = (*FirebaseService)(nil)

// NewFirebaseService initializes the Firebase Admin SDK and creates a new
// FirebaseService from the application config.
func NewFirebaseService(cfg *config.Config, logger *zap.Logger) (*FirebaseService, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	var app *firebase.App
	var err error

	if cfg.FirebaseProjectID != "" {
		conf := &firebase.Config{ProjectID: cfg.FirebaseProjectID}
		app, err = firebase.NewApp(context.Background(), conf, opt)
	} else {
		// If ProjectID is not specified in config, let SDK infer from credentials
		app, err = firebase.NewApp(context.Background(), nil, opt)
	}

	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(context.Background())
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &FirebaseService{
		authClient: authClient,
		logger:     logger,
	}, nil
}

// GetUser fetches the user record for the given UID.
func (s *FirebaseService) GetUser(ctx context.Context, uid string) (*auth.UserRecord, error) {
	record, err := s.authClient.GetUser(ctx, uid)
	if err != nil {
		s.logger.Warn("Firebase user lookup by UID failed", zap.String("uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user by UID: %w", err)
	}
	return record, nil
}

// GetUserByEmail fetches the user record for the given email address.
func (s *FirebaseService) GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error) {
	record, err := s.authClient.GetUserByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("Firebase user lookup by email failed", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return record, nil
}

// GetUserByPhoneNumber fetches the user record for the given phone number
// (E.164 form).
func (s *FirebaseService) GetUserByPhoneNumber(ctx context.Context, phone string) (*auth.UserRecord, error) {
	record, err := s.authClient.GetUserByPhoneNumber(ctx, phone)
	if err != nil {
		s.logger.Warn("Firebase user lookup by phone failed", zap.String("phone", phone), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch user by phone: %w", err)
	}
	return record, nil
}

// UpdateUserPhone sets the phone number on the given user and returns the
// updated record. Only the phone field is touched; idempotency beyond what the
// provider guarantees is not attempted.
func (s *FirebaseService) UpdateUserPhone(ctx context.Context, uid, phone string) (*auth.UserRecord, error) {
	update := (&auth.UserToUpdate{}).PhoneNumber(phone)
	record, err := s.authClient.UpdateUser(ctx, uid, update)
	if err != nil {
		s.logger.Warn("Firebase phone update failed", zap.String("uid", uid), zap.Error(err))
		return nil, fmt.Errorf("failed to update user phone: %w", err)
	}
	s.logger.Info("Updated user phone number", zap.String("uid", uid))
	return record, nil
}
