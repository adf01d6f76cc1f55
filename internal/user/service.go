// File: internal/user/service.go
package user

import (
	"context"

	"bookinesia_backend/internal/common"
	"bookinesia_backend/internal/firebase"

	"go.uber.org/zap"
)

// Service proxies user lookups and updates to the identity provider.
type Service interface {
	GetByUID(ctx context.Context, uid string) (*UserProfile, error)
	GetByEmail(ctx context.Context, email string) (*UserProfile, error)
	GetByPhone(ctx context.Context, phone string) (*UserProfile, error)
	UpdatePhone(ctx context.Context, uid, phone string) (*UserProfile, error)
}

// ServiceImplementation is the provider-backed Service.
type ServiceImplementation struct {
	provider firebase.Service
	logger   *zap.Logger
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates the user service on top of the identity provider gateway.
func NewService(provider firebase.Service, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		provider: provider,
		logger:   logger,
	}
}

func (s *ServiceImplementation) GetByUID(ctx context.Context, uid string) (*UserProfile, error) {
	record, err := s.provider.GetUser(ctx, uid)
	if err != nil {
		return nil, common.ErrProviderLookup.WithDetails(err.Error())
	}
	profile := ToProfile(record)
	return &profile, nil
}

func (s *ServiceImplementation) GetByEmail(ctx context.Context, email string) (*UserProfile, error) {
	record, err := s.provider.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, common.ErrProviderLookup.WithDetails(err.Error())
	}
	profile := ToProfile(record)
	return &profile, nil
}

func (s *ServiceImplementation) GetByPhone(ctx context.Context, phone string) (*UserProfile, error) {
	record, err := s.provider.GetUserByPhoneNumber(ctx, phone)
	if err != nil {
		return nil, common.ErrProviderLookup.WithDetails(err.Error())
	}
	profile := ToProfile(record)
	return &profile, nil
}

func (s *ServiceImplementation) UpdatePhone(ctx context.Context, uid, phone string) (*UserProfile, error) {
	record, err := s.provider.UpdateUserPhone(ctx, uid, phone)
	if err != nil {
		return nil, common.ErrProviderUpdate.WithDetails(err.Error())
	}
	profile := ToProfileWithPhone(record)
	return &profile, nil
}
