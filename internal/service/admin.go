package service

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"
	"log/slog"
	"slices"

	"github.com/marcelomiracles/storefront-service/internal/config"
	"github.com/marcelomiracles/storefront-service/internal/entities"
	"github.com/marcelomiracles/storefront-service/pkg/trm"
)

const adminIDsCacheKey = "admin_ids"

type AdminRepo interface {
	CountAdmins(ctx context.Context) (int64, error)
	UpsertAdmin(ctx context.Context, admin entities.Admin) error
}

type adminService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      AdminRepo
	verifier  Verifier
	cache     Cache
	cfg       config.Admin
}

func NewAdminService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo AdminRepo,
	verifier Verifier,
	cache Cache,
	cfg config.Admin,
) *adminService {
	return &adminService{
		logger:    logger.With(slog.String("service", "admin")),
		txManager: txManager,
		repo:      repo,
		verifier:  verifier,
		cache:     cache,
		cfg:       cfg,
	}
}

type ActivateAdminParams struct {
	UserID   int64
	Username string
	InitData string
}

// Activate делает пользователя администратором. После достижения лимита
// активация разрешена только id из allow-list; пустой allow-list
// отключает проверку лимита.
func (s *adminService) Activate(ctx context.Context, params ActivateAdminParams) error {
	if !s.verifier.Verify(params.InitData) {
		return entities.ErrInvalidInitData
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		count, err := s.repo.CountAdmins(ctx)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}

		if count >= int64(s.cfg.Cap) && len(s.cfg.AllowList) > 0 && !slices.Contains(s.cfg.AllowList, params.UserID) {
			return entities.ErrAdminLimitReached
		}

		return s.repo.UpsertAdmin(ctx, entities.Admin{
			UserID:   params.UserID,
			Username: params.Username,
		})
	})
	if err != nil {
		return err
	}

	s.cache.Delete(adminIDsCacheKey)
	s.logger.Info("admin activated", slog.Int64("user_id", params.UserID))
	return nil
}

// adminIDs отдаёт список администраторов для рассылки, с кэшированием.
func (s *orderService) adminIDs(ctx context.Context) ([]int64, error) {
	if data, ok := s.cache.Get(adminIDsCacheKey); ok {
		var ids []int64
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&ids); err == nil {
			return ids, nil
		}
		s.cache.Delete(adminIDsCacheKey)
	}

	ids, err := s.repo.ListAdminIDs(ctx)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		var buf bytes.Buffer
		if err := gob.NewEncoder(&buf).Encode(ids); err == nil {
			s.cache.Set(adminIDsCacheKey, buf.Bytes())
		}
	}
	return ids, nil
}
