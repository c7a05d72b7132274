package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/saas-platform/internal/auth"
	"github.com/spec-kit/saas-platform/internal/domain"
	"github.com/spec-kit/saas-platform/internal/persistence"
	"github.com/spec-kit/saas-platform/internal/repository"
	apperrors "github.com/spec-kit/saas-platform/pkg/util"
)

const (
	faqCacheTTL        = 5 * time.Minute
	faqCacheVersionKey = "faqs:ver"
)

// FAQService manages knowledge-base entries. Reads are public and served
// through a Redis read-through cache; writes are admin-only and bump the
// cache namespace version instead of deleting individual keys.
type FAQService struct {
	faqs   repository.FAQRepository
	cache  *persistence.Redis
	logger *zap.Logger
}

// FAQInput carries create/update payloads.
type FAQInput struct {
	Question string
	Answer   string
	Category string
}

type faqListPage struct {
	Items []domain.FAQ `json:"items"`
	Total int64        `json:"total"`
}

// NewFAQService builds the service.
func NewFAQService(faqs repository.FAQRepository, cache *persistence.Redis, logger *zap.Logger) *FAQService {
	return &FAQService{faqs: faqs, cache: cache, logger: logger}
}

// Get returns a single entry. No identity check: FAQs are public reads.
func (s *FAQService) Get(ctx context.Context, id string) (*domain.FAQ, error) {
	faq, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("FAQ")
		}
		return nil, err
	}
	return faq, nil
}

// List returns entries, optionally filtered by category, cache first.
func (s *FAQService) List(ctx context.Context, category *string, limit, offset int) ([]domain.FAQ, int64, error) {
	key := s.listKey(ctx, category, limit, offset)
	if page, ok := s.cachedPage(ctx, key); ok {
		return page.Items, page.Total, nil
	}

	faqs, err := s.faqs.List(ctx, category, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.faqs.Count(ctx, category)
	if err != nil {
		return nil, 0, err
	}

	s.storePage(ctx, key, faqListPage{Items: faqs, Total: total})
	return faqs, total, nil
}

// Create adds an entry. Admin only.
func (s *FAQService) Create(ctx context.Context, identity auth.Identity, input FAQInput) (*domain.FAQ, error) {
	if !auth.IsAdmin(identity) {
		return nil, apperrors.NewForbidden("Unauthorized access")
	}

	faq := &domain.FAQ{
		Question: input.Question,
		Answer:   input.Answer,
		Category: input.Category,
	}
	if err := s.faqs.Create(ctx, faq); err != nil {
		return nil, err
	}
	s.bumpCacheVersion(ctx)
	return faq, nil
}

// Update modifies an entry. Admin only.
func (s *FAQService) Update(ctx context.Context, identity auth.Identity, id string, input FAQInput) (*domain.FAQ, error) {
	if !auth.IsAdmin(identity) {
		return nil, apperrors.NewForbidden("Unauthorized access")
	}

	faq, err := s.faqs.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("FAQ")
		}
		return nil, err
	}

	faq.Question = input.Question
	faq.Answer = input.Answer
	faq.Category = input.Category
	if err := s.faqs.Update(ctx, faq); err != nil {
		return nil, err
	}
	s.bumpCacheVersion(ctx)
	return faq, nil
}

// Delete removes an entry. Admin only.
func (s *FAQService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	if !auth.IsAdmin(identity) {
		return apperrors.NewForbidden("Unauthorized access")
	}

	if _, err := s.faqs.GetByID(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("FAQ")
		}
		return err
	}
	if err := s.faqs.Delete(ctx, id); err != nil {
		return err
	}
	s.bumpCacheVersion(ctx)
	return nil
}

func (s *FAQService) listKey(ctx context.Context, category *string, limit, offset int) string {
	version := int64(0)
	if s.cacheAvailable() {
		if v, err := s.cache.Client.Get(ctx, faqCacheVersionKey).Int64(); err == nil {
			version = v
		}
	}
	cat := ""
	if category != nil {
		cat = *category
	}
	return fmt.Sprintf("faqs:v%d:list:%s:%d:%d", version, cat, limit, offset)
}

func (s *FAQService) cachedPage(ctx context.Context, key string) (faqListPage, bool) {
	var page faqListPage
	if !s.cacheAvailable() {
		return page, false
	}
	raw, err := s.cache.Client.Get(ctx, key).Bytes()
	if err != nil {
		return page, false
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return page, false
	}
	return page, true
}

func (s *FAQService) storePage(ctx context.Context, key string, page faqListPage) {
	if !s.cacheAvailable() {
		return
	}
	raw, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, key, raw, faqCacheTTL).Err(); err != nil {
		s.logger.Debug("faq cache store failed", zap.Error(err))
	}
}

func (s *FAQService) bumpCacheVersion(ctx context.Context) {
	if !s.cacheAvailable() {
		return
	}
	if err := s.cache.Client.Incr(ctx, faqCacheVersionKey).Err(); err != nil {
		s.logger.Debug("faq cache invalidation failed", zap.Error(err))
	}
}

func (s *FAQService) cacheAvailable() bool {
	return s.cache != nil && s.cache.Client != nil
}
