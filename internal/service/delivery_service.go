// internal/service/delivery_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go_5_flashcard_keep/internal/config"
	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"
	"go_5_flashcard_keep/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryService は planned の通知ログを定期的に拾い、通知として送信するワーカーです。
// 送信に失敗した行は planned のまま残り、次のティックで再試行されます
type DeliveryService struct {
	db         *gorm.DB
	notifRepo  repository.NotificationRepository
	cardRepo   repository.CardRepository
	tenantRepo repository.TenantRepository
	notifier   Notifier
	cfg        *config.Config
	logger     *slog.Logger
	clock      scheduler.Clock
}

func NewDeliveryService(db *gorm.DB, notifRepo repository.NotificationRepository, cardRepo repository.CardRepository, tenantRepo repository.TenantRepository, notifier Notifier, cfg *config.Config, logger *slog.Logger, clock scheduler.Clock) *DeliveryService {
	if clock == nil {
		clock = scheduler.SystemClock()
	}
	return &DeliveryService{
		db:         db,
		notifRepo:  notifRepo,
		cardRepo:   cardRepo,
		tenantRepo: tenantRepo,
		notifier:   notifier,
		cfg:        cfg,
		logger:     logger.With("worker", "delivery"),
		clock:      clock,
	}
}

// Run はコンテキストがキャンセルされるまで配送ループを回します。
// 起動直後に1回配送してから、設定間隔のティックに移る (停止中に溜まった分を先に捌く)
func (s *DeliveryService) Run(ctx context.Context) {
	interval := time.Duration(s.cfg.Worker.DeliveryIntervalMinutes) * time.Minute
	s.logger.Info("Notification delivery worker started", "interval", interval.String())

	ctx = middleware.ContextWithLogger(ctx, s.logger)
	s.deliverDue(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Notification delivery worker stopped")
			return
		case <-ticker.C:
			s.deliverDue(ctx)
		}
	}
}

// deliverDue は送信予定時刻を過ぎた planned の通知を配送します
func (s *DeliveryService) deliverDue(ctx context.Context) {
	now := s.clock.Now()
	due, err := s.notifRepo.FindDuePlanned(ctx, s.db, now, s.cfg.Worker.DeliveryBatchLimit)
	if err != nil {
		s.logger.Error("Failed to find due notifications", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}
	s.logger.Debug("Found due notifications", "count", len(due))

	// 同じテナント・同じ予定時刻の行を1通の通知にまとめる
	type groupKey struct {
		tenantID    uuid.UUID
		scheduledAt int64
	}
	groups := make(map[groupKey][]*model.NotificationLog)
	order := make([]groupKey, 0)
	for _, log := range due {
		key := groupKey{tenantID: log.TenantID, scheduledAt: log.ScheduledAt.Unix()}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], log)
	}

	for _, key := range order {
		s.deliverGroup(ctx, key.tenantID, groups[key], now)
	}
}

// deliverGroup は1通知 (1テナント・1予定時刻) 分の行をまとめて配送します
func (s *DeliveryService) deliverGroup(ctx context.Context, tenantID uuid.UUID, group []*model.NotificationLog, now time.Time) {
	logger := s.logger.With("tenant_id", tenantID)

	notificationIDs := make([]uuid.UUID, len(group))
	cardIDs := make([]uuid.UUID, len(group))
	for i, log := range group {
		notificationIDs[i] = log.NotificationID
		cardIDs[i] = log.CardID
	}

	tenant, err := s.tenantRepo.FindByID(ctx, s.db, tenantID)
	if err != nil {
		logger.Warn("Skipping notifications for missing tenant", "error", err, "count", len(group))
		if err := s.notifRepo.MarkSkipped(ctx, s.db, notificationIDs); err != nil {
			logger.Error("Failed to mark notifications as skipped", "error", err)
		}
		return
	}
	if !tenant.IsActive {
		logger.Info("Skipping notifications for inactive tenant", "count", len(group))
		if err := s.notifRepo.MarkSkipped(ctx, s.db, notificationIDs); err != nil {
			logger.Error("Failed to mark notifications as skipped", "error", err)
		}
		return
	}

	cards, err := s.cardRepo.FindByIDs(ctx, s.db, tenantID, cardIDs)
	if err != nil {
		logger.Error("Failed to load cards for notification, will retry", "error", err)
		return
	}

	// 計画後に削除されたカードの行は skipped に落とし、残りだけ送る
	existing := make(map[uuid.UUID]bool, len(cards))
	for _, c := range cards {
		existing[c.CardID] = true
	}
	sentIDs := make([]uuid.UUID, 0, len(group))
	skippedIDs := make([]uuid.UUID, 0)
	for _, log := range group {
		if existing[log.CardID] {
			sentIDs = append(sentIDs, log.NotificationID)
		} else {
			skippedIDs = append(skippedIDs, log.NotificationID)
		}
	}
	if len(skippedIDs) > 0 {
		if err := s.notifRepo.MarkSkipped(ctx, s.db, skippedIDs); err != nil {
			logger.Error("Failed to mark notifications as skipped", "error", err)
		}
	}
	if len(cards) == 0 {
		return
	}

	subject, body := s.composeDigest(cards)
	if err := s.notifier.Send(ctx, tenant.Email, subject, body); err != nil {
		logger.Error("Failed to send notification, will retry", "error", err, "to", tenant.Email)
		return
	}

	if err := s.notifRepo.MarkSent(ctx, s.db, sentIDs, now); err != nil {
		logger.Error("Failed to mark notifications as sent", "error", err, "count", len(sentIDs))
		return
	}
	logger.Info("Notification delivered", "to", tenant.Email, "cards", len(cards))
}

// composeDigest は通知メールの件名と本文を組み立てます
func (s *DeliveryService) composeDigest(cards []*model.Card) (string, string) {
	subject := fmt.Sprintf("【%s】復習リマインド (%d枚)", s.cfg.App.Name, len(cards))

	var b strings.Builder
	b.WriteString("復習の時間です。今回のカードはこちらです。\n\n")
	for _, c := range cards {
		b.WriteString(fmt.Sprintf("・%s\n", c.Question))
	}
	if s.cfg.App.FrontendURL != "" {
		b.WriteString(fmt.Sprintf("\n学習を始める: %s/reviews/today\n", s.cfg.App.FrontendURL))
	}
	return subject, b.String()
}
