// internal/service/card_service.go
package service

import (
	"context"
	"errors"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"
	"go_5_flashcard_keep/internal/scheduler"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CardService interface {
	PostCard(ctx context.Context, tenantID uuid.UUID, req *model.PostCardRequest) (*model.Card, error)
	GetCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Card, error)
	GetCards(ctx context.Context, tenantID uuid.UUID, filter repository.CardFilter) ([]*model.Card, error)
	PutCard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PutCardRequest) (*model.Card, error)
	PatchCard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PatchCardRequest) (*model.Card, error)
	DeleteCard(ctx context.Context, tenantID, cardID uuid.UUID) error
	DeactivateCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Card, error)
	ReactivateCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Card, error)
}

type cardService struct {
	db          *gorm.DB
	cardRepo    repository.CardRepository
	classRepo   repository.ClassRepository
	lectureRepo repository.LectureRepository
	clock       scheduler.Clock
}

func NewCardService(db *gorm.DB, cardRepo repository.CardRepository, classRepo repository.ClassRepository, lectureRepo repository.LectureRepository, clock scheduler.Clock) CardService {
	if clock == nil {
		clock = scheduler.SystemClock()
	}
	return &cardService{
		db:          db,
		cardRepo:    cardRepo,
		classRepo:   classRepo,
		lectureRepo: lectureRepo,
		clock:       clock,
	}
}

func (s *cardService) PostCard(ctx context.Context, tenantID uuid.UUID, req *model.PostCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)

	var createdCard *model.Card

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 所属クラスの所有チェック
		if _, err := s.classRepo.FindByID(ctx, tx, tenantID, req.ClassID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Class not found for card creation", "class_id", req.ClassID)
				return model.NewAppError("CLASS_NOT_FOUND", "指定されたクラスが見つかりません。", "class_id", model.ErrNotFound)
			}
			logger.Error("Failed to check class ownership", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		// 2. 講義が指定されていれば、同じクラスに属することを確認
		if req.LectureID != nil {
			lecture, err := s.lectureRepo.FindByID(ctx, tx, tenantID, *req.LectureID)
			if err != nil {
				if errors.Is(err, model.ErrNotFound) {
					logger.Warn("Lecture not found for card creation", "lecture_id", *req.LectureID)
					return model.NewAppError("LECTURE_NOT_FOUND", "指定された講義が見つかりません。", "lecture_id", model.ErrNotFound)
				}
				logger.Error("Failed to check lecture ownership", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			if lecture.ClassID != req.ClassID {
				logger.Warn("Lecture does not belong to the specified class", "lecture_id", *req.LectureID, "class_id", req.ClassID)
				return model.NewAppError("LECTURE_CLASS_MISMATCH", "指定された講義はこのクラスに属していません。", "lecture_id", model.ErrInvalidInput)
			}
		}

		// 3. 同一クラス内の問題文重複チェック
		exists, err := s.cardRepo.CheckQuestionExists(ctx, tx, tenantID, req.ClassID, req.Question, nil)
		if err != nil {
			logger.Error("Failed to check question existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_QUESTION", "同じ問題文のカードが既に存在します。", "question", model.ErrConflict)
		}

		// 4. カードを作成。新規カードは learning 段階で、すぐに学習対象になる
		now := s.clock.Now()
		card := &model.Card{
			CardID:    uuid.New(),
			TenantID:  tenantID,
			ClassID:   req.ClassID,
			LectureID: req.LectureID,
			Question:  req.Question,
			Answer:    req.Answer,
			Tier:      model.TierLearning,
			NextDueAt: now,
		}
		if err := s.cardRepo.Create(ctx, tx, card); err != nil {
			logger.Error("Failed to create card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの作成に失敗しました。", "", err)
		}

		createdCard = card
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Card created", "card_id", createdCard.CardID)
	return createdCard, nil
}

func (s *cardService) GetCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Card, error) {
	card, err := s.cardRepo.FindByID(ctx, s.db, tenantID, cardID)
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) GetCards(ctx context.Context, tenantID uuid.UUID, filter repository.CardFilter) ([]*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID)
	cards, err := s.cardRepo.FindByTenant(ctx, s.db, tenantID, filter)
	if err != nil {
		logger.Error("Failed to list cards", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "カード一覧の取得に失敗しました。", "", err)
	}
	return cards, nil
}

func (s *cardService) PutCard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PutCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)

	var updatedCard *model.Card

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Question != card.Question {
			exists, err := s.cardRepo.CheckQuestionExists(ctx, tx, tenantID, card.ClassID, req.Question, &cardID)
			if err != nil {
				logger.Error("Failed to check question existence during update", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_QUESTION", "同じ問題文のカードが既に存在します。", "question", model.ErrConflict)
			}
			updates["question"] = req.Question
		}
		if req.Answer != card.Answer {
			updates["answer"] = req.Answer
		}

		if len(updates) > 0 {
			if err := s.cardRepo.UpdateFields(ctx, tx, tenantID, cardID, updates); err != nil {
				logger.Error("Failed to update card", "error", err)
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの更新に失敗しました。", "", err)
			}
		}

		updatedCard, err = s.cardRepo.FindByID(ctx, tx, tenantID, cardID)
		if err != nil {
			logger.Error("Failed to fetch updated card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updatedCard, nil
}

func (s *cardService) PatchCard(ctx context.Context, tenantID, cardID uuid.UUID, req *model.PatchCardRequest) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)

	var updatedCard *model.Card

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		card, err := s.cardRepo.FindByID(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Question != nil && *req.Question != "" && *req.Question != card.Question {
			exists, err := s.cardRepo.CheckQuestionExists(ctx, tx, tenantID, card.ClassID, *req.Question, &cardID)
			if err != nil {
				logger.Error("Failed to check question existence during patch", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
			}
			if exists {
				return model.NewAppError("DUPLICATE_QUESTION", "同じ問題文のカードが既に存在します。", "question", model.ErrConflict)
			}
			updates["question"] = *req.Question
		}
		if req.Answer != nil && *req.Answer != "" && *req.Answer != card.Answer {
			updates["answer"] = *req.Answer
		}

		if len(updates) > 0 {
			if err := s.cardRepo.UpdateFields(ctx, tx, tenantID, cardID, updates); err != nil {
				logger.Error("Failed to patch card", "error", err)
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの更新に失敗しました。", "", err)
			}
		}

		updatedCard, err = s.cardRepo.FindByID(ctx, tx, tenantID, cardID)
		if err != nil {
			logger.Error("Failed to fetch patched card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updatedCard, nil
}

func (s *cardService) DeleteCard(ctx context.Context, tenantID, cardID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.cardRepo.FindByID(ctx, tx, tenantID, cardID); err != nil {
			return err
		}
		if err := s.cardRepo.Delete(ctx, tx, tenantID, cardID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの削除に失敗しました。", "", err)
		}
		return nil
	})
}

// DeactivateCard はカードを選択・スケジューリングの対象から外します。
// 学習履歴 (通算成績・平均回答時間) はそのまま保持されます。
func (s *cardService) DeactivateCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)

	var card *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.cardRepo.FindByIDForUpdate(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}
		if found.Tier == model.TierInactive {
			return model.NewAppError("ALREADY_INACTIVE", "このカードは既に停止されています。", "", model.ErrInvalidOperation)
		}

		found.Tier = model.TierInactive
		if err := s.cardRepo.Update(ctx, tx, found); err != nil {
			logger.Error("Failed to deactivate card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの停止に失敗しました。", "", err)
		}
		card = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card deactivated")
	return card, nil
}

// ReactivateCard は停止中のカードを learning 段階に戻します。
// 連続正解数はリセットされ、すぐに学習対象になります。
func (s *cardService) ReactivateCard(ctx context.Context, tenantID, cardID uuid.UUID) (*model.Card, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "card_id", cardID)

	var card *model.Card
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := s.cardRepo.FindByIDForUpdate(ctx, tx, tenantID, cardID)
		if err != nil {
			return err
		}
		if found.Tier != model.TierInactive {
			return model.NewAppError("NOT_INACTIVE", "このカードは停止されていません。", "", model.ErrInvalidOperation)
		}

		found.Tier = model.TierLearning
		found.CorrectStreak = 0
		found.NextDueAt = s.clock.Now()
		if err := s.cardRepo.Update(ctx, tx, found); err != nil {
			logger.Error("Failed to reactivate card", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "カードの再開に失敗しました。", "", err)
		}
		card = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Card reactivated")
	return card, nil
}
