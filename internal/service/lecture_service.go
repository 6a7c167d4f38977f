package service

import (
	"context"
	"errors"

	"go_5_flashcard_keep/internal/middleware"
	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LectureService interface {
	PostLecture(ctx context.Context, tenantID, classID uuid.UUID, req *model.PostLectureRequest) (*model.Lecture, error)
	GetLecture(ctx context.Context, tenantID, lectureID uuid.UUID) (*model.Lecture, error)
	GetLectures(ctx context.Context, tenantID, classID uuid.UUID) ([]*model.Lecture, error)
	DeleteLecture(ctx context.Context, tenantID, lectureID uuid.UUID) error
}

type lectureService struct {
	db          *gorm.DB
	classRepo   repository.ClassRepository
	lectureRepo repository.LectureRepository
	cardRepo    repository.CardRepository
}

func NewLectureService(db *gorm.DB, classRepo repository.ClassRepository, lectureRepo repository.LectureRepository, cardRepo repository.CardRepository) LectureService {
	return &lectureService{
		db:          db,
		classRepo:   classRepo,
		lectureRepo: lectureRepo,
		cardRepo:    cardRepo,
	}
}

func (s *lectureService) PostLecture(ctx context.Context, tenantID, classID uuid.UUID, req *model.PostLectureRequest) (*model.Lecture, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "class_id", classID)

	var createdLecture *model.Lecture

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 所属クラスが自テナントのものであることを確認
		if _, err := s.classRepo.FindByID(ctx, tx, tenantID, classID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				logger.Warn("Class not found for lecture creation")
				return model.NewAppError("CLASS_NOT_FOUND", "指定されたクラスが見つかりません。", "class_id", model.ErrNotFound)
			}
			logger.Error("Failed to check class ownership", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
		}

		lecture := &model.Lecture{
			LectureID:   uuid.New(),
			TenantID:    tenantID,
			ClassID:     classID,
			Title:       req.Title,
			Description: req.Description,
		}
		if err := s.lectureRepo.Create(ctx, tx, lecture); err != nil {
			logger.Error("Failed to create lecture", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "講義の作成に失敗しました。", "", err)
		}

		createdLecture = lecture
		return nil
	})

	if err != nil {
		return nil, err
	}

	logger.Info("Lecture created", "lecture_id", createdLecture.LectureID)
	return createdLecture, nil
}

func (s *lectureService) GetLecture(ctx context.Context, tenantID, lectureID uuid.UUID) (*model.Lecture, error) {
	lecture, err := s.lectureRepo.FindByID(ctx, s.db, tenantID, lectureID)
	if err != nil {
		return nil, err
	}
	return lecture, nil
}

func (s *lectureService) GetLectures(ctx context.Context, tenantID, classID uuid.UUID) ([]*model.Lecture, error) {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "class_id", classID)

	// クラスの存在チェック (他テナントのクラスIDを渡された場合は NotFound)
	if _, err := s.classRepo.FindByID(ctx, s.db, tenantID, classID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("CLASS_NOT_FOUND", "指定されたクラスが見つかりません。", "class_id", model.ErrNotFound)
		}
		logger.Error("Failed to check class ownership", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "サーバー内部でエラーが発生しました。", "", err)
	}

	lectures, err := s.lectureRepo.FindByClass(ctx, s.db, tenantID, classID)
	if err != nil {
		logger.Error("Failed to list lectures", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "講義一覧の取得に失敗しました。", "", err)
	}
	return lectures, nil
}

func (s *lectureService) DeleteLecture(ctx context.Context, tenantID, lectureID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("tenant_id", tenantID, "lecture_id", lectureID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.lectureRepo.FindByID(ctx, tx, tenantID, lectureID); err != nil {
			return err
		}
		// カードは残し、講義への参照だけを外す
		if err := s.cardRepo.DetachLecture(ctx, tx, tenantID, lectureID); err != nil {
			logger.Error("Failed to detach cards from lecture", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "講義の削除に失敗しました。", "", err)
		}
		if err := s.lectureRepo.Delete(ctx, tx, tenantID, lectureID); err != nil {
			logger.Error("Failed to delete lecture", "error", err)
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "講義の削除に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Lecture deleted")
	return nil
}
