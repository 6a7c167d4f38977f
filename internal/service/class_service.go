// internal/service/class_service.go
package service

import (
	"context"
	"errors"
	"log"

	"go_5_flashcard_keep/internal/model"
	"go_5_flashcard_keep/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassService interface {
	PostClass(ctx context.Context, tenantID uuid.UUID, req *model.PostClassRequest) (*model.Class, error)
	GetClass(ctx context.Context, tenantID, classID uuid.UUID) (*model.Class, error)
	GetClasses(ctx context.Context, tenantID uuid.UUID) ([]*model.Class, error)
	PutClass(ctx context.Context, tenantID, classID uuid.UUID, req *model.PutClassRequest) (*model.Class, error)
	DeleteClass(ctx context.Context, tenantID, classID uuid.UUID) error
}

type classService struct {
	db          *gorm.DB // トランザクション用にDB接続を持つ
	classRepo   repository.ClassRepository
	lectureRepo repository.LectureRepository
	cardRepo    repository.CardRepository
}

func NewClassService(db *gorm.DB, classRepo repository.ClassRepository, lectureRepo repository.LectureRepository, cardRepo repository.CardRepository) ClassService {
	return &classService{
		db:          db,
		classRepo:   classRepo,
		lectureRepo: lectureRepo,
		cardRepo:    cardRepo,
	}
}

func (s *classService) PostClass(ctx context.Context, tenantID uuid.UUID, req *model.PostClassRequest) (*model.Class, error) {
	if req.Name == "" {
		return nil, model.ErrInvalidInput
	}

	var createdClass *model.Class

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 同名クラスの重複チェック
		exists, err := s.classRepo.CheckNameExists(ctx, tx, tenantID, req.Name, nil)
		if err != nil {
			log.Printf("Error checking class name existence in transaction: %v", err)
			return model.ErrInternalServer
		}
		if exists {
			return model.ErrConflict // 重複エラー
		}

		// 2. クラスを作成
		class := &model.Class{
			ClassID:     uuid.New(),
			TenantID:    tenantID,
			Name:        req.Name,
			Description: req.Description,
		}
		if err := s.classRepo.Create(ctx, tx, class); err != nil {
			log.Printf("Error creating class in transaction: %v", err)
			return model.ErrInternalServer
		}

		createdClass = class
		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		log.Printf("Transaction failed for PostClass: %v", err)
		return nil, model.ErrInternalServer
	}

	return createdClass, nil
}

func (s *classService) GetClass(ctx context.Context, tenantID, classID uuid.UUID) (*model.Class, error) {
	class, err := s.classRepo.FindByID(ctx, s.db, tenantID, classID)
	if err != nil {
		// エラーはリポジトリで変換済みのはず
		return nil, err
	}
	return class, nil
}

func (s *classService) GetClasses(ctx context.Context, tenantID uuid.UUID) ([]*model.Class, error) {
	classes, err := s.classRepo.FindByTenant(ctx, s.db, tenantID)
	if err != nil {
		log.Printf("Error listing classes: %v", err)
		return nil, model.ErrInternalServer
	}
	return classes, nil
}

func (s *classService) PutClass(ctx context.Context, tenantID, classID uuid.UUID, req *model.PutClassRequest) (*model.Class, error) {
	var updatedClass *model.Class

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認
		class, err := s.classRepo.FindByID(ctx, tx, tenantID, classID)
		if err != nil {
			return err // model.ErrNotFound or model.ErrInternalServer
		}

		// 2. 更新内容の準備と重複チェック
		updates := make(map[string]interface{})
		if req.Name != class.Name {
			exists, err := s.classRepo.CheckNameExists(ctx, tx, tenantID, req.Name, &classID)
			if err != nil {
				log.Printf("Error checking class name existence during update: %v", err)
				return model.ErrInternalServer
			}
			if exists {
				return model.ErrConflict
			}
			updates["name"] = req.Name
		}
		if req.Description != class.Description {
			updates["description"] = req.Description
		}

		// 3. 更新実行 (更新内容がある場合のみ)
		if len(updates) > 0 {
			if err := s.classRepo.Update(ctx, tx, tenantID, classID, updates); err != nil {
				log.Printf("Error updating class in transaction: %v", err)
				if errors.Is(err, model.ErrNotFound) {
					return model.ErrNotFound
				}
				return model.ErrInternalServer
			}
		}

		// 更新後のデータを取得 (トランザクション内で取得するのが確実)
		updatedClass, err = s.classRepo.FindByID(ctx, tx, tenantID, classID)
		if err != nil {
			log.Printf("Error fetching updated class in transaction: %v", err)
			return model.ErrInternalServer
		}

		return nil // コミット
	})

	if err != nil {
		if errors.Is(err, model.ErrNotFound) || errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		log.Printf("Transaction failed for PutClass: %v", err)
		return nil, model.ErrInternalServer
	}

	return updatedClass, nil
}

func (s *classService) DeleteClass(ctx context.Context, tenantID, classID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 存在確認 (論理削除されていないか)
		if _, err := s.classRepo.FindByID(ctx, tx, tenantID, classID); err != nil {
			return err
		}

		// 2. 配下のカードと講義も併せて論理削除する。
		//    カードを残すと選択対象に入り続け、存在しないクラスの出題が発生する
		if err := s.cardRepo.DeleteByClass(ctx, tx, tenantID, classID); err != nil {
			log.Printf("Error deleting cards of class %s: %v", classID, err)
			return model.ErrInternalServer
		}
		if err := s.lectureRepo.DeleteByClass(ctx, tx, tenantID, classID); err != nil {
			log.Printf("Error deleting lectures of class %s: %v", classID, err)
			return model.ErrInternalServer
		}

		// 3. 論理削除を実行
		if err := s.classRepo.Delete(ctx, tx, tenantID, classID); err != nil {
			log.Printf("Error deleting class %s: %v", classID, err)
			if errors.Is(err, model.ErrNotFound) {
				return model.ErrNotFound
			}
			return model.ErrInternalServer
		}
		return nil // コミット
	})
	return err
}
