// file: internals/features/attendance/school/repository/school_repository.go
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"sekolahku_backend/internals/features/attendance/school/model"
)

var (
	ErrNotFound        = errors.New("school: not found")
	ErrDuplicateNumber = errors.New("school: number already exists")
)

// SchoolStore adalah capability set persistence untuk tabel schools.
// Controller hanya bergantung ke interface ini, bukan ke gorm langsung.
type SchoolStore interface {
	ListAll(ctx context.Context) ([]model.SchoolModel, error)
	SearchILike(ctx context.Context, term string) ([]model.SchoolModel, error)
	FindByID(ctx context.Context, id int) (model.SchoolModel, error)
	FindByNumber(ctx context.Context, number string) (model.SchoolModel, error)
	Create(ctx context.Context, m *model.SchoolModel) error
	UpdateFields(ctx context.Context, id int, updates map[string]interface{}) (model.SchoolModel, error)
	Delete(ctx context.Context, id int) error
}

/* =======================================================
   GORM IMPLEMENTATION
   ======================================================= */

type GormSchoolStore struct {
	DB *gorm.DB
}

func NewGormSchoolStore(db *gorm.DB) *GormSchoolStore {
	return &GormSchoolStore{DB: db}
}

func (s *GormSchoolStore) ListAll(ctx context.Context) ([]model.SchoolModel, error) {
	var rows []model.SchoolModel
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SearchILike: term kosong → pattern "%%" → match semua baris.
func (s *GormSchoolStore) SearchILike(ctx context.Context, term string) ([]model.SchoolModel, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var rows []model.SchoolModel
	err := s.DB.WithContext(ctx).
		Where("LOWER(school_name) LIKE ? OR LOWER(school_number) LIKE ?", pattern, pattern).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *GormSchoolStore) FindByID(ctx context.Context, id int) (model.SchoolModel, error) {
	var m model.SchoolModel
	err := s.DB.WithContext(ctx).Where("school_id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SchoolModel{}, ErrNotFound
	}
	return m, err
}

func (s *GormSchoolStore) FindByNumber(ctx context.Context, number string) (model.SchoolModel, error) {
	var m model.SchoolModel
	err := s.DB.WithContext(ctx).Where("school_number = ?", number).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SchoolModel{}, ErrNotFound
	}
	return m, err
}

func (s *GormSchoolStore) Create(ctx context.Context, m *model.SchoolModel) error {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateNumber
		}
		return err
	}
	return nil
}

func (s *GormSchoolStore) UpdateFields(ctx context.Context, id int, updates map[string]interface{}) (model.SchoolModel, error) {
	m, err := s.FindByID(ctx, id)
	if err != nil {
		return model.SchoolModel{}, err
	}
	if err := s.DB.WithContext(ctx).Model(&m).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return model.SchoolModel{}, ErrDuplicateNumber
		}
		return model.SchoolModel{}, err
	}
	return s.FindByID(ctx, id)
}

func (s *GormSchoolStore) Delete(ctx context.Context, id int) error {
	tx := s.DB.WithContext(ctx).Where("school_id = ?", id).Delete(&model.SchoolModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Deteksi unique violation Postgres (kode "23505")
// tanpa import pgx/pgconn biar portable: cek substring
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
