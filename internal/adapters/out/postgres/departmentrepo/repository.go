package departmentrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDepartmentRepository implements DepartmentRepository using GORM.
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GORM department repository.
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// Get retrieves a department by ID.
func (r *GormDepartmentRepository) Get(ctx context.Context, id kernel.UUID) (*department.Department, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepartmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("departmentId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every department, active and inactive.
func (r *GormDepartmentRepository) GetAll(ctx context.Context) ([]*department.Department, error) {
	var dtos []DepartmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	departments := make([]*department.Department, 0, len(dtos))
	for _, dto := range dtos {
		dept, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	return departments, nil
}
