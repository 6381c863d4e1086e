// Package departmentrepo implements read-only persistence for the
// department hierarchy. Departments are master data; this repository never
// writes them.
package departmentrepo

import (
	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DepartmentDTO represents one department row. ParentID is nil for the root.
type DepartmentDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name     string     `gorm:"type:varchar(255)"`
	ParentID *uuid.UUID `gorm:"type:uuid;index"`
	IsActive bool
}

// TableName specifies the database table name for departments.
func (DepartmentDTO) TableName() string {
	return "departments"
}

func toDomain(dto DepartmentDTO) (*department.Department, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		parent, parentErr := kernel.UUIDFromBytes((*dto.ParentID)[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &parent
	}

	return department.RestoreDepartment(id, dto.Name, parentID, dto.IsActive)
}
