package auditrepo

import (
	"encoding/json"
	"time"

	"ordering/internal/core/domain/model/audit"
	"ordering/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO represents one activity record row. Details are stored as a
// JSON document.
type RecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EntityType  string    `gorm:"type:varchar(32);index:idx_audit_entity"`
	EntityID    uuid.UUID `gorm:"type:uuid;index:idx_audit_entity"`
	UserID      uuid.UUID `gorm:"type:uuid"`
	Kind        string    `gorm:"type:varchar(32)"`
	Description string
	OldValue    *string
	NewValue    *string
	Details     *string `gorm:"type:jsonb"`
	RecordedAt  time.Time
}

// TableName specifies the database table name for activity records.
func (RecordDTO) TableName() string {
	return "audit_records"
}

func fromDomain(record audit.Record) (RecordDTO, error) {
	var details *string
	if len(record.Details) > 0 {
		raw, err := json.Marshal(record.Details)
		if err != nil {
			return RecordDTO{}, err
		}
		encoded := string(raw)
		details = &encoded
	}

	return RecordDTO{
		ID:          record.ID.Bytes(),
		EntityType:  record.EntityType,
		EntityID:    record.EntityID.Bytes(),
		UserID:      record.UserID.Bytes(),
		Kind:        string(record.Kind),
		Description: record.Description,
		OldValue:    record.OldValue,
		NewValue:    record.NewValue,
		Details:     details,
		RecordedAt:  record.RecordedAt,
	}, nil
}

func toDomain(dto RecordDTO) (audit.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return audit.Record{}, err
	}
	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return audit.Record{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return audit.Record{}, err
	}

	var details map[string]any
	if dto.Details != nil {
		if err := json.Unmarshal([]byte(*dto.Details), &details); err != nil {
			return audit.Record{}, err
		}
	}

	return audit.Record{
		ID:          id,
		EntityType:  dto.EntityType,
		EntityID:    entityID,
		UserID:      userID,
		Kind:        audit.EventKind(dto.Kind),
		Description: dto.Description,
		OldValue:    dto.OldValue,
		NewValue:    dto.NewValue,
		Details:     details,
		RecordedAt:  dto.RecordedAt,
	}, nil
}
