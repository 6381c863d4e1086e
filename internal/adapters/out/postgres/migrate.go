package postgres

import (
	"ordering/internal/adapters/out/postgres/articlerepo"
	"ordering/internal/adapters/out/postgres/auditrepo"
	"ordering/internal/adapters/out/postgres/departmentrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/reservationrepo"
	"ordering/internal/adapters/out/postgres/shipmentrepo"
	"ordering/internal/adapters/out/postgres/supplierrepo"

	"gorm.io/gorm"
)

// openBatchIndexSQL enforces at most one Open batch per (supplier, delivery
// date) key. NULLS NOT DISTINCT makes two date-less batches for the same
// supplier collide, which the router relies on for its find-or-create retry.
const openBatchIndexSQL = `
CREATE UNIQUE INDEX IF NOT EXISTS uniq_open_batch
ON shipment_batches (supplier_id, delivery_date)
NULLS NOT DISTINCT
WHERE status = 'Open'`

// Migrate creates or updates the full schema. Requires PostgreSQL 15 or
// later for NULLS NOT DISTINCT.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&departmentrepo.DepartmentDTO{},
		&articlerepo.ArticleDTO{},
		&articlerepo.SupplierLinkDTO{},
		&supplierrepo.SupplierDTO{},
		&supplierrepo.DeliveryDayDTO{},
		&supplierrepo.ApproverSupplierDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&shipmentrepo.BatchDTO{},
		&auditrepo.RecordDTO{},
		&reservationrepo.SummaryDTO{},
	)
	if err != nil {
		return err
	}

	return db.Exec(openBatchIndexSQL).Error
}
