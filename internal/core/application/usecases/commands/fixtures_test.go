package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/department"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/staff"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

// testHierarchy is the Restaurant → {Kitchen, Service} fixture shared by the
// handler tests.
type testHierarchy struct {
	departments                  []*department.Department
	restaurant, kitchen, service kernel.UUID
}

func newTestHierarchy(t *testing.T) testHierarchy {
	t.Helper()
	h := testHierarchy{
		restaurant: kernel.NewUUID(),
		kitchen:    kernel.NewUUID(),
		service:    kernel.NewUUID(),
	}

	restaurant, err := department.NewDepartment(h.restaurant, "Restaurant", nil)
	require.NoError(t, err)
	kitchen, err := department.NewDepartment(h.kitchen, "Kitchen", &h.restaurant)
	require.NoError(t, err)
	service, err := department.NewDepartment(h.service, "Service", &h.restaurant)
	require.NoError(t, err)

	h.departments = []*department.Department{restaurant, kitchen, service}
	return h
}

func testUser(t *testing.T, role staff.Role, departmentID kernel.UUID) staff.User {
	t.Helper()
	u, err := staff.NewUser(kernel.NewUUID(), role, departmentID)
	require.NoError(t, err)
	return u
}

type openCalendar struct{}

func (openCalendar) IsHoliday(time.Time) bool { return false }

var testClock = func() time.Time {
	return time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}

func newTestRouter() services.ShipmentRouter {
	return services.NewShipmentRouter(services.NewDeliveryDateCalculator(openCalendar{}), testClock)
}
