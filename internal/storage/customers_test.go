package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Pranav212nair/xeno/internal/model"
)

var customerCols = []string{
	"id", "tenant_id", "email", "first_name", "last_name", "total_spent",
	"orders_count", "lifetime_value", "lifecycle", "email_engaged", "created_at",
}

func TestListCustomersLifecycleFilter(t *testing.T) {
	s, mock := newMockStorage(t)
	tenantID := uuid.New()

	mock.ExpectQuery("FROM customers").
		WithArgs(tenantID, model.LifecycleAtRisk, 100).
		WillReturnRows(sqlmock.NewRows(customerCols).
			AddRow(uuid.New(), tenantID, "c@x.com", "Carol", "Chen", 899.25, 8, 1100.0, "at_risk", false, time.Now()))

	customers, err := s.ListCustomers(context.Background(), tenantID, model.LifecycleAtRisk, 100)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "at_risk", customers[0].Lifecycle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListCustomersNoFilter(t *testing.T) {
	s, mock := newMockStorage(t)
	tenantID := uuid.New()

	mock.ExpectQuery("FROM customers").
		WithArgs(tenantID, "", 100).
		WillReturnRows(sqlmock.NewRows(customerCols))

	customers, err := s.ListCustomers(context.Background(), tenantID, "", 100)
	require.NoError(t, err)
	require.Empty(t, customers)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLifecycleCounts(t *testing.T) {
	s, mock := newMockStorage(t)
	tenantID := uuid.New()

	mock.ExpectQuery("GROUP BY lifecycle").
		WithArgs(tenantID).
		WillReturnRows(sqlmock.NewRows([]string{"lifecycle", "count"}).
			AddRow("active", 12).
			AddRow("churned", 3))

	counts, err := s.LifecycleCounts(context.Background(), tenantID)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"active": 12, "churned": 3}, counts)
	require.NoError(t, mock.ExpectationsWereMet())
}
