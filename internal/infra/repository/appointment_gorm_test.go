package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LuminaWorks/medspa-scheduler/internal/models"
)

func newTestRepo(t *testing.T) (*AppointmentGormRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewAppointmentGormRepository(gdb), mock
}

func TestGetMedspaByID(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "medspas"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Glow"))

	medspa, err := repo.GetMedspaByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), medspa.ID)
	assert.Equal(t, "Glow", medspa.Name)
}

func TestGetMedspaByIDNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "medspas"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetMedspaByID(context.Background(), 42)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetSupplierOfferPreloadsProduct(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "service_product_suppliers"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "product_id", "supplier_name", "price"}).
			AddRow(11, 7, "Allergan", "100.00"))
	mock.ExpectQuery(`SELECT \* FROM "service_products"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "name", "duration", "medspa_id"}).
			AddRow(7, "Botox", 30, 1))

	offer, err := repo.GetSupplierOffer(context.Background(), 11)
	require.NoError(t, err)

	assert.Equal(t, "100.00", offer.Price.StringFixed(2))
	assert.Equal(t, 30, offer.Product.Duration)
	assert.Equal(t, "Botox", offer.Product.Name)
}

func TestCreateAppointmentCommitsAssociationsInOrder(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "appointment_service_suppliers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "appointment_service_suppliers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	ap := &models.Appointment{
		MedspaID:      1,
		StartTime:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		TotalDuration: 75,
		TotalPrice:    decimal.RequireFromString("150.00"),
		Status:        "scheduled",
	}

	err := repo.CreateAppointment(context.Background(), ap, []uint{11, 12})
	require.NoError(t, err)

	assert.Equal(t, uint(1), ap.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentRollsBackOnAssociationFailure(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "appointments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "appointment_service_suppliers"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	ap := &models.Appointment{MedspaID: 1, StartTime: time.Now(), Status: "scheduled"}

	err := repo.CreateAppointment(context.Background(), ap, []uint{11})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointmentsAppliesFilters(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "appointments" WHERE status = \$1 AND DATE\(start_time\) = \$2`).
		WithArgs("scheduled", "2024-01-15").
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "status", "medspa_id"}).
			AddRow(1, "scheduled", 1))

	date := time.Date(2024, 1, 15, 23, 45, 0, 0, time.UTC)
	apps, err := repo.ListAppointments(context.Background(), "scheduled", &date)
	require.NoError(t, err)

	// time-of-day was discarded: only the calendar date reached the query
	require.Len(t, apps, 1)
	assert.Equal(t, uint(1), apps[0].ID)
}

func TestListAppointmentsNoFilters(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "appointments"`).
		WillReturnRows(sqlmock.
			NewRows([]string{"id", "status"}).
			AddRow(1, "scheduled").
			AddRow(2, "canceled"))

	apps, err := repo.ListAppointments(context.Background(), "", nil)
	require.NoError(t, err)

	assert.Len(t, apps, 2)
}
