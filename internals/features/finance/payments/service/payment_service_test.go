package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/finance/gateway"
	payModel "schoolhub_backend/internals/features/finance/payments/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db, mock
}

func TestFormatInvoiceNumber(t *testing.T) {
	march := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-202603-0001", FormatInvoiceNumber(march, 1))
	assert.Equal(t, "INV-202603-0042", FormatInvoiceNumber(march, 42))
	assert.Equal(t, "INV-202612-9999", FormatInvoiceNumber(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), 9999))
	// sequence can outgrow the zero padding without truncation
	assert.Equal(t, "INV-202603-12345", FormatInvoiceNumber(march, 12345))
}

func TestSandboxGatewayCharge(t *testing.T) {
	gw := gateway.NewSandboxGateway()
	req := gateway.ChargeRequest{
		PaymentID: uuid.New(),
		OrderID:   "PAY-test",
		Amount:    150000,
		Currency:  "IDR",
	}

	sawSuccess, sawFailure := false, false
	for i := 0; i < 50; i++ {
		res, err := gw.Charge(req)
		require.NoError(t, err)
		assert.Equal(t, "SBX-PAY-test", res.Reference)

		if res.Success {
			sawSuccess = true
			assert.Equal(t, "settlement", res.RawDetail["outcome"])
		} else {
			sawFailure = true
			assert.Equal(t, "deny", res.RawDetail["outcome"])
		}
	}
	assert.True(t, sawSuccess, "coin flip never succeeded in 50 tries")
	assert.True(t, sawFailure, "coin flip never failed in 50 tries")
}

func TestSetDefaultDemotesPriorDefault(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, gateway.NewSandboxGateway())

	studentID := uuid.New()
	methodID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payment_methods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "type", "label", "detail", "is_default"}).
			AddRow(methodID.String(), studentID.String(), payModel.MethodCard, "Visa", "****1234", false))

	// both updates run inside one transaction
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "payment_methods" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "payment_methods" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	method, err := svc.SetDefault(studentID, methodID)
	require.NoError(t, err)
	assert.True(t, method.IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDefaultRejectsForeignMethod(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPaymentService(db, gateway.NewSandboxGateway())

	otherStudent := uuid.New()
	methodID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "payment_methods"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "type", "label", "detail", "is_default"}).
			AddRow(methodID.String(), otherStudent.String(), payModel.MethodCard, "Visa", "****1234", false))

	_, err := svc.SetDefault(uuid.New(), methodID)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
