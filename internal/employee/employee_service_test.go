package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee"
	employeeerrors "github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee/errors"
	employeeMock "github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testDefaultPassword = "changeme-123"

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	rdb, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	svc := employee.NewService(gdb, repo, rdb, testDefaultPassword)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func validRequest() employee.UpsertEmployeeRequest {
	return employee.UpsertEmployeeRequest{
		Name:          "Jane Doe",
		Email:         "jane@example.com",
		EmpID:         "EMP001",
		MonthlySalary: "30000",
		DaysWorked:    "20",
		Department:    "Finance",
		Status:        employee.StatusActive,
	}
}

func TestEmployeeService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("new employee gets the default credential and is queued for payroll", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRequest()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().
			WithTx(gomock.Any()).
			Return(deps.repo)

		deps.repo.EXPECT().
			FindByUsername(ctx, "jane.doe").
			Return(nil, gorm.ErrRecordNotFound)

		var saved *employee.Employee
		deps.repo.EXPECT().
			UpsertMany(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, batch map[string]*employee.Employee) error {
				saved = batch["jane.doe"]
				return nil
			})

		deps.redisMock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		deps.repo.EXPECT().
			FindByUsername(ctx, "jane.doe").
			DoAndReturn(func(ctx context.Context, username string) (*employee.Employee, error) {
				return saved, nil
			})

		resp, err := deps.service.Upsert(ctx, "  jane.doe  ", req)
		assert.NoError(t, err)

		assert.Equal(t, "jane.doe", resp.Username)
		assert.True(t, resp.Pending)
		assert.InDelta(t, 30000, resp.MonthlySalary, 1e-9)
		assert.Equal(t, 20, resp.DaysWorked)

		// Stored credential is a salted hash of the configured default,
		// never the plaintext.
		assert.NotEqual(t, testDefaultPassword, saved.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte(testDefaultPassword)))

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("editing without a password carries the existing hash", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existingHash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
		existing := &employee.Employee{
			Username:     "jane.doe",
			Name:         "Jane Doe",
			PasswordHash: string(existingHash),
			Pending:      false,
			CreatedAt:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		req := validRequest()
		req.Department = "Legal"

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "jane.doe").Return(existing, nil)

		var saved *employee.Employee
		deps.repo.EXPECT().
			UpsertMany(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, batch map[string]*employee.Employee) error {
				saved = batch["jane.doe"]
				return nil
			})

		deps.redisMock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		deps.repo.EXPECT().
			FindByUsername(ctx, "jane.doe").
			DoAndReturn(func(ctx context.Context, username string) (*employee.Employee, error) {
				return saved, nil
			})

		resp, err := deps.service.Upsert(ctx, "jane.doe", req)
		assert.NoError(t, err)

		assert.Equal(t, string(existingHash), saved.PasswordHash)
		// The save is a wholesale replacement; timestamps refresh.
		assert.True(t, saved.CreatedAt.After(existing.CreatedAt))
		// Even a non-pay edit re-queues payroll.
		assert.True(t, resp.Pending)
		assert.Equal(t, "Legal", resp.Department)
	})

	t.Run("a supplied password replaces the credential", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		oldHash, _ := bcrypt.GenerateFromPassword([]byte("old"), bcrypt.DefaultCost)
		existing := &employee.Employee{Username: "jane.doe", PasswordHash: string(oldHash)}

		req := validRequest()
		req.Password = "new-secret"

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "jane.doe").Return(existing, nil)

		var saved *employee.Employee
		deps.repo.EXPECT().
			UpsertMany(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, batch map[string]*employee.Employee) error {
				saved = batch["jane.doe"]
				return nil
			})

		deps.redisMock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		deps.repo.EXPECT().
			FindByUsername(ctx, "jane.doe").
			DoAndReturn(func(ctx context.Context, username string) (*employee.Employee, error) {
				return saved, nil
			})

		_, err := deps.service.Upsert(ctx, "jane.doe", req)
		assert.NoError(t, err)

		assert.NotEqual(t, string(oldHash), saved.PasswordHash)
		assert.NotEqual(t, "new-secret", saved.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("new-secret")))
	})

	t.Run("validation failures touch nothing", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		tests := []struct {
			name    string
			user    string
			mutate  func(*employee.UpsertEmployeeRequest)
			wantErr error
		}{
			{
				name:    "blank username",
				user:    "   ",
				mutate:  func(r *employee.UpsertEmployeeRequest) {},
				wantErr: employeeerrors.ErrUsernameRequired,
			},
			{
				name:    "unparsable salary",
				user:    "jane.doe",
				mutate:  func(r *employee.UpsertEmployeeRequest) { r.MonthlySalary = "lots" },
				wantErr: employeeerrors.ErrInvalidSalary,
			},
			{
				name:    "negative salary",
				user:    "jane.doe",
				mutate:  func(r *employee.UpsertEmployeeRequest) { r.MonthlySalary = "-1" },
				wantErr: employeeerrors.ErrInvalidSalary,
			},
			{
				name:    "unparsable days",
				user:    "jane.doe",
				mutate:  func(r *employee.UpsertEmployeeRequest) { r.DaysWorked = "many" },
				wantErr: employeeerrors.ErrInvalidDaysWorked,
			},
			{
				name:    "negative days",
				user:    "jane.doe",
				mutate:  func(r *employee.UpsertEmployeeRequest) { r.DaysWorked = "-3" },
				wantErr: employeeerrors.ErrInvalidDaysWorked,
			},
			{
				name:    "unknown status",
				user:    "jane.doe",
				mutate:  func(r *employee.UpsertEmployeeRequest) { r.Status = "Retired" },
				wantErr: employeeerrors.ErrInvalidStatus,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := validRequest()
				tt.mutate(&req)

				_, err := deps.service.Upsert(ctx, tt.user, req)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}

		// No transaction, no write, no cache invalidation happened.
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("blank department defaults to Unknown", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validRequest()
		req.Department = ""

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByUsername(ctx, "jane.doe").Return(nil, gorm.ErrRecordNotFound)

		var saved *employee.Employee
		deps.repo.EXPECT().
			UpsertMany(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, batch map[string]*employee.Employee) error {
				saved = batch["jane.doe"]
				return nil
			})

		deps.redisMock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		deps.repo.EXPECT().
			FindByUsername(ctx, "jane.doe").
			DoAndReturn(func(ctx context.Context, username string) (*employee.Employee, error) {
				return saved, nil
			})

		resp, err := deps.service.Upsert(ctx, "jane.doe", req)
		assert.NoError(t, err)
		assert.Equal(t, employee.DefaultDepartment, resp.Department)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an existing employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByUsername(ctx, "jane.doe").
			Return(&employee.Employee{Username: "jane.doe"}, nil)
		deps.repo.EXPECT().Delete(ctx, "jane.doe").Return(nil)

		deps.redisMock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		err := deps.service.Delete(ctx, "jane.doe")
		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing username is an error, not a silent no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByUsername(ctx, "ghost").
			Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, "ghost")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Directory(t *testing.T) {
	ctx := context.Background()

	entries := []employee.DirectoryEntry{
		{Username: "amy.lee", Name: "Amy Lee", EmpID: "EMP003", Department: "HR", Status: employee.StatusActive},
		{Username: "jane.doe", Name: "Jane Doe", EmpID: "EMP001", Department: "Finance", Status: employee.StatusActive},
	}

	t.Run("cache miss reads through and caches", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet(employee.DirectoryCacheKey).RedisNil()

		deps.repo.EXPECT().
			FindAll(ctx).
			Return(map[string]employee.Employee{
				"jane.doe": {Username: "jane.doe", Name: "Jane Doe", EmpID: "EMP001", Department: "Finance", Status: employee.StatusActive},
				"amy.lee":  {Username: "amy.lee", Name: "Amy Lee", EmpID: "EMP003", Department: "HR", Status: employee.StatusActive},
			}, nil)

		data, _ := json.Marshal(entries)
		deps.redisMock.ExpectSet(employee.DirectoryCacheKey, data, 1*time.Hour).SetVal("OK")

		got, err := deps.service.Directory(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the store entirely", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		data, _ := json.Marshal(entries)
		deps.redisMock.ExpectGet(employee.DirectoryCacheKey).SetVal(string(data))

		got, err := deps.service.Directory(ctx)
		assert.NoError(t, err)
		assert.Equal(t, entries, got)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().
		FindAll(ctx).
		Return(map[string]employee.Employee{
			"jane.doe": {Username: "jane.doe", Name: "Jane Doe"},
			"amy.lee":  {Username: "amy.lee", Name: "Amy Lee"},
		}, nil)

	resp, err := deps.service.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	// Stable ordering by username regardless of map iteration.
	assert.Equal(t, "amy.lee", resp[0].Username)
	assert.Equal(t, "jane.doe", resp[1].Username)
}
