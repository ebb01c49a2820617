package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/employee"
	"github.com/JohnrodSosmena1/SAL-SURE-Payroll-System/internal/payroll"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var firstNames = []string{
	"John", "Jane", "Michael", "Emily", "David", "Sarah", "James", "Olivia",
	"Robert", "Sophia", "William", "Ava", "Joseph", "Mia", "Charles", "Isabella",
	"Thomas", "Amelia", "Christopher", "Evelyn",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin",
}

var departments = []string{
	"IT", "HR", "Finance", "Sales", "Marketing", "Operations", "Legal", "Customer Service",
}

type Seeder struct {
	employeeRepo    employee.Repository
	payrollRepo     payroll.Repository
	defaultPassword string
	rng             *rand.Rand
	logger          *zap.Logger
}

func NewSeeder(employeeRepo employee.Repository, payrollRepo payroll.Repository, defaultPassword string, logger *zap.Logger) *Seeder {
	return &Seeder{
		employeeRepo:    employeeRepo,
		payrollRepo:     payrollRepo,
		defaultPassword: defaultPassword,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:          logger.Named("seed"),
	}
}

// Run inserts count dummy employees, skipping usernames already taken, and
// writes settled payroll history for roughly half of them.
func (s *Seeder) Run(ctx context.Context, count int) error {
	existing, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	taken := make(map[string]bool, len(existing))
	for username := range existing {
		taken[username] = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	batch := make(map[string]*employee.Employee, count)
	var history []payroll.Record

	for i := 0; i < count; i++ {
		first := firstNames[s.rng.Intn(len(firstNames))]
		last := lastNames[s.rng.Intn(len(lastNames))]

		base := strings.ToLower(first) + "." + strings.ToLower(last)
		username := base
		for n := 1; taken[username]; n++ {
			username = fmt.Sprintf("%s%d", base, n)
		}
		taken[username] = true

		status := employee.StatusActive
		if s.rng.Float64() < 0.1 {
			status = employee.StatusInactive
		}

		createdAt := time.Now().UTC().AddDate(0, 0, -s.rng.Intn(365))
		salary := 20000 + s.rng.Float64()*80000
		days := s.rng.Intn(31)

		emp := &employee.Employee{
			Username:      username,
			Name:          first + " " + last,
			Email:         base + "@example.com",
			EmpID:         fmt.Sprintf("EMP%03d", i+100),
			MonthlySalary: float64(int(salary*100)) / 100,
			DaysWorked:    days,
			Department:    departments[s.rng.Intn(len(departments))],
			Status:        status,
			Pending:       s.rng.Float64() < 0.5,
			PasswordHash:  string(hash),
			CreatedAt:     createdAt,
			UpdatedAt:     createdAt,
		}
		batch[username] = emp

		if s.rng.Float64() < 0.5 {
			b := payroll.Compute(emp.MonthlySalary, emp.DaysWorked)
			history = append(history, payroll.Record{
				EmployeeUsername: username,
				ProcessedAt:      createdAt.AddDate(0, 0, 1+s.rng.Intn(30)),
				Gross:            b.Gross,
				Tax:              b.Tax,
				Net:              b.Net,
			})
		}
	}

	if err := s.employeeRepo.UpsertMany(ctx, batch); err != nil {
		return err
	}
	if err := s.payrollRepo.Append(ctx, history); err != nil {
		return err
	}

	s.logger.Info("seed complete",
		zap.Int("employees", len(batch)),
		zap.Int("payroll_records", len(history)),
	)
	return nil
}
