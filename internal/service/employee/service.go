package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
)

type employeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}

	return responses, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	emp, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:          id.String(),
		Name:        req.Name,
		Designation: req.Designation,
		Salary:      req.Salary,
		City:        req.City,
		Country:     req.Country,
		Mobile:      req.Mobile,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(emp), nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *employeeService) MarkAttendance(ctx context.Context, req employee.MarkAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.employeeRepo.SetAttendanceMark(ctx, req.EmployeeID, req.Date, employee.AttendanceStatus(req.Status))
}

func (s *employeeService) ClearAttendance(ctx context.Context, employeeID string, dateKey string) error {
	if _, err := time.Parse(employee.DateKeyLayout, dateKey); err != nil {
		return employee.ErrInvalidDateKey
	}

	return s.employeeRepo.ClearAttendanceMark(ctx, employeeID, dateKey)
}

func (s *employeeService) BulkMarkAttendance(ctx context.Context, req employee.BulkMarkAttendanceRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	return s.employeeRepo.BulkSetAttendanceMark(ctx, req.EmployeeIDs, req.Date, employee.AttendanceStatus(req.Status))
}

func (s *employeeService) SetOvertime(ctx context.Context, req employee.SetOvertimeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.employeeRepo.SetOvertimeHours(ctx, req.EmployeeID, req.MonthKey, req.Hours)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Name:          emp.Name,
		Designation:   emp.Designation,
		Salary:        emp.Salary,
		City:          emp.City,
		Country:       emp.Country,
		Mobile:        emp.Mobile,
		Attendance:    emp.Attendance,
		OvertimeHours: emp.OvertimeHours,
		CreatedAt:     emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     emp.UpdatedAt.Format(time.RFC3339),
	}
}
