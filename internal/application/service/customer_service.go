package service

import (
	"context"
	"strings"

	"github.com/chatchaiw/apparel-api/internal/domain/entity"
	"github.com/chatchaiw/apparel-api/internal/domain/repository"
	"github.com/chatchaiw/apparel-api/pkg/apperror"
	"github.com/chatchaiw/apparel-api/pkg/pagination"
	"github.com/google/uuid"
)

// placeholderCustomerName absorbs orders submitted without a customer name
// so they still attach to a customer row.
const placeholderCustomerName = "ลูกค้าไม่ระบุชื่อ"

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CustomerInput is the contact block that rides along with an order
// submission.
type CustomerInput struct {
	Name           string
	CustomerCode   string
	Phone          string
	ContactChannel string
	Address        string
}

// Resolve finds or creates the customer for an order submission.
// Matching is by trimmed name; a blank name resolves to the shared
// placeholder customer. Contact fields merge per field: a non-empty
// incoming value overwrites, missing input never blanks a stored value.
func (s *CustomerService) Resolve(ctx context.Context, input *CustomerInput) (*entity.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = placeholderCustomerName
	}

	customer, err := s.customerRepo.FindOrCreateByName(ctx, name)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.CustomerCode != "" && input.CustomerCode != customer.CustomerCode {
		customer.CustomerCode = input.CustomerCode
		changed = true
	}
	if input.Phone != "" && input.Phone != customer.Phone {
		customer.Phone = input.Phone
		changed = true
	}
	if input.ContactChannel != "" && input.ContactChannel != customer.ContactChannel {
		customer.ContactChannel = input.ContactChannel
		changed = true
	}
	if input.Address != "" && input.Address != customer.Address {
		customer.Address = input.Address
		changed = true
	}

	if changed {
		if err := s.customerRepo.Update(ctx, customer); err != nil {
			return nil, err
		}
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with optional name/phone/code search
func (s *CustomerService) ListCustomers(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}
