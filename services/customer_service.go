package services

import (
	"sync"

	"hotel-engine/models"
)

// CustomerService is the customer registry. It owns every Customer record;
// other components refer to customers by id only.
type CustomerService struct {
	mu        sync.RWMutex
	customers map[int]*models.Customer
	nextID    int
}

func NewCustomerService() *CustomerService {
	return &CustomerService{
		customers: make(map[int]*models.Customer),
		nextID:    1,
	}
}

// Register validates all identity fields and, on success, stores the
// customer under the next sequential id. A validation failure leaves the
// registry untouched.
func (s *CustomerService) Register(name, email, nationalID string, vip bool) (models.Customer, error) {
	if err := models.ValidateName(name); err != nil {
		return models.Customer{}, err
	}
	if err := models.ValidateNationalID(nationalID); err != nil {
		return models.Customer{}, err
	}
	if err := models.ValidateEmail(email); err != nil {
		return models.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer := &models.Customer{
		ID:         s.nextID,
		Name:       name,
		Email:      email,
		NationalID: nationalID,
		VIP:        vip,
	}
	s.customers[customer.ID] = customer
	s.nextID++
	return *customer, nil
}

// Lookup returns the customer with the given id, or ErrUnknownCustomer.
func (s *CustomerService) Lookup(id int) (models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customers[id]
	if !ok {
		return models.Customer{}, ErrUnknownCustomer
	}
	return *customer, nil
}

// PromoteToVIP flips the customer's VIP flag to true. Idempotent: promoting
// an existing VIP is a no-op. Only the booking ledger calls this.
func (s *CustomerService) PromoteToVIP(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return ErrUnknownCustomer
	}
	customer.VIP = true
	return nil
}

// List returns all registered customers in id order.
func (s *CustomerService) List() []models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Customer, 0, len(s.customers))
	for id := 1; id < s.nextID; id++ {
		if customer, ok := s.customers[id]; ok {
			out = append(out, *customer)
		}
	}
	return out
}
