package commands_test

import (
	"context"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/assignment"
	"grocery/internal/core/domain/model/inventory"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/quote"
	"grocery/internal/core/domain/model/weather"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) GetActivePrimary(
	ctx context.Context, zoneID kernel.UUID, categoryID kernel.UUID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, zoneID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllActive(ctx context.Context) ([]*assignment.Assignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockAllocationRuleRepository struct{ mock.Mock }

func (m *MockAllocationRuleRepository) Upsert(ctx context.Context, rule *assignment.AllocationRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockAllocationRuleRepository) GetAll(ctx context.Context) ([]*assignment.AllocationRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.AllocationRule), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, record *inventory.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockInventoryRepository) Get(
	ctx context.Context, sourceID kernel.UUID, productID kernel.UUID, zoneID kernel.UUID,
) (*inventory.Record, error) {
	args := m.Called(ctx, sourceID, productID, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) Reserve(
	ctx context.Context, sourceID kernel.UUID, productID kernel.UUID, zoneID kernel.UUID, quantity int,
) (*inventory.Record, error) {
	args := m.Called(ctx, sourceID, productID, zoneID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) Release(
	ctx context.Context, sourceID kernel.UUID, productID kernel.UUID, zoneID kernel.UUID, quantity int,
) error {
	args := m.Called(ctx, sourceID, productID, zoneID, quantity)
	return args.Error(0)
}

type MockWeatherRuleRepository struct{ mock.Mock }

func (m *MockWeatherRuleRepository) Append(ctx context.Context, rule *weather.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockWeatherRuleRepository) GetLatest(ctx context.Context, zoneID kernel.UUID) (*weather.Rule, error) {
	args := m.Called(ctx, zoneID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Rule), args.Error(1)
}

func (m *MockWeatherRuleRepository) GetHistory(
	ctx context.Context, zoneID kernel.UUID, limit int,
) ([]*weather.Rule, error) {
	args := m.Called(ctx, zoneID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*weather.Rule), args.Error(1)
}

type MockQuoteRepository struct{ mock.Mock }

func (m *MockQuoteRepository) Add(ctx context.Context, aggregate *quote.OrderQuote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuoteRepository) Update(ctx context.Context, aggregate *quote.OrderQuote) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.OrderQuote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quote.OrderQuote), args.Error(1)
}

func (m *MockQuoteRepository) GetPendingOlderThan(
	ctx context.Context, cutoff time.Time,
) ([]*quote.OrderQuote, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*quote.OrderQuote), args.Error(1)
}

// MockUoW backs every unit-of-work shape the handlers consume: the composed
// interfaces are all subsets of its method set.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) AllocationRuleRepository() ports.AllocationRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.AllocationRuleRepository)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) WeatherRuleRepository() ports.WeatherRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.WeatherRuleRepository)
}

func (m *MockUoW) QuoteRepository() ports.QuoteRepository {
	args := m.Called()
	return args.Get(0).(ports.QuoteRepository)
}

type MockAssignmentUoWFactory struct{ mock.Mock }

func (m *MockAssignmentUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockAllocationRuleUoWFactory struct{ mock.Mock }

func (m *MockAllocationRuleUoWFactory) Create() commands.AllocationRuleUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationRuleUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	args := m.Called()
	return args.Get(0).(commands.InventoryUoW)
}

type MockWeatherUoWFactory struct{ mock.Mock }

func (m *MockWeatherUoWFactory) Create() commands.WeatherUoW {
	args := m.Called()
	return args.Get(0).(commands.WeatherUoW)
}

type MockRoutingUoWFactory struct{ mock.Mock }

func (m *MockRoutingUoWFactory) Create() commands.RoutingUoW {
	args := m.Called()
	return args.Get(0).(commands.RoutingUoW)
}

type MockQuoteUoWFactory struct{ mock.Mock }

func (m *MockQuoteUoWFactory) Create() commands.QuoteUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteUoW)
}

type MockQuoteReleaseUoWFactory struct{ mock.Mock }

func (m *MockQuoteReleaseUoWFactory) Create() commands.QuoteReleaseUoW {
	args := m.Called()
	return args.Get(0).(commands.QuoteReleaseUoW)
}
