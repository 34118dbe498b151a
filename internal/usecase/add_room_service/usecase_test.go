package add_room_service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

// --- Test doubles ---

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type spyMetrics struct {
	orders  int
	revenue int64
	ignored int
}

func (m *spyMetrics) ObserveRoomService(charge int64, ignoredItems int) {
	m.orders++
	m.revenue += charge
	m.ignored += ignoredItems
}

type failingInventory struct{}

func (failingInventory) AddServiceCharge(context.Context, int, int64) (int64, error) {
	return 0, errors.New("boom")
}

// --- Tests ---

func setup(t *testing.T) (*UseCase, *inventory.Repository, *spyMetrics) {
	t.Helper()
	repo, err := inventory.NewRepository(domain.DefaultRoomTypes)
	require.NoError(t, err)

	_, err = repo.Allocate(context.Background(), domain.RoomTypeStandard,
		domain.Guest{Name: "Alice", Phone: "999"}, types.NewDate(2025, time.October, 16))
	require.NoError(t, err)

	m := &spyMetrics{}
	return NewUseCase(repo, domain.NewMenu(domain.DefaultMenu), m, nopLogger{}), repo, m
}

func TestExecute_AccruesCharges(t *testing.T) {
	uc, repo, m := setup(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{RoomNumber: 101, Items: map[string]int{"tea": 2, "coffee": 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(240), resp.Charge)
	assert.Equal(t, int64(240), resp.ServiceTotal)
	assert.Empty(t, resp.IgnoredItems)

	resp, err = uc.Execute(ctx, &Request{RoomNumber: 101, Items: map[string]int{"Juice": 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(50), resp.Charge)
	assert.Equal(t, int64(290), resp.ServiceTotal)

	occ, err := repo.GetByRoom(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(290), occ.ServiceCharge)
	assert.Equal(t, 2, m.orders)
	assert.Equal(t, int64(290), m.revenue)
}

func TestExecute_UnknownItemsIgnored(t *testing.T) {
	uc, _, m := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomNumber: 101,
		Items:      map[string]int{"coffee": 1, "caviar": 2},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.Charge)
	assert.Equal(t, []string{"caviar"}, resp.IgnoredItems)
	assert.Equal(t, 1, m.ignored)
}

func TestExecute_OnlyUnknownItemsChargesNothing(t *testing.T) {
	uc, _, _ := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{RoomNumber: 101, Items: map[string]int{"caviar": 1}})

	require.NoError(t, err)
	assert.Zero(t, resp.Charge)
	assert.Zero(t, resp.ServiceTotal)
}

func TestExecute_RoomNotOccupied(t *testing.T) {
	uc, _, m := setup(t)

	_, err := uc.Execute(context.Background(), &Request{RoomNumber: 102, Items: map[string]int{"tea": 1}})

	assert.ErrorIs(t, err, ErrRoomNotOccupied)
	assert.Zero(t, m.orders)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero room", req: &Request{RoomNumber: 0, Items: map[string]int{"tea": 1}}},
		{name: "no items", req: &Request{RoomNumber: 101}},
		{name: "zero quantity", req: &Request{RoomNumber: 101, Items: map[string]int{"tea": 0}}},
		{name: "negative quantity", req: &Request{RoomNumber: 101, Items: map[string]int{"tea": 2, "coffee": -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo, _ := setup(t)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			occ, err := repo.GetByRoom(context.Background(), 101)
			require.NoError(t, err)
			assert.Zero(t, occ.ServiceCharge)
		})
	}
}

func TestExecute_HugeQuantitiesRejected(t *testing.T) {
	uc, repo, m := setup(t)
	ctx := context.Background()

	for _, qty := range []int{domain.MaxItemQuantity + 1, 92233720368547758, 184467440737095517} {
		_, err := uc.Execute(ctx, &Request{RoomNumber: 101, Items: map[string]int{"coffee": qty}})
		assert.ErrorIs(t, err, ErrInvalidInput, "quantity %d", qty)
	}

	resp, err := uc.Execute(ctx, &Request{RoomNumber: 101, Items: map[string]int{"coffee": domain.MaxItemQuantity}})
	require.NoError(t, err)
	assert.Equal(t, int64(100*domain.MaxItemQuantity), resp.ServiceTotal)

	occ, err := repo.GetByRoom(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(100*domain.MaxItemQuantity), occ.ServiceCharge)
	assert.Equal(t, 1, m.orders)
}

func TestExecute_AccumulatedTotalStaysBounded(t *testing.T) {
	uc, repo, _ := setup(t)
	ctx := context.Background()

	_, err := repo.AddServiceCharge(ctx, 101, domain.MaxServiceCharge-100)
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{RoomNumber: 101, Items: map[string]int{"coffee": 2}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	occ, err := repo.GetByRoom(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxServiceCharge-100, occ.ServiceCharge)

	resp, err := uc.Execute(ctx, &Request{RoomNumber: 101, Items: map[string]int{"coffee": 1}})
	require.NoError(t, err)
	assert.Equal(t, domain.MaxServiceCharge, resp.ServiceTotal)
}

func TestExecute_InventoryFailure(t *testing.T) {
	uc := NewUseCase(failingInventory{}, domain.NewMenu(domain.DefaultMenu), &spyMetrics{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RoomNumber: 101, Items: map[string]int{"tea": 1}})

	assert.ErrorIs(t, err, ErrInternal)
}
