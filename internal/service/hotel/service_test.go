package hotel

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

type failingInventory struct{}

func (failingInventory) ListOccupied(context.Context) ([]*domain.Occupancy, error) {
	return nil, errors.New("boom")
}
func (failingInventory) GetByRoom(context.Context, int) (*domain.Occupancy, error) {
	return nil, errors.New("boom")
}
func (failingInventory) Availability(context.Context) ([]domain.RoomTypeAvailability, error) {
	return nil, errors.New("boom")
}

// --- Tests ---

func setup(t *testing.T) (*Service, *inventory.Repository) {
	t.Helper()
	repo, err := inventory.NewRepository(domain.DefaultRoomTypes)
	require.NoError(t, err)
	svc := NewService(repo, domain.NewMenu(domain.DefaultMenu), domain.DefaultPaymentDetails, nopLogger{})
	return svc, repo
}

func TestListOccupied(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	resp, err := svc.ListOccupied(ctx)
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
	assert.NotNil(t, resp.Rooms)

	_, err = repo.Allocate(ctx, domain.RoomTypeDeluxe,
		domain.Guest{Name: "Bob", GuestID: "Pune", Phone: "12345"}, types.NewDate(2025, time.October, 1))
	require.NoError(t, err)
	_, err = repo.Allocate(ctx, domain.RoomTypeStandard,
		domain.Guest{Name: "Alice", GuestID: "A1", Phone: "999"}, types.NewDate(2025, time.October, 2))
	require.NoError(t, err)

	resp, err = svc.ListOccupied(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	assert.Equal(t, 101, resp.Rooms[0].RoomNumber)
	assert.Equal(t, "Alice", resp.Rooms[0].GuestName)
	assert.Equal(t, "standard", resp.Rooms[0].RoomType)
	assert.Equal(t, "2025-10-02", resp.Rooms[0].CheckInDate)

	assert.Equal(t, 201, resp.Rooms[1].RoomNumber)
	assert.Equal(t, "Pune", resp.Rooms[1].GuestID)
	assert.Equal(t, "12345", resp.Rooms[1].Phone)
}

func TestGetOccupiedRoom(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	_, err := svc.GetOccupiedRoom(ctx, 101)
	assert.ErrorIs(t, err, ErrRoomNotOccupied)

	_, err = svc.GetOccupiedRoom(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = repo.Allocate(ctx, domain.RoomTypeStandard, domain.Guest{Name: "Alice"}, types.NewDate(2025, time.October, 2))
	require.NoError(t, err)

	room, err := svc.GetOccupiedRoom(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, "Alice", room.GuestName)
}

func TestGetRoomTypes(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	_, err := repo.Allocate(ctx, domain.RoomTypeSuite, domain.Guest{Name: "Eve"}, types.NewDate(2025, time.October, 2))
	require.NoError(t, err)

	resp, err := svc.GetRoomTypes(ctx)
	require.NoError(t, err)
	require.Len(t, resp, 4)

	assert.Equal(t, "standard", resp[0].RoomType)
	assert.Equal(t, int64(2000), resp[0].NightlyRate)
	assert.Equal(t, 3, resp[0].AvailableCount)

	suite := resp[3]
	assert.Equal(t, "suite", suite.RoomType)
	assert.Equal(t, 2, suite.AvailableCount)
	assert.Equal(t, 1, suite.OccupiedCount)
	assert.Equal(t, []int{402, 403}, suite.AvailableRooms)
	assert.Equal(t, 3, suite.TotalRooms)
	assert.False(t, suite.SoldOut)
}

func TestGetRoomTypes_SoldOut(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Allocate(ctx, domain.RoomTypeDeluxe, domain.Guest{Name: "Guest"}, types.NewDate(2025, time.October, 2))
		require.NoError(t, err)
	}

	resp, err := svc.GetRoomTypes(ctx)
	require.NoError(t, err)

	deluxe := resp[1]
	assert.Equal(t, "deluxe", deluxe.RoomType)
	assert.True(t, deluxe.SoldOut)
	assert.Equal(t, 3, deluxe.TotalRooms)
	assert.Equal(t, []int{}, deluxe.AvailableRooms)
}

func TestGetMenuAndPaymentDetails(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	menu := svc.GetMenu(ctx)
	require.Len(t, menu, 5)
	assert.Equal(t, "breakfast", menu[0].Code)
	assert.Equal(t, int64(150), menu[0].UnitPrice)

	pay := svc.GetPaymentDetails(ctx)
	assert.Equal(t, "Kotak Mahindra Bank", pay.BankName)
	assert.Equal(t, "KKBK0001234", pay.RoutingCode)
}

func TestInventoryFailures(t *testing.T) {
	svc := NewService(failingInventory{}, domain.NewMenu(nil), domain.PaymentDetails{}, nopLogger{})
	ctx := context.Background()

	_, err := svc.ListOccupied(ctx)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetOccupiedRoom(ctx, 101)
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetRoomTypes(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}
