package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/config"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Parse("")
	require.NoError(t, err)

	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	r, err := newRouter(cfg, m, logger.NewWithWriter(io.Discard, logger.LevelError))
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHotelFlow(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1"
	checkInDate := types.DateOf(time.Now()).AddDays(-2).String()

	// Заселение
	var checkIn struct {
		RoomNumber int    `json:"roomNumber"`
		RoomType   string `json:"roomType"`
	}
	status := doJSON(t, http.MethodPost, api+"/check-ins", map[string]string{
		"guestName":   "Alice",
		"guestId":     "A1",
		"phone":       "9999999999",
		"roomType":    "Standard",
		"checkInDate": checkInDate,
	}, &checkIn)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, 101, checkIn.RoomNumber)
	assert.Equal(t, "standard", checkIn.RoomType)

	// Обслуживание номера
	var service struct {
		Charge       int64    `json:"charge"`
		IgnoredItems []string `json:"ignoredItems"`
	}
	status = doJSON(t, http.MethodPost, api+"/rooms/101/room-service", map[string]interface{}{
		"items": map[string]int{"coffee": 1, "caviar": 2},
	}, &service)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(100), service.Charge)
	assert.Equal(t, []string{"caviar"}, service.IgnoredItems)

	// Список занятых
	var occupied struct {
		Rooms []struct {
			RoomNumber    int   `json:"roomNumber"`
			ServiceCharge int64 `json:"serviceCharge"`
		} `json:"rooms"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, api+"/rooms/occupied", nil, &occupied))
	require.Len(t, occupied.Rooms, 1)
	assert.Equal(t, int64(100), occupied.Rooms[0].ServiceCharge)

	// Выезд
	var receipt struct {
		Receipt struct {
			Nights     int   `json:"nights"`
			RoomCharge int64 `json:"roomCharge"`
			Total      int64 `json:"total"`
		} `json:"receipt"`
		Payment struct {
			AmountDue int64 `json:"amountDue"`
		} `json:"payment"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, api+"/rooms/101/checkout", nil, &receipt))
	assert.Equal(t, 2, receipt.Receipt.Nights)
	assert.Equal(t, int64(4000), receipt.Receipt.RoomCharge)
	assert.Equal(t, int64(4100), receipt.Receipt.Total)
	assert.Equal(t, int64(4100), receipt.Payment.AmountDue)

	// Повторный выезд
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodPost, api+"/rooms/101/checkout", nil, nil))

	// Комната вернулась в конец очереди
	var roomTypes []struct {
		RoomType       string `json:"roomType"`
		AvailableRooms []int  `json:"availableRooms"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, api+"/room-types", nil, &roomTypes))
	require.NotEmpty(t, roomTypes)
	assert.Equal(t, "standard", roomTypes[0].RoomType)
	assert.Equal(t, []int{102, 103, 101}, roomTypes[0].AvailableRooms)
}

func TestSoldOutAndUnknownType(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1"
	today := types.DateOf(time.Now()).String()

	body := func(roomType string) map[string]string {
		return map[string]string{"guestName": "Guest", "phone": "1", "roomType": roomType, "checkInDate": today}
	}

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, api+"/check-ins", body("suite"), nil))
	}
	assert.Equal(t, http.StatusConflict, doJSON(t, http.MethodPost, api+"/check-ins", body("suite"), nil))
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodPost, api+"/check-ins", body("penthouse"), nil))
}

func TestReadEndpoints(t *testing.T) {
	srv := newTestServer(t)
	api := srv.URL + "/api/v1"

	var menu []struct {
		Code string `json:"code"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, api+"/menu", nil, &menu))
	assert.Len(t, menu, 5)

	var payment struct {
		BankName string `json:"bankName"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, api+"/payment-details", nil, &payment))
	assert.Equal(t, "Kotak Mahindra Bank", payment.BankName)

	assert.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, api+"/health", nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, api+"/rooms/101", nil, nil))

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
