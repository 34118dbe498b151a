package models

import (
	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Response модели

// OccupiedRoomResponse строка списка занятых номеров
type OccupiedRoomResponse struct {
	RoomNumber    int    `json:"roomNumber"`
	GuestName     string `json:"guestName"`
	GuestID       string `json:"guestId"`
	Phone         string `json:"phone"`
	RoomType      string `json:"roomType"`
	CheckInDate   string `json:"checkInDate"` // "2025-10-15"
	ServiceCharge int64  `json:"serviceCharge"`
}

// OccupiedRoomListResponse ответ со списком занятых номеров
type OccupiedRoomListResponse struct {
	Rooms []OccupiedRoomResponse `json:"rooms"`
}

// RoomTypeResponse состояние пула одного типа номеров
type RoomTypeResponse struct {
	RoomType       string `json:"roomType"`
	NightlyRate    int64  `json:"nightlyRate"`
	AvailableCount int    `json:"availableCount"`
	OccupiedCount  int    `json:"occupiedCount"`
	TotalRooms     int    `json:"totalRooms"`
	SoldOut        bool   `json:"soldOut"`
	AvailableRooms []int  `json:"availableRooms"`
}

// MenuItemResponse позиция меню
type MenuItemResponse struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
}

// PaymentDetailsResponse реквизиты для оплаты
type PaymentDetailsResponse struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	RoutingCode   string `json:"routingCode"`
	AccountHolder string `json:"accountHolder"`
}

// Методы конвертации

// FromDomainOccupancy конвертирует domain модель в DTO
func FromDomainOccupancy(o *domain.Occupancy) *OccupiedRoomResponse {
	if o == nil {
		return nil
	}

	return &OccupiedRoomResponse{
		RoomNumber:    o.RoomNumber,
		GuestName:     o.Guest.Name,
		GuestID:       o.Guest.GuestID,
		Phone:         o.Guest.Phone,
		RoomType:      o.RoomType.String(),
		CheckInDate:   o.CheckInDate.String(),
		ServiceCharge: o.ServiceCharge,
	}
}

// FromDomainOccupancyList конвертирует список domain моделей в DTO
func FromDomainOccupancyList(list []*domain.Occupancy) *OccupiedRoomListResponse {
	resp := &OccupiedRoomListResponse{
		Rooms: make([]OccupiedRoomResponse, 0, len(list)),
	}

	for _, o := range list {
		if r := FromDomainOccupancy(o); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}

	return resp
}

// FromDomainAvailability конвертирует снимок пула в DTO
func FromDomainAvailability(a domain.RoomTypeAvailability) RoomTypeResponse {
	rooms := a.AvailableRooms
	if rooms == nil {
		rooms = []int{}
	}
	return RoomTypeResponse{
		RoomType:       a.Type.String(),
		NightlyRate:    a.NightlyRate,
		AvailableCount: a.AvailableCount(),
		OccupiedCount:  a.OccupiedCount,
		TotalRooms:     a.TotalRooms(),
		SoldOut:        a.IsSoldOut(),
		AvailableRooms: rooms,
	}
}

// FromDomainMenuItem конвертирует позицию меню в DTO
func FromDomainMenuItem(item domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		Code:      item.Code,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
	}
}

// FromDomainPaymentDetails конвертирует реквизиты в DTO
func FromDomainPaymentDetails(p domain.PaymentDetails) PaymentDetailsResponse {
	return PaymentDetailsResponse{
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		RoutingCode:   p.RoutingCode,
		AccountHolder: p.AccountHolder,
	}
}
