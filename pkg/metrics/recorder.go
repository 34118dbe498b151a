package metrics

// Методы ниже безопасно вызывать на nil *Metrics, когда метрики выключены в конфиге

func (m *Metrics) ObserveCheckIn(roomType string) {
	if m == nil {
		return
	}
	m.CheckInsTotal.WithLabelValues(roomType).Inc()
	m.RoomsOccupied.WithLabelValues(roomType).Inc()
}

func (m *Metrics) ObserveCheckInRejected(reason string) {
	if m == nil {
		return
	}
	m.CheckInsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveCheckOut(roomType string, roomCharge int64) {
	if m == nil {
		return
	}
	m.CheckOutsTotal.WithLabelValues(roomType).Inc()
	m.RoomsOccupied.WithLabelValues(roomType).Dec()
	m.RoomRevenueTotal.WithLabelValues(roomType).Add(float64(roomCharge))
}

func (m *Metrics) ObserveRoomService(charge int64, ignoredItems int) {
	if m == nil {
		return
	}
	m.RoomServiceOrders.Inc()
	m.RoomServiceRevenue.Add(float64(charge))
	m.RoomServiceIgnored.Add(float64(ignoredItems))
}
