package update_reservation_status

// UpdateStatusRequest тело запроса на смену статуса брони админом
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
