package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"kassa/internal/domain/auditorium"
	"kassa/internal/domain/concession"
	"kassa/internal/domain/screening"
	"kassa/internal/domain/ticket"
	"kassa/internal/errors"
	"kassa/internal/metrics"
	"kassa/internal/models"
	"kassa/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	system  *service.CinemaSystem
	metrics *metrics.Metrics
}

func NewHandlers(system *service.CinemaSystem, m *metrics.Metrics) *Handlers {
	return &Handlers{
		system:  system,
		metrics: m,
	}
}

// ListScreenings - GET /api/screenings
// Получить афишу
func (h *Handlers) ListScreenings(c *gin.Context) {
	billboard := h.system.Billboard()

	response := make(models.ListScreeningsResponse, 0, len(billboard))
	for _, sc := range billboard {
		response = append(response, models.ListScreeningsResponseItem{
			Code:           sc.Code(),
			Title:          sc.Title(),
			DurationMin:    sc.DurationMin(),
			Showtime:       sc.Showtime(),
			Room:           sc.Room(),
			TicketPrice:    sc.TicketPrice(),
			AgeRestriction: sc.AgeRestriction(),
			SeatsSold:      sc.SeatsSold(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// ScreeningAnalytics - GET /api/screenings/:code/analytics
// Статистика продаж одного сеанса
func (h *Handlers) ScreeningAnalytics(c *gin.Context) {
	code := c.Param("code")

	a, err := h.system.Analytics(code)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ScreeningAnalyticsResponse{
		Code:      a.Code,
		Title:     a.Title,
		SeatsSold: a.SeatsSold,
		Capacity:  a.Capacity,
		Occupancy: a.Occupancy,
		Revenue:   a.Revenue,
	})
}

// SellScreeningSeats - POST /api/screenings/:code/sell
// Продать места на сеанс по его собственной цене
func (h *Handlers) SellScreeningSeats(c *gin.Context) {
	code := c.Param("code")

	var req models.SellScreeningSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.system.SellScreeningSeats(code, req.Quantity); err != nil {
		slog.Error("Failed to sell screening seats", "code", code, "quantity", req.Quantity, "error", err)
		h.renderError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ListConcessions - GET /api/concessions
// Получить меню кондитерской
func (h *Handlers) ListConcessions(c *gin.Context) {
	menu := h.system.Menu()

	response := make(models.ListConcessionsResponse, 0, len(menu))
	for _, it := range menu {
		response = append(response, models.ListConcessionsResponseItem{
			Code:      it.Code(),
			Name:      it.Name(),
			UnitPrice: it.UnitPrice(),
			Stock:     it.Stock(),
			Summary:   it.Describe(),
		})
	}

	c.JSON(http.StatusOK, response)
}

// SellConcession - POST /api/concessions/sell
// Продать товар кондитерской
func (h *Handlers) SellConcession(c *gin.Context) {
	var req models.SellConcessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.system.SellConcession(req.Code, req.Quantity)
	if err != nil {
		slog.Error("Failed to sell concession", "code", req.Code, "quantity", req.Quantity, "error", err)
		h.renderError(c, err)
		return
	}

	h.metrics.ConcessionSalesTotal.Inc()

	c.JSON(http.StatusOK, models.SellConcessionResponse{
		Code:      item.Code(),
		Name:      item.Name(),
		Quantity:  req.Quantity,
		UnitPrice: item.UnitPrice(),
		Total:     float64(req.Quantity) * item.UnitPrice(),
	})
}

// ReserveSeat - POST /api/seats/reserve
// Зарезервировать место в зале
func (h *Handlers) ReserveSeat(c *gin.Context) {
	var req models.ReserveSeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.system.ReserveSeat(req.Room, *req.Row, *req.Col); err != nil {
		slog.Error("Failed to reserve seat", "room", req.Room, "row", *req.Row, "col", *req.Col, "error", err)
		h.metrics.SeatsReservedTotal.WithLabelValues("failed").Inc()
		h.renderError(c, err)
		return
	}

	h.metrics.SeatsReservedTotal.WithLabelValues("reserved").Inc()
	c.Status(http.StatusOK)
}

// SellGeneralTicket - POST /api/tickets/general
// Продать обычный билет
func (h *Handlers) SellGeneralTicket(c *gin.Context) {
	var req models.SellGeneralTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.system.SellGeneralTicket(req.ScreeningCode, req.Seat, req.DayOfWeek, req.Hour)
	h.respondTicket(c, "general", t, err)
}

// SellChildTicket - POST /api/tickets/child
// Продать детский билет
func (h *Handlers) SellChildTicket(c *gin.Context) {
	var req models.SellChildTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.system.SellChildTicket(req.ScreeningCode, req.Seat, req.Age, req.WithAdult)
	h.respondTicket(c, "child", t, err)
}

// SellStudentTicket - POST /api/tickets/student
// Продать студенческий билет
func (h *Handlers) SellStudentTicket(c *gin.Context) {
	var req models.SellStudentTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.system.SellStudentTicket(req.ScreeningCode, req.Seat, req.CardID, req.SpecialHour)
	h.respondTicket(c, "student", t, err)
}

// SellComboTicket - POST /api/tickets/combo
// Продать комбо-билет
func (h *Handlers) SellComboTicket(c *gin.Context) {
	var req models.SellComboTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := h.system.SellComboTicket(req.ScreeningCode, req.Seat, req.DayOfWeek, req.Hour, req.Snacks, req.Drink)
	h.respondTicket(c, "combo", t, err)
}

// ListTickets - GET /api/tickets
// Журнал проданных билетов
func (h *Handlers) ListTickets(c *gin.Context) {
	sold := h.system.TicketsSold()

	response := make(models.ListTicketsResponse, 0, len(sold))
	for _, t := range sold {
		response = append(response, ticketResponse(t))
	}

	c.JSON(http.StatusOK, response)
}

// RevenueReport - GET /api/revenue
// Отчет по выручке
func (h *Handlers) RevenueReport(c *gin.Context) {
	report := h.system.Revenue()

	c.JSON(http.StatusOK, models.RevenueReportResponse{
		BoxOffice:  report.BoxOffice,
		Concession: report.Concession,
		Total:      report.Total,
	})
}

func (h *Handlers) respondTicket(c *gin.Context, ticketType string, t ticket.Ticket, err error) {
	if err != nil {
		slog.Error("Failed to sell ticket", "type", ticketType, "error", err)
		h.renderError(c, err)
		return
	}

	h.metrics.TicketsSoldTotal.WithLabelValues(ticketType).Inc()
	c.JSON(http.StatusCreated, ticketResponse(t))
}

func ticketResponse(t ticket.Ticket) models.TicketResponse {
	return models.TicketResponse{
		Number:     t.Number(),
		Screening:  t.Screening(),
		Seat:       t.Seat(),
		Snacks:     t.Snacks(),
		FinalPrice: t.FinalPrice(),
		Receipt:    t.Receipt(),
	}
}

// renderError переводит ошибки ядра в HTTP статусы.
func (h *Handlers) renderError(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrScreeningNotFound),
		stderrors.Is(err, errors.ErrRoomNotFound),
		stderrors.Is(err, errors.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case stderrors.Is(err, screening.ErrCapacityExceeded),
		stderrors.Is(err, concession.ErrInsufficientStock),
		stderrors.Is(err, auditorium.ErrSeatOccupied):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case stderrors.Is(err, auditorium.ErrSeatOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case stderrors.Is(err, errors.ErrIneligibleTicket):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
