package models

// ListScreeningsResponseItem - элемент афиши
type ListScreeningsResponseItem struct {
	Code           string  `json:"code"`
	Title          string  `json:"title"`
	DurationMin    int     `json:"duration_min"`
	Showtime       string  `json:"showtime"`
	Room           int     `json:"room"`
	TicketPrice    float64 `json:"ticket_price"`
	AgeRestriction string  `json:"age_restriction"`
	SeatsSold      int     `json:"seats_sold"`
}

// ListScreeningsResponse - афиша целиком
type ListScreeningsResponse []ListScreeningsResponseItem

// ScreeningAnalyticsResponse - статистика продаж одного сеанса
type ScreeningAnalyticsResponse struct {
	Code      string  `json:"code"`
	Title     string  `json:"title"`
	SeatsSold int     `json:"seats_sold"`
	Capacity  int     `json:"capacity"`
	Occupancy float64 `json:"occupancy_pct"`
	Revenue   float64 `json:"revenue"`
}

// SellScreeningSeatsRequest - модель продажи мест на сеанс
type SellScreeningSeatsRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// ListConcessionsResponseItem - позиция меню кондитерской
type ListConcessionsResponseItem struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
	Summary   string  `json:"summary"`
}

// ListConcessionsResponse - меню целиком
type ListConcessionsResponse []ListConcessionsResponseItem

// SellConcessionRequest - модель продажи товара кондитерской
type SellConcessionRequest struct {
	Code     string `json:"code" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// SellConcessionResponse - результат продажи товара
type SellConcessionResponse struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// ReserveSeatRequest - модель резервирования места в зале
type ReserveSeatRequest struct {
	Room int  `json:"room" binding:"required"`
	Row  *int `json:"row" binding:"required"`
	Col  *int `json:"col" binding:"required"`
}

// SellGeneralTicketRequest - модель продажи обычного билета
type SellGeneralTicketRequest struct {
	ScreeningCode string `json:"screening_code" binding:"required"`
	Seat          string `json:"seat" binding:"required"`
	DayOfWeek     string `json:"day_of_week" binding:"required"`
	Hour          int    `json:"hour" binding:"min=0,max=23"`
}

// SellChildTicketRequest - модель продажи детского билета
type SellChildTicketRequest struct {
	ScreeningCode string `json:"screening_code" binding:"required"`
	Seat          string `json:"seat" binding:"required"`
	Age           int    `json:"age" binding:"min=0"`
	WithAdult     bool   `json:"with_adult"`
}

// SellStudentTicketRequest - модель продажи студенческого билета
type SellStudentTicketRequest struct {
	ScreeningCode string `json:"screening_code" binding:"required"`
	Seat          string `json:"seat" binding:"required"`
	CardID        string `json:"card_id"`
	SpecialHour   bool   `json:"special_hour"`
}

// SellComboTicketRequest - модель продажи комбо-билета
type SellComboTicketRequest struct {
	ScreeningCode string   `json:"screening_code" binding:"required"`
	Seat          string   `json:"seat" binding:"required"`
	DayOfWeek     string   `json:"day_of_week" binding:"required"`
	Hour          int      `json:"hour" binding:"min=0,max=23"`
	Snacks        []string `json:"snacks"`
	Drink         string   `json:"drink"`
}

// TicketResponse - проданный билет
type TicketResponse struct {
	Number     int      `json:"number"`
	Screening  string   `json:"screening"`
	Seat       string   `json:"seat"`
	Snacks     []string `json:"snacks,omitempty"`
	FinalPrice float64  `json:"final_price"`
	Receipt    string   `json:"receipt"`
}

// ListTicketsResponse - журнал продаж
type ListTicketsResponse []TicketResponse

// RevenueReportResponse - отчет по выручке
type RevenueReportResponse struct {
	BoxOffice  float64 `json:"box_office"`
	Concession float64 `json:"concession"`
	Total      float64 `json:"total"`
}
