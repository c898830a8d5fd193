package service

import (
	"fmt"
	"sync"

	"kassa/internal/domain/auditorium"
	"kassa/internal/domain/concession"
	"kassa/internal/domain/screening"
	"kassa/internal/domain/ticket"
	"kassa/internal/errors"
)

// CinemaSystem держит все каталоги кинотеатра и кассовые счётчики.
// Каталоги создаются один раз при старте, продажи только добавляются.
type CinemaSystem struct {
	mu sync.Mutex

	auditoriums []auditorium.Auditorium
	billboard   []screening.Screening
	menu        []concession.Item

	ticketsSold []ticket.Ticket
	nextTicket  int

	boxOfficeRevenue  float64
	concessionRevenue float64

	baseTicketPrice float64
	comboBasePrice  float64
}

// Config задаёт продажные константы системы.
type Config struct {
	// BaseTicketPrice is the hard-coded base price used for every
	// ticket sale. It is deliberately not derived from the matched
	// screening's per-seat price.
	BaseTicketPrice float64
	// ComboBasePrice is the combo's own base price added on top of
	// the wrapped ticket before the combo discount.
	ComboBasePrice float64
}

// NewCinemaSystem создает систему с посевными каталогами.
func NewCinemaSystem(cfg Config) *CinemaSystem {
	if cfg.BaseTicketPrice <= 0 {
		cfg.BaseTicketPrice = 100
	}
	if cfg.ComboBasePrice <= 0 {
		cfg.ComboBasePrice = 20
	}
	return &CinemaSystem{
		auditoriums:     seedAuditoriums(),
		billboard:       seedBillboard(),
		menu:            seedMenu(),
		baseTicketPrice: cfg.BaseTicketPrice,
		comboBasePrice:  cfg.ComboBasePrice,
	}
}

func seedAuditoriums() []auditorium.Auditorium {
	return []auditorium.Auditorium{
		auditorium.NewStandard2D(1, 100),
		auditorium.NewStandard2D(2, 100),
		auditorium.NewThreeD(3, 64, 0),
		auditorium.NewThreeD(4, 64, 4),
		auditorium.NewIMAX(5, 81, 0),
		auditorium.NewIMAX(6, 81, 6),
		auditorium.NewVIP(7, 36),
		auditorium.NewStandard2D(8, 36),
	}
}

func seedBillboard() []screening.Screening {
	return []screening.Screening{
		screening.NewPremiere("A01", "Avengers", 140, "18:00", 1, 69, "Spanish", "4K"),
		screening.NewPremiere("A02", "Dune 2", 155, "20:00", 1, 69, "English", "3D"),
		screening.NewClassic("B01", "The Godfather", 175, "16:00", 2, 1972, true, 6),
		screening.NewClassic("B02", "Casablanca", 102, "14:00", 2, 1942, false, 0),
		screening.NewDocumentary("C01", "Planet Earth", 90, "10:00", 3, "Nature", false, true),
		screening.NewDocumentary("C02", "Cosmos", 95, "12:00", 3, "Space", true, true),
		screening.NewSpecialEvent("D01", "Concert", 110, "22:00", 4, "Music", false, 20),
		screening.NewSpecialEvent("D02", "Awards Night", 130, "19:00", 4, "Cinema", true, 20),
	}
}

func seedMenu() []concession.Item {
	popS := concession.NewPopcorn("P01", "Popcorn S", 8000, 20, "S", true, true)
	popM := concession.NewPopcorn("P02", "Popcorn M", 10000, 20, "M", true, true)
	popL := concession.NewPopcorn("P03", "Popcorn L", 12000, 20, "L", true, true)

	soda := concession.NewDrink("B01", "Soda 500ml", 6000, 30, "Coca-Cola", true, true)
	water := concession.NewDrink("B02", "Water 600ml", 4000, 30, "Brisa", false, false)

	choc := concession.NewCandy("D01", "Chocolate Jet", 3000, 50, "bar", 30, false)
	nordic := concession.NewCandy("D02", "Nordic Chocolate", 8000, 10, "bar", 50, true)

	combo := concession.NewCombo("C01", "Popcorn + Soda Combo", 10, []concession.Item{popM, soda}, 0.15)

	return []concession.Item{popS, popM, popL, soda, water, choc, nordic, combo}
}

// Billboard возвращает афишу.
func (s *CinemaSystem) Billboard() []screening.Screening {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]screening.Screening, len(s.billboard))
	copy(out, s.billboard)
	return out
}

// Menu возвращает меню кондитерской.
func (s *CinemaSystem) Menu() []concession.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]concession.Item, len(s.menu))
	copy(out, s.menu)
	return out
}

// TicketsSold возвращает журнал проданных билетов.
func (s *CinemaSystem) TicketsSold() []ticket.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ticket.Ticket, len(s.ticketsSold))
	copy(out, s.ticketsSold)
	return out
}

// ReserveSeat резервирует место в зале по номеру зала.
func (s *CinemaSystem) ReserveSeat(roomNumber, row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := s.findAuditorium(roomNumber)
	if room == nil {
		return fmt.Errorf("room %d: %w", roomNumber, errors.ErrRoomNotFound)
	}
	return room.ReserveSeat(row, col)
}

// SellGeneralTicket продает обычный билет на сеанс.
func (s *CinemaSystem) SellGeneralTicket(code, seat, dayOfWeek string, hour int) (ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findScreening(code) == nil {
		return nil, fmt.Errorf("screening %s: %w", code, errors.ErrScreeningNotFound)
	}
	t := ticket.NewGeneral(s.nextTicketNumber(), code, seat, s.baseTicketPrice, dayOfWeek, hour)
	return s.registerSale(t)
}

// SellChildTicket продает детский билет с проверкой возраста.
func (s *CinemaSystem) SellChildTicket(code, seat string, age int, withAdult bool) (ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findScreening(code) == nil {
		return nil, fmt.Errorf("screening %s: %w", code, errors.ErrScreeningNotFound)
	}
	t := ticket.NewChild(s.nextTicketNumber(), code, seat, s.baseTicketPrice, age, withAdult)
	return s.registerSale(t)
}

// SellStudentTicket продает студенческий билет по карте.
func (s *CinemaSystem) SellStudentTicket(code, seat, cardID string, specialHour bool) (ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findScreening(code) == nil {
		return nil, fmt.Errorf("screening %s: %w", code, errors.ErrScreeningNotFound)
	}
	t := ticket.NewStudent(s.nextTicketNumber(), code, seat, s.baseTicketPrice, cardID, specialHour)
	return s.registerSale(t)
}

// SellComboTicket продает комбо: обычный билет + снеки + напиток.
func (s *CinemaSystem) SellComboTicket(code, seat, dayOfWeek string, hour int, snacks []string, drink string) (ticket.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findScreening(code) == nil {
		return nil, fmt.Errorf("screening %s: %w", code, errors.ErrScreeningNotFound)
	}
	number := s.nextTicketNumber()
	inner := ticket.NewGeneral(number, code, seat, s.baseTicketPrice, dayOfWeek, hour)
	t := ticket.NewComboPromo(number, code, seat, s.comboBasePrice, inner, snacks, drink)
	return s.registerSale(t)
}

// registerSale gates on eligibility, appends to the ledger and folds
// the final price into box-office revenue. On ineligibility nothing is
// mutated; the reserved ticket number is reused by the next sale.
// Caller holds s.mu.
func (s *CinemaSystem) registerSale(t ticket.Ticket) (ticket.Ticket, error) {
	if !t.Eligible() {
		return nil, errors.ErrIneligibleTicket
	}
	s.ticketsSold = append(s.ticketsSold, t)
	s.nextTicket++
	s.boxOfficeRevenue += t.FinalPrice()
	return t, nil
}

// nextTicketNumber возвращает номер для следующего билета.
// Caller holds s.mu.
func (s *CinemaSystem) nextTicketNumber() int {
	return s.nextTicket + 1
}

// SellConcession продает товар кондитерской и списывает остаток.
func (s *CinemaSystem) SellConcession(code string, quantity int) (concession.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(code)
	if item == nil {
		return nil, fmt.Errorf("product %s: %w", code, errors.ErrProductNotFound)
	}
	if err := item.DeductStock(quantity); err != nil {
		return nil, fmt.Errorf("product %s: %w", code, err)
	}
	s.concessionRevenue += float64(quantity) * item.UnitPrice()
	return item, nil
}

// SellScreeningSeats проводит продажу quantity мест на сеанс и
// накапливает выручку сеанса по его собственной цене.
func (s *CinemaSystem) SellScreeningSeats(code string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.findScreening(code)
	if sc == nil {
		return fmt.Errorf("screening %s: %w", code, errors.ErrScreeningNotFound)
	}
	return sc.Sell(quantity)
}

// RevenueReport holds the running revenue totals.
type RevenueReport struct {
	BoxOffice  float64
	Concession float64
	Total      float64
}

// Revenue возвращает отчет по выручке. Total is the exact sum of the
// two running counters.
func (s *CinemaSystem) Revenue() RevenueReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return RevenueReport{
		BoxOffice:  s.boxOfficeRevenue,
		Concession: s.concessionRevenue,
		Total:      s.boxOfficeRevenue + s.concessionRevenue,
	}
}

// ScreeningAnalytics собирает статистику продаж одного сеанса.
type ScreeningAnalytics struct {
	Code      string
	Title     string
	SeatsSold int
	Capacity  int
	Occupancy float64
	Revenue   float64
}

func (s *CinemaSystem) Analytics(code string) (ScreeningAnalytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc := s.findScreening(code)
	if sc == nil {
		return ScreeningAnalytics{}, fmt.Errorf("screening %s: %w", code, errors.ErrScreeningNotFound)
	}
	return ScreeningAnalytics{
		Code:      sc.Code(),
		Title:     sc.Title(),
		SeatsSold: sc.SeatsSold(),
		Capacity:  screening.Capacity,
		Occupancy: sc.Occupancy(),
		Revenue:   sc.Revenue(),
	}, nil
}

// lookup helpers. Callers hold s.mu.

func (s *CinemaSystem) findAuditorium(number int) auditorium.Auditorium {
	for _, a := range s.auditoriums {
		if a.Number() == number {
			return a
		}
	}
	return nil
}

func (s *CinemaSystem) findScreening(code string) screening.Screening {
	for _, sc := range s.billboard {
		if sc.Code() == code {
			return sc
		}
	}
	return nil
}

func (s *CinemaSystem) findItem(code string) concession.Item {
	for _, it := range s.menu {
		if it.Code() == code {
			return it
		}
	}
	return nil
}
