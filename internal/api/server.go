package api

import (
	"fmt"
	"net/http"

	"kassa/internal/config"
	"kassa/internal/handlers"
	"kassa/internal/metrics"
	"kassa/internal/middleware"
	"kassa/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server представляет HTTP сервер API
type Server struct {
	router  *gin.Engine
	config  *config.Config
	system  *service.CinemaSystem
	metrics *metrics.Metrics
}

// NewServer создает новый экземпляр сервера
func NewServer(cfg *config.Config) *Server {
	// Устанавливаем режим Gin
	gin.SetMode(cfg.GinMode)

	// Создаем систему кинотеатра с посевными каталогами
	system := service.NewCinemaSystem(cfg.Cinema)

	// Регистрируем метрики
	m := metrics.New()

	// Создаем роутер
	router := gin.New()

	// Применяем middleware
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Prometheus(m))

	// Создаем сервер
	server := &Server{
		router:  router,
		config:  cfg,
		system:  system,
		metrics: m,
	}

	// Настраиваем роуты
	server.setupRoutes()

	return server
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.system, s.metrics)

	// API routes
	api := s.router.Group("/api")
	{
		// Screenings endpoints
		screenings := api.Group("/screenings")
		{
			screenings.GET("", h.ListScreenings)
			screenings.GET("/:code/analytics", h.ScreeningAnalytics)
			screenings.POST("/:code/sell", h.SellScreeningSeats)
		}

		// Tickets endpoints
		tickets := api.Group("/tickets")
		{
			tickets.GET("", h.ListTickets)
			tickets.POST("/general", h.SellGeneralTicket)
			tickets.POST("/child", h.SellChildTicket)
			tickets.POST("/student", h.SellStudentTicket)
			tickets.POST("/combo", h.SellComboTicket)
		}

		// Seats endpoints
		seats := api.Group("/seats")
		{
			seats.POST("/reserve", h.ReserveSeat)
		}

		// Concessions endpoints
		concessions := api.Group("/concessions")
		{
			concessions.GET("", h.ListConcessions)
			concessions.POST("/sell", h.SellConcession)
		}

		// Revenue endpoint
		api.GET("/revenue", h.RevenueReport)
	}

	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Prometheus metrics endpoint
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// healthCheck обрабатывает health check запросы
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "kassa-api",
		"version": "1.0.0",
	})
}

// Run запускает HTTP сервер
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
