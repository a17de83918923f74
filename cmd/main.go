package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/create_appointment"
	createClinicHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/create_clinic"
	deleteDoctorHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/delete_doctor"
	deletePatientHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/delete_patient"
	getAvailableTimesHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_available_times"
	getClinicHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/get_clinic"
	listAppointmentsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_appointments"
	listDoctorsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_doctors"
	listPatientsHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/list_patients"
	upsertAppointmentHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/upsert_appointment"
	upsertDoctorHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/upsert_doctor"
	upsertPatientHandler "github.com/m04kA/SMC-ClinicService/internal/api/handlers/upsert_patient"
	"github.com/m04kA/SMC-ClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/appointment"
	clinicRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/clinic"
	doctorRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/doctor"
	patientRepo "github.com/m04kA/SMC-ClinicService/internal/infra/storage/patient"
	appointmentsService "github.com/m04kA/SMC-ClinicService/internal/service/appointments"
	clinicsService "github.com/m04kA/SMC-ClinicService/internal/service/clinics"
	doctorsService "github.com/m04kA/SMC-ClinicService/internal/service/doctors"
	patientsService "github.com/m04kA/SMC-ClinicService/internal/service/patients"
	createAppointmentUC "github.com/m04kA/SMC-ClinicService/internal/usecase/create_appointment"
	getAvailableTimesUC "github.com/m04kA/SMC-ClinicService/internal/usecase/get_available_times"
	"github.com/m04kA/SMC-ClinicService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicService/pkg/logger"
	"github.com/m04kA/SMC-ClinicService/pkg/metrics"
	"github.com/m04kA/SMC-ClinicService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ClinicService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ClinicService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		doctorRepository      *doctorRepo.Repository
		patientRepository     *patientRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		clinicRepository      *clinicRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		doctorRepository = doctorRepo.NewRepository(wrappedDB)
		patientRepository = patientRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clinicRepository = clinicRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		doctorRepository = doctorRepo.NewRepository(db)
		patientRepository = patientRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		clinicRepository = clinicRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	doctorSvc := doctorsService.NewService(doctorRepository, log)
	patientSvc := patientsService.NewService(patientRepository, log)
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		log,
	)
	clinicSvc := clinicsService.NewService(clinicRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		doctorRepository,
		appointmentRepository,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		patientRepository,
		getAvailableTimesUseCase,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	upsertAppointment := upsertAppointmentHandler.NewHandler(appointmentSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	upsertDoctor := upsertDoctorHandler.NewHandler(doctorSvc, log)
	listDoctors := listDoctorsHandler.NewHandler(doctorSvc, log)
	deleteDoctor := deleteDoctorHandler.NewHandler(doctorSvc, log)
	upsertPatient := upsertPatientHandler.NewHandler(patientSvc, log)
	listPatients := listPatientsHandler.NewHandler(patientSvc, log)
	deletePatient := deletePatientHandler.NewHandler(patientSvc, log)
	createClinic := createClinicHandler.NewHandler(clinicSvc, log)
	getClinic := getClinicHandler.NewHandler(clinicSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Создание клиники (контекст клиники ещё не существует)
	protected.HandleFunc("/clinics", createClinic.Handle).Methods(http.MethodPost)

	// ============================================================
	// CLINIC ROUTES (дополнительно требуют X-Clinic-ID header)
	// ============================================================

	clinicScoped := protected.PathPrefix("").Subrouter()
	clinicScoped.Use(middleware.RequireClinic(log))

	// Текущая клиника
	clinicScoped.HandleFunc("/clinic", getClinic.Handle).Methods(http.MethodGet)

	// --- Врачи ---
	clinicScoped.HandleFunc("/doctors", upsertDoctor.Handle).Methods(http.MethodPost)
	clinicScoped.HandleFunc("/doctors", listDoctors.Handle).Methods(http.MethodGet)
	clinicScoped.HandleFunc("/doctors/{doctorId}", deleteDoctor.Handle).Methods(http.MethodDelete)

	// Доступные слоты врача на дату
	clinicScoped.HandleFunc("/doctors/{doctorId}/available-times",
		getAvailableTimes.Handle).Methods(http.MethodGet)

	// --- Пациенты ---
	clinicScoped.HandleFunc("/patients", upsertPatient.Handle).Methods(http.MethodPost)
	clinicScoped.HandleFunc("/patients", listPatients.Handle).Methods(http.MethodGet)
	clinicScoped.HandleFunc("/patients/{patientId}", deletePatient.Handle).Methods(http.MethodDelete)

	// --- Записи на приём ---
	// Создание с проверкой доступности слота
	clinicScoped.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Легаси-вариант без проверки доступности
	clinicScoped.HandleFunc("/appointments", upsertAppointment.Handle).Methods(http.MethodPut)

	// Список записей клиники
	clinicScoped.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
