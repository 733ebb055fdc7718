package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"crisis-server/internal/config"
	"crisis-server/internal/engine"
	"crisis-server/internal/messaging"
	"crisis-server/internal/repository"
	"crisis-server/internal/service"
	"crisis-server/internal/worker"
	"crisis-server/pkg/logger"
)

const (
	// Имена для Dead Letter Exchange и Queue
	dlxName       = "scenario_seed_tasks_dlx"
	dlqName       = "scenario_seed_tasks_dlq"
	dlqRoutingKey = "dlq"
)

func main() {
	log.Println("Запуск воркера посева ежедневных сценариев...")

	// .env опционален: в контейнерах конфигурация приходит из окружения
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// --- Запуск HTTP-сервера для метрик Prometheus в отдельной горутине ---
	go startMetricsServer(cfg.MetricsPort)

	// Pushgateway опционален: без него метрики доступны только через /metrics
	if cfg.PushgatewayURL != "" {
		if err := worker.InitMetricsPusher(cfg.PushgatewayURL); err != nil {
			log.Printf("Не удалось инициализировать Pushgateway pusher: %v. Продолжаем без него.", err)
		} else {
			worker.StartMetricsPusher(15 * time.Second)
			defer worker.CleanupMetrics()
		}
	}

	zlog, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	// Инициализация AI клиента (опционально)
	var aiClient service.AIClient
	if cfg.AIEnabled {
		log.Println("Инициализация AI клиента...")
		aiClient, err = service.NewAIClient(cfg)
		if err != nil {
			log.Fatalf("Ошибка инициализации AI клиента: %v", err)
		}
	} else {
		log.Println("AI-обогащение выключено, сценарии будут собираться из шаблонов.")
	}

	// Подключаемся к PostgreSQL
	log.Println("Подключение к PostgreSQL...")
	dbPool, err := setupDatabase(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к базе данных: %v", err)
	}
	defer dbPool.Close()
	log.Println("Успешное подключение к PostgreSQL")

	// Подключаемся к Redis (кэш сценария дня)
	log.Println("Подключение к Redis...")
	redisClient, err := setupRedis(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к Redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Успешное подключение к Redis")

	// Подключаемся к RabbitMQ с логикой повторных попыток
	conn, err := connectRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Не удалось подключиться к RabbitMQ: %v", err)
	}
	defer conn.Close()
	log.Println("Успешное подключение к RabbitMQ")

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Не удалось открыть канал: %v", err)
	}
	defer ch.Close()
	log.Println("Канал успешно открыт")

	// --- Настройка Dead Letter Queue (DLQ) ---
	log.Printf("Настройка Dead Letter Exchange ('%s') и Queue ('%s')...", dlxName, dlqName)

	err = ch.ExchangeDeclare(
		dlxName,  // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		log.Fatalf("Не удалось объявить DLX: %v", err)
	}
	log.Printf("DLX '%s' успешно объявлен.", dlxName)

	_, err = ch.QueueDeclare(
		dlqName, // name
		true,    // durable
		false,   // delete when unused
		false,   // exclusive
		false,   // no-wait
		nil,     // arguments
	)
	if err != nil {
		log.Fatalf("Не удалось объявить Dead Letter Queue '%s': %v", dlqName, err)
	}
	log.Printf("DLQ '%s' успешно объявлена.", dlqName)

	// Связываем DLQ с DLX
	err = ch.QueueBind(
		dlqName,       // queue name
		dlqRoutingKey, // routing key
		dlxName,       // exchange
		false,
		nil,
	)
	if err != nil {
		log.Fatalf("Не удалось связать DLQ '%s' с DLX '%s': %v", dlqName, dlxName, err)
	}
	log.Printf("DLQ '%s' успешно связана с DLX '%s' с ключом '%s'.", dlqName, dlxName, dlqRoutingKey)

	// --- Объявляем основную очередь задач с аргументами DLX ---
	args := amqp.Table{
		"x-queue-mode":              "lazy", // Используем lazy queues для экономии памяти
		"x-dead-letter-exchange":    dlxName,
		"x-dead-letter-routing-key": dlqRoutingKey,
	}
	_, err = ch.QueueDeclare(
		cfg.SeedTaskQueue, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		args,              // arguments
	)
	if err != nil {
		log.Fatalf("Не удалось объявить очередь '%s': %v", cfg.SeedTaskQueue, err)
	}
	log.Printf("Очередь '%s' успешно объявлена.", cfg.SeedTaskQueue)

	// Устанавливаем QoS
	err = ch.Qos(1, 0, false)
	if err != nil {
		log.Fatalf("Не удалось установить QoS: %v", err)
	}
	log.Println("QoS (prefetch count=1) установлен")

	// Инициализация зависимостей воркера
	log.Println("Инициализация репозиториев, сервиса и нотификатора...")
	scenarioRepo := repository.NewPgScenarioRepository(dbPool, zlog)
	progressRepo := repository.NewPgProgressRepository(dbPool, zlog)
	dailyCache := repository.NewRedisDailyCache(redisClient, zlog)

	scenarioService := service.NewScenarioService(cfg, engine.DefaultCatalog(), aiClient,
		scenarioRepo, progressRepo, dailyCache, zlog)

	notifier, err := service.NewRabbitMQNotifier(ch, cfg)
	if err != nil {
		log.Fatalf("Не удалось создать notifier: %v", err)
	}

	taskHandler := worker.NewTaskHandler(scenarioService, notifier)

	// Начинаем потреблять сообщения из очереди
	msgs, err := ch.Consume(
		cfg.SeedTaskQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("Не удалось зарегистрировать консьюмера: %v", err)
	}

	// Канал для graceful shutdown
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, syscall.SIGINT, syscall.SIGTERM)

	// Канал для синхронизации завершения горутины обработки сообщений
	done := make(chan struct{})

	log.Println(" [*] Ожидание задач посева. Для выхода нажмите CTRL+C")

	go func() {
		defer close(done)
		for msg := range msgs {
			var payload messaging.SeedTaskPayload
			err := json.Unmarshal(msg.Body, &payload)
			if err != nil {
				log.Printf("Ошибка десериализации JSON: %v. Отклоняем сообщение (nack, no requeue).", err)
				worker.IncrementTaskFailed("deserialization")
				msg.Nack(false, false)
				continue
			}

			err = taskHandler.Handle(payload)
			if err != nil {
				// Requeue=false, чтобы избежать бесконечных циклов для 'плохих' задач.
				// Сообщение уйдет в Dead Letter Queue.
				log.Printf("[TaskID: %s] Ошибка обработки задачи: %v. Отклоняем сообщение (nack, no requeue).", payload.TaskID, err)
				msg.Nack(false, false)
			} else {
				log.Printf("[TaskID: %s] Задача посева выполнена, уведомление отправлено. Подтверждаем сообщение (ack).", payload.TaskID)
				msg.Ack(false)
			}
		}
		log.Println("Канал сообщений закрыт, горутина обработки завершается.")
	}()

	<-stopChan
	log.Println("Получен сигнал завершения. Закрываем канал и дожидаемся текущих задач...")

	// Закрытие канала останавливает доставку сообщений, горутина дочитает остаток
	if err := ch.Close(); err != nil {
		log.Printf("Ошибка закрытия канала RabbitMQ: %v", err)
	}
	<-done

	log.Println("Воркер посева сценариев остановлен.")
}

// startMetricsServer запускает HTTP-сервер для эндпоинта /metrics и /health
func startMetricsServer(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	log.Printf("Запуск HTTP-сервера для метрик Prometheus и health на :%s...", port)
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Fatalf("Ошибка запуска HTTP-сервера для метрик: %v", err)
	}
}

// setupDatabase инициализирует и возвращает пул соединений с БД
func setupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	var dbPool *pgxpool.Pool
	var err error
	maxRetries := 50
	retryDelay := 3 * time.Second

	poolConfig, parseErr := pgxpool.ParseConfig(cfg.GetDSN())
	if parseErr != nil {
		return nil, fmt.Errorf("ошибка парсинга DSN: %w", parseErr)
	}
	poolConfig.MaxConns = int32(cfg.DBMaxConns)
	poolConfig.MaxConnIdleTime = cfg.DBIdleTimeout

	log.Printf("Попытка подключения к PostgreSQL (до %d раз с интервалом %v)...", maxRetries, retryDelay)

	for i := 0; i < maxRetries; i++ {
		attempt := i + 1

		// Таймаут на одну попытку подключения и пинга
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		dbPool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Printf("[Попытка %d/%d] Не удалось создать пул соединений: %v", attempt, maxRetries, err)
			cancel()
			if i < maxRetries-1 {
				time.Sleep(retryDelay)
			}
			continue
		}

		if err = dbPool.Ping(ctx); err != nil {
			log.Printf("[Попытка %d/%d] Не удалось выполнить ping к PostgreSQL: %v", attempt, maxRetries, err)
			dbPool.Close()
			cancel()
			if i < maxRetries-1 {
				time.Sleep(retryDelay)
			}
			continue
		}

		cancel()
		log.Printf("Успешное подключение и ping к PostgreSQL (попытка %d)", attempt)
		return dbPool, nil
	}

	return nil, fmt.Errorf("не удалось подключиться к БД после %d попыток: %w", maxRetries, err)
}

// setupRedis инициализирует клиент Redis с логикой повторных попыток
func setupRedis(cfg *config.Config) (*redis.Client, error) {
	var client *redis.Client
	var err error
	maxRetries := 50
	retryDelay := 3 * time.Second

	for i := 0; i < maxRetries; i++ {
		attempt := i + 1
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err = client.Ping(ctx).Result()
		cancel()

		if err == nil {
			log.Printf("Успешное подключение и ping к Redis (попытка %d)", attempt)
			return client, nil
		}

		client.Close()
		log.Printf("[Попытка %d/%d] Не удалось выполнить ping к Redis: %v", attempt, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, fmt.Errorf("не удалось подключиться к Redis после %d попыток: %w", maxRetries, err)
}

// connectRabbitMQ пытается подключиться к RabbitMQ с несколькими попытками
func connectRabbitMQ(url string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	maxRetries := 50
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		log.Printf("Не удалось подключиться к RabbitMQ (попытка %d/%d): %v. Повтор через %v...", i+1, maxRetries, err, retryDelay)
		time.Sleep(retryDelay)
	}
	return nil, err
}
