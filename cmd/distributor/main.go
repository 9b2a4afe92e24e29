package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/repository"
	"voicedesk.io/accounting/utils"

	_ "github.com/go-sql-driver/mysql"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

var rdb *redis.Client

func main() {
	// 1. INITIALIZE REDIS
	redisURL := os.Getenv("REDIS_URL")
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("Critical: Failed to parse REDIS_URL: %v", err)
	}
	rdb = redis.NewClient(opt)

	// Test Redis Connection
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Critical: Could not connect to Redis: %v", err)
	}

	// 2. SETUP SCHEDULER
	c := cron.New()

	// PRODUCTION: Hourly usage snapshots
	_, _ = c.AddFunc("0 * * * *", func() {
		log.Println("[PROD] Triggering hourly usage snapshots...")
		runUsageDistributor("hourly")
	})

	// DEBUG: Every Minute (only if DISTRIBUTOR_DEBUG is set to 1)
	if os.Getenv("DISTRIBUTOR_DEBUG") == "1" {
		_, _ = c.AddFunc("* * * * *", func() {
			log.Println("[DEBUG] Running per-minute test trigger...")
			runUsageDistributor("hourly-debug")
		})
	}

	log.Printf("Usage Task Distributor started. Connected to Redis at: %s", opt.Addr)
	c.Start()

	// Keep the app running
	select {}
}

func runUsageDistributor(scheduleType string) {
	// 30-minute safety timeout for the entire process
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	// --- GLOBAL LOCK LOGIC ---
	var lockKeySuffix string
	var lockTTL time.Duration

	if scheduleType == "hourly-debug" {
		lockKeySuffix = time.Now().Format("2006-01-02-15:04") // Unique per minute
		lockTTL = 50 * time.Second                            // Expire just before next minute
	} else {
		lockKeySuffix = time.Now().Format("2006-01-02-15")
		lockTTL = 55 * time.Minute
	}

	globalLockKey := fmt.Sprintf("usage_run_lock:%s:%s", scheduleType, lockKeySuffix)

	// SET NX: Only one instance/replica will succeed here
	locked, err := rdb.SetNX(ctx, globalLockKey, "running", lockTTL).Result()
	if err != nil || !locked {
		log.Printf("[%s] Skip: Lock %s held by another instance.", scheduleType, globalLockKey)
		return
	}

	log.Printf("[%s] Lock Acquired. Processing distribution...", scheduleType)

	// --- CONNECTIONS ---
	db, err := utils.GetDBConnection()
	if err != nil {
		log.Printf("[%s] DB connection failed: %v", scheduleType, err)
		return
	}

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		log.Printf("[%s] RabbitMQ connection failed: %v", scheduleType, err)
		return
	}
	defer conn.Close()

	ch, _ := conn.Channel()
	defer ch.Close()

	// Put channel in Confirm Mode
	if err := ch.Confirm(false); err != nil {
		log.Printf("[%s] Could not enable RabbitMQ confirms: %v", scheduleType, err)
		return
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	q, _ := ch.QueueDeclare("usage_tasks", true, false, false, false, nil)

	// --- ASSISTANT LISTING ---
	assistants, err := repository.NewAssistantRepository(db).ListAssistants()
	if err != nil {
		log.Printf("[%s] Assistant listing error: %v", scheduleType, err)
		return
	}

	// --- DISTRIBUTION LOOP ---
	count := 0
	for _, assistant := range assistants {
		task := models.UsageTask{
			AssistantRowID: assistant.Id,
			AssistantId:    assistant.AssistantId,
			PlanId:         assistant.PlanId,
			RunID:          globalLockKey,
		}

		// DEDUPLICATION: Ensures no assistant is queued twice in the same cycle
		dedupeKey := fmt.Sprintf("queued:%s:%d:%s", scheduleType, task.AssistantRowID, lockKeySuffix)
		isNew, _ := rdb.SetNX(ctx, dedupeKey, "true", 2*time.Hour).Result()
		if !isNew {
			continue
		}

		body, _ := json.Marshal(task)

		err = ch.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})

		if err != nil {
			rdb.Del(ctx, dedupeKey) // Failed to publish, allow retry
			log.Printf("Publish error for assistant %d: %v", task.AssistantRowID, err)
			continue
		}

		// Confirm receipt by RabbitMQ
		select {
		case confirmed := <-confirms:
			if !confirmed.Ack {
				rdb.Del(ctx, dedupeKey)
				log.Printf("RabbitMQ NACK for %d", task.AssistantRowID)
			} else {
				count++
			}
		case <-time.After(5 * time.Second):
			rdb.Del(ctx, dedupeKey)
			log.Printf("Timeout waiting for RabbitMQ ACK for %d", task.AssistantRowID)
		}
	}

	log.Printf("[%s] Distribution Finished. Total Queued: %d", scheduleType, count)
}
