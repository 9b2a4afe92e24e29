package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"voicedesk.io/accounting/internal/calllog"
	"voicedesk.io/accounting/internal/plans"
	"voicedesk.io/accounting/internal/quota"
	"voicedesk.io/accounting/internal/usage"
	"voicedesk.io/accounting/internal/voiceapi"
	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/repository"
	"voicedesk.io/accounting/utils"

	_ "github.com/go-sql-driver/mysql"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	db, err := utils.GetDBConnection()
	if err != nil {
		panic(err)
	}
	assistantRepo := repository.NewAssistantRepository(db)
	usageRepo := repository.NewUsageRepository(db)

	registry := plans.NewRegistry()
	voiceClient := voiceapi.NewClient(utils.Config("VOICEAPI_URL"), utils.Config("VOICEAPI_PRIVATE_KEY"))
	logClient := calllog.NewClient(utils.Config("CALLLOG_API_URL"), utils.Config("CALLLOG_API_KEY"))
	resolver := quota.NewResolver(registry, voiceClient)

	var rdb *redis.Client
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			panic(err)
		}
		rdb = redis.NewClient(opt)
	}

	snapshots := usage.NewSnapshotService(assistantRepo, usageRepo, logClient, resolver, rdb)

	conn, err := amqp.Dial(os.Getenv("QUEUE_URL"))
	if err != nil {
		panic(err)
	}

	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Prefetch(1) ensures the worker doesn't hog all tasks if one is slow
	ch.Qos(1, 0, false)
	msgs, err := ch.Consume("usage_tasks", "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	log.Println("Worker ready. Waiting for tasks...")

	for d := range msgs {
		var task models.UsageTask
		json.Unmarshal(d.Body, &task)

		err := snapshots.ProcessTask(context.Background(), task)
		if err != nil {
			log.Printf("Error processing assistant %d: %v", task.AssistantRowID, err)
			d.Nack(false, true) // Requeue for retry
		} else {
			d.Ack(false)
		}
	}
}
