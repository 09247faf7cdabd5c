package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Benjafo/TimeClock/internal/bot"
	"github.com/Benjafo/TimeClock/internal/config"
	"github.com/Benjafo/TimeClock/internal/flow"
	"github.com/Benjafo/TimeClock/internal/handler"
	"github.com/Benjafo/TimeClock/internal/model"
	"github.com/Benjafo/TimeClock/internal/router"
	"github.com/Benjafo/TimeClock/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate. Binary collation keeps project name matching and
	// ordering case-sensitive.
	if err := db.Set("gorm:table_options", "ENGINE=InnoDB COLLATE=utf8mb4_bin").AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Assignment{},
		&model.TimeEntry{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Seed the configured admin identity
	if cfg.Discord.AdminUserID != "" {
		admin := model.User{
			DiscordID: cfg.Discord.AdminUserID,
			Username:  cfg.Discord.AdminUsername,
			IsAdmin:   true,
		}
		if err := db.Where("discord_id = ?", admin.DiscordID).FirstOrCreate(&admin).Error; err != nil {
			log.Fatalf("seed admin: %v", err)
		}
		if !admin.IsAdmin {
			db.Model(&admin).Update("is_admin", true)
		}
		log.Printf("admin user %s initialized", cfg.Discord.AdminUserID)
	}

	// Flow store: redis when configured, in-process otherwise
	var flows flow.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		flows = flow.NewRedisStore(rdb)
	} else {
		flows = flow.NewMemoryStore()
	}

	// Services
	userService := service.NewUserService(db)
	projectService := service.NewProjectService(db)
	entryService := service.NewTimeEntryService(db)

	// Discord bot
	cmdHandler := bot.NewCommandHandler(userService, projectService, entryService, flows)
	discordBot, err := bot.New(cfg.Discord.Token, cfg.Discord.GuildID, cmdHandler)
	if err != nil {
		log.Fatalf("create bot: %v", err)
	}
	if err := discordBot.Start(); err != nil {
		log.Fatalf("start bot: %v", err)
	}
	defer discordBot.Stop()

	// Operator API handlers
	authHandler := handler.NewAuthHandler(cfg.API.JWTSecret, cfg.API.ExpireHours, cfg.API.OperatorPassword)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService, userService)
	entryHandler := handler.NewEntryHandler(entryService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	router.Setup(r, router.Deps{
		JWTSecret:      cfg.API.JWTSecret,
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		ProjectHandler: projectHandler,
		EntryHandler:   entryHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
