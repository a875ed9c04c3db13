package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mutualmatch/mutual-backend/internal/broadcast"
	"github.com/mutualmatch/mutual-backend/internal/command"
	"github.com/mutualmatch/mutual-backend/internal/datasources"
	"github.com/mutualmatch/mutual-backend/internal/datasources/memory"
	"github.com/mutualmatch/mutual-backend/internal/datasources/mysql"
	"github.com/mutualmatch/mutual-backend/internal/datasources/postgres"
	"github.com/mutualmatch/mutual-backend/internal/realtime"
	"github.com/mutualmatch/mutual-backend/internal/transport/web/router"
	"github.com/mutualmatch/mutual-backend/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	dataset, healthCheck, err := setupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	broker, brokerComponents, err := setupBroker(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up broadcast broker: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	authorizeChatCmd := command.NewAuthorizeChat(dataset, dataset)
	sendChatMessageCmd := command.NewSendChatMessage(dataset, broker)

	cmds := router.Commands{
		RecordVote: command.NewRecordVote(dataset, dataset),
		ListMatches: &command.ListMatches{
			Users:   dataset,
			Matches: dataset,
		},
		ListVotes: &command.ListVotes{
			Users: dataset,
			Votes: dataset,
		},
		ListRoomMessages: &command.ListRoomMessages{
			AuthorizeCmd: authorizeChatCmd,
			Users:        dataset,
			Messages:     dataset,
		},
	}

	sessions := &realtime.Manager{
		Users:         dataset,
		AuthorizeCmd:  authorizeChatCmd,
		SendCmd:       sendChatMessageCmd,
		Subscriber:    broker,
		PongWait:      GetEnvAsDurationOr(ctx, "CHAT_PONG_WAIT", realtime.DefaultPongWait),
		MaxFrameBytes: int64(GetEnvAsIntOr(ctx, "CHAT_MAX_FRAME_BYTES", realtime.DefaultMaxFrameBytes)),
	}

	httpRouter, err := router.MakeRouter(
		cmds,
		sessions,
		MustGetEnvAsStrings(ctx, "CORS_ALLOWED_ORIGINS"),
		healthCheck,
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   GetEnvAsIntOr(ctx, "PORT", 8080),
			AutocertHostnames: autocertHostnames(ctx),
			Router:            httpRouter,
		},
	}
	return append(components, brokerComponents...), nil
}

func autocertHostnames(ctx context.Context) []string {
	if MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED") {
		return nil
	}
	return MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES")
}

func setupDatasetRepository(
	ctx context.Context,
) (datasources.DatasetRepository, func(ctx context.Context) error, error) {
	switch driver := GetEnvAsStringOr("STORAGE_DRIVER", "mysql"); driver {
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if GetEnvAsStringOr("MYSQL_AUTO_MIGRATE", "false") == "true" {
			if err := mysql.Migrate(ctx, db); err != nil {
				return nil, nil, fmt.Errorf("migrating MySQL schema: %w", err)
			}
		}
		return mysql.New(db), db.PingContext, nil
	case "postgres":
		db, err := postgres.Connect(ctx, MustGetEnvAsString(ctx, "POSTGRES_DSN"))
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to PostgreSQL: %w", err)
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			return nil, nil, fmt.Errorf("migrating PostgreSQL schema: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("getting PostgreSQL connection pool: %w", err)
		}
		return postgres.New(db), sqlDB.PingContext, nil
	case "memory":
		seeds, err := ParseSeedUsers(GetEnvAsStringOr("MEMORY_USERS", ""))
		if err != nil {
			return nil, nil, fmt.Errorf("parsing MEMORY_USERS: %w", err)
		}
		store := memory.New()
		for _, seed := range seeds {
			store.AddUser(seed.User, seed.Subjects...)
		}
		return store, func(context.Context) error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
}

func setupBroker(ctx context.Context) (broadcast.Broker, []Component, error) {
	hub := broadcast.NewHub(GetEnvAsIntOr(ctx, "CHAT_SEND_BUFFER", broadcast.DefaultBufferSize))

	switch driver := GetEnvAsStringOr("BROADCAST_DRIVER", "local"); driver {
	case "local":
		return hub, nil, nil
	case "redis":
		client := broadcast.NewRedisClient(broadcast.RedisConfig{
			Addr:     MustGetEnvAsString(ctx, "REDIS_URL"),
			Password: GetEnvAsStringOr("REDIS_PASSWORD", ""),
			DB:       GetEnvAsIntOr(ctx, "REDIS_DB", 0),
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("connecting to Redis: %w", err)
		}
		relay := broadcast.NewRedisRelay(client, hub)
		return relay, []Component{relay}, nil
	default:
		return nil, nil, fmt.Errorf("unknown broadcast driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, dataset datasources.DatasetRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	drivers := MustGetEnvAsStrings(ctx, "AUTH_DRIVERS")
	for i, driver := range drivers {
		switch driver {
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
				dataset,
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "jwt":
			// Claims every unprefixed bearer token.
			if i != len(drivers)-1 {
				return nil, fmt.Errorf("auth driver [jwt] must be listed last")
			}
			validators = append(validators, router.NewJWTValidator(
				[]byte(MustGetEnvAsString(ctx, "JWT_SIGNING_KEY")),
			))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
