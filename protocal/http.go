package protocal

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"predictive-keyboard/configs"
	httpAdapter "predictive-keyboard/internal/adapters/input/http"
	"predictive-keyboard/pkg/logger"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// NewApp builds the fiber app with middleware and routes
func NewApp(deps *Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "predictive-keyboard",
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(deps.Predictions, deps.Logs, deps.Ping())
	app.Get("/swagger/*", swagger.HandlerDefault)
	hdl.Register(app)
	return app
}

// ServeHTTP func
func ServeHTTP() error {
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	conf := configs.GetViper()

	if err := logger.Init(logger.Options{Debug: conf.App.Debug, Format: conf.App.LogFormat}); err != nil {
		return err
	}
	logrus.Info("Environment: ", conf.App.Env)

	deps, err := NewDependencies(conf)
	if err != nil {
		return err
	}
	app := NewApp(deps)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		logrus.Println("Gracefull shut down ...")
		if err := app.Shutdown(); err != nil {
			logrus.Println("Error when shutdown server: ", err)
		}
	}()

	logrus.Println("Listening on port: ", conf.App.Port)
	err = app.Listen(":" + conf.App.Port)
	deps.Close()
	return err
}
