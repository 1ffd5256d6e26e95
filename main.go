package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/matt-g-everett/ledcolormap/api"
	"github.com/matt-g-everett/ledcolormap/stream"
)

type app struct {
	Config   stream.Config
	Strips   []stream.Strip
	Client   mqtt.Client
	Streamer *stream.Streamer
	Api      *api.Api
}

func newApp() *app {
	a := new(app)
	a.Config = stream.DefaultConfig()
	return a
}

func (a *app) readConfig(configPath string) error {
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		log.Printf("No config at %s, using defaults", configPath)
		return nil
	}

	config, err := stream.LoadConfig(configPath)
	if err != nil {
		return err
	}
	a.Config = config
	return nil
}

func (a *app) buildStrips() error {
	var err error
	if len(a.Config.Strips) == 0 {
		a.Strips, err = stream.DefaultStrips(stream.DefaultSteps)
	} else {
		a.Strips, err = stream.NewStrips(a.Config.Strips)
	}
	if err != nil {
		return err
	}

	for i, s := range a.Strips {
		log.Printf("Strip %d %s: %s", i, s.Name, s.Caption)
	}
	return nil
}

func (a *app) connect() error {
	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOnConnectHandler(func(client mqtt.Client) {
			log.Println("Connected")
		})
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (a *app) run(ctx context.Context) error {
	var err error
	a.Api, err = api.NewApi(a.Strips, a.Config.HTTP)
	if err != nil {
		return err
	}

	errs := make(chan error, 2)
	go func() { errs <- a.Api.Serve(ctx) }()

	if a.Config.Mqtt.URL == "" {
		log.Println("No MQTT broker configured, streaming disabled")
	} else {
		if err := a.connect(); err != nil {
			return err
		}
		defer a.Client.Disconnect(250)

		controller, err := stream.NewStripController(a.Strips, a.Config.Stream, 0)
		if err != nil {
			return err
		}
		publisher := stream.NewMqttPublisher(a.Client, a.Config.Mqtt.Qos)
		a.Streamer = stream.NewStreamer(publisher, a.Config.Mqtt.Topics.Stream, controller, a.Config.Stream.FrameRate)
		go func() { errs <- a.Streamer.Run(ctx) }()
	}

	select {
	case <-ctx.Done():
		return nil
	case err := <-errs:
		return err
	}
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	flag.Parse()

	a := newApp()
	if err := a.readConfig(*configPath); err != nil {
		log.Fatalf("Read config: %v", err)
	}
	log.Printf("Config: %+v", a.Config.Stream)

	if err := a.buildStrips(); err != nil {
		log.Fatalf("Build strips: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.run(ctx); err != nil {
		log.Fatalf("Run: %v", err)
	}
}
