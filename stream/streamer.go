package stream

import (
	"context"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// A Publisher delivers a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

type mqttPublisher struct {
	client mqtt.Client
	qos    byte
}

// NewMqttPublisher publishes through an MQTT client at the given QoS.
func NewMqttPublisher(client mqtt.Client, qos byte) Publisher {
	return &mqttPublisher{client: client, qos: qos}
}

func (p *mqttPublisher) Publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.qos, false, payload)
	token.Wait()
	return token.Error()
}

// Streamer that streams RGB data frames to an LED strip.
type Streamer struct {
	publisher Publisher
	topic     string
	animation Animation
	interval  time.Duration
}

// NewStreamer creates an instance of a Streamer sending frameRate frames
// per second.
func NewStreamer(publisher Publisher, topic string, animation Animation, frameRate float64) *Streamer {
	s := new(Streamer)
	s.publisher = publisher
	s.topic = topic
	s.animation = animation
	if frameRate <= 0 {
		frameRate = DefaultConfig().Stream.FrameRate
	}
	s.interval = time.Duration(float64(time.Second) / frameRate)

	return s
}

// SendFrame publishes the frame for runtimeMs.
func (s *Streamer) SendFrame(runtimeMs int64) error {
	f := s.animation.CalculateFrame(runtimeMs)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return s.publisher.Publish(s.topic, b)
}

// Run sends frames continuously until ctx is done.
func (s *Streamer) Run(ctx context.Context) error {
	start := time.Now()
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
			if err := s.SendFrame(time.Since(start).Milliseconds()); err != nil {
				log.Printf("Send frame: %v", err)
			}
		}
	}
}
