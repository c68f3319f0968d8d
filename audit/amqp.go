package audit

import (
	"encoding/json"
	"time"

	"github.com/streadway/amqp"
)

type amqpEvent struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AMQPSink publishes audit events to a fanout exchange so external consumers
// (analytics, alerting) can follow along. Publish failures are swallowed:
// the sink is a side channel, never authoritative.
type AMQPSink struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewAMQPSink(url, exchange string) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &AMQPSink{conn: conn, channel: ch, exchange: exchange}, nil
}

// Close releases the channel and the underlying connection.
func (s *AMQPSink) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func (s *AMQPSink) Info(message string)  { s.publish("INFO", message) }
func (s *AMQPSink) Error(message string) { s.publish("ERROR", message) }

func (s *AMQPSink) publish(level, message string) {
	body, err := json.Marshal(amqpEvent{Level: level, Message: message, Timestamp: time.Now()})
	if err != nil {
		return
	}
	_ = s.channel.Publish(s.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}
