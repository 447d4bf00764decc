package queuemanager

import (
	"fmt"
	"strconv"

	"bitbucket.org/yellowmessenger/chime-sma-responder/ymlogger"
	"github.com/streadway/amqp"
)

// QueueConnParams holds the RabbitMQ connection parameters
type QueueConnParams struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	UserName       string `json:"user_name"`
	Password       string `json:"password"`
	QueueName      string `json:"queue_name"`
	Durable        bool   `json:"durable"`
	DeleteUnused   bool   `json:"delete_unused"`
	Exclusive      bool   `json:"exclusive"`
	NoWait         bool   `json:"no_wait"`
	TTL            int    `json:"ttl"`
	MaxQueueLength int    `json:"max_queue_length"`
}

// QueueMessageParams holds the publish parameters
type QueueMessageParams struct {
	Exchange   string `json:"exchange"`
	QueueName  string `json:"queue_name"`
	RoutingKey string `json:"routing_key"`
	Priority   uint8  `json:"priority"`
	Mandatory  bool   `json:"mandatory"`
	Immediate  bool   `json:"immediate"`
}

var ch *amqp.Channel

// InitRabbitMQConn connects to RabbitMQ and declares the audit queue.
// The audit channel is optional; callers skip publishing when this was
// never initialized.
func InitRabbitMQConn(qParams QueueConnParams) error {
	conn, err := amqp.Dial("amqp://" + fmt.Sprintf("%s:%s@%s:%s", qParams.UserName, qParams.Password, qParams.Host, strconv.Itoa(qParams.Port)))
	if err != nil {
		ymlogger.LogErrorf("InitRabbitMQ", "Failed to connect to RabbitMQ. Error: [%#v]", err)
		return err
	}

	ch, err = conn.Channel()
	if err != nil {
		ymlogger.LogErrorf("InitRabbitMQ", "Failed to open a channel. Error: [%#v]", err)
		return err
	}
	var args = make(amqp.Table)
	if qParams.TTL > 0 {
		args["x-message-ttl"] = qParams.TTL
	}
	if qParams.MaxQueueLength > 0 {
		args["x-max-length"] = qParams.MaxQueueLength
	}
	_, err = ch.QueueDeclare(
		qParams.QueueName,
		qParams.Durable,
		qParams.DeleteUnused,
		qParams.Exclusive,
		qParams.NoWait,
		args,
	)
	if err != nil {
		ymlogger.LogErrorf("InitRabbitMQ", "Failed to declare the queue. Error: [%#v]", err)
		return err
	}
	return nil
}

// Initialized reports whether the audit channel is available
func Initialized() bool {
	return ch != nil
}

func publish(mParams QueueMessageParams, body []byte) error {
	if ch == nil {
		return fmt.Errorf("queue channel is not initialized")
	}
	return ch.Publish(
		mParams.Exchange,
		mParams.QueueName,
		mParams.Mandatory,
		mParams.Immediate,
		amqp.Publishing{
			ContentType: "application/json",
			Priority:    mParams.Priority,
			Body:        body,
		},
	)
}
