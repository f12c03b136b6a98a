package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avvvet/bingo-validator/internal/comm"
	"github.com/avvvet/bingo-validator/internal/validatorsvc/service"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const HeartbeatSubject = "service.heartbeat"

type publisher interface {
	Publish(subject string, data []byte) error
}

type Broker struct {
	Conn              *nats.Conn
	ValidationService *service.ValidationService
	ResultSubject     string
	pub               publisher
}

func NewBroker(nc *nats.Conn, validationService *service.ValidationService, resultSubject string) *Broker {
	return &Broker{
		Conn:              nc,
		ValidationService: validationService,
		ResultSubject:     resultSubject,
		pub:               nc,
	}
}

// handles validation requests coming over nats
func (b *Broker) handleMessage(msgNat *nats.Msg) {
	msg := &comm.WSMessage{}
	if err := json.Unmarshal(msgNat.Data, msg); err != nil {
		log.Errorf("Error nats message %s", err)
		b.publishError(msgNat.Reply, "", comm.ValidateError{Error: "invalid message format"})
		return
	}

	switch msg.Type {
	case comm.TypeValidateCards:
		var req comm.ValidateRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			log.Errorf("Error [handleMessage] invalid validate payload %s", err)
			b.publishError(msgNat.Reply, msg.SocketId, comm.ValidateError{Error: "invalid validate payload"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		report, err := b.ValidationService.Validate(ctx, req.Text)
		if err != nil {
			log.Warnf("validation request %s rejected: %s", req.RequestId, err)
			b.publishError(msgNat.Reply, msg.SocketId, comm.ValidateError{RequestId: req.RequestId, Error: err.Error()})
			return
		}
		report.OriginalText = ""

		b.PublishValidateResponse(msgNat.Reply, report, msg.SocketId)
	default:
		log.Warnf("unknown event received: %s", msg.Type)
	}
}

func (b *Broker) PublishValidateResponse(reply string, report any, socketId string) {
	data, err := json.Marshal(report)
	if err != nil {
		log.Errorf("error [PublishValidateResponse] unable to marshal report %s", err)
		return
	}

	b.publishMessage(reply, &comm.WSMessage{
		Type:     comm.TypeValidateResponse,
		Data:     data,
		SocketId: socketId,
	})
}

func (b *Broker) publishError(reply, socketId string, e comm.ValidateError) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Errorf("error [publishError] unable to marshal error %s", err)
		return
	}

	b.publishMessage(reply, &comm.WSMessage{
		Type:     comm.TypeValidateError,
		Data:     data,
		SocketId: socketId,
		Error:    e.Error,
	})
}

// replies go to the request inbox when there is one
func (b *Broker) publishMessage(reply string, msg *comm.WSMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	topic := reply
	if topic == "" {
		topic = b.ResultSubject
	}
	b.Publish(topic, payload)
}

func (b *Broker) QueueSubscribValidate(topic, queueGroup string) (*nats.Subscription, error) {
	sub, err := b.Conn.QueueSubscribe(topic, queueGroup, b.handleMessage)
	if err != nil {
		return nil, err
	}
	log.Infof("subscribed to %s (queue %s)", topic, queueGroup)
	return sub, nil
}

func (b *Broker) Publish(topic string, payload []byte) error {
	if err := b.pub.Publish(topic, payload); err != nil {
		log.Errorf("error publishing to %s: %v", topic, err)
		return err
	}
	return nil
}

// StartHeartbeat publishes a heartbeat for instanceId until ctx is done.
func (b *Broker) StartHeartbeat(ctx context.Context, instanceId string, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		b.publishHeartbeat(instanceId, time.Now())
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (b *Broker) publishHeartbeat(instanceId string, at time.Time) {
	payload, err := json.Marshal(comm.ServiceHeartbeat{ID: instanceId, Timestamp: at.UTC()})
	if err != nil {
		log.Errorf("error [publishHeartbeat] %s", err)
		return
	}
	b.Publish(HeartbeatSubject, payload)
}
