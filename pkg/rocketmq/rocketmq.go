package rocketmq

import (
	"context"
	"memareh/config"
	"time"
	"memareh/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

// Publisher sends a message body to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
	timeout          time.Duration
}

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer starts a producer, or returns a no-op publisher when no
// name server is configured so local runs don't need a broker.
func InitProducer(cfg *config.RocketMQConfig) Publisher {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Warn("rocketmq not configured, moderation events are dropped")
		return Noop{}
	}

	p, err := rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver(cfg.NameServer)),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
		producer.WithSendMsgTimeout(cfg.Producer.Timeout()),
	)
	if err != nil {
		log.L.Error("init producer failed", zap.Error(err))
		return Noop{}
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer failed", zap.Error(err))
		return Noop{}
	}
	log.L.Info("init producer success")

	return &Rocketmq{RocketmqProducer: p, timeout: cfg.Producer.Timeout()}
}

// Publish 发送同步消息, giving up once the configured send timeout has passed.
func (p *Rocketmq) Publish(ctx context.Context, topic string, body []byte) error {
	msg := primitive.NewMessage(topic, body)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("topic", topic), zap.String("msg_id", res.MsgID))
	return nil
}

type Noop struct{}

func (Noop) Publish(context.Context, string, []byte) error { return nil }
