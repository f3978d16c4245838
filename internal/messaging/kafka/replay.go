package kafka

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
)

const (
	defaultReplayLimit       = 100
	defaultReplayIdleTimeout = 2 * time.Second
)

// OffsetSource отдаёт разделы топика и границы смещений.
type OffsetSource interface {
	Partitions(topic string) ([]int32, error)
	GetOffset(topic string, partition int32, time int64) (int64, error)
}

// PartitionConsumer читает один раздел.
type PartitionConsumer interface {
	Messages() <-chan *sarama.ConsumerMessage
	Errors() <-chan *sarama.ConsumerError
	Close() error
}

// PartitionOpener открывает чтение раздела с заданного смещения.
type PartitionOpener interface {
	ConsumePartition(topic string, partition int32, offset int64) (PartitionConsumer, error)
}

// ReplayConfig задаёт параметры повторной публикации из DLQ.
type ReplayConfig struct {
	SourceTopic string
	TargetTopic string
	Limit       int
	Execute     bool
	FromNewest  bool
	IdleTimeout time.Duration
}

// ReplayStats — итог прохода по DLQ.
type ReplayStats struct {
	Processed int
	Replayed  int
	Skipped   int
}

// Replayer переносит недоставленные события outbox из DLQ обратно в топик событий.
// Без Execute работает в режиме dry-run и только логирует кандидатов.
type Replayer struct {
	offsets  OffsetSource
	opener   PartitionOpener
	producer *Producer
	logger   *log.Entry
}

// NewReplayer собирает Replayer. producer может быть nil для dry-run.
func NewReplayer(offsets OffsetSource, opener PartitionOpener, producer *Producer, logger *log.Entry) *Replayer {
	if logger == nil {
		logger = log.WithField("component", "dlq-replayer")
	}
	return &Replayer{offsets: offsets, opener: opener, producer: producer, logger: logger}
}

func (c ReplayConfig) withDefaults() ReplayConfig {
	if c.SourceTopic == "" {
		c.SourceTopic = TopicDeadLetterQueue
	}
	if c.TargetTopic == "" {
		c.TargetTopic = TopicShopEvents
	}
	if c.Limit <= 0 {
		c.Limit = defaultReplayLimit
	}
	if c.IdleTimeout <= 0 {
		c.IdleTimeout = defaultReplayIdleTimeout
	}
	return c
}

// Replay проходит по разделам DLQ, пока не обработает Limit сообщений или не дойдёт до конца.
func (r *Replayer) Replay(ctx context.Context, cfg ReplayConfig) (ReplayStats, error) {
	cfg = cfg.withDefaults()
	var total ReplayStats

	if r.offsets == nil || r.opener == nil {
		return total, fmt.Errorf("kafka offsets and partition consumer are required")
	}
	if cfg.Execute && r.producer == nil {
		return total, fmt.Errorf("producer is required in execute mode")
	}

	partitions, err := r.offsets.Partitions(cfg.SourceTopic)
	if err != nil {
		return total, fmt.Errorf("get partitions for topic %s: %w", cfg.SourceTopic, err)
	}
	sort.Slice(partitions, func(i, j int) bool { return partitions[i] < partitions[j] })

	publisher := NewOutboxPublisher(r.producer, cfg.TargetTopic)
	for _, partition := range partitions {
		if total.Processed >= cfg.Limit {
			break
		}
		stats, err := r.replayPartition(ctx, cfg, publisher, partition, cfg.Limit-total.Processed)
		total.Processed += stats.Processed
		total.Replayed += stats.Replayed
		total.Skipped += stats.Skipped
		if err != nil {
			return total, err
		}
	}

	r.logger.WithFields(log.Fields{
		"execute":   cfg.Execute,
		"processed": total.Processed,
		"replayed":  total.Replayed,
		"skipped":   total.Skipped,
	}).Info("dlq replay finished")
	return total, nil
}

func (r *Replayer) replayPartition(
	ctx context.Context,
	cfg ReplayConfig,
	publisher *OutboxTopicPublisher,
	partition int32,
	limit int,
) (ReplayStats, error) {
	var stats ReplayStats

	oldest, err := r.offsets.GetOffset(cfg.SourceTopic, partition, sarama.OffsetOldest)
	if err != nil {
		return stats, fmt.Errorf("get oldest offset for partition %d: %w", partition, err)
	}
	newest, err := r.offsets.GetOffset(cfg.SourceTopic, partition, sarama.OffsetNewest)
	if err != nil {
		return stats, fmt.Errorf("get newest offset for partition %d: %w", partition, err)
	}
	if newest <= oldest {
		return stats, nil
	}

	start := oldest
	if cfg.FromNewest && newest-int64(limit) > oldest {
		start = newest - int64(limit)
	}

	pc, err := r.opener.ConsumePartition(cfg.SourceTopic, partition, start)
	if err != nil {
		return stats, fmt.Errorf("consume partition %d: %w", partition, err)
	}
	defer func() { _ = pc.Close() }()

	idle := time.NewTimer(cfg.IdleTimeout)
	defer idle.Stop()

	for stats.Processed < limit {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case <-idle.C:
			return stats, nil
		case cerr := <-pc.Errors():
			if cerr != nil {
				return stats, fmt.Errorf("partition %d consumer error: %w", partition, cerr)
			}
		case msg, ok := <-pc.Messages():
			if !ok || msg == nil || msg.Offset >= newest {
				return stats, nil
			}
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(cfg.IdleTimeout)

			stats.Processed++
			fields := log.Fields{"partition": msg.Partition, "offset": msg.Offset}

			event, letter, err := DecodeDeadLetter(msg.Value)
			if err != nil {
				stats.Skipped++
				r.logger.WithError(err).WithFields(fields).Warn("skip unsupported dlq message")
			} else if cfg.Execute {
				headers := map[string]string{
					HeaderOriginalTopic: msg.Topic,
					HeaderReplayedAt:    time.Now().UTC().Format(time.RFC3339),
				}
				if err := publisher.publish(event, headers); err != nil {
					return stats, fmt.Errorf("replay dlq message %s: %w", event.ID, err)
				}
				stats.Replayed++
			} else {
				stats.Replayed++
				r.logger.WithFields(fields).WithFields(log.Fields{
					"outbox_id":     event.ID,
					"event_type":    event.EventType,
					"publish_error": letter.PublishError,
				}).Info("dlq replay candidate")
			}

			if msg.Offset+1 >= newest {
				return stats, nil
			}
		}
	}
	return stats, nil
}

type saramaPartitionOpener struct {
	consumer sarama.Consumer
}

func (o saramaPartitionOpener) ConsumePartition(topic string, partition int32, offset int64) (PartitionConsumer, error) {
	return o.consumer.ConsumePartition(topic, partition, offset)
}

// OpenReplayer подключается к брокерам. Возвращённая функция закрывает все соединения.
func OpenReplayer(brokers []string, execute bool, logger *log.Entry) (*Replayer, func() error, error) {
	config := sarama.NewConfig()
	config.Consumer.Return.Errors = true

	client, err := sarama.NewClient(brokers, config)
	if err != nil {
		return nil, nil, fmt.Errorf("create kafka client: %w", err)
	}
	consumer, err := sarama.NewConsumerFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("create kafka consumer: %w", err)
	}

	var producer *Producer
	if execute {
		producer, err = NewProducer(brokers, WithProducerLogger(logger))
		if err != nil {
			_ = consumer.Close()
			_ = client.Close()
			return nil, nil, err
		}
	}

	closeAll := func() error {
		if producer != nil {
			_ = producer.Close()
		}
		_ = consumer.Close()
		return client.Close()
	}
	return NewReplayer(client, saramaPartitionOpener{consumer: consumer}, producer, logger), closeAll, nil
}
