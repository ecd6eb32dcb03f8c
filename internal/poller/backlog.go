package poller

import (
	"log/slog"
)

// Backlog — очередь недоставленных сообщений об ошибках. Очередь ограничена:
// при переполнении вытесняется самая старая запись.
type Backlog struct {
	entries []string
	limit   int
	logger  *slog.Logger
}

func NewBacklog(limit int, logger *slog.Logger) *Backlog {
	return &Backlog{
		entries: make([]string, 0, limit),
		limit:   limit,
		logger:  logger,
	}
}

func (b *Backlog) Push(text string) {
	if b.limit > 0 && len(b.entries) >= b.limit {
		b.logger.Warn("Очередь недоставленных уведомлений переполнена, самое старое удалено",
			"dropped", b.entries[0],
		)
		b.entries = b.entries[1:]
	}

	b.entries = append(b.entries, text)
}

// Drain пытается доставить каждую запись в порядке добавления.
// Доставленные записи удаляются, остальные остаются до следующего цикла.
func (b *Backlog) Drain(send func(text string) bool) {
	remaining := b.entries[:0]

	for _, text := range b.entries {
		if !send(text) {
			remaining = append(remaining, text)
		}
	}

	b.entries = remaining
}

func (b *Backlog) Len() int {
	return len(b.entries)
}
