package domain

// Journal — записи, которые хранилище фиксирует вместе с изменением сущности:
// события для outbox и история заказа. Ошибка записи журнала откатывает изменение.
type Journal struct {
	Events   []OutboxMessage
	Timeline []TimelineEvent
}

// Empty сообщает, что писать нечего.
func (j Journal) Empty() bool {
	return len(j.Events) == 0 && len(j.Timeline) == 0
}

// OrderJournal строит журнал по сохраняемому состоянию заказа
// (ID и версия уже назначены). nil означает пустой журнал.
type OrderJournal func(Order) (Journal, error)

// Build вызывает f, если она задана.
func (f OrderJournal) Build(order Order) (Journal, error) {
	if f == nil {
		return Journal{}, nil
	}
	return f(order)
}

// ProfileJournal строит журнал по сохраняемому состоянию профиля.
type ProfileJournal func(Profile) (Journal, error)

// Build вызывает f, если она задана.
func (f ProfileJournal) Build(profile Profile) (Journal, error) {
	if f == nil {
		return Journal{}, nil
	}
	return f(profile)
}
