package domain

import "time"

// Типы событий истории заказа.
const (
	TimelineOrderCreated   = "order_created"
	TimelineStatusChanged  = "status_changed"
	TimelinePositionAdded  = "position_added"
	TimelineComplaintFiled = "complaint_filed"
)

// TimelineEvent описывает событие в жизненном цикле заказа.
type TimelineEvent struct {
	OrderID  int64
	Type     string
	Reason   string
	Occurred time.Time
}
