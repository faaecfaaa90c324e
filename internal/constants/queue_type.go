package constants

type QueueType string

const (
	BulletQueue    QueueType = "bullet"
	BlitzQueue     QueueType = "blitz"
	RapidQueue     QueueType = "rapid"
	ClassicalQueue QueueType = "classical"
)

func GetQueueType(queue string) QueueType {
	switch queue {
	case "bullet":
		return BulletQueue
	case "blitz":
		return BlitzQueue
	case "rapid":
		return RapidQueue
	case "classical":
		return ClassicalQueue
	default:
		return ""
	}
}

func (q *QueueType) String() string {
	return string(*q)
}

func GetAllQueueTypes() []QueueType {
	return []QueueType{BulletQueue, BlitzQueue, RapidQueue, ClassicalQueue}
}

func GetIndexNameQueue(queue QueueType) string {
	return "queue_" + queue.String()
}

func GetIndexNameStr(queue string) string {
	q := QueueType(queue)
	return GetIndexNameQueue(q)
}

func GetEntriesName(queue string) string {
	return "queue_entries_" + queue
}
