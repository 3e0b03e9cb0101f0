package telegram

import (
	"sync"
	"time"
)

// dailyQuota foydalanuvchi boshiga kunlik AI savol limiti.
// Hisoblagichlar kalendar kuni almashganda nolga qaytadi.
type dailyQuota struct {
	mu     sync.Mutex
	limit  int
	day    string
	counts map[int64]int
}

func newDailyQuota(limit int) *dailyQuota {
	return &dailyQuota{
		limit:  limit,
		day:    time.Now().Format("2006-01-02"),
		counts: make(map[int64]int),
	}
}

// Allow so'rovga ruxsat berish va hisoblagichni oshirish.
// limit <= 0 - cheklov yo'q.
func (q *dailyQuota) Allow(userID int64) bool {
	if q.limit <= 0 {
		return true
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	if today != q.day {
		q.day = today
		q.counts = make(map[int64]int)
	}

	if q.counts[userID] >= q.limit {
		return false
	}
	q.counts[userID]++
	return true
}

// Remaining bugungi qolgan so'rovlar soni. limit <= 0 da -1 (cheksiz).
func (q *dailyQuota) Remaining(userID int64) int {
	if q.limit <= 0 {
		return -1
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	if today != q.day {
		return q.limit
	}
	left := q.limit - q.counts[userID]
	if left < 0 {
		return 0
	}
	return left
}
