package telegram

import "testing"

func TestDailyQuotaAllow(t *testing.T) {
	q := newDailyQuota(2)

	if !q.Allow(1) || !q.Allow(1) {
		t.Fatal("first two requests must pass")
	}
	if q.Allow(1) {
		t.Error("third request must be rejected")
	}
	// Boshqa foydalanuvchiga ta'sir qilmaydi
	if !q.Allow(2) {
		t.Error("other user must have own counter")
	}
}

func TestDailyQuotaUnlimited(t *testing.T) {
	q := newDailyQuota(0)
	for i := 0; i < 100; i++ {
		if !q.Allow(1) {
			t.Fatal("zero limit means unlimited")
		}
	}
	if q.Remaining(1) != -1 {
		t.Errorf("Remaining = %d, want -1 for unlimited", q.Remaining(1))
	}
}

func TestDailyQuotaRemaining(t *testing.T) {
	q := newDailyQuota(3)
	if q.Remaining(1) != 3 {
		t.Errorf("Remaining = %d, want 3", q.Remaining(1))
	}
	q.Allow(1)
	if q.Remaining(1) != 2 {
		t.Errorf("Remaining = %d, want 2", q.Remaining(1))
	}
}

func TestDailyQuotaDayRollover(t *testing.T) {
	q := newDailyQuota(1)
	if !q.Allow(1) {
		t.Fatal("first request must pass")
	}
	if q.Allow(1) {
		t.Fatal("limit reached")
	}

	// Kun almashganini taqlid qilish
	q.mu.Lock()
	q.day = "2000-01-01"
	q.mu.Unlock()

	if !q.Allow(1) {
		t.Error("counter must reset on a new day")
	}
}
