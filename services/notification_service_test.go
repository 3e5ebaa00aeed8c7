package services

import (
	"database/sql/driver"
	"regexp"
	"testing"
	"time"
)

var notificationColumns = []string{"notification_id", "user_id", "title", "body", "is_read", "created_at"}

func TestMarkAllReadReturnsNewestFirstAndFlipsUnread(t *testing.T) {
	newer := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT .* FROM .notifications. WHERE user_id = \? ORDER BY created_at DESC`),
			args:    []driver.Value{int64(42)},
			columns: notificationColumns,
			rows: [][]driver.Value{
				{int64(2), int64(42), "Claim Approved", "Your claim was approved.", false, newer},
				{int64(1), int64(42), "New Claim Request", "A claim was filed.", true, older},
			},
		},
		{
			kind:    kindExec,
			pattern: regexp.MustCompile(`UPDATE .notifications. SET .is_read.=\? WHERE user_id = \? AND is_read = \?`),
			args:    []driver.Value{true, int64(42), false},
			result:  scriptedResult{rowsAffected: 1},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	notifications, err := NewNotificationService(db).MarkAllRead(42)
	if err != nil {
		t.Fatalf("MarkAllRead returned error: %v", err)
	}

	if len(notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(notifications))
	}
	if notifications[0].NotificationID != 2 || notifications[1].NotificationID != 1 {
		t.Fatalf("expected newest first, got %d then %d",
			notifications[0].NotificationID, notifications[1].NotificationID)
	}
	for _, n := range notifications {
		if !n.IsRead {
			t.Fatalf("expected notification %d marked read", n.NotificationID)
		}
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
	if state.commits != 1 {
		t.Fatalf("expected the read and the flip in one committed transaction, got %d commits", state.commits)
	}
}

func TestUnreadCount(t *testing.T) {
	steps := []*queryStep{
		{
			kind:    kindQuery,
			pattern: regexp.MustCompile(`SELECT count\(\*\) FROM .notifications. WHERE user_id = \? AND is_read = \?`),
			args:    []driver.Value{int64(42), false},
			columns: []string{"count"},
			rows:    [][]driver.Value{{int64(3)}},
		},
	}

	db, state, cleanup := newScriptedGormDB(t, steps)
	defer cleanup()

	n, err := NewNotificationService(db).UnreadCount(42)
	if err != nil {
		t.Fatalf("UnreadCount returned error: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 unread, got %d", n)
	}

	if err := state.verifyComplete(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
