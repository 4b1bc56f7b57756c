package database

import (
	"testing"
	"time"
)

func TestRebind(t *testing.T) {
	q := "UPDATE notes SET title = ?, updated_at = ? WHERE id = ? AND user_id = ?"

	if got := Rebind("mysql", q); got != q {
		t.Fatalf("mysql queries should be untouched, got %s", got)
	}
	want := "UPDATE notes SET title = $1, updated_at = $2 WHERE id = $3 AND user_id = $4"
	if got := Rebind("postgres", q); got != want {
		t.Fatalf("postgres query should be numbered, got %s", got)
	}
}

func TestTime(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)

	if got, ok := Time("mysql", at).(time.Time); !ok || !got.Equal(at) {
		t.Fatalf("mysql should bind the time as is, got %v", got)
	}
	if got, ok := Time("postgres", at).(time.Time); !ok || !got.Equal(at) {
		t.Fatalf("postgres should bind the time as is, got %v", got)
	}
	if got := Time("ramsql", at); got != "2024-03-01 12:30:05 +0000 UTC" {
		t.Fatalf("ramsql should bind a quoted timestamp, got %v", got)
	}
}
