package game

import (
	"testing"
	"time"
)

func TestScoreDBRecordAndTop(t *testing.T) {
	db, err := OpenScoreDB(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if err := db.Record(Loss, 7, 104, 42*time.Second); err != nil {
		t.Fatalf("record loss: %v", err)
	}
	if err := db.Record(Win, 104, 104, 3*time.Minute); err != nil {
		t.Fatalf("record win: %v", err)
	}
	if err := db.Record(Loss, 104, 104, 5*time.Minute); err != nil {
		t.Fatalf("record slow loss: %v", err)
	}

	top, err := db.Top(2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("len(top) = %d, want 2", len(top))
	}
	if top[0].Result != "win" || top[0].Length != 104 {
		t.Errorf("top[0] = %+v, want the win at length 104", top[0])
	}
	if top[1].Result != "loss" || top[1].DurationMS != (5*time.Minute).Milliseconds() {
		t.Errorf("top[1] = %+v, want the slower loss", top[1])
	}
}

func TestScoreDBTopEmpty(t *testing.T) {
	db, err := OpenScoreDB(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	top, err := db.Top(10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 0 {
		t.Errorf("len(top) = %d, want 0", len(top))
	}
}
