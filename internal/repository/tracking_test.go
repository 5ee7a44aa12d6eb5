package repository

import (
	"testing"

	"billtracker/internal/models"
	"billtracker/internal/testutil"
)

func TestTrackingInsertAndGetByMonth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewTrackingRepository(db)

	testutil.AssertNoError(t, repo.Insert(&models.Tracking{Period: "2024-02", CategoryID: 1, Total: 120}))
	testutil.AssertNoError(t, repo.Insert(&models.Tracking{Period: "2024-02", CategoryID: 2, Total: 45}))
	testutil.AssertNoError(t, repo.Insert(&models.Tracking{Period: "2024-01", CategoryID: 1, Total: 90}))

	rows, err := repo.GetByMonth("2024-02")
	testutil.AssertNoError(t, err)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for 2024-02, got %d", len(rows))
	}
	for _, row := range rows {
		if row.Period != "2024-02" {
			t.Errorf("expected period 2024-02, got %s", row.Period)
		}
	}
}

func TestTrackingSumsIncrementalEntries(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewTrackingRepository(db)

	// Incremental entries for the same period and category collapse into a
	// single summed row on read.
	testutil.CreateTestTracking(t, db, "2024-02", 1, 100)
	testutil.CreateTestTracking(t, db, "2024-02", 1, 25.5)

	rows, err := repo.GetByMonth("2024-02")
	testutil.AssertNoError(t, err)

	if len(rows) != 1 {
		t.Fatalf("expected 1 grouped row, got %d", len(rows))
	}
	if rows[0].Total != 125.5 {
		t.Errorf("expected summed total 125.5, got %v", rows[0].Total)
	}
}

func TestTrackingEmptyPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	repo := NewTrackingRepository(db)

	rows, err := repo.GetByMonth("2031-01")
	testutil.AssertNoError(t, err)
	if len(rows) != 0 {
		t.Errorf("expected no rows for an untracked period, got %d", len(rows))
	}
}
