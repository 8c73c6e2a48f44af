package storage

import (
	"fmt"
	"testing"
)

// createBenchStorage creates a storage instance for benchmarks
func createBenchStorage(b *testing.B) *Storage {
	b.Helper()
	store, err := New(b.TempDir())
	if err != nil {
		b.Fatalf("failed to create bench storage: %v", err)
	}
	return store
}

// BenchmarkAddTask measures task creation performance
func BenchmarkAddTask(b *testing.B) {
	store := createBenchStorage(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := store.AddTask(fmt.Sprintf("Task %d", i), "")
		if err != nil {
			b.Fatalf("AddTask failed: %v", err)
		}
	}
}

// BenchmarkListTasks measures sorted listing performance with varying sizes
func BenchmarkListTasks(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size_%d", size), func(b *testing.B) {
			store := createBenchStorage(b)

			for i := 0; i < size; i++ {
				deadline := fmt.Sprintf("2026-%02d-%02d", i%12+1, i%28+1)
				if _, err := store.AddTask(fmt.Sprintf("Task %d", i), deadline); err != nil {
					b.Fatalf("AddTask failed: %v", err)
				}
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, err := store.ListTasks()
				if err != nil {
					b.Fatalf("ListTasks failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkToggleHabit measures habit toggling, which rewrites the full record
func BenchmarkToggleHabit(b *testing.B) {
	store := createBenchStorage(b)
	habit := Catalog()[0]
	date := store.WeekDates(0)[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.ToggleHabit(habit.ID, date); err != nil {
			b.Fatalf("ToggleHabit failed: %v", err)
		}
	}
}

// BenchmarkLoadSchedules measures schedule loading with a full week
func BenchmarkLoadSchedules(b *testing.B) {
	store := createBenchStorage(b)
	for _, day := range Weekdays() {
		for h := 8; h < 16; h++ {
			if _, err := store.AddEntry(day, fmt.Sprintf("%02d:00", h), "Subject", "Teacher"); err != nil {
				b.Fatalf("AddEntry failed: %v", err)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := store.LoadSchedules(); err != nil {
			b.Fatalf("LoadSchedules failed: %v", err)
		}
	}
}
