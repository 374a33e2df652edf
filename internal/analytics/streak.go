package analytics

import (
	"github.com/RoaringBitmap/roaring/v2"

	"drinkdays/internal/calendar"
	"drinkdays/internal/models"
)

// Shifts day ordinals into uint32 space so dates before 1970 still sort.
const ordinalBias = 1 << 31

// CurrentSoberStreak walks back from today. An unrecorded today is skipped
// because the day is not over yet; an unrecorded earlier day ends the streak,
// as does a drinking day.
func CurrentSoberStreak(records []models.DrinkRecord, today calendar.Date) int {
	idx := indexByDate(records)
	streak := 0
	for i := 0; ; i++ {
		r, ok := idx[today.AddDays(-i).Key()]
		if !ok {
			if i == 0 {
				continue
			}
			break
		}
		if r.Drank {
			break
		}
		streak++
	}
	return streak
}

// LongestSoberStreak finds the longest run of consecutive sober days.
func LongestSoberStreak(records []models.DrinkRecord) int {
	days := soberDays(records)
	longest, current := 0, 0
	var prev uint32
	it := days.Iterator()
	for it.HasNext() {
		d := it.Next()
		if current > 0 && d == prev+1 {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
		prev = d
	}
	return longest
}

func soberDays(records []models.DrinkRecord) *roaring.Bitmap {
	days := roaring.New()
	for _, r := range records {
		if r.Drank {
			continue
		}
		d, err := calendar.ParseDateKey(r.Date)
		if err != nil {
			continue
		}
		days.Add(uint32(d.Ordinal() + ordinalBias))
	}
	return days
}
