package services

import (
	"drinkdays/internal/analytics"
	"drinkdays/internal/models"
	"time"
)

type MonthStats struct {
	Year              int                    `json:"year"`
	Month             time.Month             `json:"month"`
	DrinkingDays      int                    `json:"drinkingDays"`
	DrinkingDaysDelta int                    `json:"drinkingDaysDelta"`
	SoberRate         int                    `json:"soberRate"`
	Cost              int64                  `json:"cost"`
	CostDelta         int64                  `json:"costDelta"`
	Currency          models.Currency        `json:"currency"`
	Amount            analytics.Amount       `json:"amount"`
	DrinkingDates     []int                  `json:"drinkingDates"`
	SoberDates        []int                  `json:"soberDates"`
	Weeks             []analytics.WeekBucket `json:"weeks"`
}

type YearStats struct {
	Year              int                     `json:"year"`
	DrinkingDays      int                     `json:"drinkingDays"`
	DrinkingDaysDelta int                     `json:"drinkingDaysDelta"`
	SoberRate         int                     `json:"soberRate"`
	Cost              int64                   `json:"cost"`
	CostDelta         int64                   `json:"costDelta"`
	Currency          models.Currency         `json:"currency"`
	Amount            analytics.Amount        `json:"amount"`
	Months            []analytics.MonthBucket `json:"months"`
}

type WeekStats struct {
	Offset            int                 `json:"offset"`
	Label             string              `json:"label"`
	Days              []analytics.WeekDay `json:"days"`
	DrinkingDays      int                 `json:"drinkingDays"`
	DrinkingDaysDelta int                 `json:"drinkingDaysDelta"`
	SoberRate         int                 `json:"soberRate"`
	Cost              int64               `json:"cost"`
	CostDelta         int64               `json:"costDelta"`
	Currency          models.Currency     `json:"currency"`
	Amount            analytics.Amount    `json:"amount"`
}

type StreakStats struct {
	Today   string `json:"today"`
	Current int    `json:"current"`
	Longest int    `json:"longest"`
}

// WeekdayStats carries both weekday orders: Favorite.Weekday counts from
// Sunday, Pattern is indexed Monday = 0.
type WeekdayStats struct {
	Favorite *analytics.FavoriteDay `json:"favorite,omitempty"`
	Pattern  [7]int                 `json:"pattern"`
}

// MonthCalendar is what a month grid needs: its shape plus the marked days.
type MonthCalendar struct {
	Year         int          `json:"year"`
	Month        time.Month   `json:"month"`
	DaysInMonth  int          `json:"daysInMonth"`
	FirstWeekday time.Weekday `json:"firstWeekday"`
	Drinking     []int        `json:"drinking"`
	Sober        []int        `json:"sober"`
	Holidays     []int        `json:"holidays"`
}
