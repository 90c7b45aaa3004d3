package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDateSortValue(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want int
	}{
		{
			name: "empty date sorts as unknown",
			date: Date{},
			want: 0,
		},
		{
			name: "text only sorts as unknown",
			date: Date{Modifier: ModTextOnly, Text: "around harvest 1850"},
			want: 0,
		},
		{
			name: "text only with year still sorts as unknown",
			date: Date{Modifier: ModTextOnly, Year: 1850, Text: "1850?"},
			want: 0,
		},
		{
			name: "month and day without year sorts as unknown",
			date: Date{Month: 6, Day: 15},
			want: 0,
		},
		{
			name: "first day of year one",
			date: Date{Year: 1, Month: 1, Day: 1},
			want: 1,
		},
		{
			name: "zero month and day clamp to january first",
			date: Date{Year: 1},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.SortValue())
		})
	}
}

func TestDateSortValueOrdering(t *testing.T) {
	earlier := Date{Year: 1960, Month: 3, Day: 1}.SortValue()
	later := Date{Year: 1960, Month: 3, Day: 2}.SortValue()
	assert.Equal(t, 1, later-earlier)

	y1960 := Date{Year: 1960}.SortValue()
	y1965 := Date{Year: 1965}.SortValue()
	y1980 := Date{Year: 1980}.SortValue()
	assert.Less(t, y1960, y1965)
	assert.Less(t, y1965, y1980)

	// Twenty calendar years is twenty truncated 365-day years: the span
	// 1960..1980 includes five leap days.
	assert.Equal(t, 20*365+5, y1980-y1960)
}

func TestDateSortValueLeapYears(t *testing.T) {
	feb28 := Date{Year: 2000, Month: 2, Day: 28}.SortValue()
	feb29 := Date{Year: 2000, Month: 2, Day: 29}.SortValue()
	mar1 := Date{Year: 2000, Month: 3, Day: 1}.SortValue()
	assert.Equal(t, 1, feb29-feb28)
	assert.Equal(t, 1, mar1-feb29)

	// 1900 is not a leap year in the Gregorian calendar.
	feb28 = Date{Year: 1900, Month: 2, Day: 28}.SortValue()
	mar1 = Date{Year: 1900, Month: 3, Day: 1}.SortValue()
	assert.Equal(t, 1, mar1-feb28)
}

func TestDateIsEmpty(t *testing.T) {
	assert.True(t, Date{}.IsEmpty())
	assert.True(t, Date{Modifier: ModNone}.IsEmpty())
	assert.False(t, Date{Year: 1900}.IsEmpty())
	assert.False(t, Date{Text: "unknown"}.IsEmpty())
}

func TestNameDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   Name
		want string
	}{
		{"both parts", Name{Given: "Anna", Surname: "Meier"}, "Meier, Anna"},
		{"surname only", Name{Surname: "Meier"}, "Meier"},
		{"given only", Name{Given: "Anna"}, "Anna"},
		{"empty", Name{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Display())
		})
	}
}
