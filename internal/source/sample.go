package source

import (
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"dataprof/internal/dataset"
)

var sampleCategories = []string{"A", "B", "C"}

// Sample builds a synthetic customer dataset for demos and tests:
// id, name, age, salary, category, signup_date, active. Deterministic
// for a given seed and row count.
func Sample(rows int, seed int64) *dataset.Table {
	f := gofakeit.New(seed)

	id := &dataset.Column{Name: "id"}
	name := &dataset.Column{Name: "name"}
	age := &dataset.Column{Name: "age"}
	salary := &dataset.Column{Name: "salary"}
	category := &dataset.Column{Name: "category"}
	signup := &dataset.Column{Name: "signup_date"}
	active := &dataset.Column{Name: "active"}

	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		id.Append(strconv.Itoa(i+1), true)
		name.Append(f.Name(), true)
		age.Append(strconv.Itoa(f.Number(18, 79)), true)
		salary.Append(strconv.FormatFloat(f.Price(20000, 80000), 'f', 2, 64), true)
		category.Append(f.RandomString(sampleCategories), true)
		signup.Append(start.AddDate(0, 0, i).Format("2006-01-02"), true)
		// Roughly 80/20 split, matching a typical active-customer base.
		active.Append(strconv.FormatBool(f.Number(1, 100) <= 80), true)
	}

	t := dataset.New()
	for _, c := range []*dataset.Column{id, name, age, salary, category, signup, active} {
		// Columns are built in lockstep, so AddColumn cannot fail here.
		_ = t.AddColumn(c)
	}
	return t
}
