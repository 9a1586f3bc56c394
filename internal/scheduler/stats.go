package scheduler

import "github.com/alexanderramin/sprintbudget/internal/dates"

// SprintAverages returns planned hours per workday for each sprint seen in
// rows. Only in-window workdays count; a sprint without any divides by 1.
func SprintAverages(rows []DailyRow) map[int]float64 {
	planned := make(map[int]float64)
	workdays := make(map[int]int)
	for _, r := range rows {
		if !r.HasSprint() {
			continue
		}
		planned[r.SprintNr] += r.Planned
		if !dates.IsWeekend(r.Date) {
			workdays[r.SprintNr]++
		}
	}

	avg := make(map[int]float64, len(planned))
	for nr, sum := range planned {
		avg[nr] = sum / float64(max(1, workdays[nr]))
	}
	return avg
}
