package services

import (
	"time"

	"todo-text/internal/domain"
)

// SelectAndGroup walks every calendar day in [from, to] in ascending order and
// returns a group for each day that has at least one task. Tasks inside a group
// keep their relative order from tasks.
func SelectAndGroup(tasks []domain.Task, from, to time.Time) []DayGroup {
	first := domain.DateOf(from)
	last := domain.DateOf(to)
	if first.After(last) {
		return []DayGroup{}
	}

	byDay := make(map[time.Time][]domain.Task)
	for _, task := range tasks {
		day := task.Date()
		if day.Before(first) || day.After(last) {
			continue
		}
		byDay[day] = append(byDay[day], task)
	}

	groups := make([]DayGroup, 0, len(byDay))
	if len(byDay) == 0 {
		return groups
	}
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if dayTasks, ok := byDay[day]; ok {
			groups = append(groups, DayGroup{Date: day, Tasks: dayTasks})
		}
	}
	return groups
}

// FullRange returns the earliest and latest task dates. ok is false when tasks is empty.
func FullRange(tasks []domain.Task) (from, to time.Time, ok bool) {
	if len(tasks) == 0 {
		return time.Time{}, time.Time{}, false
	}
	from, to = tasks[0].Date(), tasks[0].Date()
	for _, task := range tasks[1:] {
		if task.Date().Before(from) {
			from = task.Date()
		}
		if task.Date().After(to) {
			to = task.Date()
		}
	}
	return from, to, true
}
