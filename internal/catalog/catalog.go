// Package catalog is the static set of gym workouts.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/idilsaglam/organizer/internal/model"
)

type Workout struct {
	Name      string
	Exercises []string
}

var workouts = []Workout{
	{Name: "Chest", Exercises: []string{
		"Bench Press", "Decline Press", "Seated Bench Press", "Incline Dumbbell Press",
		"Cable Chest Flys", "Pec Deck Flys", "Lever Chest Press", "Pushups",
	}},
	{Name: "Back and Core", Exercises: []string{
		"Deadlifts", "Pull-Ups", "Bent-Over Rows", "T-Bar Rows",
		"Seated Cable Rows", "Lat Pulldowns", "Crunches", "Russian Twists",
	}},
	{Name: "Shoulders and Traps", Exercises: []string{
		"Overhead Press", "Arnold Press", "Lateral Raises", "Front Raises",
		"Upright Rows", "Shrugs", "Face Pulls", "Reverse Pec-Deck",
	}},
	{Name: "Legs", Exercises: []string{
		"Squats", "Leg Press", "Romanian Deadlifts", "Leg Curls",
		"Leg Extensions", "Calf Raises", "Lunges", "Glute Bridges",
	}},
	{Name: "Arms", Exercises: []string{
		"Barbell Bicep Curls", "Dumbbell Bicep Curls", "Preacher Curls", "Hammer Curls",
		"Tricep Dips", "Tricep Pushdowns", "Skull Crushers", "Overhead Tricep Extensions",
	}},
	{Name: "Cardio", Exercises: []string{
		"Running", "Cycling", "Swimming", "Rowing",
		"Jumping Jacks", "Burpees", "High Knees", "Mountain Climbers",
	}},
	{Name: "Rest Day"},
}

// Default is the workout shown when nothing else is selected.
const Default = "Chest"

// Names returns the workout names in catalog order.
func Names() []string {
	out := make([]string, len(workouts))
	for i, w := range workouts {
		out[i] = w.Name
	}
	return out
}

// Lookup matches name case-insensitively.
func Lookup(name string) (Workout, bool) {
	for _, w := range workouts {
		if strings.EqualFold(w.Name, strings.TrimSpace(name)) {
			return w, true
		}
	}
	return Workout{}, false
}

// ExerciseList returns a fresh, all-pending exercise list numbered from 1.
func (w Workout) ExerciseList() []model.Exercise {
	out := make([]model.Exercise, len(w.Exercises))
	for i, n := range w.Exercises {
		out[i] = model.Exercise{ID: int64(i + 1), Name: n}
	}
	return out
}

// Identify finds the workout whose exercise set matches exs, ignoring order
// and completion. Used to restore the workout name after a reload.
func Identify(exs []model.Exercise) (Workout, bool) {
	for _, w := range workouts {
		if len(w.Exercises) != len(exs) {
			continue
		}
		want := make(map[string]bool, len(w.Exercises))
		for _, n := range w.Exercises {
			want[n] = true
		}
		match := true
		for _, e := range exs {
			if !want[e.Name] {
				match = false
				break
			}
		}
		if match {
			return w, true
		}
	}
	return Workout{}, false
}

// Next returns the workout after name, wrapping around. delta may be negative.
func Next(name string, delta int) Workout {
	i := 0
	for j, w := range workouts {
		if strings.EqualFold(w.Name, name) {
			i = j
			break
		}
	}
	n := len(workouts)
	return workouts[((i+delta)%n+n)%n]
}

// Weekday names the day of an ISO date.
func Weekday(date string) (string, error) {
	d, err := time.Parse(model.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return d.Weekday().String(), nil
}
