// Package backup defines the JSON file written by `physio export` and read
// by `physio import`. Field names follow the HTTP API, so a file can also be
// assembled from API responses.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// FormatVersion is written to every file; Validate rejects other versions.
const FormatVersion = 1

type File struct {
	Version    int              `json:"version"`
	ExportedAt string           `json:"exportedAt,omitempty"`
	Exercises  []ExerciseRecord `json:"exercises"`
	Workouts   []WorkoutRecord  `json:"workouts,omitempty"`
}

// ExerciseRecord is one exercise with its full session history. Workouts
// refer to exercises by name.
type ExerciseRecord struct {
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Type              string          `json:"type"`
	TargetSets        int             `json:"targetSets"`
	TargetReps        *int            `json:"targetReps,omitempty"`
	TargetDuration    *int            `json:"targetDuration,omitempty"`
	TargetDaysPerWeek int             `json:"targetDaysPerWeek"`
	Archived          bool            `json:"archived,omitempty"`
	CreatedAt         string          `json:"createdAt,omitempty"`
	Sessions          []SessionRecord `json:"sessions,omitempty"`
}

// SessionRecord keeps setsData verbatim, including malformed values, so a
// round trip never changes what the analytics see.
type SessionRecord struct {
	CompletedAt    string   `json:"completedAt"`
	Sets           int      `json:"sets"`
	Reps           *int     `json:"reps,omitempty"`
	Duration       *int     `json:"duration,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Notes          string   `json:"notes,omitempty"`
	SetsData       *string  `json:"setsData,omitempty"`
	TargetSets     *int     `json:"targetSets,omitempty"`
	TargetReps     *int     `json:"targetReps,omitempty"`
	TargetDuration *int     `json:"targetDuration,omitempty"`
}

type WorkoutRecord struct {
	Name              string                  `json:"name"`
	Description       string                  `json:"description,omitempty"`
	TargetDaysPerWeek int                     `json:"targetDaysPerWeek"`
	Exercises         []WorkoutExerciseRecord `json:"exercises"`
	Sessions          []WorkoutSessionRecord  `json:"sessions,omitempty"`
}

type WorkoutExerciseRecord struct {
	Exercise       string `json:"exercise"`
	TargetSets     int    `json:"targetSets"`
	TargetReps     *int   `json:"targetReps,omitempty"`
	TargetDuration *int   `json:"targetDuration,omitempty"`
}

type WorkoutSessionRecord struct {
	CompletedAt string `json:"completedAt"`
	Notes       string `json:"notes,omitempty"`
}

// Load reads and parses a backup file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing backup file: %w", err)
	}
	return &f, nil
}

// Write encodes f as indented JSON.
func Write(w io.Writer, f *File) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f)
}
