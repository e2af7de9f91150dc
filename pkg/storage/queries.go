package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

//PlayerStat is one player's aggregate kinematics for a whole clip
type PlayerStat struct {
	PlayerID      int     `json:"player_id"`
	DistanceMeter float64 `json:"distance_m"`
	AvgSpeedKmh   float64 `json:"avg_speed_kmh"`
	MaxSpeedKmh   float64 `json:"max_speed_kmh"`
}

//Analysis is one stored per-video analysis result
type Analysis struct {
	VideoName string  `json:"video_name"`
	Frames    int     `json:"frames"`
	FPS       float64 `json:"fps"`

	Team1ShotsMade     int `json:"team1_shots_made"`
	Team1ShotsMissed   int `json:"team1_shots_missed"`
	Team2ShotsMade     int `json:"team2_shots_made"`
	Team2ShotsMissed   int `json:"team2_shots_missed"`
	Team1Passes        int `json:"team1_passes"`
	Team2Passes        int `json:"team2_passes"`
	Team1Interceptions int `json:"team1_interceptions"`
	Team2Interceptions int `json:"team2_interceptions"`

	PlayerStats []PlayerStat `json:"player_stats"`
	CreatedAt   string       `json:"created_at"`
}

//SaveAnalysis inserts or replaces the analysis row for a video
func (db *DB) SaveAnalysis(a Analysis) error {
	stats, err := json.Marshal(a.PlayerStats)
	if err != nil {
		return fmt.Errorf("marshal player stats: %w", err)
	}

	_, err = db.conn.Exec(`
		INSERT INTO analyses (
			video_name, frames, fps,
			team1_shots_made, team1_shots_missed, team2_shots_made, team2_shots_missed,
			team1_passes, team2_passes, team1_interceptions, team2_interceptions,
			player_stats
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(video_name) DO UPDATE SET
			frames = excluded.frames,
			fps = excluded.fps,
			team1_shots_made = excluded.team1_shots_made,
			team1_shots_missed = excluded.team1_shots_missed,
			team2_shots_made = excluded.team2_shots_made,
			team2_shots_missed = excluded.team2_shots_missed,
			team1_passes = excluded.team1_passes,
			team2_passes = excluded.team2_passes,
			team1_interceptions = excluded.team1_interceptions,
			team2_interceptions = excluded.team2_interceptions,
			player_stats = excluded.player_stats`,
		a.VideoName, a.Frames, a.FPS,
		a.Team1ShotsMade, a.Team1ShotsMissed, a.Team2ShotsMade, a.Team2ShotsMissed,
		a.Team1Passes, a.Team2Passes, a.Team1Interceptions, a.Team2Interceptions,
		string(stats))
	if err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

//GetAnalysis returns the stored analysis for a video, or nil when none exists
func (db *DB) GetAnalysis(videoName string) (*Analysis, error) {
	row := db.conn.QueryRow(`
		SELECT video_name, frames, fps,
			team1_shots_made, team1_shots_missed, team2_shots_made, team2_shots_missed,
			team1_passes, team2_passes, team1_interceptions, team2_interceptions,
			player_stats, created_at
		FROM analyses WHERE video_name = ?`, videoName)

	a, err := scanAnalysis(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

//ListAnalyses returns every stored analysis, most recent first
func (db *DB) ListAnalyses() ([]Analysis, error) {
	rows, err := db.conn.Query(`
		SELECT video_name, frames, fps,
			team1_shots_made, team1_shots_missed, team2_shots_made, team2_shots_missed,
			team1_passes, team2_passes, team1_interceptions, team2_interceptions,
			player_stats, created_at
		FROM analyses ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	defer rows.Close()

	out := make([]Analysis, 0)
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("list analyses: %w", err)
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAnalysis(s scanner) (*Analysis, error) {
	a := Analysis{}
	var stats string

	err := s.Scan(&a.VideoName, &a.Frames, &a.FPS,
		&a.Team1ShotsMade, &a.Team1ShotsMissed, &a.Team2ShotsMade, &a.Team2ShotsMissed,
		&a.Team1Passes, &a.Team2Passes, &a.Team1Interceptions, &a.Team2Interceptions,
		&stats, &a.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(stats), &a.PlayerStats); err != nil {
		return nil, err
	}
	return &a, nil
}
