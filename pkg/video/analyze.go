//Package video runs the full analysis pipeline over one uploaded video: obtain
//detector output, clean the ball trajectory, validate court keypoints, project
//players to the tactical view, compute kinematics, detect shots, passes and
//interceptions, render every overlay layer and write the annotated video.
package video

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path"
	"sort"
	"strings"

	"github.com/jtfarrington/basketball-event-tracking/pkg/court"
	"github.com/jtfarrington/basketball-event-tracking/pkg/events"
	"github.com/jtfarrington/basketball-event-tracking/pkg/kinematics"
	"github.com/jtfarrington/basketball-event-tracking/pkg/report"
	"github.com/jtfarrington/basketball-event-tracking/pkg/storage"
	"github.com/jtfarrington/basketball-event-tracking/pkg/track"
	"github.com/jtfarrington/basketball-event-tracking/pkg/trajectory"
	"github.com/jtfarrington/basketball-event-tracking/pkg/utils"
	"github.com/spf13/viper"
	"gocv.io/x/gocv"
)

//Analyze reads a video from the source directory, runs the whole pipeline and
//writes the annotated result (XVID temp file converted to the production format
//by ffmpeg) into the ready directory. Results are persisted to db when it is
//not nil. srcVideoName should include the file's extension ('.mp4', etc.)
func Analyze(srcVideoName string, db *storage.DB) {
	baseName := strings.Split(srcVideoName, ".")[0]
	srcVideoPath := path.Join(viper.GetString("directory.source"), srcVideoName)
	tmpVideoPath := path.Join(viper.GetString("directory.temp"), baseName+"."+"avi")
	outputVideoPath := path.Join(viper.GetString("directory.ready"), srcVideoName)
	stubPath := path.Join(viper.GetString("directory.stubs"), baseName+".json")

	cap, err := gocv.VideoCaptureFile(srcVideoPath)
	if err != nil {
		log.Printf("Analyze: Error, got '%v'", err)
		return
	}
	defer cap.Close()

	fps := cap.Get(gocv.VideoCaptureFPS)
	frameWidth := int(cap.Get(gocv.VideoCaptureFrameWidth))
	frameHeight := int(cap.Get(gocv.VideoCaptureFrameHeight))

	clip, err := obtainClip(srcVideoPath, stubPath, int(cap.Get(gocv.VideoCaptureFrameCount)))
	if err != nil {
		log.Printf("Analyze: Error, got '%v'", err)
		return
	}

	result := analyzeClip(clip, fps, frameHeight)

	videoWriter, err := gocv.VideoWriterFile(tmpVideoPath, "XVID", fps, frameWidth, frameHeight, true)
	if err != nil {
		log.Printf("Analyze: Error, got '%v'", err)
		return
	}
	defer videoWriter.Close()
	defer os.Remove(tmpVideoPath) //remove '.avi' temp file at the end of this function

	drawOverlays(cap, videoWriter, clip, result)

	//Convert from 'avi' to the production format. example: ffmpeg -i game.avi game.mp4
	cmd := exec.Command("ffmpeg", "-y", "-i", tmpVideoPath, outputVideoPath)
	if err := cmd.Run(); err != nil {
		log.Printf("Analyze: Error from ffmpeg, got '%v'", err)
		return
	}

	analysis := buildAnalysis(srcVideoName, clip.Len(), fps, result)
	if db != nil {
		if err := db.SaveAnalysis(analysis); err != nil {
			log.Printf("Analyze: Error, got '%v'", err)
		}
	}

	report.PrintSummary(os.Stdout, analysis)
	report.PrintPlayerTable(os.Stdout, analysis.PlayerStats)
}

//obtainClip returns the cached detector output for this video when the stub
//matches the clip length, otherwise runs the detector and caches its output
func obtainClip(srcVideoPath, stubPath string, frameCount int) (*track.Clip, error) {
	clip, err := track.ReadStub(stubPath)
	if err != nil {
		log.Printf("obtainClip: Error, got '%v'", err)
	}
	if clip != nil && (frameCount <= 0 || clip.Len() == frameCount) {
		return clip, nil
	}

	clip, err = track.RunDetector(srcVideoPath)
	if err != nil {
		return nil, err
	}

	if err := track.SaveStub(stubPath, clip); err != nil {
		log.Printf("obtainClip: Error, got '%v'", err)
	}
	return clip, nil
}

//clipResult bundles every per-frame stream the analysis derives for one clip
type clipResult struct {
	Ball          track.BallStream
	Tactical      []map[int]track.Point
	Distances     []map[int]float64
	Speeds        []map[int]float64
	Shots         []events.ShotEvent
	Passes        []events.PassEvent
	Interceptions []events.InterceptionEvent
}

//analyzeClip runs the analysis stages in order. Every threshold can be
//overridden from the config file; the defaults match the values the pipeline
//was calibrated with.
func analyzeClip(clip *track.Clip, fps float64, frameHeight int) clipResult {
	cleaner := trajectory.NewCleaner()
	if viper.IsSet("analysis.ball_drift_per_frame") {
		cleaner.DriftPerFrame = viper.GetFloat64("analysis.ball_drift_per_frame")
	}
	ball := cleaner.Clean(clip.Ball)

	validator := court.NewValidator()
	if viper.IsSet("analysis.keypoint_error_margin") {
		validator.ErrorMargin = viper.GetFloat64("analysis.keypoint_error_margin")
	}
	keypoints := validator.Validate(clip.Keypoints)

	projector := court.NewProjector()
	tactical := projector.PlayersToTactical(keypoints, clip.Players)

	calculator := kinematics.NewCalculator()
	if viper.IsSet("analysis.distance_correction") {
		calculator.CorrectionFactor = viper.GetFloat64("analysis.distance_correction")
	}
	if viper.IsSet("analysis.speed_window_size") {
		calculator.WindowSize = viper.GetInt("analysis.speed_window_size")
	}
	distances := calculator.Distances(tactical)
	speeds := calculator.Speeds(distances, fps)

	shotDetector := events.NewShotDetector()
	if viper.IsSet("analysis.shot_upward_threshold") {
		shotDetector.UpwardThreshold = viper.GetFloat64("analysis.shot_upward_threshold")
	}
	if viper.IsSet("analysis.shot_cooldown_frames") {
		shotDetector.CooldownFrames = viper.GetInt("analysis.shot_cooldown_frames")
	}
	if viper.IsSet("analysis.scoring_zone_ratio") {
		shotDetector.ScoringZoneRatio = viper.GetFloat64("analysis.scoring_zone_ratio")
	}
	shots := shotDetector.Detect(ball, clip.Possession, clip.Teams, frameHeight)

	passDetector := events.NewPassDetector()

	return clipResult{
		Ball:          ball,
		Tactical:      tactical,
		Distances:     distances,
		Speeds:        speeds,
		Shots:         shots,
		Passes:        passDetector.DetectPasses(clip.Possession, clip.Teams),
		Interceptions: passDetector.DetectInterceptions(clip.Possession, clip.Teams),
	}
}

//drawOverlays reads the video a frame at a time and renders every annotation
//layer: player boxes with speed labels, the ball box, the tactical minimap, the
//running event totals and the frame number
func drawOverlays(cap *gocv.VideoCapture, videoWriter *gocv.VideoWriter, clip *track.Clip, result clipResult) {
	frameMat := gocv.NewMat()
	defer frameMat.Close()

	var shotsSeen, passesSeen, interceptionsSeen int
	var team1Made, team1Missed, team2Made, team2Missed int
	var team1Passes, team2Passes, team1Interceptions, team2Interceptions int

	for frameNum := 0; frameNum < clip.Len(); frameNum++ {
		if !cap.Read(&frameMat) { //finished to read all video's frames
			break
		}

		for id, box := range clip.Players[frameNum] {
			teamID := utils.NoTeam
			if t, ok := clip.Teams[frameNum][id]; ok {
				teamID = t
			}
			speed, hasSpeed := result.Speeds[frameNum][id]
			possessing := clip.Possession[frameNum] == id
			plotPlayerOnFrame(&frameMat, id, box, teamID, speed, hasSpeed, possessing)
		}

		plotBallOnFrame(&frameMat, result.Ball[frameNum])
		plotTacticalView(&frameMat, result.Tactical[frameNum], clip.Teams[frameNum])

		for shotsSeen < len(result.Shots) && result.Shots[shotsSeen].Frame <= frameNum {
			countShot(result.Shots[shotsSeen], &team1Made, &team1Missed, &team2Made, &team2Missed)
			shotsSeen++
		}
		for passesSeen < len(result.Passes) && result.Passes[passesSeen].Frame <= frameNum {
			countTeam(result.Passes[passesSeen].Team, &team1Passes, &team2Passes)
			passesSeen++
		}
		for interceptionsSeen < len(result.Interceptions) && result.Interceptions[interceptionsSeen].Frame <= frameNum {
			countTeam(result.Interceptions[interceptionsSeen].Team, &team1Interceptions, &team2Interceptions)
			interceptionsSeen++
		}

		plotEventBanner(&frameMat, []string{
			fmt.Sprintf("Shots: T1 %d/%d made, T2 %d/%d made", team1Made, team1Made+team1Missed, team2Made, team2Made+team2Missed),
			fmt.Sprintf("Passes: T1 %d, T2 %d", team1Passes, team2Passes),
			fmt.Sprintf("Interceptions: T1 %d, T2 %d", team1Interceptions, team2Interceptions),
		})
		plotFrameNumber(&frameMat, frameNum)

		videoWriter.Write(frameMat)
	}
}

func countShot(shot events.ShotEvent, team1Made, team1Missed, team2Made, team2Missed *int) {
	switch {
	case shot.Team == utils.TeamOneID && shot.Outcome == events.OutcomeMade:
		*team1Made++
	case shot.Team == utils.TeamOneID:
		*team1Missed++
	case shot.Team == utils.TeamTwoID && shot.Outcome == events.OutcomeMade:
		*team2Made++
	case shot.Team == utils.TeamTwoID:
		*team2Missed++
	}
}

func countTeam(teamID int, team1, team2 *int) {
	switch teamID {
	case utils.TeamOneID:
		*team1++
	case utils.TeamTwoID:
		*team2++
	}
}

//buildAnalysis aggregates the per-frame streams into the stored per-video row
func buildAnalysis(videoName string, frames int, fps float64, result clipResult) storage.Analysis {
	a := storage.Analysis{VideoName: videoName, Frames: frames, FPS: fps}

	for _, shot := range result.Shots {
		countShot(shot, &a.Team1ShotsMade, &a.Team1ShotsMissed, &a.Team2ShotsMade, &a.Team2ShotsMissed)
	}
	for _, pass := range result.Passes {
		countTeam(pass.Team, &a.Team1Passes, &a.Team2Passes)
	}
	for _, interception := range result.Interceptions {
		countTeam(interception.Team, &a.Team1Interceptions, &a.Team2Interceptions)
	}

	a.PlayerStats = aggregatePlayerStats(result.Distances, result.Speeds)
	return a
}

//aggregatePlayerStats sums each player's distances over the clip and averages
//the frames where a speed estimate was actually available
func aggregatePlayerStats(distances, speeds []map[int]float64) []storage.PlayerStat {
	totals := make(map[int]float64)
	speedSums := make(map[int]float64)
	speedCounts := make(map[int]int)
	maxSpeeds := make(map[int]float64)

	for frame := range distances {
		for id, d := range distances[frame] {
			totals[id] += d
		}
		for id, s := range speeds[frame] {
			if s <= 0 { //0 means insufficient history, not standing still
				continue
			}
			speedSums[id] += s
			speedCounts[id]++
			if s > maxSpeeds[id] {
				maxSpeeds[id] = s
			}
		}
	}

	ids := make([]int, 0, len(totals))
	for id := range totals {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	stats := make([]storage.PlayerStat, 0, len(ids))
	for _, id := range ids {
		stat := storage.PlayerStat{PlayerID: id, DistanceMeter: totals[id], MaxSpeedKmh: maxSpeeds[id]}
		if speedCounts[id] > 0 {
			stat.AvgSpeedKmh = speedSums[id] / float64(speedCounts[id])
		}
		stats = append(stats, stat)
	}
	return stats
}
