//Package report prints a human readable summary of one analyzed clip.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jtfarrington/basketball-event-tracking/pkg/storage"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

//PrintSummary prints the per-team event totals for one analysis
func PrintSummary(w io.Writer, a storage.Analysis) {
	fmt.Fprintf(w, "\nVideo: %s  |  Frames: %d @ %.1f fps\n", a.VideoName, a.Frames, a.FPS)
	fmt.Fprintf(w, "Shots:  Team 1 %d/%d made  |  Team 2 %d/%d made\n",
		a.Team1ShotsMade, a.Team1ShotsMade+a.Team1ShotsMissed,
		a.Team2ShotsMade, a.Team2ShotsMade+a.Team2ShotsMissed)
	fmt.Fprintf(w, "Passes: Team 1 %d  |  Team 2 %d    Interceptions: Team 1 %d  |  Team 2 %d\n\n",
		a.Team1Passes, a.Team2Passes, a.Team1Interceptions, a.Team2Interceptions)
}

//PrintPlayerTable writes the per-player kinematics table to the provided writer
func PrintPlayerTable(w io.Writer, stats []storage.PlayerStat) {
	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header("PLAYER", "DISTANCE_M", "AVG_KMH", "MAX_KMH")

	for _, s := range stats {
		table.Append(
			strconv.Itoa(s.PlayerID),
			fmt.Sprintf("%.1f", s.DistanceMeter),
			fmt.Sprintf("%.1f", s.AvgSpeedKmh),
			fmt.Sprintf("%.1f", s.MaxSpeedKmh),
		)
	}

	table.Render()
}
