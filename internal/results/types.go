package results

// Tool identifiers recognized in benchmark CSVs. Rows for any other tool
// are discarded before metrics are computed.
const (
	ToolEGAFetch = "EGAfetch"
	ToolPyEGA3   = "pyEGA3"
)

// requiredColumns must all be present in the CSV header. Extra columns are
// ignored.
var requiredColumns = []string{
	"timestamp",
	"run",
	"tool",
	"target_id",
	"elapsed_seconds",
	"exit_code",
	"notes",
}

// Row is a raw CSV row keyed by column name.
type Row map[string]string

// Record is one attempted download run, numerically normalized.
type Record struct {
	Timestamp      string  `json:"timestamp"`
	Run            int     `json:"run"`
	Tool           string  `json:"tool"`
	TargetID       string  `json:"target_id"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	ElapsedMinutes float64 `json:"elapsed_minutes"`
	ExitCode       int     `json:"exit_code"`
	Notes          string  `json:"notes,omitempty"`
}
