package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/api/enums/v1"
	workflowpb "go.temporal.io/api/workflow/v1"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
	workflowType        = "VerifyShareWorkflow"
)

type Config struct {
	TemporalHost string
	Namespace    string
	Window       time.Duration // Only executions started within this window
	MaxWorkflows int           // Maximum number of executions to collect (0 = unlimited)
	PageSize     int
	QueryTimeout time.Duration
	OutputFile   string // Output markdown file path (optional)
}

// Execution is the subset of a verification run the report needs
type Execution struct {
	WorkflowID string
	Status     enums.WorkflowExecutionStatus
	StartTime  time.Time
	CloseTime  *time.Time
}

// Report aggregates verification executions
type Report struct {
	Window     time.Duration
	Total      int
	ByStatus   map[enums.WorkflowExecutionStatus]int
	Durations  []time.Duration // closed executions only, sorted
	Slowest    []Execution
	Incomplete bool // MaxWorkflows reached before the window was exhausted
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)

	executions, incomplete, err := collectExecutions(ctx, c, cfg, time.Now())
	if err != nil {
		fmt.Printf("Error collecting executions: %v\n", err)
		os.Exit(1)
	}

	report := buildReport(executions, cfg.Window)
	report.Incomplete = incomplete

	writeReport(os.Stdout, report)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, report); err != nil {
			fmt.Printf("Warning: failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.DurationVar(&cfg.Window, "window", 24*time.Hour, "Report on verifications started within this window")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.IntVar(&cfg.MaxWorkflows, "max-workflows", 10000, "Maximum executions to collect (0 = unlimited)")
	flag.IntVar(&cfg.PageSize, "page-size", 1000, "Page size for Temporal queries (max: 1000)")
	flag.DurationVar(&cfg.QueryTimeout, "query-timeout", 30*time.Second, "Timeout for each Temporal query")
	configFile := flag.String("config", GetDefaultConfigPath(), "Path to config file (optional)")

	flag.Parse()

	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 1000
	}

	// File values apply only where the flag kept its default
	if fileCfg, err := LoadConfig(*configFile); err == nil {
		if cfg.TemporalHost == defaultTemporalHost && fileCfg.TemporalHost != "" {
			cfg.TemporalHost = fileCfg.TemporalHost
		}
		if cfg.Namespace == defaultNamespace && fileCfg.Namespace != "" {
			cfg.Namespace = fileCfg.Namespace
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Warning: failed to load config file: %v\n", err)
	}

	return cfg
}

// buildQuery returns the visibility query selecting verification runs started after since
func buildQuery(since time.Time) string {
	return fmt.Sprintf("WorkflowType = '%s' AND StartTime > '%s'", workflowType, since.UTC().Format(time.RFC3339))
}

// collectExecutions pages through the visibility API
func collectExecutions(ctx context.Context, c client.Client, cfg *Config, now time.Time) ([]Execution, bool, error) {
	query := buildQuery(now.Add(-cfg.Window))

	var (
		executions []Execution
		pageToken  []byte
	)
	for {
		queryCtx, cancel := context.WithTimeout(ctx, cfg.QueryTimeout)
		resp, err := c.ListWorkflow(queryCtx, &workflowservice.ListWorkflowExecutionsRequest{
			Namespace:     cfg.Namespace,
			Query:         query,
			PageSize:      int32(cfg.PageSize),
			NextPageToken: pageToken,
		})
		cancel()
		if err != nil {
			return nil, false, fmt.Errorf("failed to list workflows: %w", err)
		}

		for _, info := range resp.Executions {
			executions = append(executions, toExecution(info))
			if cfg.MaxWorkflows > 0 && len(executions) >= cfg.MaxWorkflows {
				return executions, true, nil
			}
		}

		pageToken = resp.NextPageToken
		if len(pageToken) == 0 {
			return executions, false, nil
		}
	}
}

func toExecution(info *workflowpb.WorkflowExecutionInfo) Execution {
	exec := Execution{
		WorkflowID: info.GetExecution().GetWorkflowId(),
		Status:     info.GetStatus(),
		StartTime:  info.GetStartTime().AsTime(),
	}
	if info.GetCloseTime() != nil {
		closeTime := info.GetCloseTime().AsTime()
		exec.CloseTime = &closeTime
	}
	return exec
}

// buildReport aggregates executions. Running executions count toward the totals but not the durations.
func buildReport(executions []Execution, window time.Duration) *Report {
	report := &Report{
		Window:   window,
		Total:    len(executions),
		ByStatus: make(map[enums.WorkflowExecutionStatus]int),
	}

	closed := make([]Execution, 0, len(executions))
	for _, exec := range executions {
		report.ByStatus[exec.Status]++
		if exec.CloseTime != nil {
			report.Durations = append(report.Durations, exec.CloseTime.Sub(exec.StartTime))
			closed = append(closed, exec)
		}
	}
	sort.Slice(report.Durations, func(i, j int) bool { return report.Durations[i] < report.Durations[j] })

	sort.Slice(closed, func(i, j int) bool {
		return closed[i].CloseTime.Sub(closed[i].StartTime) > closed[j].CloseTime.Sub(closed[j].StartTime)
	})
	if len(closed) > 5 {
		closed = closed[:5]
	}
	report.Slowest = closed

	return report
}

// percentile returns the p-th percentile (0-100) of sorted durations using nearest rank
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	rank := (p*len(sorted) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	return sorted[rank-1]
}

// statusName is the upper-case short name, e.g. COMPLETED. String() on the enum
// already returns the short form in title case, so the proto name is used instead.
func statusName(status enums.WorkflowExecutionStatus) string {
	if name, ok := enums.WorkflowExecutionStatus_name[int32(status)]; ok {
		return strings.TrimPrefix(name, "WORKFLOW_EXECUTION_STATUS_")
	}
	return strings.ToUpper(status.String())
}

func sortedStatuses(byStatus map[enums.WorkflowExecutionStatus]int) []enums.WorkflowExecutionStatus {
	statuses := make([]enums.WorkflowExecutionStatus, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}

func writeReport(w io.Writer, report *Report) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "SHARE VERIFICATIONS (last %s)\n", formatDuration(report.Window))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total:      %d (%s)\n", report.Total, formatRate(report.Total, report.Window))
	if report.Incomplete {
		fmt.Fprintln(w, "Warning:    max-workflows reached, results are partial")
	}
	for _, status := range sortedStatuses(report.ByStatus) {
		count := report.ByStatus[status]
		fmt.Fprintf(w, "%-11s %d (%s)\n", statusName(status)+":", count, percentageString(count, report.Total))
	}
	if len(report.Durations) > 0 {
		fmt.Fprintf(w, "Duration:   p50 %s  p90 %s  p99 %s\n",
			formatDuration(percentile(report.Durations, 50)),
			formatDuration(percentile(report.Durations, 90)),
			formatDuration(percentile(report.Durations, 99)))
	}
	for _, exec := range report.Slowest {
		fmt.Fprintf(w, "  slow: %s %s %s\n", exec.WorkflowID, statusName(exec.Status), formatDuration(exec.CloseTime.Sub(exec.StartTime)))
	}
}

// writeMarkdownReport writes a markdown report of the verification stats
func writeMarkdownReport(path string, report *Report) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = file.Close()
	}()

	fmt.Fprintf(file, "# Share Verification Report\n\n")
	fmt.Fprintf(file, "Window: last %s\n\n", formatDuration(report.Window))
	fmt.Fprintf(file, "| Status | Count | Share |\n|---|---|---|\n")
	for _, status := range sortedStatuses(report.ByStatus) {
		count := report.ByStatus[status]
		fmt.Fprintf(file, "| %s | %d | %s |\n", statusName(status), count, percentageString(count, report.Total))
	}
	fmt.Fprintf(file, "| **Total** | %d | %s |\n", report.Total, formatRate(report.Total, report.Window))

	if len(report.Durations) > 0 {
		fmt.Fprintf(file, "\n## Durations\n\n| p50 | p90 | p99 |\n|---|---|---|\n| %s | %s | %s |\n",
			formatDuration(percentile(report.Durations, 50)),
			formatDuration(percentile(report.Durations, 90)),
			formatDuration(percentile(report.Durations, 99)))
	}
	if report.Incomplete {
		fmt.Fprintf(file, "\n> Results are partial: max-workflows reached.\n")
	}

	return nil
}
