package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"p2p-recon/core/config"
	"p2p-recon/core/database"
	"p2p-recon/core/ingest"
	"p2p-recon/core/jobconfig"
	"p2p-recon/core/logger"
	"p2p-recon/core/recon"
	"p2p-recon/core/report"
	"p2p-recon/core/storage"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Scheduler metadata flags. Required by the job surface, used for
	// log correlation only.
	hostFlag   string
	sidFlag    string
	serverFlag string
	schemaFlag string

	// Job input flags.
	jobConfigFile string
	inputFile     string
	outputDir     string
	reportOnly    string
	reconcileDate string
)

// reconcileDatePattern matches the optional override in MM-DD-YYYY form.
var reconcileDatePattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{4}$`)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile transactions from a spreadsheet against the stores",
	Long: `Reconcile reads an .xlsx of candidate transactions, validates each
row's identifying fields per update lane, conditionally writes a
reconciliation date into the payments and ledger stores, and writes a
human-readable audit report to the output directory.

Examples:
  # Apply mode
  p2p-recon reconcile --host db01 --sid PROD --server p2p01 --schema P2P \
    --config recon.yaml --input recon.xlsx --output-dir /data/reports

  # Dry-run: execute the SQL but roll back every mutation
  p2p-recon reconcile ... --report-only Y

  # Explicit reconcile date instead of today
  p2p-recon reconcile ... --reconcile-date 01-15-2024`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&hostFlag, "host", "", "Database host identifier (scheduler metadata)")
	reconcileCmd.Flags().StringVar(&sidFlag, "sid", "", "Database SID (scheduler metadata)")
	reconcileCmd.Flags().StringVar(&serverFlag, "server", "", "P2P server identifier (scheduler metadata)")
	reconcileCmd.Flags().StringVar(&schemaFlag, "schema", "", "P2P schema name (scheduler metadata)")
	reconcileCmd.Flags().StringVar(&jobConfigFile, "config", "", "Job configuration file (.yml/.yaml)")
	reconcileCmd.Flags().StringVar(&inputFile, "input", "", "Input spreadsheet (.xlsx)")
	reconcileCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for the audit report")
	reconcileCmd.Flags().StringVar(&reportOnly, "report-only", "N", "Y rolls back every update (dry-run), N commits")
	reconcileCmd.Flags().StringVar(&reconcileDate, "reconcile-date", "", "Reconcile date override in MM-DD-YYYY form (default: today)")

	for _, flag := range []string{"host", "sid", "server", "schema", "config", "input", "output-dir"} {
		_ = reconcileCmd.MarkFlagRequired(flag)
	}

	RootCmd.AddCommand(reconcileCmd)
}

// validateFlags mirrors the job-scheduler argument surface: invalid
// values fail before any connection is opened.
func validateFlags() error {
	ext := strings.ToLower(filepath.Ext(jobConfigFile))
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("--config must be a .yml or .yaml file, got %q", jobConfigFile)
	}

	if strings.ToLower(filepath.Ext(inputFile)) != ".xlsx" {
		return fmt.Errorf("--input must be an .xlsx file, got %q", inputFile)
	}

	info, err := os.Stat(outputDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("--output-dir %q is not a directory", outputDir)
	}

	if !strings.EqualFold(reportOnly, "Y") && !strings.EqualFold(reportOnly, "N") {
		return fmt.Errorf("--report-only must be Y or N, got %q", reportOnly)
	}

	if reconcileDate != "" && !reconcileDatePattern.MatchString(reconcileDate) {
		return fmt.Errorf("--reconcile-date must match MM-DD-YYYY, got %q", reconcileDate)
	}

	return nil
}

func runReconcile(cmd *cobra.Command, args []string) error {
	if err := validateFlags(); err != nil {
		return err
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	l.Info("P2P Manual Reconcile job started",
		zap.String("host", hostFlag),
		zap.String("sid", sidFlag),
		zap.String("server", serverFlag),
		zap.String("schema", schemaFlag),
		zap.String("input", inputFile),
		zap.String("report_only", strings.ToUpper(reportOnly)),
	)

	jc, err := jobconfig.Load(jobConfigFile)
	if err != nil {
		return err
	}

	if jc.DatabaseConfig.P2PAutocommit || jc.DatabaseConfig.DNAAutocommit {
		l.Warn("job config requests autocommit; per-lane transactions are used regardless")
	}

	l.Info("Processing reconciliation file")
	rows, err := ingest.ParseReconFile(inputFile, jc.ValidColumnHeaders)
	if err != nil {
		return err
	}

	payments, err := database.Connect(cfg.PaymentsDB)
	if err != nil {
		return fmt.Errorf("failed to connect to payments store: %w", err)
	}
	defer func() { _ = database.Close(payments) }()

	ledger, err := database.Connect(cfg.LedgerDB)
	if err != nil {
		return fmt.Errorf("failed to connect to ledger store: %w", err)
	}
	defer func() { _ = database.Close(ledger) }()

	now := time.Now()
	reportPath := filepath.Join(outputDir, report.FileName(now))

	out, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer out.Close()

	w := report.NewWriter(out)
	w.WriteHeader(now)

	engine := &recon.Engine{
		Payments:      payments,
		Ledger:        ledger,
		Statements:    jc.Statements(),
		ReconcileDate: recon.EffectiveDate(reconcileDate, now),
		ReportOnly:    strings.EqualFold(reportOnly, "Y"),
		Sink:          w,
		Log:           l,
	}

	l.Info("Updating reconcile dates", zap.Int("rows", len(rows)))
	engine.Run(rows)

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	archiveReport(cfg, l, reportPath)

	l.Info("P2P Manual Reconcile job finished",
		zap.Int("rows", len(rows)),
		zap.String("report", reportPath),
	)

	return nil
}

// archiveReport uploads the finished report when archival is enabled.
// Best-effort: a failure is logged, never fatal.
func archiveReport(cfg *config.Config, l *zap.Logger, reportPath string) {
	if !cfg.Storage.Enabled {
		return
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("report archival skipped", zap.Error(err))
		return
	}

	timeout := cfg.Storage.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	objectName, err := storage.ArchiveReport(ctx, client, cfg.Storage, reportPath)
	if err != nil {
		l.Warn("report archival failed", zap.Error(err))
		return
	}

	l.Info("report archived", zap.String("object", objectName))
}
